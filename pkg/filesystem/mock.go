package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"sync"
)

// ErrMockNotExist is returned by MockFileSystem for missing paths.
var ErrMockNotExist = errors.New("file does not exist")

// MockFileSystem is an in-memory FileSystem for tests. Paths are slash-separated.
type MockFileSystem struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool

	// Fail* inject errors for the named operation.
	FailCreate error
	FailWrite  error
	FailRename error
}

// NewMockFileSystem creates an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
		dirs:  map[string]bool{".": true, "/": true},
	}
}

// Create starts a new, empty file. Its content is visible once closed.
func (fs *MockFileSystem) Create(name string) (File, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.FailCreate != nil {
		return nil, fs.FailCreate
	}

	if !fs.dirs[path.Dir(name)] {
		return nil, fmt.Errorf("create %s: parent: %w", name, ErrMockNotExist)
	}

	return &mockFile{fs: fs, name: name}, nil
}

// Dir returns path.Dir(name).
func (fs *MockFileSystem) Dir(name string) string {
	return path.Dir(name)
}

// MkdirAll records name and its parents as directories.
func (fs *MockFileSystem) MkdirAll(name string, _ os.FileMode) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for dir := name; !fs.dirs[dir]; dir = path.Dir(dir) {
		fs.dirs[dir] = true
	}

	return nil
}

// Remove deletes a file.
func (fs *MockFileSystem) Remove(name string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, ok := fs.files[name]; !ok {
		return fmt.Errorf("remove %s: %w", name, ErrMockNotExist)
	}

	delete(fs.files, name)

	return nil
}

// Rename moves a file, replacing any existing target.
func (fs *MockFileSystem) Rename(oldName, newName string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if fs.FailRename != nil {
		return fs.FailRename
	}

	data, ok := fs.files[oldName]
	if !ok {
		return fmt.Errorf("rename %s: %w", oldName, ErrMockNotExist)
	}

	fs.files[newName] = data
	delete(fs.files, oldName)

	return nil
}

// ReadFile returns the content of a closed file.
func (fs *MockFileSystem) ReadFile(name string) ([]byte, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	data, ok := fs.files[name]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", name, ErrMockNotExist)
	}

	return bytes.Clone(data), nil
}

// ListFiles returns every file path, sorted.
func (fs *MockFileSystem) ListFiles() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	names := make([]string, 0, len(fs.files))
	for name := range fs.files {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

type mockFile struct {
	fs   *MockFileSystem
	name string
	buf  bytes.Buffer
}

func (f *mockFile) Write(p []byte) (int, error) {
	f.fs.mu.Lock()
	failWrite := f.fs.FailWrite
	f.fs.mu.Unlock()

	if failWrite != nil {
		return 0, failWrite
	}

	return f.buf.Write(p) //nolint:wrapcheck // bytes.Buffer never fails
}

func (f *mockFile) Close() error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()

	f.fs.files[f.name] = bytes.Clone(f.buf.Bytes())

	return nil
}
