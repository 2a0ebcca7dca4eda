// Package filesystem abstracts the few write operations needed to publish a
// file either locally or over SFTP, so callers can be tested without real I/O.
package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File is a file opened for writing.
type File interface {
	io.Writer
	io.Closer
}

// FileSystem is the set of operations WriteFileAtomic needs.
type FileSystem interface {
	Create(path string) (File, error)
	MkdirAll(path string, perm os.FileMode) error
	Remove(path string) error
	Rename(oldPath, newPath string) error

	// Dir returns the parent directory of path using the filesystem's separator.
	Dir(path string) string
}

// RealFileSystem implements FileSystem using the os package.
type RealFileSystem struct{}

// NewRealFileSystem creates a new RealFileSystem instance.
func NewRealFileSystem() *RealFileSystem {
	return &RealFileSystem{}
}

// Create creates a file for writing.
func (fs *RealFileSystem) Create(path string) (File, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	return file, nil
}

// Dir returns filepath.Dir(path).
func (fs *RealFileSystem) Dir(path string) string {
	return filepath.Dir(path)
}

// MkdirAll creates a directory and all necessary parents.
func (fs *RealFileSystem) MkdirAll(path string, perm os.FileMode) error {
	err := os.MkdirAll(path, perm)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// Remove removes a file or empty directory.
func (fs *RealFileSystem) Remove(path string) error {
	err := os.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	return nil
}

// Rename replaces newPath with oldPath.
func (fs *RealFileSystem) Rename(oldPath, newPath string) error {
	err := os.Rename(oldPath, newPath)
	if err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", oldPath, newPath, err)
	}

	return nil
}

// WriteFileAtomic writes data to a temporary sibling of target and renames it
// into place, so readers never see a partial file.
func WriteFileAtomic(fs FileSystem, target string, data []byte) error {
	dir := fs.Dir(target)
	if dir != "" && dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil { //nolint:mnd // standard directory permissions
			return err
		}
	}

	tmp := target + ".tmp"

	file, err := fs.Create(tmp)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		_ = fs.Remove(tmp)

		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := file.Close(); err != nil {
		_ = fs.Remove(tmp)
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}

	if err := fs.Rename(tmp, target); err != nil {
		_ = fs.Remove(tmp)
		return err
	}

	return nil
}
