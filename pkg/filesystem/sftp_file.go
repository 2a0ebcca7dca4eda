package filesystem

import (
	"fmt"

	"github.com/pkg/sftp"
)

// SFTPFile wraps sftp.File to implement the filesystem.File interface.
type SFTPFile struct {
	file *sftp.File
	path string
}

// newSFTPFile creates a new SFTPFile wrapper.
func newSFTPFile(file *sftp.File, path string) *SFTPFile {
	return &SFTPFile{
		file: file,
		path: path,
	}
}

// Write writes to the SFTP file.
func (f *SFTPFile) Write(p []byte) (int, error) {
	n, err := f.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", f.path, err)
	}

	return n, nil
}

// Close closes the SFTP file.
func (f *SFTPFile) Close() error {
	return f.file.Close() //nolint:wrapcheck // path is already in sftp's error
}
