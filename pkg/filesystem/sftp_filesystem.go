package filesystem

import (
	"fmt"
	"os"
	"path"

	"github.com/pkg/sftp"
)

// SFTPFileSystem implements FileSystem over a single SFTP session.
type SFTPFileSystem struct {
	client *sftp.Client
}

// NewSFTPFileSystem creates a new SFTP filesystem using an established connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return &SFTPFileSystem{client: conn.Client()}
}

// Create creates a remote file for writing, truncating any existing file.
func (fs *SFTPFileSystem) Create(path string) (File, error) {
	file, err := fs.client.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create remote file %s: %w", path, err)
	}

	return newSFTPFile(file, path), nil
}

// Dir returns the parent of a remote (slash-separated) path.
func (fs *SFTPFileSystem) Dir(remotePath string) string {
	return path.Dir(remotePath)
}

// MkdirAll creates a remote directory and all necessary parents.
func (fs *SFTPFileSystem) MkdirAll(path string, _ os.FileMode) error {
	err := fs.client.MkdirAll(path)
	if err != nil {
		return fmt.Errorf("failed to create remote directory %s: %w", path, err)
	}

	return nil
}

// Remove removes a remote file.
func (fs *SFTPFileSystem) Remove(path string) error {
	err := fs.client.Remove(path)
	if err != nil {
		return fmt.Errorf("failed to remove remote file %s: %w", path, err)
	}

	return nil
}

// Rename replaces newPath with oldPath. Servers without the posix-rename
// extension fall back to remove-then-rename.
func (fs *SFTPFileSystem) Rename(oldPath, newPath string) error {
	err := fs.client.PosixRename(oldPath, newPath)
	if err == nil {
		return nil
	}

	_ = fs.client.Remove(newPath)

	err = fs.client.Rename(oldPath, newPath)
	if err != nil {
		return fmt.Errorf("failed to rename remote file %s to %s: %w", oldPath, newPath, err)
	}

	return nil
}
