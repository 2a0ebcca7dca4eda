package filesystem

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSFTPPort is used when an sftp:// URL has no port.
const DefaultSFTPPort = 22

// Destination errors.
var (
	ErrEmptyDestination = errors.New("destination is empty")
	ErrMissingUser      = errors.New("SFTP URL must include username (sftp://user@host/path)")
	ErrMissingHost      = errors.New("SFTP URL must include host")
	ErrMissingFile      = errors.New("SFTP URL must name a file (sftp://user@host/file.json)")
)

// Destination is either a local file path or a file on an SFTP server.
type Destination struct {
	IsRemote bool

	// Path is the local path, or the remote path for SFTP destinations.
	Path string

	// For SFTP destinations
	Host string
	Port int
	User string
}

// String renders the destination the way a user would type it.
func (d Destination) String() string {
	if !d.IsRemote {
		return d.Path
	}

	return fmt.Sprintf("sftp://%s@%s:%d/%s", d.User, d.Host, d.Port, d.Path)
}

// ParseDestination detects whether dest is a local path or an SFTP URL.
// SFTP URLs have the format sftp://user@host[:port]/path/to/file:
//   - sftp://joe@box/proxies.json  → proxies.json in joe's home directory
//   - sftp://joe@box//srv/proxies.json → absolute /srv/proxies.json
func ParseDestination(dest string) (Destination, error) {
	dest = strings.TrimSpace(dest)
	if dest == "" {
		return Destination{}, ErrEmptyDestination
	}

	if !strings.HasPrefix(dest, "sftp://") {
		return Destination{Path: dest}, nil
	}

	return parseSFTPDestination(dest)
}

func parseSFTPDestination(raw string) (Destination, error) {
	u, err := url.Parse(raw) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return Destination{}, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.User == nil || u.User.Username() == "" {
		return Destination{}, ErrMissingUser
	}

	host := u.Hostname()
	if host == "" {
		return Destination{}, ErrMissingHost
	}

	port := DefaultSFTPPort
	if portStr := u.Port(); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil {
			return Destination{}, fmt.Errorf("invalid port number: %w", err)
		}
	}

	// One leading slash is the URL separator; a second marks an absolute path.
	remotePath := strings.TrimPrefix(u.Path, "/")
	if remotePath == "" || strings.HasSuffix(remotePath, "/") {
		return Destination{}, ErrMissingFile
	}

	return Destination{
		IsRemote: true,
		Path:     remotePath,
		Host:     host,
		Port:     port,
		User:     u.User.Username(),
	}, nil
}
