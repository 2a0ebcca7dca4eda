package filesystem

import (
	"fmt"
)

// Open returns a FileSystem able to write dest, the path to use with it, and a
// closer for any connection it opened (nil for local destinations).
func Open(dest Destination) (FileSystem, string, func(), error) {
	if !dest.IsRemote {
		return NewRealFileSystem(), dest.Path, nil, nil
	}

	conn, err := Connect(dest.Host, dest.Port, dest.User)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s@%s:%d: %w",
			dest.User, dest.Host, dest.Port, err)
	}

	closer := func() {
		_ = conn.Close()
	}

	return NewSFTPFileSystem(conn), dest.Path, closer, nil
}
