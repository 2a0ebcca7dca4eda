// Package export writes result rows as a JSON array to a local file or an
// sftp:// destination.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/joe/proxy-panel/internal/gateway"
	"github.com/joe/proxy-panel/pkg/filesystem"
)

// DefaultDestination is where results go when no destination is configured.
const DefaultDestination = "working_proxies.json"

// Opener resolves a destination to a filesystem. filesystem.Open in production.
type Opener func(dest filesystem.Destination) (filesystem.FileSystem, string, func(), error)

// Exporter writes results with a pluggable Opener.
type Exporter struct {
	open Opener
}

// New returns an Exporter for local paths and sftp:// URLs.
func New() *Exporter {
	return &Exporter{open: filesystem.Open}
}

// NewWithOpener returns an Exporter that resolves destinations with open.
func NewWithOpener(open Opener) *Exporter {
	return &Exporter{open: open}
}

// Export writes rows to dest as an indented JSON array, replacing any existing file.
// An empty dest means DefaultDestination.
func (e *Exporter) Export(dest string, rows []gateway.ResultRow) error {
	if dest == "" {
		dest = DefaultDestination
	}

	parsed, err := filesystem.ParseDestination(dest)
	if err != nil {
		return fmt.Errorf("invalid destination %q: %w", dest, err)
	}

	data, err := Encode(rows)
	if err != nil {
		return err
	}

	fs, path, closer, err := e.open(parsed)
	if err != nil {
		return err
	}

	if closer != nil {
		defer closer()
	}

	return filesystem.WriteFileAtomic(fs, path, data)
}

// Encode renders rows the way Export writes them. A nil slice encodes as [].
func Encode(rows []gateway.ResultRow) ([]byte, error) {
	if rows == nil {
		rows = []gateway.ResultRow{}
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode results: %w", err)
	}

	return append(data, '\n'), nil
}
