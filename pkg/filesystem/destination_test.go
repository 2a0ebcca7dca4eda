//nolint:varnamelen // Test files use idiomatic short variable names (t, etc.)
package filesystem_test

import (
	"errors"
	"testing"

	"github.com/joe/proxy-panel/pkg/filesystem"
)

func TestParseDestination_Local(t *testing.T) {
	t.Parallel()

	result, err := filesystem.ParseDestination("  out/working_proxies.json ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result.IsRemote {
		t.Error("IsRemote should be false for local path")
	}
	if result.Path != "out/working_proxies.json" {
		t.Errorf("Path = %q, want %q", result.Path, "out/working_proxies.json")
	}
	if result.String() != "out/working_proxies.json" {
		t.Errorf("String() = %q", result.String())
	}
}

//nolint:funlen // Table-driven test with many SFTP URL parsing cases
func TestParseDestination_SFTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantErr    error
		wantUser   string
		wantHost   string
		wantPort   int
		wantPath   string
		wantString string
	}{
		{
			name:       "relative to home",
			input:      "sftp://joe@box/proxies.json",
			wantUser:   "joe",
			wantHost:   "box",
			wantPort:   22,
			wantPath:   "proxies.json",
			wantString: "sftp://joe@box:22/proxies.json",
		},
		{
			name:       "custom port and nested path",
			input:      "sftp://admin@server.com:2222/exports/today.json",
			wantUser:   "admin",
			wantHost:   "server.com",
			wantPort:   2222,
			wantPath:   "exports/today.json",
			wantString: "sftp://admin@server.com:2222/exports/today.json",
		},
		{
			name:       "absolute path",
			input:      "sftp://joe@box//srv/proxies.json",
			wantUser:   "joe",
			wantHost:   "box",
			wantPort:   22,
			wantPath:   "/srv/proxies.json",
			wantString: "sftp://joe@box:22//srv/proxies.json",
		},
		{name: "missing user", input: "sftp://box/proxies.json", wantErr: filesystem.ErrMissingUser},
		{name: "missing host", input: "sftp://joe@/proxies.json", wantErr: filesystem.ErrMissingHost},
		{name: "no file", input: "sftp://joe@box", wantErr: filesystem.ErrMissingFile},
		{name: "directory", input: "sftp://joe@box/exports/", wantErr: filesystem.ErrMissingFile},
		{name: "empty", input: "   ", wantErr: filesystem.ErrEmptyDestination},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := filesystem.ParseDestination(tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if !result.IsRemote {
				t.Error("IsRemote should be true")
			}
			if result.User != tt.wantUser {
				t.Errorf("User = %q, want %q", result.User, tt.wantUser)
			}
			if result.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", result.Host, tt.wantHost)
			}
			if result.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", result.Port, tt.wantPort)
			}
			if result.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", result.Path, tt.wantPath)
			}
			if result.String() != tt.wantString {
				t.Errorf("String() = %q, want %q", result.String(), tt.wantString)
			}
		})
	}
}

func TestParseDestination_InvalidPort(t *testing.T) {
	t.Parallel()

	if _, err := filesystem.ParseDestination("sftp://joe@box:abc/x.json"); err == nil {
		t.Error("Expected error for non-numeric port")
	}
}
