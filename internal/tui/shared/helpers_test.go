package shared_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/proxy-panel/internal/tui/shared"
)

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(shared.FormatDuration(30 * time.Second)).Should(Equal("30s"))
	g.Expect(shared.FormatDuration(150 * time.Second)).Should(Equal("2m 30s"))
	g.Expect(shared.FormatDuration(time.Hour + 2*time.Minute + 3*time.Second)).Should(Equal("1h 2m 3s"))
	g.Expect(shared.FormatDuration(1499 * time.Millisecond)).Should(Equal("1s"))
}

func TestFormatAgo(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero time", time.Time{}, ""},
		{"same instant", now, "just now"},
		{"under a second", now.Add(-500 * time.Millisecond), "just now"},
		{"seconds", now.Add(-12 * time.Second), "12s ago"},
		{"minutes", now.Add(-75 * time.Second), "1m 15s ago"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := shared.FormatAgo(tt.t, now); got != tt.want {
				t.Errorf("FormatAgo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"ellipsis", "hello world", 8, "hello..."},
		{"narrower than ellipsis", "hello", 2, "he"},
		{"no limit", "hello", 0, "hello"},
		{"runes", "ünïcödé text", 7, "ünïc..."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := shared.Truncate(tt.text, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
