package presenter

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/joe/proxy-panel/internal/gateway"
)

// ResultFilter decides which result rows are shown.
type ResultFilter interface {
	ShouldInclude(row gateway.ResultRow) bool
}

// GlobFilter implements ResultFilter using glob patterns
type GlobFilter struct {
	normalizedPattern string
	isEmpty           bool
}

// NewGlobFilter creates a new GlobFilter with the given pattern.
// Empty pattern matches all rows.
func NewGlobFilter(pattern string) *GlobFilter {
	pattern = strings.TrimSpace(pattern)

	return &GlobFilter{
		normalizedPattern: strings.ToLower(pattern),
		isEmpty:           pattern == "",
	}
}

// ShouldInclude reports whether the pattern matches the row's proxy, scheme,
// target, or "scheme://proxy". Matching is case-insensitive; an invalid
// pattern matches nothing.
func (f *GlobFilter) ShouldInclude(row gateway.ResultRow) bool {
	if f.isEmpty {
		return true
	}

	candidates := []string{
		row.Proxy,
		row.Scheme,
		row.Target,
		row.Scheme + "://" + row.Proxy,
	}

	for _, candidate := range candidates {
		matched, err := doublestar.Match(f.normalizedPattern, strings.ToLower(candidate))
		if err != nil {
			return false
		}

		if matched {
			return true
		}
	}

	return false
}

// FilterResults returns the rows the pattern keeps, preserving order.
func FilterResults(rows []gateway.ResultRow, pattern string) []gateway.ResultRow {
	filter := NewGlobFilter(pattern)

	kept := make([]gateway.ResultRow, 0, len(rows))
	for _, row := range rows {
		if filter.ShouldInclude(row) {
			kept = append(kept, row)
		}
	}

	return kept
}
