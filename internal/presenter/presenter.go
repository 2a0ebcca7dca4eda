// Package presenter turns engine state into display values and user input into
// command payloads. Everything here is pure: no I/O, no clocks beyond the
// arguments passed in.
package presenter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joe/proxy-panel/internal/gateway"
)

// Exported constants.
const (
	// Placeholder is rendered for absent timestamps
	Placeholder = "—"
	// TimestampLayout is the local date/time layout for epoch timestamps
	TimestampLayout = "2006-01-02 15:04:05"
	// ClockLayout is the layout for the "last updated" time of day
	ClockLayout = "15:04:05"
)

// Exported variables.
var (
	//nolint:gochecknoglobals // Read-only default form contents
	DefaultTargets = []string{
		"https://api.ipify.org?format=json",
		"https://httpbin.org/get",
	}
)

// FormInput is the raw text of the start form.
type FormInput struct {
	Targets      string
	MaxProxies   string
	MaxPerTarget string
}

// ValidationError reports a form field that cannot become part of a payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// BuildStartPayload validates the form and produces the start command payload.
// An empty target list is omitted so the remote applies its default targets.
func BuildStartPayload(input FormInput) (gateway.StartPayload, error) {
	maxProxies, err := ParseBound("max proxies", input.MaxProxies)
	if err != nil {
		return gateway.StartPayload{}, err
	}

	maxPerTarget, err := ParseBound("max per target", input.MaxPerTarget)
	if err != nil {
		return gateway.StartPayload{}, err
	}

	payload := gateway.StartPayload{
		MaxProxies:   maxProxies,
		MaxPerTarget: maxPerTarget,
	}

	if targets := ParseTargets(input.Targets); len(targets) > 0 {
		payload.Targets = targets
	}

	return payload, nil
}

// FormatLastUpdated renders the time of the last successful sync.
func FormatLastUpdated(updated time.Time) string {
	if updated.IsZero() {
		return Placeholder
	}

	return updated.Local().Format(ClockLayout)
}

// FormatLatency renders a latency in milliseconds.
func FormatLatency(ms float64) string {
	if ms < 10 { //nolint:mnd // sub-10ms values keep one decimal
		return strconv.FormatFloat(ms, 'f', 1, 64) + " ms"
	}

	return strconv.FormatFloat(ms, 'f', 0, 64) + " ms"
}

// FormatTimestamp renders Unix epoch seconds as local date/time.
// Nil and zero render as Placeholder.
func FormatTimestamp(epochSeconds *float64) string {
	if epochSeconds == nil || *epochSeconds == 0 {
		return Placeholder
	}

	secs := int64(*epochSeconds)
	nanos := int64((*epochSeconds - float64(secs)) * float64(time.Second))

	return time.Unix(secs, nanos).Local().Format(TimestampLayout)
}

// ListKey identifies a result row for list rendering: "{proxy}-{target}".
func ListKey(row gateway.ResultRow) string {
	return row.Proxy + "-" + row.Target
}

// ParseBound parses an optional positive integer form field.
// Blank input yields nil; anything else must be an integer >= 1.
func ParseBound(field, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil //nolint:nilnil // absent bound is not an error
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &ValidationError{Field: field, Message: fmt.Sprintf("must be a whole number, got %q", raw)}
	}

	if value < 1 {
		return nil, &ValidationError{Field: field, Message: "must be at least 1"}
	}

	return &value, nil
}

// ParseTargets splits raw text on newlines and commas, trims each entry and
// drops empty ones. The result is never nil.
func ParseTargets(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})

	targets := make([]string, 0, len(fields))
	for _, field := range fields {
		if trimmed := strings.TrimSpace(field); trimmed != "" {
			targets = append(targets, trimmed)
		}
	}

	return targets
}

// ResultCells renders a row as table cells: proxy, latency, scheme, target.
func ResultCells(row gateway.ResultRow) []string {
	return []string{row.Proxy, FormatLatency(row.Latency), row.Scheme, row.Target}
}
