package gateway

import "encoding/json"

// RunStatus is the remote scan job state returned by GET /status.
type RunStatus struct {
	Running      bool     `json:"running"`
	Stopping     bool     `json:"stopping"`
	LastStarted  *float64 `json:"last_started"`  // Unix epoch seconds, nil if never started
	LastFinished *float64 `json:"last_finished"` // Unix epoch seconds, nil if never finished
}

// ResultRow is one working proxy found by a scan.
// (Proxy, Target) identifies a row within one scan.
type ResultRow struct {
	Proxy   string  `json:"proxy"`
	Latency float64 `json:"latency"` // milliseconds
	Scheme  string  `json:"scheme"`
	Target  string  `json:"target"`
}

// StartPayload is the body of POST /start.
// Omitted fields let the remote apply its defaults.
type StartPayload struct {
	Targets      []string `json:"targets,omitempty"`
	MaxProxies   *int     `json:"max_proxies,omitempty"`
	MaxPerTarget *int     `json:"max_per_target,omitempty"`
}

// The list fields stay raw so a malformed field can degrade to an empty list
// without failing the whole response.
type logsResponse struct {
	Logs json.RawMessage `json:"logs"`
}

type resultsResponse struct {
	Results json.RawMessage `json:"results"`
}
