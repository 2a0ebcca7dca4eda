package syncengine

import (
	"fmt"
	"os"
	"time"
)

// CloseLog closes the log file if open
func (e *Engine) CloseLog() {
	e.logToFile(fmt.Sprintf("=== Panel Log Ended: %s ===", time.Now().Format(time.RFC3339)))

	e.logMu.Lock()
	defer e.logMu.Unlock()

	if e.logFile != nil {
		_ = e.logFile.Close()
		e.logFile = nil
	}
}

// EnableFileLogging enables logging to a file for debugging
func (e *Engine) EnableFileLogging(logPath string) error {
	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	e.logMu.Lock()
	e.logFile = f
	e.logMu.Unlock()

	e.logToFile(fmt.Sprintf("=== Panel Log Started: %s ===", time.Now().Format(time.RFC3339)))
	e.logToFile(fmt.Sprintf("Interval: %s, Verbose: %v", e.Interval, e.Verbose))
	e.logToFile("")

	return nil
}

// LogVerbose logs request-level detail (only when Verbose is enabled).
// It has the shape gateway.WithLogger expects.
func (e *Engine) LogVerbose(message string) {
	if !e.Verbose {
		return
	}

	e.logToFile(message)
}

// logToFile writes a message to the log file (if enabled)
func (e *Engine) logToFile(message string) {
	e.logMu.Lock()
	defer e.logMu.Unlock()

	if e.logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	_, _ = fmt.Fprintf(e.logFile, "[%s] %s\n", timestamp, message)
}
