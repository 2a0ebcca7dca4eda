package widgets

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"github.com/joe/proxy-panel/internal/gateway"
	"github.com/joe/proxy-panel/internal/presenter"
)

// Fixed column widths; the target column takes the rest.
const (
	proxyColumnWidth   = 24
	latencyColumnWidth = 10
	schemeColumnWidth  = 8
	minTargetWidth     = 12
	columnGaps         = 8
)

// ResultColumns returns the results table columns sized to fit width.
func ResultColumns(width int) []table.Column {
	targetWidth := width - proxyColumnWidth - latencyColumnWidth - schemeColumnWidth - columnGaps
	if targetWidth < minTargetWidth {
		targetWidth = minTargetWidth
	}

	return []table.Column{
		{Title: "Proxy", Width: proxyColumnWidth},
		{Title: "Latency", Width: latencyColumnWidth},
		{Title: "Scheme", Width: schemeColumnWidth},
		{Title: "Target", Width: targetWidth},
	}
}

// ResultRows converts result rows to table rows, in order.
func ResultRows(rows []gateway.ResultRow) []table.Row {
	tableRows := make([]table.Row, 0, len(rows))
	for _, row := range rows {
		tableRows = append(tableRows, presenter.ResultCells(row))
	}

	return tableRows
}

// NewResultsSummaryWidget renders "N working proxies", noting how many a
// filter hides.
func NewResultsSummaryWidget(total, shown int, filter string) func() string {
	return func() string {
		noun := "working proxies"
		if total == 1 {
			noun = "working proxy"
		}

		if filter == "" || shown == total {
			return fmt.Sprintf("%d %s", total, noun)
		}

		return fmt.Sprintf("%d %s, %d matching %q", total, noun, shown, filter)
	}
}
