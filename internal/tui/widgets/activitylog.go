package widgets

import "strings"

// DefaultActivityEntries is how many activity lines the widget shows.
const DefaultActivityEntries = 6

// NewActivityLogWidget creates a widget that displays the most recent
// maxEntries activity entries, oldest first. maxEntries <= 0 means
// DefaultActivityEntries.
func NewActivityLogWidget(getActivities func() []string, maxEntries int) func() string {
	if maxEntries <= 0 {
		maxEntries = DefaultActivityEntries
	}

	return func() string {
		activities := getActivities()
		if len(activities) == 0 {
			return ""
		}

		startIdx := 0
		if len(activities) > maxEntries {
			startIdx = len(activities) - maxEntries
		}

		return strings.Join(activities[startIdx:], "\n")
	}
}
