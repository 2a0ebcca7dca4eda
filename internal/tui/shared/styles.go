package shared

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/proxy-panel/internal/syncengine"
)

// Exported constants organized by category for clarity.
const (
	// ============================================================================
	// UI Layout & Display
	// ============================================================================

	// DefaultWidth is used until the first WindowSizeMsg arrives
	DefaultWidth = 100
	// DefaultHeight is used until the first WindowSizeMsg arrives
	DefaultHeight = 40
	// MinPanelHeight is the smallest height given to the log viewport or results table
	MinPanelHeight = 4

	// ============================================================================
	// Time Intervals
	// ============================================================================

	// TickIntervalMs is the interval for clock tick messages in milliseconds
	TickIntervalMs = 1000
	// RefreshBurst is how many manual refreshes may run back to back
	RefreshBurst = 2
	// RefreshIntervalMs is the minimum spacing of manual refreshes after the burst
	RefreshIntervalMs = 1500

	// ============================================================================
	// Display Limits
	// ============================================================================

	// MaxActivityEntries is how many activity lines the panel keeps
	MaxActivityEntries = 50
	// EllipsisLength is the length of the "..." suffix for truncated text
	EllipsisLength = 3

	// ============================================================================
	// Keys & Symbols
	// ============================================================================

	// KeyCtrlC is the key binding for quitting
	KeyCtrlC = "ctrl+c"
	// PromptArrow is the arrow character used in prompts
	PromptArrow = "▶ "
)

func AccentColor() lipgloss.Color { return lipgloss.Color(accentColorCode) }

// ============================================================================
// Box and Container Styles
// ============================================================================

// BoxStyle returns the style for boxes with padding
func BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor()).
		Padding(0, 1)
}

// FocusedBoxStyle is BoxStyle with the highlight border used for the focused section.
func FocusedBoxStyle() lipgloss.Style {
	return BoxStyle().BorderForeground(HighlightColor())
}

func DimColor() lipgloss.Color { return lipgloss.Color(dimColorCode) }

// DimStyle returns the style for dimmed text
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(DimColor())
}

func ErrorColor() lipgloss.Color { return lipgloss.Color(errorColorCode) }

// ErrorStyle returns the style for error messages
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ErrorColor()).
		Bold(true)
}

func HighlightColor() lipgloss.Color { return lipgloss.Color(highlightColorCode) }

// LabelStyle returns the style for labels
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(HighlightColor()).
		Bold(true)
}

func NormalColor() lipgloss.Color { return lipgloss.Color(normalColorCode) }

// PrimaryColor returns the primary color for the UI
func PrimaryColor() lipgloss.Color { return lipgloss.Color(primaryColorCode) }

// RenderDim renders dimmed text with consistent styling
func RenderDim(text string) string {
	return DimStyle().Render(text)
}

// RenderError renders an error message with consistent styling
func RenderError(text string) string {
	return ErrorStyle().Render(text)
}

// RenderLabel renders a label with consistent styling
func RenderLabel(text string) string {
	return LabelStyle().Render(text)
}

// RenderStatusBadge renders label as a colored pill for the given class.
func RenderStatusBadge(label string, class syncengine.StatusClass) string {
	return StatusBadgeStyle(class).Render(label)
}

// RenderSuccess renders a success message with consistent styling
func RenderSuccess(text string) string {
	return SuccessStyle().Render(text)
}

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle().Render(text)
}

// RenderWarning renders a warning message with consistent styling
func RenderWarning(text string) string {
	return WarningStyle().Render(text)
}

// StatusBadgeStyle picks the badge colors: green running, yellow stopping, gray idle.
func StatusBadgeStyle(class syncengine.StatusClass) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch class {
	case syncengine.StatusRunning:
		return base.Background(SuccessColor()).Foreground(lipgloss.Color(badgeTextColorCode))
	case syncengine.StatusStopping:
		return base.Background(WarningColor()).Foreground(lipgloss.Color(badgeTextColorCode))
	default:
		return base.Background(DimColor()).Foreground(NormalColor())
	}
}

func SuccessColor() lipgloss.Color { return lipgloss.Color(successColorCode) }

// SuccessStyle returns the style for success messages
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(SuccessColor()).
		Bold(true)
}

// ============================================================================
// Text Styles
// ============================================================================

// TitleStyle returns the style for titles
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor())
}

func WarningColor() lipgloss.Color { return lipgloss.Color(warningColorCode) }

// WarningStyle returns the style for warning messages
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(WarningColor()).
		Bold(true)
}

// unexported constants.
const (
	accentColorCode    = "62"  // Blue
	badgeTextColorCode = "16"  // Black
	dimColorCode       = "240" // Dark gray
	errorColorCode     = "196" // Red
	highlightColorCode = "86"  // Cyan
	normalColorCode    = "252" // Light gray
	// Primary colors
	primaryColorCode = "205" // Pink/purple
	successColorCode = "42"  // Green
	warningColorCode = "226"
)
