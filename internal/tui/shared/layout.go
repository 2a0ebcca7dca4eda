package shared

import "github.com/charmbracelet/lipgloss"

// widthOverhead accounts for a box's borders (2) and horizontal padding (2).
const widthOverhead = 4

// RenderTwoColumnLayout renders content in two columns with a 60-40 width split.
// Columns are joined horizontally using lipgloss, aligned at the top.
func RenderTwoColumnLayout(leftContent, rightContent string, width int) string {
	leftWidth := int(float64(width) * 0.6) //nolint:mnd // 60-40 split
	rightWidth := width - leftWidth

	leftStyle := lipgloss.NewStyle().Width(leftWidth)
	rightStyle := lipgloss.NewStyle().Width(rightWidth)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftStyle.Render(leftContent),
		rightStyle.Render(rightContent),
	)
}

// RenderSection renders content in a titled box. The focused section gets the
// highlight border.
func RenderSection(title, content string, width int, focused bool) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor())

	boxStyle := BoxStyle()
	if focused {
		boxStyle = FocusedBoxStyle()
	}

	if width > widthOverhead {
		boxStyle = boxStyle.Width(width - widthOverhead)
	}

	return boxStyle.Render(titleStyle.Render(title) + "\n" + content)
}

// InnerWidth is the content width available inside a section of the given width.
func InnerWidth(width int) int {
	if width <= widthOverhead {
		return 0
	}

	return width - widthOverhead
}
