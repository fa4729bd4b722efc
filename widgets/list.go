package widgets

import "github.com/charmbracelet/lipgloss"

// List renders a titled list with one highlighted row. Rows scroll so the
// cursor stays visible.
type List struct {
	Title  string
	Items  []string
	Cursor int
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)
	cursorStyle := lipgloss.NewStyle().Foreground(colorCrust).Background(colorFocus)
	itemStyle := lipgloss.NewStyle().Foreground(colorText)

	rows := make([]string, 0, height)
	if l.Title != "" {
		rows = append(rows, titleStyle.Render(padRight(l.Title, width)))
	}
	visible := height - len(rows)
	if visible <= 0 {
		return joinLines(rows)
	}
	if len(l.Items) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(colorMuted).Render("(no matches)"))
		return joinLines(rows)
	}
	cursor := min(max(0, l.Cursor), len(l.Items)-1)
	offset := 0
	if cursor >= visible {
		offset = cursor - visible + 1
	}
	for i := offset; i < len(l.Items) && i < offset+visible; i++ {
		line := padRight("  "+l.Items[i], width)
		if i == cursor {
			line = cursorStyle.Render(padRight("> "+l.Items[i], width))
		} else {
			line = itemStyle.Render(line)
		}
		rows = append(rows, line)
	}
	return joinLines(rows)
}
