package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane frames a child widget with a rounded border and a title set into the
// top edge. The border is accented while the pane has focus.
type Pane struct {
	Title   string
	Body    Widget
	Focused bool
}

func (p Pane) Render(width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}
	border := colorOverlay0
	if p.Focused {
		border = colorAccent
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(colorText).Bold(true)

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	titleText := ""
	if title := strings.TrimSpace(p.Title); title != "" {
		titleText = " " + ansi.Truncate(title, max(1, innerWidth-4), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", dashes-leftDash)+"╮")

	innerHeight := height - 2
	var body []string
	if p.Body != nil {
		body = splitToLines(p.Body.Render(contentWidth, innerHeight), innerHeight)
	} else {
		body = splitToLines("", innerHeight)
	}
	side := borderStyle.Render("│")
	rows := make([]string, 0, height)
	rows = append(rows, top)
	for _, line := range body {
		rows = append(rows, side+" "+padRight(line, contentWidth)+" "+side)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return joinLines(rows)
}
