package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Table lays rows out in aligned columns. Column widths are measured in
// display cells, so CJK text lines up. Plain output has no colors.
type Table struct {
	Headers []string
	Rows    [][]string
	Plain   bool
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], ansi.StringWidth(row[i]))
		}
	}

	header := t.line(t.Headers, widths)
	if !t.Plain {
		header = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(header)
	}
	lines := []string{ansi.Truncate(header, width, "")}
	for _, row := range t.Rows {
		if len(lines) >= height {
			break
		}
		lines = append(lines, ansi.Truncate(t.line(row, widths), width, ""))
	}
	return joinLines(lines)
}

func (t Table) line(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if i == len(widths)-1 {
			parts[i] = cell
			continue
		}
		parts[i] = padRight(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
