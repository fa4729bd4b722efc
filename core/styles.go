package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/platekbd/widgets"
)

// The bars share the keyboard's palette.
var (
	palette = widgets.DefaultPalette()

	colorText     = palette.Text
	colorMuted    = palette.Muted
	colorAccent   = palette.Accent
	colorSuccess  = palette.Success
	colorError    = palette.Error
	colorSurface0 = palette.Surface
	colorMantle   = palette.Bar
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)

// RenderHeader draws the title line: app name on the left, detail on the right.
func RenderHeader(title, detail string, width int) string {
	left := headerStyle.Render(title)
	right := lipgloss.NewStyle().Foreground(colorText).Render(detail)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return TrimToWidth(left+" "+right, width)
	}
	return left + strings.Repeat(" ", gap) + right
}
