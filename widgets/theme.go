package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/platekbd/keyboard"
	"github.com/jask/platekbd/plate"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorRed      lipgloss.Color = "#f38ba8"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorBlue
	colorFocus   = colorLavender
	colorError   = colorRed
	colorSuccess = colorGreen
	colorMuted   = colorSubtext0
)

// Palette names the colors shared by the keyboard and the screen chrome.
type Palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Surface lipgloss.Color
	Bar     lipgloss.Color
}

func DefaultPalette() Palette {
	return Palette{
		Text:    colorText,
		Muted:   colorMuted,
		Accent:  colorAccent,
		Success: colorSuccess,
		Error:   colorError,
		Surface: colorSurface0,
		Bar:     colorMantle,
	}
}

// Theme holds the styles used to draw keys and the plate field.
type Theme struct {
	Palette  Palette
	Key      lipgloss.Style
	Primary  lipgloss.Style
	Action   lipgloss.Style
	Disabled lipgloss.Style
	Focused  lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Palette:  DefaultPalette(),
		Key:      lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0),
		Primary:  lipgloss.NewStyle().Foreground(colorCrust).Background(colorAccent).Bold(true),
		Action:   lipgloss.NewStyle().Foreground(colorText).Background(colorSurface2),
		Disabled: lipgloss.NewStyle().Foreground(colorOverlay0).Background(colorMantle),
		Focused:  lipgloss.NewStyle().Foreground(colorCrust).Background(colorFocus).Bold(true),
		Status:   lipgloss.NewStyle().Foreground(colorSuccess),
		Error:    lipgloss.NewStyle().Foreground(colorError),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
	}
}

// KeyStyle picks the style of a key from its role and state. Confirm is the
// primary key and Delete a secondary action, as on the touch keyboard.
func (t Theme) KeyStyle(k keyboard.Key, enabled, focused bool) lipgloss.Style {
	switch {
	case focused:
		return t.Focused
	case !enabled:
		return t.Disabled
	case k == keyboard.Confirm:
		return t.Primary
	case k == keyboard.Delete:
		return t.Action
	default:
		return t.Key
	}
}

// PlateColors returns the container and content colors of a physical plate.
func PlateColors(t plate.Type) (container, content lipgloss.Color) {
	switch t {
	case plate.Civil:
		return "#1e66f5", "#eff1f5"
	case plate.NewEnergy:
		return colorGreen, colorCrust
	case plate.ArmedPolice, plate.Military, plate.Aviation:
		return "#eff1f5", colorCrust
	case plate.EmbassyOld, plate.EmbassyNew, plate.ConsulateOld, plate.ConsulateNew:
		return colorCrust, "#eff1f5"
	default:
		return colorOverlay1, "#eff1f5"
	}
}

// PlateStyle is the style of one character cell of the plate field.
func PlateStyle(t plate.Type) lipgloss.Style {
	container, content := PlateColors(t)
	return lipgloss.NewStyle().Background(container).Foreground(content).Bold(true)
}

// AllPaletteColors returns every palette color used by the theme, for tests.
func AllPaletteColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorGreen, colorBlue, colorLavender, colorRed,
		colorText, colorSubtext0, colorOverlay1, colorOverlay0,
		colorSurface2, colorSurface1, colorSurface0,
		colorBase, colorMantle, colorCrust,
	}
}
