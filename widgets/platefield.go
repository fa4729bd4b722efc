package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/platekbd/plate"
)

const separatorAfter = 2

// PlateField draws the plate as one cell per character in the plate's colors.
// The cell the next character goes into is underlined while focused; on a
// full plate that is the last cell. Types with a separator get a dot after the
// second cell.
type PlateField struct {
	Text    string
	Type    plate.Type
	Focused bool
}

// Selected is the cell index the cursor sits on.
func (f PlateField) Selected() int {
	return min(len([]rune(f.Text)), f.Type.MaxLength()-1)
}

func (f PlateField) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	base := PlateStyle(f.Type)
	cursor := base.Underline(true).Reverse(true)
	text := []rune(f.Text)
	selected := f.Selected()

	var b strings.Builder
	for i := 0; i < f.Type.MaxLength(); i++ {
		if i == separatorAfter && f.Type.Separator() {
			b.WriteString(base.Render("•"))
		}
		face := "_"
		if i < len(text) {
			face = string(text[i])
		}
		face = Center(face, 2)
		if f.Focused && i == selected {
			b.WriteString(cursor.Render(" " + face + " "))
			continue
		}
		b.WriteString(base.Render(" " + face + " "))
	}
	field := b.String()
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, field)
}
