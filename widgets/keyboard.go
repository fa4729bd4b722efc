package widgets

import (
	"strings"

	"github.com/jask/platekbd/keyboard"
)

// Label is the text drawn on a key cap.
func Label(k keyboard.Key) string {
	switch k {
	case keyboard.Delete:
		return "DEL"
	case keyboard.Confirm:
		return "OK"
	case keyboard.ShowMore:
		return "MORE"
	case keyboard.Back:
		return "BACK"
	case keyboard.Empty:
		return ""
	default:
		return k.String()
	}
}

// KeyboardView draws a layout one text line per row with RowGap blank lines
// between rows. Keys the policy closes are dimmed. The key at FocusRow,
// FocusCol is highlighted; a negative FocusRow hides the focus.
type KeyboardView struct {
	Layout   keyboard.Layout
	Policy   keyboard.Policy
	FocusRow int
	FocusCol int
	Slots    int
	Spacing  int
	RowGap   int
	Theme    Theme
}

// Height is the number of lines Render produces.
func (v KeyboardView) Height() int {
	if len(v.Layout) == 0 {
		return 0
	}
	return len(v.Layout) + (len(v.Layout)-1)*max(0, v.RowGap)
}

func (v KeyboardView) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(v.Layout) == 0 {
		return ""
	}
	policy := v.Policy
	if policy == nil {
		policy = keyboard.AllOpen{}
	}
	blank := strings.Repeat(" ", width)
	lines := make([]string, 0, v.Height())
	for r, row := range v.Layout {
		if r > 0 {
			for g := 0; g < v.RowGap; g++ {
				lines = append(lines, blank)
			}
		}
		plan := PlanRow(row, width, v.Slots, v.Spacing)
		var b strings.Builder
		pos := 0
		for c, cell := range plan.Cells {
			if cell.X > pos {
				b.WriteString(strings.Repeat(" ", cell.X-pos))
			}
			face := Center(Label(cell.Key), cell.Width)
			if cell.Key == keyboard.Empty {
				b.WriteString(face)
			} else {
				focused := r == v.FocusRow && c == v.FocusCol
				b.WriteString(v.Theme.KeyStyle(cell.Key, policy.Enabled(cell.Key), focused).Render(face))
			}
			pos = cell.X + cell.Width
		}
		lines = append(lines, padRight(b.String(), width))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return joinLines(lines)
}

// KeyAt maps a cell of the rendered view back to the key drawn there.
func (v KeyboardView) KeyAt(width, x, y int) (row, col int, ok bool) {
	if y < 0 || x < 0 {
		return 0, 0, false
	}
	stride := 1 + max(0, v.RowGap)
	if y%stride != 0 {
		return 0, 0, false
	}
	row = y / stride
	if row >= len(v.Layout) {
		return 0, 0, false
	}
	plan := PlanRow(v.Layout[row], width, v.Slots, v.Spacing)
	for c, cell := range plan.Cells {
		if x >= cell.X && x < cell.X+cell.Width {
			if cell.Key == keyboard.Empty {
				return 0, 0, false
			}
			return row, c, true
		}
	}
	return 0, 0, false
}
