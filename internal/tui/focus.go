package tui

import "github.com/jask/platekbd/keyboard"

// ensureFocus keeps the cursor on an enabled key of the current layout. When
// the focused key is gone or closed the cursor jumps to the nearest enabled
// key, counting rows and columns as equal steps.
func (a *App) ensureFocus() {
	layout := a.session.Layout()
	policy := a.session.Policy()
	if a.focusable(layout, policy, a.focusRow, a.focusCol) {
		return
	}
	bestRow, bestCol, best := a.focusRow, a.focusCol, -1
	for r, row := range layout {
		for c := range row {
			if !a.focusable(layout, policy, r, c) {
				continue
			}
			d := abs(r-a.focusRow) + abs(c-a.focusCol)
			if best < 0 || d < best {
				bestRow, bestCol, best = r, c, d
			}
		}
	}
	if best < 0 {
		bestRow, bestCol = clampFocus(layout, a.focusRow, a.focusCol)
	}
	a.focusRow, a.focusCol = bestRow, bestCol
}

// moveFocus steps the cursor, skipping Empty cells. Closed keys can be
// focused so the user sees why they do nothing.
func (a *App) moveFocus(dr, dc int) {
	layout := a.session.Layout()
	r, c := a.focusRow, a.focusCol
	if dr != 0 {
		r += dr
		if r < 0 || r >= len(layout) {
			return
		}
		c = min(c, len(layout[r])-1)
		for c > 0 && layout[r][c] == keyboard.Empty {
			c--
		}
	}
	if dc != 0 {
		for next := c + dc; next >= 0 && next < len(layout[r]); next += dc {
			if layout[r][next] != keyboard.Empty {
				c = next
				break
			}
		}
	}
	a.focusRow, a.focusCol = r, c
}

func (a *App) focusable(layout keyboard.Layout, policy keyboard.Policy, r, c int) bool {
	if r < 0 || r >= len(layout) || c < 0 || c >= len(layout[r]) {
		return false
	}
	k := layout[r][c]
	return k.Tappable() && policy.Enabled(k)
}

func clampFocus(layout keyboard.Layout, r, c int) (int, int) {
	if len(layout) == 0 {
		return 0, 0
	}
	r = min(max(0, r), len(layout)-1)
	c = min(max(0, c), len(layout[r])-1)
	return r, c
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
