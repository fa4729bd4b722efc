package widgets

import "github.com/jask/platekbd/keyboard"

// DefaultSlots is the number of unit-weight keys a full row holds.
const DefaultSlots = 10

// Weight is the share of a slot a key takes. Control keys are wider.
func Weight(k keyboard.Key) float64 {
	switch k {
	case keyboard.ShowMore, keyboard.Back, keyboard.Delete, keyboard.Confirm:
		return 1.5
	default:
		return 1
	}
}

// KeyCell is the horizontal extent of one key in a row.
type KeyCell struct {
	Key   keyboard.Key
	X     int
	Width int
}

// RowPlan places the keys of a row inside a given width.
type RowPlan struct {
	Cells []KeyCell
}

// PlanRow distributes width among the keys of row.
//
// Every row is measured as if it held slots unit keys separated by spacing, so a
// unit key has the same width in every row. A key of weight w gets w slots; when
// the weights or the number of keys exceed slots the row is scaled down to fit,
// so every key of row gets a cell. The spacing and width a short row leaves over
// go to its Empty key when it has one; otherwise the row is centred.
func PlanRow(row keyboard.Row, width, slots, spacing int) RowPlan {
	if slots <= 0 {
		slots = DefaultSlots
	}
	if spacing < 0 {
		spacing = 0
	}
	n := len(row)
	columns := max(slots, n)
	effective := width - (columns-1)*spacing
	if effective < 0 {
		effective = 0
	}

	total := float64(slots)
	if sum := rowWeight(row); sum > total {
		total = sum
	}

	cells := make([]KeyCell, n)
	used := 0
	fill := -1
	for i := 0; i < n; i++ {
		k := row[i]
		if k == keyboard.Empty {
			fill = i
		}
		w := int(float64(effective) * Weight(k) / total)
		cells[i] = KeyCell{Key: k, Width: w}
		used += w
	}

	extra := (columns - n) * spacing
	padding := 0
	if fill >= 0 {
		extra += effective - used
		if extra < 0 {
			extra = 0
		}
	} else {
		padding = (effective - used + extra) / 2
		if padding < 0 {
			padding = 0
		}
	}

	x := padding
	for i := range cells {
		cells[i].X = x
		x += cells[i].Width + spacing
		if i == fill {
			cells[i].Width += extra
			x += extra
		}
	}
	return RowPlan{Cells: cells}
}

func rowWeight(row keyboard.Row) float64 {
	sum := 0.0
	for _, k := range row {
		sum += Weight(k)
	}
	return sum
}

// Span is the number of columns from the row start to the end of the last key.
func (p RowPlan) Span() int {
	if len(p.Cells) == 0 {
		return 0
	}
	last := p.Cells[len(p.Cells)-1]
	return last.X + last.Width
}
