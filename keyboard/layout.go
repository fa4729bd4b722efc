package keyboard

import (
	"fmt"
	"strings"

	"github.com/jask/platekbd/plate"
)

// Row is one line of keys, rendered left to right.
type Row []Key

// Layout is the ordered set of rows shown at once.
type Layout []Row

var (
	extendedLayout = layoutOf(
		"学警港澳航挂试超使领",
		"1234567890",
		"ABCDEFGHJK",
		"WXYZ"+string([]rune{rune(Empty), rune(Back), rune(Delete), rune(Confirm)}),
	)
	provinceLayout = layoutOf(
		"京津晋冀蒙辽吉黑沪苏",
		"浙皖闽赣鲁豫鄂湘粤桂",
		"琼渝川贵云藏陕甘",
		"青宁新台"+string([]rune{rune(Empty), rune(ShowMore), rune(Delete), rune(Confirm)}),
	)
	standardLayout = layoutOf(
		"1234567890",
		"QWERTYUIOP",
		"ASDFGHJKLM",
		"ZXCVBN"+string([]rune{rune(Empty), rune(ShowMore), rune(Delete), rune(Confirm)}),
	)
)

// SelectLayout picks the rows to show for the next character of a plate.
//
// The extended layout wins whenever showMore is set. Otherwise province-prefixed
// plates start on the province layout and everything else uses the standard one.
// The returned layout is a fresh copy.
func SelectLayout(selectIndex int, showMore bool, t plate.Type) (Layout, error) {
	if err := checkIndex(selectIndex, t); err != nil {
		return nil, err
	}
	switch {
	case showMore:
		return extendedLayout.clone(), nil
	case selectIndex == 0 && t.ProvincePrefixed():
		return provinceLayout.clone(), nil
	default:
		return standardLayout.clone(), nil
	}
}

func checkIndex(selectIndex int, t plate.Type) error {
	if selectIndex < 0 || selectIndex > t.MaxLength() {
		return fmt.Errorf("index %d outside [0, %d] for %s: %w", selectIndex, t.MaxLength(), t, ErrInvalidIndex)
	}
	return nil
}

// Keys returns every key of the layout in reading order.
func (l Layout) Keys() []Key {
	var out []Key
	for _, row := range l {
		out = append(out, row...)
	}
	return out
}

// Count returns how many times k appears in the layout.
func (l Layout) Count(k Key) int {
	n := 0
	for _, row := range l {
		for _, key := range row {
			if key == k {
				n++
			}
		}
	}
	return n
}

func (l Layout) Contains(k Key) bool {
	_, _, ok := l.Find(k)
	return ok
}

// Find returns the position of the first occurrence of k.
func (l Layout) Find(k Key) (row, col int, ok bool) {
	for r, keys := range l {
		for c, key := range keys {
			if key == k {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// Equal reports whether both layouts hold the same keys in the same places.
func (l Layout) Equal(other Layout) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if len(l[i]) != len(other[i]) {
			return false
		}
		for j := range l[i] {
			if l[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

func (l Layout) String() string {
	lines := make([]string, len(l))
	for i, row := range l {
		lines[i] = row.String()
	}
	return strings.Join(lines, "\n")
}

func (r Row) String() string {
	var b strings.Builder
	for _, k := range r {
		if k.IsControl() {
			b.WriteString("<" + k.String() + ">")
			continue
		}
		b.WriteRune(rune(k))
	}
	return b.String()
}

func (l Layout) clone() Layout {
	out := make(Layout, len(l))
	for i, row := range l {
		out[i] = append(Row(nil), row...)
	}
	return out
}

func layoutOf(rows ...string) Layout {
	out := make(Layout, len(rows))
	for i, row := range rows {
		out[i] = Row(keysOf(row))
	}
	return out
}
