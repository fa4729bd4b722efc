package keyboard

import "strings"

// Key is a single keyboard key: a printable character or one of the control keys.
type Key rune

// Control keys live in the private use area so they never collide with a
// printable character. Empty is a placeholder that renders as blank space and
// absorbs spare row width.
const (
	Delete   Key = '\uE000'
	Confirm  Key = '\uE001'
	ShowMore Key = '\uE002'
	Back     Key = '\uE003'
	Empty    Key = '\uE004'
)

const (
	provinceChars = "京津晋冀蒙辽吉黑沪苏浙皖闽赣鲁豫鄂湘粤桂琼渝川贵云藏陕甘青宁新台"
	specialChars  = "学警港澳航挂试超使领"
)

var controlNames = map[Key]string{
	Delete:   "Delete",
	Confirm:  "Confirm",
	ShowMore: "ShowMore",
	Back:     "Back",
	Empty:    "Empty",
}

// Provinces returns the province abbreviations in keyboard order.
func Provinces() []Key {
	return keysOf(provinceChars)
}

// IsControl reports whether k is Delete, Confirm, ShowMore, Back or Empty.
func (k Key) IsControl() bool {
	_, ok := controlNames[k]
	return ok
}

// IsPrintable reports whether k appends a character to the plate.
func (k Key) IsPrintable() bool {
	return k.IsDigit() || k.IsLetter() || k.IsProvince() || k.IsSpecial()
}

// IsProvince reports whether k is one of the 32 province abbreviations.
func (k Key) IsProvince() bool {
	return strings.ContainsRune(provinceChars, rune(k))
}

// IsSpecial reports whether k is one of the special-use characters of the
// extended layout (学, 警, 港, ...).
func (k Key) IsSpecial() bool {
	return strings.ContainsRune(specialChars, rune(k))
}

// IsLetter reports whether k is an uppercase Latin letter.
func (k Key) IsLetter() bool {
	return k >= 'A' && k <= 'Z'
}

func (k Key) IsDigit() bool {
	return k >= '0' && k <= '9'
}

// Tappable reports whether pressing k does anything. Only Empty is inert.
func (k Key) Tappable() bool {
	return k != Empty
}

func (k Key) String() string {
	if name, ok := controlNames[k]; ok {
		return name
	}
	return string(rune(k))
}

func keysOf(s string) []Key {
	out := make([]Key, 0, len(s))
	for _, r := range s {
		out = append(out, Key(r))
	}
	return out
}
