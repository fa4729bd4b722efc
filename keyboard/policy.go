package keyboard

import "github.com/jask/platekbd/plate"

// Policy decides whether a key is enabled (tappable) or greyed out.
type Policy interface {
	Enabled(k Key) bool
}

// AllOpen enables every key.
type AllOpen struct{}

func (AllOpen) Enabled(Key) bool { return true }

// AllClose disables every key.
type AllClose struct{}

func (AllClose) Enabled(Key) bool { return false }

type keySet map[Key]struct{}

func newKeySet(keys []Key) keySet {
	set := make(keySet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func (s keySet) has(k Key) bool {
	_, ok := s[k]
	return ok
}

// WhiteList enables only the keys it was built with.
type WhiteList struct {
	keys keySet
}

func NewWhiteList(keys ...Key) WhiteList {
	return WhiteList{keys: newKeySet(keys)}
}

// WhiteListOf builds a WhiteList from the runes of s.
func WhiteListOf(s string) WhiteList {
	return NewWhiteList(keysOf(s)...)
}

func (w WhiteList) Enabled(k Key) bool {
	return w.keys.has(k)
}

// BlackList enables every key except the ones it was built with.
type BlackList struct {
	keys keySet
}

func NewBlackList(keys ...Key) BlackList {
	return BlackList{keys: newKeySet(keys)}
}

// BlackListOf builds a BlackList from the runes of s.
func BlackListOf(s string) BlackList {
	return NewBlackList(keysOf(s)...)
}

func (b BlackList) Enabled(k Key) bool {
	return !b.keys.has(k)
}

// PlateNumber applies the plate character rules for the key at Index.
type PlateNumber struct {
	Type  plate.Type
	Index int
}

// NewPlateNumber returns the plate policy for the next character, rejecting an
// index outside [0, t.MaxLength()].
func NewPlateNumber(t plate.Type, index int) (PlateNumber, error) {
	if err := checkIndex(index, t); err != nil {
		return PlateNumber{}, err
	}
	return PlateNumber{Type: t, Index: index}, nil
}

func (p PlateNumber) Enabled(k Key) bool {
	return IsKeyEnabled(k, p.Index, p.Type)
}

// IsKeyEnabled reports whether k may be pressed when selectIndex characters of
// a plate of type t have been entered.
//
// Delete needs something to delete; Confirm, ShowMore and Back are always
// available. Printable keys are closed once the plate is full (or the index is
// out of range), and characters the keyboard never offers are always closed.
// Province-prefixed plates take a province first and a letter
// second; I and O are never accepted elsewhere.
func IsKeyEnabled(k Key, selectIndex int, t plate.Type) bool {
	switch k {
	case Delete:
		return selectIndex > 0
	case Confirm:
		return true
	case ShowMore, Back:
		return true
	case Empty:
		return false
	}
	if !k.IsPrintable() || selectIndex < 0 || selectIndex >= t.MaxLength() {
		return false
	}
	if t.ProvincePrefixed() {
		switch selectIndex {
		case 0:
			return k.IsProvince()
		case 1:
			return k.IsLetter()
		}
	}
	return k != 'I' && k != 'O'
}
