// Package plate describes the vehicle plate categories the keyboard understands.
//
// A Type carries its own constant table (maximum length, registry code, whether a
// province character leads the plate). Colours and labels belong to the presentation
// layer and are not kept here.
package plate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownType is returned when a name does not match any plate type.
var ErrUnknownType = errors.New("plate: unknown plate type")

// Type is a plate number category.
type Type int

const (
	Civil Type = iota
	NewEnergy
	ArmedPolice
	Military
	EmbassyOld
	EmbassyNew
	ConsulateOld
	ConsulateNew
	Aviation
	Unknown
)

const typeCount = int(Unknown) + 1

type typeInfo struct {
	name      string
	code      string
	maxLength int
	province  bool
	separator bool
}

var typeTable = [typeCount]typeInfo{
	Civil:        {name: "civil", code: "CIVIL", maxLength: 7, province: true, separator: true},
	NewEnergy:    {name: "new-energy", code: "NEW_ENERGY", maxLength: 8, province: true, separator: true},
	ArmedPolice:  {name: "armed-police", code: "WJ2012", maxLength: 9},
	Military:     {name: "military", code: "PLA2012", maxLength: 7, province: true, separator: true},
	EmbassyOld:   {name: "embassy-old", code: "SHI2012", maxLength: 6, separator: true},
	EmbassyNew:   {name: "embassy-new", code: "SHI2017", maxLength: 6, separator: true},
	ConsulateOld: {name: "consulate-old", code: "LING2012", maxLength: 6, separator: true},
	ConsulateNew: {name: "consulate-new", code: "LING2018", maxLength: 6, separator: true},
	Aviation:     {name: "aviation", code: "AVIATION", maxLength: 7, separator: true},
	Unknown:      {name: "unknown", code: "UNKNOWN", maxLength: 7},
}

// Types returns every plate type in declaration order.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for i := 0; i < typeCount; i++ {
		out = append(out, Type(i))
	}
	return out
}

// Valid reports whether t is one of the declared types.
func (t Type) Valid() bool {
	return t >= Civil && t <= Unknown
}

func (t Type) info() typeInfo {
	if !t.Valid() {
		return typeTable[Unknown]
	}
	return typeTable[t]
}

// MaxLength is the number of characters in a complete plate of this type.
func (t Type) MaxLength() int {
	return t.info().maxLength
}

// ProvincePrefixed reports whether plates of this type start with a province
// character followed by a letter.
func (t Type) ProvincePrefixed() bool {
	return t.info().province
}

// Separator reports whether a separator dot is drawn after the second character.
func (t Type) Separator() bool {
	return t.info().separator
}

// Code returns the legacy registry code, e.g. "WJ2012".
func (t Type) Code() string {
	return t.info().code
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeTable[t].name
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("marshal %d: %w", int(t), ErrUnknownType)
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType matches s against type names and registry codes, ignoring case,
// surrounding space and the '-'/'_' distinction.
func ParseType(s string) (Type, error) {
	norm := normalizeName(s)
	for i, info := range typeTable {
		if norm == normalizeName(info.name) || norm == normalizeName(info.code) {
			return Type(i), nil
		}
	}
	if hint := closestName(norm); hint != "" {
		return Unknown, fmt.Errorf("%q (did you mean %q?): %w", s, hint, ErrUnknownType)
	}
	return Unknown, fmt.Errorf("%q: %w", s, ErrUnknownType)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "_", "-")
}

// closestName returns the type name nearest to s, or "" when nothing is within
// a third of the input length.
func closestName(s string) string {
	if s == "" {
		return ""
	}
	best, bestDist := "", len(s)/3+1
	for _, info := range typeTable {
		for _, candidate := range []string{info.name, normalizeName(info.code)} {
			if d := levenshtein.ComputeDistance(s, candidate); d < bestDist {
				best, bestDist = info.name, d
			}
		}
	}
	return best
}
