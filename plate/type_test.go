package plate

import (
	"errors"
	"strings"
	"testing"
)

func TestMaxLength(t *testing.T) {
	want := map[Type]int{
		Civil:        7,
		NewEnergy:    8,
		ArmedPolice:  9,
		Military:     7,
		EmbassyOld:   6,
		EmbassyNew:   6,
		ConsulateOld: 6,
		ConsulateNew: 6,
		Aviation:     7,
		Unknown:      7,
	}
	for typ, n := range want {
		if got := typ.MaxLength(); got != n {
			t.Fatalf("%s max length = %d, want %d", typ, got, n)
		}
	}
	if got := Type(42).MaxLength(); got != 7 {
		t.Fatalf("out of range max length = %d, want 7", got)
	}
}

func TestProvincePrefixedFamily(t *testing.T) {
	for _, typ := range Types() {
		want := typ == Civil || typ == NewEnergy || typ == Military
		if got := typ.ProvincePrefixed(); got != want {
			t.Fatalf("%s province prefixed = %v, want %v", typ, got, want)
		}
	}
}

func TestSeparator(t *testing.T) {
	if ArmedPolice.Separator() || Unknown.Separator() {
		t.Fatal("armed police and unknown plates have no separator")
	}
	if !Civil.Separator() || !ConsulateNew.Separator() {
		t.Fatal("civil and consulate plates draw a separator")
	}
}

func TestTypesOrder(t *testing.T) {
	types := Types()
	if len(types) != 10 {
		t.Fatalf("type count = %d, want 10", len(types))
	}
	if types[0] != Civil || types[len(types)-1] != Unknown {
		t.Fatalf("types = %v, want civil first and unknown last", types)
	}
}

func TestParseTypeByNameAndCode(t *testing.T) {
	cases := map[string]Type{
		"civil":         Civil,
		" Civil ":       Civil,
		"NEW_ENERGY":    NewEnergy,
		"new-energy":    NewEnergy,
		"wj2012":        ArmedPolice,
		"PLA2012":       Military,
		"consulate_new": ConsulateNew,
		"aviation":      Aviation,
	}
	for in, want := range cases {
		got, err := ParseType(in)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseType(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseTypeSuggestsClosest(t *testing.T) {
	_, err := ParseType("civl")
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
	if !strings.Contains(err.Error(), `did you mean "civil"`) {
		t.Fatalf("err = %q, want a civil suggestion", err)
	}

	_, err = ParseType("zzzzzzzzzzzz")
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("err = %v, want ErrUnknownType", err)
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Fatalf("err = %q, want no suggestion for distant input", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		text, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("marshal %s: %v", typ, err)
		}
		var got Type
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if got != typ {
			t.Fatalf("round trip = %s, want %s", got, typ)
		}
	}
	if _, err := Type(-1).MarshalText(); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("marshal invalid err = %v, want ErrUnknownType", err)
	}
}
