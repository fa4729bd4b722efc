package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/platekbd/keyboard"
	"github.com/jask/platekbd/plate"
)

func TestPressBuildsCivilPlate(t *testing.T) {
	s := New(plate.Civil)
	for _, k := range []keyboard.Key{'粤', 'B', '1', '2', '3', '4', '5'} {
		if _, err := s.Press(k); err != nil {
			t.Fatalf("press %s: %v", k, err)
		}
	}
	if got := s.Text(); got != "粤B12345" {
		t.Fatalf("text = %q, want %q", got, "粤B12345")
	}
	if !s.Complete() {
		t.Fatal("plate should be complete")
	}
	if _, err := s.Press('6'); !errors.Is(err, keyboard.ErrFull) {
		t.Fatalf("press on full plate err = %v, want ErrFull", err)
	}
	ev, err := s.Press(keyboard.Confirm)
	if err != nil || ev != EventConfirmed {
		t.Fatalf("confirm = %v, %v", ev, err)
	}
	if !s.Confirmed() {
		t.Fatal("session should be confirmed")
	}
}

func TestPressRejectsDisabledKeys(t *testing.T) {
	s := New(plate.Civil)
	if _, err := s.Press('A'); !errors.Is(err, keyboard.ErrKeyDisabled) {
		t.Fatalf("letter at index 0 err = %v, want ErrKeyDisabled", err)
	}
	if _, err := s.Press(keyboard.Delete); !errors.Is(err, keyboard.ErrKeyDisabled) {
		t.Fatalf("delete at index 0 err = %v, want ErrKeyDisabled", err)
	}
	if _, err := s.Press(keyboard.Empty); !errors.Is(err, keyboard.ErrNotTappable) {
		t.Fatalf("empty err = %v, want ErrNotTappable", err)
	}
	if s.Index() != 0 {
		t.Fatalf("index = %d after rejected presses, want 0", s.Index())
	}
}

func TestLayoutFollowsState(t *testing.T) {
	require := require.New(t)
	s := New(plate.Civil)

	require.True(s.Layout().Contains('京'))

	ev, err := s.Press(keyboard.ShowMore)
	require.NoError(err)
	require.Equal(EventMoreShown, ev)
	require.True(s.ShowMore())
	require.True(s.Layout().Contains('学'))
	require.True(s.Layout().Contains(keyboard.Back))

	ev, err = s.Press(keyboard.Back)
	require.NoError(err)
	require.Equal(EventMoreHidden, ev)
	require.False(s.ShowMore())

	_, err = s.Press('京')
	require.NoError(err)
	require.True(s.Layout().Contains('Q'))
	require.False(s.Layout().Contains('京'))
	require.True(s.Policy().Enabled('Q'))
	require.False(s.Policy().Enabled('1'))
}

func TestDeleteReopensProvinceLayout(t *testing.T) {
	s := New(plate.NewEnergy, WithText("沪A"))
	if s.Text() != "沪A" {
		t.Fatalf("prefill = %q, want 沪A", s.Text())
	}
	ev, err := s.Press(keyboard.Delete)
	if err != nil || ev != EventDeleted {
		t.Fatalf("delete = %v, %v", ev, err)
	}
	if _, err := s.Press(keyboard.Delete); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if !s.Layout().Contains('沪') {
		t.Fatal("empty new-energy plate should show the province layout")
	}
}

func TestConfirmRequiresFull(t *testing.T) {
	s := New(plate.EmbassyNew, WithConfirmRequiresFull(true))
	if _, err := s.Press(keyboard.Confirm); !errors.Is(err, ErrConfirmIncomplete) {
		t.Fatalf("confirm on empty plate err = %v, want ErrConfirmIncomplete", err)
	}
	if _, err := s.Feed("12345使"); err != nil {
		t.Fatalf("feed: %v", err)
	}
	if _, err := s.Press(keyboard.Confirm); err != nil {
		t.Fatalf("confirm on full plate: %v", err)
	}
}

func TestConfirmPermissiveByDefault(t *testing.T) {
	s := New(plate.Civil)
	if _, err := s.Press(keyboard.Confirm); err != nil {
		t.Fatalf("confirm on empty plate: %v", err)
	}
	if !s.Confirmed() || s.Complete() {
		t.Fatal("expected a confirmed but incomplete plate")
	}
}

func TestFeedNormalizesInput(t *testing.T) {
	s := New(plate.Civil)
	n, err := s.Feed("京ａ １２３４５")
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if n != 7 {
		t.Fatalf("accepted = %d, want 7", n)
	}
	if got := s.Text(); got != "京A12345" {
		t.Fatalf("text = %q, want 京A12345", got)
	}
}

func TestFeedStopsAtRejectedRune(t *testing.T) {
	s := New(plate.Civil)
	n, err := s.Feed("京AI23")
	if !errors.Is(err, keyboard.ErrKeyDisabled) {
		t.Fatalf("err = %v, want ErrKeyDisabled", err)
	}
	if n != 2 || s.Text() != "京A" {
		t.Fatalf("accepted %d, text %q; want 2, 京A", n, s.Text())
	}
}

func TestSetTypeTruncates(t *testing.T) {
	s := New(plate.ArmedPolice, WithText("WJ01警1234"))
	if s.Index() != 9 {
		t.Fatalf("index = %d, want 9 (%q)", s.Index(), s.Text())
	}
	_, _ = s.Press(keyboard.ShowMore)
	s.SetType(plate.ConsulateOld)
	if s.Index() != 6 {
		t.Fatalf("index after switch = %d, want 6", s.Index())
	}
	if s.ShowMore() {
		t.Fatal("switching type should close the extended layout")
	}
	if s.Layout() == nil {
		t.Fatal("layout should be available after truncation")
	}
}

func TestResetAndID(t *testing.T) {
	a := New(plate.Aviation, WithText("12345"))
	b := New(plate.Aviation)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("session ids %q and %q should be unique", a.ID(), b.ID())
	}
	a.Reset()
	if a.Index() != 0 || a.Text() != "" {
		t.Fatalf("after reset: index %d text %q", a.Index(), a.Text())
	}
}

func TestCheck(t *testing.T) {
	valid := map[plate.Type]string{
		plate.Civil:        "京A12345",
		plate.NewEnergy:    "京AD12345",
		plate.Military:     "京V12345",
		plate.ArmedPolice:  "WJ01警1234",
		plate.EmbassyOld:   "使12345",
		plate.ConsulateNew: "12345领",
		plate.Aviation:     "航12345Z",
	}
	for typ, text := range valid {
		if err := Check(typ, text); err != nil {
			t.Fatalf("Check(%s, %q): %v", typ, text, err)
		}
	}

	if err := Check(plate.Civil, "京A1234"); !errors.Is(err, ErrConfirmIncomplete) {
		t.Fatalf("short plate err = %v, want ErrConfirmIncomplete", err)
	}
	if err := Check(plate.Civil, "AA12345"); !errors.Is(err, keyboard.ErrKeyDisabled) {
		t.Fatalf("missing province err = %v, want ErrKeyDisabled", err)
	}
	if err := Check(plate.Civil, "京A123456"); !errors.Is(err, keyboard.ErrFull) {
		t.Fatalf("long plate err = %v, want ErrFull", err)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(" ｊｉｎ 京 "); got != "JIN京" {
		t.Fatalf("Normalize = %q, want JIN京", got)
	}
}
