package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+p"}, Action: "picker", Scopes: []string{ScopeKeyboard}},
		{Keys: []string{"ctrl+c"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlP}, "picker", ScopeKeyboard) {
		t.Fatalf("expected ctrl+p in keyboard scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlP}, "picker", ScopePicker) {
		t.Fatalf("did not expect ctrl+p in picker scope")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlC}, "quit", ScopePicker) {
		t.Fatalf("expected ctrl+c to match wildcard scope")
	}
}

func TestActionForDefaults(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	cases := []struct {
		msg   tea.KeyMsg
		scope string
		want  string
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ScopeKeyboard, ActionPress},
		{tea.KeyMsg{Type: tea.KeyEnter}, ScopeKeyboard, ActionPress},
		{tea.KeyMsg{Type: tea.KeyEnter}, ScopePicker, ActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, ScopePicker, ActionClose},
		{tea.KeyMsg{Type: tea.KeyEsc}, ScopeKeyboard, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyBackspace}, ScopeKeyboard, ActionDelete},
		{tea.KeyMsg{Type: tea.KeyTab}, ScopeKeyboard, ActionMore},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, ScopeKeyboard, ""},
	}
	for _, tc := range cases {
		if got := reg.ActionFor(tc.msg, tc.scope); got != tc.want {
			t.Fatalf("ActionFor(%q, %s) = %q, want %q", tc.msg.String(), tc.scope, got, tc.want)
		}
	}
}

func TestDefaultBindingsLeavePlateCharactersFree(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	for _, r := range "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if got := reg.ActionFor(msg, ScopeKeyboard); got != "" {
			t.Fatalf("%q is bound to %q", r, got)
		}
	}
}

func TestHelpBindingsOnePerAction(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	seen := map[string]bool{}
	for _, b := range reg.HelpBindings(ScopeKeyboard) {
		h := b.Help()
		if h.Desc == "" {
			t.Fatalf("binding %v has no description", b.Keys())
		}
		if seen[h.Desc] {
			t.Fatalf("duplicate help entry %q", h.Desc)
		}
		seen[h.Desc] = true
	}
	if !seen["confirm"] || !seen["quit"] {
		t.Fatalf("help missing confirm or quit: %v", seen)
	}
}

func TestApplyActionKeybindings(t *testing.T) {
	base := DefaultKeyBindings()
	next := ApplyActionKeybindings(base, map[string][]string{ActionConfirm: {"ctrl+y"}})
	reg := NewKeyRegistry(next)
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlY}, ActionConfirm, ScopeKeyboard) {
		t.Fatal("override not applied")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlO}, ActionConfirm, ScopeKeyboard) {
		t.Fatal("old key still bound")
	}
	if got := DefaultKeybindingsByAction(base)[ActionConfirm]; len(got) != 1 || got[0] != "ctrl+o" {
		t.Fatalf("base bindings modified: %v", got)
	}
}
