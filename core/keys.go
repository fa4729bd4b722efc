package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Scopes a binding can be restricted to. "*" matches every scope.
const (
	ScopeKeyboard = "keyboard"
	ScopePicker   = "picker"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		if bindingHas(b, pressed) {
			return true
		}
	}
	return false
}

// ActionFor returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) && bindingHas(b, pressed) {
			return b.Action
		}
	}
	return ""
}

// HelpBindings converts the bindings of scope to bubbles key bindings, one per
// action, for help rendering. Bindings without a description are left out.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	seen := make(map[string]bool)
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.BindingsForScope(scope) {
		if len(b.Keys) == 0 || strings.TrimSpace(b.Description) == "" || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)))
	}
	return out
}

func bindingHas(b KeyBinding, pressed string) bool {
	for _, k := range b.Keys {
		if normalizeKey(k) == pressed {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
