package core

import "strings"

const (
	ActionQuit     = "quit"
	ActionUp       = "focus-up"
	ActionDown     = "focus-down"
	ActionLeft     = "focus-left"
	ActionRight    = "focus-right"
	ActionPress    = "press"
	ActionDelete   = "delete"
	ActionMore     = "toggle-more"
	ActionConfirm  = "confirm"
	ActionNextType = "next-type"
	ActionPrevType = "prev-type"
	ActionPicker   = "open-type-picker"
	ActionReset    = "reset"
	ActionSave     = "save"
	ActionClose    = "close"
	ActionSelect   = "select"
)

// Letters and digits are plate characters, so every keyboard-scope shortcut
// is a named key or a ctrl chord.
func DefaultKeyBindings() []KeyBinding {
	kb := []string{ScopeKeyboard}
	return []KeyBinding{
		{Keys: []string{"ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"up"}, Action: ActionUp, Description: "", Scopes: kb},
		{Keys: []string{"down"}, Action: ActionDown, Description: "", Scopes: kb},
		{Keys: []string{"left"}, Action: ActionLeft, Description: "", Scopes: kb},
		{Keys: []string{"right"}, Action: ActionRight, Description: "", Scopes: kb},
		{Keys: []string{"enter", "space"}, Action: ActionPress, Description: "press key", Scopes: kb},
		{Keys: []string{"backspace"}, Action: ActionDelete, Description: "delete", Scopes: kb},
		{Keys: []string{"tab"}, Action: ActionMore, Description: "more", Scopes: kb},
		{Keys: []string{"ctrl+o"}, Action: ActionConfirm, Description: "confirm", Scopes: kb},
		{Keys: []string{"ctrl+t"}, Action: ActionNextType, Description: "next type", Scopes: kb},
		{Keys: []string{"shift+tab"}, Action: ActionPrevType, Description: "prev type", Scopes: kb},
		{Keys: []string{"ctrl+p"}, Action: ActionPicker, Description: "types", Scopes: kb},
		{Keys: []string{"ctrl+r"}, Action: ActionReset, Description: "reset", Scopes: kb},
		{Keys: []string{"ctrl+s"}, Action: ActionSave, Description: "save type", Scopes: kb},
		{Keys: []string{"esc"}, Action: ActionQuit, Description: "", Scopes: kb},
		{Keys: []string{"esc"}, Action: ActionClose, Description: "close", Scopes: []string{ScopePicker}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "select", Scopes: []string{ScopePicker}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an entry in actionKeys. Bindings are copied; the input is not modified.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
