// Package keybinds maps keyboard shortcuts to drawing actions.
package keybinds

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"CanvasCreator/internal/state"
)

var ErrUnknownAction = errors.New("unknown action")

// Action represents a user action that can be triggered by a keybinding
type Action string

const (
	ActionUndo         Action = "undo"
	ActionToggleRandom Action = "random"
	ActionClear        Action = "clear"
	ActionExport       Action = "export"
	ActionCycleTheme   Action = "theme"
	ActionExportPDF    Action = "pdf"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key    string
	Action Action
}

var descriptions = map[Action]string{
	ActionUndo:         "Undo last circle",
	ActionToggleRandom: "Toggle random colors",
	ActionClear:        "Clear canvas",
	ActionExport:       "Save image",
	ActionCycleTheme:   "Cycle through themes",
	ActionExportPDF:    "Save as PDF",
}

// order is the display order of the shortcut table.
var order = []Action{
	ActionUndo, ActionToggleRandom, ActionClear, ActionExport, ActionCycleTheme, ActionExportPDF,
}

func Defaults() []Binding {
	return []Binding{
		{Key: "ctrl+z", Action: ActionUndo},
		{Key: "r", Action: ActionToggleRandom},
		{Key: "c", Action: ActionClear},
		{Key: "s", Action: ActionExport},
		{Key: "t", Action: ActionCycleTheme},
		{Key: "p", Action: ActionExportPDF},
	}
}

// Registry manages keybinding mappings and matching
type Registry struct {
	bindings map[string]Action
	keys     map[Action]string
}

func NewRegistry() *Registry {
	r := &Registry{
		bindings: make(map[string]Action),
		keys:     make(map[Action]string),
	}
	for _, b := range Defaults() {
		r.Register(b.Key, b.Action)
	}
	return r
}

// FromConfig starts from the defaults and applies overrides given as
// action -> key.
func FromConfig(overrides map[string]string) (*Registry, error) {
	r := NewRegistry()
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		action := Action(strings.ToLower(strings.TrimSpace(name)))
		if _, ok := descriptions[action]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		key := Normalize(overrides[name])
		if key == "" {
			return nil, fmt.Errorf("empty key for action %q", name)
		}
		r.Register(key, action)
	}
	// Every action must still own its key once all overrides are in.
	for _, a := range order {
		key := r.keys[a]
		if owner := r.bindings[key]; owner != a {
			return nil, fmt.Errorf("key %q bound to both %q and %q", key, a, owner)
		}
	}
	return r, nil
}

// Register binds key to action, replacing any previous key for the action.
func (r *Registry) Register(key string, action Action) {
	key = Normalize(key)
	if old, ok := r.keys[action]; ok && r.bindings[old] == action {
		delete(r.bindings, old)
	}
	r.bindings[key] = action
	r.keys[action] = key
}

// Match returns the action bound to key, if any.
func (r *Registry) Match(key string) (Action, bool) {
	a, ok := r.bindings[Normalize(key)]
	return a, ok
}

// Key returns the key currently bound to action.
func (r *Registry) Key(action Action) string {
	return r.keys[action]
}

// Bindings returns the current bindings in display order.
func (r *Registry) Bindings() []Binding {
	out := make([]Binding, 0, len(order))
	for _, a := range order {
		if key, ok := r.keys[a]; ok {
			out = append(out, Binding{Key: key, Action: a})
		}
	}
	return out
}

// Help returns the shortcut table in display order.
func (r *Registry) Help() []string {
	lines := make([]string, 0, len(order)+1)
	for _, a := range order {
		key, ok := r.keys[a]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s - %s", Display(key), descriptions[a]))
	}
	return append(lines, "Double-click on circle to delete it")
}

// Event translates an action into the reducer event it triggers.
func (a Action) Event() (state.Event, bool) {
	switch a {
	case ActionUndo:
		return state.Event{Type: state.EventUndo}, true
	case ActionToggleRandom:
		return state.Event{Type: state.EventToggleRandom}, true
	case ActionClear:
		return state.Event{Type: state.EventClear}, true
	case ActionExport:
		return state.Event{Type: state.EventExport}, true
	case ActionCycleTheme:
		return state.Event{Type: state.EventCycleTheme}, true
	case ActionExportPDF:
		return state.Event{Type: state.EventExportPDF}, true
	}
	return state.Event{}, false
}

// Normalize lower-cases a key and orders modifiers canonically, so
// "Z+Ctrl" and "ctrl+z" compare equal.
func Normalize(key string) string {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(key)), "+")
	var mods []string
	base := ""
	for _, p := range parts {
		p = strings.TrimSpace(p)
		switch p {
		case "":
		case "ctrl", "control", "cmd", "super":
			mods = append(mods, "ctrl")
		case "alt", "shift":
			mods = append(mods, p)
		default:
			base = p
		}
	}
	if base == "" {
		return ""
	}
	sort.Strings(mods)
	mods = dedupe(mods)
	return strings.Join(append(mods, base), "+")
}

// Display renders a normalized key for the shortcut table.
func Display(key string) string {
	parts := strings.Split(key, "+")
	for i, p := range parts {
		switch p {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			parts[i] = strings.ToUpper(p)
		}
	}
	return strings.Join(parts, " + ")
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
