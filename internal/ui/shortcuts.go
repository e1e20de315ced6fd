package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"CanvasCreator/internal/keybinds"
	"CanvasCreator/internal/state"
)

// keyTarget is the part of fyne.Canvas that receives keyboard input.
type keyTarget interface {
	AddShortcut(shortcut fyne.Shortcut, handler func(shortcut fyne.Shortcut))
	SetOnTypedKey(func(*fyne.KeyEvent))
}

// bindKeys installs the registry on c. Bindings with modifiers become Fyne
// shortcuts; plain keys are matched from the typed-key handler.
func bindKeys(c keyTarget, keys *keybinds.Registry, dispatch func(state.Event)) {
	for _, b := range keys.Bindings() {
		sc, ok := shortcutFor(b.Key)
		if !ok {
			continue
		}
		ev, ok := b.Action.Event()
		if !ok {
			continue
		}
		c.AddShortcut(sc, func(fyne.Shortcut) { dispatch(ev) })
	}
	c.SetOnTypedKey(func(e *fyne.KeyEvent) {
		action, ok := keys.Match(string(e.Name))
		if !ok {
			return
		}
		if ev, ok := action.Event(); ok {
			dispatch(ev)
		}
	})
}

// shortcutFor converts a normalized key such as "ctrl+z" into a Fyne
// shortcut. Keys without modifiers report false.
func shortcutFor(key string) (*desktop.CustomShortcut, bool) {
	parts := strings.Split(keybinds.Normalize(key), "+")
	if len(parts) < 2 {
		return nil, false
	}
	var mods fyne.KeyModifier
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "ctrl":
			mods |= fyne.KeyModifierShortcutDefault
		case "alt":
			mods |= fyne.KeyModifierAlt
		case "shift":
			mods |= fyne.KeyModifierShift
		}
	}
	return &desktop.CustomShortcut{KeyName: keyName(parts[len(parts)-1]), Modifier: mods}, true
}

func keyName(base string) fyne.KeyName {
	if len(base) == 1 {
		return fyne.KeyName(strings.ToUpper(base))
	}
	return fyne.KeyName(strings.ToUpper(base[:1]) + base[1:])
}
