package header

import (
	"strings"

	"github.com/boolean-maybe/kiss/controller"

	"github.com/gdamore/tcell/v2"
)

// FormatKeyBinding renders a key binding for the help grid ("q", "Esc", "Shift+Up", "Ctrl-S")
func FormatKeyBinding(key tcell.Key, ch rune, mod tcell.ModMask) string {
	var name string
	switch {
	case key == tcell.KeyRune && ch == ' ':
		name = "Space"
	case key == tcell.KeyRune:
		name = string(ch)
	default:
		name = tcell.KeyNames[key]
		if name == "" {
			name = "?"
		}
	}

	if key != tcell.KeyRune && strings.HasPrefix(name, "Ctrl-") {
		mod &^= tcell.ModCtrl
	}
	var prefix strings.Builder
	if mod&tcell.ModCtrl != 0 {
		prefix.WriteString("Ctrl+")
	}
	if mod&tcell.ModAlt != 0 {
		prefix.WriteString("Alt+")
	}
	if mod&tcell.ModShift != 0 {
		prefix.WriteString("Shift+")
	}
	return prefix.String() + name
}

// viewOnlyActions drops view actions the global section already shows, and duplicates
func viewOnlyActions(viewActions, globalActions []controller.Action) []controller.Action {
	taken := make(map[string]bool, len(globalActions)+len(viewActions))
	for _, a := range globalActions {
		taken[FormatKeyBinding(a.Key, a.Rune, a.Modifier)] = true
	}

	var result []controller.Action
	for _, a := range viewActions {
		if !a.ShowInHeader {
			continue
		}
		key := FormatKeyBinding(a.Key, a.Rune, a.Modifier)
		if taken[key] {
			continue
		}
		taken[key] = true
		result = append(result, a)
	}
	return result
}
