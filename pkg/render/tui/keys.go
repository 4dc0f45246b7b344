// Package tui runs a duel inside a terminal through tcell.
package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-duel/pkg/input"
)

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:     input.KeyArrowUp,
	tcell.KeyLeft:   input.KeyArrowLeft,
	tcell.KeyDown:   input.KeyArrowDown,
	tcell.KeyRight:  input.KeyArrowRight,
	tcell.KeyEscape: input.KeyEscape,
}

var runeKeys = map[rune]input.Key{
	'w': input.KeyW,
	'a': input.KeyA,
	's': input.KeyS,
	'd': input.KeyD,
	' ': input.KeySpace,
	';': input.KeySemicolon,
}

// translateKey maps a tcell key event to a logical key. quit is set for
// Escape and Ctrl-C.
func translateKey(ev *tcell.EventKey) (key input.Key, quit bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return input.KeyUnknown, true
	case tcell.KeyRune:
		if k, ok := runeKeys[unicode.ToLower(ev.Rune())]; ok {
			return k, false
		}
		return input.KeyUnknown, false
	}
	if k, ok := specialKeys[ev.Key()]; ok {
		return k, k == input.KeyEscape
	}
	return input.KeyUnknown, false
}
