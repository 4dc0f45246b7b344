// pkg/render/ebiten/keys.go
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-duel/pkg/input"
)

var keyCodes = map[ebiten.Key]input.Key{
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeyArrowRight: input.KeyArrowRight,
	ebiten.KeySemicolon:  input.KeySemicolon,
	ebiten.KeyEscape:     input.KeyEscape,
}

// logicalKey maps an ebiten key to a logical key
func logicalKey(k ebiten.Key) input.Key {
	if key, ok := keyCodes[k]; ok {
		return key
	}
	return input.KeyUnknown
}

// appendKeyEvents converts the keys pressed and released this tick into
// key events. Presses come first so a tap inside one tick still fires.
// quit reports whether Escape was pressed.
func appendKeyEvents(dst []input.KeyEvent, pressed, released []ebiten.Key) (events []input.KeyEvent, quit bool) {
	for _, k := range pressed {
		key := logicalKey(k)
		if key == input.KeyEscape {
			quit = true
		}
		if key != input.KeyUnknown {
			dst = append(dst, input.KeyEvent{Key: key, Down: true})
		}
	}
	for _, k := range released {
		if key := logicalKey(k); key != input.KeyUnknown {
			dst = append(dst, input.KeyEvent{Key: key, Down: false})
		}
	}
	return dst, quit
}
