package input

import (
	"fmt"
	"strings"
)

// Key is a logical key identity, independent of any windowing backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeySpace
	KeyArrowUp
	KeyArrowLeft
	KeyArrowDown
	KeyArrowRight
	KeySemicolon
	KeyEscape
)

var keyNames = map[Key]string{
	KeyW:          "w",
	KeyA:          "a",
	KeyS:          "s",
	KeyD:          "d",
	KeySpace:      "space",
	KeyArrowUp:    "up",
	KeyArrowLeft:  "left",
	KeyArrowDown:  "down",
	KeyArrowRight: "right",
	KeySemicolon:  "semicolon",
	KeyEscape:     "escape",
}

// String returns the configuration name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey converts a configuration name back into a Key.
func ParseKey(name string) (Key, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == lower {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// KeyEvent is a single key transition delivered by a backend.
type KeyEvent struct {
	Key  Key
	Down bool
}

// Binding maps one player's physical keys to direction bits and fire.
type Binding struct {
	Forward  Key
	Left     Key
	Backward Key
	Right    Key
	Fire     Key
}

// DefaultBindings returns the stock layout: WASD + space for the first
// player, arrows + semicolon for the second.
func DefaultBindings() [2]Binding {
	return [2]Binding{
		{Forward: KeyW, Left: KeyA, Backward: KeyS, Right: KeyD, Fire: KeySpace},
		{Forward: KeyArrowUp, Left: KeyArrowLeft, Backward: KeyArrowDown, Right: KeyArrowRight, Fire: KeySemicolon},
	}
}

// direction returns the mask bit bound to key, or 0.
func (b Binding) direction(key Key) DirectionMask {
	switch key {
	case KeyUnknown:
		return 0
	case b.Forward:
		return Forward
	case b.Left:
		return Left
	case b.Backward:
		return Backward
	case b.Right:
		return Right
	default:
		return 0
	}
}

// Keys returns every key used by the binding.
func (b Binding) Keys() []Key {
	return []Key{b.Forward, b.Left, b.Backward, b.Right, b.Fire}
}
