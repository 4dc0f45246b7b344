// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-duel/pkg/input"
)

// quitButton is the engo button that closes the window
const quitButton = "quit"

// keyCodes maps logical keys to engo key codes
var keyCodes = map[input.Key]engo.Key{
	input.KeyW:          engo.KeyW,
	input.KeyA:          engo.KeyA,
	input.KeyS:          engo.KeyS,
	input.KeyD:          engo.KeyD,
	input.KeySpace:      engo.KeySpace,
	input.KeyArrowUp:    engo.KeyArrowUp,
	input.KeyArrowDown:  engo.KeyArrowDown,
	input.KeyArrowLeft:  engo.KeyArrowLeft,
	input.KeyArrowRight: engo.KeyArrowRight,
	input.KeySemicolon:  engo.KeySemicolon,
	input.KeyEscape:     engo.KeyEscape,
}

// engoKey returns the engo key code for a logical key
func engoKey(k input.Key) (engo.Key, bool) {
	code, ok := keyCodes[k]
	return code, ok
}

// buttonName is the engo button registered for a logical key
func buttonName(k input.Key) string {
	return "duel_" + k.String()
}

// InputSystem polls engo buttons once per frame and queues the key
// transitions for the frame system.
type InputSystem struct {
	keys    []input.Key
	pending []input.KeyEvent
}

// NewInputSystem creates an input system watching the bound keys of both
// players.
func NewInputSystem(bindings [2]input.Binding) *InputSystem {
	is := &InputSystem{}
	for _, b := range bindings {
		for _, k := range b.Keys() {
			if _, ok := engoKey(k); ok {
				is.keys = append(is.keys, k)
			}
		}
	}
	return is
}

// Keys returns the logical keys the system watches
func (is *InputSystem) Keys() []input.Key {
	return is.keys
}

// SetupInputBindings registers one engo button per watched key plus Escape
func (is *InputSystem) SetupInputBindings() {
	for _, k := range is.keys {
		code, _ := engoKey(k)
		engo.Input.RegisterButton(buttonName(k), code)
	}
	engo.Input.RegisterButton(quitButton, engo.KeyEscape)
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Priority runs input before the frame system
func (is *InputSystem) Priority() int {
	return 10
}

// Update queues key-down and key-up transitions seen this frame
func (is *InputSystem) Update(dt float32) {
	if engo.Input.Button(quitButton).JustPressed() {
		engo.Exit()
		return
	}
	for _, k := range is.keys {
		btn := engo.Input.Button(buttonName(k))
		if btn.JustPressed() {
			is.pending = append(is.pending, input.KeyEvent{Key: k, Down: true})
		}
		if btn.JustReleased() {
			is.pending = append(is.pending, input.KeyEvent{Key: k, Down: false})
		}
	}
}

// Drain returns the queued events and empties the queue
func (is *InputSystem) Drain() []input.KeyEvent {
	events := is.pending
	is.pending = nil
	return events
}
