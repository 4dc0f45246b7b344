// pkg/render/tui/hold.go
package tui

import (
	"sort"

	"github.com/opd-ai/go-duel/pkg/input"
)

// HoldTracker turns the key presses a terminal reports into down/up pairs.
// Terminals send no key-up and repeat a held key, so a key counts as held
// until timeout passes without another press. Repeats of a held key only
// extend the hold and never produce another key-down.
type HoldTracker struct {
	timeout  int64
	deadline map[input.Key]int64
}

// NewHoldTracker creates a tracker releasing keys timeoutNanos after their
// last press.
func NewHoldTracker(timeoutNanos int64) *HoldTracker {
	return &HoldTracker{
		timeout:  timeoutNanos,
		deadline: make(map[input.Key]int64),
	}
}

// Press records a press of key at now. It returns true when the key was
// not already held, meaning a key-down should be delivered.
func (h *HoldTracker) Press(key input.Key, now int64) bool {
	_, held := h.deadline[key]
	h.deadline[key] = now + h.timeout
	return !held
}

// Expire appends a key-up for every key whose hold ran out at now, in key
// order.
func (h *HoldTracker) Expire(dst []input.KeyEvent, now int64) []input.KeyEvent {
	start := len(dst)
	for key, deadline := range h.deadline {
		if now >= deadline {
			dst = append(dst, input.KeyEvent{Key: key, Down: false})
			delete(h.deadline, key)
		}
	}
	released := dst[start:]
	sort.Slice(released, func(i, j int) bool { return released[i].Key < released[j].Key })
	return dst
}

