// Package input translates key-down/key-up events into the per-player
// direction masks and fire triggers read by the simulation.
package input

// DirectionMask is a 4-bit set of held direction keys for one player.
type DirectionMask uint8

const (
	// Forward thrusts along the heading (up key).
	Forward DirectionMask = 1 << iota
	// Left rotates counter-clockwise.
	Left
	// Backward thrusts against the heading (down key).
	Backward
	// Right rotates clockwise.
	Right
)

// allDirections masks off bits outside the four directions.
const allDirections = Forward | Left | Backward | Right

// Set returns the mask with the given bits held.
func (m DirectionMask) Set(bits DirectionMask) DirectionMask {
	return (m | bits) & allDirections
}

// Clear returns the mask with the given bits released.
func (m DirectionMask) Clear(bits DirectionMask) DirectionMask {
	return m &^ bits
}

// Has reports whether every bit in bits is held.
func (m DirectionMask) Has(bits DirectionMask) bool {
	return bits != 0 && m&bits == bits
}

// Axes converts the mask into thrust and turn axes in {-1, 0, 1}.
// Opposing keys cancel out.
func (m DirectionMask) Axes() (forward, turn float64) {
	forward = bit(m, Forward) - bit(m, Backward)
	turn = bit(m, Right) - bit(m, Left)
	return forward, turn
}

func bit(m, b DirectionMask) float64 {
	if m&b != 0 {
		return 1
	}
	return 0
}
