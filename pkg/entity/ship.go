// pkg/entity/ship.go
package entity

import (
	"github.com/opd-ai/go-duel/pkg/physics"
)

// ShipStats contains the movement characteristics of a ship
type ShipStats struct {
	Speed         float64 // units per second along the heading
	RotationSpeed float64 // radians per second
	Radius        float64
}

// Ship represents a player's triangular ship. Both ships exist for the
// whole process lifetime; destruction only clears Alive.
type Ship struct {
	BaseEntity
	Player  PlayerID
	Heading float64 // radians, 0 points along +X, not normalized
	Alive   bool
	Stats   ShipStats
}

// NewShip creates a living ship for player at position facing heading
func NewShip(player PlayerID, position physics.Vector2D, heading float64, stats ShipStats) *Ship {
	return &Ship{
		BaseEntity: BaseEntity{
			Position: position,
			Radius:   stats.Radius,
		},
		Player:  player,
		Heading: heading,
		Alive:   true,
		Stats:   stats,
	}
}

// Steer applies one tick of thrust and rotation. forward and turn are the
// axes derived from the player's direction mask. Dead ships do not move.
func (s *Ship) Steer(forward, turn, deltaTime float64) {
	if !s.Alive {
		return
	}

	state := physics.MovementState{
		Position:      s.Position,
		Heading:       s.Heading,
		Speed:         s.Stats.Speed,
		RotationSpeed: s.Stats.RotationSpeed,
	}
	physics.UpdateMovement(&state, deltaTime, forward, turn)

	s.Position = state.Position
	s.Heading = state.Heading
}

// Destroy marks the ship dead. It returns true only on the transition
// from alive to dead.
func (s *Ship) Destroy() bool {
	if !s.Alive {
		return false
	}
	s.Alive = false
	return true
}

// Triangle returns the ship's outline vertices in screen coordinates.
func (s *Ship) Triangle() [3]physics.Vector2D {
	return physics.ShipTriangle(s.Position, s.Heading, s.Radius)
}
