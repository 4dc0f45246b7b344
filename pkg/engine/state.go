// pkg/engine/state.go
package engine

import (
	"github.com/opd-ai/go-duel/pkg/entity"
	"github.com/opd-ai/go-duel/pkg/physics"
)

// GameState represents a read-only snapshot of the game state
type GameState struct {
	Tick        uint64
	Status      RoundStatus
	Winner      entity.PlayerID
	HasWinner   bool
	Playfield   physics.Rect
	Ships       [entity.PlayerCount]ShipState
	Projectiles []ProjectileState
}

// ShipState represents a snapshot of a ship's state
type ShipState struct {
	Player   entity.PlayerID
	Position physics.Vector2D
	Heading  float64
	Radius   float64
	Alive    bool
}

// ProjectileState represents a snapshot of a projectile's state
type ProjectileState struct {
	Owner    entity.PlayerID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Radius   float64
}

// Snapshot copies the current state. The result shares nothing with the
// game and stays valid after further ticks.
func (g *Game) Snapshot() *GameState {
	state := &GameState{
		Tick:        g.CurrentTick,
		Status:      g.Status,
		Playfield:   g.field,
		Ships:       g.getShipStates(),
		Projectiles: g.getProjectileStates(),
	}
	if g.Status == RoundOver {
		state.Winner, state.HasWinner = g.Winner()
	}
	return state
}

func (g *Game) getShipStates() [entity.PlayerCount]ShipState {
	var states [entity.PlayerCount]ShipState
	for i, ship := range g.Ships {
		states[i] = ShipState{
			Player:   ship.Player,
			Position: ship.Position,
			Heading:  ship.Heading,
			Radius:   ship.Radius,
			Alive:    ship.Alive,
		}
	}
	return states
}

func (g *Game) getProjectileStates() []ProjectileState {
	projectiles := g.Projectiles.All()
	states := make([]ProjectileState, len(projectiles))
	for i, p := range projectiles {
		states[i] = ProjectileState{
			Owner:    p.Owner,
			Position: p.Position,
			Velocity: p.Velocity,
			Radius:   p.Radius,
		}
	}
	return states
}
