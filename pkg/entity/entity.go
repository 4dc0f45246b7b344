// pkg/entity/entity.go
package entity

import (
	"fmt"

	"github.com/opd-ai/go-duel/pkg/physics"
)

// PlayerID identifies one of the two players. It doubles as the owner tag
// of projectiles.
type PlayerID int

const (
	PlayerOne PlayerID = iota
	PlayerTwo
)

// PlayerCount is the fixed number of players in a duel.
const PlayerCount = 2

// Players lists every player in index order.
var Players = [PlayerCount]PlayerID{PlayerOne, PlayerTwo}

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

// Valid reports whether p names one of the two players.
func (p PlayerID) Valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

// String returns a human-readable player name.
func (p PlayerID) String() string {
	switch p {
	case PlayerOne:
		return "player1"
	case PlayerTwo:
		return "player2"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// BaseEntity contains common functionality for ships and projectiles
type BaseEntity struct {
	Position physics.Vector2D
	Radius   float64
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// GetCollider returns the entity's collision shape
func (e *BaseEntity) GetCollider() physics.Circle {
	return physics.Circle{
		Center: e.Position,
		Radius: e.Radius,
	}
}
