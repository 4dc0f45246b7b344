// pkg/entity/projectile.go
package entity

import (
	"github.com/opd-ai/go-duel/pkg/physics"
)

// Projectile represents a shot in flight
type Projectile struct {
	BaseEntity
	Velocity physics.Vector2D
	Owner    PlayerID
}

// NewProjectile creates a projectile leaving origin along heading at speed.
func NewProjectile(owner PlayerID, origin physics.Vector2D, heading, speed, radius float64) Projectile {
	return Projectile{
		BaseEntity: BaseEntity{
			Position: origin,
			Radius:   radius,
		},
		Velocity: physics.FromHeading(heading, speed),
		Owner:    owner,
	}
}

// Update moves the projectile linearly along its velocity
func (p *Projectile) Update(deltaTime float64) {
	p.Position = p.Position.Add(p.Velocity.Scale(deltaTime))
}

// CanHit reports whether the projectile is allowed to damage ship. Only
// the owner's opponent can be hit.
func (p *Projectile) CanHit(ship *Ship) bool {
	return ship.Player == p.Owner.Opponent()
}

// Hits reports whether the projectile currently overlaps an opposing ship.
// The ship's alive flag is not consulted.
func (p *Projectile) Hits(ship *Ship) bool {
	return p.CanHit(ship) && p.GetCollider().Collides(ship.GetCollider())
}
