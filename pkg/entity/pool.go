package entity

import (
	"github.com/opd-ai/go-duel/pkg/physics"
)

// DefaultProjectileCapacity is the number of projectiles that may be in
// flight at once.
const DefaultProjectileCapacity = 100

// ProjectilePool is a fixed-capacity, ordered collection of live
// projectiles. Removal compacts the survivors in place and preserves their
// relative order.
type ProjectilePool struct {
	projectiles []Projectile
	speed       float64
	radius      float64
}

// NewProjectilePool creates an empty pool that holds at most capacity
// projectiles, each fired at speed with the given collision radius.
func NewProjectilePool(capacity int, speed, radius float64) *ProjectilePool {
	if capacity < 0 {
		capacity = 0
	}
	return &ProjectilePool{
		projectiles: make([]Projectile, 0, capacity),
		speed:       speed,
		radius:      radius,
	}
}

// Spawn appends a projectile leaving origin along heading. It returns false
// and leaves the pool untouched when the pool is full.
func (p *ProjectilePool) Spawn(origin physics.Vector2D, heading float64, owner PlayerID) bool {
	if p.Full() {
		return false
	}
	p.projectiles = append(p.projectiles, NewProjectile(owner, origin, heading, p.speed, p.radius))
	return true
}

// Advance moves every projectile by its velocity over deltaTime seconds
func (p *ProjectilePool) Advance(deltaTime float64) {
	for i := range p.projectiles {
		p.projectiles[i].Update(deltaTime)
	}
}

// ExpireOutOfBounds removes every projectile that has left field and
// returns how many were removed. Each projectile is tested exactly once.
func (p *ProjectilePool) ExpireOutOfBounds(field physics.Rect) int {
	kept := 0
	for i := range p.projectiles {
		if field.Outside(p.projectiles[i].Position) {
			continue
		}
		if kept != i {
			p.projectiles[kept] = p.projectiles[i]
		}
		kept++
	}

	removed := len(p.projectiles) - kept
	clear(p.projectiles[kept:])
	p.projectiles = p.projectiles[:kept]
	return removed
}

// Len returns the number of live projectiles
func (p *ProjectilePool) Len() int {
	return len(p.projectiles)
}

// Cap returns the pool capacity
func (p *ProjectilePool) Cap() int {
	return cap(p.projectiles)
}

// Full reports whether a spawn would be rejected
func (p *ProjectilePool) Full() bool {
	return len(p.projectiles) >= cap(p.projectiles)
}

// At returns a pointer to the i-th live projectile. The pointer is only
// valid until the next Spawn or ExpireOutOfBounds.
func (p *ProjectilePool) At(i int) *Projectile {
	return &p.projectiles[i]
}

// All returns the live projectiles in order. The slice aliases the pool
// and must not be retained across ticks.
func (p *ProjectilePool) All() []Projectile {
	return p.projectiles
}
