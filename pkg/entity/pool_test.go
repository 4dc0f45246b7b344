package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-duel/pkg/physics"
)

func TestNewProjectilePool(t *testing.T) {
	pool := NewProjectilePool(DefaultProjectileCapacity, 150, 3)

	if pool.Len() != 0 {
		t.Errorf("Len() = %d, want 0", pool.Len())
	}
	if pool.Cap() != 100 {
		t.Errorf("Cap() = %d, want 100", pool.Cap())
	}
	if pool.Full() {
		t.Error("empty pool reported full")
	}
}

func TestNewProjectilePool_NegativeCapacity(t *testing.T) {
	pool := NewProjectilePool(-5, 150, 3)
	if pool.Cap() != 0 {
		t.Errorf("Cap() = %d, want 0", pool.Cap())
	}
	if pool.Spawn(physics.Vector2D{}, 0, PlayerOne) {
		t.Error("zero-capacity pool accepted a spawn")
	}
}

func TestProjectilePool_SpawnAndAdvance(t *testing.T) {
	pool := NewProjectilePool(DefaultProjectileCapacity, 150, 3)

	if !pool.Spawn(physics.Vector2D{X: 100, Y: 240}, 0, PlayerOne) {
		t.Fatal("Spawn() rejected on an empty pool")
	}

	p := pool.At(0)
	if p.Position != (physics.Vector2D{X: 100, Y: 240}) {
		t.Errorf("spawn position = %v, want {100 240}", p.Position)
	}
	if p.Velocity != (physics.Vector2D{X: 150, Y: 0}) {
		t.Errorf("spawn velocity = %v, want {150 0}", p.Velocity)
	}
	if p.Radius != 3 {
		t.Errorf("spawn radius = %v, want 3", p.Radius)
	}

	pool.Advance(1.0)

	if got := pool.At(0).Position; got != (physics.Vector2D{X: 250, Y: 240}) {
		t.Errorf("position after 1s = %v, want {250 240}", got)
	}
}

func TestProjectilePool_SpawnHeadingUsesScreenY(t *testing.T) {
	pool := NewProjectilePool(1, 150, 3)
	pool.Spawn(physics.Vector2D{}, math.Pi/2, PlayerTwo)

	v := pool.At(0).Velocity
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y+150) > 1e-9 {
		t.Errorf("velocity = %v, want {0 -150}", v)
	}
	if pool.At(0).Owner != PlayerTwo {
		t.Errorf("owner = %v, want %v", pool.At(0).Owner, PlayerTwo)
	}
}

func TestProjectilePool_SpawnAtCapacityIsRejected(t *testing.T) {
	pool := NewProjectilePool(DefaultProjectileCapacity, 150, 3)

	for i := 0; i < DefaultProjectileCapacity; i++ {
		if !pool.Spawn(physics.Vector2D{X: float64(i), Y: 10}, 0, PlayerOne) {
			t.Fatalf("Spawn() %d rejected before capacity", i)
		}
	}
	if !pool.Full() {
		t.Fatal("pool should be full")
	}

	before := pool.Len()
	if pool.Spawn(physics.Vector2D{X: 1, Y: 1}, 0, PlayerTwo) {
		t.Error("Spawn() accepted at capacity")
	}
	if pool.Len() != before {
		t.Errorf("Len() changed from %d to %d on rejected spawn", before, pool.Len())
	}
	for i, p := range pool.All() {
		if p.Owner != PlayerOne {
			t.Fatalf("projectile %d was overwritten by a rejected spawn", i)
		}
	}
}

func TestProjectilePool_ExpireAtEdge(t *testing.T) {
	field := physics.NewPlayfield(640, 480)
	pool := NewProjectilePool(DefaultProjectileCapacity, 150, 3)
	pool.Spawn(physics.Vector2D{X: 639, Y: 240}, 0, PlayerOne)

	pool.Advance(0.01)

	got := pool.At(0).Position
	if math.Abs(got.X-640.5) > 1e-9 || got.Y != 240 {
		t.Fatalf("position = %v, want {640.5 240}", got)
	}

	if removed := pool.ExpireOutOfBounds(field); removed != 1 {
		t.Errorf("ExpireOutOfBounds() removed %d, want 1", removed)
	}
	if pool.Len() != 0 {
		t.Errorf("Len() = %d, want 0", pool.Len())
	}
}

func TestProjectilePool_ExpireKeepsEdgeProjectiles(t *testing.T) {
	field := physics.NewPlayfield(640, 480)
	pool := NewProjectilePool(4, 150, 3)
	pool.Spawn(physics.Vector2D{X: 0, Y: 0}, 0, PlayerOne)
	pool.Spawn(physics.Vector2D{X: 640, Y: 480}, 0, PlayerOne)

	if removed := pool.ExpireOutOfBounds(field); removed != 0 {
		t.Errorf("projectiles on the boundary were removed: %d", removed)
	}
}

func TestProjectilePool_ExpireIsStableAndSkipsNothing(t *testing.T) {
	field := physics.NewPlayfield(640, 480)

	// Adjacent out-of-bounds entries catch loops that advance the index
	// after a shift.
	xs := []float64{-1, -2, 10, 700, 20, -3, 30, 800, 900}
	pool := NewProjectilePool(len(xs), 150, 3)
	for _, x := range xs {
		pool.Spawn(physics.Vector2D{X: x, Y: 100}, 0, PlayerOne)
	}

	removed := pool.ExpireOutOfBounds(field)

	if removed != 6 {
		t.Errorf("removed = %d, want 6", removed)
	}
	want := []float64{10, 20, 30}
	if pool.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", pool.Len(), len(want))
	}
	for i, p := range pool.All() {
		if p.Position.X != want[i] {
			t.Errorf("survivor %d at x=%v, want %v", i, p.Position.X, want[i])
		}
	}

	// Freed slots are reusable.
	for pool.Spawn(physics.Vector2D{X: 1, Y: 1}, 0, PlayerTwo) {
	}
	if pool.Len() != len(xs) {
		t.Errorf("Len() after refill = %d, want %d", pool.Len(), len(xs))
	}
}

func TestProjectilePool_CountStaysInRange(t *testing.T) {
	field := physics.NewPlayfield(640, 480)
	pool := NewProjectilePool(DefaultProjectileCapacity, 150, 3)

	for tick := 0; tick < 500; tick++ {
		for i := 0; i < 3; i++ {
			pool.Spawn(physics.Vector2D{X: 320, Y: 240}, float64(tick+i), PlayerID(i%2))
		}
		pool.Advance(1.0 / 60.0)
		pool.ExpireOutOfBounds(field)

		if pool.Len() < 0 || pool.Len() > pool.Cap() {
			t.Fatalf("tick %d: Len() = %d out of [0, %d]", tick, pool.Len(), pool.Cap())
		}
	}
}
