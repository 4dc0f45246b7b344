// pkg/engine/game.go
package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/opd-ai/go-duel/pkg/config"
	"github.com/opd-ai/go-duel/pkg/entity"
	"github.com/opd-ai/go-duel/pkg/event"
	"github.com/opd-ai/go-duel/pkg/input"
	"github.com/opd-ai/go-duel/pkg/logging"
	"github.com/opd-ai/go-duel/pkg/physics"
	"github.com/opd-ai/go-duel/pkg/validation"
)

// RoundStatus is the state of the single round a process plays
type RoundStatus int

const (
	RoundRunning RoundStatus = iota
	RoundOver
)

func (s RoundStatus) String() string {
	switch s {
	case RoundRunning:
		return "running"
	case RoundOver:
		return "over"
	default:
		return fmt.Sprintf("RoundStatus(%d)", int(s))
	}
}

// Game owns the complete simulation state of a duel. It is driven from a
// single goroutine and holds no locks.
type Game struct {
	Config      *config.GameConfig
	Ships       [entity.PlayerCount]*entity.Ship
	Projectiles *entity.ProjectilePool
	Input       *input.State
	Status      RoundStatus
	CurrentTick uint64
	EventBus    *event.Bus
	RoundID     string

	names        [entity.PlayerCount]string
	field        physics.Rect
	maxDeltaTime float64

	// Monotonic timestamp of the previous Step, in nanoseconds
	lastTimestamp int64
	hasTimestamp  bool

	logger *logging.Logger
	ctx    context.Context
}

// NewGame validates cfg and creates a running round with both ships at
// their spawn points. A nil logger discards output.
func NewGame(ctx context.Context, cfg *config.GameConfig, logger *logging.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, "invalid game config")
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, logging.WrapError(err, "resolving key bindings")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	roundID := uuid.NewString()
	game := &Game{
		Config: cfg,
		Projectiles: entity.NewProjectilePool(
			cfg.Physics.ProjectileCapacity,
			cfg.Physics.ProjectileSpeed,
			cfg.Physics.ProjectileRadius,
		),
		Input:        input.NewState(bindings),
		Status:       RoundRunning,
		EventBus:     event.NewEventBus(),
		RoundID:      roundID,
		field:        physics.NewPlayfield(cfg.Playfield.Width, cfg.Playfield.Height),
		maxDeltaTime: cfg.Physics.MaxDeltaTime,
		logger:       logger.With("component", "engine"),
		ctx:          logging.WithRoundID(ctx, roundID),
	}
	for i, pc := range cfg.Players {
		name, err := validation.ValidatePlayerName(pc.Name)
		if err != nil {
			return nil, logging.WrapError(err, "resolving player names")
		}
		game.names[i] = name
	}
	game.initShips()

	game.logger.Info(game.ctx, "round started",
		"player_one", game.names[entity.PlayerOne],
		"player_two", game.names[entity.PlayerTwo],
		"playfield_width", cfg.Playfield.Width,
		"playfield_height", cfg.Playfield.Height,
		"projectile_capacity", cfg.Physics.ProjectileCapacity,
	)
	return game, nil
}

// initShips places both ships at their configured spawn points.
func (g *Game) initShips() {
	stats := g.Config.ShipStats()
	for i, player := range entity.Players {
		pc := g.Config.Players[i]
		g.Ships[i] = entity.NewShip(
			player,
			physics.Vector2D{X: pc.SpawnX, Y: pc.SpawnY},
			pc.Heading,
			stats,
		)
	}
}

// Playfield returns the arena bounds
func (g *Game) Playfield() physics.Rect {
	return g.field
}

// PlayerName returns the configured display name of player
func (g *Game) PlayerName(player entity.PlayerID) string {
	if !player.Valid() {
		return player.String()
	}
	return g.names[player]
}

// Ship returns the ship flown by player
func (g *Game) Ship(player entity.PlayerID) *entity.Ship {
	return g.Ships[player]
}

// IsOver reports whether the round has ended
func (g *Game) IsOver() bool {
	return g.Status == RoundOver
}

// Step advances the game using a monotonic clock sample in nanoseconds
// and returns the time step that was applied. The first call applies 0.
func (g *Game) Step(nowNanos int64) float64 {
	deltaTime := g.calculateDeltaTime(nowNanos)
	g.Update(deltaTime)
	return deltaTime
}

// calculateDeltaTime derives the seconds elapsed since the previous Step
// and applies the optional clamp.
func (g *Game) calculateDeltaTime(nowNanos int64) float64 {
	deltaTime := 0.0
	if g.hasTimestamp && nowNanos > g.lastTimestamp {
		deltaTime = float64(nowNanos-g.lastTimestamp) * 1e-9
	}
	g.lastTimestamp = nowNanos
	g.hasTimestamp = true

	if g.maxDeltaTime > 0 && deltaTime > g.maxDeltaTime {
		deltaTime = g.maxDeltaTime
	}
	return deltaTime
}

// Update advances the game state by one tick of deltaTime seconds.
// Collisions are resolved against the state left by the previous tick,
// then ships steer, then projectiles move and expire.
func (g *Game) Update(deltaTime float64) {
	g.processCollisions()
	if g.Status == RoundRunning {
		g.updateShips(deltaTime)
	}
	g.updateProjectiles(deltaTime)
	g.CurrentTick++
}

// updateShips applies each player's held directions to their ship
func (g *Game) updateShips(deltaTime float64) {
	for i, ship := range g.Ships {
		forward, turn := g.Input.Mask(i).Axes()
		ship.Steer(forward, turn, deltaTime)
	}
}

// updateProjectiles moves every projectile, then drops those that left
// the playfield.
func (g *Game) updateProjectiles(deltaTime float64) {
	g.Projectiles.Advance(deltaTime)

	removed := g.Projectiles.ExpireOutOfBounds(g.field)
	if removed > 0 {
		g.EventBus.Publish(event.NewExpiryEvent(g, removed, g.Projectiles.Len()))
	}
}

// HandleKey folds a key event into the input state. A fire key-down fires
// immediately, so one press yields at most one projectile.
func (g *Game) HandleKey(ev input.KeyEvent) {
	player, fire := g.Input.Apply(ev)
	if fire {
		g.Fire(entity.Players[player])
	}
}

// Fire spawns a projectile from player's ship along its heading. It
// returns false when the round is over, the ship is dead, or the pool
// is full.
func (g *Game) Fire(player entity.PlayerID) bool {
	if !player.Valid() || g.Status == RoundOver {
		return false
	}
	ship := g.Ships[player]
	if !ship.Alive {
		return false
	}

	if !g.Projectiles.Spawn(ship.GetPosition(), ship.Heading, player) {
		g.logger.Debug(g.ctx, "projectile rejected",
			"player", g.PlayerName(player),
			"in_flight", g.Projectiles.Len(),
		)
		g.EventBus.Publish(event.NewProjectileEvent(
			event.ProjectileRejected, g, player, ship.GetPosition(), g.Projectiles.Len(),
		))
		return false
	}

	g.EventBus.Publish(event.NewProjectileEvent(
		event.ProjectileFired, g, player, ship.GetPosition(), g.Projectiles.Len(),
	))
	return true
}

// Winner returns the sole surviving player. ok is false while both ships
// live and when neither does.
func (g *Game) Winner() (winner entity.PlayerID, ok bool) {
	one, two := g.Ships[entity.PlayerOne].Alive, g.Ships[entity.PlayerTwo].Alive
	switch {
	case one && !two:
		return entity.PlayerOne, true
	case two && !one:
		return entity.PlayerTwo, true
	default:
		return entity.PlayerOne, false
	}
}

// endRound moves the round to over. It is a no-op once the round ended.
func (g *Game) endRound() {
	if g.Status == RoundOver {
		return
	}
	g.Status = RoundOver

	winner, ok := g.Winner()
	if ok {
		g.logger.Info(g.ctx, "round over", "tick", g.CurrentTick, "winner", g.PlayerName(winner))
	} else {
		g.logger.Info(g.ctx, "round over", "tick", g.CurrentTick, "result", "draw")
	}
	g.EventBus.Publish(event.NewRoundOverEvent(g, g.CurrentTick, winner, !ok))
}
