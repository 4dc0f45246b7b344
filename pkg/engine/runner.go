package engine

import "github.com/opd-ai/go-duel/pkg/input"

// Runner ties a Game to a Clock for backends that render once per frame.
type Runner struct {
	Game  *Game
	Clock Clock
}

// NewRunner creates a runner for game using clock.
func NewRunner(game *Game, clock Clock) *Runner {
	return &Runner{Game: game, Clock: clock}
}

// Frame applies the key events gathered since the previous frame, runs
// exactly one tick and returns the state to draw.
func (r *Runner) Frame(events []input.KeyEvent) *GameState {
	for _, ev := range events {
		r.Game.HandleKey(ev)
	}
	r.Game.Step(r.Clock.Now())
	return r.Game.Snapshot()
}
