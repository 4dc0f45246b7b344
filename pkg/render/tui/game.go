// pkg/render/tui/game.go
package tui

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-duel/pkg/engine"
	"github.com/opd-ai/go-duel/pkg/input"
	"github.com/opd-ai/go-duel/pkg/logging"
	"github.com/opd-ai/go-duel/pkg/render"
)

// Options configures the terminal loop
type Options struct {
	FrameRate      int
	KeyHoldTimeout time.Duration
	Palette        render.Palette
}

// Game drives a runner from tcell key events and a frame ticker. All
// simulation and drawing happens on the goroutine calling Run.
type Game struct {
	screen  tcell.Screen
	runner  *engine.Runner
	surface *Surface
	holds   *HoldTracker
	options Options

	pending  []input.KeyEvent
	commands []render.DrawCommand

	logger *logging.Logger
	ctx    context.Context
}

// NewGame creates a terminal game on an initialized screen
func NewGame(ctx context.Context, screen tcell.Screen, runner *engine.Runner, options Options, logger *logging.Logger) *Game {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if options.FrameRate <= 0 {
		options.FrameRate = 60
	}
	return &Game{
		screen:  screen,
		runner:  runner,
		surface: NewSurface(screen, runner.Game.Playfield()),
		holds:   NewHoldTracker(int64(options.KeyHoldTimeout)),
		options: options,
		logger:  logger.With("component", "tui"),
		ctx:     ctx,
	}
}

// handleEvent applies one tcell event. It returns false when the player
// asked to quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, quit := translateKey(ev)
		if quit {
			return false
		}
		if key != input.KeyUnknown && g.holds.Press(key, g.runner.Clock.Now()) {
			g.pending = append(g.pending, input.KeyEvent{Key: key, Down: true})
		}
	case *tcell.EventResize:
		g.surface.Resize()
		g.screen.Sync()
	}
	return true
}

// frame releases expired holds, runs one tick and draws it
func (g *Game) frame() error {
	g.pending = g.holds.Expire(g.pending, g.runner.Clock.Now())
	state := g.runner.Frame(g.pending)
	g.pending = g.pending[:0]

	g.commands = render.AppendFrame(g.commands[:0], state, g.options.Palette)
	return render.Replay(g.commands, g.surface)
}

// Run polls the screen on a helper goroutine and renders on a ticker until
// ctx is done or the player quits.
func (g *Game) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(g.options.FrameRate))
	defer ticker.Stop()

	g.logger.Info(g.ctx, "terminal loop started", "frame_rate", g.options.FrameRate)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !g.handleEvent(ev) {
				g.logger.Info(g.ctx, "quit requested", "tick", g.runner.Game.CurrentTick)
				return nil
			}
		case <-ticker.C:
			if err := g.frame(); err != nil {
				return logging.WrapError(err, "terminal frame")
			}
		}
	}
}
