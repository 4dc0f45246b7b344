// Package ebiten runs a duel in an ebiten window.
package ebiten

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/go-duel/pkg/engine"
	"github.com/opd-ai/go-duel/pkg/input"
	"github.com/opd-ai/go-duel/pkg/logging"
	"github.com/opd-ai/go-duel/pkg/render"
)

// Options configures the ebiten window
type Options struct {
	Title     string
	Scale     float64
	FrameRate int
	Palette   render.Palette
}

// Game adapts an engine.Runner to ebiten.Game. Update runs one tick and
// builds the frame; Draw replays it.
type Game struct {
	runner  *engine.Runner
	options Options
	surface *Surface

	pressed  []ebiten.Key
	released []ebiten.Key
	events   []input.KeyEvent
	commands []render.DrawCommand

	logger *logging.Logger
	ctx    context.Context
}

// NewGame creates an ebiten game driving runner
func NewGame(ctx context.Context, runner *engine.Runner, options Options, logger *logging.Logger) *Game {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if options.Scale <= 0 {
		options.Scale = 1
	}
	return &Game{
		runner:  runner,
		options: options,
		surface: NewSurface(),
		logger:  logger.With("component", "ebiten"),
		ctx:     ctx,
	}
}

// Update polls the keyboard and advances the simulation by one tick
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])

	var quit bool
	g.events, quit = appendKeyEvents(g.events[:0], g.pressed, g.released)
	if quit {
		return ebiten.Termination
	}
	g.frame(g.events)
	return nil
}

// frame runs one tick and rebuilds the draw list
func (g *Game) frame(events []input.KeyEvent) {
	state := g.runner.Frame(events)
	g.commands = render.AppendFrame(g.commands[:0], state, g.options.Palette)
}

// Draw replays the latest frame onto screen
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	if err := render.Replay(g.commands, g.surface); err != nil {
		g.logger.Error(g.ctx, "frame failed", err)
	}
}

// Layout keeps the logical screen equal to the playfield
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	field := g.runner.Game.Playfield()
	return int(field.Width), int(field.Height)
}

// Run opens the window and blocks until it closes or Escape is pressed
func Run(game *Game) error {
	field := game.runner.Game.Playfield()
	ebiten.SetWindowSize(int(field.Width*game.options.Scale), int(field.Height*game.options.Scale))
	ebiten.SetWindowTitle(game.options.Title)
	if game.options.FrameRate > 0 {
		ebiten.SetTPS(game.options.FrameRate)
	}

	game.logger.Info(game.ctx, "ebiten window opening", "title", game.options.Title)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebiten run: %w", err)
	}
	return nil
}
