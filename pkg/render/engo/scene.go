// pkg/render/engo/scene.go
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-duel/pkg/engine"
	"github.com/opd-ai/go-duel/pkg/entity"
	"github.com/opd-ai/go-duel/pkg/logging"
	"github.com/opd-ai/go-duel/pkg/render"
)

// Options configures the engo window
type Options struct {
	Title     string
	Scale     float64
	FrameRate int
	Palette   render.Palette
}

// DuelScene runs one duel inside an engo window
type DuelScene struct {
	runner   *engine.Runner
	options  Options
	viewport Viewport

	input    *InputSystem
	renderer *EngoRenderer
	frame    *FrameSystem

	logger *logging.Logger
	ctx    context.Context
}

// NewDuelScene creates a scene driving runner
func NewDuelScene(ctx context.Context, runner *engine.Runner, options Options, logger *logging.Logger) *DuelScene {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &DuelScene{
		runner:   runner,
		options:  options,
		viewport: NewViewport(runner.Game.Playfield(), options.Scale),
		logger:   logger.With("component", "engo"),
		ctx:      ctx,
	}
}

// Type returns the scene type (required by Engo)
func (scene *DuelScene) Type() string {
	return "DuelScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *DuelScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *DuelScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)
	common.SetBackground(scene.options.Palette.Background)

	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	bindings := scene.runner.Game.Input.Bindings()
	scene.input = NewInputSystem(bindings)
	scene.input.SetupInputBindings()
	world.AddSystem(scene.input)

	scene.renderer = NewEngoRenderer(
		renderSystem,
		scene.viewport,
		entity.PlayerCount,
		scene.runner.Game.Config.Physics.ProjectileCapacity,
	)
	scene.frame = &FrameSystem{
		runner:  scene.runner,
		input:   scene.input,
		surface: scene.renderer,
		palette: scene.options.Palette,
		logger:  scene.logger,
		ctx:     scene.ctx,
	}
	world.AddSystem(scene.frame)

	scene.logger.Info(scene.ctx, "engo scene ready", "title", scene.options.Title)
}

// Exit is called when the window closes
func (scene *DuelScene) Exit() {
	scene.logger.Info(scene.ctx, "engo scene exiting")
}

// Err returns the first error raised while drawing
func (scene *DuelScene) Err() error {
	if scene.frame == nil {
		return nil
	}
	return scene.frame.err
}

// FrameSystem runs one simulation tick and one render pass per engo frame
type FrameSystem struct {
	runner   *engine.Runner
	input    *InputSystem
	surface  render.Surface
	palette  render.Palette
	commands []render.DrawCommand
	err      error

	logger *logging.Logger
	ctx    context.Context
}

// Remove satisfies the ecs.System interface
func (fs *FrameSystem) Remove(basic ecs.BasicEntity) {}

// Update simulates, then replays the frame onto the engo surface
func (fs *FrameSystem) Update(dt float32) {
	if fs.err != nil {
		return
	}
	state := fs.runner.Frame(fs.input.Drain())
	fs.commands = render.AppendFrame(fs.commands[:0], state, fs.palette)
	if err := render.Replay(fs.commands, fs.surface); err != nil {
		fs.err = err
		fs.logger.Error(fs.ctx, "frame failed", err, "tick", state.Tick)
		engo.Exit()
	}
}

// Run opens the window and blocks until it closes
func Run(scene *DuelScene) error {
	width, height := scene.viewport.WindowSize()
	engo.Run(engo.RunOptions{
		Title:    scene.options.Title,
		Width:    width,
		Height:   height,
		VSync:    true,
		FPSLimit: scene.options.FrameRate,
	}, scene)
	return scene.Err()
}
