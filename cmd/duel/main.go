// cmd/duel/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-duel/pkg/audio"
	"github.com/opd-ai/go-duel/pkg/config"
	"github.com/opd-ai/go-duel/pkg/engine"
	"github.com/opd-ai/go-duel/pkg/input"
	"github.com/opd-ai/go-duel/pkg/logging"
	"github.com/opd-ai/go-duel/pkg/render"
	ebitenrender "github.com/opd-ai/go-duel/pkg/render/ebiten"
	engorender "github.com/opd-ai/go-duel/pkg/render/engo"
	"github.com/opd-ai/go-duel/pkg/render/tui"
	"github.com/opd-ai/go-duel/pkg/validation"
)

// options holds the parsed command line
type options struct {
	configPath    string
	createDefault bool
	renderer      string
	mute          bool
	ticks         int
	dt            float64
	autofire      bool
	print         bool
	logPath       string
}

func main() {
	os.Exit(execute())
}

// execute runs the program and returns its exit code. Deferred cleanup
// runs before main exits.
func execute() int {
	logger := logging.NewLogger()
	ctx := logging.WithCorrelationID(context.Background(), logging.GenerateCorrelationID())

	env, err := config.LoadConfigFromEnv()
	if err != nil {
		logger.Error(ctx, "Failed to load environment configuration", err)
		return 1
	}

	opts := parseFlags(env)

	if opts.createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), opts.configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", opts.configPath,
			)
			return 1
		}
		logger.Info(ctx, "Created default configuration file", "config_path", opts.configPath)
		return 0
	}

	logger, closeLog, err := setupLogger(opts, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open log file", err, "log_path", opts.logPath)
		return 1
	}
	defer closeLog()

	if err := run(ctx, opts, env, logger); err != nil {
		logger.Error(ctx, "Duel failed", err, "renderer", opts.renderer)
		if opts.renderer == "terminal" {
			fmt.Fprintln(os.Stderr, "duel:", err)
		}
		return 1
	}
	return 0
}

// setupLogger picks where logs go. With a log path the returned close
// func releases the file. The terminal renderer owns the screen, so it
// logs nowhere unless a file is given. On error the fallback is returned.
func setupLogger(opts options, fallback *logging.Logger) (*logging.Logger, func() error, error) {
	nop := func() error { return nil }
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fallback, nop, err
		}
		return logging.NewLoggerWithWriter(f, logging.ParseLevel(os.Getenv(logging.LogLevelEnv))), f.Close, nil
	}
	if opts.renderer == "terminal" {
		return logging.NewNopLogger(), nop, nil
	}
	return fallback, nop, nil
}

func parseFlags(env *config.EnvironmentConfig) options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "duel.json", "Path to configuration file")
	flag.BoolVar(&opts.createDefault, "default", false, "Write the default configuration file and exit")
	flag.StringVar(&opts.renderer, "renderer", env.Renderer, "Renderer: engo, ebiten, terminal or headless")
	flag.BoolVar(&opts.mute, "mute", !env.AudioEnabled, "Disable sound")
	flag.IntVar(&opts.ticks, "ticks", 600, "Ticks to simulate (headless only)")
	flag.Float64Var(&opts.dt, "dt", 1.0/60, "Seconds per tick (headless only)")
	flag.BoolVar(&opts.autofire, "autofire", false, "Both players fire on the first tick (headless only)")
	flag.BoolVar(&opts.print, "print", false, "Print the final frame to stdout (headless only)")
	flag.StringVar(&opts.logPath, "log", "", "Write logs to this file instead of stderr")
	flag.Parse()
	return opts
}

// loadGameConfig reads the config file, falling back to the defaults when
// it does not exist.
func loadGameConfig(ctx context.Context, path string, logger *logging.Logger) (*config.GameConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

func run(ctx context.Context, opts options, env *config.EnvironmentConfig, logger *logging.Logger) error {
	if err := validation.ValidateRenderer(opts.renderer); err != nil {
		return err
	}

	gameConfig, err := loadGameConfig(ctx, opts.configPath, logger)
	if err != nil {
		return err
	}
	config.ApplyEnvironmentOverrides(gameConfig, env)

	palette, err := render.PaletteFromConfig(gameConfig)
	if err != nil {
		return logging.WrapError(err, "building palette")
	}

	game, err := engine.NewGame(ctx, gameConfig, logger)
	if err != nil {
		return err
	}

	if !opts.mute && opts.renderer != "headless" {
		if sounds := startAudio(ctx, game, env.AudioVolume, logger); sounds != nil {
			defer sounds.Unsubscribe(game.EventBus)
		}
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := engine.NewRunner(game, engine.NewSystemClock())
	switch opts.renderer {
	case "engo":
		scene := engorender.NewDuelScene(ctx, runner, engorender.Options{
			Title:     env.WindowTitle,
			Scale:     env.WindowScale,
			FrameRate: env.FrameRate,
			Palette:   palette,
		}, logger)
		return engorender.Run(scene)
	case "ebiten":
		return ebitenrender.Run(ebitenrender.NewGame(ctx, runner, ebitenrender.Options{
			Title:     env.WindowTitle,
			Scale:     env.WindowScale,
			FrameRate: env.FrameRate,
			Palette:   palette,
		}, logger))
	case "terminal":
		return runTerminal(ctx, runner, env, palette, logger)
	default:
		return runHeadless(ctx, game, opts, palette, logger)
	}
}

// startAudio wires sound cues to the game's events. A missing audio device
// only costs the sound and returns nil.
func startAudio(ctx context.Context, game *engine.Game, volume float64, logger *logging.Logger) *audio.SoundManager {
	player, err := audio.InitSpeaker()
	if err != nil {
		logger.Warn(ctx, "Audio unavailable, running silent", "error", err.Error())
		return nil
	}
	sounds := audio.NewSoundManager(ctx, player, volume, logger)
	sounds.Subscribe(game.EventBus)
	return sounds
}

func runTerminal(ctx context.Context, runner *engine.Runner, env *config.EnvironmentConfig, palette render.Palette, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "opening terminal")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "initializing terminal")
	}
	defer screen.Fini()

	game := tui.NewGame(ctx, screen, runner, tui.Options{
		FrameRate:      env.FrameRate,
		KeyHoldTimeout: env.KeyHoldTimeout,
		Palette:        palette,
	}, logger)
	return game.Run(ctx)
}

// runHeadless advances the game with a fixed step and no window
func runHeadless(ctx context.Context, game *engine.Game, opts options, palette render.Palette, logger *logging.Logger) error {
	if opts.ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", opts.ticks)
	}
	if err := validation.ValidateNonNegative("dt", opts.dt); err != nil {
		return err
	}

	if opts.autofire {
		for _, b := range game.Input.Bindings() {
			game.HandleKey(input.KeyEvent{Key: b.Fire, Down: true})
			game.HandleKey(input.KeyEvent{Key: b.Fire, Down: false})
		}
	}

	surface := render.NewNullRenderer(ctx, logger)
	var commands []render.DrawCommand
	start := time.Now()
	for i := 0; i < opts.ticks; i++ {
		if ctx.Err() != nil {
			break
		}
		game.Update(opts.dt)
		commands = render.AppendFrame(commands[:0], game.Snapshot(), palette)
		if err := render.Replay(commands, surface); err != nil {
			return err
		}
	}

	state := game.Snapshot()
	logger.Info(ctx, "Headless run finished",
		"ticks", state.Tick,
		"frames", surface.Frames(),
		"status", state.Status.String(),
		"projectiles", len(state.Projectiles),
		"elapsed", time.Since(start).String(),
	)
	if state.HasWinner {
		logger.Info(ctx, "Round won", "winner", game.PlayerName(state.Winner))
	}

	if opts.print {
		field := game.Playfield()
		terminal := render.NewTerminalRenderer(80, 24, field, os.Stdout)
		if err := render.Replay(render.BuildFrame(state, palette), terminal); err != nil {
			return logging.WrapError(err, "printing final frame")
		}
	}
	return nil
}
