// Package render turns game snapshots into ordered draw commands and
// replays them onto backend surfaces.
package render

import (
	"image/color"

	"github.com/opd-ai/go-duel/pkg/config"
	"github.com/opd-ai/go-duel/pkg/engine"
	"github.com/opd-ai/go-duel/pkg/entity"
	"github.com/opd-ai/go-duel/pkg/physics"
)

// CommandKind identifies a drawing primitive
type CommandKind int

const (
	CommandClear CommandKind = iota
	CommandFillTriangle
	CommandFillCircle
)

func (k CommandKind) String() string {
	switch k {
	case CommandClear:
		return "clear"
	case CommandFillTriangle:
		return "fill_triangle"
	case CommandFillCircle:
		return "fill_circle"
	default:
		return "unknown"
	}
}

// DrawCommand is one primitive in playfield coordinates. Only the fields
// used by Kind are set.
type DrawCommand struct {
	Kind     CommandKind
	Color    color.RGBA
	Vertices [3]physics.Vector2D
	Center   physics.Vector2D
	Radius   float64
}

// Palette holds the colors used to draw a frame, indexed by player.
type Palette struct {
	Background  color.RGBA
	Ships       [entity.PlayerCount]color.RGBA
	Projectiles [entity.PlayerCount]color.RGBA
}

var (
	black = color.RGBA{A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

// DefaultPalette returns black background, blue player one, red player two.
func DefaultPalette() Palette {
	return Palette{
		Background:  black,
		Ships:       [entity.PlayerCount]color.RGBA{blue, red},
		Projectiles: [entity.PlayerCount]color.RGBA{blue, red},
	}
}

// PaletteFromConfig builds a palette from the players' configured colors.
func PaletteFromConfig(cfg *config.GameConfig) (Palette, error) {
	palette := DefaultPalette()
	for i := range cfg.Players {
		ship, projectile, err := cfg.Players[i].Colors()
		if err != nil {
			return palette, err
		}
		palette.Ships[i] = ship
		palette.Projectiles[i] = projectile
	}
	return palette, nil
}

// BuildFrame returns the draw commands for state: one clear, one triangle
// per living ship, one circle per projectile. state is not modified.
func BuildFrame(state *engine.GameState, palette Palette) []DrawCommand {
	return AppendFrame(make([]DrawCommand, 0, 1+entity.PlayerCount+len(state.Projectiles)), state, palette)
}

// AppendFrame is BuildFrame writing into dst, so a backend can reuse one
// buffer across frames.
func AppendFrame(dst []DrawCommand, state *engine.GameState, palette Palette) []DrawCommand {
	dst = append(dst, DrawCommand{Kind: CommandClear, Color: palette.Background})

	for _, ship := range state.Ships {
		if !ship.Alive {
			continue
		}
		dst = append(dst, DrawCommand{
			Kind:     CommandFillTriangle,
			Color:    palette.ship(ship.Player),
			Vertices: physics.ShipTriangle(ship.Position, ship.Heading, ship.Radius),
		})
	}

	for _, p := range state.Projectiles {
		dst = append(dst, DrawCommand{
			Kind:   CommandFillCircle,
			Color:  palette.projectile(p.Owner),
			Center: p.Position,
			Radius: p.Radius,
		})
	}
	return dst
}

func (p Palette) ship(player entity.PlayerID) color.RGBA {
	if !player.Valid() {
		return p.Background
	}
	return p.Ships[player]
}

func (p Palette) projectile(player entity.PlayerID) color.RGBA {
	if !player.Valid() {
		return p.Background
	}
	return p.Projectiles[player]
}
