package render

import (
	"fmt"
	"image/color"

	"github.com/opd-ai/go-duel/pkg/physics"
)

// Surface is a backend drawing target. Coordinates are in playfield units
// with Y pointing down.
type Surface interface {
	Clear(c color.RGBA)
	FillTriangle(vertices [3]physics.Vector2D, c color.RGBA)
	FillCircle(center physics.Vector2D, radius float64, c color.RGBA)
	Present() error
}

// Replay draws commands onto surface in order and presents the result.
func Replay(commands []DrawCommand, surface Surface) error {
	for _, cmd := range commands {
		switch cmd.Kind {
		case CommandClear:
			surface.Clear(cmd.Color)
		case CommandFillTriangle:
			surface.FillTriangle(cmd.Vertices, cmd.Color)
		case CommandFillCircle:
			surface.FillCircle(cmd.Center, cmd.Radius, cmd.Color)
		default:
			return fmt.Errorf("unknown draw command %d", int(cmd.Kind))
		}
	}
	if err := surface.Present(); err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}
	return nil
}
