// pkg/render/renderer.go
package render

import (
	"context"
	"image/color"

	"github.com/opd-ai/go-duel/pkg/logging"
	"github.com/opd-ai/go-duel/pkg/physics"
)

// NullRenderer is a Surface that draws nothing and logs each primitive at
// debug level. Headless runs use it.
type NullRenderer struct {
	logger *logging.Logger
	ctx    context.Context
	frames uint64
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer(ctx context.Context, logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &NullRenderer{
		logger: logger.With("component", "null_renderer"),
		ctx:    ctx,
	}
}

// Frames returns how many frames were presented.
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Clear implements Surface.
func (d *NullRenderer) Clear(c color.RGBA) {
	d.logger.Debug(d.ctx, "Clear called", "color", hexColor(c))
}

// FillTriangle implements Surface.
func (d *NullRenderer) FillTriangle(vertices [3]physics.Vector2D, c color.RGBA) {
	d.logger.Debug(d.ctx, "FillTriangle called",
		"apex_x", vertices[0].X,
		"apex_y", vertices[0].Y,
		"color", hexColor(c),
	)
}

// FillCircle implements Surface.
func (d *NullRenderer) FillCircle(center physics.Vector2D, radius float64, c color.RGBA) {
	d.logger.Debug(d.ctx, "FillCircle called",
		"x", center.X,
		"y", center.Y,
		"radius", radius,
		"color", hexColor(c),
	)
}

// Present implements Surface.
func (d *NullRenderer) Present() error {
	d.frames++
	d.logger.Debug(d.ctx, "Present called", "frame", d.frames)
	return nil
}
