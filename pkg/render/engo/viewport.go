// pkg/render/engo/viewport.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-duel/pkg/physics"
)

// Viewport maps playfield units onto window pixels. The whole playfield is
// always visible, so the mapping is a uniform scale anchored at the origin.
type Viewport struct {
	field physics.Rect
	scale float32
}

// NewViewport creates a viewport showing field at scale pixels per unit.
// A non-positive scale is treated as 1.
func NewViewport(field physics.Rect, scale float64) Viewport {
	if scale <= 0 {
		scale = 1
	}
	return Viewport{field: field, scale: float32(scale)}
}

// Scale returns pixels per playfield unit
func (v Viewport) Scale() float32 {
	return v.scale
}

// WindowSize returns the window dimensions in pixels
func (v Viewport) WindowSize() (width, height int) {
	return int(float32(v.field.Width) * v.scale), int(float32(v.field.Height) * v.scale)
}

// WorldToScreen converts playfield coordinates to window coordinates
func (v Viewport) WorldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(worldPos.X-v.field.Min.X) * v.scale,
		Y: float32(worldPos.Y-v.field.Min.Y) * v.scale,
	}
}

// ScreenToWorld converts window coordinates to playfield coordinates
func (v Viewport) ScreenToWorld(screenPos engo.Point) physics.Vector2D {
	return physics.Vector2D{
		X: float64(screenPos.X/v.scale) + v.field.Min.X,
		Y: float64(screenPos.Y/v.scale) + v.field.Min.Y,
	}
}
