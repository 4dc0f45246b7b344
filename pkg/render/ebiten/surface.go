// pkg/render/ebiten/surface.go
package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-duel/pkg/physics"
)

var triangleIndices = []uint16{0, 1, 2}

// Surface draws primitives onto the ebiten screen image of the current
// frame. Layout maps the playfield 1:1 onto the logical screen.
type Surface struct {
	target   *ebiten.Image
	white    *ebiten.Image
	vertices []ebiten.Vertex
}

// NewSurface creates a surface with no target
func NewSurface() *Surface {
	return &Surface{}
}

// SetTarget selects the image drawn to until the next call
func (s *Surface) SetTarget(target *ebiten.Image) {
	s.target = target
}

// whiteSource is a single opaque pixel used as the DrawTriangles source
func (s *Surface) whiteSource() *ebiten.Image {
	if s.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.white
}

// Clear fills the target with c
func (s *Surface) Clear(c color.RGBA) {
	if s.target == nil {
		return
	}
	s.target.Fill(c)
}

// FillTriangle draws a solid triangle
func (s *Surface) FillTriangle(vertices [3]physics.Vector2D, c color.RGBA) {
	if s.target == nil {
		return
	}
	s.vertices = triangleVertices(s.vertices[:0], vertices, c)
	s.target.DrawTriangles(s.vertices, triangleIndices, s.whiteSource(), &ebiten.DrawTrianglesOptions{})
}

// FillCircle draws a solid anti-aliased circle
func (s *Surface) FillCircle(center physics.Vector2D, radius float64, c color.RGBA) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(center.X), float32(center.Y), float32(radius), c, true)
}

// Present is a no-op; ebiten shows the screen after Draw returns
func (s *Surface) Present() error {
	return nil
}

// triangleVertices builds the three colored vertices sampling the center
// of the white source pixel.
func triangleVertices(dst []ebiten.Vertex, v [3]physics.Vector2D, c color.RGBA) []ebiten.Vertex {
	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff
	for _, p := range v {
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1.5,
			SrcY:   1.5,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	return dst
}
