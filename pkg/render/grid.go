package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/opd-ai/go-duel/pkg/physics"
)

// Glyphs used by the cell grid
const (
	GlyphEmpty      = ' '
	GlyphShip       = '#'
	GlyphProjectile = 'o'
)

// Cell is one character position of a Grid
type Cell struct {
	Glyph rune
	Color color.RGBA
}

// Grid rasterizes primitives into a fixed character grid scaled to cover
// the whole playfield. A cell is filled when its center lies inside the
// shape; the cell under a shape's center is always filled so small shapes
// stay visible.
type Grid struct {
	width  int
	height int
	cells  []Cell
	field  physics.Rect
	cellW  float64
	cellH  float64
}

// NewGrid creates a cols x rows grid covering field.
func NewGrid(cols, rows int, field physics.Rect) *Grid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &Grid{
		width:  cols,
		height: rows,
		cells:  make([]Cell, cols*rows),
		field:  field,
		cellW:  field.Width / float64(cols),
		cellH:  field.Height / float64(rows),
	}
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (cols, rows int) {
	return g.width, g.height
}

// At returns the cell at column x, row y.
func (g *Grid) At(x, y int) Cell {
	return g.cells[y*g.width+x]
}

// worldToScreen converts playfield coordinates to a cell position. The
// result may lie outside the grid.
func (g *Grid) worldToScreen(pos physics.Vector2D) (int, int) {
	x := int(math.Floor((pos.X - g.field.Min.X) / g.cellW))
	y := int(math.Floor((pos.Y - g.field.Min.Y) / g.cellH))
	return x, y
}

// screenToWorld returns the playfield position of a cell's center.
func (g *Grid) screenToWorld(x, y int) physics.Vector2D {
	return physics.Vector2D{
		X: g.field.Min.X + (float64(x)+0.5)*g.cellW,
		Y: g.field.Min.Y + (float64(y)+0.5)*g.cellH,
	}
}

func (g *Grid) set(x, y int, glyph rune, c color.RGBA) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = Cell{Glyph: glyph, Color: c}
}

// cellRange returns the clamped cell span covering [min, max] on one axis.
func cellRange(min, max, origin, size float64, n int) (int, int) {
	lo := int(math.Floor((min - origin) / size))
	hi := int(math.Floor((max - origin) / size))
	if lo < 0 {
		lo = 0
	}
	if hi > n-1 {
		hi = n - 1
	}
	return lo, hi
}

// Clear implements Surface.
func (g *Grid) Clear(c color.RGBA) {
	for i := range g.cells {
		g.cells[i] = Cell{Glyph: GlyphEmpty, Color: c}
	}
}

// FillTriangle implements Surface.
func (g *Grid) FillTriangle(vertices [3]physics.Vector2D, c color.RGBA) {
	minX := math.Min(vertices[0].X, math.Min(vertices[1].X, vertices[2].X))
	maxX := math.Max(vertices[0].X, math.Max(vertices[1].X, vertices[2].X))
	minY := math.Min(vertices[0].Y, math.Min(vertices[1].Y, vertices[2].Y))
	maxY := math.Max(vertices[0].Y, math.Max(vertices[1].Y, vertices[2].Y))

	x0, x1 := cellRange(minX, maxX, g.field.Min.X, g.cellW, g.width)
	y0, y1 := cellRange(minY, maxY, g.field.Min.Y, g.cellH, g.height)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if physics.PointInTriangle(g.screenToWorld(x, y), vertices) {
				g.set(x, y, GlyphShip, c)
			}
		}
	}

	centroid := vertices[0].Add(vertices[1]).Add(vertices[2]).Scale(1.0 / 3)
	cx, cy := g.worldToScreen(centroid)
	g.set(cx, cy, GlyphShip, c)
}

// FillCircle implements Surface.
func (g *Grid) FillCircle(center physics.Vector2D, radius float64, c color.RGBA) {
	circle := physics.Circle{Center: center, Radius: radius}

	x0, x1 := cellRange(center.X-radius, center.X+radius, g.field.Min.X, g.cellW, g.width)
	y0, y1 := cellRange(center.Y-radius, center.Y+radius, g.field.Min.Y, g.cellH, g.height)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if circle.Contains(g.screenToWorld(x, y)) {
				g.set(x, y, GlyphProjectile, c)
			}
		}
	}

	cx, cy := g.worldToScreen(center)
	g.set(cx, cy, GlyphProjectile, c)
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
