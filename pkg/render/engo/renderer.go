// pkg/render/engo/renderer.go
package engo

import (
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-duel/pkg/physics"
)

// Z indices keep projectiles above ships
const (
	shipZIndex       = 1
	projectileZIndex = 2
)

// shapeEntity is one pooled drawable
type shapeEntity struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// transform is the engo placement of a shape. Rotation is in degrees,
// clockwise, around Position.
type transform struct {
	Position engo.Point
	Width    float32
	Height   float32
	Rotation float32
}

// EngoRenderer is a render.Surface backed by pooled engo entities. Each
// frame reuses the entities from the start of the pool; unused ones are
// hidden.
type EngoRenderer struct {
	renderSystem *common.RenderSystem
	viewport     Viewport

	triangles    []*shapeEntity
	circles      []*shapeEntity
	nextTriangle int
	nextCircle   int
}

// NewEngoRenderer creates a renderer drawing through renderSystem. ships and
// projectiles size the initial pools; the pools grow on demand.
func NewEngoRenderer(renderSystem *common.RenderSystem, viewport Viewport, ships, projectiles int) *EngoRenderer {
	r := &EngoRenderer{
		renderSystem: renderSystem,
		viewport:     viewport,
	}
	for i := 0; i < ships; i++ {
		r.triangles = append(r.triangles, r.newShape(common.Triangle{TriangleType: common.TriangleIsosceles}, shipZIndex))
	}
	for i := 0; i < projectiles; i++ {
		r.circles = append(r.circles, r.newShape(common.Circle{}, projectileZIndex))
	}
	return r
}

// newShape creates a hidden entity and registers it with the render system
func (r *EngoRenderer) newShape(drawable common.Drawable, z float32) *shapeEntity {
	e := &shapeEntity{BasicEntity: ecs.NewBasic()}
	e.RenderComponent = common.RenderComponent{Drawable: drawable, Color: color.Black}
	e.RenderComponent.SetZIndex(z)
	e.RenderComponent.Hidden = true
	r.renderSystem.Add(&e.BasicEntity, &e.RenderComponent, &e.SpaceComponent)
	return e
}

// Clear hides every pooled shape and sets the background color
func (r *EngoRenderer) Clear(c color.RGBA) {
	for _, e := range r.triangles[:r.nextTriangle] {
		e.Hidden = true
	}
	for _, e := range r.circles[:r.nextCircle] {
		e.Hidden = true
	}
	r.nextTriangle = 0
	r.nextCircle = 0
	common.SetBackground(c)
}

// FillTriangle shows the next pooled triangle over vertices
func (r *EngoRenderer) FillTriangle(vertices [3]physics.Vector2D, c color.RGBA) {
	if r.nextTriangle == len(r.triangles) {
		r.triangles = append(r.triangles, r.newShape(common.Triangle{TriangleType: common.TriangleIsosceles}, shipZIndex))
	}
	e := r.triangles[r.nextTriangle]
	r.nextTriangle++

	for i := range vertices {
		screen := r.viewport.WorldToScreen(vertices[i])
		vertices[i] = physics.Vector2D{X: float64(screen.X), Y: float64(screen.Y)}
	}
	place(e, triangleTransform(vertices), c)
}

// FillCircle shows the next pooled circle
func (r *EngoRenderer) FillCircle(center physics.Vector2D, radius float64, c color.RGBA) {
	if r.nextCircle == len(r.circles) {
		r.circles = append(r.circles, r.newShape(common.Circle{}, projectileZIndex))
	}
	e := r.circles[r.nextCircle]
	r.nextCircle++

	screen := r.viewport.WorldToScreen(center)
	place(e, circleTransform(screen, float32(radius)*r.viewport.Scale()), c)
}

// Present is a no-op; the render system draws the entities after the
// frame system has placed them.
func (r *EngoRenderer) Present() error {
	return nil
}

// Visible returns the number of shapes shown this frame
func (r *EngoRenderer) Visible() (triangles, circles int) {
	return r.nextTriangle, r.nextCircle
}

func place(e *shapeEntity, t transform, c color.RGBA) {
	e.Color = c
	e.Position = t.Position
	e.Width = t.Width
	e.Height = t.Height
	e.Rotation = t.Rotation
	e.Hidden = false
}

// triangleTransform fits an engo isosceles triangle over vertices, whose
// first element is the apex. The unrotated drawable points its apex up.
func triangleTransform(v [3]physics.Vector2D) transform {
	apex := v[0]
	baseMid := v[1].Add(v[2]).Scale(0.5)
	center := apex.Add(baseMid).Scale(0.5)

	height := apex.Distance(baseMid)
	width := v[1].Distance(v[2])

	d := apex.Sub(center)
	theta := math.Atan2(d.X, -d.Y)

	// Undo the rotation of the box center around the top-left corner
	sin, cos := math.Sincos(theta)
	hx, hy := width/2, height/2
	offset := physics.Vector2D{X: hx*cos - hy*sin, Y: hx*sin + hy*cos}
	pos := center.Sub(offset)

	return transform{
		Position: engo.Point{X: float32(pos.X), Y: float32(pos.Y)},
		Width:    float32(width),
		Height:   float32(height),
		Rotation: float32(theta * 180 / math.Pi),
	}
}

// circleTransform places a circle's bounding box around center
func circleTransform(center engo.Point, radius float32) transform {
	return transform{
		Position: engo.Point{X: center.X - radius, Y: center.Y - radius},
		Width:    2 * radius,
		Height:   2 * radius,
	}
}
