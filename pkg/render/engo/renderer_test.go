// pkg/render/engo/renderer_test.go
package engo

import (
	"math"
	"testing"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-duel/pkg/input"
	"github.com/opd-ai/go-duel/pkg/physics"
)

const epsilon = 1e-3

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

// normalizeDegrees maps an angle into (-180, 180]
func normalizeDegrees(d float32) float32 {
	for d <= -180+epsilon {
		d += 360
	}
	for d > 180+epsilon {
		d -= 360
	}
	return d
}

// rotateAround maps a local drawable point to screen space the way engo
// places a rotated SpaceComponent.
func rotateAround(t transform, local engo.Point) engo.Point {
	sin, cos := math.Sincos(float64(t.Rotation) * math.Pi / 180)
	x, y := float64(local.X), float64(local.Y)
	return engo.Point{
		X: t.Position.X + float32(x*cos-y*sin),
		Y: t.Position.Y + float32(x*sin+y*cos),
	}
}

func TestTriangleTransform(t *testing.T) {
	center := physics.Vector2D{X: 100, Y: 100}

	tests := []struct {
		name     string
		heading  float64
		rotation float32
	}{
		{"facing right", 0, 90},
		{"facing up", math.Pi / 2, 0},
		{"facing left", math.Pi, -90},
		{"facing down", -math.Pi / 2, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vertices := physics.ShipTriangle(center, tt.heading, 10)
			tr := triangleTransform(vertices)

			if !near(tr.Width, 10) || !near(tr.Height, 20) {
				t.Errorf("size = %vx%v, want 10x20", tr.Width, tr.Height)
			}
			if !near(normalizeDegrees(tr.Rotation), tt.rotation) {
				t.Errorf("rotation = %v, want %v", tr.Rotation, tt.rotation)
			}

			// Apex of the unrotated drawable is the top middle
			apex := rotateAround(tr, engo.Point{X: tr.Width / 2, Y: 0})
			if !near(apex.X, float32(vertices[0].X)) || !near(apex.Y, float32(vertices[0].Y)) {
				t.Errorf("apex = %v, want %v", apex, vertices[0])
			}

			mid := rotateAround(tr, engo.Point{X: tr.Width / 2, Y: tr.Height / 2})
			if !near(mid.X, 100) || !near(mid.Y, 100) {
				t.Errorf("box center = %v, want (100,100)", mid)
			}
		})
	}
}

func TestTriangleTransformFacingRightPosition(t *testing.T) {
	tr := triangleTransform(physics.ShipTriangle(physics.Vector2D{X: 100, Y: 100}, 0, 10))
	if !near(tr.Position.X, 110) || !near(tr.Position.Y, 95) {
		t.Errorf("position = %v, want (110,95)", tr.Position)
	}
}

func TestCircleTransform(t *testing.T) {
	tr := circleTransform(engo.Point{X: 50, Y: 60}, 3)
	if tr.Position != (engo.Point{X: 47, Y: 57}) {
		t.Errorf("position = %v, want (47,57)", tr.Position)
	}
	if tr.Width != 6 || tr.Height != 6 || tr.Rotation != 0 {
		t.Errorf("transform = %+v, want 6x6 unrotated", tr)
	}
}

func TestViewport(t *testing.T) {
	field := physics.NewPlayfield(640, 480)

	t.Run("default scale", func(t *testing.T) {
		v := NewViewport(field, 0)
		if v.Scale() != 1 {
			t.Errorf("scale = %v, want 1", v.Scale())
		}
		w, h := v.WindowSize()
		if w != 640 || h != 480 {
			t.Errorf("window = %dx%d, want 640x480", w, h)
		}
	})

	t.Run("doubled", func(t *testing.T) {
		v := NewViewport(field, 2)
		w, h := v.WindowSize()
		if w != 1280 || h != 960 {
			t.Errorf("window = %dx%d, want 1280x960", w, h)
		}
		p := v.WorldToScreen(physics.Vector2D{X: 170, Y: 240})
		if p != (engo.Point{X: 340, Y: 480}) {
			t.Errorf("WorldToScreen = %v, want (340,480)", p)
		}
		back := v.ScreenToWorld(p)
		if back != (physics.Vector2D{X: 170, Y: 240}) {
			t.Errorf("ScreenToWorld = %v, want (170,240)", back)
		}
	})
}

func TestInputSystemKeys(t *testing.T) {
	is := NewInputSystem(input.DefaultBindings())
	keys := is.Keys()
	if len(keys) != 10 {
		t.Fatalf("watched %d keys, want 10", len(keys))
	}
	for _, k := range keys {
		if _, ok := engoKey(k); !ok {
			t.Errorf("key %s has no engo code", k)
		}
	}
	if _, ok := engoKey(input.KeyUnknown); ok {
		t.Error("KeyUnknown mapped to an engo key")
	}
	if got := buttonName(input.KeySpace); got != "duel_space" {
		t.Errorf("buttonName = %q, want duel_space", got)
	}
}

func TestInputSystemDrain(t *testing.T) {
	is := NewInputSystem(input.DefaultBindings())
	is.pending = append(is.pending,
		input.KeyEvent{Key: input.KeyW, Down: true},
		input.KeyEvent{Key: input.KeyW, Down: false},
	)

	events := is.Drain()
	if len(events) != 2 || !events[0].Down || events[1].Down {
		t.Errorf("Drain = %+v, want down then up", events)
	}
	if again := is.Drain(); len(again) != 0 {
		t.Errorf("second Drain = %+v, want empty", again)
	}
}
