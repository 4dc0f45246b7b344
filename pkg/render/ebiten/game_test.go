// pkg/render/ebiten/game_test.go
package ebiten

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/opd-ai/go-duel/pkg/config"
	"github.com/opd-ai/go-duel/pkg/engine"
	"github.com/opd-ai/go-duel/pkg/input"
	"github.com/opd-ai/go-duel/pkg/physics"
	"github.com/opd-ai/go-duel/pkg/render"
)

func newTestGame(t *testing.T) (*Game, *engine.ManualClock) {
	t.Helper()
	game, err := engine.NewGame(context.Background(), config.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	clock := &engine.ManualClock{}
	g := NewGame(context.Background(), engine.NewRunner(game, clock), Options{
		Title:   "test",
		Palette: render.DefaultPalette(),
	}, nil)
	return g, clock
}

func TestAppendKeyEvents(t *testing.T) {
	tests := []struct {
		name     string
		pressed  []ebiten.Key
		released []ebiten.Key
		want     []input.KeyEvent
		quit     bool
	}{
		{
			name:    "press",
			pressed: []ebiten.Key{ebiten.KeyW, ebiten.KeySemicolon},
			want: []input.KeyEvent{
				{Key: input.KeyW, Down: true},
				{Key: input.KeySemicolon, Down: true},
			},
		},
		{
			name:     "tap within one tick",
			pressed:  []ebiten.Key{ebiten.KeySpace},
			released: []ebiten.Key{ebiten.KeySpace},
			want: []input.KeyEvent{
				{Key: input.KeySpace, Down: true},
				{Key: input.KeySpace, Down: false},
			},
		},
		{
			name:    "unmapped keys are dropped",
			pressed: []ebiten.Key{ebiten.KeyQ, ebiten.KeyArrowLeft},
			want:    []input.KeyEvent{{Key: input.KeyArrowLeft, Down: true}},
		},
		{
			name:    "escape quits",
			pressed: []ebiten.Key{ebiten.KeyEscape},
			want:    []input.KeyEvent{{Key: input.KeyEscape, Down: true}},
			quit:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := appendKeyEvents(nil, tt.pressed, tt.released)
			if quit != tt.quit {
				t.Errorf("quit = %v, want %v", quit, tt.quit)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("events = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("event %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTriangleVertices(t *testing.T) {
	tri := [3]physics.Vector2D{{X: 10, Y: 0}, {X: 0, Y: 5}, {X: 0, Y: -5}}
	vs := triangleVertices(nil, tri, color.RGBA{R: 0xff, B: 0xff, A: 0xff})
	if len(vs) != 3 {
		t.Fatalf("got %d vertices, want 3", len(vs))
	}
	for i, v := range vs {
		if v.DstX != float32(tri[i].X) || v.DstY != float32(tri[i].Y) {
			t.Errorf("vertex %d at (%v,%v), want %v", i, v.DstX, v.DstY, tri[i])
		}
		if v.ColorR != 1 || v.ColorG != 0 || v.ColorB != 1 || v.ColorA != 1 {
			t.Errorf("vertex %d color = (%v,%v,%v,%v)", i, v.ColorR, v.ColorG, v.ColorB, v.ColorA)
		}
	}
}

func TestGameFrame(t *testing.T) {
	g, clock := newTestGame(t)

	g.frame(nil)
	// clear, two ships
	if len(g.commands) != 3 {
		t.Fatalf("first frame has %d commands, want 3", len(g.commands))
	}

	clock.Advance(10 * time.Millisecond)
	g.frame([]input.KeyEvent{{Key: input.KeySpace, Down: true}})
	if len(g.commands) != 4 || g.commands[3].Kind != render.CommandFillCircle {
		t.Fatalf("after fire got %+v, want a projectile circle last", g.commands)
	}
	if g.runner.Game.CurrentTick != 2 {
		t.Errorf("tick = %d, want 2", g.runner.Game.CurrentTick)
	}
}

func TestGameLayout(t *testing.T) {
	g, _ := newTestGame(t)
	w, h := g.Layout(1280, 960)
	if w != 640 || h != 480 {
		t.Errorf("Layout = %dx%d, want 640x480", w, h)
	}
}

func TestSurfaceWithoutTarget(t *testing.T) {
	s := NewSurface()
	s.Clear(color.RGBA{})
	s.FillTriangle([3]physics.Vector2D{}, color.RGBA{})
	s.FillCircle(physics.Vector2D{}, 1, color.RGBA{})
	if err := s.Present(); err != nil {
		t.Errorf("Present: %v", err)
	}
}
