// pkg/render/tui/surface.go
package tui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-duel/pkg/physics"
	"github.com/opd-ai/go-duel/pkg/render"
)

// Surface rasterizes primitives into a render.Grid sized to the terminal
// and copies it onto a tcell screen on Present.
type Surface struct {
	*render.Grid
	screen     tcell.Screen
	field      physics.Rect
	background color.RGBA
}

// NewSurface creates a surface covering the whole screen
func NewSurface(screen tcell.Screen, field physics.Rect) *Surface {
	s := &Surface{screen: screen, field: field}
	s.Resize()
	return s
}

// Resize rebuilds the grid to match the current screen size
func (s *Surface) Resize() {
	cols, rows := s.screen.Size()
	s.Grid = render.NewGrid(cols, rows, s.field)
}

// Clear resets the grid and remembers the background for Present
func (s *Surface) Clear(c color.RGBA) {
	s.background = c
	s.Grid.Clear(c)
}

// Present copies every grid cell onto the screen and shows it
func (s *Surface) Present() error {
	bg := tcellColor(s.background)
	cols, rows := s.Grid.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := s.Grid.At(x, y)
			style := tcell.StyleDefault.Background(bg).Foreground(tcellColor(cell.Color))
			s.screen.SetContent(x, y, cell.Glyph, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
