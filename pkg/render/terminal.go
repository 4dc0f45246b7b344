package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/opd-ai/go-duel/pkg/physics"
)

// TerminalRenderer draws frames as ANSI-colored text on a writer.
type TerminalRenderer struct {
	*Grid
	out io.Writer
	buf strings.Builder
}

// NewTerminalRenderer creates a terminal renderer of cols x rows cells
// showing field and writing frames to out.
func NewTerminalRenderer(cols, rows int, field physics.Rect, out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{
		Grid: NewGrid(cols, rows, field),
		out:  out,
	}
}

// Present implements Surface. It homes the cursor, draws a border and
// writes the grid with 24-bit color escapes, emitting a new escape only
// when the color changes.
func (r *TerminalRenderer) Present() error {
	r.buf.Reset()
	r.buf.WriteString("\033[H\033[2J")

	border := "+" + strings.Repeat("-", r.width) + "+\r\n"
	r.buf.WriteString(border)

	for y := 0; y < r.height; y++ {
		r.buf.WriteByte('|')
		var current color.RGBA
		colored := false
		for x := 0; x < r.width; x++ {
			cell := r.At(x, y)
			if !colored || cell.Color != current {
				fmt.Fprintf(&r.buf, "\033[38;2;%d;%d;%dm", cell.Color.R, cell.Color.G, cell.Color.B)
				current, colored = cell.Color, true
			}
			r.buf.WriteRune(cell.Glyph)
		}
		r.buf.WriteString("\033[0m|\r\n")
	}

	r.buf.WriteString(border)

	_, err := io.WriteString(r.out, r.buf.String())
	return err
}
