package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-pacman/internal/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/theme"
)

// ANSI escape sequences
const (
	seqClearScreen = "\x1b[2J"
	seqHome        = "\x1b[H"
	seqClearLine   = "\x1b[K"
	seqReset       = "\x1b[0m"
	seqHideCursor  = "\x1b[?25l"
	seqShowCursor  = "\x1b[?25h"
)

// Display writes paint commands as ANSI escape sequences. Output is buffered
// until Flush.
type Display struct {
	w       *bufio.Writer
	theme   theme.Theme
	color   bool
	cleared bool
}

// NewDisplay creates a display writing to w. With color false, glyphs are
// written without SGR codes.
func NewDisplay(w io.Writer, th theme.Theme, color bool) *Display {
	return &Display{
		w:     bufio.NewWriter(w),
		theme: th,
		color: color,
	}
}

// Clear homes the cursor. The screen itself is wiped only on the first call;
// every frame repaints all cells, so later frames just overwrite.
func (d *Display) Clear() {
	if !d.cleared {
		d.w.WriteString(seqClearScreen)
		d.cleared = true
	}
	d.w.WriteString(seqHome)
}

// Paint draws glyph g at maze position p.
func (d *Display) Paint(p pacman.Position, g pacman.Glyph) {
	d.moveTo(p.Row, p.Col)
	c := d.theme.Cell(g)
	if code := c.Color.ANSI(); d.color && code != "" {
		fmt.Fprintf(d.w, "\x1b[38;5;%sm%c%s", code, c.Rune, seqReset)
		return
	}
	d.w.WriteRune(c.Rune)
}

// Print writes text at the start of a row and clears the rest of the line.
func (d *Display) Print(row int, text string) {
	d.moveTo(row, 0)
	d.w.WriteString(text)
	d.w.WriteString(seqClearLine)
}

// moveTo positions the cursor at a 0-indexed row and column.
func (d *Display) moveTo(row, col int) {
	fmt.Fprintf(d.w, "\x1b[%d;%dH", row+1, col+1)
}

// HideCursor hides the terminal cursor.
func (d *Display) HideCursor() {
	d.w.WriteString(seqHideCursor)
}

// ShowCursor shows the terminal cursor and resets attributes.
func (d *Display) ShowCursor() {
	d.w.WriteString(seqReset + seqShowCursor)
}

// Flush writes buffered output.
func (d *Display) Flush() error {
	return d.w.Flush()
}

var _ pacman.Flusher = (*Display)(nil)
