package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitgrid/cli/internal/grid"
)

// StreamDisplay writes squares to a terminal line by line. Squares that were
// written cannot be taken back, so Clear only starts a fresh line.
type StreamDisplay struct {
	// Quiet drops every message except errors
	Quiet bool

	out    io.Writer
	msg    io.Writer
	styles Styles
	glyph  string
	width  int

	col             int
	count           int64
	continueVisible bool
}

// NewStreamDisplay creates a display writing squares to out, wrapped at width
// columns, and messages to msg
func NewStreamDisplay(out, msg io.Writer, styles Styles, glyph string, width int) *StreamDisplay {
	if width <= 0 {
		width = 80
	}
	return &StreamDisplay{
		out:    out,
		msg:    msg,
		styles: styles,
		glyph:  glyph,
		width:  width,
	}
}

// Clear implements grid.Display
func (d *StreamDisplay) Clear() {
	d.breakLine()
	d.count = 0
}

// Append implements grid.Display
func (d *StreamDisplay) Append(n int64) {
	if n <= 0 {
		return
	}

	square := d.styles.Square.Render(d.glyph)

	var sb strings.Builder
	for i := int64(0); i < n; i++ {
		sb.WriteString(square)
		d.col++
		if d.col == d.width {
			sb.WriteByte('\n')
			d.col = 0
		}
	}
	io.WriteString(d.out, sb.String())
	d.count += n
}

// ShowMessage implements grid.Display
func (d *StreamDisplay) ShowMessage(text string, sev grid.Severity) {
	d.breakLine()
	if d.Quiet && sev != grid.SeverityError {
		return
	}
	fmt.Fprintln(d.msg, d.styles.RenderMessage(text, sev))
}

// SetContinueVisible implements grid.Display
func (d *StreamDisplay) SetContinueVisible(visible bool) {
	d.continueVisible = visible
}

// ContinueVisible reports whether more bits can be shown
func (d *StreamDisplay) ContinueVisible() bool {
	return d.continueVisible
}

// Count returns the squares written since the last Clear
func (d *StreamDisplay) Count() int64 {
	return d.count
}

func (d *StreamDisplay) breakLine() {
	if d.col > 0 {
		fmt.Fprintln(d.out)
		d.col = 0
	}
}

// BarDisplay shows cumulative progress as a bar instead of squares
type BarDisplay struct {
	// Quiet drops every message except errors
	Quiet bool

	bar             *ProgressBar
	msg             io.Writer
	styles          Styles
	count           int64
	open            bool
	continueVisible bool
}

// NewBarDisplay creates a progress bar display on out
func NewBarDisplay(out, msg io.Writer, styles Styles) *BarDisplay {
	return &BarDisplay{
		bar:    NewProgressBar(out, 0),
		msg:    msg,
		styles: styles,
	}
}

// SetTotal sets the bit count the bar fills towards
func (d *BarDisplay) SetTotal(total int64) {
	d.bar.SetTotal(total)
}

// Clear implements grid.Display
func (d *BarDisplay) Clear() {
	d.count = 0
	d.bar.current = 0
}

// Append implements grid.Display
func (d *BarDisplay) Append(n int64) {
	d.count += n
	d.open = true
	d.bar.Update(d.count)
}

// ShowMessage implements grid.Display
func (d *BarDisplay) ShowMessage(text string, sev grid.Severity) {
	if d.open {
		d.bar.Finish()
		d.open = false
	}
	if d.Quiet && sev != grid.SeverityError {
		return
	}
	fmt.Fprintln(d.msg, d.styles.RenderMessage(text, sev))
}

// SetContinueVisible implements grid.Display
func (d *BarDisplay) SetContinueVisible(visible bool) {
	d.continueVisible = visible
}

// ContinueVisible reports whether more bits can be shown
func (d *BarDisplay) ContinueVisible() bool {
	return d.continueVisible
}

// Count returns the bits counted since the last Clear
func (d *BarDisplay) Count() int64 {
	return d.count
}
