package ui

import (
	"fmt"
	"io"
	"strings"
)

// ProgressBar renders cumulative progress on a single terminal line
type ProgressBar struct {
	out     io.Writer
	total   int64
	current int64
	width   int
}

// NewProgressBar creates a new progress bar
func NewProgressBar(out io.Writer, total int64) *ProgressBar {
	return &ProgressBar{
		out:   out,
		total: total,
		width: 40,
	}
}

// SetTotal changes the total and redraws nothing
func (pb *ProgressBar) SetTotal(total int64) {
	pb.total = total
}

// Current returns the last rendered value
func (pb *ProgressBar) Current() int64 {
	return pb.current
}

// Update updates the progress bar
func (pb *ProgressBar) Update(current int64) {
	pb.current = current
	pb.Render()
}

// Render renders the progress bar
func (pb *ProgressBar) Render() {
	if pb.total <= 0 {
		return
	}

	current := min(pb.current, pb.total)
	percent := float64(current) / float64(pb.total) * 100
	filled := int(float64(pb.width) * float64(current) / float64(pb.total))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", pb.width-filled)

	fmt.Fprintf(pb.out, "\r[%s] %.1f%% (%s / %s)",
		bar,
		percent,
		FormatBits(current),
		FormatBits(pb.total))
}

// Finish ends the progress line
func (pb *ProgressBar) Finish() {
	pb.Render()
	fmt.Fprintln(pb.out)
}

// FormatBits formats a bit count with decimal prefixes, e.g. 1.5 Mbit
func FormatBits(bits int64) string {
	const unit = 1000
	if bits < unit {
		return fmt.Sprintf("%d bit", bits)
	}
	div, exp := int64(unit), 0
	for n := bits / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cbit", float64(bits)/float64(div), "kMGTPE"[exp])
}
