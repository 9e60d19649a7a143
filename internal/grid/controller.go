package grid

import (
	"errors"
	"fmt"
	"time"

	"github.com/bitgrid/cli/internal/units"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// User-facing messages
const (
	msgInvalidQuantity = "Please enter a valid positive number."
	msgGenerating      = "Generating visualization..."
)

// Controller owns the totals, the cap policy and the running session.
// It is not safe for concurrent use; front ends call it from one goroutine.
type Controller struct {
	opts    Options
	display Display
	log     zerolog.Logger

	total   int64
	shown   int64
	session *Session
}

// NewController creates a controller that renders into display
func NewController(display Display, opts Options, log zerolog.Logger) *Controller {
	return &Controller{
		opts:    opts.withDefaults(),
		display: display,
		log:     log,
	}
}

// Options returns the effective options
func (c *Controller) Options() Options {
	return c.opts
}

// Total returns the bit count of the current generate action
func (c *Controller) Total() int64 {
	return c.total
}

// Shown returns the number of bits shown by completed batches
func (c *Controller) Shown() int64 {
	return c.shown
}

// Running reports whether a session is in flight
func (c *Controller) Running() bool {
	return c.session != nil
}

// Token returns the ID of the running session, or uuid.Nil when idle.
// Frames must carry this token to advance the session.
func (c *Controller) Token() uuid.UUID {
	if c.session == nil {
		return uuid.Nil
	}
	return c.session.ID
}

// Session returns the running session, or nil when idle
func (c *Controller) Session() *Session {
	return c.session
}

// Progress returns the running batch's fraction at now, or 0 when idle
func (c *Controller) Progress(now time.Time) float64 {
	if c.session == nil {
		return 0
	}
	return c.session.Fraction(now)
}

// Generate starts over with quantity units of unit. It cancels any running
// session and clears the display first. Invalid quantities and unknown units
// are reported on the display and returned; nothing else is mutated for them.
func (c *Controller) Generate(quantity, unit string, capDisabled bool) error {
	c.Cancel()
	c.display.Clear()
	c.display.SetContinueVisible(false)
	c.shown = 0
	c.total = 0

	n, err := units.ParseQuantity(quantity)
	if err != nil {
		c.display.ShowMessage(msgInvalidQuantity, SeverityError)
		return err
	}

	total, err := units.ConvertString(n, unit)
	if err != nil {
		c.display.ShowMessage(conversionMessage(err, unit), SeverityError)
		return err
	}
	c.total = total

	first := FirstBatch(total, capDisabled, c.opts.CapCeiling)
	if first == 0 {
		c.display.ShowMessage(fmt.Sprintf("Total is %d bits.", total), SeverityInfo)
		return nil
	}

	c.log.Info().
		Int64("quantity", n).
		Str("unit", unit).
		Int64("total", total).
		Bool("cap_disabled", capDisabled).
		Msg("Generating visualization")

	c.display.ShowMessage(msgGenerating, SeverityInfo)
	c.start(first, capDisabled)
	return nil
}

// ShowMore starts the next batch. It is a no-op while a session is running
// or when every bit is already shown, and reports whether a batch started.
func (c *Controller) ShowMore() bool {
	if c.session != nil {
		return false
	}

	next := NextBatch(c.total, c.shown, c.opts.Increment)
	if next <= 0 {
		return false
	}

	c.display.SetContinueVisible(false)
	c.display.ShowMessage(fmt.Sprintf("Adding %d more bits...", next), SeverityInfo)
	c.start(next, false)
	return true
}

// Cancel drops the running session. Units it had not materialized are lost.
func (c *Controller) Cancel() {
	if c.session == nil {
		return
	}
	c.log.Debug().
		Str("session", c.session.ID.String()).
		Int64("elapsed", c.session.Elapsed).
		Int64("target", c.session.Target).
		Msg("Session cancelled")
	c.session = nil
}

// Frame advances the session identified by token to now and reports whether
// further frames are wanted. Frames carrying a stale token are ignored.
func (c *Controller) Frame(token uuid.UUID, now time.Time) bool {
	s := c.session
	if s == nil || s.ID != token {
		return false
	}

	delta, done := s.Step(now)
	if delta > 0 {
		c.display.Append(delta)
	}
	if !done {
		return true
	}

	c.complete(s)
	return false
}

func (c *Controller) start(target int64, capDisabled bool) {
	c.session = newSession(target, c.opts.Duration, capDisabled)
	c.log.Debug().
		Str("session", c.session.ID.String()).
		Int64("target", target).
		Dur("duration", c.opts.Duration).
		Msg("Session started")
}

func (c *Controller) complete(s *Session) {
	c.session = nil
	c.shown += s.Elapsed

	c.log.Info().
		Str("session", s.ID.String()).
		Int64("batch", s.Elapsed).
		Int64("shown", c.shown).
		Int64("total", c.total).
		Msg("Session complete")

	if s.CapDisabled || c.shown >= c.total {
		c.display.ShowMessage(fmt.Sprintf("Showing all %d bits.", c.shown), SeveritySuccess)
		c.display.SetContinueVisible(false)
		return
	}

	c.display.ShowMessage(fmt.Sprintf("Showing %d of %d bits.", c.shown, c.total), SeverityInfo)
	c.display.SetContinueVisible(true)
}

func conversionMessage(err error, unit string) string {
	switch {
	case errors.Is(err, units.ErrUnknownUnit):
		return fmt.Sprintf("Unknown unit %q.", unit)
	case errors.Is(err, units.ErrOverflow):
		return "That quantity is too large to visualize."
	default:
		return msgInvalidQuantity
	}
}
