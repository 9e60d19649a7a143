package grid

import "time"

const (
	// DefaultCapCeiling limits the first batch when the cap is enabled
	DefaultCapCeiling int64 = 200000
	// DefaultIncrement is the size of each "show more" batch
	DefaultIncrement int64 = 100000
	// DefaultDuration is how long each batch takes to animate
	DefaultDuration = 15 * time.Second
)

// Options configures batch admission and animation timing
type Options struct {
	CapCeiling int64
	Increment  int64
	Duration   time.Duration
}

// DefaultOptions returns the stock ceiling, increment and duration
func DefaultOptions() Options {
	return Options{
		CapCeiling: DefaultCapCeiling,
		Increment:  DefaultIncrement,
		Duration:   DefaultDuration,
	}
}

func (o Options) withDefaults() Options {
	if o.CapCeiling <= 0 {
		o.CapCeiling = DefaultCapCeiling
	}
	if o.Increment <= 0 {
		o.Increment = DefaultIncrement
	}
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	return o
}

// FirstBatch returns the size of the first batch for total units
func FirstBatch(total int64, capDisabled bool, ceiling int64) int64 {
	if total <= 0 {
		return 0
	}
	if capDisabled || total < ceiling {
		return total
	}
	return ceiling
}

// NextBatch returns the size of a "show more" batch, or 0 if nothing remains
func NextBatch(total, shown, increment int64) int64 {
	remaining := total - shown
	if remaining <= 0 {
		return 0
	}
	return min(increment, remaining)
}
