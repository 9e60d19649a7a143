package grid

import (
	"context"
	"time"
)

// Play drives the running session with a ticker until it completes. If ctx
// is done first the session is cancelled and ctx.Err() is returned.
func (c *Controller) Play(ctx context.Context, interval time.Duration) error {
	token := c.Token()
	if c.session == nil {
		return nil
	}
	if interval <= 0 {
		interval = time.Second / 60
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if !c.Frame(token, time.Now()) {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			c.Cancel()
			return ctx.Err()
		case now := <-ticker.C:
			if !c.Frame(token, now) {
				return nil
			}
		}
	}
}
