package grid

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayRunsToCompletion(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController(d, Options{Duration: 30 * time.Millisecond}, zerolog.Nop())

	require.NoError(t, c.Generate("4", "KB", false))
	require.NoError(t, c.Play(context.Background(), time.Millisecond))

	assert.False(t, c.Running())
	assert.Equal(t, int64(32768), d.squares)
	assert.Equal(t, message{"Showing all 32768 bits.", SeveritySuccess}, d.last())
}

func TestPlayCancelledByContext(t *testing.T) {
	d := &recordingDisplay{}
	c := NewController(d, Options{Duration: time.Hour}, zerolog.Nop())

	require.NoError(t, c.Generate("1", "B", false))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Play(ctx, time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, c.Running())
	assert.Equal(t, int64(0), c.Shown())
}

func TestPlayIdle(t *testing.T) {
	c := NewController(&recordingDisplay{}, DefaultOptions(), zerolog.Nop())
	assert.NoError(t, c.Play(context.Background(), time.Millisecond))
}
