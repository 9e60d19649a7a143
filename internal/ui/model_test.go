package ui

import (
	"testing"
	"time"

	"github.com/bitgrid/cli/internal/grid"
	"github.com/bitgrid/cli/internal/units"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(unit units.Unit, capDisabled bool) *Model {
	return NewModel(ModelOptions{
		Grid:          grid.Options{Duration: time.Second},
		Unit:          unit,
		CapDisabled:   capDisabled,
		FrameInterval: 10 * time.Millisecond,
		Log:           zerolog.Nop(),
	})
}

func press(m *Model, key tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: key})
	return cmd
}

// drive delivers frames for the running session until it completes
func drive(t *testing.T, m *Model, start time.Time) {
	t.Helper()
	token := m.ctrl.Token()
	require.NotEqual(t, uuid.Nil, token)

	for i := 0; ; i++ {
		require.Less(t, i, 1000)
		_, cmd := m.Update(frameMsg{token: token, at: start.Add(time.Duration(i) * 50 * time.Millisecond)})
		if cmd == nil {
			return
		}
	}
}

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestModelGenerateSingleByte(t *testing.T) {
	m := newTestModel(units.Byte, false)
	m.input.SetValue("1")

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.ctrl.Running())
	assert.Equal(t, "Generating visualization...", m.screen.message)

	drive(t, m, t0)

	assert.Equal(t, int64(8), m.screen.squares)
	assert.Equal(t, "Showing all 8 bits.", m.screen.message)
	assert.Equal(t, grid.SeveritySuccess, m.screen.severity)
	assert.False(t, m.screen.continueVisible)
	assert.Contains(t, m.View(), "Showing all 8 bits.")
}

func TestModelShowMore(t *testing.T) {
	m := newTestModel(units.Bit, false)
	m.input.SetValue("300000")

	require.NotNil(t, press(m, tea.KeyEnter))
	drive(t, m, t0)
	assert.Equal(t, "Showing 200000 of 300000 bits.", m.screen.message)
	assert.True(t, m.screen.continueVisible)
	assert.Contains(t, m.View(), "ctrl+n show more")

	require.NotNil(t, press(m, tea.KeyCtrlN))
	assert.Equal(t, "Adding 100000 more bits...", m.screen.message)
	assert.Nil(t, press(m, tea.KeyCtrlN), "show more is hidden while running")

	drive(t, m, t0.Add(time.Minute))
	assert.Equal(t, int64(300000), m.screen.squares)
	assert.Equal(t, "Showing all 300000 bits.", m.screen.message)
	assert.NotContains(t, m.View(), "ctrl+n show more")
}

func TestModelInvalidQuantity(t *testing.T) {
	m := newTestModel(units.Byte, false)
	m.input.SetValue("-5")

	assert.Nil(t, press(m, tea.KeyEnter))
	assert.False(t, m.ctrl.Running())
	assert.Equal(t, "Please enter a valid positive number.", m.screen.message)
	assert.Equal(t, grid.SeverityError, m.screen.severity)
}

func TestModelCapToggle(t *testing.T) {
	m := newTestModel(units.Bit, false)
	assert.Contains(t, m.View(), "on (200000)")

	press(m, tea.KeyCtrlD)
	assert.True(t, m.capDisabled)
	assert.NotContains(t, m.View(), "on (200000)")
	assert.Contains(t, m.View(), "off")

	m.input.SetValue("300000")
	press(m, tea.KeyEnter)
	assert.Equal(t, int64(300000), m.ctrl.Session().Target)

	drive(t, m, t0)
	assert.Equal(t, "Showing all 300000 bits.", m.screen.message)
	assert.False(t, m.screen.continueVisible)
}

func TestModelUnitCycling(t *testing.T) {
	m := newTestModel(units.Megabyte, false)
	assert.Equal(t, units.Megabyte, m.Unit())

	press(m, tea.KeyTab)
	assert.Equal(t, units.Bit, m.Unit())

	press(m, tea.KeyShiftTab)
	press(m, tea.KeyShiftTab)
	assert.Equal(t, units.Megabit, m.Unit())
}

func TestModelRegenerateIgnoresStaleFrames(t *testing.T) {
	m := newTestModel(units.Kilobyte, false)
	m.input.SetValue("1")
	press(m, tea.KeyEnter)
	old := m.ctrl.Token()

	m.Update(frameMsg{token: old, at: t0})
	m.Update(frameMsg{token: old, at: t0.Add(500 * time.Millisecond)})
	assert.Positive(t, m.screen.squares)

	press(m, tea.KeyEnter)
	assert.Equal(t, int64(0), m.screen.squares)

	_, cmd := m.Update(frameMsg{token: old, at: t0.Add(2 * time.Second)})
	assert.Nil(t, cmd)
	assert.Equal(t, int64(0), m.screen.squares)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(units.Byte, false)
	m.input.SetValue("1")
	press(m, tea.KeyEnter)

	cmd := press(m, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.False(t, m.ctrl.Running())
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel(units.Byte, false)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 12})

	assert.Equal(t, 30, m.width)
	assert.Equal(t, 26, m.bar.Width)
}
