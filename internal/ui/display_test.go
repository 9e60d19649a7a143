package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bitgrid/cli/internal/grid"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainStyles renders without any escape sequences
func plainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title: plain, Label: plain, Value: plain, Square: plain,
		Help: plain, Faint: plain, Info: plain, Success: plain, Error: plain,
	}
}

func TestStreamDisplayWraps(t *testing.T) {
	var out, msg bytes.Buffer
	d := NewStreamDisplay(&out, &msg, plainStyles(), "#", 4)

	d.Append(3)
	d.Append(6)
	assert.Equal(t, "####\n####\n#", out.String())
	assert.Equal(t, int64(9), d.Count())

	d.ShowMessage("Showing all 9 bits.", grid.SeveritySuccess)
	assert.Equal(t, "####\n####\n#\n", out.String())
	assert.Equal(t, "✓ Showing all 9 bits.\n", msg.String())

	d.Clear()
	assert.Equal(t, int64(0), d.Count())
	d.Append(0)
	assert.Equal(t, "####\n####\n#\n", out.String())
}

func TestStreamDisplayContinue(t *testing.T) {
	d := NewStreamDisplay(&bytes.Buffer{}, &bytes.Buffer{}, plainStyles(), "#", 0)
	assert.False(t, d.ContinueVisible())
	d.SetContinueVisible(true)
	assert.True(t, d.ContinueVisible())
	assert.Equal(t, 80, d.width)
}

func TestBarDisplay(t *testing.T) {
	var out, msg bytes.Buffer
	d := NewBarDisplay(&out, &msg, plainStyles())
	d.SetTotal(1000)

	d.Append(500)
	assert.Contains(t, out.String(), "50.0%")
	d.Append(500)
	d.ShowMessage("Showing all 1000 bits.", grid.SeveritySuccess)
	d.ShowMessage("again", grid.SeverityInfo)

	assert.Equal(t, 1, strings.Count(out.String(), "\n"), "bar finished once")
	assert.Contains(t, out.String(), "100.0% (1.0 kbit / 1.0 kbit)")
	assert.Equal(t, "✓ Showing all 1000 bits.\nagain\n", msg.String())
}

func TestFormatBits(t *testing.T) {
	assert.Equal(t, "999 bit", FormatBits(999))
	assert.Equal(t, "1.5 kbit", FormatBits(1500))
	assert.Equal(t, "8.4 Mbit", FormatBits(8388608))
	assert.Equal(t, "2.0 Gbit", FormatBits(2000000000))
}

func TestRenderGrid(t *testing.T) {
	s := plainStyles()

	assert.Equal(t, "", RenderGrid(0, "#", 4, 3, s))
	assert.Equal(t, "###", RenderGrid(3, "#", 4, 3, s))
	assert.Equal(t, "####\n##", RenderGrid(6, "#", 4, 3, s))

	got := RenderGrid(22, "#", 4, 3, s)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "… 4 rows above (16 squares)", lines[0])
	assert.Equal(t, "####", lines[1])
	assert.Equal(t, "##", lines[2])
}

func TestConfirmMore(t *testing.T) {
	var out bytes.Buffer

	ok, err := ConfirmMore(strings.NewReader("y\n"), &out, 100000)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Show 100000 more bits? (y/N): ", out.String())

	ok, err = ConfirmMore(strings.NewReader("YES"), &out, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ConfirmMore(strings.NewReader("\n"), &out, 5)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ConfirmMore(strings.NewReader(""), &out, 5)
	assert.Error(t, err)
}

func TestShortenPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, "~/.c/b/config.json", ShortenPath("/home/tester/.config/bitgrid/config.json"))
	assert.Equal(t, "/e/b/config.json", ShortenPath("/etc/bitgrid/config.json"))
	assert.Equal(t, "/tmp", ShortenPath("/tmp"))
	assert.Equal(t, "/v/.l/x.log", ShortenPath("/var/.local/x.log"))
}

func TestStreamDisplayQuiet(t *testing.T) {
	var out, msg bytes.Buffer
	d := NewStreamDisplay(&out, &msg, plainStyles(), "#", 4)
	d.Quiet = true

	d.ShowMessage("Generating visualization...", grid.SeverityInfo)
	d.ShowMessage("Please enter a valid positive number.", grid.SeverityError)

	assert.Equal(t, "✗ Please enter a valid positive number.\n", msg.String())
}
