package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("error", true))
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug", false))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARN", false))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error", false))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("", false))
}

func TestNewTagsApp(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.InfoLevel)

	log.Debug().Msg("hidden")
	log.Info().Int64("total", 8).Msg("visible")

	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "bitgrid", rec["app"])
	assert.Equal(t, "visible", rec["message"])
	assert.Equal(t, float64(8), rec["total"])
}

func TestGetLogFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	f, err := getLogFile(dir, now)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, filepath.Join(dir, "bitgrid-2025-03-04.log"), f.Name())
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()

	old := filepath.Join(dir, "bitgrid-2020-01-01.log")
	fresh := filepath.Join(dir, "bitgrid-today.log")
	other := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, fresh, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0600))
	}

	past := time.Now().AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(old, past, past))
	require.NoError(t, os.Chtimes(other, past, past))

	cleanOldLogs(dir, 7)

	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
	assert.FileExists(t, other)
}
