package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bitgrid/cli/internal/config"
	"github.com/rs/zerolog"
)

var (
	// Log is the global logger instance
	Log = zerolog.Nop()
)

// Init initializes the logger. Debug mode forces the debug level and mirrors
// records to stderr; otherwise level names the minimum level.
func Init(debug bool, level string) error {
	// Ensure logs directory exists
	if err := config.EnsureLogsDir(); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	logFile, err := getLogFile(config.GetLogsDir(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	// Clean up old log files (keep last 7 days)
	go cleanOldLogs(config.GetLogsDir(), 7)

	writers := []io.Writer{logFile}
	if debug {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	Log = New(io.MultiWriter(writers...), ParseLevel(level, debug))
	Log.Debug().Str("file", logFile.Name()).Msg("Logger initialized")
	return nil
}

// New returns an application logger writing to w at level
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("app", "bitgrid").
		Logger()
}

// ParseLevel maps a config log level to a zerolog level
func ParseLevel(level string, debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// getLogFile opens the log file for the date of now
func getLogFile(logsDir string, now time.Time) (*os.File, error) {
	logFileName := fmt.Sprintf("bitgrid-%s.log", now.Format("2006-01-02"))
	logFilePath := filepath.Join(logsDir, logFileName)

	return os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
}

// cleanOldLogs removes log files older than the specified number of days
func cleanOldLogs(logsDir string, keepDays int) {
	files, err := os.ReadDir(logsDir)
	if err != nil {
		return
	}

	cutoffTime := time.Now().AddDate(0, 0, -keepDays)

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".log" {
			continue
		}

		info, err := file.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoffTime) {
			os.Remove(filepath.Join(logsDir, file.Name()))
		}
	}
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if len(args) == 0 {
		Log.Info().Msg(format)
	} else {
		Log.Info().Msgf(format, args...)
	}
}

// Error logs an error message
func Error(msg string, err error) {
	Log.Error().Err(err).Msg(msg)
}
