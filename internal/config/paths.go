package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "bitgrid"

// GetConfigDir returns the configuration directory path
func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetConfigFile returns the configuration file path
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.json")
}

// GetStateDir returns the state directory path
func GetStateDir() string {
	return filepath.Join(xdg.StateHome, appName)
}

// GetLogsDir returns the logs directory path
func GetLogsDir() string {
	return filepath.Join(GetStateDir(), "logs")
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() error {
	return os.MkdirAll(GetConfigDir(), 0700)
}

// EnsureLogsDir creates the logs directory if it doesn't exist
func EnsureLogsDir() error {
	return os.MkdirAll(GetLogsDir(), 0700)
}
