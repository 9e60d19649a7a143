package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bitgrid/cli/internal/grid"
	"github.com/bitgrid/cli/internal/units"
	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// UserConfig represents CLI configuration
type UserConfig struct {
	DefaultUnit   string `json:"default_unit"`
	CapDisabled   bool   `json:"cap_disabled"`
	CapCeiling    int64  `json:"cap_ceiling"`
	Increment     int64  `json:"increment"`
	DurationMS    int64  `json:"duration_ms"`
	FrameRate     int    `json:"frame_rate"`
	Glyph         string `json:"glyph"`
	LogLevel      string `json:"log_level"`
	ConfigVersion string `json:"config_version"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	cfg := &UserConfig{
		DefaultUnit:   units.Byte.String(),
		CapDisabled:   false,
		CapCeiling:    grid.DefaultCapCeiling,
		Increment:     grid.DefaultIncrement,
		DurationMS:    grid.DefaultDuration.Milliseconds(),
		FrameRate:     60,
		Glyph:         "■",
		LogLevel:      "info",
		ConfigVersion: "1.0",
	}
	cfg.applyEnv()
	return cfg
}

// Load loads the configuration from disk, or returns default if not found
func Load() (*UserConfig, error) {
	return LoadFrom(GetConfigFile())
}

// LoadFrom loads the configuration at path. Comments and trailing commas are
// allowed. Missing fields keep their defaults.
func LoadFrom(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(std, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	// Environment wins over the file
	cfg.applyEnv()

	return cfg, nil
}

// Save saves the configuration to disk with atomic write
func (c *UserConfig) Save() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	return c.SaveTo(GetConfigFile())
}

// SaveTo writes the configuration to path atomically
func (c *UserConfig) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(path, 0600)
}

// Validate validates the configuration
func (c *UserConfig) Validate() error {
	if _, err := units.Parse(c.DefaultUnit); err != nil {
		return fmt.Errorf("%w: default_unit: %v", ErrInvalid, err)
	}
	if c.CapCeiling <= 0 {
		return fmt.Errorf("%w: cap_ceiling must be positive", ErrInvalid)
	}
	if c.Increment <= 0 {
		return fmt.Errorf("%w: increment must be positive", ErrInvalid)
	}
	if c.DurationMS <= 0 {
		return fmt.Errorf("%w: duration_ms must be positive", ErrInvalid)
	}
	if c.FrameRate < 1 || c.FrameRate > 240 {
		return fmt.Errorf("%w: frame_rate must be between 1 and 240", ErrInvalid)
	}
	if c.Glyph == "" {
		return fmt.Errorf("%w: glyph must not be empty", ErrInvalid)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return nil
}

// Duration returns the batch animation duration
func (c *UserConfig) Duration() time.Duration {
	return time.Duration(c.DurationMS) * time.Millisecond
}

// FrameInterval returns the time between animation frames
func (c *UserConfig) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.FrameRate)
}

// GridOptions returns the renderer options described by the configuration
func (c *UserConfig) GridOptions() grid.Options {
	return grid.Options{
		CapCeiling: c.CapCeiling,
		Increment:  c.Increment,
		Duration:   c.Duration(),
	}
}

// Keys lists the settable configuration keys
func Keys() []string {
	return []string{
		"default_unit",
		"cap_disabled",
		"cap_ceiling",
		"increment",
		"duration_ms",
		"frame_rate",
		"glyph",
		"log_level",
	}
}

// Set assigns value to the named key and validates the result
func (c *UserConfig) Set(key, value string) error {
	next := *c

	var err error
	switch key {
	case "default_unit":
		var u units.Unit
		if u, err = units.Parse(value); err == nil {
			next.DefaultUnit = u.String()
		}
	case "cap_disabled":
		next.CapDisabled, err = strconv.ParseBool(value)
	case "cap_ceiling":
		next.CapCeiling, err = strconv.ParseInt(value, 10, 64)
	case "increment":
		next.Increment, err = strconv.ParseInt(value, 10, 64)
	case "duration_ms":
		next.DurationMS, err = strconv.ParseInt(value, 10, 64)
	case "frame_rate":
		next.FrameRate, err = strconv.Atoi(value)
	case "glyph":
		next.Glyph = value
	case "log_level":
		next.LogLevel = strings.ToLower(value)
	default:
		return fmt.Errorf("%w: unknown key %q (valid keys: %s)", ErrInvalid, key, strings.Join(Keys(), ", "))
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// applyEnv applies BITGRID_NO_CAP and BITGRID_DURATION overrides
func (c *UserConfig) applyEnv() {
	if v := os.Getenv("BITGRID_NO_CAP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.CapDisabled = b
		}
	}
	if v := os.Getenv("BITGRID_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= time.Millisecond {
			c.DurationMS = d.Milliseconds()
		}
	}
}
