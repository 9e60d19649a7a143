/*
Copyright © 2025 Sun Asterisk Inc.

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/bitgrid/cli/internal/config"
	clierr "github.com/bitgrid/cli/internal/errors"
	"github.com/bitgrid/cli/internal/logger"
	"github.com/spf13/cobra"
)

// allowBrokenConfig lets a command run with defaults when the config file is invalid
const allowBrokenConfig = "allow-broken-config"

var (
	// Global flags
	debugMode bool
	quietMode bool
	// Global context for graceful shutdown
	globalCtx context.Context
	// userConfig is loaded before any command runs
	userConfig *config.UserConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bitgrid",
	Short: "See how many bits are in your data",
	Long: `bitgrid turns a quantity of data into a grid with one square per bit,
animated into view over a fixed time window.`,
	Example: `  bitgrid show 1 B                      # Draw the 8 bits of one byte
  bitgrid show 300000 b --all           # Draw every batch without asking
  bitgrid tui                           # Open the interactive page`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		userConfig = cfg

		// Initialize logger before any command runs
		return logger.Init(debugMode, cfg.LogLevel)
	},
	SilenceErrors: true,
	SilenceUsage:  true,
	// Enable command suggestions for typos
	SuggestionsMinimumDistance: 2,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress non-error output")

	// Initialize custom help formatting
	InitHelp()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(GetContext())
	if err == nil {
		return
	}

	logger.Error("Command failed", err)
	if msg := clierr.FormatError(err, debugMode); msg != "" {
		fmt.Fprintln(os.Stderr, "Error: "+msg)
	}
	os.Exit(int(clierr.ExitCodeOf(err)))
}

// loadConfig reads the user config. Commands annotated with
// allowBrokenConfig fall back to defaults instead of failing.
func loadConfig(cmd *cobra.Command) (*config.UserConfig, error) {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err == nil {
		return cfg, nil
	}

	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[allowBrokenConfig] == "true" {
			fmt.Fprintf(os.Stderr, "⚠ Ignoring invalid config (%v)\n", err)
			return config.DefaultConfig(), nil
		}
	}
	return nil, clierr.NewConfigError(err, fmt.Sprintf("Invalid config file %s (run 'bitgrid config reset' to start over)", config.GetConfigFile()))
}

// SetContext sets the global context for graceful shutdown support
func SetContext(ctx context.Context) {
	globalCtx = ctx
}

// GetContext returns the global context, or background context if not set
func GetContext() context.Context {
	if globalCtx != nil {
		return globalCtx
	}
	return context.Background()
}

// currentConfig returns the loaded config, or defaults outside a command run
func currentConfig() *config.UserConfig {
	if userConfig != nil {
		return userConfig
	}
	return config.DefaultConfig()
}
