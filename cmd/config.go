package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bitgrid/cli/internal/config"
	clierr "github.com/bitgrid/cli/internal/errors"
	"github.com/bitgrid/cli/internal/logger"
	"github.com/bitgrid/cli/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change saved defaults",
	Example: `  bitgrid config show
  bitgrid config set default_unit KB
  bitgrid config set duration_ms 5000
  bitgrid config reset`,
	Annotations: map[string]string{allowBrokenConfig: "true"},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(currentConfig(), "", "  ")
		if err != nil {
			return clierr.NewError(err, "Failed to encode config")
		}
		out := cmd.OutOrStdout()
		if !quietMode {
			fmt.Fprintln(out, lipgloss.NewStyle().Faint(true).Render("# "+ui.ShortenPath(config.GetConfigFile())))
		}
		fmt.Fprintln(out, string(data))
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file and log directory paths",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config: %s\n", config.GetConfigFile())
		fmt.Fprintf(out, "Logs:   %s\n", config.GetLogsDir())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Long:  "Change one setting. Keys: " + strings.Join(config.Keys(), ", "),
	Args:  cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.Keys(), cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := currentConfig()
		if err := cfg.Set(args[0], args[1]); err != nil {
			return clierr.NewUsageError(err, err.Error())
		}
		if err := cfg.Save(); err != nil {
			return clierr.NewConfigError(err, "Failed to save config")
		}

		logger.Info("Config %s set to %s", args[0], args[1])
		if !quietMode {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s = %s\n", args[0], args[1])
		}
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig()
		if err := cfg.Save(); err != nil {
			return clierr.NewConfigError(err, "Failed to save config")
		}
		userConfig = cfg

		logger.Info("Config reset")
		if !quietMode {
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Config reset to defaults")
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}
