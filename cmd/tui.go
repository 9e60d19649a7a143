package cmd

import (
	"errors"

	clierr "github.com/bitgrid/cli/internal/errors"
	"github.com/bitgrid/cli/internal/logger"
	"github.com/bitgrid/cli/internal/ui"
	"github.com/bitgrid/cli/internal/units"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	tuiNoCap bool
	tuiUnit  string
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	Aliases: []string{"interactive"},
	Short:   "Open the interactive bit grid page",
	Long: `Open a full-screen page with a quantity field, a unit selector and a cap toggle.

Keys:
  enter       generate the grid
  tab         next unit (shift+tab: previous)
  ctrl+d      toggle the cap
  ctrl+n      show more (after a capped batch)
  esc         quit`,
	Example: `  bitgrid tui                 # Open with the configured defaults
  bitgrid tui --unit MB       # Start with megabytes selected`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiNoCap, "no-cap", false, "Start with the cap disabled")
	tuiCmd.Flags().StringVar(&tuiUnit, "unit", "", "Initially selected unit (default from config)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()

	unitTag := cfg.DefaultUnit
	if tuiUnit != "" {
		unitTag = tuiUnit
	}
	unit, err := units.Parse(unitTag)
	if err != nil {
		return clierr.NewUsageError(err, "Unknown unit "+unitTag)
	}

	capDisabled := cfg.CapDisabled
	if cmd.Flags().Changed("no-cap") {
		capDisabled = tuiNoCap
	}

	model := ui.NewModel(ui.ModelOptions{
		Grid:          cfg.GridOptions(),
		Unit:          unit,
		CapDisabled:   capDisabled,
		Glyph:         cfg.Glyph,
		FrameInterval: cfg.FrameInterval(),
		Log:           logger.Log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return clierr.NewInterruptedError(err)
		}
		return clierr.NewError(err, "Interactive page failed")
	}
	return nil
}
