package cmd

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/bitgrid/cli/internal/config"
	clierr "github.com/bitgrid/cli/internal/errors"
	"github.com/bitgrid/cli/internal/grid"
	"github.com/bitgrid/cli/internal/logger"
	"github.com/bitgrid/cli/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	showNoCap     bool
	showAll       bool
	showBar       bool
	showDuration  time.Duration
	showCeiling   int64
	showIncrement int64
	showWidth     int
)

var showCmd = &cobra.Command{
	Use:   "show QUANTITY [UNIT]",
	Short: "Draw one square per bit",
	Long: `Draw one square per bit of QUANTITY UNIT, animated over a fixed window.

Units: b (bit), B (byte), Kb (kilobit), KB (kilobyte), Mb (megabit), MB (megabyte).
Long names such as "kilobyte" work too. UNIT defaults to the configured default_unit.

With the cap enabled the first batch stops at cap_ceiling squares; each further
batch adds up to increment squares.`,
	Example: `  bitgrid show 1 B              # 8 squares
  bitgrid show 300000 b         # 200000 squares, then offer 100000 more
  bitgrid show 300000 b --all   # keep going until every bit is shown
  bitgrid show 2 MB --bar       # progress bar instead of squares`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showNoCap, "no-cap", false, "Draw every bit in one batch")
	showCmd.Flags().BoolVar(&showAll, "all", false, "Continue with further batches without asking")
	showCmd.Flags().BoolVar(&showBar, "bar", false, "Show a progress bar instead of squares")
	showCmd.Flags().DurationVar(&showDuration, "duration", 0, "Animation time per batch (default from config)")
	showCmd.Flags().Int64Var(&showCeiling, "ceiling", 0, "Squares in the first batch when capped (default from config)")
	showCmd.Flags().Int64Var(&showIncrement, "increment", 0, "Squares per further batch (default from config)")
	showCmd.Flags().IntVar(&showWidth, "width", 0, "Squares per line (default terminal width)")
	rootCmd.AddCommand(showCmd)
}

// batchDisplay is a grid.Display that remembers whether more can be shown
type batchDisplay interface {
	grid.Display
	ContinueVisible() bool
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg := currentConfig()
	opts, err := gridOptions(cmd, cfg)
	if err != nil {
		return err
	}

	unit := cfg.DefaultUnit
	if len(args) == 2 {
		unit = args[1]
	}

	capDisabled := cfg.CapDisabled
	if cmd.Flags().Changed("no-cap") {
		capDisabled = showNoCap
	}

	out := cmd.OutOrStdout()
	styles := ui.DefaultStyles()

	var display batchDisplay
	var bar *ui.BarDisplay
	if showBar {
		bar = ui.NewBarDisplay(cmd.ErrOrStderr(), cmd.ErrOrStderr(), styles)
		bar.Quiet = quietMode
		display = bar
	} else {
		width := showWidth
		if width <= 0 {
			width = terminalWidth(out)
		}
		stream := ui.NewStreamDisplay(out, cmd.ErrOrStderr(), styles, cfg.Glyph, width)
		stream.Quiet = quietMode
		display = stream
	}

	ctrl := grid.NewController(display, opts, logger.Log)
	if err := ctrl.Generate(args[0], unit, capDisabled); err != nil {
		// The display already explained the problem
		return clierr.NewUsageError(err, "")
	}
	if bar != nil {
		bar.SetTotal(ctrl.Total())
	}

	ctx := cmd.Context()
	for {
		if err := ctrl.Play(ctx, cfg.FrameInterval()); err != nil {
			return clierr.NewInterruptedError(err)
		}
		if !display.ContinueVisible() {
			return nil
		}

		if !showAll {
			if !isTerminal(os.Stdin) {
				return nil
			}
			next := grid.NextBatch(ctrl.Total(), ctrl.Shown(), opts.Increment)
			ok, err := ui.ConfirmMore(os.Stdin, cmd.ErrOrStderr(), next)
			if err != nil && !errors.Is(err, io.EOF) {
				return clierr.NewError(err, "Failed to read input")
			}
			if !ok {
				return nil
			}
		}

		ctrl.ShowMore()
	}
}

// gridOptions applies command flags on top of the configured options
func gridOptions(cmd *cobra.Command, cfg *config.UserConfig) (grid.Options, error) {
	opts := cfg.GridOptions()
	flags := cmd.Flags()

	if flags.Changed("duration") {
		if showDuration <= 0 {
			return opts, clierr.NewUsageError(nil, "--duration must be positive")
		}
		opts.Duration = showDuration
	}
	if flags.Changed("ceiling") {
		if showCeiling <= 0 {
			return opts, clierr.NewUsageError(nil, "--ceiling must be positive")
		}
		opts.CapCeiling = showCeiling
	}
	if flags.Changed("increment") {
		if showIncrement <= 0 {
			return opts, clierr.NewUsageError(nil, "--increment must be positive")
		}
		opts.Increment = showIncrement
	}

	return opts, nil
}

// terminalWidth returns the column count of w, or 80 if w is not a terminal
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}
