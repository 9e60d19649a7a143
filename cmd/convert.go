package cmd

import (
	"errors"
	"fmt"
	"strings"

	clierr "github.com/bitgrid/cli/internal/errors"
	"github.com/bitgrid/cli/internal/ui"
	"github.com/bitgrid/cli/internal/units"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert QUANTITY UNIT",
	Short: "Print the number of bits in a quantity",
	Example: `  bitgrid convert 5 KB        # 40960
  bitgrid convert 1 megabyte  # 8388608`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

var unitsCmd = &cobra.Command{
	Use:     "units",
	Short:   "List the supported units",
	Example: "  bitgrid units",
	Args:    cobra.NoArgs,
	Run:     runUnits,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(unitsCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	n, err := units.ParseQuantity(args[0])
	if err != nil {
		return clierr.NewUsageError(err, "Please enter a valid positive number.")
	}

	bits, err := units.ConvertString(n, args[1])
	switch {
	case errors.Is(err, units.ErrUnknownUnit):
		return clierr.NewUsageError(err, fmt.Sprintf("Unknown unit %q (run 'bitgrid units' for the list)", args[1]))
	case err != nil:
		return clierr.NewUsageError(err, "That quantity is too large to convert.")
	}

	out := cmd.OutOrStdout()
	if quietMode {
		fmt.Fprintln(out, bits)
		return nil
	}
	fmt.Fprintf(out, "%s %s = %s bits (%s)\n",
		args[0], args[1],
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprint(bits)),
		ui.FormatBits(bits))
	return nil
}

func runUnits(cmd *cobra.Command, args []string) {
	var sb strings.Builder
	for _, u := range units.All() {
		fmt.Fprintf(&sb, "  %-3s %-9s %d bits\n", u, u.Name(), u.Multiplier())
	}
	fmt.Fprint(cmd.OutOrStdout(), FormatHelpSection("Units:", sb.String()))
}
