package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long:  "Generate the autocompletion script for bitgrid for the specified shell.",
	Example: `  # Bash (Linux)
  bitgrid completion bash > /etc/bash_completion.d/bitgrid

  # Bash (macOS with Homebrew)
  bitgrid completion bash > $(brew --prefix)/etc/bash_completion.d/bitgrid

  # Zsh (macOS with Homebrew)
  bitgrid completion zsh > $(brew --prefix)/share/zsh/site-functions/_bitgrid

  # Fish
  bitgrid completion fish > ~/.config/fish/completions/bitgrid.fish

  # PowerShell
  bitgrid completion powershell >> $PROFILE`,
	DisableFlagsInUseLine: true,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate the autocompletion script for bash",
	Example: `  # Load in current session
  source <(bitgrid completion bash)

  # Linux - load permanently
  sudo bitgrid completion bash > /etc/bash_completion.d/bitgrid

  # macOS (Homebrew) - load permanently
  bitgrid completion bash > $(brew --prefix)/etc/bash_completion.d/bitgrid`,
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletionV2(os.Stdout, true)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate the autocompletion script for zsh",
	Example: `  # Load in current session
  source <(bitgrid completion zsh)

  # Linux - load permanently
  bitgrid completion zsh > "${fpath[1]}/_bitgrid"

  # macOS (Homebrew) - load permanently
  bitgrid completion zsh > $(brew --prefix)/share/zsh/site-functions/_bitgrid`,
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate the autocompletion script for fish",
	Example: `  # Load in current session
  bitgrid completion fish | source

  # Load permanently
  bitgrid completion fish > ~/.config/fish/completions/bitgrid.fish`,
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

var completionPowershellCmd = &cobra.Command{
	Use:   "powershell",
	Short: "Generate the autocompletion script for powershell",
	Example: `  # Load in current session
  bitgrid completion powershell | Out-String | Invoke-Expression

  # Load permanently (add to your PowerShell profile)
  bitgrid completion powershell >> $PROFILE`,
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	completionCmd.AddCommand(completionPowershellCmd)
	rootCmd.AddCommand(completionCmd)
}
