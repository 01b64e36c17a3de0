package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for allowance.

Usage:
  allowance completion bash       Generate bash completion script
  allowance completion zsh        Generate zsh completion script
  allowance completion fish       Generate fish completion script
  allowance completion powershell Generate powershell completion script

Installation Instructions:

Bash:
  # Load completion temporarily (current session only):
  source <(allowance completion bash)

  # Install completion permanently (Linux):
  allowance completion bash > ~/.local/share/bash-completion/completions/allowance

Zsh:
  mkdir -p ~/.zsh/completion
  allowance completion zsh > ~/.zsh/completion/_allowance

Fish:
  allowance completion fish > ~/.config/fish/completions/allowance.fish

PowerShell:
  allowance completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.ExactValidArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
		return
	}
}
