package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xolan/pawlog/internal/cli"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for pawlog.

Bash:
  source <(pawlog completion bash)
  pawlog completion bash > ~/.local/share/bash-completion/completions/pawlog

Zsh:
  pawlog completion zsh > ~/.zsh/completion/_pawlog

Fish:
  pawlog completion fish > ~/.config/fish/completions/pawlog.fish

PowerShell:
  pawlog completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	deps := cli.GetDeps()
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
	}
}
