package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for aigkit.

To load completions:

Bash:
  $ source <(aigkit completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ aigkit completion bash > /etc/bash_completion.d/aigkit
  # macOS:
  $ aigkit completion bash > $(brew --prefix)/etc/bash_completion.d/aigkit

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ aigkit completion zsh > "${fpath[1]}/_aigkit"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ aigkit completion fish | source

  # To load completions for each session, execute once:
  $ aigkit completion fish > ~/.config/fish/completions/aigkit.fish

PowerShell:
  PS> aigkit completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> aigkit completion powershell > aigkit.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		// No config is needed to print a completion script.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}
