package datahunter

import (
	"io"

	"github.com/spf13/cobra"
)

var completionGenerators = map[string]func(io.Writer) error{
	"bash":       rootCmd.GenBashCompletion,
	"zsh":        rootCmd.GenZshCompletion,
	"fish":       func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": rootCmd.GenPowerShellCompletionWithDesc,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:       "completion SHELL",
		Short:     "Print a completion script for bash, zsh, fish or powershell",
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionGenerators[args[0]](cmd.OutOrStdout())
		},
		Example: `  source <(datahunter completion bash)
  datahunter completion zsh > "${fpath[1]}/_datahunter"
  datahunter completion fish > ~/.config/fish/completions/datahunter.fish`,
	})
}
