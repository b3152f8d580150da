package datahunter

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datahunter/datahunter/internal/ignore"
)

var flagIgnoreRoot string

func init() {
	cmd := &cobra.Command{
		Use:   "ignore PATTERN...",
		Short: "Add patterns to the .datahunterignore at a scan root",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				if err := ignore.Append(flagIgnoreRoot, p); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s in %s\n", ignore.FileName, flagIgnoreRoot)
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().StringVar(&flagIgnoreRoot, "root", ".", "scan root holding the ignore file")
}
