package datahunter

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/datahunter/datahunter/internal/engine"
	"github.com/datahunter/datahunter/internal/report"
)

var (
	flagRecursive       bool
	flagWorkers         int
	flagInclude         string
	flagExclude         string
	flagDefaultExcludes bool
	flagTable           bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "dir PATH",
		Short: "Batch filename scan of a directory tree",
		Long:  "Scans every file name under PATH and buckets files by sensitivity. Unreadable directories are skipped and counted; Ctrl-C prints the partial summary.",
		Args:  cobra.ExactArgs(1),
		RunE:  runDir,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", true, "descend into subdirectories")
	cmd.Flags().IntVar(&flagWorkers, "workers", 0, "concurrent filename scans (0 = GOMAXPROCS)")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", false, "skip .git, node_modules and similar directories")
	cmd.Flags().BoolVar(&flagTable, "table", false, "print sensitive files as a table")
}

func runDir(cmd *cobra.Command, args []string) error {
	root := args[0]
	s, err := loadSettings(absDir(root))
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	recursive := pickBoolDefault(flags.Changed("recursive"), flagRecursive, s.local.Recursive, s.global.Recursive, true)
	cfg := engine.Config{
		Workers:         pickInt(flagWorkers, s.local.Workers, s.global.Workers),
		IncludeGlobs:    pickString(flagInclude, s.local.Include, s.global.Include),
		ExcludeGlobs:    pickString(flagExclude, s.local.Exclude, s.global.Exclude),
		DefaultExcludes: pickBool(flagDefaultExcludes, s.local.DefaultExcludes, s.global.DefaultExcludes),
	}
	eng, err := s.engine(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	sum, scanErr := eng.BatchScanDirectory(ctx, root, recursive)
	if scanErr != nil && !errors.Is(scanErr, context.Canceled) {
		return scanErr
	}
	if flagTable && !flagJSON && !flagSARIF {
		if err := report.WriteTable(cmd.OutOrStdout(), sum, report.PrintOptions{NoColor: s.noColor()}); err != nil {
			return err
		}
		verdict := report.Verdict(sum)
		if err := s.audit(sum, verdict); err != nil {
			log.WithError(err).Warn("audit log not written")
		}
		if report.ShouldFail(verdict, s.failOn()) {
			return errThreshold
		}
	} else if err := emit(cmd, s, sum); err != nil {
		return err
	}
	if scanErr != nil {
		return errors.New("scan interrupted; summary is partial")
	}
	return nil
}
