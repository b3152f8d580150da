package datahunter

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagJSON       bool
	flagSARIF      bool
	flagNoColor    bool
	flagFailOn     string
	flagVerbose    bool
	flagConfig     string
	flagClassifier string
	flagModel      string
	flagMask       bool
	flagAuditLog   string

	version = "0.1.0"

	log = logrus.New()
)

// errThreshold signals that the verdict reached --fail-on.
var errThreshold = errors.New("risk threshold reached")

// rootCmd is the base Cobra command for the datahunter CLI.
var rootCmd = &cobra.Command{
	Use:           "datahunter",
	Short:         "Find sensitive data before you wipe it",
	Long:          "datahunter classifies text, files and directory trees by how likely they are to hold personal, financial or credential data, and recommends how carefully to dispose of them.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.WarnLevel)
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the datahunter CLI. It should be called by the main package.
// Exit status is 1 when a verdict reaches --fail-on and 2 on errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errThreshold) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0 (file and dir only)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagFailOn, "fail-on", "", "exit 1 when the verdict reaches none|low|medium|high|critical (default high)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (overrides the local .datahunter.yml)")
	rootCmd.PersistentFlags().StringVar(&flagClassifier, "classifier", "", "classifier: bootstrap | artifact")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "model artifact path for --classifier artifact")
	rootCmd.PersistentFlags().BoolVar(&flagMask, "mask", false, "mask matched values in output")
	rootCmd.PersistentFlags().StringVar(&flagAuditLog, "audit-log", "", "append a JSON line per scan to this file")
}
