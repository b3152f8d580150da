package datahunter

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datahunter/datahunter/internal/engine"
)

var flagTextFile string

func init() {
	cmd := &cobra.Command{
		Use:   "text [TEXT...]",
		Short: "Scan text from arguments, a file or stdin",
		Long:  "Runs every pattern over the text and scores it with the classifier. With no arguments and no --file, text is read from stdin.",
		RunE:  runText,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().StringVarP(&flagTextFile, "file", "f", "", "read text from this file (- for stdin)")
}

func runText(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(".")
	if err != nil {
		return err
	}
	text, err := readTextInput(cmd, args)
	if err != nil {
		return err
	}
	eng, err := s.engine(engine.Config{})
	if err != nil {
		return err
	}
	return emit(cmd, s, eng.ScanText(text))
}

func readTextInput(cmd *cobra.Command, args []string) (string, error) {
	switch {
	case flagTextFile == "-" || (flagTextFile == "" && len(args) == 0):
		b, err := io.ReadAll(cmd.InOrStdin())
		return string(b), err
	case flagTextFile != "":
		b, err := os.ReadFile(flagTextFile)
		return string(b), err
	default:
		return strings.Join(args, " "), nil
	}
}
