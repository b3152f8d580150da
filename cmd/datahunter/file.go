package datahunter

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/datahunter/datahunter/internal/engine"
)

var (
	flagContent  bool
	flagMaxBytes int64
)

func init() {
	cmd := &cobra.Command{
		Use:   "file PATH",
		Short: "Comprehensive scan of one file",
		Long:  "Scans the file name and metadata. With --content the file is read and its text scanned as well, unless it looks binary.",
		Args:  cobra.ExactArgs(1),
		RunE:  runFile,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().BoolVarP(&flagContent, "content", "c", false, "also scan the file content")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 16<<20, "read at most this many bytes of content")
}

func runFile(cmd *cobra.Command, args []string) error {
	path := args[0]
	s, err := loadSettings(absDir(filepath.Dir(path)))
	if err != nil {
		return err
	}
	eng, err := s.engine(engine.Config{})
	if err != nil {
		return err
	}
	var content *string
	if flagContent {
		content = readContent(path, flagMaxBytes)
	}
	res, err := eng.ComprehensiveScan(path, content)
	if err != nil {
		return err
	}
	return emit(cmd, s, res)
}

// readContent returns the text of path or nil when it cannot be read or
// looks binary.
func readContent(path string, limit int64) *string {
	l := log.WithField("path", path)
	f, err := os.Open(path)
	if err != nil {
		l.WithError(err).Warn("cannot read content; scanning name and metadata only")
		return nil
	}
	defer f.Close()
	b, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		l.WithError(err).Warn("cannot read content; scanning name and metadata only")
		return nil
	}
	if engine.LooksBinary(path, b) {
		l.Info("content looks binary; skipping content scan")
		return nil
	}
	text := string(b)
	return &text
}
