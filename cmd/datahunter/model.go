package datahunter

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datahunter/datahunter/internal/classifier"
	"github.com/datahunter/datahunter/internal/report"
)

var (
	flagModelOut    string
	flagModelCorpus string
	flagModelName   string
)

func init() {
	modelCmd := &cobra.Command{Use: "model", Short: "Train and inspect classifier model artifacts"}
	rootCmd.AddCommand(modelCmd)

	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Train a classifier and save it as a versioned artifact",
		RunE:  runModelTrain,
	}
	trainCmd.Flags().StringVarP(&flagModelOut, "out", "o", "model.json", "artifact output path")
	trainCmd.Flags().StringVar(&flagModelCorpus, "corpus", "", "YAML corpus with sensitive and non_sensitive lists (default: built-in)")
	trainCmd.Flags().StringVar(&flagModelName, "name", "custom", "model name recorded in the artifact")
	modelCmd.AddCommand(trainCmd)

	infoCmd := &cobra.Command{
		Use:   "info FILE",
		Short: "Validate and describe a model artifact",
		Args:  cobra.ExactArgs(1),
		RunE:  runModelInfo,
	}
	modelCmd.AddCommand(infoCmd)
}

func runModelTrain(cmd *cobra.Command, _ []string) error {
	corpus, err := classifier.BootstrapCorpus()
	if flagModelCorpus != "" {
		corpus, err = classifier.LoadCorpus(flagModelCorpus)
	}
	if err != nil {
		return err
	}
	m, err := corpus.Train(flagModelName)
	if err != nil {
		return err
	}
	if err := classifier.SaveArtifact(flagModelOut, m); err != nil {
		return err
	}
	log.WithField("features", m.VocabularySize()).Debug("model trained")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d sensitive, %d non-sensitive examples, %d features)\n",
		flagModelOut, len(corpus.Sensitive), len(corpus.NonSensitive), m.VocabularySize())
	return nil
}

func runModelInfo(cmd *cobra.Command, args []string) error {
	info, err := classifier.InspectArtifact(args[0])
	if err != nil {
		return err
	}
	if flagJSON {
		return report.WriteJSON(cmd.OutOrStdout(), info)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Format:   %s\n", info.FormatVersion)
	fmt.Fprintf(w, "Name:     %s\n", info.Name)
	fmt.Fprintf(w, "Features: %d\n", info.Features)
	fmt.Fprintf(w, "Checksum: %s\n", info.Checksum)
	return nil
}
