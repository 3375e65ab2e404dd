package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nmartin84/askpath/loader"
	"github.com/nmartin84/askpath/logging"
	"github.com/nmartin84/askpath/walk"
)

var runCmd = &cobra.Command{
	Use:   "run <questionnaire.yaml>",
	Short: "Run a YAML-defined questionnaire",
	Long:  "Load a question graph from a YAML file and walk it interactively, printing the collected answers.",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuestionnaire,
}

func init() {
	runCmd.Flags().String("answers", "", "YAML file of pre-supplied answers keyed by question id")
	runCmd.Flags().String("output", "", "Write the walk report as JSON to this path")

	_ = viper.BindPFlag("output", runCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(runCmd)
}

func newLogger() *slog.Logger {
	switch {
	case viper.GetBool("debug"):
		return logging.New(slog.LevelDebug)
	case viper.GetBool("verbose"):
		return logging.New(slog.LevelInfo)
	default:
		return logging.New(slog.LevelWarn)
	}
}

func runQuestionnaire(cmd *cobra.Command, args []string) error {
	log := newLogger()
	answersFile, _ := cmd.Flags().GetString("answers")
	outputPath := viper.GetString("output")

	g, err := loader.LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("loading questionnaire: %w", err)
	}
	log.Info("questionnaire loaded", "file", args[0], "questions", g.VertexCount(), "edges", g.EdgeCount())

	var overrides walk.Overrides
	if answersFile != "" {
		overrides, err = loader.LoadOverridesFile(answersFile)
		if err != nil {
			return fmt.Errorf("loading answers: %w", err)
		}
		log.Info("pre-supplied answers loaded", "file", answersFile, "count", len(overrides))
	}

	asker := walk.NewCLIAsker(os.Stdin, os.Stdout)
	traversal := walk.NewTraversal(g, walk.WithOverrides(overrides))

	started := time.Now()
	results, err := traversal.Run(asker)
	if err != nil {
		return fmt.Errorf("walking questionnaire: %w", err)
	}
	report := walk.NewReport(results, started, time.Now())

	fmt.Fprintf(os.Stdout, "\nCollected answers (%d):\n", results.Len())
	for _, pair := range results.Pairs() {
		fmt.Fprintf(os.Stdout, "  %s: %s\n", pair.ID, pair.Answer)
	}

	if outputPath != "" {
		if err := report.WriteFile(outputPath); err != nil {
			return err
		}
		log.Info("report written", "path", outputPath, "run_id", report.RunID)
	}

	return nil
}
