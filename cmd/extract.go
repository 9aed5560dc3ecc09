package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"lol-predictor/internal/collector"
	"lol-predictor/internal/riot"
	"lol-predictor/internal/storage"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Reduce match timelines into the corpus",
	Long: `Fetch the timeline for every id in match_ids.txt, reduce each to a
15-minute statistics row and append it to match_data.csv. Progress is
tracked in processed_ids.txt, so an interrupted run resumes where it
stopped. Matches that repeatedly fail land in dead_letter.jsonl.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	client, err := riot.NewClient(cfg.APIKey, cfg.Platform, cfg.Region, log)
	if err != nil {
		return err
	}

	matchIDs, err := storage.ReadLines(matchIDsPath(cfg.DataDir))
	if err != nil {
		return err
	}

	corpus, err := storage.OpenCorpus(corpusPath(cfg.DataDir))
	if err != nil {
		return err
	}
	defer corpus.Close()

	progress, err := storage.OpenProgressLog(progressPath(cfg.DataDir))
	if err != nil {
		return err
	}
	defer progress.Close()

	deadLetter, err := storage.OpenDeadLetter(deadLetterPath(cfg.DataDir))
	if err != nil {
		return err
	}
	defer deadLetter.Close()

	ctx := collector.SignalContext(context.Background(), log)
	extractor := collector.NewExtractor(client, corpus, progress, deadLetter, log,
		collector.ExtractorConfig{
			WorkerCount: cfg.WorkerCount,
			MaxAttempts: cfg.MaxAttempts,
			RetryDelay:  cfg.RetryDelay,
		})

	log.Infow("Starting extraction",
		"matches", len(matchIDs), "already_processed", progress.Len(), "workers", cfg.WorkerCount)
	return extractor.Run(ctx, matchIDs)
}
