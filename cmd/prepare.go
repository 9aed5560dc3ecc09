package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lol-predictor/internal/dataset"
	"lol-predictor/internal/storage"
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Derive the training datasets from the cleaned corpus",
	Long: `Load the cleaned rows from corpus.db, derive the feature vectors and
write prepared_data.csv plus the headerless train/val/test splits.`,
	Args: cobra.NoArgs,
	RunE: runPrepare,
}

func runPrepare(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	snapshot, err := storage.OpenSnapshot(snapshotPath(cfg.DataDir))
	if err != nil {
		return err
	}
	defer snapshot.Close()

	cleaned, err := snapshot.Rows()
	if err != nil {
		return err
	}
	if len(cleaned) == 0 {
		return fmt.Errorf("snapshot is empty, run clean first")
	}

	examples := dataset.DeriveAll(cleaned)
	if err := dataset.WriteExamples(preparedPath(cfg.DataDir, ""), examples); err != nil {
		return err
	}

	split := dataset.SplitExamples(examples)
	log.Infow("Split dataset",
		"examples", len(examples),
		"train", len(split.Train), "val", len(split.Val), "test", len(split.Test))

	if err := dataset.WriteExamples(preparedPath(cfg.DataDir, "train"), split.Train); err != nil {
		return err
	}
	if err := dataset.WriteExamples(preparedPath(cfg.DataDir, "val"), split.Val); err != nil {
		return err
	}
	return dataset.WriteExamples(preparedPath(cfg.DataDir, "test"), split.Test)
}
