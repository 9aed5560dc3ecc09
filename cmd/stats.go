package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lol-predictor/internal/report"
	"lol-predictor/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show win rate statistics over the cleaned corpus",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
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

	rows, err := snapshot.Rows()
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("snapshot is empty, run clean first")
	}

	report.PrintCorpusStats(os.Stdout, report.ComputeCorpusStats(rows))
	return nil
}
