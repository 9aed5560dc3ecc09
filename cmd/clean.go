package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"lol-predictor/internal/dataset"
	"lol-predictor/internal/storage"
)

var cleanExport bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean the raw corpus into the snapshot database",
	Long: `Load match_data.csv, drop rows with undetermined winners, duplicate
rows, bugged durations and missing 15-minute snapshots, and store the
survivors in corpus.db. With --export the cleaned rows are also written
back out as preview_data.csv.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanExport, "export", false, "also export cleaned rows as preview_data.csv")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	rows, err := storage.ReadCorpus(corpusPath(cfg.DataDir))
	if err != nil {
		return err
	}
	cleaned := dataset.Clean(rows)
	log.Infow("Cleaned corpus", "raw", len(rows), "kept", len(cleaned))

	snapshot, err := storage.OpenSnapshot(snapshotPath(cfg.DataDir))
	if err != nil {
		return err
	}
	defer snapshot.Close()
	if err := snapshot.Replace(cleaned); err != nil {
		return err
	}

	if cleanExport {
		exportPath := filepath.Join(cfg.DataDir, "preview_data.csv")
		if err := storage.ExportCorpus(exportPath, cleaned); err != nil {
			return err
		}
		log.Infow("Exported cleaned corpus", "path", exportPath)
	}
	return nil
}
