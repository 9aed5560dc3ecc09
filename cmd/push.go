package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"lol-predictor/internal/db"
	"lol-predictor/internal/storage"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Publish the cleaned corpus to Postgres",
	Long: `Load the cleaned rows from corpus.db and bulk-copy them into the
Postgres database configured via DATABASE_URL, replacing previous
contents.`,
	Args: cobra.NoArgs,
	RunE: runPush,
}

func runPush(cmd *cobra.Command, args []string) error {
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

	ctx := context.Background()
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	n, err := database.PublishRows(ctx, rows)
	if err != nil {
		return err
	}
	log.Infow("Published corpus", "rows", n)
	return nil
}
