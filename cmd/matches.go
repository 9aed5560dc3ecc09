package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"lol-predictor/internal/collector"
	"lol-predictor/internal/riot"
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Fetch ranked match ids for the gathered players",
	Long: `Fetch recent ranked solo-queue match ids for every PUUID in
puuids.txt and write the deduplicated union to match_ids.txt.`,
	Args: cobra.NoArgs,
	RunE: runMatches,
}

func runMatches(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer log.Sync()

	client, err := riot.NewClient(cfg.APIKey, cfg.Platform, cfg.Region, log)
	if err != nil {
		return err
	}

	ctx := collector.SignalContext(context.Background(), log)
	roster := collector.NewRoster(client, log)

	return roster.FetchMatchIDs(ctx,
		puuidsPath(cfg.DataDir), matchIDsPath(cfg.DataDir), cfg.MatchesPerPlayer)
}
