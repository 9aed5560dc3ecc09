package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"lol-predictor/internal/collector"
	"lol-predictor/internal/riot"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Gather ladder players and resolve their PUUIDs",
	Long: `Page through the configured ranked ladder until the target player
count is reached, then resolve every summoner id to a PUUID. Writes
summoner_ids.txt and puuids.txt into the data directory.`,
	Args: cobra.NoArgs,
	RunE: runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
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

	log.Infow("Gathering ladder players", "tier", cfg.Tier, "target", cfg.MinPlayers)
	if err := roster.GatherSummonerIDs(ctx, cfg.Tier, cfg.MinPlayers, summonerIDsPath(cfg.DataDir)); err != nil {
		return err
	}

	log.Infow("Resolving PUUIDs")
	return roster.ExtractPUUIDs(ctx, summonerIDsPath(cfg.DataDir), puuidsPath(cfg.DataDir))
}
