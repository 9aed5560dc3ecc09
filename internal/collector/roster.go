package collector

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lol-predictor/internal/riot"
	"lol-predictor/internal/storage"
)

// RosterClient is the slice of the Riot API the roster builder needs.
type RosterClient interface {
	GetLeagueEntries(ctx context.Context, tier string, page int) ([]riot.LeagueEntry, error)
	GetSummoner(ctx context.Context, summonerID string) (*riot.SummonerResponse, error)
	GetMatchIDs(ctx context.Context, puuid string, count int) ([]string, error)
}

// Roster builds the player and match id lists that feed the extractor.
type Roster struct {
	client RosterClient
	log    *zap.SugaredLogger
}

// NewRoster creates a roster builder.
func NewRoster(client RosterClient, log *zap.SugaredLogger) *Roster {
	return &Roster{client: client, log: log}
}

// GatherSummonerIDs pages through a ranked ladder until at least minPlayers
// summoner ids are collected, then writes them to outputFile. The page that
// crosses the threshold is still consumed in full.
func (r *Roster) GatherSummonerIDs(ctx context.Context, tier string, minPlayers int, outputFile string) error {
	var ids []string
	page := 1
	for len(ids) < minPlayers {
		entries, err := r.client.GetLeagueEntries(ctx, tier, page)
		if err != nil {
			return fmt.Errorf("fetching %s page %d: %w", tier, page, err)
		}
		if len(entries) == 0 {
			r.log.Warnw("Ladder exhausted before reaching target",
				"tier", tier, "gathered", len(ids), "target", minPlayers)
			break
		}
		for _, entry := range entries {
			ids = append(ids, entry.SummonerID)
		}
		r.log.Infow("Gathered ladder page", "tier", tier, "page", page, "total", len(ids))
		page++
	}
	return storage.WriteLines(outputFile, ids)
}

// ExtractPUUIDs resolves each summoner id in inputFile to a PUUID. Lookups
// that fail are logged and skipped so one deleted account does not stall the
// run.
func (r *Roster) ExtractPUUIDs(ctx context.Context, inputFile, outputFile string) error {
	summonerIDs, err := storage.ReadLines(inputFile)
	if err != nil {
		return err
	}

	puuids := make([]string, 0, len(summonerIDs))
	for _, id := range summonerIDs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		summoner, err := r.client.GetSummoner(ctx, id)
		if err != nil {
			r.log.Warnw("Failed to resolve summoner", "summoner_id", id, "error", err)
			continue
		}
		puuids = append(puuids, summoner.PUUID)
	}

	r.log.Infow("Resolved PUUIDs", "requested", len(summonerIDs), "resolved", len(puuids))
	return storage.WriteLines(outputFile, puuids)
}

// FetchMatchIDs collects recent ranked match ids for every PUUID in
// inputFile and writes the deduplicated union to outputFile. Players share
// games, so the raw list shrinks considerably.
func (r *Roster) FetchMatchIDs(ctx context.Context, inputFile, outputFile string, perPlayer int) error {
	puuids, err := storage.ReadLines(inputFile)
	if err != nil {
		return err
	}

	var matchIDs []string
	for _, puuid := range puuids {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		ids, err := r.client.GetMatchIDs(ctx, puuid, perPlayer)
		if err != nil {
			r.log.Warnw("Failed to fetch match history", "puuid", puuid, "error", err)
			continue
		}
		matchIDs = append(matchIDs, ids...)
	}

	unique := storage.Dedupe(matchIDs)
	r.log.Infow("Collected match ids",
		"players", len(puuids), "raw", len(matchIDs), "unique", len(unique))
	return storage.WriteLines(outputFile, unique)
}
