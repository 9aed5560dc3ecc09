package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"lol-predictor/internal/timeline"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS match_rows (
	id BIGSERIAL PRIMARY KEY,

	blue_jungle_monsters_killed INT NOT NULL,
	blue_minions_killed INT NOT NULL,
	blue_towers_destroyed INT NOT NULL,
	blue_void_grubs_killed INT NOT NULL,
	blue_wards_destroyed DOUBLE PRECISION NOT NULL,
	blue_dragons_killed INT NOT NULL,
	blue_heralds_killed INT NOT NULL,
	blue_gold_per_minute DOUBLE PRECISION NOT NULL,
	blue_wards_placed DOUBLE PRECISION NOT NULL,
	blue_cs_per_minute DOUBLE PRECISION NOT NULL,
	blue_first_blood INT NOT NULL,
	blue_total_gold INT NOT NULL,
	blue_avg_level DOUBLE PRECISION NOT NULL,
	blue_assists INT NOT NULL,
	blue_deaths INT NOT NULL,
	blue_kills INT NOT NULL,
	blue_win INT NOT NULL,

	red_jungle_monsters_killed INT NOT NULL,
	red_minions_killed INT NOT NULL,
	red_towers_destroyed INT NOT NULL,
	red_void_grubs_killed INT NOT NULL,
	red_wards_destroyed DOUBLE PRECISION NOT NULL,
	red_dragons_killed INT NOT NULL,
	red_heralds_killed INT NOT NULL,
	red_gold_per_minute DOUBLE PRECISION NOT NULL,
	red_wards_placed DOUBLE PRECISION NOT NULL,
	red_cs_per_minute DOUBLE PRECISION NOT NULL,
	red_first_blood INT NOT NULL,
	red_total_gold INT NOT NULL,
	red_avg_level DOUBLE PRECISION NOT NULL,
	red_assists INT NOT NULL,
	red_deaths INT NOT NULL,
	red_kills INT NOT NULL,
	red_win INT NOT NULL,

	game_duration DOUBLE PRECISION NOT NULL
)`

var matchRowColumns = []string{
	"blue_jungle_monsters_killed", "blue_minions_killed", "blue_towers_destroyed",
	"blue_void_grubs_killed", "blue_wards_destroyed", "blue_dragons_killed",
	"blue_heralds_killed", "blue_gold_per_minute", "blue_wards_placed",
	"blue_cs_per_minute", "blue_first_blood", "blue_total_gold", "blue_avg_level",
	"blue_assists", "blue_deaths", "blue_kills", "blue_win",
	"red_jungle_monsters_killed", "red_minions_killed", "red_towers_destroyed",
	"red_void_grubs_killed", "red_wards_destroyed", "red_dragons_killed",
	"red_heralds_killed", "red_gold_per_minute", "red_wards_placed",
	"red_cs_per_minute", "red_first_blood", "red_total_gold", "red_avg_level",
	"red_assists", "red_deaths", "red_kills", "red_win",
	"game_duration",
}

// EnsureSchema creates the match_rows table if it doesn't exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func teamValues(ts timeline.TeamStats) []interface{} {
	return []interface{}{
		ts.JungleMonstersKilled, ts.MinionsKilled, ts.TowersDestroyed,
		ts.VoidGrubsKilled, ts.WardsDestroyed, ts.DragonsKilled,
		ts.HeraldsKilled, ts.GoldPerMinute, ts.WardsPlaced,
		ts.CsPerMinute, ts.FirstBlood, ts.TotalGold, ts.AvgLevel,
		ts.Assists, ts.Deaths, ts.Kills, ts.Win,
	}
}

// PublishRows bulk-loads corpus rows via COPY, replacing previous contents.
func (db *DB) PublishRows(ctx context.Context, rows []timeline.Row) (int64, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE match_rows"); err != nil {
		return 0, fmt.Errorf("failed to truncate match_rows: %w", err)
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"match_rows"},
		matchRowColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]interface{}, error) {
			r := rows[i]
			values := make([]interface{}, 0, timeline.NumColumns)
			values = append(values, teamValues(r.Blue)...)
			values = append(values, teamValues(r.Red)...)
			return append(values, r.GameDuration), nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return n, nil
}

// CountRows returns the number of published rows
func (db *DB) CountRows(ctx context.Context) (int64, error) {
	var n int64
	err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM match_rows").Scan(&n)
	return n, err
}
