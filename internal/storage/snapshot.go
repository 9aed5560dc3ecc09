package storage

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"lol-predictor/internal/timeline"
)

//go:embed schema.sql
var schemaSQL string

// Batched inserts keep transaction sizes bounded during a full reload.
const snapshotBatchSize = 500

// SnapshotDB mirrors the corpus into a local SQLite file so the rows can be
// queried without re-parsing the CSV.
type SnapshotDB struct {
	conn *sql.DB
}

// OpenSnapshot opens (or creates) the snapshot database and applies the
// schema.
func OpenSnapshot(path string) (*SnapshotDB, error) {
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply snapshot schema: %w", err)
	}
	return &SnapshotDB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *SnapshotDB) Close() error {
	return db.conn.Close()
}

func rowArgs(r timeline.Row) []interface{} {
	teamArgs := func(ts timeline.TeamStats) []interface{} {
		return []interface{}{
			ts.JungleMonstersKilled, ts.MinionsKilled, ts.TowersDestroyed,
			ts.VoidGrubsKilled, ts.WardsDestroyed, ts.DragonsKilled,
			ts.HeraldsKilled, ts.GoldPerMinute, ts.WardsPlaced,
			ts.CsPerMinute, ts.FirstBlood, ts.TotalGold, ts.AvgLevel,
			ts.Assists, ts.Deaths, ts.Kills, ts.Win,
		}
	}
	args := make([]interface{}, 0, timeline.NumColumns)
	args = append(args, teamArgs(r.Blue)...)
	args = append(args, teamArgs(r.Red)...)
	return append(args, r.GameDuration)
}

var insertRowSQL = fmt.Sprintf(
	"INSERT INTO match_rows VALUES (NULL%s)",
	strings.Repeat(", ?", timeline.NumColumns),
)

// Replace drops the current contents and loads the given rows in batched
// transactions.
func (db *SnapshotDB) Replace(rows []timeline.Row) error {
	if _, err := db.conn.Exec("DELETE FROM match_rows"); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	for start := 0; start < len(rows); start += snapshotBatchSize {
		end := start + snapshotBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		if err := db.insertBatch(rows[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (db *SnapshotDB) insertBatch(rows []timeline.Row) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot tx: %w", err)
	}
	stmt, err := tx.Prepare(insertRowSQL)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare snapshot insert: %w", err)
	}
	for _, r := range rows {
		if _, err := stmt.Exec(rowArgs(r)...); err != nil {
			stmt.Close()
			tx.Rollback()
			return fmt.Errorf("insert snapshot row: %w", err)
		}
	}
	stmt.Close()
	return tx.Commit()
}

// Count returns the number of stored rows.
func (db *SnapshotDB) Count() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM match_rows").Scan(&n)
	return n, err
}

// Rows loads every stored row in insertion order.
func (db *SnapshotDB) Rows() ([]timeline.Row, error) {
	rows, err := db.conn.Query("SELECT * FROM match_rows ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query snapshot rows: %w", err)
	}
	defer rows.Close()

	var out []timeline.Row
	for rows.Next() {
		var id int64
		var r timeline.Row
		dest := []interface{}{&id}
		dest = append(dest, teamDest(&r.Blue)...)
		dest = append(dest, teamDest(&r.Red)...)
		dest = append(dest, &r.GameDuration)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func teamDest(ts *timeline.TeamStats) []interface{} {
	return []interface{}{
		&ts.JungleMonstersKilled, &ts.MinionsKilled, &ts.TowersDestroyed,
		&ts.VoidGrubsKilled, &ts.WardsDestroyed, &ts.DragonsKilled,
		&ts.HeraldsKilled, &ts.GoldPerMinute, &ts.WardsPlaced,
		&ts.CsPerMinute, &ts.FirstBlood, &ts.TotalGold, &ts.AvgLevel,
		&ts.Assists, &ts.Deaths, &ts.Kills, &ts.Win,
	}
}
