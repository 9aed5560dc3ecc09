package dataset

import (
	"lol-predictor/internal/timeline"
)

// Games past 100 minutes are bugged returns, not marathon games.
const maxGameDurationSeconds = 6000

// Clean drops rows the collector could not fully resolve: undetermined
// winners, duplicate rows, absurd durations, and rows whose 15-minute
// snapshot never fired (gold per minute of zero).
func Clean(rows []timeline.Row) []timeline.Row {
	seen := make(map[timeline.Row]struct{}, len(rows))
	out := make([]timeline.Row, 0, len(rows))
	for _, row := range rows {
		if row.Blue.Win == 2 {
			continue
		}
		if row.GameDuration >= maxGameDurationSeconds {
			continue
		}
		if row.Blue.GoldPerMinute == 0 || row.Red.GoldPerMinute == 0 {
			continue
		}
		if _, dup := seen[row]; dup {
			continue
		}
		seen[row] = struct{}{}
		out = append(out, row)
	}
	return out
}
