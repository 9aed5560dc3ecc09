package timeline

import (
	"strconv"

	"lol-predictor/internal/riot"
)

// The 15-minute frame lands slightly after the 900000ms boundary; only a
// frame stamped inside this window is the snapshot frame.
const (
	snapshotWindowLow  = 900000
	snapshotWindowHigh = 901000
)

// TeamCounters accumulates one team's event totals and its 15-minute
// snapshot aggregates.
type TeamCounters struct {
	WardsPlaced    int
	WardsKilled    int
	Towers         int
	Dragons        int
	Heralds        int
	VoidGrubs      int
	Kills          int
	Deaths         int
	Assists        int
	TotalGold      int
	LevelSum       int
	Minions        int
	JungleMonsters int
}

// MatchCounters accumulates both teams over the scanned frames.
type MatchCounters struct {
	Blue TeamCounters
	Red  TeamCounters

	// FirstBlood latches on the first outcome carrying it and ignores later
	// claims.
	FirstBlood Team

	snapshotDone bool
}

func (m *MatchCounters) team(t Team) *TeamCounters {
	if t == TeamBlue {
		return &m.Blue
	}
	return &m.Red
}

// Apply folds one classified outcome into the counters.
func (m *MatchCounters) Apply(o Outcome) {
	if o.Team == TeamUndetermined {
		return
	}
	tc := m.team(o.Team)
	switch o.Kind {
	case OutcomeWardPlaced:
		tc.WardsPlaced++
	case OutcomeWardKilled:
		tc.WardsKilled++
	case OutcomeTowerDestroyed:
		tc.Towers++
	case OutcomeDragonKilled:
		tc.Dragons++
	case OutcomeHeraldKilled:
		tc.Heralds++
	case OutcomeVoidGrubKilled:
		tc.VoidGrubs++
	case OutcomeKill:
		tc.Kills++
	case OutcomeDeath:
		tc.Deaths++
	case OutcomeAssist:
		tc.Assists++
	case OutcomeFirstBlood:
		if m.FirstBlood == TeamUndetermined {
			m.FirstBlood = o.Team
		}
	}
}

// InSnapshotWindow reports whether the frame timestamp falls in the
// 15-minute snapshot window.
func InSnapshotWindow(ts int64) bool {
	return ts > snapshotWindowLow && ts < snapshotWindowHigh
}

// AddSnapshot folds the participant frames of the 15-minute frame into the
// per-team aggregates. It fires at most once per match; later calls are
// no-ops. Participant ids outside 1-10 are skipped.
func (m *MatchCounters) AddSnapshot(frames map[string]riot.ParticipantFrame) {
	if m.snapshotDone {
		return
	}
	m.snapshotDone = true

	for key, pf := range frames {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		team := TeamOf(id)
		if team == TeamUndetermined {
			continue
		}
		tc := m.team(team)
		tc.TotalGold += pf.TotalGold
		tc.LevelSum += pf.Level
		tc.Minions += pf.MinionsKilled
		tc.JungleMonsters += pf.JungleMinionsKilled
	}
}

// SnapshotTaken reports whether the 15-minute snapshot was recorded.
func (m *MatchCounters) SnapshotTaken() bool {
	return m.snapshotDone
}
