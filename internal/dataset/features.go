package dataset

import (
	"lol-predictor/internal/timeline"
)

// NumFeatures is the width of a feature vector, excluding the label.
const NumFeatures = 13

// FeatureNames lists the derived columns in vector order, label last.
func FeatureNames() []string {
	return []string{
		"blueTeamWardRetentionRatio",
		"redTeamWardRetentionRatio",
		"blueTeamNetKills",
		"blueTeamTeamWorkGradeDiff",
		"blueTeamJungleMonstersKilledDiff",
		"blueTeamMinionsKilledDiff",
		"blueTeamAvgLevelDiff",
		"blueTeamCsPerMinuteDiff",
		"blueTeamGoldPerMinuteDiff",
		"blueTeamTowersDestroyedDiff",
		"blueTeamDragonsKilledDiff",
		"blueTeamHeraldsKilledDiff",
		"blueTeamVoidGrubsKilledDiff",
		"blueTeamWin",
	}
}

// Example is one derived feature vector with its label.
type Example struct {
	Features [NumFeatures]float64
	Label    float64
}

// Derive turns a cleaned corpus row into a training example. Everything is
// expressed relative to the blue team, so one vector captures both sides.
// A team that placed zero wards yields a NaN retention ratio, carried through
// and dropped at model load time.
func Derive(r timeline.Row) Example {
	b, rd := r.Blue, r.Red

	// Share of a team's wards still alive at the 15 minute mark. The red
	// ratio is negated so that for both columns higher favors blue.
	blueRetention := (b.WardsPlaced - rd.WardsDestroyed) / b.WardsPlaced
	redRetention := -1 * (rd.WardsPlaced - b.WardsDestroyed) / rd.WardsPlaced

	return Example{
		Features: [NumFeatures]float64{
			blueRetention,
			redRetention,
			float64(b.Kills - rd.Kills),
			float64(b.Assists*b.Kills - rd.Assists*rd.Kills),
			float64(b.JungleMonstersKilled - rd.JungleMonstersKilled),
			float64(b.MinionsKilled - rd.MinionsKilled),
			b.AvgLevel - rd.AvgLevel,
			b.CsPerMinute - rd.CsPerMinute,
			b.GoldPerMinute - rd.GoldPerMinute,
			float64(b.TowersDestroyed - rd.TowersDestroyed),
			float64(b.DragonsKilled - rd.DragonsKilled),
			float64(b.HeraldsKilled - rd.HeraldsKilled),
			float64(b.VoidGrubsKilled - rd.VoidGrubsKilled),
		},
		Label: float64(b.Win),
	}
}

// DeriveAll maps Derive over a cleaned corpus.
func DeriveAll(rows []timeline.Row) []Example {
	examples := make([]Example, len(rows))
	for i, row := range rows {
		examples[i] = Derive(row)
	}
	return examples
}
