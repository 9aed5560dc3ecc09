package timeline

import (
	"fmt"
	"math"
	"strconv"
)

// TeamStats is one team's finalized slice of a match row, in CSV column
// order.
type TeamStats struct {
	JungleMonstersKilled int
	MinionsKilled        int
	TowersDestroyed      int
	VoidGrubsKilled      int
	WardsDestroyed       float64 // per-player average
	DragonsKilled        int
	HeraldsKilled        int
	GoldPerMinute        float64
	WardsPlaced          float64 // per-player average
	CsPerMinute          float64
	FirstBlood           int // 1 yes, 0 no, 2 undetermined
	TotalGold            int
	AvgLevel             float64
	Assists              int
	Deaths               int
	Kills                int
	Win                  int // 1 win, 0 loss, 2 undetermined
}

// Row is one match reduced to the corpus schema: 17 columns per team plus
// the game duration in seconds.
type Row struct {
	Blue         TeamStats
	Red          TeamStats
	GameDuration float64
}

// NumColumns is the width of a corpus record.
const NumColumns = 35

// Header lists the corpus column names in record order.
func Header() []string {
	blue := teamHeader("blueTeam")
	red := teamHeader("redTeam")
	h := make([]string, 0, NumColumns)
	h = append(h, blue...)
	h = append(h, red...)
	return append(h, "gameDuration")
}

func teamHeader(prefix string) []string {
	return []string{
		prefix + "TotalJungleMonstersKilled",
		prefix + "TotalMinionsKilled",
		prefix + "TowersDestroyed",
		prefix + "VoidGrubsKilled",
		prefix + "WardsDestroyed",
		prefix + "DragonsKilled",
		prefix + "HeraldsKilled",
		prefix + "GoldPerMinute",
		prefix + "WardsPlaced",
		prefix + "CsPerMinute",
		prefix + "FirstBlood",
		prefix + "TotalGold",
		prefix + "AvgLevel",
		prefix + "Assists",
		prefix + "Deaths",
		prefix + "Kills",
		prefix + "Win",
	}
}

// round2 rounds to two decimal places, matching the precision the corpus
// stores.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Finalize converts accumulated counters into a team's row slice. The
// snapshot aggregates become per-player and per-minute averages over the
// five players and the first fifteen minutes.
func (tc *TeamCounters) Finalize(win Team, side Team, firstBlood Team) TeamStats {
	winFlag := 2
	if win != TeamUndetermined {
		if win == side {
			winFlag = 1
		} else {
			winFlag = 0
		}
	}
	fbFlag := 2
	if firstBlood != TeamUndetermined {
		if firstBlood == side {
			fbFlag = 1
		} else {
			fbFlag = 0
		}
	}
	return TeamStats{
		JungleMonstersKilled: tc.JungleMonsters,
		MinionsKilled:        tc.Minions,
		TowersDestroyed:      tc.Towers,
		VoidGrubsKilled:      tc.VoidGrubs,
		WardsDestroyed:       round2(float64(tc.WardsKilled) / 5),
		DragonsKilled:        tc.Dragons,
		HeraldsKilled:        tc.Heralds,
		GoldPerMinute:        round2(float64(tc.TotalGold) / 15),
		WardsPlaced:          round2(float64(tc.WardsPlaced) / 5),
		CsPerMinute:          round2(float64(tc.Minions+tc.JungleMonsters) / 15),
		FirstBlood:           fbFlag,
		TotalGold:            tc.TotalGold,
		AvgLevel:             round2(float64(tc.LevelSum) / 5),
		Assists:              tc.Assists,
		Deaths:               tc.Deaths,
		Kills:                tc.Kills,
		Win:                  winFlag,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (ts TeamStats) record() []string {
	return []string{
		strconv.Itoa(ts.JungleMonstersKilled),
		strconv.Itoa(ts.MinionsKilled),
		strconv.Itoa(ts.TowersDestroyed),
		strconv.Itoa(ts.VoidGrubsKilled),
		formatFloat(ts.WardsDestroyed),
		strconv.Itoa(ts.DragonsKilled),
		strconv.Itoa(ts.HeraldsKilled),
		formatFloat(ts.GoldPerMinute),
		formatFloat(ts.WardsPlaced),
		formatFloat(ts.CsPerMinute),
		strconv.Itoa(ts.FirstBlood),
		strconv.Itoa(ts.TotalGold),
		formatFloat(ts.AvgLevel),
		strconv.Itoa(ts.Assists),
		strconv.Itoa(ts.Deaths),
		strconv.Itoa(ts.Kills),
		strconv.Itoa(ts.Win),
	}
}

// Record flattens the row to its 35 CSV fields.
func (r Row) Record() []string {
	rec := make([]string, 0, NumColumns)
	rec = append(rec, r.Blue.record()...)
	rec = append(rec, r.Red.record()...)
	return append(rec, formatFloat(r.GameDuration))
}

// ParseRow reads a 35-field CSV record back into a Row.
func ParseRow(rec []string) (Row, error) {
	if len(rec) != NumColumns {
		return Row{}, fmt.Errorf("record has %d fields, want %d", len(rec), NumColumns)
	}
	blue, err := parseTeam(rec[0:17])
	if err != nil {
		return Row{}, err
	}
	red, err := parseTeam(rec[17:34])
	if err != nil {
		return Row{}, err
	}
	duration, err := strconv.ParseFloat(rec[34], 64)
	if err != nil {
		return Row{}, fmt.Errorf("parsing gameDuration: %w", err)
	}
	return Row{Blue: blue, Red: red, GameDuration: duration}, nil
}

func parseTeam(fields []string) (TeamStats, error) {
	ints := make([]int, len(fields))
	floats := make([]float64, len(fields))
	floatCols := map[int]bool{4: true, 7: true, 8: true, 9: true, 12: true}
	for i, f := range fields {
		var err error
		if floatCols[i] {
			floats[i], err = strconv.ParseFloat(f, 64)
		} else {
			ints[i], err = strconv.Atoi(f)
		}
		if err != nil {
			return TeamStats{}, fmt.Errorf("parsing field %d (%q): %w", i, f, err)
		}
	}
	return TeamStats{
		JungleMonstersKilled: ints[0],
		MinionsKilled:        ints[1],
		TowersDestroyed:      ints[2],
		VoidGrubsKilled:      ints[3],
		WardsDestroyed:       floats[4],
		DragonsKilled:        ints[5],
		HeraldsKilled:        ints[6],
		GoldPerMinute:        floats[7],
		WardsPlaced:          floats[8],
		CsPerMinute:          floats[9],
		FirstBlood:           ints[10],
		TotalGold:            ints[11],
		AvgLevel:             floats[12],
		Assists:              ints[13],
		Deaths:               ints[14],
		Kills:                ints[15],
		Win:                  ints[16],
	}, nil
}
