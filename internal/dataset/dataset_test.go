package dataset

import (
	"math"
	"path/filepath"
	"reflect"
	"testing"

	"lol-predictor/internal/timeline"
)

func cleanRow(kills int, gpm float64) timeline.Row {
	return timeline.Row{
		Blue: timeline.TeamStats{
			Kills: kills, Win: 1, GoldPerMinute: gpm, WardsPlaced: 3, FirstBlood: 1,
		},
		Red: timeline.TeamStats{
			Deaths: kills, Win: 0, GoldPerMinute: gpm - 10, WardsPlaced: 2.6, FirstBlood: 0,
		},
		GameDuration: 1800,
	}
}

func TestClean(t *testing.T) {
	undetermined := cleanRow(3, 300)
	undetermined.Blue.Win = 2
	undetermined.Red.Win = 2

	tooLong := cleanRow(4, 300)
	tooLong.GameDuration = 6000

	noSnapshot := cleanRow(5, 300)
	noSnapshot.Blue.GoldPerMinute = 0

	keep := cleanRow(6, 300)

	rows := []timeline.Row{undetermined, tooLong, noSnapshot, keep, keep}
	cleaned := Clean(rows)
	if len(cleaned) != 1 {
		t.Fatalf("Clean() kept %d rows, want 1", len(cleaned))
	}
	if cleaned[0] != keep {
		t.Errorf("Clean() kept the wrong row: %+v", cleaned[0])
	}
}

func TestDerive(t *testing.T) {
	row := timeline.Row{
		Blue: timeline.TeamStats{
			WardsPlaced: 4, WardsDestroyed: 1,
			Kills: 7, Assists: 10, JungleMonstersKilled: 40, MinionsKilled: 300,
			AvgLevel: 9.6, CsPerMinute: 28, GoldPerMinute: 320,
			TowersDestroyed: 2, DragonsKilled: 1, HeraldsKilled: 1, VoidGrubsKilled: 3,
			Win: 1,
		},
		Red: timeline.TeamStats{
			WardsPlaced: 5, WardsDestroyed: 2,
			Kills: 4, Assists: 6, JungleMonstersKilled: 35, MinionsKilled: 280,
			AvgLevel: 9.0, CsPerMinute: 26, GoldPerMinute: 290,
			TowersDestroyed: 1, DragonsKilled: 1, HeraldsKilled: 0, VoidGrubsKilled: 0,
			Win: 0,
		},
		GameDuration: 1900,
	}

	ex := Derive(row)
	want := [NumFeatures]float64{
		(4.0 - 2.0) / 4.0,       // blue retention
		-1 * (5.0 - 1.0) / 5.0,  // red retention, negated
		3,                       // net kills
		7*10 - 4*6,              // teamwork grade diff
		5, 20, 9.6 - 9.0, 2, 30, // jungle, minions, level, cs, gold diffs
		1, 0, 1, 3, // towers, dragons, heralds, grubs diffs
	}
	for i := range want {
		if math.Abs(ex.Features[i]-want[i]) > 1e-9 {
			t.Errorf("feature %s = %v, want %v", FeatureNames()[i], ex.Features[i], want[i])
		}
	}
	if ex.Label != 1 {
		t.Errorf("Label = %v, want 1", ex.Label)
	}
}

func TestDeriveZeroWardsYieldsNaN(t *testing.T) {
	row := cleanRow(3, 300)
	row.Blue.WardsPlaced = 0

	ex := Derive(row)
	if !math.IsNaN(ex.Features[0]) {
		t.Errorf("blue retention = %v, want NaN for zero wards placed", ex.Features[0])
	}
	if math.IsNaN(ex.Features[1]) {
		t.Errorf("red retention = %v, red side has wards placed", ex.Features[1])
	}
}

func makeExamples(n int) []Example {
	examples := make([]Example, n)
	for i := range examples {
		examples[i].Features[0] = float64(i)
		examples[i].Label = float64(i % 2)
	}
	return examples
}

func TestSplitFractionsAndDisjointness(t *testing.T) {
	examples := makeExamples(1000)
	split := SplitExamples(examples)

	if len(split.Test) != 100 {
		t.Errorf("test size = %d, want 100", len(split.Test))
	}
	if len(split.Val) != 135 {
		t.Errorf("val size = %d, want 135", len(split.Val))
	}
	if len(split.Train) != 765 {
		t.Errorf("train size = %d, want 765", len(split.Train))
	}

	seen := make(map[float64]int)
	for _, part := range [][]Example{split.Train, split.Val, split.Test} {
		for _, ex := range part {
			seen[ex.Features[0]]++
		}
	}
	if len(seen) != 1000 {
		t.Fatalf("partitions cover %d examples, want 1000", len(seen))
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("example %v appears %d times across partitions", id, count)
		}
	}
}

func TestSplitIsDeterministic(t *testing.T) {
	examples := makeExamples(500)
	a := SplitExamples(examples)
	b := SplitExamples(examples)
	if !reflect.DeepEqual(a, b) {
		t.Error("two splits of the same input differ")
	}
}

func TestWriteReadExamplesDropsNaN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prepared_data.csv")

	examples := makeExamples(3)
	examples[1].Features[0] = math.NaN()

	if err := WriteExamples(path, examples); err != nil {
		t.Fatalf("WriteExamples() error = %v", err)
	}
	loaded, err := ReadExamples(path)
	if err != nil {
		t.Fatalf("ReadExamples() error = %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d examples, want 2 (NaN row dropped)", len(loaded))
	}
	if loaded[0] != examples[0] || loaded[1] != examples[2] {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
