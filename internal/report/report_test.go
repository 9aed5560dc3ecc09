package report

import (
	"strings"
	"testing"

	"lol-predictor/internal/model"
	"lol-predictor/internal/timeline"
)

func statsRow(blueWin, blueFB int) timeline.Row {
	redWin, redFB := 1-blueWin, 1-blueFB
	return timeline.Row{
		Blue:         timeline.TeamStats{Win: blueWin, FirstBlood: blueFB},
		Red:          timeline.TeamStats{Win: redWin, FirstBlood: redFB},
		GameDuration: 1800,
	}
}

func TestComputeCorpusStats(t *testing.T) {
	rows := []timeline.Row{
		statsRow(1, 1),
		statsRow(1, 0),
		statsRow(0, 1),
		statsRow(0, 0),
	}

	s := ComputeCorpusStats(rows)
	if s.Matches != 4 || s.BlueWins != 2 || s.RedWins != 2 {
		t.Errorf("stats = %+v, want 4 matches at 2/2 wins", s)
	}
	if s.BlueWinsWithFB != 1 || s.BlueWinsWithoutFB != 1 {
		t.Errorf("blue FB split = %d/%d, want 1/1", s.BlueWinsWithFB, s.BlueWinsWithoutFB)
	}
	if s.RedWinsWithFB != 1 || s.RedWinsWithoutFB != 1 {
		t.Errorf("red FB split = %d/%d, want 1/1", s.RedWinsWithFB, s.RedWinsWithoutFB)
	}
	if s.AvgGameDuration != 1800 {
		t.Errorf("AvgGameDuration = %v, want 1800", s.AvgGameDuration)
	}
}

func TestPrintEvaluation(t *testing.T) {
	m := model.Metrics{
		Accuracy:  0.7512,
		Precision: 0.7623,
		Recall:    0.7401,
		F1:        0.7510,
		ROCAUC:    0.8345,
		Confusion: [2][2]int{{380, 120}, {130, 370}},
	}

	var buf strings.Builder
	PrintEvaluation(&buf, m)
	out := buf.String()

	for _, want := range []string{"0.7512", "0.8345", "380", "ACTUAL WIN"} {
		if !strings.Contains(out, want) {
			t.Errorf("evaluation output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintCorpusStats(t *testing.T) {
	var buf strings.Builder
	PrintCorpusStats(&buf, ComputeCorpusStats([]timeline.Row{statsRow(1, 1), statsRow(0, 0)}))
	out := buf.String()

	for _, want := range []string{"Matches: 2", "Blue", "Red", "50.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}
