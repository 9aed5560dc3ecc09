package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"lol-predictor/internal/model"
	"lol-predictor/internal/timeline"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintEvaluation renders classifier metrics and the confusion matrix.
func PrintEvaluation(w io.Writer, m model.Metrics) {
	table := newTable(w)
	table.Header("ACCURACY", "PRECISION", "RECALL", "F1", "ROC-AUC")
	table.Append(
		fmt.Sprintf("%.4f", m.Accuracy),
		fmt.Sprintf("%.4f", m.Precision),
		fmt.Sprintf("%.4f", m.Recall),
		fmt.Sprintf("%.4f", m.F1),
		fmt.Sprintf("%.4f", m.ROCAUC),
	)
	table.Render()

	fmt.Fprintln(w)
	conf := newTable(w)
	conf.Header(" ", "PRED LOSS", "PRED WIN")
	conf.Append("ACTUAL LOSS", strconv.Itoa(m.Confusion[0][0]), strconv.Itoa(m.Confusion[0][1]))
	conf.Append("ACTUAL WIN", strconv.Itoa(m.Confusion[1][0]), strconv.Itoa(m.Confusion[1][1]))
	conf.Render()
}

// CorpusStats aggregates a cleaned corpus for reporting.
type CorpusStats struct {
	Matches int

	BlueWins int
	RedWins  int

	// Wins broken down by which side drew first blood.
	BlueWinsWithFB    int
	BlueWinsWithoutFB int
	RedWinsWithFB     int
	RedWinsWithoutFB  int

	AvgGameDuration float64
}

// ComputeCorpusStats tallies win rates and first-blood splits over cleaned
// rows.
func ComputeCorpusStats(rows []timeline.Row) CorpusStats {
	var s CorpusStats
	s.Matches = len(rows)

	var durationSum float64
	for _, r := range rows {
		durationSum += r.GameDuration
		if r.Blue.Win == 1 {
			s.BlueWins++
			if r.Blue.FirstBlood == 1 {
				s.BlueWinsWithFB++
			} else {
				s.BlueWinsWithoutFB++
			}
		} else {
			s.RedWins++
			if r.Red.FirstBlood == 1 {
				s.RedWinsWithFB++
			} else {
				s.RedWinsWithoutFB++
			}
		}
	}
	if s.Matches > 0 {
		s.AvgGameDuration = durationSum / float64(s.Matches)
	}
	return s
}

func pct(part, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(total))
}

// PrintCorpusStats renders the corpus overview tables.
func PrintCorpusStats(w io.Writer, s CorpusStats) {
	fmt.Fprintf(w, "\nMatches: %d  |  Avg duration: %.0fs\n\n", s.Matches, s.AvgGameDuration)

	winrate := newTable(w)
	winrate.Header("SIDE", "WINS", "WINRATE")
	winrate.Append("Blue", strconv.Itoa(s.BlueWins), pct(s.BlueWins, s.Matches))
	winrate.Append("Red", strconv.Itoa(s.RedWins), pct(s.RedWins, s.Matches))
	winrate.Render()

	fmt.Fprintln(w)
	fb := newTable(w)
	fb.Header("SIDE", "WINS W/ FB", "WINS W/O FB")
	fb.Append("Blue", pct(s.BlueWinsWithFB, s.Matches), pct(s.BlueWinsWithoutFB, s.Matches))
	fb.Append("Red", pct(s.RedWinsWithFB, s.Matches), pct(s.RedWinsWithoutFB, s.Matches))
	fb.Render()
}
