package timeline

import "lol-predictor/internal/riot"

// Games shorter than 14.5 minutes never reach the 15-minute snapshot;
// remakes and early surrenders land here.
const minGameMillis = 870000

// scanMinutes is the last frame index the reducer examines. Together with
// frame 0 that covers the opening fifteen minutes.
const scanMinutes = 15

// Reduce collapses a match timeline into one corpus row. Matches that ended
// before the snapshot boundary produce a sentinel row with both win flags
// set to 2, which the cleaning stage later drops.
func Reduce(tl *riot.TimelineResponse) (Row, error) {
	last, err := LastEvent(tl)
	if err != nil {
		return Row{}, err
	}

	if last.Timestamp <= minGameMillis {
		return sentinelRow(), nil
	}

	winner := TeamOfSide(last.WinningTeam)
	duration := float64(last.Timestamp) / 1000

	var counters MatchCounters
	for minute := 0; minute <= scanMinutes; minute++ {
		frame, err := FrameAt(tl, minute)
		if err != nil {
			return Row{}, err
		}
		for _, ev := range frame.Events {
			for _, outcome := range Classify(ev) {
				counters.Apply(outcome)
			}
		}
		if InSnapshotWindow(frame.Timestamp) {
			counters.AddSnapshot(frame.ParticipantFrames)
		}
	}

	return Row{
		Blue:         counters.Blue.Finalize(winner, TeamBlue, counters.FirstBlood),
		Red:          counters.Red.Finalize(winner, TeamRed, counters.FirstBlood),
		GameDuration: duration,
	}, nil
}

// sentinelRow is the marker for a too-short game: zeros everywhere, with
// win and first-blood flags set to the undetermined value.
func sentinelRow() Row {
	team := TeamStats{FirstBlood: 2, Win: 2}
	return Row{Blue: team, Red: team, GameDuration: 0}
}
