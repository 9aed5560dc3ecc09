package timeline

// Team identifies a side of the map, or neither when the source data is
// ambiguous (very short games, missing winner events).
type Team int

const (
	TeamUndetermined Team = iota
	TeamBlue
	TeamRed
)

func (t Team) String() string {
	switch t {
	case TeamBlue:
		return "blue"
	case TeamRed:
		return "red"
	default:
		return "undetermined"
	}
}

// TeamOf maps a participant id to its side. Participants 1-5 are blue,
// 6-10 red. Anything outside that range is undetermined.
func TeamOf(participantID int) Team {
	switch {
	case participantID >= 1 && participantID <= 5:
		return TeamBlue
	case participantID >= 6 && participantID <= 10:
		return TeamRed
	default:
		return TeamUndetermined
	}
}

// TeamOfSide maps Riot's team ids (100 blue, 200 red) to a Team.
func TeamOfSide(teamID int) Team {
	switch teamID {
	case 100:
		return TeamBlue
	case 200:
		return TeamRed
	default:
		return TeamUndetermined
	}
}

// Flag encodes a team as the dataset convention: 1 for blue, 0 for red,
// 2 when undetermined.
func (t Team) Flag() int {
	switch t {
	case TeamBlue:
		return 1
	case TeamRed:
		return 0
	default:
		return 2
	}
}
