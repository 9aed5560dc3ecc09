package timeline

import "lol-predictor/internal/riot"

// OutcomeKind names a single counter increment derived from an event.
type OutcomeKind int

const (
	OutcomeWardPlaced OutcomeKind = iota
	OutcomeWardKilled
	OutcomeTowerDestroyed
	OutcomeDragonKilled
	OutcomeHeraldKilled
	OutcomeVoidGrubKilled
	OutcomeKill
	OutcomeDeath
	OutcomeAssist
	OutcomeFirstBlood
)

// Outcome is one counter increment attributed to a team. A single event may
// produce several: a champion kill credits a kill, a death, and an assist per
// assisting participant, and may also carry first blood.
type Outcome struct {
	Kind OutcomeKind
	Team Team
}

// Classify turns a raw timeline event into counter increments. Events of
// irrelevant types, and events whose actor ids fall outside 1-10, produce
// nothing.
func Classify(ev riot.TimelineEvent) []Outcome {
	var out []Outcome

	switch ev.Type {
	case riot.EventWardPlaced:
		if team := TeamOf(ev.CreatorID); team != TeamUndetermined {
			out = append(out, Outcome{OutcomeWardPlaced, team})
		}

	case riot.EventWardKill:
		if team := TeamOf(ev.KillerID); team != TeamUndetermined {
			out = append(out, Outcome{OutcomeWardKilled, team})
		}

	case riot.EventBuildingKill:
		if ev.BuildingType != riot.BuildingTower {
			break
		}
		if team := TeamOf(ev.KillerID); team != TeamUndetermined {
			out = append(out, Outcome{OutcomeTowerDestroyed, team})
		}

	case riot.EventEliteMonsterKill:
		team := TeamOf(ev.KillerID)
		if team == TeamUndetermined {
			break
		}
		switch ev.MonsterType {
		case riot.MonsterDragon:
			out = append(out, Outcome{OutcomeDragonKilled, team})
		case riot.MonsterRiftHerald:
			out = append(out, Outcome{OutcomeHeraldKilled, team})
		case riot.MonsterVoidGrubs:
			out = append(out, Outcome{OutcomeVoidGrubKilled, team})
		}

	case riot.EventChampionKill:
		// Execute deaths (towers, monsters) carry a killer id of 0 and count
		// for neither side.
		killerTeam := TeamOf(ev.KillerID)
		if killerTeam == TeamUndetermined {
			break
		}
		victimTeam := TeamRed
		if killerTeam == TeamRed {
			victimTeam = TeamBlue
		}
		out = append(out, Outcome{OutcomeKill, killerTeam}, Outcome{OutcomeDeath, victimTeam})
		for range ev.AssistingParticipantIDs {
			out = append(out, Outcome{OutcomeAssist, killerTeam})
		}
	}

	// First blood rides on its own kill type and is checked independently of
	// the event type switch.
	if ev.KillType == riot.KillFirstBlood {
		if team := TeamOf(ev.KillerID); team != TeamUndetermined {
			out = append(out, Outcome{OutcomeFirstBlood, team})
		}
	}

	return out
}
