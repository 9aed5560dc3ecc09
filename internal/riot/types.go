package riot

// LeagueEntry represents one entry from /lol/league-exp/v4/entries
type LeagueEntry struct {
	SummonerID   string `json:"summonerId"`
	PUUID        string `json:"puuid"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// SummonerResponse represents the response from /lol/summoner/v4/summoners/{summonerId}
type SummonerResponse struct {
	ID            string `json:"id"`
	PUUID         string `json:"puuid"`
	SummonerLevel int    `json:"summonerLevel"`
}

// TimelineResponse represents the response from /lol/match/v5/matches/{matchId}/timeline
type TimelineResponse struct {
	Metadata TimelineMetadata `json:"metadata"`
	Info     TimelineInfo     `json:"info"`
}

type TimelineMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type TimelineInfo struct {
	FrameInterval int             `json:"frameInterval"`
	Frames        []TimelineFrame `json:"frames"`
}

// TimelineFrame is one per-minute slice of the match: the events that happened
// during that minute plus a snapshot of every participant's running totals.
type TimelineFrame struct {
	Timestamp         int64                       `json:"timestamp"`
	Events            []TimelineEvent             `json:"events"`
	ParticipantFrames map[string]ParticipantFrame `json:"participantFrames"` // key "1".."10"
}

// TimelineEvent is a single timeline event. Riot's schema is a union of many
// event shapes; only the fields the reducer cares about are decoded, the rest
// stay at their zero value.
type TimelineEvent struct {
	Type                    string `json:"type"`
	Timestamp               int64  `json:"timestamp"`
	CreatorID               int    `json:"creatorId,omitempty"`
	KillerID                int    `json:"killerId,omitempty"`
	BuildingType            string `json:"buildingType,omitempty"`
	MonsterType             string `json:"monsterType,omitempty"`
	KillType                string `json:"killType,omitempty"`
	AssistingParticipantIDs []int  `json:"assistingParticipantIds,omitempty"`
	WinningTeam             int    `json:"winningTeam,omitempty"` // 100 blue, 200 red, set on GAME_END
}

// ParticipantFrame is a participant's running totals at a frame boundary.
type ParticipantFrame struct {
	TotalGold           int `json:"totalGold"`
	Level               int `json:"level"`
	MinionsKilled       int `json:"minionsKilled"`
	JungleMinionsKilled int `json:"jungleMinionsKilled"`
}

// Event type tags the reducer recognizes.
const (
	EventWardPlaced       = "WARD_PLACED"
	EventWardKill         = "WARD_KILL"
	EventBuildingKill     = "BUILDING_KILL"
	EventEliteMonsterKill = "ELITE_MONSTER_KILL"
	EventChampionKill     = "CHAMPION_KILL"

	BuildingTower = "TOWER_BUILDING"

	MonsterDragon     = "DRAGON"
	MonsterRiftHerald = "RIFTHERALD"
	MonsterVoidGrubs  = "HORDE"

	KillFirstBlood = "KILL_FIRST_BLOOD"
)
