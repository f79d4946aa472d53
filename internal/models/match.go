package models

import "time"

// MatchRecord is one completed game, fully shaped by NormalizeMatch.
type MatchRecord struct {
	Metadata MatchMetadata       `json:"metadata"`
	Players  []ParticipantRecord `json:"players"`
	Teams    []TeamResult        `json:"teams"`
}

type MatchMetadata struct {
	MatchID      string    `json:"match_id"`
	Map          Ref       `json:"map"`
	Queue        Ref       `json:"queue"`
	StartedAt    time.Time `json:"started_at"`
	GameLengthMS int64     `json:"game_length_in_ms"`
	Region       string    `json:"region"`
	Season       Season    `json:"season"`
}

// Ref is an upstream id/display-name pair (maps, queues, agents).
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Season struct {
	ID    string `json:"id"`
	Short string `json:"short"`
}

type Tier struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ParticipantRecord is one player's performance in a match.
type ParticipantRecord struct {
	PUUID        string      `json:"puuid"`
	Name         string      `json:"name"`
	Tag          string      `json:"tag"`
	TeamID       string      `json:"team_id"`
	Agent        Ref         `json:"agent"`
	Stats        CombatStats `json:"stats"`
	Tier         Tier        `json:"tier"`
	AccountLevel int         `json:"account_level"`
}

// HasAgent reports whether the upstream assigned an agent to the participant.
func (p ParticipantRecord) HasAgent() bool {
	return p.Agent.ID != "" || p.Agent.Name != ""
}

type CombatStats struct {
	Score          int `json:"score"`
	Kills          int `json:"kills"`
	Deaths         int `json:"deaths"`
	Assists        int `json:"assists"`
	Headshots      int `json:"headshots"`
	Bodyshots      int `json:"bodyshots"`
	Legshots       int `json:"legshots"`
	DamageDealt    int `json:"damage_dealt"`
	DamageReceived int `json:"damage_received"`
}

// TeamResult is the per-team outcome of a match.
type TeamResult struct {
	TeamID     string `json:"team_id"`
	RoundsWon  int    `json:"rounds_won"`
	RoundsLost int    `json:"rounds_lost"`
	Won        bool   `json:"won"`
}

// Participant returns the participant with the given player id.
func (m MatchRecord) Participant(puuid string) (ParticipantRecord, bool) {
	for _, p := range m.Players {
		if p.PUUID == puuid {
			return p, true
		}
	}
	return ParticipantRecord{}, false
}

// Team returns the result for the given team id.
func (m MatchRecord) Team(teamID string) (TeamResult, bool) {
	for _, t := range m.Teams {
		if t.TeamID == teamID {
			return t, true
		}
	}
	return TeamResult{}, false
}
