package logic

import "github.com/supremehato/valorant-vision/internal/models"

const hero = "puuid-hero"

type matchOpt func(*models.MatchRecord)

func withQueue(id, name string) matchOpt {
	return func(m *models.MatchRecord) { m.Metadata.Queue = models.Ref{ID: id, Name: name} }
}

func withMap(name string) matchOpt {
	return func(m *models.MatchRecord) { m.Metadata.Map = models.Ref{ID: "map-" + name, Name: name} }
}

func withoutTeams() matchOpt {
	return func(m *models.MatchRecord) { m.Teams = nil }
}

// newMatch builds a two-team match with the hero on Red.
func newMatch(id, agent string, heroWon bool, stats models.CombatStats, opts ...matchOpt) models.MatchRecord {
	m := models.MatchRecord{
		Metadata: models.MatchMetadata{
			MatchID:      id,
			Map:          models.Ref{ID: "map-ascent", Name: "Ascent"},
			Queue:        models.Ref{ID: "competitive", Name: "Competitive"},
			GameLengthMS: 35 * 60000,
		},
		Players: []models.ParticipantRecord{
			{PUUID: hero, Name: "Hero", Tag: "EU1", TeamID: "Red", Stats: stats},
			{PUUID: "puuid-ally", Name: "Ally", Tag: "EU2", TeamID: "Red", Agent: models.Ref{ID: "sage-id", Name: "Sage"},
				Stats: models.CombatStats{Score: 3000, Kills: 10, Deaths: 12}},
			{PUUID: "puuid-foe", Name: "Foe", Tag: "EU3", TeamID: "Blue", Agent: models.Ref{ID: "reyna-id", Name: "Reyna"},
				Stats: models.CombatStats{Score: 6000, Kills: 25, Deaths: 10, Headshots: 9, Bodyshots: 21}},
		},
		Teams: []models.TeamResult{
			{TeamID: "Red", RoundsWon: 13, RoundsLost: 8, Won: heroWon},
			{TeamID: "Blue", RoundsWon: 8, RoundsLost: 13, Won: !heroWon},
		},
	}
	if agent != "" {
		m.Players[0].Agent = models.Ref{ID: agent + "-id", Name: agent}
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}
