package logic

import (
	"sort"
	"time"

	"github.com/supremehato/valorant-vision/internal/models"
)

// MatchCard is one row of a player's match history.
type MatchCard struct {
	MatchID         string    `json:"match_id"`
	Map             string    `json:"map"`
	Mode            string    `json:"mode"`
	StartedAt       time.Time `json:"started_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Won             bool      `json:"won"`
	RoundsWon       int       `json:"rounds_won"`
	RoundsLost      int       `json:"rounds_lost"`
	Agent           string    `json:"agent"`
	AgentIconURL    string    `json:"agent_icon_url"`
	Kills           int       `json:"kills"`
	Deaths          int       `json:"deaths"`
	Assists         int       `json:"assists"`
	Score           int       `json:"score"`
	KDA             string    `json:"kda"`
	HeadshotPercent int       `json:"headshot_percent"`
}

// DurationMinutes converts a game length to whole minutes.
func DurationMinutes(ms int64) int {
	if ms <= 0 {
		return 0
	}
	return RoundInt(float64(ms) / 60000)
}

// BuildMatchCards renders the player's match history, skipping matches the
// player is not part of.
func BuildMatchCards(matches []models.MatchRecord, puuid string) []MatchCard {
	cards := make([]MatchCard, 0, len(matches))
	for _, m := range matches {
		if card, ok := BuildMatchCard(m, puuid); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// BuildMatchCard renders one match from the player's point of view.
func BuildMatchCard(m models.MatchRecord, puuid string) (MatchCard, bool) {
	p, ok := m.Participant(puuid)
	if !ok {
		return MatchCard{}, false
	}
	team, _ := m.Team(p.TeamID)
	s := p.Stats

	mode := m.Metadata.Queue.Name
	if mode == "" {
		mode = "Competitive"
	}

	return MatchCard{
		MatchID:         m.Metadata.MatchID,
		Map:             m.Metadata.Map.Name,
		Mode:            mode,
		StartedAt:       m.Metadata.StartedAt,
		DurationMinutes: DurationMinutes(m.Metadata.GameLengthMS),
		Won:             team.Won,
		RoundsWon:       team.RoundsWon,
		RoundsLost:      team.RoundsLost,
		Agent:           p.Agent.Name,
		AgentIconURL:    AgentIconURL(p.Agent.ID),
		Kills:           s.Kills,
		Deaths:          s.Deaths,
		Assists:         s.Assists,
		Score:           s.Score,
		KDA:             FormatRatio(KDA(s.Kills, s.Deaths, s.Assists)),
		HeadshotPercent: RoundInt(HeadshotPercent(s.Headshots, s.Bodyshots, s.Legshots)),
	}, true
}

// ScoreboardRow is one player line on a team scoreboard.
type ScoreboardRow struct {
	PUUID           string    `json:"puuid"`
	Name            string    `json:"name"`
	Tag             string    `json:"tag"`
	Agent           string    `json:"agent"`
	AgentIconURL    string    `json:"agent_icon_url"`
	Rank            RankBadge `json:"rank"`
	Score           int       `json:"score"`
	Kills           int       `json:"kills"`
	Deaths          int       `json:"deaths"`
	Assists         int       `json:"assists"`
	KDA             string    `json:"kda"`
	HeadshotPercent int       `json:"headshot_percent"`
	DamageDealt     int       `json:"damage_dealt"`
	IsMVP           bool      `json:"is_mvp"`
	IsCurrentPlayer bool      `json:"is_current_player"`
}

// TeamScoreboard groups a team's rows with its result.
type TeamScoreboard struct {
	TeamID    string          `json:"team_id"`
	Won       bool            `json:"won"`
	RoundsWon int             `json:"rounds_won"`
	Players   []ScoreboardRow `json:"players"`
}

// MatchDetail is the full scoreboard view of a single match.
type MatchDetail struct {
	MatchID         string           `json:"match_id"`
	Map             string           `json:"map"`
	MapIconURL      string           `json:"map_icon_url,omitempty"`
	Mode            string           `json:"mode"`
	StartedAt       time.Time        `json:"started_at"`
	DurationMinutes int              `json:"duration_minutes"`
	Teams           []TeamScoreboard `json:"teams"`
}

// BuildMatchDetail renders per-team scoreboards in team-result order.
// Players are sorted by score; the top scorer of each team is its MVP.
func BuildMatchDetail(m models.MatchRecord, puuid string) MatchDetail {
	mapName := m.Metadata.Map.Name
	if mapName == "" {
		mapName = "Unknown Map"
	}
	mode := m.Metadata.Queue.Name
	if mode == "" {
		mode = "Competitive"
	}

	d := MatchDetail{
		MatchID:         m.Metadata.MatchID,
		Map:             mapName,
		MapIconURL:      MapIconURL(m.Metadata.Map.ID),
		Mode:            mode,
		StartedAt:       m.Metadata.StartedAt,
		DurationMinutes: DurationMinutes(m.Metadata.GameLengthMS),
		Teams:           make([]TeamScoreboard, 0, len(m.Teams)),
	}

	for _, t := range m.Teams {
		board := TeamScoreboard{TeamID: t.TeamID, Won: t.Won, RoundsWon: t.RoundsWon}
		for _, p := range m.Players {
			if p.TeamID == t.TeamID {
				board.Players = append(board.Players, scoreboardRow(p, puuid))
			}
		}
		sort.SliceStable(board.Players, func(i, j int) bool {
			return board.Players[i].Score > board.Players[j].Score
		})
		if len(board.Players) > 0 {
			board.Players[0].IsMVP = true
		}
		d.Teams = append(d.Teams, board)
	}
	return d
}

func scoreboardRow(p models.ParticipantRecord, puuid string) ScoreboardRow {
	s := p.Stats
	return ScoreboardRow{
		PUUID:           p.PUUID,
		Name:            p.Name,
		Tag:             p.Tag,
		Agent:           p.Agent.Name,
		AgentIconURL:    AgentIconURL(p.Agent.ID),
		Rank:            NewRankBadge(p.Tier.ID),
		Score:           s.Score,
		Kills:           s.Kills,
		Deaths:          s.Deaths,
		Assists:         s.Assists,
		KDA:             FormatRatio(KDA(s.Kills, s.Deaths, s.Assists)),
		HeadshotPercent: RoundInt(HeadshotPercent(s.Headshots, s.Bodyshots, s.Legshots)),
		DamageDealt:     s.DamageDealt,
		IsCurrentPlayer: p.PUUID == puuid,
	}
}
