package logic

import (
	"sort"

	"github.com/supremehato/valorant-vision/internal/models"
)

// AgentStat is a player's rollup for one agent.
type AgentStat struct {
	Name     string `json:"name"`
	IconURL  string `json:"icon_url"`
	Games    int    `json:"games"`
	Wins     int    `json:"wins"`
	Kills    int    `json:"kills"`
	Deaths   int    `json:"deaths"`
	Assists  int    `json:"assists"`
	AvgScore int    `json:"avg_score"`
}

// MapStat is a player's rollup for one map. Win rate is derived on demand.
type MapStat struct {
	Name  string `json:"name"`
	Games int    `json:"games"`
	Wins  int    `json:"wins"`
}

// CombatTotals sums every combat counter across the matches a player appears in.
type CombatTotals struct {
	Games          int `json:"games"`
	Wins           int `json:"wins"`
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

// playerMatch locates the player in a match and resolves the outcome of
// their team. A missing team result counts as a loss.
func playerMatch(m models.MatchRecord, puuid string) (models.ParticipantRecord, bool, bool) {
	p, ok := m.Participant(puuid)
	if !ok {
		return models.ParticipantRecord{}, false, false
	}
	team, _ := m.Team(p.TeamID)
	return p, team.Won, true
}

// AgentStats rolls the player's matches up per agent, most played first.
// Ties keep the order in which agents were first seen.
func AgentStats(matches []models.MatchRecord, puuid string) []AgentStat {
	byName := make(map[string]*AgentStat)
	scores := make(map[string]int)
	var order []string

	for _, m := range matches {
		p, won, ok := playerMatch(m, puuid)
		if !ok || !p.HasAgent() {
			continue
		}

		name := p.Agent.Name
		stat, seen := byName[name]
		if !seen {
			stat = &AgentStat{Name: name}
			byName[name] = stat
			order = append(order, name)
		}

		stat.IconURL = AgentIconURL(p.Agent.ID)
		stat.Games++
		if won {
			stat.Wins++
		}
		stat.Kills += p.Stats.Kills
		stat.Deaths += p.Stats.Deaths
		stat.Assists += p.Stats.Assists
		scores[name] += p.Stats.Score
	}

	result := make([]AgentStat, 0, len(order))
	for _, name := range order {
		stat := *byName[name]
		stat.AvgScore = Average(scores[name], stat.Games)
		result = append(result, stat)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Games > result[j].Games
	})
	return result
}

// MapStats rolls the player's matches up per map, most played first.
// Matches without a map name are skipped.
func MapStats(matches []models.MatchRecord, puuid string) []MapStat {
	byName := make(map[string]*MapStat)
	var order []string

	for _, m := range matches {
		name := m.Metadata.Map.Name
		if name == "" {
			continue
		}
		_, won, ok := playerMatch(m, puuid)
		if !ok {
			continue
		}

		stat, seen := byName[name]
		if !seen {
			stat = &MapStat{Name: name}
			byName[name] = stat
			order = append(order, name)
		}
		stat.Games++
		if won {
			stat.Wins++
		}
	}

	result := make([]MapStat, 0, len(order))
	for _, name := range order {
		result = append(result, *byName[name])
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Games > result[j].Games
	})
	return result
}

// Totals sums the player's combat stats over every match they appear in.
func Totals(matches []models.MatchRecord, puuid string) CombatTotals {
	var t CombatTotals
	for _, m := range matches {
		p, won, ok := playerMatch(m, puuid)
		if !ok {
			continue
		}
		t.Games++
		if won {
			t.Wins++
		}
		s := p.Stats
		t.Score += s.Score
		t.Kills += s.Kills
		t.Deaths += s.Deaths
		t.Assists += s.Assists
		t.Headshots += s.Headshots
		t.Bodyshots += s.Bodyshots
		t.Legshots += s.Legshots
		t.DamageDealt += s.DamageDealt
		t.DamageReceived += s.DamageReceived
	}
	return t
}

func (t CombatTotals) KDA() float64 { return KDA(t.Kills, t.Deaths, t.Assists) }
func (t CombatTotals) KD() float64  { return KD(t.Kills, t.Deaths) }
func (t CombatTotals) WinRate() int { return WinRate(t.Wins, t.Games) }

func (t CombatTotals) HeadshotPercent() float64 {
	return ShotPercent(t.Headshots, t.Headshots, t.Bodyshots, t.Legshots)
}

func (t CombatTotals) BodyshotPercent() float64 {
	return ShotPercent(t.Bodyshots, t.Headshots, t.Bodyshots, t.Legshots)
}

func (t CombatTotals) LegshotPercent() float64 {
	return ShotPercent(t.Legshots, t.Headshots, t.Bodyshots, t.Legshots)
}
