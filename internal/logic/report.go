package logic

import (
	"errors"

	"github.com/samber/lo"

	"github.com/supremehato/valorant-vision/internal/models"
)

// ErrStaleSearch is returned when a result set belongs to a superseded search.
var ErrStaleSearch = errors.New("result belongs to a superseded search")

// AgentView adds the derived ratios to an AgentStat.
type AgentView struct {
	AgentStat
	WinRate int    `json:"win_rate"`
	KDA     string `json:"kda"`
}

// MapView adds the derived win rate to a MapStat.
type MapView struct {
	MapStat
	Losses  int `json:"losses"`
	WinRate int `json:"win_rate"`
}

// TotalsView adds the derived ratios to CombatTotals.
type TotalsView struct {
	CombatTotals
	WinRate         int    `json:"win_rate"`
	KDA             string `json:"kda"`
	KD              string `json:"kd"`
	HeadshotPercent string `json:"headshot_percent"`
	BodyshotPercent string `json:"bodyshot_percent"`
	LegshotPercent  string `json:"legshot_percent"`
	HeadshotBadge   int    `json:"headshot_badge"`
	AvgScore        int    `json:"avg_score"`
	AvgDamage       int    `json:"avg_damage"`
}

// PlayerReport is everything a player page renders for one search.
type PlayerReport struct {
	SearchID      string         `json:"search_id"`
	Account       models.Account `json:"account"`
	Rank          *RankView      `json:"rank"`
	Mode          string         `json:"mode"`
	MatchesTotal  int            `json:"matches_total"`
	Matches       []MatchCard    `json:"matches"`
	Agents        []AgentView    `json:"agents"`
	Maps          []MapView      `json:"maps"`
	Totals        TotalsView     `json:"totals"`
	SelectedMatch *MatchDetail   `json:"selected_match,omitempty"`
}

func NewAgentViews(stats []AgentStat) []AgentView {
	return lo.Map(stats, func(a AgentStat, _ int) AgentView {
		return AgentView{
			AgentStat: a,
			WinRate:   WinRate(a.Wins, a.Games),
			KDA:       FormatRatio(KDA(a.Kills, a.Deaths, a.Assists)),
		}
	})
}

func NewMapViews(stats []MapStat) []MapView {
	return lo.Map(stats, func(m MapStat, _ int) MapView {
		return MapView{MapStat: m, Losses: m.Games - m.Wins, WinRate: WinRate(m.Wins, m.Games)}
	})
}

func NewTotalsView(t CombatTotals) TotalsView {
	return TotalsView{
		CombatTotals:    t,
		WinRate:         t.WinRate(),
		KDA:             FormatRatio(t.KDA()),
		KD:              FormatRatio(t.KD()),
		HeadshotPercent: FormatPercent(t.HeadshotPercent()),
		BodyshotPercent: FormatPercent(t.BodyshotPercent()),
		LegshotPercent:  FormatPercent(t.LegshotPercent()),
		HeadshotBadge:   RoundInt(t.HeadshotPercent()),
		AvgScore:        Average(t.Score, t.Games),
		AvgDamage:       Average(t.DamageDealt, t.Games),
	}
}

// BuildReport applies the view state to a fetched result set: the mode
// filter narrows the page, then every aggregate is computed from the
// filtered matches. The selected match is only kept while it is visible.
func BuildReport(state ViewState, stats models.PlayerStats) (PlayerReport, error) {
	if !state.Accepts(stats.SearchID) {
		return PlayerReport{}, ErrStaleSearch
	}

	puuid := stats.Account.PUUID
	matches := FilterByMode(stats.Matches, state.Mode)

	report := PlayerReport{
		SearchID:     stats.SearchID,
		Account:      stats.Account,
		Rank:         BuildRankView(stats.MMR),
		Mode:         state.Mode,
		MatchesTotal: len(stats.Matches),
		Matches:      BuildMatchCards(matches, puuid),
		Agents:       NewAgentViews(AgentStats(matches, puuid)),
		Maps:         NewMapViews(MapStats(matches, puuid)),
		Totals:       NewTotalsView(Totals(matches, puuid)),
	}

	if state.SelectedMatchID != "" {
		if m, ok := lo.Find(matches, func(m models.MatchRecord) bool {
			return m.Metadata.MatchID == state.SelectedMatchID
		}); ok {
			detail := BuildMatchDetail(m, puuid)
			report.SelectedMatch = &detail
		}
	}
	return report, nil
}
