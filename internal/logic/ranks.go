package logic

import (
	"fmt"

	"github.com/supremehato/valorant-vision/internal/models"
)

const (
	mediaBaseURL   = "https://media.valorant-api.com"
	tierSetID      = "03621f52-342b-cf4e-4f86-9350a49c6d04"
	maxActWinBadge = 9
)

// Competitive tiers indexed by tier id.
var tierNames = [...]string{
	"Unrated", "Unused 1", "Unused 2",
	"Iron 1", "Iron 2", "Iron 3",
	"Bronze 1", "Bronze 2", "Bronze 3",
	"Silver 1", "Silver 2", "Silver 3",
	"Gold 1", "Gold 2", "Gold 3",
	"Platinum 1", "Platinum 2", "Platinum 3",
	"Diamond 1", "Diamond 2", "Diamond 3",
	"Ascendant 1", "Ascendant 2", "Ascendant 3",
	"Immortal 1", "Immortal 2", "Immortal 3",
	"Radiant",
}

// TierName returns the display name for a tier id, "Unknown" when out of range.
func TierName(id int) string {
	if id < 0 || id >= len(tierNames) {
		return "Unknown"
	}
	return tierNames[id]
}

// RankIconURL returns the small rank icon, or "" for unranked tiers.
func RankIconURL(id int) string {
	if id < 3 {
		return ""
	}
	return fmt.Sprintf("%s/competitivetiers/%s/%d/smallicon.png", mediaBaseURL, tierSetID, id)
}

// AgentIconURL returns the agent portrait.
func AgentIconURL(agentID string) string {
	return fmt.Sprintf("%s/agents/%s/displayicon.png", mediaBaseURL, agentID)
}

// MapIconURL returns the list-view map banner, or "" without a map id.
func MapIconURL(mapID string) string {
	if mapID == "" {
		return ""
	}
	return fmt.Sprintf("%s/maps/%s/listviewicon.png", mediaBaseURL, mapID)
}

// CurrentSeason returns the most recent act, which the upstream places last.
func CurrentSeason(seasonal []models.SeasonalRecord) (models.SeasonalRecord, bool) {
	if len(seasonal) == 0 {
		return models.SeasonalRecord{}, false
	}
	return seasonal[len(seasonal)-1], true
}

// RankBadge is a tier rendered for display.
type RankBadge struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	IconURL string `json:"icon_url,omitempty"`
}

func NewRankBadge(tierID int) RankBadge {
	return RankBadge{ID: tierID, Name: TierName(tierID), IconURL: RankIconURL(tierID)}
}

// RankView is the rank section of a player page.
type RankView struct {
	Current    RankBadge   `json:"current"`
	RR         int         `json:"rr"`
	LastChange int         `json:"last_change"`
	Peak       *RankBadge  `json:"peak,omitempty"`
	PeakSeason string      `json:"peak_season,omitempty"`
	Season     *SeasonView `json:"season,omitempty"`
}

// SeasonView is the current-act block.
type SeasonView struct {
	Season  string      `json:"season"`
	Games   int         `json:"games"`
	Wins    int         `json:"wins"`
	WinRate string      `json:"win_rate"`
	ActRank RankBadge   `json:"act_rank"`
	ActWins []RankBadge `json:"act_wins"`
}

// BuildRankView renders an MMR record. A nil record yields nil so the page
// renders without the rank section.
func BuildRankView(mmr *models.MMR) *RankView {
	if mmr == nil {
		return nil
	}

	v := &RankView{
		Current:    NewRankBadge(mmr.Current.Tier.ID),
		RR:         mmr.Current.RR,
		LastChange: mmr.Current.LastChange,
	}
	if mmr.Peak.Tier.ID > 0 {
		peak := NewRankBadge(mmr.Peak.Tier.ID)
		v.Peak = &peak
		v.PeakSeason = mmr.Peak.Season.Short
	}

	if s, ok := CurrentSeason(mmr.Seasonal); ok {
		season := s.Season.Short
		if season == "" {
			season = "Current"
		}
		winRate := "0"
		if s.Games > 0 {
			winRate = FormatPercent(float64(s.Wins) / float64(s.Games) * 100)
		}
		sv := &SeasonView{
			Season:  season,
			Games:   s.Games,
			Wins:    s.Wins,
			WinRate: winRate,
			ActRank: NewRankBadge(s.EndTier.ID),
			ActWins: make([]RankBadge, 0, maxActWinBadge),
		}
		for i, w := range s.ActWins {
			if i == maxActWinBadge {
				break
			}
			sv.ActWins = append(sv.ActWins, NewRankBadge(w.ID))
		}
		v.Season = sv
	}
	return v
}
