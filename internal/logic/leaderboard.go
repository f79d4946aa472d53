package logic

import (
	"github.com/samber/lo"

	"github.com/supremehato/valorant-vision/internal/models"
)

// LeaderboardSize caps how many leaderboard rows are served.
const LeaderboardSize = 100

// Region is a selectable upstream shard.
type Region struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var Regions = []Region{
	{Value: "eu", Label: "Europe"},
	{Value: "na", Label: "North America"},
	{Value: "ap", Label: "Asia Pacific"},
	{Value: "kr", Label: "Korea"},
	{Value: "br", Label: "Brazil"},
	{Value: "latam", Label: "LATAM"},
}

// DefaultRegion is used when an account does not report one.
const DefaultRegion = "eu"

// RegionValues returns the region keys in display order.
func RegionValues() []string {
	return lo.Map(Regions, func(r Region, _ int) string { return r.Value })
}

// IsRegion reports whether value is a known region key.
func IsRegion(value string) bool {
	return lo.ContainsBy(Regions, func(r Region) bool { return r.Value == value })
}

// LeaderboardRow is a leaderboard entry ready for display.
type LeaderboardRow struct {
	Rank     int       `json:"rank"`
	Band     string    `json:"band"`
	PUUID    string    `json:"puuid"`
	Name     string    `json:"name"`
	Tag      string    `json:"tag,omitempty"`
	RR       int       `json:"rr"`
	Wins     int       `json:"wins"`
	RankIcon RankBadge `json:"tier"`
	// Searchable is false for anonymized entries that cannot be looked up.
	Searchable bool `json:"searchable"`
}

// RankBand buckets a leaderboard position for highlighting.
func RankBand(rank int) string {
	switch {
	case rank == 1:
		return "radiant"
	case rank > 1 && rank <= 10:
		return "immortal"
	case rank > 10 && rank <= 50:
		return "diamond"
	default:
		return "default"
	}
}

// BuildLeaderboard keeps the first LeaderboardSize entries and renders them.
func BuildLeaderboard(entries []models.LeaderboardEntry) []LeaderboardRow {
	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	return lo.Map(entries, func(e models.LeaderboardEntry, _ int) LeaderboardRow {
		return LeaderboardRow{
			Rank:       e.Rank,
			Band:       RankBand(e.Rank),
			PUUID:      e.PUUID,
			Name:       e.Name,
			Tag:        e.Tag,
			RR:         e.RR,
			Wins:       e.Wins,
			RankIcon:   NewRankBadge(e.Tier),
			Searchable: !e.Anonymous && e.Name != "" && e.Tag != "",
		}
	})
}
