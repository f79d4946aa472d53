package logic

import (
	"fmt"
	"testing"

	"github.com/supremehato/valorant-vision/internal/models"
)

func TestRankBand(t *testing.T) {
	tests := []struct {
		rank int
		want string
	}{
		{1, "radiant"},
		{2, "immortal"},
		{10, "immortal"},
		{11, "diamond"},
		{50, "diamond"},
		{51, "default"},
		{0, "default"},
	}
	for _, tt := range tests {
		if got := RankBand(tt.rank); got != tt.want {
			t.Errorf("RankBand(%d) = %q, want %q", tt.rank, got, tt.want)
		}
	}
}

func TestBuildLeaderboard(t *testing.T) {
	entries := make([]models.LeaderboardEntry, 0, 150)
	for i := 1; i <= 150; i++ {
		entries = append(entries, models.LeaderboardEntry{
			PUUID: fmt.Sprintf("p%d", i),
			Name:  fmt.Sprintf("Player%d", i),
			Tag:   "EU",
			Rank:  i,
			RR:    1000 - i,
			Tier:  27,
		})
	}
	entries[2].Name = "Anonymous"
	entries[2].Tag = ""

	rows := BuildLeaderboard(entries)
	if len(rows) != LeaderboardSize {
		t.Fatalf("expected %d rows, got %d", LeaderboardSize, len(rows))
	}
	if rows[0].Band != "radiant" || rows[0].RankIcon.Name != "Radiant" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[99].Rank != 100 {
		t.Errorf("last row rank = %d, want 100", rows[99].Rank)
	}
	if rows[2].Searchable {
		t.Error("anonymized entry must not be searchable")
	}
	if !rows[1].Searchable {
		t.Error("named entry should be searchable")
	}
}

func TestIsRegion(t *testing.T) {
	for _, r := range []string{"eu", "na", "ap", "kr", "br", "latam"} {
		if !IsRegion(r) {
			t.Errorf("IsRegion(%q) = false", r)
		}
	}
	if IsRegion("EU") || IsRegion("mars") {
		t.Error("expected lowercase known keys only")
	}
	if got := RegionValues(); len(got) != 6 || got[0] != DefaultRegion {
		t.Errorf("unexpected region values: %v", got)
	}
}

func TestBuildLeaderboard_AnonymousWithTagIsNotSearchable(t *testing.T) {
	rows := BuildLeaderboard([]models.LeaderboardEntry{
		{PUUID: "hidden", Name: "Anonymous", Tag: "EU1", Rank: 1, Tier: 27, Anonymous: true},
		{PUUID: "real", Name: "Anonymous", Tag: "EU2", Rank: 2, Tier: 27},
	})

	if rows[0].Searchable {
		t.Error("hidden player must not be searchable even when a tag is present")
	}
	if !rows[1].Searchable {
		t.Error("a player really named Anonymous should stay searchable")
	}
}
