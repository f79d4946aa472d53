package logic

import (
	"testing"

	"github.com/supremehato/valorant-vision/internal/models"
)

func TestFilterByMode(t *testing.T) {
	matches := []models.MatchRecord{
		newMatch("c1", "Jett", true, models.CombatStats{}, withQueue("competitive", "Competitive")),
		newMatch("u1", "Jett", true, models.CombatStats{}, withQueue("unrated", "Unrated")),
		newMatch("c2", "Jett", true, models.CombatStats{}, withQueue("competitive", "Competitive")),
		newMatch("d1", "Jett", true, models.CombatStats{}, withQueue("deathmatch", "Deathmatch")),
		newMatch("t1", "Jett", true, models.CombatStats{}, withQueue("hurm", "Team Deathmatch")),
	}

	tests := []struct {
		name string
		mode string
		want []string
	}{
		{"competitive", "competitive", []string{"c1", "c2"}},
		{"case insensitive", "COMPETITIVE", []string{"c1", "c2"}},
		{"all is identity", "all", []string{"c1", "u1", "c2", "d1", "t1"}},
		{"empty is identity", "", []string{"c1", "u1", "c2", "d1", "t1"}},
		{"substring of name", "deathmatch", []string{"d1", "t1"}},
		{"matches queue id", "hurm", []string{"t1"}},
		{"no match", "premier", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByMode(matches, tt.mode)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d matches, want %d", len(got), len(tt.want))
			}
			for i, m := range got {
				if m.Metadata.MatchID != tt.want[i] {
					t.Errorf("match %d = %s, want %s", i, m.Metadata.MatchID, tt.want[i])
				}
			}
		})
	}
}
