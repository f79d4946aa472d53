package logic

import (
	"errors"
	"testing"

	"github.com/supremehato/valorant-vision/internal/models"
)

func TestViewStateTransitions(t *testing.T) {
	s := NewViewState()
	if s.Region != "eu" || s.Mode != ModeAll {
		t.Fatalf("unexpected initial state: %+v", s)
	}

	next := s.WithRegion("NA").WithMode(" Competitive ").SelectMatch("m1")
	if next.Region != "na" || next.Mode != "competitive" || next.SelectedMatchID != "m1" {
		t.Errorf("unexpected state: %+v", next)
	}
	if s.Region != "eu" || s.SelectedMatchID != "" {
		t.Error("transitions must not modify the receiver")
	}

	if got := next.WithRegion("mars"); got.Region != "na" {
		t.Errorf("unknown region should be ignored, got %s", got.Region)
	}
	if got := next.WithMode(""); got.Mode != ModeAll {
		t.Errorf("empty mode should reset to all, got %s", got.Mode)
	}
	if got := next.ClearSelection(); got.SelectedMatchID != "" {
		t.Error("expected selection cleared")
	}
}

func TestViewStateSearchSupersedes(t *testing.T) {
	first := NewViewState().SelectMatch("old").BeginSearch(RiotID{Name: "A", Tag: "1"})
	if first.SearchID == "" || first.SelectedMatchID != "" {
		t.Fatalf("unexpected state after BeginSearch: %+v", first)
	}

	second := first.BeginSearch(RiotID{Name: "B", Tag: "2"})
	if second.SearchID == first.SearchID {
		t.Fatal("each search must get a fresh id")
	}
	if second.Accepts(first.SearchID) {
		t.Error("results of the superseded search must be rejected")
	}
	if !second.Accepts(second.SearchID) {
		t.Error("results of the current search must be accepted")
	}
	if NewViewState().Accepts("") {
		t.Error("a state without a search accepts nothing")
	}
}

func TestBuildReport(t *testing.T) {
	state := NewViewState().WithMode("competitive").BeginSearch(RiotID{Name: "Hero", Tag: "EU1"})

	stats := models.PlayerStats{
		SearchID: state.SearchID,
		Account:  models.Account{PUUID: hero, Name: "Hero", Tag: "EU1", Region: "eu"},
		Matches: []models.MatchRecord{
			newMatch("c1", "Jett", true, models.CombatStats{Score: 300, Kills: 20, Deaths: 10, Assists: 5, Headshots: 10, Bodyshots: 20}, withMap("Bind")),
			newMatch("u1", "Omen", false, models.CombatStats{Score: 100, Kills: 5, Deaths: 10}, withQueue("unrated", "Unrated")),
			newMatch("c2", "Jett", false, models.CombatStats{Score: 200, Kills: 10, Deaths: 10, Assists: 5, Headshots: 0, Bodyshots: 10}),
		},
	}

	report, err := BuildReport(state.SelectMatch("c2"), stats)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	if report.MatchesTotal != 3 || len(report.Matches) != 2 {
		t.Errorf("expected 2 of 3 matches after the mode filter, got %d of %d", len(report.Matches), report.MatchesTotal)
	}
	if len(report.Agents) != 1 || report.Agents[0].Name != "Jett" || report.Agents[0].WinRate != 50 {
		t.Errorf("unexpected agents: %+v", report.Agents)
	}
	if report.Agents[0].KDA != "2.00" {
		t.Errorf("agent KDA = %s, want 2.00", report.Agents[0].KDA)
	}
	if len(report.Maps) != 2 {
		t.Errorf("unexpected maps: %+v", report.Maps)
	}
	if report.Totals.Games != 2 || report.Totals.Kills != 30 || report.Totals.AvgScore != 250 {
		t.Errorf("unexpected totals: %+v", report.Totals)
	}
	if report.Totals.HeadshotPercent != "25.0" || report.Totals.HeadshotBadge != 25 {
		t.Errorf("unexpected headshot share: %s / %d", report.Totals.HeadshotPercent, report.Totals.HeadshotBadge)
	}
	if report.Rank != nil {
		t.Error("expected no rank section without MMR")
	}
	if report.SelectedMatch == nil || report.SelectedMatch.MatchID != "c2" {
		t.Errorf("expected selected match c2, got %+v", report.SelectedMatch)
	}
}

func TestBuildReport_SelectionHiddenByFilter(t *testing.T) {
	state := NewViewState().WithMode("competitive").BeginSearch(RiotID{Name: "Hero", Tag: "EU1"}).SelectMatch("u1")
	stats := models.PlayerStats{
		SearchID: state.SearchID,
		Account:  models.Account{PUUID: hero},
		Matches: []models.MatchRecord{
			newMatch("u1", "Omen", false, models.CombatStats{}, withQueue("unrated", "Unrated")),
		},
	}

	report, err := BuildReport(state, stats)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}
	if report.SelectedMatch != nil {
		t.Error("a match hidden by the mode filter cannot stay selected")
	}
	if report.Totals != NewTotalsView(CombatTotals{}) {
		t.Errorf("expected zero totals, got %+v", report.Totals)
	}
}

func TestBuildReport_RejectsStaleResults(t *testing.T) {
	old := NewViewState().BeginSearch(RiotID{Name: "Old", Tag: "1"})
	current := old.BeginSearch(RiotID{Name: "New", Tag: "2"})

	_, err := BuildReport(current, models.PlayerStats{SearchID: old.SearchID})
	if !errors.Is(err, ErrStaleSearch) {
		t.Errorf("expected ErrStaleSearch, got %v", err)
	}
}
