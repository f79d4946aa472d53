package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/supremehato/valorant-vision/internal/gateway"
	"github.com/supremehato/valorant-vision/internal/logic"
	"github.com/supremehato/valorant-vision/internal/models"
)

type fakeService struct {
	fetches atomic.Int32
}

func (f *fakeService) FetchPlayerStats(ctx context.Context, searchID string, id logic.RiotID, q gateway.MatchQuery) (*models.PlayerStats, error) {
	f.fetches.Add(1)
	if id.Name == "Ghost" {
		return nil, fmt.Errorf("fetch account: %w", gateway.ErrNotFound)
	}
	return &models.PlayerStats{
		SearchID: searchID,
		Account:  models.Account{PUUID: "p-1", Name: id.Name, Tag: id.Tag, Region: "eu", AccountLevel: 42},
		Matches:  []models.MatchRecord{testMatch()},
	}, nil
}

func (f *fakeService) Leaderboard(ctx context.Context, region string) ([]models.LeaderboardEntry, error) {
	if region == "kr" {
		return nil, gateway.ErrNotFound
	}
	return []models.LeaderboardEntry{
		{PUUID: "l-1", Name: "Top", Tag: "ONE", Rank: 1, RR: 950, Wins: 210, Tier: 27},
		{PUUID: "l-2", Name: "Anonymous", Rank: 2, RR: 900, Tier: 27},
	}, nil
}

func testMatch() models.MatchRecord {
	return models.MatchRecord{
		Metadata: models.MatchMetadata{
			MatchID:      "m-1",
			Map:          models.Ref{ID: "map-1", Name: "Ascent"},
			Queue:        models.Ref{ID: "competitive", Name: "Competitive"},
			GameLengthMS: 1_800_000,
		},
		Players: []models.ParticipantRecord{
			{PUUID: "p-1", Name: "Alpha", Tag: "EU1", TeamID: "Red", Agent: models.Ref{ID: "a-1", Name: "Jett"},
				Stats: models.CombatStats{Score: 300, Kills: 20, Deaths: 10, Assists: 5, Headshots: 10, Bodyshots: 20}},
			{PUUID: "p-2", Name: "Bravo", Tag: "EU2", TeamID: "Blue", Agent: models.Ref{ID: "a-2", Name: "Sage"},
				Stats: models.CombatStats{Score: 150}},
		},
		Teams: []models.TeamResult{
			{TeamID: "Red", RoundsWon: 13, RoundsLost: 5, Won: true},
			{TeamID: "Blue", RoundsWon: 5, RoundsLost: 13},
		},
	}
}

func nextResult(t *testing.T, s *session) searchResult {
	t.Helper()
	select {
	case r := <-s.results:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for search result")
		return searchResult{}
	}
}

func TestWriteReport(t *testing.T) {
	svc := &fakeService{}
	state := logic.NewViewState().BeginSearch(logic.RiotID{Name: "Alpha", Tag: "EU1"}).SelectMatch("m-1")
	stats, _ := svc.FetchPlayerStats(context.Background(), state.SearchID, state.Query, gateway.MatchQuery{Size: 5})

	report, err := logic.BuildReport(state, *stats)
	if err != nil {
		t.Fatalf("BuildReport: %v", err)
	}

	var buf bytes.Buffer
	if err := writeReport(&buf, report); err != nil {
		t.Fatalf("writeReport: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Alpha#EU1", "Rank: unavailable", "VICTORY", "13-5", "Ascent", "Jett", "20/10/5", "2.50", "MVP *", "30"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteLeaderboard(t *testing.T) {
	svc := &fakeService{}
	entries, _ := svc.Leaderboard(context.Background(), "eu")

	var buf bytes.Buffer
	if err := writeLeaderboard(&buf, "eu", logic.BuildLeaderboard(entries)); err != nil {
		t.Fatalf("writeLeaderboard: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Top#ONE") || !strings.Contains(out, "Radiant") {
		t.Errorf("unexpected leaderboard output:\n%s", out)
	}
	if strings.Contains(out, "Anonymous#") {
		t.Errorf("anonymous entries must not show a tag:\n%s", out)
	}
}

func TestDescribeErrors(t *testing.T) {
	id := logic.RiotID{Name: "Ghost", Tag: "000"}

	if err := describeFetchError(id, gateway.ErrNotFound); !strings.Contains(err.Error(), `"Ghost#000" not found`) {
		t.Errorf("unexpected not-found message: %v", err)
	}
	err := describeFetchError(id, gateway.ErrUnavailable)
	if !errors.Is(err, gateway.ErrUnavailable) {
		t.Errorf("expected wrapped ErrUnavailable, got %v", err)
	}
	if err := describeLeaderboardError("kr", gateway.ErrNotFound); !strings.Contains(err.Error(), "not available for kr") {
		t.Errorf("unexpected leaderboard message: %v", err)
	}
}

func TestSession_SearchAndLocalViewChanges(t *testing.T) {
	svc := &fakeService{}
	var buf bytes.Buffer
	s := newSession(svc, &buf, 5)
	ctx := context.Background()

	s.handle(ctx, "Alpha#EU1")
	s.deliver(nextResult(t, s))
	if !strings.Contains(buf.String(), "Alpha#EU1  level 42") {
		t.Fatalf("expected report, got:\n%s", buf.String())
	}

	buf.Reset()
	s.handle(ctx, "mode unrated")
	if !strings.Contains(buf.String(), "0 of 1 matches") || !strings.Contains(buf.String(), "No matches found.") {
		t.Errorf("expected filtered report, got:\n%s", buf.String())
	}

	buf.Reset()
	s.handle(ctx, "mode all")
	s.handle(ctx, "match m-1")
	if !strings.Contains(buf.String(), "m-1  Ascent  Competitive  30 min") {
		t.Errorf("expected scoreboard, got:\n%s", buf.String())
	}

	if got := svc.fetches.Load(); got != 1 {
		t.Errorf("view changes must not refetch, got %d fetches", got)
	}
}

func TestSession_DropsSupersededResults(t *testing.T) {
	svc := &fakeService{}
	var buf bytes.Buffer
	s := newSession(svc, &buf, 5)
	ctx := context.Background()

	s.handle(ctx, "Bravo#EU2")
	stale := nextResult(t, s)
	s.handle(ctx, "Charlie#EU3")
	current := nextResult(t, s)

	buf.Reset()
	s.deliver(stale)
	if buf.Len() != 0 {
		t.Fatalf("stale result must be dropped, got:\n%s", buf.String())
	}

	s.deliver(current)
	if !strings.Contains(buf.String(), "Charlie#EU3  level") {
		t.Errorf("expected current result, got:\n%s", buf.String())
	}
}

func TestSession_Errors(t *testing.T) {
	svc := &fakeService{}
	var buf bytes.Buffer
	s := newSession(svc, &buf, 5)
	ctx := context.Background()

	s.handle(ctx, "no-tag-here")
	if !strings.Contains(buf.String(), "valid Riot ID") {
		t.Errorf("expected Riot ID error, got:\n%s", buf.String())
	}
	if svc.fetches.Load() != 0 {
		t.Error("invalid Riot IDs must not be fetched")
	}

	buf.Reset()
	s.handle(ctx, "Ghost#000")
	s.deliver(nextResult(t, s))
	if !strings.Contains(buf.String(), "not found") {
		t.Errorf("expected not-found message, got:\n%s", buf.String())
	}

	buf.Reset()
	s.handle(ctx, "lb mars")
	if !strings.Contains(buf.String(), `unknown region "mars"`) {
		t.Errorf("expected region error, got:\n%s", buf.String())
	}

	buf.Reset()
	s.handle(ctx, "lb kr")
	if !strings.Contains(buf.String(), "not available for kr") {
		t.Errorf("expected unavailable message, got:\n%s", buf.String())
	}

	if quit := s.handle(ctx, "quit"); !quit {
		t.Error("expected quit to end the session")
	}
}

// hangingService blocks every fetch until its context is cancelled.
type hangingService struct {
	fakeService
	entered chan struct{}
}

func (h *hangingService) FetchPlayerStats(ctx context.Context, searchID string, id logic.RiotID, q gateway.MatchQuery) (*models.PlayerStats, error) {
	h.entered <- struct{}{}
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestSession_CancelledSearchDoesNotBlockOnFullResults(t *testing.T) {
	svc := &hangingService{entered: make(chan struct{}, 1)}
	var buf bytes.Buffer
	s := newSession(svc, &buf, 5)

	// Nobody is reading results any more.
	for len(s.results) < cap(s.results) {
		s.results <- searchResult{searchID: "old"}
	}

	s.handle(context.Background(), "Alpha#EU1")
	<-svc.entered
	s.stopSearch()
	time.Sleep(50 * time.Millisecond)

	for i := cap(s.results); i > 0; i-- {
		<-s.results
	}
	time.Sleep(50 * time.Millisecond)
	if n := len(s.results); n != 0 {
		t.Errorf("cancelled search still delivered %d result(s)", n)
	}
}
