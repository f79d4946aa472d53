package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/supremehato/valorant-vision/internal/gateway"
	"github.com/supremehato/valorant-vision/internal/logic"
	"github.com/supremehato/valorant-vision/internal/models"
)

const sessionHelp = `Commands:
  Name#Tag         search a player (cancels the search in flight)
  mode <selector>  filter the current matches (all, competitive, unrated, ...)
  match <id>       show the scoreboard of a listed match
  close            hide the scoreboard
  lb [region]      show a region's leaderboard
  quit             exit`

// searchResult is a finished fetch, tagged with the search that started it.
type searchResult struct {
	searchID string
	id       logic.RiotID
	stats    *models.PlayerStats
	err      error
}

// session is the interactive view: one ViewState, the last accepted result
// and at most one search in flight.
type session struct {
	svc      statsService
	out      io.Writer
	pageSize int

	state   logic.ViewState
	stats   *models.PlayerStats
	cancel  context.CancelFunc
	results chan searchResult
}

func newSession(svc statsService, out io.Writer, pageSize int) *session {
	return &session{
		svc:      svc,
		out:      out,
		pageSize: pageSize,
		state:    logic.NewViewState(),
		results:  make(chan searchResult, 4),
	}
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	fmt.Fprintln(s.out, sessionHelp)
	defer s.stopSearch()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if quit := s.handle(ctx, line); quit {
				return nil
			}
		case r := <-s.results:
			s.deliver(r)
		}
	}
}

// handle applies one input line. It reports whether the session should end.
func (s *session) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(s.out, sessionHelp)
	case "mode":
		s.state = s.state.WithMode(arg)
		s.render()
	case "match":
		s.state = s.state.SelectMatch(arg)
		s.render()
	case "close":
		s.state = s.state.ClearSelection()
		s.render()
	case "lb", "leaderboard":
		if arg != "" {
			if !logic.IsRegion(strings.ToLower(arg)) {
				fmt.Fprintf(s.out, "unknown region %q\n", arg)
				return false
			}
			s.state = s.state.WithRegion(arg)
		}
		s.showLeaderboard(ctx)
	default:
		id, err := logic.ParseRiotID(line)
		if err != nil {
			fmt.Fprintln(s.out, err)
			return false
		}
		s.search(ctx, id)
	}
	return false
}

// search supersedes the search in flight and starts a new one.
func (s *session) search(ctx context.Context, id logic.RiotID) {
	s.stopSearch()
	s.state = s.state.BeginSearch(id)
	s.stats = nil

	searchCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	searchID := s.state.SearchID
	fmt.Fprintf(s.out, "Searching %s...\n", id)

	go func() {
		stats, err := s.svc.FetchPlayerStats(searchCtx, searchID, id, gateway.MatchQuery{Size: s.pageSize})
		select {
		case s.results <- searchResult{searchID: searchID, id: id, stats: stats, err: err}:
		case <-searchCtx.Done():
			// Superseded or the session ended; nobody reads this result.
		}
	}()
}

func (s *session) stopSearch() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// deliver applies a finished search. Results of superseded searches are
// dropped so they never overwrite the current view.
func (s *session) deliver(r searchResult) {
	if !s.state.Accepts(r.searchID) {
		return
	}
	s.stopSearch()
	if r.err != nil {
		fmt.Fprintln(s.out, describeFetchError(r.id, r.err))
		return
	}
	s.stats = r.stats
	s.render()
}

func (s *session) render() {
	if s.stats == nil {
		return
	}
	report, err := logic.BuildReport(s.state, *s.stats)
	if err != nil {
		return
	}
	if err := writeReport(s.out, report); err != nil {
		fmt.Fprintln(s.out, err)
	}
}

func (s *session) showLeaderboard(ctx context.Context) {
	entries, err := s.svc.Leaderboard(ctx, s.state.Region)
	if err != nil {
		fmt.Fprintln(s.out, describeLeaderboardError(s.state.Region, err))
		return
	}
	if err := writeLeaderboard(s.out, s.state.Region, logic.BuildLeaderboard(entries)); err != nil {
		fmt.Fprintln(s.out, err)
	}
}
