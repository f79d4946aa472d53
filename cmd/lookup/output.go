package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/supremehato/valorant-vision/internal/gateway"
	"github.com/supremehato/valorant-vision/internal/logic"
)

func describeFetchError(id logic.RiotID, err error) error {
	if errors.Is(err, gateway.ErrNotFound) {
		return fmt.Errorf("player %q not found, check the name and tag", id.String())
	}
	return fmt.Errorf("failed to fetch player data: %w", err)
}

func describeLeaderboardError(region string, err error) error {
	if errors.Is(err, gateway.ErrNotFound) {
		return fmt.Errorf("leaderboard data not available for %s", region)
	}
	return fmt.Errorf("failed to fetch leaderboard: %w", err)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeReport(w io.Writer, r logic.PlayerReport) error {
	fmt.Fprintf(w, "%s#%s  level %d  region %s\n", r.Account.Name, r.Account.Tag, r.Account.AccountLevel, r.Account.Region)

	if r.Rank == nil {
		fmt.Fprintln(w, "Rank: unavailable")
	} else {
		fmt.Fprintf(w, "Rank: %s %dRR (%+d)", r.Rank.Current.Name, r.Rank.RR, r.Rank.LastChange)
		if r.Rank.Peak != nil {
			fmt.Fprintf(w, "  peak %s %s", r.Rank.Peak.Name, r.Rank.PeakSeason)
		}
		fmt.Fprintln(w)
		if s := r.Rank.Season; s != nil {
			fmt.Fprintf(w, "Act %s: %d/%d wins (%s%%)  act rank %s\n", s.Season, s.Wins, s.Games, s.WinRate, s.ActRank.Name)
		}
	}

	t := r.Totals
	fmt.Fprintf(w, "\nMode %s: %d of %d matches  win rate %d%%  KDA %s  K/D %s  HS %s%%  avg score %d\n",
		r.Mode, len(r.Matches), r.MatchesTotal, t.WinRate, t.KDA, t.KD, t.HeadshotPercent, t.AvgScore)

	if len(r.Matches) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return nil
	}

	fmt.Fprintln(w)
	tw := newTable(w)
	fmt.Fprintln(tw, "RESULT\tSCORE\tMAP\tMODE\tAGENT\tK/D/A\tKDA\tHS%\tMIN\tMATCH")
	for _, m := range r.Matches {
		result := "DEFEAT"
		if m.Won {
			result = "VICTORY"
		}
		fmt.Fprintf(tw, "%s\t%d-%d\t%s\t%s\t%s\t%d/%d/%d\t%s\t%d\t%d\t%s\n",
			result, m.RoundsWon, m.RoundsLost, m.Map, m.Mode, m.Agent,
			m.Kills, m.Deaths, m.Assists, m.KDA, m.HeadshotPercent, m.DurationMinutes, m.MatchID)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Agents) > 0 {
		fmt.Fprintln(w)
		tw = newTable(w)
		fmt.Fprintln(tw, "AGENT\tGAMES\tWIN%\tKDA\tAVG SCORE")
		for _, a := range r.Agents {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%d\n", a.Name, a.Games, a.WinRate, a.KDA, a.AvgScore)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(r.Maps) > 0 {
		fmt.Fprintln(w)
		tw = newTable(w)
		fmt.Fprintln(tw, "MAP\tGAMES\tW\tL\tWIN%")
		for _, m := range r.Maps {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", m.Name, m.Games, m.Wins, m.Losses, m.WinRate)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if r.SelectedMatch != nil {
		return writeMatchDetail(w, r.SelectedMatch)
	}
	return nil
}

func writeMatchDetail(w io.Writer, d *logic.MatchDetail) error {
	fmt.Fprintf(w, "\n%s  %s  %s  %d min\n", d.MatchID, d.Map, d.Mode, d.DurationMinutes)
	for _, team := range d.Teams {
		fmt.Fprintf(w, "\n%s  %d rounds\n", team.TeamID, team.RoundsWon)
		tw := newTable(w)
		fmt.Fprintln(tw, "PLAYER\tAGENT\tSCORE\tK/D/A\tHS%\t")
		for _, p := range team.Players {
			marker := ""
			if p.IsMVP {
				marker = "MVP"
			}
			if p.IsCurrentPlayer {
				marker += " *"
			}
			fmt.Fprintf(tw, "%s#%s\t%s\t%d\t%d/%d/%d\t%d\t%s\n",
				p.Name, p.Tag, p.Agent, p.Score, p.Kills, p.Deaths, p.Assists, p.HeadshotPercent, marker)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func writeLeaderboard(w io.Writer, region string, rows []logic.LeaderboardRow) error {
	fmt.Fprintf(w, "Leaderboard %s (%d players)\n\n", region, len(rows))
	if len(rows) == 0 {
		return nil
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "#\tPLAYER\tTIER\tRR\tWINS")
	for _, r := range rows {
		name := r.Name
		if r.Searchable {
			name += "#" + r.Tag
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\n", r.Rank, name, r.RankIcon.Name, r.RR, r.Wins)
	}
	return tw.Flush()
}
