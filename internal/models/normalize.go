package models

import (
	"time"

	"github.com/samber/lo"
)

// NormalizeMatch converts an upstream match into a MatchRecord. It returns
// false when metadata, players or teams are missing; such matches are
// dropped rather than treated as errors.
func NormalizeMatch(m APIMatch) (MatchRecord, bool) {
	if m.Metadata == nil || m.Players == nil || m.Teams == nil {
		return MatchRecord{}, false
	}

	md := m.Metadata
	rec := MatchRecord{
		Metadata: MatchMetadata{
			MatchID:      md.MatchID,
			Map:          ref(md.Map),
			Queue:        ref(md.Queue),
			StartedAt:    parseTime(md.StartedAt),
			GameLengthMS: int64(md.GameLengthMS),
			Region:       md.Region,
			Season:       season(md.Season),
		},
		Players: make([]ParticipantRecord, 0, len(m.Players)),
		Teams:   make([]TeamResult, 0, len(m.Teams)),
	}

	for _, p := range m.Players {
		rec.Players = append(rec.Players, normalizePlayer(p))
	}
	for _, t := range m.Teams {
		team := TeamResult{TeamID: t.TeamID, Won: t.Won}
		if t.Rounds != nil {
			team.RoundsWon = t.Rounds.Won.Int()
			team.RoundsLost = t.Rounds.Lost.Int()
		}
		rec.Teams = append(rec.Teams, team)
	}
	return rec, true
}

// NormalizeMatches normalizes a page of matches, preserving order and
// dropping malformed entries. The second return value is the number dropped.
func NormalizeMatches(in []APIMatch) ([]MatchRecord, int) {
	out := make([]MatchRecord, 0, len(in))
	for _, m := range in {
		if rec, ok := NormalizeMatch(m); ok {
			out = append(out, rec)
		}
	}
	return out, len(in) - len(out)
}

func normalizePlayer(p APIMatchPlayer) ParticipantRecord {
	rec := ParticipantRecord{
		PUUID:        p.PUUID,
		Name:         p.Name,
		Tag:          p.Tag,
		TeamID:       p.TeamID,
		Agent:        ref(p.Agent),
		Tier:         tier(p.Tier),
		AccountLevel: p.AccountLevel.Int(),
	}
	if s := p.Stats; s != nil {
		rec.Stats = CombatStats{
			Score:     s.Score.Int(),
			Kills:     s.Kills.Int(),
			Deaths:    s.Deaths.Int(),
			Assists:   s.Assists.Int(),
			Headshots: s.Headshots.Int(),
			Bodyshots: s.Bodyshots.Int(),
			Legshots:  s.Legshots.Int(),
		}
		if s.Damage != nil {
			rec.Stats.DamageDealt = s.Damage.Dealt.Int()
			rec.Stats.DamageReceived = s.Damage.Received.Int()
		}
	}
	return rec
}

// NormalizeAccount converts an upstream account payload.
func NormalizeAccount(a APIAccount) Account {
	acc := Account{
		PUUID:         a.PUUID,
		Region:        a.Region,
		AccountLevel:  a.AccountLevel.Int(),
		Name:          a.Name,
		Tag:           a.Tag,
		LastUpdate:    a.LastUpdate,
		LastUpdateRaw: int64(a.LastUpdateRaw),
	}
	if a.Card != nil {
		acc.Card = *a.Card
	}
	return acc
}

// NormalizeMMR converts an upstream MMR payload.
func NormalizeMMR(m APIMMR) MMR {
	out := MMR{Seasonal: make([]SeasonalRecord, 0, len(m.Seasonal))}
	if m.Account != nil {
		out.Account = *m.Account
	}
	if c := m.Current; c != nil {
		out.Current = CurrentRank{
			Tier:                 tier(c.Tier),
			RR:                   c.RR.Int(),
			LastChange:           c.LastChange.Int(),
			Elo:                  c.Elo.Int(),
			GamesNeededForRating: c.GamesNeededForRating.Int(),
		}
	}
	if p := m.Peak; p != nil {
		out.Peak = PeakRank{Season: season(p.Season), Tier: tier(p.Tier)}
	}
	for _, s := range m.Seasonal {
		out.Seasonal = append(out.Seasonal, SeasonalRecord{
			Season:  season(s.Season),
			Wins:    s.Wins.Int(),
			Games:   s.Games.Int(),
			EndTier: tier(s.EndTier),
			EndRR:   s.EndRR.Int(),
			ActWins: lo.Map(s.ActWins, func(t APITier, _ int) Tier {
				return tier(&t)
			}),
		})
	}
	return out
}

// NormalizeLeaderboard converts upstream leaderboard players, defaulting
// missing names to "Anonymous" and missing tiers to Radiant.
func NormalizeLeaderboard(players []APILeaderboardPlayer) []LeaderboardEntry {
	return lo.Map(players, func(p APILeaderboardPlayer, _ int) LeaderboardEntry {
		e := LeaderboardEntry{
			PUUID: p.PUUID,
			Name:  p.Name,
			Tag:   p.Tag,
			Rank:  p.LeaderboardRank.Int(),
			RR:    p.RR.Int(),
			Wins:  p.Wins.Int(),
			Tier:  p.Tier.Int(),
		}
		if e.Name == "" {
			e.Name = "Anonymous"
			e.Anonymous = true
		}
		if e.Tier == 0 {
			e.Tier = 27
		}
		return e
	})
}

func ref(r *APIRef) Ref {
	if r == nil {
		return Ref{}
	}
	return Ref{ID: r.ID, Name: r.Name}
}

func tier(t *APITier) Tier {
	if t == nil {
		return Tier{}
	}
	return Tier{ID: t.ID.Int(), Name: t.Name}
}

func season(s *APISeason) Season {
	if s == nil {
		return Season{}
	}
	return Season{ID: s.ID, Short: s.Short}
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t
	}
	return time.Time{}
}
