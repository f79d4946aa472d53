package models

import "encoding/json"

// Upstream payload shapes. Every nested object is optional: the stats API
// omits or nulls sections for partial data, so these types only exist to be
// normalized into the records in match.go and account.go.

// Envelope wraps every upstream response body.
type Envelope[T any] struct {
	Status int             `json:"status"`
	Data   T               `json:"data"`
	Errors json.RawMessage `json:"errors,omitempty"`
}

// HasErrors reports whether the upstream attached an errors array.
func (e Envelope[T]) HasErrors() bool {
	return len(e.Errors) > 0 && string(e.Errors) != "null"
}

type APIRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type APITier struct {
	ID   FlexInt `json:"id"`
	Name string  `json:"name"`
}

type APISeason struct {
	ID    string `json:"id"`
	Short string `json:"short"`
}

type APIMatch struct {
	Metadata *APIMatchMetadata `json:"metadata"`
	Players  []APIMatchPlayer  `json:"players"`
	Teams    []APIMatchTeam    `json:"teams"`
}

type APIMatchMetadata struct {
	MatchID      string     `json:"match_id"`
	Map          *APIRef    `json:"map"`
	Queue        *APIRef    `json:"queue"`
	StartedAt    string     `json:"started_at"`
	GameLengthMS FlexInt    `json:"game_length_in_ms"`
	Region       string     `json:"region"`
	Season       *APISeason `json:"season"`
}

type APIMatchPlayer struct {
	PUUID        string          `json:"puuid"`
	Name         string          `json:"name"`
	Tag          string          `json:"tag"`
	TeamID       string          `json:"team_id"`
	Agent        *APIRef         `json:"agent"`
	Stats        *APIPlayerStats `json:"stats"`
	Tier         *APITier        `json:"tier"`
	AccountLevel FlexInt         `json:"account_level"`
}

type APIPlayerStats struct {
	Score     FlexInt `json:"score"`
	Kills     FlexInt `json:"kills"`
	Deaths    FlexInt `json:"deaths"`
	Assists   FlexInt `json:"assists"`
	Headshots FlexInt `json:"headshots"`
	Bodyshots FlexInt `json:"bodyshots"`
	Legshots  FlexInt `json:"legshots"`
	Damage    *struct {
		Dealt    FlexInt `json:"dealt"`
		Received FlexInt `json:"received"`
	} `json:"damage"`
}

type APIMatchTeam struct {
	TeamID string `json:"team_id"`
	Rounds *struct {
		Won  FlexInt `json:"won"`
		Lost FlexInt `json:"lost"`
	} `json:"rounds"`
	Won bool `json:"won"`
}

type APIAccount struct {
	PUUID         string  `json:"puuid"`
	Region        string  `json:"region"`
	AccountLevel  FlexInt `json:"account_level"`
	Name          string  `json:"name"`
	Tag           string  `json:"tag"`
	Card          *Card   `json:"card"`
	LastUpdate    string  `json:"last_update"`
	LastUpdateRaw FlexInt `json:"last_update_raw"`
}

type APIMMR struct {
	Account *MMRAccount `json:"account"`
	Current *struct {
		Tier                 *APITier `json:"tier"`
		RR                   FlexInt  `json:"rr"`
		LastChange           FlexInt  `json:"last_change"`
		Elo                  FlexInt  `json:"elo"`
		GamesNeededForRating FlexInt  `json:"games_needed_for_rating"`
	} `json:"current"`
	Peak *struct {
		Season *APISeason `json:"season"`
		Tier   *APITier   `json:"tier"`
	} `json:"peak"`
	Seasonal []APISeasonal `json:"seasonal"`
}

type APISeasonal struct {
	Season  *APISeason `json:"season"`
	Wins    FlexInt    `json:"wins"`
	Games   FlexInt    `json:"games"`
	EndTier *APITier   `json:"end_tier"`
	EndRR   FlexInt    `json:"end_rr"`
	ActWins []APITier  `json:"act_wins"`
}

// APILeaderboardPlayer is one leaderboard row. Numeric fields arrive as
// numbers or strings depending on the upstream version.
type APILeaderboardPlayer struct {
	PUUID           string  `json:"puuid"`
	Name            string  `json:"name"`
	Tag             string  `json:"tag"`
	LeaderboardRank FlexInt `json:"leaderboard_rank"`
	RR              FlexInt `json:"rr"`
	Wins            FlexInt `json:"wins"`
	Tier            FlexInt `json:"tier"`
}
