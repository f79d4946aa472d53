package models

// Account is the result of a Riot ID lookup.
type Account struct {
	PUUID         string `json:"puuid"`
	Region        string `json:"region"`
	AccountLevel  int    `json:"account_level"`
	Name          string `json:"name"`
	Tag           string `json:"tag"`
	Card          Card   `json:"card"`
	LastUpdate    string `json:"last_update"`
	LastUpdateRaw int64  `json:"last_update_raw"`
}

type Card struct {
	ID    string `json:"id"`
	Small string `json:"small"`
	Large string `json:"large"`
	Wide  string `json:"wide"`
}

// MMR bundles current/peak tier and seasonal history.
type MMR struct {
	Account  MMRAccount       `json:"account"`
	Current  CurrentRank      `json:"current"`
	Peak     PeakRank         `json:"peak"`
	Seasonal []SeasonalRecord `json:"seasonal"`
}

type MMRAccount struct {
	Name  string `json:"name"`
	Tag   string `json:"tag"`
	PUUID string `json:"puuid"`
}

type CurrentRank struct {
	Tier                 Tier `json:"tier"`
	RR                   int  `json:"rr"`
	LastChange           int  `json:"last_change"`
	Elo                  int  `json:"elo"`
	GamesNeededForRating int  `json:"games_needed_for_rating"`
}

type PeakRank struct {
	Season Season `json:"season"`
	Tier   Tier   `json:"tier"`
}

// SeasonalRecord is one act's competitive summary.
type SeasonalRecord struct {
	Season  Season `json:"season"`
	Wins    int    `json:"wins"`
	Games   int    `json:"games"`
	EndTier Tier   `json:"end_tier"`
	EndRR   int    `json:"end_rr"`
	ActWins []Tier `json:"act_wins"`
}

// LeaderboardEntry is one ranked player on a regional leaderboard.
type LeaderboardEntry struct {
	PUUID string `json:"puuid"`
	Name  string `json:"name"`
	Tag   string `json:"tag"`
	Rank  int    `json:"leaderboard_rank"`
	RR    int    `json:"rr"`
	Wins  int    `json:"wins"`
	Tier  int    `json:"tier"`
	// Anonymous marks players hidden by the upstream; Name is a placeholder.
	Anonymous bool `json:"anonymous,omitempty"`
}

// PlayerStats is the isolated result set of one search.
type PlayerStats struct {
	SearchID string        `json:"search_id"`
	Account  Account       `json:"account"`
	MMR      *MMR          `json:"mmr"`
	Matches  []MatchRecord `json:"matches"`
}
