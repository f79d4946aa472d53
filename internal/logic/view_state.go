package logic

import (
	"strings"

	"github.com/google/uuid"
)

// ViewState is the client-selected view: region, match mode, the selected
// match and the search currently in flight. Transitions return a new value
// and never touch the receiver.
type ViewState struct {
	Region          string `json:"region"`
	Mode            string `json:"mode"`
	SelectedMatchID string `json:"selected_match_id,omitempty"`
	SearchID        string `json:"search_id,omitempty"`
	Query           RiotID `json:"query"`
}

// NewViewState returns the initial state.
func NewViewState() ViewState {
	return ViewState{Region: DefaultRegion, Mode: ModeAll}
}

// WithRegion switches the leaderboard region. Unknown regions are ignored.
func (s ViewState) WithRegion(region string) ViewState {
	region = strings.ToLower(strings.TrimSpace(region))
	if IsRegion(region) {
		s.Region = region
	}
	return s
}

// WithMode switches the match-mode filter. An empty selector means all.
func (s ViewState) WithMode(mode string) ViewState {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = ModeAll
	}
	s.Mode = mode
	return s
}

func (s ViewState) SelectMatch(matchID string) ViewState {
	s.SelectedMatchID = matchID
	return s
}

func (s ViewState) ClearSelection() ViewState {
	s.SelectedMatchID = ""
	return s
}

// BeginSearch starts a new search. The fresh search id supersedes any
// search still in flight; the selected match belongs to the old result set
// and is cleared.
func (s ViewState) BeginSearch(id RiotID) ViewState {
	s.Query = id
	s.SearchID = uuid.NewString()
	s.SelectedMatchID = ""
	return s
}

// Accepts reports whether a result produced for searchID belongs to the
// current search. Results of superseded searches must be discarded.
func (s ViewState) Accepts(searchID string) bool {
	return s.SearchID != "" && searchID == s.SearchID
}
