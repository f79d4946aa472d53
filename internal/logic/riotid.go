package logic

import (
	"errors"
	"strings"
)

// ErrInvalidRiotID is returned for anything that is not "Name#Tag".
var ErrInvalidRiotID = errors.New("please enter a valid Riot ID (e.g., Player#TAG)")

// RiotID is a parsed Name#Tag identifier.
type RiotID struct {
	Name string `json:"name"`
	Tag  string `json:"tag"`
}

func (id RiotID) String() string {
	return id.Name + "#" + id.Tag
}

// ParseRiotID splits "Name#Tag". Exactly one '#' is allowed and both halves
// must be non-empty; surrounding whitespace is ignored.
func ParseRiotID(s string) (RiotID, error) {
	parts := strings.Split(strings.TrimSpace(s), "#")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RiotID{}, ErrInvalidRiotID
	}
	return RiotID{Name: parts[0], Tag: parts[1]}, nil
}
