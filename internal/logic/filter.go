package logic

import (
	"strings"

	"github.com/samber/lo"

	"github.com/supremehato/valorant-vision/internal/models"
)

// ModeAll is the identity mode selector.
const ModeAll = "all"

// Modes lists the selectors offered to clients. Any token is accepted by
// FilterByMode; this list only feeds request validation and dropdowns.
var Modes = []string{
	ModeAll,
	"competitive",
	"unrated",
	"swiftplay",
	"spikerush",
	"deathmatch",
	"teamdeathmatch",
	"premier",
	"escalation",
	"replication",
	"snowball",
	"custom",
}

// FilterByMode keeps the matches whose queue id or queue name contains the
// mode token, case-insensitively. Order is preserved; "all" and "" return
// the input unchanged.
func FilterByMode(matches []models.MatchRecord, mode string) []models.MatchRecord {
	token := strings.ToLower(strings.TrimSpace(mode))
	if token == "" || token == ModeAll {
		return matches
	}
	return lo.Filter(matches, func(m models.MatchRecord, _ int) bool {
		return strings.Contains(strings.ToLower(m.Metadata.Queue.ID), token) ||
			strings.Contains(strings.ToLower(m.Metadata.Queue.Name), token)
	})
}
