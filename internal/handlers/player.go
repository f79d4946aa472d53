package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/supremehato/valorant-vision/internal/gateway"
	"github.com/supremehato/valorant-vision/internal/logic"
)

// playerQuery holds the optional query parameters of a player search.
type playerQuery struct {
	Mode  string
	Size  int    `validate:"min=1,max=100"`
	Match string `validate:"omitempty,max=128"`
}

// GetPlayer searches a player by Riot ID and returns the full page model
// @Summary Player statistics
// @Description Account, rank, match history and per-agent, per-map and overall stats for one Riot ID
// @Tags Players
// @Produce json
// @Param name path string true "Riot name"
// @Param tag path string true "Riot tag"
// @Param mode query string false "Match-mode filter" default(all)
// @Param size query int false "Match-history page size (1-100)" default(5)
// @Param match query string false "Selected match id"
// @Success 200 {object} logic.PlayerReport
// @Failure 400 {object} map[string]string "Invalid Riot ID or query"
// @Failure 404 {object} map[string]string "Player not found"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /players/{name}/{tag} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name, _ := url.PathUnescape(chi.URLParam(r, "name"))
	tag, _ := url.PathUnescape(chi.URLParam(r, "tag"))

	id, err := logic.ParseRiotID(name + "#" + tag)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Please enter a valid Riot ID (Name#Tag)")
		return
	}

	q, err := h.parsePlayerQuery(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	state := logic.NewViewState().
		WithMode(q.Mode).
		BeginSearch(id).
		SelectMatch(q.Match)

	stats, err := h.stats.FetchPlayerStats(ctx, state.SearchID, id, gateway.MatchQuery{Size: q.Size})
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound,
				fmt.Sprintf("Player %q not found. Please check the name and tag.", id.String()))
			return
		}
		h.logger.Errorw("Player search failed", "player", id.String(), "searchId", state.SearchID, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Failed to fetch player data. Please try again later.")
		return
	}

	report, err := logic.BuildReport(state, *stats)
	if err != nil {
		h.logger.Errorw("Discarding result of another search", "player", id.String(), "searchId", state.SearchID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.jsonResponse(w, http.StatusOK, report)
}

func (h *Handler) parsePlayerQuery(r *http.Request) (playerQuery, error) {
	values := r.URL.Query()
	q := playerQuery{
		Mode:  strings.ToLower(strings.TrimSpace(values.Get("mode"))),
		Size:  h.pageSize,
		Match: values.Get("match"),
	}

	if s := values.Get("size"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil {
			return q, errors.New("size must be a number")
		}
		q.Size = size
	}

	if err := h.validator.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "Match" {
			return q, errors.New("match id is too long")
		}
		return q, errors.New("size must be between 1 and 100")
	}
	if q.Mode != "" {
		if err := h.validator.Var(q.Mode, "oneof="+strings.Join(logic.Modes, " ")); err != nil {
			return q, fmt.Errorf("unknown mode %q", q.Mode)
		}
	}
	return q, nil
}
