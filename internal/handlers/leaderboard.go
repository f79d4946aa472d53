package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/supremehato/valorant-vision/internal/gateway"
	"github.com/supremehato/valorant-vision/internal/logic"
)

// GetLeaderboard returns the top ranked players of a region
// @Summary Regional leaderboard
// @Description Top 100 ranked players of a region with rank badges and highlight bands
// @Tags Leaderboards
// @Produce json
// @Param region path string true "Region (eu, na, ap, kr, br, latam)"
// @Success 200 {object} map[string]interface{} "Leaderboard"
// @Failure 400 {object} map[string]string "Unknown region"
// @Failure 404 {object} map[string]string "Leaderboard not available"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /leaderboard/{region} [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	region := strings.ToLower(chi.URLParam(r, "region"))
	if region == "" {
		region = logic.DefaultRegion
	}
	if !logic.IsRegion(region) {
		h.errorResponse(w, http.StatusBadRequest, "Unknown region")
		return
	}

	entries, err := h.stats.Leaderboard(ctx, region)
	if err != nil {
		if errors.Is(err, gateway.ErrNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Leaderboard data not available for this region")
			return
		}
		h.logger.Errorw("Failed to fetch leaderboard", "region", region, "error", err)
		h.errorResponse(w, http.StatusBadGateway, "Failed to fetch leaderboard. Please try again later.")
		return
	}

	rows := logic.BuildLeaderboard(entries)
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"region":  region,
		"players": rows,
		"total":   len(rows),
	})
}

// GetRegions lists the selectable regions
// @Summary Regions
// @Tags Meta
// @Produce json
// @Success 200 {array} logic.Region
// @Router /regions [get]
func (h *Handler) GetRegions(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, logic.Regions)
}

// GetModes lists the match-mode filters
// @Summary Match modes
// @Tags Meta
// @Produce json
// @Success 200 {array} string
// @Router /modes [get]
func (h *Handler) GetModes(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, logic.Modes)
}
