package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/supremehato/valorant-vision/internal/gateway"
)

var proxyRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "valorant_proxy_requests_total",
	Help: "Proxied upstream requests by response status",
}, []string{"status"})

// ProxyRequest is the body accepted by the key-injecting proxy.
type ProxyRequest struct {
	Endpoint string `json:"endpoint" validate:"required,startswith=/"`
}

// Proxy forwards an upstream request with the server-held API key
// @Summary Proxy a stats API request
// @Description Attaches the API key and relays the upstream status and body unchanged
// @Tags Proxy
// @Accept json
// @Produce json
// @Param body body ProxyRequest true "Upstream endpoint path"
// @Success 200 {object} map[string]interface{} "Upstream body"
// @Failure 400 {object} map[string]string "Missing or invalid endpoint"
// @Failure 500 {object} map[string]string "Key not configured, malformed body or network failure"
// @Router /proxy [post]
func (h *Handler) Proxy(w http.ResponseWriter, r *http.Request) {
	if h.upstream == nil || !h.upstream.Configured() {
		h.logger.Error("HENRIK_API_KEY is not configured")
		h.proxyError(w, http.StatusInternalServerError, gateway.ErrMissingAPIKey.Error())
		return
	}

	var req ProxyRequest
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			h.proxyError(w, http.StatusBadRequest, "Endpoint is required")
		case errors.As(err, &tooLarge):
			h.proxyError(w, http.StatusRequestEntityTooLarge, "Request body too large")
		default:
			h.logger.Warnw("Malformed proxy body", "error", err)
			h.proxyError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	if err := h.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "startswith" {
			h.proxyError(w, http.StatusBadRequest, "Endpoint must be a path starting with /")
			return
		}
		h.proxyError(w, http.StatusBadRequest, "Endpoint is required")
		return
	}

	h.logger.Infow("Proxying request", "endpoint", req.Endpoint)

	resp, err := h.upstream.Get(r.Context(), req.Endpoint)
	if err != nil {
		h.logger.Errorw("Proxy request failed", "endpoint", req.Endpoint, "error", err)
		h.proxyError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !json.Valid(resp.Body) {
		h.logger.Warnw("Upstream returned a non-JSON body", "endpoint", req.Endpoint, "status", resp.Status)
		h.proxyError(w, resp.Status, "Upstream returned a non-JSON response")
		return
	}

	proxyRequests.WithLabelValues(strconv.Itoa(resp.Status)).Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	w.Write(resp.Body)
}

func (h *Handler) proxyError(w http.ResponseWriter, status int, message string) {
	proxyRequests.WithLabelValues(strconv.Itoa(status)).Inc()
	h.errorResponse(w, status, message)
}
