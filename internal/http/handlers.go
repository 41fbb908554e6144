// Package http exposes the read-only JSON surface over cached refresh
// results. Handlers never trigger a refresh; the poller owns the pipeline.
package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	apppicks "github.com/preston-bernstein/watchability-service/internal/app/picks"
)

// PickSource serves the most recent refresh outcome per category.
type PickSource interface {
	Result(category string) (apppicks.RefreshResult, bool)
}

// ReadyChecker reports whether the background refresh loop is healthy.
type ReadyChecker interface {
	IsReady() bool
}

// Handler wires HTTP routes to the pick service.
type Handler struct {
	source     PickSource
	ready      ReadyChecker
	categories map[string]struct{}
	logger     *slog.Logger
	now        func() time.Time
}

// NewHandler constructs a Handler with defaults.
func NewHandler(source PickSource, ready ReadyChecker, categories []string, logger *slog.Logger) *Handler {
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[strings.ToLower(c)] = struct{}{}
	}
	return &Handler{
		source:     source,
		ready:      ready,
		categories: known,
		logger:     logger,
		now:        time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports readiness based on the refresh loop's recent health.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.ready != nil && !h.ready.IsReady() {
		h.writeError(w, nethttp.StatusServiceUnavailable, "refresh loop not ready")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// Picks routes /picks/{category} and /picks/{category}/events.
func (h *Handler) Picks(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/picks/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	category := strings.ToLower(parts[0])
	if category == "" {
		h.writeError(w, nethttp.StatusBadRequest, "missing category")
		return
	}
	if _, ok := h.categories[category]; !ok {
		h.writeError(w, nethttp.StatusNotFound, "unknown category")
		return
	}

	switch {
	case len(parts) == 1:
		h.pickToday(w, category)
	case len(parts) == 2 && parts[1] == "events":
		h.eventsToday(w, category)
	default:
		h.writeError(w, nethttp.StatusNotFound, "not found")
	}
}

func (h *Handler) pickToday(w nethttp.ResponseWriter, category string) {
	result, ok := h.source.Result(category)
	if !ok {
		h.writeError(w, nethttp.StatusServiceUnavailable, "no refresh completed yet")
		return
	}

	payload := pickResponse{
		Category:    result.Category,
		GeneratedAt: result.GeneratedAt,
		Pick:        result.Pick,
		Alternates:  result.Alternates,
		Confidence:  result.Confidence,
		Metadata:    result.Metadata,
		SourceError: result.SourceError,
	}
	h.writeJSON(w, nethttp.StatusOK, payload)
}

func (h *Handler) eventsToday(w nethttp.ResponseWriter, category string) {
	result, ok := h.source.Result(category)
	if !ok {
		h.writeError(w, nethttp.StatusServiceUnavailable, "no refresh completed yet")
		return
	}

	payload := eventsResponse{
		Category:    result.Category,
		GeneratedAt: result.GeneratedAt,
		Count:       len(result.Ranked),
		Events:      result.Ranked,
	}
	h.writeJSON(w, nethttp.StatusOK, payload)
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
