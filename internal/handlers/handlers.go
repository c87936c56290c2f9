package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/fetcher"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/query"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/report"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// Compiler builds a report for a query
type Compiler interface {
	Compile(ctx context.Context, q query.Query) (*report.Report, error)
}

// BoxScorer looks up the player drill-down of a game
type BoxScorer interface {
	BoxScore(ctx context.Context, year, week int, team string) (*models.BoxScore, error)
	EventBoxScore(ctx context.Context, eventID string) (*models.BoxScore, error)
}

// Handler contains dependencies for HTTP handlers
type Handler struct {
	compiler Compiler
	games    BoxScorer
	source   string
	timeout  time.Duration
}

// NewHandler creates a new handler. source names the configured game source
// and is reported by the health check.
func NewHandler(compiler Compiler, games BoxScorer, source string) *Handler {
	return &Handler{
		compiler: compiler,
		games:    games,
		source:   source,
		timeout:  2 * time.Minute,
	}
}

// HealthCheck returns the health status of the service
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "nflstats",
		"source":    h.source,
	})
}

// GetStats runs a query and returns the report
// Query params: year, week, team, site, cum, rate, format (json|text)
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	params := r.URL.Query()

	format, ok := parseFormat(w, r)
	if !ok {
		return
	}

	q, err := query.Parse(query.Raw{
		Years:      params.Get("year"),
		Weeks:      params.Get("week"),
		Teams:      params.Get("team"),
		Site:       params.Get("site"),
		Cumulative: parseBoolParam(r, "cum"),
		Rate:       parseBoolParam(r, "rate"),
	})
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	rep, err := h.compiler.Compile(ctx, q)
	if err != nil {
		var fetchErr *fetcher.FetchError
		if errors.As(err, &fetchErr) {
			respondError(w, r, http.StatusBadGateway, "stats source unavailable", err)
			return
		}
		respondError(w, r, http.StatusInternalServerError, "failed to compile stats", err)
		return
	}

	if format == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := report.Render(w, rep); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("error writing table")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := report.RenderJSON(w, rep); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error encoding response")
	}
}

// GetGame returns the box score of one team's game in one week
// Query params: year, week, team (one value each), format (json|text)
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(w, r)
	if !ok {
		return
	}

	params := r.URL.Query()
	g, err := query.ParseGame(query.Raw{
		Years: params.Get("year"),
		Weeks: params.Get("week"),
		Teams: params.Get("team"),
	})
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	box, err := h.games.BoxScore(ctx, g.Year, g.Week, g.Team)
	h.respondBoxScore(w, r, format, box, err)
}

// GetEventGame returns the box score of one ESPN event
func (h *Handler) GetEventGame(w http.ResponseWriter, r *http.Request) {
	format, ok := parseFormat(w, r)
	if !ok {
		return
	}

	eventID, err := query.ParseEventID(chi.URLParam(r, "eventID"))
	if err != nil {
		respondError(w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	box, err := h.games.EventBoxScore(ctx, eventID)
	h.respondBoxScore(w, r, format, box, err)
}

func (h *Handler) respondBoxScore(w http.ResponseWriter, r *http.Request, format string, box *models.BoxScore, err error) {
	if errors.Is(err, fetcher.ErrNoGame) {
		respondError(w, r, http.StatusNotFound, report.NoGameMessage, nil)
		return
	}
	if err != nil {
		respondError(w, r, http.StatusBadGateway, "stats source unavailable", err)
		return
	}

	if format == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := report.RenderBoxScore(w, box); err != nil {
			hlog.FromRequest(r).Error().Err(err).Msg("error writing box score")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := report.RenderBoxScoreJSON(w, box); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error encoding response")
	}
}

// parseFormat reads the format param, json by default. It writes a 400 and
// returns false for anything else.
func parseFormat(w http.ResponseWriter, r *http.Request) (string, bool) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "text" {
		respondError(w, r, http.StatusBadRequest, "format must be json or text", nil)
		return "", false
	}
	return format, true
}

func parseBoolParam(r *http.Request, param string) bool {
	value, err := strconv.ParseBool(r.URL.Query().Get(param))
	if err != nil {
		return false
	}
	return value
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error encoding response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	}

	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg(message)
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("error encoding error response")
	}
}
