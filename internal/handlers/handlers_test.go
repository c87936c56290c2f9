package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/fetcher"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/handlers"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/league"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/providers/espn"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/query"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/report"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/sports/americanfootball_nfl"
	"github.com/XavierBriggs/fortuna/services/nflstats/internal/testutil"
	"github.com/XavierBriggs/fortuna/services/nflstats/pkg/models"
)

// MockCompiler implements handlers.Compiler for testing
type MockCompiler struct {
	err  error
	last query.Query
}

func (m *MockCompiler) Compile(ctx context.Context, q query.Query) (*report.Report, error) {
	m.last = q
	if m.err != nil {
		return nil, m.err
	}
	return &report.Report{Years: q.Years.String(), Weeks: q.Weeks.String()}, nil
}

// MockBoxScorer implements handlers.BoxScorer for testing
type MockBoxScorer struct {
	err       error
	lastGame  query.Game
	lastEvent string
}

func (m *MockBoxScorer) BoxScore(ctx context.Context, year, week int, team string) (*models.BoxScore, error) {
	m.lastGame = query.Game{Year: year, Week: week, Team: team}
	if m.err != nil {
		return nil, m.err
	}
	return &models.BoxScore{Game: models.ScheduledGame{Year: year, Week: week, HomeTeam: team, AwayTeam: "OAK"}}, nil
}

func (m *MockBoxScorer) EventBoxScore(ctx context.Context, eventID string) (*models.BoxScore, error) {
	m.lastEvent = eventID
	if m.err != nil {
		return nil, m.err
	}
	return &models.BoxScore{Game: models.ScheduledGame{EventID: eventID}}, nil
}

func newServer(c handlers.Compiler) http.Handler {
	return newGameServer(c, &MockBoxScorer{})
}

func newGameServer(c handlers.Compiler, b handlers.BoxScorer) http.Handler {
	return handlers.NewRouter(handlers.NewHandler(c, b, "espn"), zerolog.Nop(), []string{"*"})
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	w := get(t, newServer(&MockCompiler{}), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "espn", body["source"])
}

func TestGetStats_ParsesParams(t *testing.T) {
	mock := &MockCompiler{}

	w := get(t, newServer(mock), "/api/v1/stats?year=2013&week=1-3&team=ind&site=home&cum=true&rate=1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, []string{"IND"}, mock.last.Teams)
	assert.Equal(t, "1-3", mock.last.Weeks.String())
	require.NotNil(t, mock.last.Site)
	assert.Equal(t, models.SiteHome, *mock.last.Site)
	assert.True(t, mock.last.Cumulative)
	assert.True(t, mock.last.Rate)
}

func TestGetStats_EmptyResult(t *testing.T) {
	w := get(t, newServer(&MockCompiler{}), "/api/v1/stats?team=ZZ")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rows": []`)
}

func TestGetStats_InvalidRange(t *testing.T) {
	w := get(t, newServer(&MockCompiler{}), "/api/v1/stats?week=17-16")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Message, "17-16")
}

func TestGetStats_InvalidFormat(t *testing.T) {
	w := get(t, newServer(&MockCompiler{}), "/api/v1/stats?format=xml")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStats_FetchError(t *testing.T) {
	mock := &MockCompiler{err: &fetcher.FetchError{Year: 2013, Week: 1, Err: errors.New("status=503")}}

	w := get(t, newServer(mock), "/api/v1/stats?year=2013&week=1")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "stats source unavailable", decodeError(t, w).Message)
}

func TestGetStats_OtherError(t *testing.T) {
	w := get(t, newServer(&MockCompiler{err: errors.New("boom")}), "/api/v1/stats")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetStats_TextFormat(t *testing.T) {
	src := &testutil.StaticSource{Records: []models.GameStatRecord{testutil.RecordFixture()}}
	l := league.New(src, americanfootball_nfl.New(), zerolog.Nop())

	w := get(t, newServer(l), "/api/v1/stats?year=2013&week=1&team=IND&format=text")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Indianapolis Colts\n"))
}

func TestCORS(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/stats", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()

	newServer(&MockCompiler{}).ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetGame(t *testing.T) {
	mock := &MockBoxScorer{}

	w := get(t, newGameServer(&MockCompiler{}, mock), "/api/v1/games?year=2013&week=1&team=ind")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, query.Game{Year: 2013, Week: 1, Team: "IND"}, mock.lastGame)
	var box models.BoxScore
	require.NoError(t, json.NewDecoder(w.Body).Decode(&box))
	assert.Equal(t, "IND", box.Game.HomeTeam)
}

func TestGetGame_InvalidSelection(t *testing.T) {
	for _, url := range []string{
		"/api/v1/games?year=2013&week=1-2&team=IND",
		"/api/v1/games?year=2013&team=IND",
		"/api/v1/games?year=2013&week=1&team=IND&format=xml",
	} {
		w := get(t, newServer(&MockCompiler{}), url)
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}

func TestGetGame_NoGame(t *testing.T) {
	mock := &MockBoxScorer{err: fmt.Errorf("IND in 2013 week 9: %w", fetcher.ErrNoGame)}

	w := get(t, newGameServer(&MockCompiler{}, mock), "/api/v1/games?year=2013&week=9&team=IND")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, report.NoGameMessage, decodeError(t, w).Message)
}

func TestGetEventGame(t *testing.T) {
	mock := &MockBoxScorer{}

	w := get(t, newGameServer(&MockCompiler{}, mock), "/api/v1/games/330908014")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "330908014", mock.lastEvent)

	w = get(t, newGameServer(&MockCompiler{}, mock), "/api/v1/games/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetEventGame_SourceError(t *testing.T) {
	mock := &MockBoxScorer{err: errors.New("ESPN API error: status=503")}

	w := get(t, newGameServer(&MockCompiler{}, mock), "/api/v1/games/1")

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetGame_TextFromESPN(t *testing.T) {
	game := models.ScheduledGame{EventID: "1", Year: 2013, Week: 1, HomeTeam: "IND", AwayTeam: "OAK", HomeScore: 21, AwayScore: 17, Completed: true}
	line := testutil.RecordFixture().Own
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/football/nfl/scoreboard":
			w.Write(testutil.ScoreboardJSON(game))
		case "/football/nfl/summary":
			w.Write(testutil.GameSummaryJSON(game, line, line))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	games := fetcher.New(americanfootball_nfl.New(), espn.New(espn.WithBaseURL(srv.URL)))

	w := get(t, newGameServer(&MockCompiler{}, games), "/api/v1/games?year=2013&week=1&team=OAK&format=text")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "2013 week 1 OAK 17 @ IND 21\n"))
	assert.Contains(t, w.Body.String(), "OAK Starter")
}
