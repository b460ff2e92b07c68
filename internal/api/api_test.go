package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meur/arena/internal/catalog"
	"github.com/meur/arena/internal/config"
	"github.com/meur/arena/internal/models"
)

// listBody mirrors ListResponse with filters decoded loosely
type listBody[T any] struct {
	Items        []T                `json:"items"`
	TotalCount   int                `json:"total_count"`
	CatalogTotal int                `json:"catalog_total"`
	CatalogID    string             `json:"catalog_id"`
	View         string             `json:"view"`
	Filters      map[string]*string `json:"filters"`
	Suggestions  []string           `json:"suggestions"`
}

func testConfig() *config.Config {
	return &config.Config{
		CORSAllowOrigins: []string{"http://localhost:*"},
		SuggestionLimit:  3,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	set, err := catalog.NewSet(catalog.Default())
	require.NoError(t, err)
	return New(set, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rec.Code)
	body := decode[ErrorResponse](t, rec)
	assert.Equal(t, code, body.Error.Code)
	assert.NotEmpty(t, body.Error.Message)
}

// region Listing tests

func TestListTournaments_Default(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := get(t, s, "/api/tournaments")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode[listBody[models.Tournament]](t, rec)
	assert.Equal(t, 5, body.TotalCount)
	assert.Equal(t, 5, body.CatalogTotal)
	assert.Equal(t, s.catalogs.Tournaments.ID(), body.CatalogID)
	assert.Equal(t, "t-fifa24-championship", body.Items[0].ID)
	assert.Nil(t, body.Filters["game"])
	assert.Empty(t, body.Suggestions)
}

func TestListTournaments_SearchAndGame(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := get(t, s, "/api/tournaments?search=CUP&game=FIFA+24")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[listBody[models.Tournament]](t, rec)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "FIFA 24 Weekend Cup", body.Items[0].Name)
	require.NotNil(t, body.Filters["game"])
	assert.Equal(t, "FIFA 24", *body.Filters["game"])
	assert.Equal(t, "CUP", *body.Filters["search"])
}

func TestListTournaments_StatusAliases(t *testing.T) {
	s := newTestServer(t, testConfig())

	for _, status := range []string{"live", "Ongoing"} {
		rec := get(t, s, "/api/tournaments?status="+status)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decode[listBody[models.Tournament]](t, rec)
		require.Len(t, body.Items, 1, status)
		assert.Equal(t, "COD Warzone Battle", body.Items[0].Name)
		assert.Equal(t, "live", *body.Filters["status"])
	}

	rec := get(t, s, "/api/tournaments?status=all")
	body := decode[listBody[models.Tournament]](t, rec)
	assert.Len(t, body.Items, 5)
}

func TestListTournaments_InvalidStatus(t *testing.T) {
	s := newTestServer(t, testConfig())
	assertErrorCode(t, get(t, s, "/api/tournaments?status=postponed"), http.StatusBadRequest, "INVALID_STATUS")
}

func TestList_UnsupportedFilter(t *testing.T) {
	s := newTestServer(t, testConfig())
	assertErrorCode(t, get(t, s, "/api/tournaments?country=Ghana"), http.StatusBadRequest, "UNSUPPORTED_FILTER")
	assertErrorCode(t, get(t, s, "/api/teams?status=live"), http.StatusBadRequest, "UNSUPPORTED_FILTER")
}

func TestListPlayers_GameMembership(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := get(t, s, "/api/players?game=COD+Warzone")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[listBody[models.Player]](t, rec)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "p-1", body.Items[0].ID)
	assert.Equal(t, "p-3", body.Items[1].ID)
}

func TestListTeams_Country(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := get(t, s, "/api/teams?country=Kenya")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[listBody[models.Team]](t, rec)
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Savanna Wolves", body.Items[0].Name)
}

func TestList_EmptyResultCarriesSuggestions(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := get(t, s, "/api/tournaments?search=legnds")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
	body := decode[listBody[models.Tournament]](t, rec)
	assert.Equal(t, 0, body.TotalCount)
	assert.Equal(t, []string{"Mobile Legends Cup"}, body.Suggestions)
}

// endregion

// region Directory tests

func TestDirectory_DefaultsToPlayers(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := get(t, s, "/api/directory")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[listBody[models.Player]](t, rec)
	assert.Equal(t, "players", body.View)
	assert.Len(t, body.Items, 4)
}

func TestDirectory_TeamsView(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := get(t, s, "/api/directory?view=teams&search=phenix")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[listBody[models.Team]](t, rec)
	assert.Equal(t, "teams", body.View)
	assert.Empty(t, body.Items)
	assert.Equal(t, []string{"Team Phoenix"}, body.Suggestions)
	assert.Equal(t, s.catalogs.Teams.ID(), body.CatalogID)
}

func TestDirectory_InvalidView(t *testing.T) {
	s := newTestServer(t, testConfig())
	assertErrorCode(t, get(t, s, "/api/directory?view=coaches"), http.StatusBadRequest, "INVALID_VIEW")
}

func TestDirectory_StatusIsUnsupported(t *testing.T) {
	s := newTestServer(t, testConfig())
	assertErrorCode(t, get(t, s, "/api/directory?view=teams&status=live"), http.StatusBadRequest, "UNSUPPORTED_FILTER")
}

// endregion

// region Filters and details tests

func TestFilters_Players(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := get(t, s, "/api/players/filters")

	require.Equal(t, http.StatusOK, rec.Code)
	configs := decode[[]models.FilterConfig](t, rec)
	require.Len(t, configs, 2)
	assert.Equal(t, models.FilterMultiSelect, configs[0].Type)
	assert.Equal(t, []string{"Nigeria", "Ghana", "Egypt"}, configs[1].Options)
}

func TestFilters_Tournaments(t *testing.T) {
	s := newTestServer(t, testConfig())
	configs := decode[[]models.FilterConfig](t, get(t, s, "/api/tournaments/filters"))
	require.Len(t, configs, 2)
	assert.Equal(t, []string{"upcoming", "live", "completed"}, configs[1].Options)
}

func TestDetails(t *testing.T) {
	s := newTestServer(t, testConfig())

	rec := get(t, s, "/api/players/p-2")
	require.Equal(t, http.StatusOK, rec.Code)
	player := decode[models.Player](t, rec)
	assert.Equal(t, "EsportsKing", player.Username)

	rec = get(t, s, "/api/tournaments/t-mlbb-cup")
	require.Equal(t, http.StatusOK, rec.Code)
	tournament := decode[models.Tournament](t, rec)
	assert.Equal(t, models.StatusUpcoming, tournament.Status)

	rec = get(t, s, "/api/teams/team-4")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Cape Titans", decode[models.Team](t, rec).Name)
}

func TestDetails_NotFound(t *testing.T) {
	s := newTestServer(t, testConfig())
	assertErrorCode(t, get(t, s, "/api/teams/nope"), http.StatusNotFound, "NOT_FOUND")
}

// endregion

// region Middleware tests

func TestHealth(t *testing.T) {
	s := newTestServer(t, testConfig())
	rec := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	set, err := catalog.NewSet(catalog.Default())
	require.NoError(t, err)
	s := New(set, testConfig(), slog.New(slog.NewTextHandler(&logs, nil)))

	req := httptest.NewRequest(http.MethodGet, "/api/teams/nope", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	s.ServeHTTP(httptest.NewRecorder(), req)

	line := logs.String()
	assert.Contains(t, line, "request_id=abc-123")
	assert.Contains(t, line, "status=404")
	assert.Contains(t, line, "path=/api/teams/nope")
}

func TestCORS_AllowedOrigin(t *testing.T) {
	s := newTestServer(t, testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	s := newTestServer(t, cfg)

	assert.Equal(t, http.StatusOK, get(t, s, "/api/teams").Code)

	rec := get(t, s, "/api/teams")
	assertErrorCode(t, rec, http.StatusTooManyRequests, "RATE_LIMITED")
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimit_IgnoresForwardedHeaders(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	s := newTestServer(t, cfg)

	codes := make([]int, 0, 3)
	for _, forwarded := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		s.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_RejectedResponseCarriesCORS(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequests = 1
	cfg.RateLimitWindow = time.Minute
	s := newTestServer(t, cfg)

	get(t, s, "/api/teams")
	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestIPLimiter_EvictsIdleVisitors(t *testing.T) {
	l := newIPLimiter(10, time.Minute)
	clock := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	l.lastSweep = clock

	l.getLimiter("198.51.100.1")
	l.getLimiter("198.51.100.2")
	assert.Len(t, l.visitors, 2)

	clock = clock.Add(30 * time.Second)
	l.getLimiter("198.51.100.2")
	assert.Len(t, l.visitors, 2, "no sweep before a full window")

	clock = clock.Add(40 * time.Second)
	l.getLimiter("198.51.100.3")
	assert.Len(t, l.visitors, 2)
	assert.NotContains(t, l.visitors, "198.51.100.1")
	assert.Contains(t, l.visitors, "198.51.100.2")
	assert.Contains(t, l.visitors, "198.51.100.3")
}

func TestStaticFrontend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Arena</h1>"), 0o644))

	cfg := testConfig()
	cfg.StaticDir = dir
	s := newTestServer(t, cfg)

	rec := get(t, s, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Arena")

	// Client-side detail routes fall back to index.html
	rec = get(t, s, "/players/p-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Arena")

	// API routes still win over the file server
	assert.Equal(t, http.StatusOK, get(t, s, "/api/teams").Code)
}

func TestStaticFrontend_DirectoriesAreNotListed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Arena</h1>"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log('arena')"), 0o644))

	cfg := testConfig()
	cfg.StaticDir = dir
	s := newTestServer(t, cfg)

	rec := get(t, s, "/assets/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<h1>Arena</h1>")
	assert.NotContains(t, rec.Body.String(), "app.js")

	rec = get(t, s, "/assets/app.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "console.log")
}

// endregion
