package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/festy23/league_manager/internal/database/migrate"
	"github.com/festy23/league_manager/internal/league/model"
)

func setupIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("MIGRATIONS_PATH", "")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrate.Migrate(db))
	return db
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	clock  *clockwork.FakeClock
}

func setupServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)
	db := setupIntegrationDB(t)
	clock := clockwork.NewFakeClockAt(time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))

	r := gin.New()
	RegisterRoutesWithClock(r, db, zaptest.NewLogger(t).Sugar(), clock)
	return &testServer{t: t, router: r, clock: clock}
}

func (s *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()
	buf := &bytes.Buffer{}
	if body != nil {
		require.NoError(s.t, json.NewEncoder(buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, buf)
	require.NoError(s.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) create(title, description string) model.League {
	s.t.Helper()
	w := s.do(http.MethodPost, "/leagues", map[string]string{
		"league_title":       title,
		"league_description": description,
	})
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	var league model.League
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &league))
	s.clock.Advance(time.Second)
	return league
}

func (s *testServer) list() []model.League {
	s.t.Helper()
	w := s.do(http.MethodGet, "/leagues", nil)
	require.Equal(s.t, http.StatusOK, w.Code)
	var leagues []model.League
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &leagues))
	return leagues
}

func (s *testServer) get(id string) []model.League {
	s.t.Helper()
	w := s.do(http.MethodGet, "/leagues/"+id, nil)
	require.Equal(s.t, http.StatusOK, w.Code)
	var leagues []model.League
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &leagues))
	return leagues
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp model.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Message
}

func TestIntegration_Welcome(t *testing.T) {
	s := setupServer(t)

	w := s.do(http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>Welcome to Web Server</h1>", w.Body.String())
}

func TestIntegration_CreateThenList(t *testing.T) {
	s := setupServer(t)

	created := s.create("NBA", "Basketball")

	leagues := s.list()
	require.Len(t, leagues, 1)
	assert.Equal(t, created.ID, leagues[0].ID)
	assert.Equal(t, "NBA", leagues[0].Title)
	assert.Equal(t, "Basketball", leagues[0].Description)
	assert.Equal(t, "", leagues[0].Members)
}

func TestIntegration_CreateMissingFields(t *testing.T) {
	s := setupServer(t)

	w := s.do(http.MethodPost, "/leagues", map[string]string{"league_title": "NBA"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "league_description is required", message(t, w))
	assert.Empty(t, s.list())
}

func TestIntegration_InviteThenGet(t *testing.T) {
	s := setupServer(t)
	league := s.create("NBA", "Basketball")

	w := s.do(http.MethodPost, "/leagues/invite/"+league.ID, map[string]string{"email": "x@y.com"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Invitation sent successfully", message(t, w))
	found := s.get(league.ID)
	require.Len(t, found, 1)
	assert.Equal(t, "x@y.com", found[0].Members)
}

func TestIntegration_InviteOverwritesMembers(t *testing.T) {
	s := setupServer(t)
	league := s.create("NBA", "Basketball")

	s.do(http.MethodPost, "/leagues/invite/"+league.ID, map[string]string{"email": "x@y.com"})
	s.do(http.MethodPost, "/leagues/invite/"+league.ID, map[string]string{"email": "z@y.com"})

	found := s.get(league.ID)
	require.Len(t, found, 1)
	assert.Equal(t, "z@y.com", found[0].Members)
}

func TestIntegration_InviteUnknownLeague(t *testing.T) {
	s := setupServer(t)

	w := s.do(http.MethodPost, "/leagues/invite/"+uuid.NewString(), map[string]string{"email": "x@y.com"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "League not found", message(t, w))
	assert.Empty(t, s.list())
}

func TestIntegration_DeleteThenGet(t *testing.T) {
	s := setupServer(t)
	league := s.create("NBA", "Basketball")

	w := s.do(http.MethodDelete, "/leagues/"+league.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "League deleted", message(t, w))

	assert.Empty(t, s.get(league.ID))

	w = s.do(http.MethodDelete, "/leagues/"+league.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "League not found", message(t, w))
}

func TestIntegration_CountAfterCreatesAndDeletes(t *testing.T) {
	s := setupServer(t)
	var ids []string
	for i := 0; i < 6; i++ {
		ids = append(ids, s.create("League", "Description").ID)
	}
	for _, id := range ids[:4] {
		w := s.do(http.MethodDelete, "/leagues/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	leagues := s.list()
	require.Len(t, leagues, 2)
	assert.Equal(t, ids[4], leagues[0].ID)
	assert.Equal(t, ids[5], leagues[1].ID)
}

func TestIntegration_UpdatePartial(t *testing.T) {
	s := setupServer(t)
	league := s.create("NBA", "Basketball")

	w := s.do(http.MethodPut, "/leagues/"+league.ID, map[string]string{"members": "a@b.co"})

	require.Equal(t, http.StatusOK, w.Code)
	var updated model.League
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, league.ID, updated.ID)
	assert.Equal(t, "NBA", updated.Title)
	assert.Equal(t, "Basketball", updated.Description)
	assert.Equal(t, "a@b.co", updated.Members)
}

func TestIntegration_UpdateErrors(t *testing.T) {
	s := setupServer(t)

	w := s.do(http.MethodPut, "/leagues/"+uuid.NewString(), map[string]string{"league_title": "NHL"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodPut, "/leagues/42", map[string]string{"league_title": "NHL"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, s.list())
}

func TestIntegration_GetMalformedID(t *testing.T) {
	s := setupServer(t)
	s.create("NBA", "Basketball")

	assert.Empty(t, s.get("not-an-id"))
}
