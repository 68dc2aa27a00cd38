package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifepath/internal/game"
	"lifepath/internal/model"
	"lifepath/internal/save"
	"lifepath/internal/sim"
	"lifepath/internal/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	mux    *http.ServeMux
	repo   *save.MemoryRepo
	events *telemetry.MemoryRepository
	built  int
}

func newTestServer(t *testing.T, cacheSize int) *testServer {
	t.Helper()
	ts := &testServer{
		mux:    http.NewServeMux(),
		repo:   save.NewMemoryRepo(nil),
		events: telemetry.NewMemoryRepository(),
	}
	sessions, err := NewSessions(cacheSize, func(session string) *game.Engine {
		ts.built++
		return game.New(game.Options{
			Env:    sim.Deterministic(sim.NewSource(42)),
			Repo:   ts.repo,
			Slot:   session,
			Events: ts.events,
		})
	})
	require.NoError(t, err)
	NewHandler(sessions, ts.events, nil).Register(ts.mux)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if session != "" {
		req.Header.Set("X-Session-Id", session)
	}
	rec := httptest.NewRecorder()
	ts.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestState_NotStarted(t *testing.T) {
	ts := newTestServer(t, 8)
	rec := ts.do(t, http.MethodGet, "/api/life/state", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[StateResponse](t, rec)
	assert.Equal(t, model.PhaseNotStarted, resp.Phase)
	assert.Nil(t, resp.Character)
}

func TestStartAndAgeUp(t *testing.T) {
	ts := newTestServer(t, 8)

	rec := ts.do(t, http.MethodPost, "/api/life/start", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	started := decode[StateResponse](t, rec)
	require.NotNil(t, started.Character)
	assert.Equal(t, 0, started.Character.Age)
	require.Len(t, started.Events, 1)
	assert.Equal(t, "Born!", started.Events[0].Title)

	rec = ts.do(t, http.MethodPost, "/api/life/age-up", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[AgeUpResponse](t, rec).Character.Age)

	rec = ts.do(t, http.MethodPost, "/api/life/age-up", "", AgeUpRequest{Years: 3})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[AgeUpResponse](t, rec)
	assert.Equal(t, 3, resp.Years)
	assert.Equal(t, 4, resp.Character.Age)

	rec = ts.do(t, http.MethodPost, "/api/life/age-up", "", AgeUpRequest{Years: 50})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAgeUp_NoLife(t *testing.T) {
	ts := newTestServer(t, 8)
	rec := ts.do(t, http.MethodPost, "/api/life/age-up", "", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "no active life")
}

func TestSessionsAreIsolated(t *testing.T) {
	ts := newTestServer(t, 8)
	require.Equal(t, http.StatusCreated, ts.do(t, http.MethodPost, "/api/life/start", "alice", nil).Code)

	other := decode[StateResponse](t, ts.do(t, http.MethodGet, "/api/life/state", "bob", nil))
	assert.Equal(t, model.PhaseNotStarted, other.Phase)

	mine := decode[StateResponse](t, ts.do(t, http.MethodGet, "/api/life/state", "alice", nil))
	assert.Equal(t, model.PhaseAlive, mine.Phase)
}

func TestSessions_EvictedEngineReloadsFromSave(t *testing.T) {
	ts := newTestServer(t, 1)
	started := decode[StateResponse](t, ts.do(t, http.MethodPost, "/api/life/start", "alice", nil))
	ts.do(t, http.MethodGet, "/api/life/state", "bob", nil)

	again := decode[StateResponse](t, ts.do(t, http.MethodGet, "/api/life/state", "alice", nil))
	require.NotNil(t, again.Character)
	assert.Equal(t, started.Character.ID, again.Character.ID)
	assert.Equal(t, 3, ts.built)
}

func TestCommand(t *testing.T) {
	ts := newTestServer(t, 8)

	rec := ts.do(t, http.MethodPost, "/api/life/cmd", "", CommandRequest{Cmd: "relationship.start"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	ts.do(t, http.MethodPost, "/api/life/start", "", nil)

	tests := []struct {
		name string
		req  CommandRequest
		code int
	}{
		{"unknown command", CommandRequest{Cmd: "life.fly"}, http.StatusBadRequest},
		{"missing argument", CommandRequest{Cmd: "job.apply"}, http.StatusBadRequest},
		{"too young to date", CommandRequest{Cmd: "relationship.start"}, http.StatusConflict},
		{"unknown job", CommandRequest{Cmd: "job.apply", Args: map[string]any{"jobId": "astronaut"}}, http.StatusNotFound},
		{"cannot afford surgery", CommandRequest{Cmd: "hospital.visit", Args: map[string]any{"kind": "surgery"}}, http.StatusPaymentRequired},
		{"unknown family member", CommandRequest{Cmd: "family.interact", Args: map[string]any{"memberId": "x", "action": "talk"}}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/api/life/cmd", "", tt.req)
			assert.Equal(t, tt.code, rec.Code)
			resp := decode[CommandResponse](t, rec)
			assert.False(t, resp.OK)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestCommand_RejectedApplicationIsOK(t *testing.T) {
	ts := newTestServer(t, 8)
	ts.do(t, http.MethodPost, "/api/life/start", "", nil)

	rec := ts.do(t, http.MethodPost, "/api/life/cmd", "", CommandRequest{Cmd: "job.apply", Args: map[string]any{"jobId": "ceo"}})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[CommandResponse](t, rec)
	assert.True(t, resp.OK)
	require.NotNil(t, resp.Event)
	assert.Equal(t, "Job Application Rejected", resp.Event.Title)
	assert.False(t, resp.Character.Career.HasJob)
}

func TestCommand_FamilyTalk(t *testing.T) {
	ts := newTestServer(t, 8)
	started := decode[StateResponse](t, ts.do(t, http.MethodPost, "/api/life/start", "", nil))
	mother := started.Character.Family.Mother

	rec := ts.do(t, http.MethodPost, "/api/life/cmd", "", CommandRequest{
		Cmd:  "family.interact",
		Args: map[string]any{"memberId": mother.ID, "action": "talk"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[CommandResponse](t, rec)
	require.NotNil(t, resp.Event)
	assert.Equal(t, "Talked with "+mother.Name, resp.Event.Title)
}

func TestCatalog(t *testing.T) {
	ts := newTestServer(t, 8)
	rec := ts.do(t, http.MethodGet, "/api/catalog/jobs", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	jobs := decode[[]JobEntry](t, rec)
	assert.Len(t, jobs, 10)
	for _, j := range jobs {
		assert.False(t, j.Available, j.ID)
	}

	for _, kind := range []string{"assets", "crimes", "majors"} {
		assert.Equal(t, http.StatusOK, ts.do(t, http.MethodGet, "/api/catalog/"+kind, "", nil).Code, kind)
	}
	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/api/catalog/pets", "", nil).Code)
}

func TestSettingsAndTab(t *testing.T) {
	ts := newTestServer(t, 8)

	on := true
	rec := ts.do(t, http.MethodPatch, "/api/life/settings", "", SettingsPatch{PregnancyEnabled: &on})
	require.Equal(t, http.StatusOK, rec.Code)
	s := decode[model.Settings](t, rec)
	assert.True(t, s.PregnancyEnabled)
	assert.True(t, s.AutoSave)

	saved, ok, err := ts.repo.Load(context.Background(), DefaultSession)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, saved.Settings.PregnancyEnabled)

	assert.Equal(t, http.StatusOK, ts.do(t, http.MethodPatch, "/api/life/tab", "", map[string]any{"tab": "career"}).Code)
	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodPatch, "/api/life/tab", "", map[string]any{"tab": "casino"}).Code)
	state := decode[StateResponse](t, ts.do(t, http.MethodGet, "/api/life/state", "", nil))
	assert.Equal(t, model.TabCareer, state.CurrentTab)
}

func TestLegacy(t *testing.T) {
	ts := newTestServer(t, 8)
	assert.Equal(t, http.StatusConflict, ts.do(t, http.MethodGet, "/api/life/legacy", "", nil).Code)

	ts.do(t, http.MethodPost, "/api/life/start", "", nil)
	rec := ts.do(t, http.MethodGet, "/api/life/legacy", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[LegacyResponse](t, rec)
	assert.NotEmpty(t, resp.Description)
	assert.NotNil(t, resp.Timeline)
}

func TestTelemetryStats(t *testing.T) {
	ts := newTestServer(t, 8)
	ts.do(t, http.MethodPost, "/api/life/start", "", nil)
	ts.do(t, http.MethodPost, "/api/life/age-up", "", nil)

	rec := ts.do(t, http.MethodGet, "/api/telemetry/stats", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[telemetry.Stats](t, rec)
	assert.Equal(t, 1, stats.LivesStarted)
	assert.Equal(t, 1, stats.YearsSimulated)

	assert.Equal(t, http.StatusBadRequest, ts.do(t, http.MethodGet, "/api/telemetry/stats?since=yesterday", "", nil).Code)
}

func TestSessionID(t *testing.T) {
	assert.Equal(t, DefaultSession, SessionID("  "))
	assert.Equal(t, "abc", SessionID(" abc "))
	assert.Len(t, SessionID(string(make([]byte, 100))), maxSessionID)
}
