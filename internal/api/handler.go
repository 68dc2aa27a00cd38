// Package api serves the life simulation as JSON over HTTP. Each session
// (X-Session-Id header) plays its own life in its own save slot.
package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"lifepath/internal/assets"
	"lifepath/internal/game"
	"lifepath/internal/legacy"
	"lifepath/internal/model"
	"lifepath/internal/telemetry"
)

type Handler struct {
	sessions *Sessions
	events   telemetry.Repository
	log      *slog.Logger
}

func NewHandler(sessions *Sessions, events telemetry.Repository, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{sessions: sessions, events: events, log: logger}
}

// Register mounts every API route on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/life/state", h.State)
	mux.HandleFunc("POST /api/life/start", h.Start)
	mux.HandleFunc("POST /api/life/age-up", h.AgeUp)
	mux.HandleFunc("POST /api/life/reset", h.Reset)
	mux.HandleFunc("POST /api/life/cmd", h.Command)
	mux.HandleFunc("GET /api/life/settings", h.Settings)
	mux.HandleFunc("PATCH /api/life/settings", h.PatchSettings)
	mux.HandleFunc("PATCH /api/life/tab", h.PatchTab)
	mux.HandleFunc("GET /api/life/legacy", h.Legacy)
	mux.HandleFunc("GET /api/catalog/{kind}", h.Catalog)
	mux.HandleFunc("GET /api/telemetry/stats", h.TelemetryStats)
}

func (h *Handler) engine(w http.ResponseWriter, r *http.Request) (*game.Engine, bool) {
	e, err := h.sessions.Get(r.Context(), r.Header.Get("X-Session-Id"))
	if err != nil {
		h.log.Error("session load failed", "session_id", SessionID(r.Header.Get("X-Session-Id")), "err", err)
		writeErr(w, http.StatusInternalServerError, "session unavailable")
		return nil, false
	}
	return e, true
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		h.log.Error("request failed", "err", err)
	}
	writeErr(w, code, err.Error())
}

// StateResponse is the response for GET /api/life/state.
type StateResponse struct {
	model.GameState
	Phase    model.Phase `json:"phase"`
	NetWorth int         `json:"netWorth"`
}

func stateResponse(s model.GameState) StateResponse {
	resp := StateResponse{GameState: s, Phase: s.Phase()}
	if s.Character != nil {
		resp.NetWorth = assets.NetWorth(*s.Character)
	}
	return resp
}

// GET /api/life/state
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(e.State()))
}

// POST /api/life/start
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w, r)
	if !ok {
		return
	}
	s, err := e.Start(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stateResponse(s))
}

// AgeUpRequest is the optional body of POST /api/life/age-up.
type AgeUpRequest struct {
	Years int `json:"years"`
}

// AgeUpResponse is the response for POST /api/life/age-up.
type AgeUpResponse struct {
	Character *model.Character `json:"character"`
	Events    []model.Event    `json:"events"`
	Died      bool             `json:"died"`
	Years     int              `json:"years"`
}

// POST /api/life/age-up
func (h *Handler) AgeUp(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w, r)
	if !ok {
		return
	}
	req := AgeUpRequest{Years: 1}
	if err := decodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Years == 0 {
		req.Years = 1
	}

	years, err := e.AgeYears(r.Context(), req.Years)
	if err != nil && len(years) == 0 {
		h.fail(w, err)
		return
	}
	resp := AgeUpResponse{Events: []model.Event{}, Years: len(years)}
	for _, y := range years {
		resp.Events = append(resp.Events, y.Events...)
		resp.Died = resp.Died || y.Died
	}
	resp.Character = e.State().Character
	if err != nil {
		h.log.Warn("age-up stopped early", "years", len(years), "err", err)
	}
	writeJSON(w, http.StatusOK, resp)
}

// POST /api/life/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w, r)
	if !ok {
		return
	}
	if err := e.Reset(r.Context()); err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(e.State()))
}

// GET /api/life/settings
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, e.State().Settings)
}

// SettingsPatch carries only the flags to change.
type SettingsPatch struct {
	DarkMode         *bool `json:"darkMode"`
	AutoSave         *bool `json:"autoSave"`
	Notifications    *bool `json:"notifications"`
	PregnancyEnabled *bool `json:"pregnancyEnabled"`
}

func (p SettingsPatch) apply(s model.Settings) model.Settings {
	set := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	set(&s.DarkMode, p.DarkMode)
	set(&s.AutoSave, p.AutoSave)
	set(&s.Notifications, p.Notifications)
	set(&s.PregnancyEnabled, p.PregnancyEnabled)
	return s
}

// PATCH /api/life/settings
func (h *Handler) PatchSettings(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w, r)
	if !ok {
		return
	}
	var patch SettingsPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	s, err := e.UpdateSettings(r.Context(), patch.apply(e.State().Settings))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// PATCH /api/life/tab
func (h *Handler) PatchTab(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w, r)
	if !ok {
		return
	}
	var req struct {
		Tab model.Tab `json:"tab"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := e.SetTab(r.Context(), req.Tab); err != nil {
		if errors.Is(err, game.ErrUnknownTab) {
			writeErr(w, http.StatusBadRequest, err.Error())
			return
		}
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"currentTab": req.Tab})
}

// LegacyResponse is the response for GET /api/life/legacy.
type LegacyResponse struct {
	Score       int                `json:"score"`
	Description string             `json:"description"`
	Timeline    []model.Event      `json:"timeline"`
	Summary     *model.LifeSummary `json:"summary,omitempty"`
	Will        model.Will         `json:"will"`
}

// GET /api/life/legacy
func (h *Handler) Legacy(w http.ResponseWriter, r *http.Request) {
	e, ok := h.engine(w, r)
	if !ok {
		return
	}
	s := e.State()
	if s.Character == nil {
		h.fail(w, model.ErrNoCharacter)
		return
	}
	c := *s.Character
	score := c.LegacyScore
	if c.IsAlive {
		score = legacy.Score(c, s.Events)
	}
	timeline := legacy.Timeline(s.Events)
	if timeline == nil {
		timeline = []model.Event{}
	}
	writeJSON(w, http.StatusOK, LegacyResponse{
		Score:       score,
		Description: legacy.Describe(score),
		Timeline:    timeline,
		Summary:     c.LifeSummary,
		Will:        c.Will,
	})
}

// GET /api/telemetry/stats?since=RFC3339
func (h *Handler) TelemetryStats(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		writeErr(w, http.StatusNotFound, "telemetry disabled")
		return
	}
	since := time.Time{}
	if raw := r.URL.Query().Get("since"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "since must be RFC3339")
			return
		}
		since = t
	}
	events, err := h.events.GetEvents(since, nil)
	if err != nil {
		h.fail(w, err)
		return
	}
	stats, err := telemetry.CalculateStats(events, since)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
