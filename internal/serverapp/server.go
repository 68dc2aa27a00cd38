package serverapp

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"lifepath/internal/api"
	"lifepath/internal/config"
	"lifepath/internal/game"
	"lifepath/internal/httpmw"
	"lifepath/internal/model"
	"lifepath/internal/sim"
	"lifepath/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	Config   *config.Config
	Repo     game.Repository
	Logger   *slog.Logger
	Registry *prometheus.Registry
	// Source overrides the random source of every session; nil uses the
	// configured seed, or wall-clock seeding when that is zero.
	Source func(session string) sim.Source
}

func NewHandler(opts Options) (http.Handler, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if opts.Repo == nil {
		return nil, errors.New("save repository is required")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
		opts.Registry.MustRegister(prometheus.NewGoCollector(), prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))
	}
	cfg := opts.Config

	metrics, err := telemetry.NewMetrics("lifepath", opts.Registry)
	if err != nil {
		return nil, err
	}
	events := telemetry.NewMemoryRepository()

	settings := model.DefaultSettings()
	settings.AutoSave = cfg.Game.AutoSaveEnabled()
	settings.PregnancyEnabled = cfg.Game.PregnancyEnabled

	sessions, err := api.NewSessions(cfg.Server.SessionCacheSize, func(session string) *game.Engine {
		env := sim.NewEnv(sessionSource(opts, session))
		env.Policy = cfg.Policy
		return game.New(game.Options{
			Env:      env,
			Repo:     opts.Repo,
			Slot:     session,
			Logger:   opts.Logger,
			Metrics:  metrics,
			Events:   events,
			Settings: &settings,
		})
	})
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "lifepath",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if _, _, err := opts.Repo.Load(ctx, api.DefaultSession); err != nil {
			opts.Logger.Warn("readiness check failed", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{
				"ok":    false,
				"error": "save storage unavailable",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":       true,
			"service":  "lifepath",
			"sessions": sessions.Len(),
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))

	api.NewHandler(sessions, events, opts.Logger).Register(mux)

	return httpmw.Chain(
		httpmw.WithRoute(mux),
		httpmw.WithAccessLog(opts.Logger, metrics),
		httpmw.WithRequestID,
		httpmw.WithRecover(opts.Logger),
		httpmw.WithTracing("lifepath/http"),
	), nil
}

// sessionSource seeds each session apart from the others so a fixed seed
// still gives every session its own life.
func sessionSource(opts Options, session string) sim.Source {
	if opts.Source != nil {
		return opts.Source(session)
	}
	seed := opts.Config.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	for _, b := range []byte(session) {
		seed = seed*31 + int64(b)
	}
	return sim.NewSource(seed)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
