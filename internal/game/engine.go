// Package game owns one life: its state, the age-up pipeline and every
// player action, persisted through a Repository.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"lifepath/internal/character"
	"lifepath/internal/model"
	"lifepath/internal/sim"
	"lifepath/internal/telemetry"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// MaxYearsPerCall bounds AgeYears.
const MaxYearsPerCall = 10

type Options struct {
	Env      sim.Env
	Repo     Repository
	Slot     string
	Logger   *slog.Logger
	Metrics  *telemetry.Metrics
	Events   telemetry.Repository
	Tracer   trace.Tracer
	Settings *model.Settings
}

type Engine struct {
	mu      sync.Mutex
	env     sim.Env
	repo    Repository
	slot    string
	log     *slog.Logger
	metrics *telemetry.Metrics
	events  telemetry.Repository
	tracer  trace.Tracer
	state   model.GameState
}

func New(opts Options) *Engine {
	e := &Engine{
		env:     opts.Env.WithDefaults(),
		repo:    opts.Repo,
		slot:    opts.Slot,
		log:     opts.Logger,
		metrics: opts.Metrics,
		events:  opts.Events,
		tracer:  opts.Tracer,
		state:   model.NewGameState(),
	}
	if e.slot == "" {
		e.slot = "default"
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.tracer == nil {
		e.tracer = otel.Tracer("lifepath/game")
	}
	if opts.Settings != nil {
		e.state.Settings = *opts.Settings
	}
	e.log = e.log.With("slot", e.slot)
	return e
}

// Load restores the slot from the repository. A missing or unreadable
// save leaves the engine in the not-started state.
func (e *Engine) Load(ctx context.Context) error {
	if e.repo == nil {
		return nil
	}
	s, ok, err := e.repo.Load(ctx, e.slot)
	if err != nil {
		return fmt.Errorf("load %s: %w", e.slot, err)
	}
	if !ok {
		return nil
	}
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
	e.log.Info("save loaded", "phase", s.Phase(), "events", len(s.Events))
	return nil
}

// State returns a copy of the current state.
func (e *Engine) State() model.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Snapshot(e.state)
}

func (e *Engine) Env() sim.Env {
	return e.env
}

// persistLocked saves the state when autosave is on. force saves anyway.
func (e *Engine) persistLocked(ctx context.Context, force bool) error {
	if e.repo == nil || (!force && !e.state.Settings.AutoSave) {
		return nil
	}
	if err := e.repo.Save(ctx, e.slot, e.state); err != nil {
		e.log.Error("save failed", "err", err)
		return fmt.Errorf("save %s: %w", e.slot, err)
	}
	return nil
}

// Save writes the state regardless of the autosave setting.
func (e *Engine) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.persistLocked(ctx, true)
}

func (e *Engine) telemetry(kind telemetry.EventType, meta telemetry.EventMetadata) {
	if e.events == nil {
		return
	}
	if meta == nil {
		meta = telemetry.EventMetadata{}
	}
	meta["slot"] = e.slot
	if err := e.events.RecordEvent(kind, meta); err != nil {
		e.log.Warn("telemetry record failed", "type", kind, "err", err)
	}
}

// Start begins a new life, replacing any current one. Settings survive.
func (e *Engine) Start(ctx context.Context) (model.GameState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, born := character.Generate(e.env)
	e.state.Character = &c
	e.state.Events = []model.Event{born}
	e.state.IsPlaying = true
	e.state.CurrentTab = model.TabStats

	e.metrics.LifeStarted()
	e.telemetry(telemetry.EventLifeStarted, telemetry.EventMetadata{"character_id": c.ID, "country": c.Country})
	e.log.Info("life started", "character_id", c.ID, "name", c.Name)

	return Snapshot(e.state), e.persistLocked(ctx, false)
}

// Reset drops the current life and keeps the settings.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	settings := e.state.Settings
	e.state = model.NewGameState()
	e.state.Settings = settings
	e.telemetry(telemetry.EventLifeReset, nil)
	return e.persistLocked(ctx, true)
}

func (e *Engine) living() (model.Character, error) {
	c := e.state.Character
	if c == nil {
		return model.Character{}, model.ErrNoCharacter
	}
	if !c.IsAlive {
		return model.Character{}, model.ErrDeceased
	}
	return *c, nil
}

// AgeUp advances the life by one year.
func (e *Engine) AgeUp(ctx context.Context) (Year, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ageUpLocked(ctx)
}

// AgeYears ages up to n years, stopping early at death.
func (e *Engine) AgeYears(ctx context.Context, n int) ([]Year, error) {
	if n < 1 || n > MaxYearsPerCall {
		return nil, fmt.Errorf("%w: years must be between 1 and %d", model.ErrPrecondition, MaxYearsPerCall)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	var years []Year
	for range n {
		y, err := e.ageUpLocked(ctx)
		if err != nil {
			return years, err
		}
		years = append(years, y)
		if y.Died {
			break
		}
	}
	return years, nil
}

func (e *Engine) ageUpLocked(ctx context.Context) (Year, error) {
	c, err := e.living()
	if err != nil {
		return Year{}, err
	}

	ctx, span := e.tracer.Start(ctx, "game.AgeUp", trace.WithAttributes(
		attribute.String("lifepath.slot", e.slot),
		attribute.Int("lifepath.age", c.Age+1),
	))
	defer span.End()

	y := Advance(e.env, e.state.Settings, c, e.state.Events)
	e.state.Character = &y.Character
	e.state.Events = append(e.state.Events, y.Events...)

	e.metrics.YearSimulated()
	e.telemetry(telemetry.EventYearAged, telemetry.EventMetadata{"age": y.Character.Age, "events": len(y.Events)})
	for _, ev := range y.Events {
		if ev.Category == model.CategoryAchievement {
			e.telemetry(telemetry.EventAchievement, telemetry.EventMetadata{"achievement": ev.Title})
		}
	}
	span.SetAttributes(attribute.Int("lifepath.events", len(y.Events)))

	if y.Died {
		e.state.IsPlaying = false
		cause := y.Character.DeathCause
		e.metrics.Death(cause)
		e.telemetry(telemetry.EventDeath, telemetry.EventMetadata{"cause": cause, "age": y.Character.Age})
		e.log.Info("life ended", "character_id", y.Character.ID, "age", y.Character.Age, "cause", cause,
			"legacy_score", y.Character.LegacyScore)
		span.SetAttributes(attribute.String("lifepath.death_cause", cause))
	}

	if err := e.persistLocked(ctx, false); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return y, err
	}
	y.Character = y.Character.Clone()
	return y, nil
}

// UpdateSettings replaces the settings and always persists them.
func (e *Engine) UpdateSettings(ctx context.Context, s model.Settings) (model.Settings, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Settings = s
	return s, e.persistLocked(ctx, true)
}

var ErrUnknownTab = fmt.Errorf("%w: unknown tab", model.ErrPrecondition)

func (e *Engine) SetTab(ctx context.Context, tab model.Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownTab, tab)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.CurrentTab = tab
	return e.persistLocked(ctx, false)
}

// Outcome is what a player action produced.
type Outcome struct {
	Character model.Character
	Event     *model.Event
}

// rule is one action against a living character. A rule that fails with a
// feedback event returns the event alongside the error.
type rule func(env sim.Env, c model.Character) (model.Character, *model.Event, error)

// errTurnedDown marks feedback that is not a failure: the event is logged,
// the character is kept and the caller sees no error.
var errTurnedDown = errors.New("turned down")

// act runs a rule under the lock, commits its result and records the
// outcome. Feedback events from failed rules are logged to the life; the
// character is left as it was.
func (e *Engine) act(ctx context.Context, name string, allowedInPrison bool, r rule) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.living()
	if err != nil {
		e.metrics.Action(name, telemetry.OutcomeRejected)
		return Outcome{}, err
	}
	if c.IsInPrison && !allowedInPrison {
		e.metrics.Action(name, telemetry.OutcomeRejected)
		return Outcome{Character: c.Clone()}, model.ErrInPrison
	}

	next, ev, err := r(e.env, c)
	outcome := telemetry.OutcomeOK
	switch {
	case errors.Is(err, errTurnedDown):
		outcome, err, next = telemetry.OutcomeRejected, nil, c
	case errors.Is(err, model.ErrInsufficientFunds):
		outcome, next = telemetry.OutcomeFailed, c
	case err != nil:
		outcome, next = telemetry.OutcomeRejected, c
	}
	e.metrics.Action(name, outcome)
	e.telemetry(telemetry.EventAction, telemetry.EventMetadata{"action": name, "outcome": outcome})
	e.log.Debug("action", "action", name, "outcome", outcome, "err", err)

	if err != nil && ev == nil {
		return Outcome{Character: c.Clone()}, err
	}
	e.state.Character = &next
	if ev != nil {
		e.state.Events = append(e.state.Events, *ev)
	}
	res := Outcome{Character: next.Clone(), Event: ev}
	if perr := e.persistLocked(ctx, false); perr != nil {
		return res, errors.Join(err, perr)
	}
	return res, err
}
