package telemetry

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Action outcomes used as metric labels.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics exports life simulation counters to Prometheus. A nil *Metrics
// records nothing.
type Metrics struct {
	livesStarted   prometheus.Counter
	yearsSimulated prometheus.Counter
	deaths         *prometheus.CounterVec
	actions        *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	if namespace == "" {
		namespace = "lifepath"
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		livesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lives_started_total",
			Help:      "Lives started.",
		}),
		yearsSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "years_simulated_total",
			Help:      "Age-up ticks completed.",
		}),
		deaths: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deaths_total",
			Help:      "Lives ended, by cause.",
		}, []string{"cause"}),
		actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Player actions, by name and outcome.",
		}, []string{"action", "outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	collectors := []prometheus.Collector{m.livesStarted, m.yearsSimulated, m.deaths, m.actions, m.httpDuration}
	for i, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				collectors[i] = are.ExistingCollector
				continue
			}
			return nil, fmt.Errorf("register lifepath metric: %w", err)
		}
	}
	// Reuse collectors already registered by an earlier instance.
	m.livesStarted = collectors[0].(prometheus.Counter)
	m.yearsSimulated = collectors[1].(prometheus.Counter)
	m.deaths = collectors[2].(*prometheus.CounterVec)
	m.actions = collectors[3].(*prometheus.CounterVec)
	m.httpDuration = collectors[4].(*prometheus.HistogramVec)
	return m, nil
}

func (m *Metrics) LifeStarted() {
	if m == nil {
		return
	}
	m.livesStarted.Inc()
}

func (m *Metrics) YearSimulated() {
	if m == nil {
		return
	}
	m.yearsSimulated.Inc()
}

func (m *Metrics) Death(cause string) {
	if m == nil {
		return
	}
	m.deaths.WithLabelValues(cause).Inc()
}

func (m *Metrics) Action(name, outcome string) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(name, outcome).Inc()
}

func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, fmt.Sprint(status)).Observe(d.Seconds())
}
