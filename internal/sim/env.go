package sim

import (
	"math"
	"strconv"
	"sync"
	"time"

	"lifepath/internal/model"

	"github.com/google/uuid"
)

// Env is what every rule needs from the outside world: draws, time, ids
// and the probability policy.
type Env struct {
	Rand   Source
	Clock  Clock
	NewID  func() string
	Policy Policy
}

// NewEnv builds an Env over src with wall-clock time and uuid ids.
func NewEnv(src Source) Env {
	return Env{
		Rand:   src,
		Clock:  RealClock{},
		NewID:  uuid.NewString,
		Policy: DefaultPolicy(),
	}
}

// Deterministic builds an Env with a fixed clock and sequential ids, for
// replays and tests.
func Deterministic(src Source) Env {
	var mu sync.Mutex
	n := 0
	return Env{
		Rand:  src,
		Clock: NewFakeClock(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)),
		NewID: func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return "id-" + strconv.Itoa(n)
		},
		Policy: DefaultPolicy(),
	}
}

// WithDefaults fills unset collaborators.
func (e Env) WithDefaults() Env {
	if e.Rand == nil {
		e.Rand = NewSource(time.Now().UnixNano())
	}
	if e.Clock == nil {
		e.Clock = RealClock{}
	}
	if e.NewID == nil {
		e.NewID = uuid.NewString
	}
	e.Policy = e.Policy.Fill()
	return e
}

// Float is one draw in [0,1).
func (e Env) Float() float64 {
	v := e.Rand.Float64()
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}

// Chance draws once and reports whether the draw fell below p.
func (e Env) Chance(p float64) bool {
	return e.Float() < p
}

// Intn returns a value in [0,n). n <= 0 returns 0 without drawing.
func (e Env) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(e.Float() * float64(n))
}

// IntRange returns a value in [lo,hi].
func (e Env) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + e.Intn(hi-lo+1)
}

// FloatRange returns a value in [lo,hi).
func (e Env) FloatRange(lo, hi float64) float64 {
	return lo + e.Float()*(hi-lo)
}

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[T any](e Env, items []T) T {
	return items[e.Intn(len(items))]
}

func (e Env) Now() time.Time {
	return e.Clock.Now()
}

// Event materializes a new log entry at the given age.
func (e Env) Event(age int, title, description string, changes model.Delta, typ model.EventType, cat model.Category) model.Event {
	return model.Event{
		ID:          e.NewID(),
		Age:         age,
		Title:       title,
		Description: description,
		StatChanges: changes.Clone(),
		Timestamp:   e.Now(),
		Type:        typ,
		Category:    cat,
	}
}
