package metrics

import (
	"fmt"
	"time"
)

// TurnMetric is the latency telemetry of one turn.
type TurnMetric struct {
	Turn          int
	Duration      time.Duration
	MaxDuration   time.Duration // Slowest turn so far, this one included
	TotalDuration time.Duration // All turns so far, this one included
}

// Message renders the telemetry the way the MESSAGE command carries it:
// turn and max latency in microseconds.
func (m TurnMetric) Message() string {
	return fmt.Sprintf("%d/%d", m.Duration.Microseconds(), m.MaxDuration.Microseconds())
}

// Collector measures planning latency across turns. It is owned by the game
// loop, one collector per game.
type Collector interface {
	Start(turn int)
	Complete() TurnMetric
}

type collector struct {
	now       func() time.Time
	turn      int
	startTime time.Time
	max       time.Duration
	total     time.Duration
}

func NewCollector() Collector {
	return &collector{now: time.Now}
}

// newCollectorWithClock is used by tests to control time.
func newCollectorWithClock(now func() time.Time) *collector {
	return &collector{now: now}
}

func (m *collector) Start(turn int) {
	m.turn = turn
	m.startTime = m.now()
}

func (m *collector) Complete() TurnMetric {
	spent := m.now().Sub(m.startTime)
	m.max = max(m.max, spent)
	m.total += spent
	return TurnMetric{
		Turn:          m.turn,
		Duration:      spent,
		MaxDuration:   m.max,
		TotalDuration: m.total,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(turn int)       {}
func (m *dummyCollector) Complete() TurnMetric { return TurnMetric{} }
