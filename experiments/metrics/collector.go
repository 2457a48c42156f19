package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes the work a strategy did to pick one move.
type SearchMetric struct {
	Strategy     string
	Trials       int // budget requested
	Successes    int // trials that applied cleanly
	Attempts     int // samples drawn, including failed validations
	InitialScore int
	BestScore    int
	Duration     time.Duration
}

type MoveMetric struct {
	Step   int
	Player int // Player ID
	Action string
	Score  int // mover's score after the move
	SearchMetric
}

type GameMetric struct {
	ID         string
	Seed       uint64
	MaxDepth   int
	Winner     int   // Player ID
	Scores     []int // indexed by player ID
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Passes     int
}

type Collector interface {
	Start(strategy string, trials, initialScore int)
	AddAttempt()
	AddSuccess(score int)
	Complete() SearchMetric
}

type collector struct {
	strategy     string
	trials       int
	initialScore int
	startTime    time.Time
	attempts     atomic.Int32
	successes    atomic.Int32
	bestScore    atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, trials, initialScore int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.trials = trials
	m.initialScore = initialScore
	m.attempts.Store(0)
	m.successes.Store(0)
	m.bestScore.Store(int32(initialScore))
}

func (m *collector) AddAttempt() {
	m.attempts.Add(1)
}

func (m *collector) AddSuccess(score int) {
	m.successes.Add(1)
	for {
		best := m.bestScore.Load()
		if int32(score) <= best || m.bestScore.CompareAndSwap(best, int32(score)) {
			return
		}
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:     m.strategy,
		Trials:       m.trials,
		Successes:    int(m.successes.Load()),
		Attempts:     int(m.attempts.Load()),
		InitialScore: m.initialScore,
		BestScore:    int(m.bestScore.Load()),
		Duration:     time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, trials, initialScore int) {}
func (m *dummyCollector) AddAttempt()                                     {}
func (m *dummyCollector) AddSuccess(score int)                            {}
func (m *dummyCollector) Complete() SearchMetric                          { return SearchMetric{} }
