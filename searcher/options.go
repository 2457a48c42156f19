package searcher

import (
	"blocky/experiments/metrics"
	"blocky/game"
	"blocky/meta"
)

type Option func(s *search)

// search holds what both strategies share.
type search struct {
	rules       *game.Rules
	maxAttempts int
	metrics     metrics.Collector
}

// WithMaxAttempts bounds the number of samples, failed or not, drawn for one
// move. Without it the bound is meta.MAX_ATTEMPTS_PER_TRIAL per trial.
func WithMaxAttempts(attempts int) Option {
	return func(s *search) {
		if attempts > 0 {
			s.maxAttempts = attempts
		}
	}
}

func WithMetrics() Option {
	return func(s *search) {
		s.metrics = metrics.NewCollector()
	}
}

func newSearch(rules *game.Rules, trials int, options ...Option) search {
	if rules == nil {
		panic("searcher needs rules")
	}
	s := search{ // Default values
		rules:       rules,
		maxAttempts: meta.MAX_ATTEMPTS_PER_TRIAL * max(trials, 1),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}
