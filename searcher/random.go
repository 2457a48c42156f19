package searcher

import (
	"blocky/experiments/metrics"
	"blocky/game"
)

// Random returns the first sampled move that applies cleanly.
type Random struct {
	search
}

func NewRandom(rules *game.Rules, options ...Option) *Random {
	return &Random{search: newSearch(rules, 1, options...)}
}

func (r *Random) FindMove(board *game.Block, goal game.Goal) (game.Move, metrics.SearchMetric, bool) {
	r.metrics.Start(RandomStrategy.String(), 1, goal.Score(board))

	scratch := board.Copy()
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		t, ok := r.sample(scratch, goal)
		if !ok {
			continue
		}
		r.metrics.AddSuccess(goal.Score(scratch))
		return relocate(board, t), r.metrics.Complete(), true
	}
	return game.Pass(board), r.metrics.Complete(), false
}
