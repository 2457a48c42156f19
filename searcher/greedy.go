package searcher

import (
	"fmt"

	"blocky/experiments/metrics"
	"blocky/game"
)

// Greedy samples a fixed number of successful moves and keeps the one with
// the highest resulting score. Failed samples do not use up the budget. If no
// trial beats the current score it passes.
type Greedy struct {
	search
	trials int
}

func NewGreedy(rules *game.Rules, trials int, options ...Option) *Greedy {
	if trials < 0 {
		panic(fmt.Sprintf("trial budget must be non-negative, got %d", trials))
	}
	return &Greedy{
		search: newSearch(rules, trials, options...),
		trials: trials,
	}
}

func (g *Greedy) FindMove(board *game.Block, goal game.Goal) (game.Move, metrics.SearchMetric, bool) {
	initial := goal.Score(board)
	g.metrics.Start(GreedyStrategy.String(), g.trials, initial)

	var best game.Move
	bestScore, found := 0, false

	scratch := board.Copy()
	successes := 0
	for attempt := 0; successes < g.trials && attempt < g.maxAttempts; attempt++ {
		t, ok := g.sample(scratch, goal)
		if !ok {
			continue
		}
		successes++
		score := goal.Score(scratch)
		g.metrics.AddSuccess(score)
		if !found || score > bestScore {
			best, bestScore, found = relocate(board, t), score, true
		}
		scratch = board.Copy()
	}

	if !found || bestScore <= initial {
		return game.Pass(board), g.metrics.Complete(), false
	}
	return best, g.metrics.Complete(), true
}
