// Package player holds the automated Blocky players. Interactive players are
// driven by whatever front end hosts the game and are not modelled here.
package player

import (
	"fmt"

	"blocky/experiments/metrics"
	"blocky/game"
	"blocky/searcher"
)

// Player represents a game player.
type Player interface {
	ID() int
	Goal() game.Goal
	Strategy() searcher.Strategy
	Difficulty() int
	// FindMove returns the move to commit on board, which it does not mutate.
	// A player that cannot or will not move returns a pass.
	FindMove(board *game.Block) (game.Move, metrics.SearchMetric)
}

type automated struct {
	id         int
	goal       game.Goal
	strategy   searcher.Strategy
	difficulty int
	searcher   searcher.Searcher
}

func (p *automated) ID() int                     { return p.id }
func (p *automated) Goal() game.Goal             { return p.goal }
func (p *automated) Strategy() searcher.Strategy { return p.strategy }
func (p *automated) Difficulty() int             { return p.difficulty }

// FindMove relies on the searcher returning a pass when it has no move.
func (p *automated) FindMove(board *game.Block) (game.Move, metrics.SearchMetric) {
	move, metric, _ := p.searcher.FindMove(board, p.goal)
	return move, metric
}

// NewRandomPlayer creates a player that makes any legal move.
func NewRandomPlayer(id int, goal game.Goal, rules *game.Rules, options ...searcher.Option) Player {
	return &automated{
		id:       id,
		goal:     goal,
		strategy: searcher.RandomStrategy,
		searcher: searcher.NewRandom(rules, options...),
	}
}

// NewSmartPlayer creates a player that tries difficulty legal moves and makes
// the best one, or passes if none improves its score.
func NewSmartPlayer(id int, goal game.Goal, rules *game.Rules, difficulty int, options ...searcher.Option) Player {
	return &automated{
		id:         id,
		goal:       goal,
		strategy:   searcher.GreedyStrategy,
		difficulty: difficulty,
		searcher:   searcher.NewGreedy(rules, difficulty, options...),
	}
}

// CreatePlayers returns numRandom random players followed by one smart player
// per entry of smartDifficulties, in order. Player IDs count up from 0 and
// player i gets goals[i].
func CreatePlayers(numRandom int, smartDifficulties []int, goals []game.Goal, rules *game.Rules, options ...searcher.Option) []Player {
	total := numRandom + len(smartDifficulties)
	if len(goals) != total {
		panic(fmt.Sprintf("%d players need %d goals, got %d", total, total, len(goals)))
	}

	players := make([]Player, 0, total)
	for i := 0; i < numRandom; i++ {
		players = append(players, NewRandomPlayer(i, goals[i], rules, options...))
	}
	for i, difficulty := range smartDifficulties {
		id := numRandom + i
		players = append(players, NewSmartPlayer(id, goals[id], rules, difficulty, options...))
	}
	return players
}
