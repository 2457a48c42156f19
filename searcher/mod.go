// Package searcher picks moves for automated players by sampling structural
// moves on throwaway copies of the board.
package searcher

import (
	"fmt"

	"blocky/experiments/metrics"
	"blocky/game"
)

// Strategy selects one of the move search procedures.
type Strategy int

const (
	RandomStrategy Strategy = iota
	GreedyStrategy
)

func (s Strategy) String() string {
	switch s {
	case RandomStrategy:
		return "random"
	case GreedyStrategy:
		return "greedy"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Searcher finds a move for the player holding goal. It never mutates board.
// ok is false when the searcher decided not to move, in which case move is a
// pass on board.
type Searcher interface {
	FindMove(board *game.Block, goal game.Goal) (move game.Move, metric metrics.SearchMetric, ok bool)
}

// New creates the searcher for a strategy. difficulty is the trial budget of
// the greedy strategy and is ignored by the random one.
func New(strategy Strategy, rules *game.Rules, difficulty int, options ...Option) Searcher {
	switch strategy {
	case RandomStrategy:
		return NewRandom(rules, options...)
	case GreedyStrategy:
		return NewGreedy(rules, difficulty, options...)
	default:
		panic(fmt.Sprintf("unknown strategy %d", strategy))
	}
}

// GenerateMove runs a single search and returns the move to commit on board.
func GenerateMove(strategy Strategy, rules *game.Rules, board *game.Block, goal game.Goal, difficulty int, options ...Option) (game.Move, bool) {
	move, _, ok := New(strategy, rules, difficulty, options...).FindMove(board, goal)
	return move, ok
}
