// Package engine runs Blocky games between automated players.
package engine

import "blocky/experiments/metrics"

type Engine interface {
	// Run plays every turn of the game and reports the winner's player ID
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
