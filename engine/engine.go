package engine

import "ants/experiments/metrics"

type Engine interface {
	// Run plays turns until the input ends and returns one record per turn
	Run() ([]metrics.TurnRecord, error)
}
