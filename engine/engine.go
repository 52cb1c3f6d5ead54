package engine

import "salvo/experiments/metrics"

type Runner interface {
	// Run plays until one fleet is sunk or the turn limit is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var _ Runner = (*Engine)(nil)
