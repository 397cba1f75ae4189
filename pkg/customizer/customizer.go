package customizer

import (
	"github.com/kashi-pulse/kashipath/pkg"
	"github.com/kashi-pulse/kashipath/pkg/costfunction"
	"github.com/kashi-pulse/kashipath/pkg/datastructure"
	"go.uber.org/zap"
)

// Customizer applies a governance snapshot to every connection of the graph,
// overwriting weight and status in place. solves read the customized weights,
// never the snapshot itself.
type Customizer struct {
	graph        *datastructure.TransitGraph
	costFunction costfunction.ConnectionCostFunction
	logger       *zap.Logger
}

func NewCustomizer(graph *datastructure.TransitGraph, costFunction costfunction.ConnectionCostFunction,
	logger *zap.Logger) *Customizer {
	return &Customizer{
		graph:        graph,
		costFunction: costFunction,
		logger:       logger,
	}
}

// RecomputeAll runs one full customization pass over all connections. the pass
// has no partial-failure mode: sparse snapshots fall back to per-signal
// defaults instead of aborting.
func (c *Customizer) RecomputeAll(signals costfunction.Signals) {
	var recosted, degraded int

	for _, conn := range c.graph.AllConnections() {
		weight, status := c.costFunction.Recost(conn, signals)
		c.graph.SetWeightAndStatus(conn, weight, status)

		recosted++
		if status != pkg.STATUS_CLEAR {
			degraded++
		}
	}

	c.logger.Info("governance customization pass applied",
		zap.Int("connections", recosted),
		zap.Int("degraded", degraded),
		zap.Float64("floodLevel", signals.FloodLevel),
		zap.Float64("aqi", signals.AQI),
		zap.Bool("melaActive", signals.MelaActive))
}
