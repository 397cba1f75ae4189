package usecases

import (
	"github.com/kashi-pulse/kashipath/pkg/costfunction"
	"go.uber.org/zap"
)

type GovernanceService struct {
	log    *zap.Logger
	engine PathEngine
}

func NewGovernanceService(log *zap.Logger, engine PathEngine) *GovernanceService {
	return &GovernanceService{
		log:    log,
		engine: engine,
	}
}

// ApplySnapshot runs a full cost recomputation pass for one governance
// snapshot. sparse maps are fine, missing keys fall back to per-signal
// defaults inside the cost function.
func (gs *GovernanceService) ApplySnapshot(floodLevel, aqi float64, roadConditions, crowdDensities map[string]float64,
	melaActive bool) {
	gs.engine.UpdateGovernance(costfunction.Signals{
		FloodLevel:     floodLevel,
		AQI:            aqi,
		RoadConditions: roadConditions,
		CrowdDensities: crowdDensities,
		MelaActive:     melaActive,
	})
}
