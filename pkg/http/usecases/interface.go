package usecases

import (
	"github.com/kashi-pulse/kashipath/pkg"
	"github.com/kashi-pulse/kashipath/pkg/costfunction"
	"github.com/kashi-pulse/kashipath/pkg/datastructure"
	"github.com/kashi-pulse/kashipath/pkg/engine"
)

type PathEngine interface {
	Solve(origin, destination string, vehicleMode pkg.Mode) (engine.Route, error)
	SolveMany(requests []engine.RouteRequest) []engine.RouteResult
	UpdateGovernance(signals costfunction.Signals)
	Hubs() []*datastructure.Hub
}
