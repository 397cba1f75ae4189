package engine

import (
	"github.com/kashi-pulse/kashipath/pkg"
	"github.com/kashi-pulse/kashipath/pkg/guidance"
)

// Route is one solved itinerary. an infeasible route crossed at least one
// forbidden-mode connection because nothing else connected the two hubs; its
// literal total cost carries the sentinel magnitude so callers can still
// distinguish "expensive but real" from "no allowed route".
type Route struct {
	path      []string
	totalCost float64
	trace     []guidance.TraceSegment
}

func NewRoute(path []string, totalCost float64, trace []guidance.TraceSegment) Route {
	return Route{
		path:      path,
		totalCost: totalCost,
		trace:     trace,
	}
}

func (r Route) GetPath() []string {
	return r.path
}

func (r Route) GetTotalCost() float64 {
	return r.totalCost
}

func (r Route) GetTrace() []guidance.TraceSegment {
	return r.trace
}

func (r Route) Feasible() bool {
	return r.totalCost < pkg.MODE_FORBIDDEN_WEIGHT
}
