package usecases

import (
	"errors"

	"github.com/kashi-pulse/kashipath/pkg"
	"github.com/kashi-pulse/kashipath/pkg/engine"
	"github.com/kashi-pulse/kashipath/pkg/engine/routing"
	"github.com/kashi-pulse/kashipath/pkg/guidance"
	"github.com/kashi-pulse/kashipath/pkg/util"
	"go.uber.org/zap"
)

var ErrUnknownMode = errors.New("unknown vehicle mode")

type NavigationService struct {
	log    *zap.Logger
	engine PathEngine
}

func NewNavigationService(log *zap.Logger, engine PathEngine) *NavigationService {
	return &NavigationService{
		log:    log,
		engine: engine,
	}
}

// Route solves one mode-constrained route. an infeasible result (the solver
// only connected the hubs through forbidden-mode corridors) is reported to the
// caller as no viable route.
func (ns *NavigationService) Route(origin, destination, mode string) ([]string, float64, []guidance.TraceSegment, error) {
	vehicleMode := pkg.GetMode(mode)
	if vehicleMode == pkg.MODE_UNKNOWN {
		return nil, 0, nil, util.WrapErrorf(ErrUnknownMode, util.ErrBadParamInput, "unknown vehicle mode %q", mode)
	}

	route, err := ns.engine.Solve(origin, destination, vehicleMode)
	if err != nil {
		return nil, 0, nil, err
	}

	if !route.Feasible() {
		return nil, 0, nil, util.WrapErrorf(routing.ErrNoPathFound, util.ErrNotFound,
			"no viable route found for %s from %s to %s under current constraints", mode, origin, destination)
	}

	return route.GetPath(), route.GetTotalCost(), route.GetTrace(), nil
}

type BatchRouteQuery struct {
	Origin      string
	Destination string
	Mode        string
}

type BatchRouteAnswer struct {
	Query     BatchRouteQuery
	Path      []string
	TotalCost float64
	Trace     []guidance.TraceSegment
	Err       error
}

// BatchRoute solves independent queries concurrently on the engine's worker
// pool. per-query failures land in the matching answer, the batch never
// aborts as a whole.
func (ns *NavigationService) BatchRoute(queries []BatchRouteQuery) []BatchRouteAnswer {
	answers := make([]BatchRouteAnswer, len(queries))
	requests := make([]engine.RouteRequest, 0, len(queries))
	requestIdx := make([]int, 0, len(queries))

	for i, query := range queries {
		answers[i].Query = query

		vehicleMode := pkg.GetMode(query.Mode)
		if vehicleMode == pkg.MODE_UNKNOWN {
			answers[i].Err = util.WrapErrorf(ErrUnknownMode, util.ErrBadParamInput, "unknown vehicle mode %q", query.Mode)
			continue
		}

		requests = append(requests, engine.RouteRequest{
			Origin:      query.Origin,
			Destination: query.Destination,
			VehicleMode: vehicleMode,
		})
		requestIdx = append(requestIdx, i)
	}

	for j, result := range ns.engine.SolveMany(requests) {
		i := requestIdx[j]
		if err := result.GetErr(); err != nil {
			answers[i].Err = err
			continue
		}

		route := result.GetRoute()
		if !route.Feasible() {
			answers[i].Err = util.WrapErrorf(routing.ErrNoPathFound, util.ErrNotFound,
				"no viable route found for %s from %s to %s under current constraints",
				answers[i].Query.Mode, answers[i].Query.Origin, answers[i].Query.Destination)
			continue
		}

		answers[i].Path = route.GetPath()
		answers[i].TotalCost = route.GetTotalCost()
		answers[i].Trace = route.GetTrace()
	}

	return answers
}

type HubInfo struct {
	ID       string
	Category string
}

func (ns *NavigationService) Hubs() []HubInfo {
	hubs := ns.engine.Hubs()

	infos := make([]HubInfo, 0, len(hubs))
	for _, hub := range hubs {
		infos = append(infos, HubInfo{ID: hub.GetID(), Category: hub.GetCategory().String()})
	}
	return infos
}
