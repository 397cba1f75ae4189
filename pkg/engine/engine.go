package engine

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kashi-pulse/kashipath/pkg"
	"github.com/kashi-pulse/kashipath/pkg/concurrent"
	"github.com/kashi-pulse/kashipath/pkg/costfunction"
	"github.com/kashi-pulse/kashipath/pkg/customizer"
	"github.com/kashi-pulse/kashipath/pkg/datastructure"
	"github.com/kashi-pulse/kashipath/pkg/engine/routing"
	"github.com/kashi-pulse/kashipath/pkg/guidance"
	"go.uber.org/zap"
)

const (
	ROUTE_CACHE_SIZE   = 1 << 12
	BATCH_SOLVE_WORKER = 8
)

type routeCacheKey struct {
	origin      string
	destination string
	mode        pkg.Mode
}

// Engine is the in-process surface of the Kashi-Pulse path engine: it owns the
// graph store, the governance customizer, the solver and the trace reporter.
// governance updates exclude concurrent solves; solves run freely in parallel
// between update cycles. solved routes are cached until the next update pass.
type Engine struct {
	graph      *datastructure.TransitGraph
	customizer *customizer.Customizer
	reporter   *guidance.TraceReporter
	routeCache *lru.Cache[routeCacheKey, Route]
	logger     *zap.Logger

	mu sync.RWMutex
}

func NewEngine(seed datastructure.SeedTopology, logger *zap.Logger) (*Engine, error) {
	graph, err := datastructure.BuildTransitGraph(seed)
	if err != nil {
		return nil, err
	}

	logger.Info("city network initialized",
		zap.Int("hubs", graph.NumberOfHubs()),
		zap.Int("connections", graph.NumberOfConnections()))

	routeCache, err := lru.New[routeCacheKey, Route](ROUTE_CACHE_SIZE)
	if err != nil {
		return nil, err
	}

	return &Engine{
		graph:      graph,
		customizer: customizer.NewCustomizer(graph, costfunction.NewGovernanceCostFunction(), logger),
		reporter:   guidance.NewTraceReporter(graph),
		routeCache: routeCache,
		logger:     logger,
	}, nil
}

func (e *Engine) GetGraph() *datastructure.TransitGraph {
	return e.graph
}

// UpdateGovernance applies one governance snapshot to every connection and
// invalidates the route cache. exclusive with Solve/Explain.
func (e *Engine) UpdateGovernance(signals costfunction.Signals) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.customizer.RecomputeAll(signals)
	e.routeCache.Purge()
}

// Solve computes the cheapest mode-constrained route between two hubs with its
// per-segment trace. the returned route may be infeasible (no allowed-mode
// route exists and the search fell through forbidden corridors); callers check
// Feasible before presenting it as a usable itinerary.
func (e *Engine) Solve(origin, destination string, vehicleMode pkg.Mode) (Route, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	key := routeCacheKey{origin: origin, destination: destination, mode: vehicleMode}
	if route, ok := e.routeCache.Get(key); ok {
		return route, nil
	}

	dijkstra := routing.NewDijkstra(e.graph)
	path, totalCost, err := dijkstra.ShortestPath(origin, destination, vehicleMode)
	if err != nil {
		return Route{}, err
	}

	route := NewRoute(path, totalCost, e.reporter.Explain(path, vehicleMode))

	e.logger.Debug("route solved",
		zap.String("origin", origin),
		zap.String("destination", destination),
		zap.String("mode", vehicleMode.String()),
		zap.Float64("totalCost", totalCost),
		zap.Bool("feasible", route.Feasible()),
		zap.Int("settledNodes", dijkstra.NumSettledNodes()))

	e.routeCache.Add(key, route)
	return route, nil
}

// Explain re-derives the non-Clear segment trace of an arbitrary hub sequence.
func (e *Engine) Explain(path []string, vehicleMode pkg.Mode) []guidance.TraceSegment {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.reporter.Explain(path, vehicleMode)
}

func (e *Engine) Hubs() []*datastructure.Hub {
	return e.graph.Hubs()
}

type RouteRequest struct {
	Origin      string
	Destination string
	VehicleMode pkg.Mode
}

type RouteResult struct {
	route Route
	err   error
}

func (rr RouteResult) GetRoute() Route {
	return rr.route
}

func (rr RouteResult) GetErr() error {
	return rr.err
}

type indexedRequest struct {
	index   int
	request RouteRequest
}

type indexedResult struct {
	index  int
	result RouteResult
}

// SolveMany solves independent route requests on a worker pool and returns the
// results in request order. solves only take the read lock, so the pool runs
// them concurrently between governance updates.
func (e *Engine) SolveMany(requests []RouteRequest) []RouteResult {
	pool := concurrent.NewWorkerPool[indexedRequest, indexedResult](BATCH_SOLVE_WORKER, len(requests))

	pool.Start(func(job indexedRequest) indexedResult {
		route, err := e.Solve(job.request.Origin, job.request.Destination, job.request.VehicleMode)
		return indexedResult{index: job.index, result: RouteResult{route: route, err: err}}
	})

	for i, request := range requests {
		pool.AddJob(indexedRequest{index: i, request: request})
	}
	pool.Close()
	pool.Wait()

	results := make([]RouteResult, len(requests))
	for res := range pool.CollectResults() {
		results[res.index] = res.result
	}
	return results
}
