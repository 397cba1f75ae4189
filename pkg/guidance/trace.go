package guidance

import (
	"github.com/kashi-pulse/kashipath/pkg"
	da "github.com/kashi-pulse/kashipath/pkg/datastructure"
	"github.com/kashi-pulse/kashipath/pkg/engine/routing"
)

type TraceSegment struct {
	source      string
	destination string
	status      string
}

func NewTraceSegment(source, destination, status string) TraceSegment {
	return TraceSegment{
		source:      source,
		destination: destination,
		status:      status,
	}
}

func (ts TraceSegment) GetSource() string {
	return ts.source
}

func (ts TraceSegment) GetDestination() string {
	return ts.destination
}

func (ts TraceSegment) GetStatus() string {
	return ts.status
}

// TraceReporter derives the actionable-intelligence trace of a solved route:
// which traversed segments carry a non-Clear status and why. read-only.
type TraceReporter struct {
	graph *da.TransitGraph
}

func NewTraceReporter(graph *da.TransitGraph) *TraceReporter {
	return &TraceReporter{graph: graph}
}

// Explain lists the (segment, status) pairs of every traversed connection
// whose status is not Clear, in path order. on hops with parallel connections
// it inspects the one the solver would pick, the cheapest by effective cost
// under the vehicle's allowed-mode set. paths shorter than two hubs have no
// segments and produce an empty trace.
func (tr *TraceReporter) Explain(path []string, vehicleMode pkg.Mode) []TraceSegment {
	trace := make([]TraceSegment, 0)
	if len(path) < 2 {
		return trace
	}

	allowed := routing.AllowedModes(vehicleMode)

	for i := 0; i < len(path)-1; i++ {
		conn := tr.cheapestConnection(path[i], path[i+1], allowed)
		if conn == nil {
			continue
		}
		if conn.GetStatus() != pkg.STATUS_CLEAR {
			trace = append(trace, NewTraceSegment(path[i], path[i+1], conn.GetStatus()))
		}
	}

	return trace
}

func (tr *TraceReporter) cheapestConnection(source, destination string, allowed map[pkg.Mode]struct{}) *da.Connection {
	var best *da.Connection
	bestWeight := pkg.INF_WEIGHT

	for _, conn := range tr.graph.ConnectionsFrom(source) {
		if conn.GetDestination() != destination {
			continue
		}
		if w := routing.EffectiveWeight(conn, allowed); w < bestWeight {
			best = conn
			bestWeight = w
		}
	}

	return best
}
