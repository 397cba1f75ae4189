package routing

import (
	"errors"

	"github.com/kashi-pulse/kashipath/pkg"
	da "github.com/kashi-pulse/kashipath/pkg/datastructure"
	"github.com/kashi-pulse/kashipath/pkg/util"
)

var ErrNoPathFound = errors.New("no path found")

type vertexInfo struct {
	travelTime float64
	parent     string
	heapNode   *da.PriorityQueueNode[string]
}

// Dijkstra runs a mode-constrained single-source search over the transit
// multigraph. disallowed-mode connections are never removed, they are relaxed
// at MODE_FORBIDDEN_WEIGHT so a route through them is still found when nothing
// else connects, and the caller tells the two apart by the returned cost.
type Dijkstra struct {
	graph *da.TransitGraph

	info map[string]*vertexInfo
	pq   *da.MinHeap[string]

	numSettledNodes int
}

func NewDijkstra(graph *da.TransitGraph) *Dijkstra {
	return &Dijkstra{
		graph: graph,
		info:  make(map[string]*vertexInfo),
		pq:    da.NewFourAryHeap[string](),
	}
}

// AllowedModes is the mode set a vehicle may traverse: its own mode, extended
// with E-Bus green corridors for ambulances.
func AllowedModes(vehicleMode pkg.Mode) map[pkg.Mode]struct{} {
	allowed := map[pkg.Mode]struct{}{vehicleMode: {}}
	if vehicleMode == pkg.MODE_AMBULANCE {
		allowed[pkg.MODE_EBUS] = struct{}{}
	}
	return allowed
}

// EffectiveWeight is the cost the search charges for a connection under the
// allowed-mode set.
func EffectiveWeight(conn *da.Connection, allowed map[pkg.Mode]struct{}) float64 {
	if _, ok := allowed[conn.GetMode()]; ok {
		return conn.GetWeight()
	}
	return pkg.MODE_FORBIDDEN_WEIGHT
}

// ShortestPath returns the cheapest hub sequence from origin to destination by
// cumulative effective cost, with its total. ties during relaxation keep the
// first-found parent, and neighbors are visited in connection insertion order,
// so results are reproducible. ErrNoPathFound means the destination is not
// reachable at all in the underlying graph; a path whose total is at least
// MODE_FORBIDDEN_WEIGHT is returned as-is and means no allowed route exists.
func (d *Dijkstra) ShortestPath(origin, destination string, vehicleMode pkg.Mode) ([]string, float64, error) {
	if !d.graph.HasHub(origin) {
		return nil, 0, util.WrapErrorf(da.ErrUnknownHub, util.ErrNotFound, "origin hub %s not found", origin)
	}
	if !d.graph.HasHub(destination) {
		return nil, 0, util.WrapErrorf(da.ErrUnknownHub, util.ErrNotFound, "destination hub %s not found", destination)
	}

	allowed := AllowedModes(vehicleMode)

	d.info = make(map[string]*vertexInfo, d.graph.NumberOfHubs())
	d.pq.Clear()
	d.pq.Preallocate(d.graph.NumberOfHubs())

	originNode := da.NewPriorityQueueNode(0, origin)
	d.info[origin] = &vertexInfo{travelTime: 0, heapNode: originNode}
	d.pq.Insert(originNode)

	for !d.pq.IsEmpty() {
		uNode, _ := d.pq.ExtractMin()
		uId := uNode.GetItem()
		uInfo := d.info[uId]
		d.numSettledNodes++

		if uId == destination {
			break
		}

		for _, conn := range d.graph.ConnectionsFrom(uId) {
			vId := conn.GetDestination()

			newTravelTime := uInfo.travelTime + EffectiveWeight(conn, allowed)
			if newTravelTime >= pkg.INF_WEIGHT {
				continue
			}

			vInfo, labelled := d.info[vId]
			if labelled && newTravelTime >= vInfo.travelTime {
				continue
			}

			if labelled {
				vInfo.travelTime = newTravelTime
				vInfo.parent = uId
				if vInfo.heapNode.GetPos() >= 0 {
					d.pq.DecreaseKey(vInfo.heapNode, newTravelTime)
				}
			} else {
				vNode := da.NewPriorityQueueNode(newTravelTime, vId)
				d.info[vId] = &vertexInfo{travelTime: newTravelTime, parent: uId, heapNode: vNode}
				d.pq.Insert(vNode)
			}
		}
	}

	destInfo, reached := d.info[destination]
	if !reached {
		return nil, 0, util.WrapErrorf(ErrNoPathFound, util.ErrNotFound,
			"no route from %s to %s for %s", origin, destination, vehicleMode)
	}

	return d.unwindPath(origin, destination), destInfo.travelTime, nil
}

func (d *Dijkstra) unwindPath(origin, destination string) []string {
	reversed := make([]string, 0)
	for cur := destination; cur != origin; cur = d.info[cur].parent {
		reversed = append(reversed, cur)
	}
	reversed = append(reversed, origin)

	return util.ReverseG(reversed)
}

func (d *Dijkstra) NumSettledNodes() int {
	return d.numSettledNodes
}
