package routing

import (
	"testing"

	"github.com/kashi-pulse/kashipath/pkg"
	da "github.com/kashi-pulse/kashipath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kashiGraph(t *testing.T) *da.TransitGraph {
	t.Helper()
	graph, err := da.BuildTransitGraph(da.DefaultKashiTopology())
	require.NoError(t, err)
	return graph
}

func TestShortestPathSingleMode(t *testing.T) {
	graph := kashiGraph(t)

	path, cost, err := NewDijkstra(graph).ShortestPath("Maidagin_Chowk", "Lanka_Stand", pkg.MODE_ERICKSHAW)
	require.NoError(t, err)
	assert.Equal(t, []string{"Maidagin_Chowk", "Godowlia_Stand", "Lanka_Stand"}, path)
	assert.InDelta(t, 12+18, cost, 1e-9)
}

func TestShortestPathNeverPicksForbiddenModeWhenAllowedRouteExists(t *testing.T) {
	graph := kashiGraph(t)

	path, cost, err := NewDijkstra(graph).ShortestPath("Cantt_Station", "Lanka_Stand", pkg.MODE_EBUS)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cantt_Station", "Lanka_Stand"}, path)
	assert.Less(t, cost, pkg.MODE_FORBIDDEN_WEIGHT)

	allowed := AllowedModes(pkg.MODE_EBUS)
	for i := 0; i < len(path)-1; i++ {
		for _, conn := range graph.ConnectionsFrom(path[i]) {
			if conn.GetDestination() != path[i+1] {
				continue
			}
			_, ok := allowed[conn.GetMode()]
			assert.True(t, ok)
		}
	}
}

func TestShortestPathAmbulanceGreenCorridor(t *testing.T) {
	graph := kashiGraph(t)

	// SSPG -> Cantt is an ambulance corridor, Cantt -> Maidagin is E-Bus only:
	// the green-corridor privilege lets an ambulance chain them
	path, cost, err := NewDijkstra(graph).ShortestPath("SSPG_Kabir_Chaura", "Maidagin_Chowk", pkg.MODE_AMBULANCE)
	require.NoError(t, err)
	assert.Equal(t, []string{"SSPG_Kabir_Chaura", "Cantt_Station", "Maidagin_Chowk"}, path)
	assert.InDelta(t, 10+18, cost, 1e-9)
}

func TestShortestPathForbiddenFallthroughCarriesSentinel(t *testing.T) {
	graph := kashiGraph(t)

	// an e-rickshaw can only leave Cantt_Station over bus corridors; the
	// search still returns the route but its cost carries the sentinel so the
	// caller can tell no allowed route exists
	path, cost, err := NewDijkstra(graph).ShortestPath("Cantt_Station", "Lanka_Stand", pkg.MODE_ERICKSHAW)
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.GreaterOrEqual(t, cost, pkg.MODE_FORBIDDEN_WEIGHT)
	assert.NotContains(t, path, "LBS_Airport")
}

func TestShortestPathUnknownHub(t *testing.T) {
	graph := kashiGraph(t)

	_, _, err := NewDijkstra(graph).ShortestPath("NoSuchHub", "Lanka_Stand", pkg.MODE_ERICKSHAW)
	assert.ErrorIs(t, err, da.ErrUnknownHub)

	_, _, err = NewDijkstra(graph).ShortestPath("Cantt_Station", "NoSuchHub", pkg.MODE_ERICKSHAW)
	assert.ErrorIs(t, err, da.ErrUnknownHub)
}

func TestShortestPathUnreachable(t *testing.T) {
	graph := kashiGraph(t)

	// no connection enters LBS_Airport, it is unreachable from everywhere
	_, _, err := NewDijkstra(graph).ShortestPath("Lanka_Stand", "LBS_Airport", pkg.MODE_EBUS)
	assert.ErrorIs(t, err, ErrNoPathFound)
}

func TestShortestPathUsesCustomizedWeights(t *testing.T) {
	graph := da.NewTransitGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, graph.AddHub(id, pkg.JUNCTION))
	}
	direct, err := graph.AddConnection("A", "C", pkg.MODE_EBUS, 10)
	require.NoError(t, err)
	_, err = graph.AddConnection("A", "B", pkg.MODE_EBUS, 6)
	require.NoError(t, err)
	_, err = graph.AddConnection("B", "C", pkg.MODE_EBUS, 6)
	require.NoError(t, err)

	path, cost, err := NewDijkstra(graph).ShortestPath("A", "C", pkg.MODE_EBUS)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, path)
	assert.InDelta(t, 10, cost, 1e-9)

	// penalize the direct corridor, the detour wins
	graph.SetWeightAndStatus(direct, 2010, pkg.STATUS_FLOOD_BLOCKADE)

	path, cost, err = NewDijkstra(graph).ShortestPath("A", "C", pkg.MODE_EBUS)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
	assert.InDelta(t, 12, cost, 1e-9)
}

func TestShortestPathParallelModesSamePair(t *testing.T) {
	graph := da.NewTransitGraph()
	require.NoError(t, graph.AddHub("A", pkg.JUNCTION))
	require.NoError(t, graph.AddHub("B", pkg.JUNCTION))
	_, err := graph.AddConnection("A", "B", pkg.MODE_EBUS, 5)
	require.NoError(t, err)
	_, err = graph.AddConnection("A", "B", pkg.MODE_ERICKSHAW, 9)
	require.NoError(t, err)

	_, cost, err := NewDijkstra(graph).ShortestPath("A", "B", pkg.MODE_ERICKSHAW)
	require.NoError(t, err)
	assert.InDelta(t, 9, cost, 1e-9)

	_, cost, err = NewDijkstra(graph).ShortestPath("A", "B", pkg.MODE_EBUS)
	require.NoError(t, err)
	assert.InDelta(t, 5, cost, 1e-9)

	// the ambulance may ride the bus corridor
	_, cost, err = NewDijkstra(graph).ShortestPath("A", "B", pkg.MODE_AMBULANCE)
	require.NoError(t, err)
	assert.InDelta(t, 5, cost, 1e-9)
}

func TestShortestPathDeterministicTieBreak(t *testing.T) {
	graph := da.NewTransitGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, graph.AddHub(id, pkg.JUNCTION))
	}
	// two equal-cost routes A->B->D and A->C->D; relaxation keeps the
	// first-found parent so repeated solves agree
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		_, err := graph.AddConnection(e[0], e[1], pkg.MODE_EBUS, 7)
		require.NoError(t, err)
	}

	first, cost, err := NewDijkstra(graph).ShortestPath("A", "D", pkg.MODE_EBUS)
	require.NoError(t, err)
	assert.InDelta(t, 14, cost, 1e-9)

	for i := 0; i < 10; i++ {
		path, _, err := NewDijkstra(graph).ShortestPath("A", "D", pkg.MODE_EBUS)
		require.NoError(t, err)
		assert.Equal(t, first, path)
	}
}
