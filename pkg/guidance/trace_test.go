package guidance

import (
	"testing"

	"github.com/kashi-pulse/kashipath/pkg"
	da "github.com/kashi-pulse/kashipath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traceGraph(t *testing.T) *da.TransitGraph {
	t.Helper()
	graph := da.NewTransitGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, graph.AddHub(id, pkg.JUNCTION))
	}
	return graph
}

func TestExplainListsNonClearSegments(t *testing.T) {
	graph := traceGraph(t)
	ab, err := graph.AddConnection("A", "B", pkg.MODE_ERICKSHAW, 5)
	require.NoError(t, err)
	_, err = graph.AddConnection("B", "C", pkg.MODE_ERICKSHAW, 5)
	require.NoError(t, err)

	graph.SetWeightAndStatus(ab, 7, pkg.STATUS_BROKEN_ROAD)

	trace := NewTraceReporter(graph).Explain([]string{"A", "B", "C"}, pkg.MODE_ERICKSHAW)
	require.Len(t, trace, 1)
	assert.Equal(t, "A", trace[0].GetSource())
	assert.Equal(t, "B", trace[0].GetDestination())
	assert.Equal(t, pkg.STATUS_BROKEN_ROAD, trace[0].GetStatus())
}

func TestExplainShortPathIsEmpty(t *testing.T) {
	graph := traceGraph(t)
	reporter := NewTraceReporter(graph)

	assert.Empty(t, reporter.Explain(nil, pkg.MODE_EBUS))
	assert.Empty(t, reporter.Explain([]string{"A"}, pkg.MODE_EBUS))
}

func TestExplainInspectsSolverChoiceOnParallelEdges(t *testing.T) {
	graph := traceGraph(t)
	bus, err := graph.AddConnection("A", "B", pkg.MODE_EBUS, 5)
	require.NoError(t, err)
	rickshaw, err := graph.AddConnection("A", "B", pkg.MODE_ERICKSHAW, 9)
	require.NoError(t, err)

	graph.SetWeightAndStatus(bus, 7, pkg.STATUS_BROKEN_ROAD)
	graph.SetWeightAndStatus(rickshaw, 9, pkg.STATUS_CLEAR)

	reporter := NewTraceReporter(graph)

	// a rickshaw rides its own clear corridor, nothing to report
	assert.Empty(t, reporter.Explain([]string{"A", "B"}, pkg.MODE_ERICKSHAW))

	// a bus is stuck with the degraded corridor
	trace := reporter.Explain([]string{"A", "B"}, pkg.MODE_EBUS)
	require.Len(t, trace, 1)
	assert.Equal(t, pkg.STATUS_BROKEN_ROAD, trace[0].GetStatus())
}
