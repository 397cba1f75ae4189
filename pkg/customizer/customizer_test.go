package customizer

import (
	"testing"

	"github.com/kashi-pulse/kashipath/pkg"
	"github.com/kashi-pulse/kashipath/pkg/costfunction"
	"github.com/kashi-pulse/kashipath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCustomizerUnderTest(t *testing.T) (*Customizer, *datastructure.TransitGraph) {
	t.Helper()
	graph, err := datastructure.BuildTransitGraph(datastructure.DefaultKashiTopology())
	require.NoError(t, err)
	return NewCustomizer(graph, costfunction.NewGovernanceCostFunction(), zap.NewNop()), graph
}

func TestRecomputeAllTouchesEveryConnection(t *testing.T) {
	c, graph := newCustomizerUnderTest(t)

	c.RecomputeAll(costfunction.Signals{AQI: 245})

	for _, conn := range graph.AllConnections() {
		if conn.GetMode() == pkg.MODE_AMBULANCE {
			assert.Equal(t, conn.GetBaseTime(), conn.GetWeight())
			assert.Equal(t, pkg.STATUS_CLEAR, conn.GetStatus())
			continue
		}
		assert.Greater(t, conn.GetWeight(), conn.GetBaseTime())
		assert.Equal(t, pkg.STATUS_HEALTH_NUDGE, conn.GetStatus())
	}
}

func TestRecomputeAllIdempotent(t *testing.T) {
	c, graph := newCustomizerUnderTest(t)
	signals := costfunction.Signals{
		FloodLevel:     71.5,
		AQI:            245,
		RoadConditions: map[string]float64{"LBS_Airport-Cantt_Station": 195},
		CrowdDensities: map[string]float64{"Dashashwamedh_Ghat": 5.2},
		MelaActive:     true,
	}

	c.RecomputeAll(signals)
	firstWeights := make([]float64, 0)
	firstStatuses := make([]string, 0)
	for _, conn := range graph.AllConnections() {
		firstWeights = append(firstWeights, conn.GetWeight())
		firstStatuses = append(firstStatuses, conn.GetStatus())
	}

	c.RecomputeAll(signals)
	for i, conn := range graph.AllConnections() {
		assert.Equal(t, firstWeights[i], conn.GetWeight())
		assert.Equal(t, firstStatuses[i], conn.GetStatus())
	}
}

func TestRecomputeAllResetsFromBaseTime(t *testing.T) {
	c, graph := newCustomizerUnderTest(t)

	c.RecomputeAll(costfunction.Signals{AQI: 245})
	c.RecomputeAll(costfunction.Signals{})

	// a quiet snapshot restores every connection to its base time, weights are
	// never derived from the previous pass
	for _, conn := range graph.AllConnections() {
		assert.Equal(t, conn.GetBaseTime(), conn.GetWeight())
		assert.Equal(t, pkg.STATUS_CLEAR, conn.GetStatus())
	}
}

func TestRecomputeAllSparseSnapshot(t *testing.T) {
	c, graph := newCustomizerUnderTest(t)

	// nil maps must not abort the pass, defaults absorb the missing keys
	c.RecomputeAll(costfunction.Signals{FloodLevel: 71.5})

	for _, conn := range graph.AllConnections() {
		if conn.GetDestination() == "Dashashwamedh_Ghat" || conn.GetSource() == "Dashashwamedh_Ghat" {
			assert.Equal(t, pkg.STATUS_FLOOD_BLOCKADE, conn.GetStatus())
			continue
		}
		assert.Equal(t, pkg.STATUS_CLEAR, conn.GetStatus())
	}
}
