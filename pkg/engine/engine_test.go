package engine

import (
	"testing"

	"github.com/kashi-pulse/kashipath/pkg"
	"github.com/kashi-pulse/kashipath/pkg/costfunction"
	"github.com/kashi-pulse/kashipath/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// the simulated live feed from the unified Kashi-Pulse demo snapshot
func demoSignals() costfunction.Signals {
	return costfunction.Signals{
		FloodLevel:     71.5,
		AQI:            245,
		RoadConditions: map[string]float64{"LBS_Airport-Cantt_Station": 195},
		CrowdDensities: map[string]float64{"Dashashwamedh_Ghat": 5.2},
		MelaActive:     true,
	}
}

func newEngineUnderTest(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(datastructure.DefaultKashiTopology(), zap.NewNop())
	require.NoError(t, err)
	return e
}

func TestSolveRickshawUnderDemoSnapshot(t *testing.T) {
	e := newEngineUnderTest(t)
	e.UpdateGovernance(demoSignals())

	// every corridor out of Cantt_Station is bus- or ambulance-only, so the
	// route exists but is infeasible for a rickshaw; it must not detour over
	// the broken airport segment, which is irrelevant here
	route, err := e.Solve("Cantt_Station", "Lanka_Stand", pkg.MODE_ERICKSHAW)
	require.NoError(t, err)
	assert.NotEmpty(t, route.GetPath())
	assert.NotContains(t, route.GetPath(), "LBS_Airport")
	assert.False(t, route.Feasible())
	assert.GreaterOrEqual(t, route.GetTotalCost(), pkg.MODE_FORBIDDEN_WEIGHT)
}

func TestSolveAmbulanceGreenCorridorUnderDemoSnapshot(t *testing.T) {
	e := newEngineUnderTest(t)
	e.UpdateGovernance(demoSignals())

	// ambulance corridors are exempt from both the AQI nudge and the mela
	// restriction, so the route costs exactly the sum of its base times
	route, err := e.Solve("SSPG_Kabir_Chaura", "BHU_Trauma_Centre", pkg.MODE_AMBULANCE)
	require.NoError(t, err)
	assert.Equal(t, []string{"SSPG_Kabir_Chaura", "Cantt_Station", "BHU_Trauma_Centre"}, route.GetPath())
	assert.InDelta(t, 10+22, route.GetTotalCost(), 1e-9)
	assert.True(t, route.Feasible())
	assert.Empty(t, route.GetTrace())
}

func TestSolveUnknownHub(t *testing.T) {
	e := newEngineUnderTest(t)

	_, err := e.Solve("NoSuchHub", "Lanka_Stand", pkg.MODE_ERICKSHAW)
	assert.ErrorIs(t, err, datastructure.ErrUnknownHub)
}

func TestSolveTraceReportsDegradedSegments(t *testing.T) {
	e := newEngineUnderTest(t)
	e.UpdateGovernance(costfunction.Signals{CrowdDensities: map[string]float64{"Dashashwamedh_Ghat": 5.2}})

	route, err := e.Solve("Maidagin_Chowk", "Dashashwamedh_Ghat", pkg.MODE_ERICKSHAW)
	require.NoError(t, err)
	require.Len(t, route.GetTrace(), 1)
	assert.Equal(t, "Godowlia_Stand", route.GetTrace()[0].GetSource())
	assert.Equal(t, "Dashashwamedh_Ghat", route.GetTrace()[0].GetDestination())
}

func TestGovernanceUpdateInvalidatesCachedRoutes(t *testing.T) {
	e := newEngineUnderTest(t)

	route, err := e.Solve("Maidagin_Chowk", "Lanka_Stand", pkg.MODE_ERICKSHAW)
	require.NoError(t, err)
	assert.InDelta(t, 12+18, route.GetTotalCost(), 1e-9)

	// crowd surge at Godowlia makes the same corridor costlier
	e.UpdateGovernance(costfunction.Signals{CrowdDensities: map[string]float64{"Godowlia_Stand": 6.0}})

	route, err = e.Solve("Maidagin_Chowk", "Lanka_Stand", pkg.MODE_ERICKSHAW)
	require.NoError(t, err)
	assert.InDelta(t, 12*3.0+18, route.GetTotalCost(), 1e-9)
}

func TestSolveCachedBetweenUpdates(t *testing.T) {
	e := newEngineUnderTest(t)

	first, err := e.Solve("Maidagin_Chowk", "Lanka_Stand", pkg.MODE_ERICKSHAW)
	require.NoError(t, err)
	second, err := e.Solve("Maidagin_Chowk", "Lanka_Stand", pkg.MODE_ERICKSHAW)
	require.NoError(t, err)
	assert.Equal(t, first.GetPath(), second.GetPath())
	assert.Equal(t, first.GetTotalCost(), second.GetTotalCost())
}

func TestSolveManyPreservesRequestOrder(t *testing.T) {
	e := newEngineUnderTest(t)

	requests := []RouteRequest{
		{Origin: "Maidagin_Chowk", Destination: "Lanka_Stand", VehicleMode: pkg.MODE_ERICKSHAW},
		{Origin: "NoSuchHub", Destination: "Lanka_Stand", VehicleMode: pkg.MODE_ERICKSHAW},
		{Origin: "SSPG_Kabir_Chaura", Destination: "BHU_Trauma_Centre", VehicleMode: pkg.MODE_AMBULANCE},
	}

	results := e.SolveMany(requests)
	require.Len(t, results, 3)

	require.NoError(t, results[0].GetErr())
	assert.Equal(t, []string{"Maidagin_Chowk", "Godowlia_Stand", "Lanka_Stand"}, results[0].GetRoute().GetPath())

	assert.ErrorIs(t, results[1].GetErr(), datastructure.ErrUnknownHub)

	require.NoError(t, results[2].GetErr())
	assert.InDelta(t, 32, results[2].GetRoute().GetTotalCost(), 1e-9)
}
