package costfunction

import (
	"fmt"
	"strings"

	"github.com/kashi-pulse/kashipath/pkg"
)

// Signals is one governance snapshot: already-parsed live readings supplied by
// the external feed collaborators. missing per-segment/per-hub entries resolve
// to documented defaults, a sparse snapshot never fails a recompute pass.
type Signals struct {
	FloodLevel     float64            // CWC river gauge, meters
	AQI            float64            // air quality index
	RoadConditions map[string]float64 // "source-destination" -> IRI
	CrowdDensities map[string]float64 // hub id -> pedestrians per sqm
	MelaActive     bool
}

func (s Signals) RoadConditionAt(source, destination string) float64 {
	if iri, ok := s.RoadConditions[source+"-"+destination]; ok {
		return iri
	}
	return pkg.DEFAULT_IRI
}

func (s Signals) CrowdDensityAt(hub string) float64 {
	if density, ok := s.CrowdDensities[hub]; ok {
		return density
	}
	return pkg.DEFAULT_CROWD_DENSITY
}

type ConnectionAttributes interface {
	GetSource() string
	GetDestination() string
	GetMode() pkg.Mode
	GetBaseTime() float64
}

type ConnectionCostFunction interface {
	Recost(conn ConnectionAttributes, signals Signals) (float64, string)
}

// GovernanceCostFunction recomputes a connection's traversal weight and status
// tag from a governance snapshot. rules run in a fixed order and a later rule
// overwrites the status tag while earlier cost multipliers keep compounding,
// so the displayed tag is the last rule that fired, not the costliest one.
type GovernanceCostFunction struct {
	pedestrianZones []string
}

func NewGovernanceCostFunction() *GovernanceCostFunction {
	return &GovernanceCostFunction{
		pedestrianZones: []string{"Godowlia"},
	}
}

func NewGovernanceCostFunctionWithZones(pedestrianZones []string) *GovernanceCostFunction {
	return &GovernanceCostFunction{
		pedestrianZones: pedestrianZones,
	}
}

// Recost is a pure function of the connection's base time, its identity and
// the snapshot. applying the same snapshot twice yields the same result.
func (cf *GovernanceCostFunction) Recost(conn ConnectionAttributes, signals Signals) (float64, string) {
	var (
		source      = conn.GetSource()
		destination = conn.GetDestination()
		cost        = conn.GetBaseTime()
		status      = pkg.STATUS_CLEAR
	)

	// 1. infrastructure: pavement quality (IRI). high impact, protects EV
	// battery and suspension assets.
	if signals.RoadConditionAt(source, destination) > pkg.IRI_POOR_THRESHOLD {
		cost *= pkg.ROUGH_ROAD_FACTOR
		status = pkg.STATUS_BROKEN_ROAD
	}

	// 2. predictive: KICCC crowd pulse at the destination hub.
	if density := signals.CrowdDensityAt(destination); density > pkg.KICCC_CROWD_LIMIT {
		cost *= density / 2.0
		status = fmt.Sprintf(pkg.SURGE_ALERT_FORMAT, density)
	}

	// 3. health: AQI green-routing nudge, calibrated low impact. buses get the
	// smaller factor, ambulances are exempt. only claims the tag on
	// otherwise-clear segments.
	if signals.AQI > pkg.AQI_UNHEALTHY_THRESHOLD && conn.GetMode() != pkg.MODE_AMBULANCE {
		if conn.GetMode() == pkg.MODE_EBUS {
			cost *= pkg.AQI_FACTOR_EBUS
		} else {
			cost *= pkg.AQI_FACTOR_OTHER
		}
		if status == pkg.STATUS_CLEAR {
			status = pkg.STATUS_HEALTH_NUDGE
		}
	}

	// 4. safety: CWC flood gate on riverfront corridors. absolute blockade,
	// the additive penalty dominates any non-blockaded route and the tag
	// overwrites whatever came before.
	if signals.FloodLevel >= pkg.CWC_DANGER_LEVEL && (isGhatHub(source) || isGhatHub(destination)) {
		cost += pkg.FLOOD_BLOCKADE_PENALTY
		status = pkg.STATUS_FLOOD_BLOCKADE
	}

	// 5. governance: Magh Mela pedestrian zones. ambulances are exempt, and a
	// blockade tag is never downgraded.
	if signals.MelaActive && cf.isPedestrianZone(destination) && conn.GetMode() != pkg.MODE_AMBULANCE {
		cost += pkg.MELA_RESTRICTION_DELAY
		if status != pkg.STATUS_FLOOD_BLOCKADE {
			status = pkg.STATUS_PEDESTRIAN_ZONE
		}
	}

	return cost, status
}

func (cf *GovernanceCostFunction) isPedestrianZone(hub string) bool {
	for _, zone := range cf.pedestrianZones {
		if strings.Contains(hub, zone) {
			return true
		}
	}
	return false
}

func isGhatHub(hub string) bool {
	return strings.Contains(hub, "Ghat")
}
