package datastructure

import (
	"fmt"

	"github.com/kashi-pulse/kashipath/pkg"
	"github.com/spf13/viper"
)

type SeedHub struct {
	ID       string `mapstructure:"id"`
	Category string `mapstructure:"category"`
}

type SeedConnection struct {
	Source      string  `mapstructure:"source"`
	Destination string  `mapstructure:"destination"`
	Mode        string  `mapstructure:"mode"`
	BaseTime    float64 `mapstructure:"base_time"`
}

// SeedTopology is the injected initial graph snapshot. the graph is built from
// it exactly once at startup, topology never changes afterwards.
type SeedTopology struct {
	Hubs        []SeedHub        `mapstructure:"hubs"`
	Connections []SeedConnection `mapstructure:"connections"`
}

// DefaultKashiTopology is the foundational multi-modal infrastructure of
// Varanasi: E-Bus major corridors (route E101/E102), E-Rickshaw last-mile
// links, and the emergency ambulance green corridors. base times in minutes.
func DefaultKashiTopology() SeedTopology {
	return SeedTopology{
		Hubs: []SeedHub{
			{ID: "LBS_Airport", Category: "Transit"},
			{ID: "Cantt_Station", Category: "Transit"},
			{ID: "Godowlia_Stand", Category: "Rickshaw_Hub"},
			{ID: "Lanka_Stand", Category: "Rickshaw_Hub"},
			{ID: "BHU_Trauma_Centre", Category: "Hospital"},
			{ID: "SSPG_Kabir_Chaura", Category: "Hospital"},
			{ID: "Maidagin_Chowk", Category: "Junction"},
			{ID: "Dashashwamedh_Ghat", Category: "Riverfront"},
		},
		Connections: []SeedConnection{
			{Source: "LBS_Airport", Destination: "Cantt_Station", Mode: "E-Bus", BaseTime: 42},
			{Source: "Cantt_Station", Destination: "Maidagin_Chowk", Mode: "E-Bus", BaseTime: 18},
			{Source: "Cantt_Station", Destination: "Lanka_Stand", Mode: "E-Bus", BaseTime: 28},
			{Source: "Maidagin_Chowk", Destination: "Godowlia_Stand", Mode: "E-Rickshaw", BaseTime: 12},
			{Source: "Godowlia_Stand", Destination: "Dashashwamedh_Ghat", Mode: "E-Rickshaw", BaseTime: 8},
			{Source: "Godowlia_Stand", Destination: "Lanka_Stand", Mode: "E-Rickshaw", BaseTime: 18},
			{Source: "SSPG_Kabir_Chaura", Destination: "Cantt_Station", Mode: "Ambulance", BaseTime: 10},
			{Source: "Cantt_Station", Destination: "BHU_Trauma_Centre", Mode: "Ambulance", BaseTime: 22},
		},
	}
}

// LoadSeedTopology returns the topology declared under the "topology" key of
// the config file, falling back to the built-in Kashi network.
func LoadSeedTopology() (SeedTopology, error) {
	if !viper.IsSet("topology") {
		return DefaultKashiTopology(), nil
	}

	var seed SeedTopology
	if err := viper.UnmarshalKey("topology", &seed); err != nil {
		return SeedTopology{}, fmt.Errorf("invalid topology config: %w", err)
	}
	return seed, nil
}

// BuildTransitGraph constructs the graph store from a seed snapshot.
// construction errors are fatal, no partially-built graph is returned.
func BuildTransitGraph(seed SeedTopology) (*TransitGraph, error) {
	graph := NewTransitGraph()

	for _, hub := range seed.Hubs {
		if err := graph.AddHub(hub.ID, pkg.GetHubCategory(hub.Category)); err != nil {
			return nil, err
		}
	}

	for _, conn := range seed.Connections {
		mode := pkg.GetMode(conn.Mode)
		if mode == pkg.MODE_UNKNOWN {
			return nil, fmt.Errorf("unknown mode %q on connection %s-%s", conn.Mode, conn.Source, conn.Destination)
		}
		if _, err := graph.AddConnection(conn.Source, conn.Destination, mode, conn.BaseTime); err != nil {
			return nil, err
		}
	}

	return graph, nil
}
