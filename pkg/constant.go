package pkg

// enum of travel mode served by a connection
type Mode uint8

const (
	MODE_EBUS Mode = iota
	MODE_ERICKSHAW
	MODE_AMBULANCE
	MODE_UNKNOWN
)

func GetMode(mode string) Mode {
	switch mode {
	case "E-Bus":
		return MODE_EBUS
	case "E-Rickshaw":
		return MODE_ERICKSHAW
	case "Ambulance":
		return MODE_AMBULANCE
	default:
		return MODE_UNKNOWN
	}
}

func (m Mode) String() string {
	switch m {
	case MODE_EBUS:
		return "E-Bus"
	case MODE_ERICKSHAW:
		return "E-Rickshaw"
	case MODE_AMBULANCE:
		return "Ambulance"
	default:
		return "Unknown"
	}
}

// enum of urban hub category
type HubCategory uint8

const (
	TRANSIT HubCategory = iota
	RICKSHAW_HUB
	HOSPITAL
	JUNCTION
	RIVERFRONT
	UNKNOWN_CATEGORY
)

func GetHubCategory(category string) HubCategory {
	switch category {
	case "Transit":
		return TRANSIT
	case "Rickshaw_Hub":
		return RICKSHAW_HUB
	case "Hospital":
		return HOSPITAL
	case "Junction":
		return JUNCTION
	case "Riverfront":
		return RIVERFRONT
	default:
		return UNKNOWN_CATEGORY
	}
}

func (c HubCategory) String() string {
	switch c {
	case TRANSIT:
		return "Transit"
	case RICKSHAW_HUB:
		return "Rickshaw_Hub"
	case HOSPITAL:
		return "Hospital"
	case JUNCTION:
		return "Junction"
	case RIVERFRONT:
		return "Riverfront"
	default:
		return "Unknown"
	}
}

const (
	INF_WEIGHT float64 = 1e15

	// disallowed-mode connections stay traversable but must never win against a
	// real route. kept well below INF_WEIGHT so sums along any path stay representable.
	MODE_FORBIDDEN_WEIGHT float64 = 1e9
)

// governance thresholds
const (
	CWC_DANGER_LEVEL        = 71.26 // official CWC flood mark for Varanasi, meters
	IRI_POOR_THRESHOLD      = 170.0 // pavement quality index, poor above this
	KICCC_CROWD_LIMIT       = 4.0   // pedestrians per sqm safety threshold
	AQI_UNHEALTHY_THRESHOLD = 200.0

	DEFAULT_IRI           = 80.0
	DEFAULT_CROWD_DENSITY = 0.5

	ROUGH_ROAD_FACTOR      = 1.4
	AQI_FACTOR_EBUS        = 1.05
	AQI_FACTOR_OTHER       = 1.10
	FLOOD_BLOCKADE_PENALTY = 2000.0
	MELA_RESTRICTION_DELAY = 60.0
)

// connection status tags. the last rule that fires owns the displayed tag,
// earlier multipliers still compound into the cost.
const (
	STATUS_CLEAR           = "Clear"
	STATUS_BROKEN_ROAD     = "CAUTION_BROKEN_ROAD"
	STATUS_HEALTH_NUDGE    = "HEALTH_NUDGE_ACTIVE"
	STATUS_FLOOD_BLOCKADE  = "BLOCKADE_FLOOD_ALERT"
	STATUS_PEDESTRIAN_ZONE = "PEDESTRIAN_ZONE_ACTIVE"

	SURGE_ALERT_FORMAT = "SURGE_ALERT_%vP/m2"
)

const (
	DEBUG = false
)
