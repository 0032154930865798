package models

import "fmt"

// IntentKind tags the variant held by a ChartIntent.
type IntentKind int

const (
	IntentDefault IntentKind = iota
	IntentSensorForEngine
	IntentSensorOverview
	IntentEngineOverview
)

func (k IntentKind) String() string {
	switch k {
	case IntentSensorForEngine:
		return "sensor_for_engine"
	case IntentSensorOverview:
		return "sensor_overview"
	case IntentEngineOverview:
		return "engine_overview"
	default:
		return "default"
	}
}

// ChartIntent is what a free-text prompt asks to be drawn.
// Sensor is set for SensorForEngine and SensorOverview, Engine for
// SensorForEngine and EngineOverview; unused fields stay zero.
type ChartIntent struct {
	Kind   IntentKind `json:"kind"`
	Sensor int        `json:"sensor,omitempty"`
	Engine int        `json:"engine,omitempty"`
}

func SensorForEngine(sensor, engine int) ChartIntent {
	return ChartIntent{Kind: IntentSensorForEngine, Sensor: sensor, Engine: engine}
}

func SensorOverview(sensor int) ChartIntent {
	return ChartIntent{Kind: IntentSensorOverview, Sensor: sensor}
}

func EngineOverview(engine int) ChartIntent {
	return ChartIntent{Kind: IntentEngineOverview, Engine: engine}
}

func DefaultIntent() ChartIntent {
	return ChartIntent{Kind: IntentDefault}
}

// ArtifactExt is the extension of every chart the dispatcher renders.
const ArtifactExt = ".html"

// ArtifactName returns the deterministic artifact filename for the intent.
func (i ChartIntent) ArtifactName() string {
	switch i.Kind {
	case IntentSensorForEngine:
		return fmt.Sprintf("sensor_%d_engine_%d%s", i.Sensor, i.Engine, ArtifactExt)
	case IntentSensorOverview:
		return fmt.Sprintf("sensor_%d_overview%s", i.Sensor, ArtifactExt)
	case IntentEngineOverview:
		return fmt.Sprintf("engine_%d_overview%s", i.Engine, ArtifactExt)
	default:
		return "engine_lifespan_distribution" + ArtifactExt
	}
}

// ChartInfo is one entry of the chart catalog.
type ChartInfo struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// ChartResult is the body of POST /generate_chart.
type ChartResult struct {
	Success   bool   `json:"success"`
	ChartPath string `json:"chart_path,omitempty"`
	Message   string `json:"message"`
}
