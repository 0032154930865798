// Package charts builds chart descriptions from telemetry and renders them
// to standalone HTML pages.
package charts

import (
	"fmt"

	"engine_rul/internal/models"
)

// Point is one (cycle, value) sample.
type Point struct {
	X float64
	Y float64
}

// Series is one line on a chart.
type Series struct {
	Name    string
	Points  []Point
	Color   string
	Markers bool
	Dashed  bool
}

// Mark is an annotated point on the chart.
type Mark struct {
	Name string
	X, Y float64
}

// LineSpec is a render-ready line chart.
type LineSpec struct {
	Title    string
	Subtitle string
	XAxis    string
	YAxis    string
	Series   []Series
	Marks    []Mark
}

// EngineRun is the ordered trajectory of one engine.
type EngineRun struct {
	EngineID int
	Rows     []models.TelemetryRow
}

const cycleAxis = "Cycle"

// OverviewEngines is how many engines a sensor overview overlays.
const OverviewEngines = 5

// EngineOverviewSensors are the channels drawn for an engine overview.
var EngineOverviewSensors = []int{1, 2, 3, 4}

func sensorPoints(rows []models.TelemetryRow, sensor int) []Point {
	pts := make([]Point, 0, len(rows))
	for _, r := range rows {
		v, ok := r.Sensor(sensor)
		if !ok {
			continue
		}
		pts = append(pts, Point{X: float64(r.Cycle), Y: v})
	}
	return pts
}

// SensorForEngine is one sensor of one engine against cycle, with markers.
func SensorForEngine(sensor, engine int, rows []models.TelemetryRow) LineSpec {
	return LineSpec{
		Title: fmt.Sprintf("Sensor %d Data for Engine %d", sensor, engine),
		XAxis: cycleAxis,
		YAxis: fmt.Sprintf("Sensor %d Value", sensor),
		Series: []Series{{
			Name:    fmt.Sprintf("Sensor %d", sensor),
			Points:  sensorPoints(rows, sensor),
			Color:   "blue",
			Markers: true,
		}},
	}
}

// SensorOverview overlays one sensor across engines. Only the first
// OverviewEngines runs are used; lines are translucent and unmarked.
func SensorOverview(sensor int, runs []EngineRun) LineSpec {
	if len(runs) > OverviewEngines {
		runs = runs[:OverviewEngines]
	}
	spec := LineSpec{
		Title: fmt.Sprintf("Sensor %d Overview (First %d Engines)", sensor, OverviewEngines),
		XAxis: cycleAxis,
		YAxis: fmt.Sprintf("Sensor %d Value", sensor),
	}
	for i, run := range runs {
		spec.Series = append(spec.Series, Series{
			Name:   fmt.Sprintf("Engine %d", run.EngineID),
			Points: sensorPoints(run.Rows, sensor),
			Color:  paletteColor(i, overviewOpacity),
		})
	}
	return spec
}

// EngineOverview overlays several sensors of one engine.
func EngineOverview(engine int, rows []models.TelemetryRow, sensors []int) LineSpec {
	spec := LineSpec{
		Title: fmt.Sprintf("Engine %d - Key Sensors Overview", engine),
		XAxis: cycleAxis,
		YAxis: "Sensor Values",
	}
	for i, s := range sensors {
		spec.Series = append(spec.Series, Series{
			Name:   fmt.Sprintf("Sensor %d", s),
			Points: sensorPoints(rows, s),
			Color:  paletteColor(i, 1),
		})
	}
	return spec
}

const overviewOpacity = 0.7

// rgb triplets of the default palette
var palette = [][3]int{
	{79, 70, 229}, {16, 185, 129}, {245, 158, 11}, {239, 68, 68}, {139, 92, 246},
	{6, 182, 212}, {236, 72, 153}, {132, 204, 22}, {249, 115, 22}, {99, 102, 241},
}

func paletteColor(i int, alpha float64) string {
	c := palette[i%len(palette)]
	if alpha >= 1 {
		return fmt.Sprintf("rgb(%d,%d,%d)", c[0], c[1], c[2])
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.2g)", c[0], c[1], c[2], alpha)
}
