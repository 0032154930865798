package charts

import (
	"errors"
	"fmt"

	"engine_rul/internal/models"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes one sensor trace of one engine.
type Summary struct {
	Cycles int
	Min    float64
	Max    float64
	Mean   float64
	Final  float64

	// trend line y = Intercept + Slope*cycle; valid when HasTrend
	Intercept float64
	Slope     float64
	HasTrend  bool
}

// Summarize computes range, mean, final value and a least-squares trend.
func Summarize(points []Point) (Summary, error) {
	if len(points) == 0 {
		return Summary{}, errors.New("no samples to summarize")
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	s := Summary{
		Cycles: len(points),
		Min:    floats.Min(ys),
		Max:    floats.Max(ys),
		Mean:   stat.Mean(ys, nil),
		Final:  ys[len(ys)-1],
	}
	// a fit needs at least two distinct cycles
	if len(points) >= 2 && floats.Min(xs) != floats.Max(xs) {
		s.Intercept, s.Slope = stat.LinearRegression(xs, ys, nil, false)
		s.HasTrend = true
	}
	return s, nil
}

// SensorReport is the detailed single-sensor chart: the trace with markers,
// a dashed least-squares trend line, summary statistics in the subtitle and
// the final value annotated.
func SensorReport(sensor, engine int, rows []models.TelemetryRow) (LineSpec, Summary, error) {
	points := sensorPoints(rows, sensor)
	sum, err := Summarize(points)
	if err != nil {
		return LineSpec{}, Summary{}, fmt.Errorf("sensor %d engine %d: %w", sensor, engine, err)
	}

	spec := LineSpec{
		Title:    fmt.Sprintf("Sensor %d Data for Engine %d", sensor, engine),
		Subtitle: fmt.Sprintf("Max: %.3f | Min: %.3f | Mean: %.3f", sum.Max, sum.Min, sum.Mean),
		XAxis:    cycleAxis,
		YAxis:    fmt.Sprintf("Sensor %d Value", sensor),
		Series: []Series{{
			Name:    fmt.Sprintf("Sensor %d", sensor),
			Points:  points,
			Color:   "red",
			Markers: true,
		}},
	}
	if sum.HasTrend {
		trend := make([]Point, len(points))
		for i, p := range points {
			trend[i] = Point{X: p.X, Y: sum.Intercept + sum.Slope*p.X}
		}
		spec.Series = append(spec.Series, Series{
			Name:   "Trend Line",
			Points: trend,
			Color:  "blue",
			Dashed: true,
		})
	}
	last := points[len(points)-1]
	spec.Marks = []Mark{{Name: fmt.Sprintf("Final Value: %.3f", sum.Final), X: last.X, Y: last.Y}}
	return spec, sum, nil
}
