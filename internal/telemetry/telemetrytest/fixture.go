// Package telemetrytest builds in-memory telemetry fixtures for tests.
package telemetrytest

import (
	"engine_rul/internal/models"
	"engine_rul/internal/telemetry"
)

// Row builds a row; sensors fill sensor_1.. in order, the rest stay zero.
func Row(engine, cycle int, sensors ...float64) models.TelemetryRow {
	r := models.TelemetryRow{EngineID: engine, Cycle: cycle}
	copy(r.Sensors[:], sensors)
	return r
}

// Run builds cycles 1..n for one engine with sensor_k = base + k*cycle.
func Run(engine, n int, base float64) []models.TelemetryRow {
	rows := make([]models.TelemetryRow, 0, n)
	for c := 1; c <= n; c++ {
		r := models.TelemetryRow{EngineID: engine, Cycle: c}
		for k := range r.Sensors {
			r.Sensors[k] = base + float64(k+1)*float64(c)
		}
		rows = append(rows, r)
	}
	return rows
}

// Dataset wraps the given runs into a loaded dataset.
func Dataset(runs ...[]models.TelemetryRow) telemetry.Dataset {
	var all []models.TelemetryRow
	for _, r := range runs {
		all = append(all, r...)
	}
	return telemetry.Loaded(telemetry.NewTable(all))
}
