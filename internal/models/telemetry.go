package models

// Column counts of the fixed telemetry schema.
const (
	SettingCount = 3
	SensorCount  = 21
	ColumnCount  = 2 + SettingCount + SensorCount
)

// TelemetryRow is one operating cycle of one engine.
type TelemetryRow struct {
	EngineID int                   `json:"engine_id"`
	Cycle    int                   `json:"cycle"`
	Settings [SettingCount]float64 `json:"settings"`
	Sensors  [SensorCount]float64  `json:"sensors"`
}

// Sensor returns the reading of sensor n (1-based) and whether n is a known channel.
func (r TelemetryRow) Sensor(n int) (float64, bool) {
	if n < 1 || n > SensorCount {
		return 0, false
	}
	return r.Sensors[n-1], true
}
