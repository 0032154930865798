// Package telemetry holds the read-only table of historical engine cycles.
package telemetry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"engine_rul/internal/models"
)

// Table is an immutable set of telemetry rows indexed by engine.
type Table struct {
	rows     []models.TelemetryRow
	engines  []int         // first-seen order
	byEngine map[int][]int // row indexes sorted by cycle
}

// NewTable indexes rows. The slice is copied.
func NewTable(rows []models.TelemetryRow) *Table {
	t := &Table{
		rows:     append([]models.TelemetryRow(nil), rows...),
		byEngine: make(map[int][]int),
	}
	for i, r := range t.rows {
		if _, seen := t.byEngine[r.EngineID]; !seen {
			t.engines = append(t.engines, r.EngineID)
		}
		t.byEngine[r.EngineID] = append(t.byEngine[r.EngineID], i)
	}
	for _, idx := range t.byEngine {
		sort.SliceStable(idx, func(a, b int) bool {
			return t.rows[idx[a]].Cycle < t.rows[idx[b]].Cycle
		})
	}
	return t
}

// Len is the total row count.
func (t *Table) Len() int { return len(t.rows) }

// RowsForEngine returns the engine's rows ordered by ascending cycle,
// or nil when the engine is unknown.
func (t *Table) RowsForEngine(engineID int) []models.TelemetryRow {
	idx := t.byEngine[engineID]
	if len(idx) == 0 {
		return nil
	}
	out := make([]models.TelemetryRow, len(idx))
	for i, j := range idx {
		out[i] = t.rows[j]
	}
	return out
}

// DistinctEngineIDs returns engine ids in the order they first appear.
func (t *Table) DistinctEngineIDs() []int {
	return append([]int(nil), t.engines...)
}

// Lifespan is the maximal observed cycle of one engine.
type Lifespan struct {
	EngineID int
	Cycles   int
}

// Lifespans returns one entry per engine, in first-seen order.
func (t *Table) Lifespans() []Lifespan {
	out := make([]Lifespan, 0, len(t.engines))
	for _, id := range t.engines {
		idx := t.byEngine[id]
		out = append(out, Lifespan{EngineID: id, Cycles: t.rows[idx[len(idx)-1]].Cycle})
	}
	return out
}

// Column names of the fixed schema, in file order.
var columns = buildColumns()

func buildColumns() []string {
	cols := []string{"engine_id", "cycle"}
	for i := 1; i <= models.SettingCount; i++ {
		cols = append(cols, fmt.Sprintf("setting_%d", i))
	}
	for i := 1; i <= models.SensorCount; i++ {
		cols = append(cols, SensorColumn(i))
	}
	return cols
}

// SensorColumn is the column name of sensor n.
func SensorColumn(n int) string { return "sensor_" + strconv.Itoa(n) }

// HasSensorColumn reports whether name is one of the sensor columns.
func (t *Table) HasSensorColumn(name string) bool {
	num, ok := strings.CutPrefix(name, "sensor_")
	if !ok {
		return false
	}
	n, err := strconv.Atoi(num)
	if err != nil || strconv.Itoa(n) != num {
		return false
	}
	return n >= 1 && n <= models.SensorCount
}
