package telemetry

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"engine_rul/internal/models"
)

// ErrNoRows is returned by Parse for input with no data rows.
var ErrNoRows = errors.New("no telemetry rows")

// Dataset is the result of loading telemetry: either a table or nothing.
// Consumers must check the second return of Table.
type Dataset struct {
	table *Table
}

// Loaded wraps a table into a populated Dataset.
func Loaded(t *Table) Dataset { return Dataset{table: t} }

// Empty is the "no data loaded" dataset.
func Empty() Dataset { return Dataset{} }

// Table returns the loaded table and true, or nil and false when no data
// was loaded.
func (d Dataset) Table() (*Table, bool) {
	return d.table, d.table != nil
}

// Parse reads whitespace-delimited rows with the fixed 26-column layout
// (engine_id, cycle, setting_1..3, sensor_1..21). There is no header row.
// Blank lines are skipped; any other malformed line fails the whole parse,
// and so does an input without a single row.
func Parse(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var rows []models.TelemetryRow
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read telemetry: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return NewTable(rows), nil
}

func parseRow(fields []string) (models.TelemetryRow, error) {
	var row models.TelemetryRow
	if len(fields) != models.ColumnCount {
		return row, fmt.Errorf("expected %d columns, got %d", models.ColumnCount, len(fields))
	}

	var err error
	if row.EngineID, err = parseInt(fields[0]); err != nil {
		return row, fmt.Errorf("%s: %w", columns[0], err)
	}
	if row.Cycle, err = parseInt(fields[1]); err != nil {
		return row, fmt.Errorf("%s: %w", columns[1], err)
	}
	for i := 0; i < models.SettingCount; i++ {
		col := 2 + i
		if row.Settings[i], err = strconv.ParseFloat(fields[col], 64); err != nil {
			return row, fmt.Errorf("%s: %w", columns[col], err)
		}
	}
	for i := 0; i < models.SensorCount; i++ {
		col := 2 + models.SettingCount + i
		if row.Sensors[i], err = strconv.ParseFloat(fields[col], 64); err != nil {
			return row, fmt.Errorf("%s: %w", columns[col], err)
		}
	}
	return row, nil
}

// parseInt accepts integral values written as floats ("1.0"), which some
// exports produce for the id and cycle columns.
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int(f)) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}

// LoadFile parses the file at path. On any failure it returns Empty()
// together with the error, so the caller can log it and keep serving.
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Empty(), fmt.Errorf("open telemetry %q: %w", path, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return Empty(), fmt.Errorf("parse telemetry %q: %w", path, err)
	}
	return Loaded(t), nil
}
