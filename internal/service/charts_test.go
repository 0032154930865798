package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"engine_rul/internal/apperr"
	"engine_rul/internal/charts"
	"engine_rul/internal/metrics"
	"engine_rul/internal/models"
	"engine_rul/internal/telemetry"
	"engine_rul/internal/telemetry/telemetrytest"
)

func twoEngineData() telemetry.Dataset {
	return telemetrytest.Dataset(telemetrytest.Run(1, 3, 0), telemetrytest.Run(2, 2, 10))
}

func TestChartService_Generate_Names(t *testing.T) {
	arts := newMemArtifacts()
	s := NewChartService(twoEngineData(), arts, metrics.New())

	cases := map[string]string{
		"sensor 3 engine 1": "sensor_3_engine_1.html",
		"SENSOR_4":          "sensor_4_overview.html",
		"engine 2 please":   "engine_2_overview.html",
		"show me something": "engine_lifespan_distribution.html",
	}
	for prompt, want := range cases {
		got, err := s.Generate(context.Background(), prompt)
		if err != nil {
			t.Fatalf("Generate(%q): %v", prompt, err)
		}
		if got != want {
			t.Fatalf("Generate(%q)=%q, want %q", prompt, got, want)
		}
		if _, ok := arts.data[want]; !ok {
			t.Fatalf("artifact %q not stored", want)
		}
	}
}

func TestChartService_Render_IdempotentName(t *testing.T) {
	arts := newMemArtifacts()
	s := NewChartService(twoEngineData(), arts, nil)

	first, err := s.Render(context.Background(), models.SensorForEngine(2, 1))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := s.Render(context.Background(), models.SensorForEngine(2, 1))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first != second {
		t.Fatalf("names differ: %q vs %q", first, second)
	}
	names, _ := arts.List(context.Background())
	if len(names) != 1 {
		t.Fatalf("expected one artifact after overwrite, got %v", names)
	}
}

func TestChartService_Render_Unrenderable(t *testing.T) {
	cases := []models.ChartIntent{
		models.SensorForEngine(3, 99), // unknown engine
		models.SensorForEngine(22, 1), // unknown sensor
		models.SensorForEngine(0, 1),
		models.SensorOverview(30),
		models.EngineOverview(42),
	}
	for _, intent := range cases {
		arts := newMemArtifacts()
		s := NewChartService(twoEngineData(), arts, nil)

		name, err := s.Render(context.Background(), intent)
		if !errors.Is(err, apperr.ErrUnrenderable) {
			t.Fatalf("%+v: expected Unrenderable, got name=%q err=%v", intent, name, err)
		}
		if len(arts.puts) != 0 {
			t.Fatalf("%+v: nothing should be stored, got %v", intent, arts.puts)
		}
	}
}

func TestChartService_Render_NoData(t *testing.T) {
	intents := []models.ChartIntent{
		models.SensorForEngine(1, 1),
		models.SensorOverview(1),
		models.EngineOverview(1),
		models.DefaultIntent(),
	}
	arts := newMemArtifacts()
	s := NewChartService(telemetry.Empty(), arts, nil)
	if s.TelemetryLoaded() {
		t.Fatalf("TelemetryLoaded should be false")
	}
	for _, intent := range intents {
		if _, err := s.Render(context.Background(), intent); apperr.KindOf(err) != apperr.KindUnrenderable {
			t.Fatalf("%+v: expected Unrenderable, got %v", intent, err)
		}
	}
	if len(arts.puts) != 0 {
		t.Fatalf("nothing should be stored without data: %v", arts.puts)
	}
}

func TestChartService_Default_EmptyTelemetryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train_FD001.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	data, err := telemetry.LoadFile(path)
	if err == nil {
		t.Fatalf("expected a load error for a file without rows")
	}

	arts := newMemArtifacts()
	s := NewChartService(data, arts, nil)
	if s.TelemetryLoaded() {
		t.Fatalf("TelemetryLoaded should be false")
	}
	if _, err := s.Render(context.Background(), models.DefaultIntent()); apperr.KindOf(err) != apperr.KindUnrenderable {
		t.Fatalf("expected Unrenderable, got %v", err)
	}
	if len(arts.puts) != 0 {
		t.Fatalf("nothing should be stored: %v", arts.puts)
	}
}

func TestChartService_Default_NoEngines(t *testing.T) {
	arts := newMemArtifacts()
	s := NewChartService(telemetry.Loaded(telemetry.NewTable(nil)), arts, nil)

	if _, err := s.Render(context.Background(), models.DefaultIntent()); apperr.KindOf(err) != apperr.KindUnrenderable {
		t.Fatalf("expected Unrenderable, got %v", err)
	}
	if len(arts.puts) != 0 {
		t.Fatalf("nothing should be stored: %v", arts.puts)
	}
}

func TestChartService_Render_SensorOverviewFirstFiveEngines(t *testing.T) {
	var runs [][]models.TelemetryRow
	for id := 101; id <= 107; id++ {
		runs = append(runs, telemetrytest.Run(id, 2, 0))
	}
	arts := newMemArtifacts()
	s := NewChartService(telemetrytest.Dataset(runs...), arts, nil)

	name, err := s.Render(context.Background(), models.SensorOverview(2))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	page := string(arts.data[name])
	for id := 101; id <= 105; id++ {
		if !strings.Contains(page, "Engine "+strconv.Itoa(id)) {
			t.Fatalf("engine %d missing from overview", id)
		}
	}
	for _, id := range []int{106, 107} {
		if strings.Contains(page, "Engine "+strconv.Itoa(id)) {
			t.Fatalf("engine %d must not be in overview", id)
		}
	}
}

func TestChartService_Default_LifespanObservations(t *testing.T) {
	data := twoEngineData()
	tbl, ok := data.Table()
	if !ok {
		t.Fatalf("fixture should be loaded")
	}
	spans := tbl.Lifespans()
	if len(spans) != 2 || spans[0].Cycles != 3 || spans[1].Cycles != 2 {
		t.Fatalf("unexpected lifespans: %+v", spans)
	}
	h := charts.LifespanHistogram([]int{spans[0].Cycles, spans[1].Cycles})
	if h.Total() != len(tbl.DistinctEngineIDs()) {
		t.Fatalf("histogram total=%d, engines=%d", h.Total(), len(tbl.DistinctEngineIDs()))
	}

	arts := newMemArtifacts()
	s := NewChartService(data, arts, nil)
	name, err := s.Render(context.Background(), models.DefaultIntent())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if name != "engine_lifespan_distribution.html" {
		t.Fatalf("name=%q", name)
	}
}

func TestChartService_Render_StoreError(t *testing.T) {
	arts := newMemArtifacts()
	arts.putErr = errors.New("disk full")
	s := NewChartService(twoEngineData(), arts, nil)

	_, err := s.Render(context.Background(), models.EngineOverview(1))
	if err == nil || apperr.KindOf(err) == apperr.KindUnrenderable {
		t.Fatalf("expected a storage error, got %v", err)
	}
}
