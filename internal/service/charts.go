package service

import (
	"context"
	"fmt"
	"time"

	"engine_rul/internal/apperr"
	"engine_rul/internal/charts"
	"engine_rul/internal/metrics"
	"engine_rul/internal/models"
	"engine_rul/internal/prompt"
	"engine_rul/internal/repository"
	"engine_rul/internal/telemetry"
)

type ChartService struct {
	data      telemetry.Dataset
	artifacts repository.ArtifactRepo
	metrics   *metrics.Metrics
}

func NewChartService(data telemetry.Dataset, artifacts repository.ArtifactRepo, m *metrics.Metrics) *ChartService {
	return &ChartService{data: data, artifacts: artifacts, metrics: m}
}

func (s *ChartService) TelemetryLoaded() bool {
	_, ok := s.data.Table()
	return ok
}

// Generate interprets the prompt and renders the matching chart.
func (s *ChartService) Generate(ctx context.Context, text string) (string, error) {
	return s.Render(ctx, prompt.Interpret(text))
}

// Render draws the chart for intent and stores it under the intent's
// artifact name, replacing any previous version. References to engines or
// sensors absent from the telemetry fail with Unrenderable and store nothing.
func (s *ChartService) Render(ctx context.Context, intent models.ChartIntent) (string, error) {
	start := time.Now()
	name, err := s.render(ctx, intent)
	s.metrics.ObserveChart(intent.Kind.String(), chartOutcome(err), time.Since(start))
	return name, err
}

func chartOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case apperr.KindOf(err) == apperr.KindUnrenderable:
		return metrics.OutcomeUnrenderable
	default:
		return metrics.OutcomeError
	}
}

func (s *ChartService) render(ctx context.Context, intent models.ChartIntent) (string, error) {
	tbl, ok := s.data.Table()
	if !ok {
		return "", apperr.Unrenderable("no telemetry data loaded")
	}

	var (
		page []byte
		err  error
	)
	switch intent.Kind {
	case models.IntentSensorForEngine:
		page, err = renderSensorForEngine(tbl, intent.Sensor, intent.Engine)
	case models.IntentSensorOverview:
		page, err = renderSensorOverview(tbl, intent.Sensor)
	case models.IntentEngineOverview:
		page, err = renderEngineOverview(tbl, intent.Engine)
	default:
		page, err = renderLifespans(tbl)
	}
	if err != nil {
		return "", err
	}

	name := intent.ArtifactName()
	if err := s.artifacts.Put(ctx, name, page); err != nil {
		return "", fmt.Errorf("store chart %q: %w", name, err)
	}
	return name, nil
}

func renderSensorForEngine(tbl *telemetry.Table, sensor, engine int) ([]byte, error) {
	rows := tbl.RowsForEngine(engine)
	if len(rows) == 0 {
		return nil, apperr.Unrenderable(fmt.Sprintf("engine %d has no telemetry", engine))
	}
	if !tbl.HasSensorColumn(telemetry.SensorColumn(sensor)) {
		return nil, apperr.Unrenderable(fmt.Sprintf("unknown sensor %d", sensor))
	}
	return charts.RenderLine(charts.SensorForEngine(sensor, engine, rows))
}

func renderSensorOverview(tbl *telemetry.Table, sensor int) ([]byte, error) {
	if !tbl.HasSensorColumn(telemetry.SensorColumn(sensor)) {
		return nil, apperr.Unrenderable(fmt.Sprintf("unknown sensor %d", sensor))
	}
	ids := tbl.DistinctEngineIDs()
	if len(ids) > charts.OverviewEngines {
		ids = ids[:charts.OverviewEngines]
	}
	runs := make([]charts.EngineRun, 0, len(ids))
	for _, id := range ids {
		runs = append(runs, charts.EngineRun{EngineID: id, Rows: tbl.RowsForEngine(id)})
	}
	return charts.RenderLine(charts.SensorOverview(sensor, runs))
}

func renderEngineOverview(tbl *telemetry.Table, engine int) ([]byte, error) {
	rows := tbl.RowsForEngine(engine)
	if len(rows) == 0 {
		return nil, apperr.Unrenderable(fmt.Sprintf("engine %d has no telemetry", engine))
	}
	sensors := make([]int, 0, len(charts.EngineOverviewSensors))
	for _, s := range charts.EngineOverviewSensors {
		if tbl.HasSensorColumn(telemetry.SensorColumn(s)) {
			sensors = append(sensors, s)
		}
	}
	return charts.RenderLine(charts.EngineOverview(engine, rows, sensors))
}

func renderLifespans(tbl *telemetry.Table) ([]byte, error) {
	spans := tbl.Lifespans()
	if len(spans) == 0 {
		return nil, apperr.Unrenderable("no engines in telemetry")
	}
	cycles := make([]int, len(spans))
	for i, l := range spans {
		cycles[i] = l.Cycles
	}
	return charts.RenderHistogram(charts.LifespanHistogram(cycles))
}
