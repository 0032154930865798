package service

import (
	"context"

	"engine_rul/internal/metrics"
	"engine_rul/internal/models"
	"engine_rul/internal/regressor"
	"engine_rul/internal/repository"
	"engine_rul/internal/telemetry"
)

// Inference turns a feature snapshot into a remaining-useful-life estimate.
type Inference interface {
	Predict(ctx context.Context, req models.PredictionRequest) (models.PredictionResponse, error)
	ModelLoaded() bool
}

// Charts interprets prompts and renders chart artifacts.
type Charts interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Render(ctx context.Context, intent models.ChartIntent) (string, error)
	TelemetryLoaded() bool
}

// Catalog lists and serves stored chart artifacts.
type Catalog interface {
	List(ctx context.Context) ([]models.ChartInfo, error)
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Service aggregates the sub-services used by the HTTP layer.
type Service struct {
	Inference
	Charts
	Catalog
}

// Deps are the resources loaded once at startup. Model may be nil when it
// failed to load; Data may be telemetry.Empty().
type Deps struct {
	Model   regressor.Regressor
	Data    telemetry.Dataset
	Repos   *repository.Repository
	Metrics *metrics.Metrics
}

func NewService(d Deps) *Service {
	return &Service{
		Inference: NewInferenceService(d.Model, d.Metrics),
		Charts:    NewChartService(d.Data, d.Repos.Artifacts, d.Metrics),
		Catalog:   NewCatalogService(d.Repos.Artifacts),
	}
}
