package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"engine_rul/internal/apperr"
	"engine_rul/internal/metrics"
	"engine_rul/internal/models"
	"engine_rul/internal/regressor"
)

var errFeaturesRequired = errors.New("'features' is required and must be an object")

type InferenceService struct {
	model   regressor.Regressor
	metrics *metrics.Metrics
}

// NewInferenceService wraps a model loaded at startup. A nil model makes
// every Predict fail with ServiceUnavailable.
func NewInferenceService(model regressor.Regressor, m *metrics.Metrics) *InferenceService {
	return &InferenceService{model: model, metrics: m}
}

func (s *InferenceService) ModelLoaded() bool { return s.model != nil }

// Predict runs the model over the feature row. When CurrentCycle is set the
// response also carries CurrentCycle + PredictedRUL as the failure cycle.
// Missing features and model failures are both BadRequest with the raw text.
func (s *InferenceService) Predict(ctx context.Context, req models.PredictionRequest) (models.PredictionResponse, error) {
	start := time.Now()

	if s.model == nil {
		s.metrics.ObservePrediction(metrics.OutcomeUnavailable, 0)
		return models.PredictionResponse{}, apperr.ServiceUnavailable("model not loaded")
	}
	if req.Features == nil {
		s.metrics.ObservePrediction(metrics.OutcomeBadRequest, 0)
		return models.PredictionResponse{}, apperr.BadRequest(errFeaturesRequired)
	}

	rul, err := s.model.Predict(req.Features)
	if err == nil && (math.IsNaN(rul) || math.IsInf(rul, 0)) {
		err = fmt.Errorf("model returned non-finite value %v", rul)
	}
	if err != nil {
		s.metrics.ObservePrediction(metrics.OutcomeBadRequest, 0)
		return models.PredictionResponse{}, apperr.BadRequest(err)
	}

	resp := models.PredictionResponse{PredictedRUL: rul}
	if req.CurrentCycle != nil {
		failure := *req.CurrentCycle + rul
		resp.PredictedFailureCycle = &failure
	}
	s.metrics.ObservePrediction(metrics.OutcomeOK, time.Since(start))
	return resp, nil
}
