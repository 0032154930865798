package handlers

import (
	"context"

	"engine_rul/internal/models"
	"engine_rul/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockInference struct {
	resp   models.PredictionResponse
	err    error
	loaded bool

	lastReq models.PredictionRequest
	calls   int
}

func (m *mockInference) Predict(ctx context.Context, req models.PredictionRequest) (models.PredictionResponse, error) {
	m.calls++
	m.lastReq = req
	return m.resp, m.err
}
func (m *mockInference) ModelLoaded() bool { return m.loaded }

type mockCharts struct {
	name   string
	err    error
	loaded bool

	lastPrompt string
	lastIntent models.ChartIntent
}

func (m *mockCharts) Generate(ctx context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	return m.name, m.err
}
func (m *mockCharts) Render(ctx context.Context, intent models.ChartIntent) (string, error) {
	m.lastIntent = intent
	return m.name, m.err
}
func (m *mockCharts) TelemetryLoaded() bool { return m.loaded }

type mockCatalog struct {
	list     []models.ChartInfo
	listErr  error
	content  map[string][]byte
	fetchErr error

	lastFetch string
}

func (m *mockCatalog) List(ctx context.Context) ([]models.ChartInfo, error) {
	return m.list, m.listErr
}
func (m *mockCatalog) Fetch(ctx context.Context, name string) ([]byte, error) {
	m.lastFetch = name
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.content[name], nil
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	h := NewHandler(s, nil, opts...)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
