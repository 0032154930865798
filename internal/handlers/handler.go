package handlers

import (
	"net/http"
	"time"

	"engine_rul/internal/logger"
	"engine_rul/internal/metrics"
	"engine_rul/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services   *service.Service
	log        *logger.Logger
	metrics    *metrics.Metrics
	wsInterval time.Duration
}

// Option customizes a Handler.
type Option func(*Handler)

// WithMetrics exposes m on GET /metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithCatalogInterval sets the default push period of the /ws catalog feed.
func WithCatalogInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.wsInterval = d
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log, wsInterval: defaultInterval}
	for _, o := range opts {
		o(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware, h.accessLogMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	router.GET("/", h.dashboard)
	router.POST("/predict", h.predict)
	h.registerChartRoutes(router)

	// live catalog feed over WebSocket, same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerChartRoutes(r *gin.Engine) {
	r.POST("/generate_chart", h.generateChart)
	r.GET("/charts", h.listCharts)
	r.GET("/chart/:filename", h.serveChart)
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Warnw(logKey, fields...)
		}
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Description  Reports whether the model and the telemetry table were loaded at startup.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           statusOK,
		"model_loaded":     h.services.Inference.ModelLoaded(),
		"telemetry_loaded": h.services.Charts.TelemetryLoaded(),
	})
}

const statusOK = "ok"
