package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "engine_rul/docs"
	"engine_rul/internal/config"
	"engine_rul/internal/handlers"
	"engine_rul/internal/logger"
	"engine_rul/internal/metrics"
	"engine_rul/internal/regressor"
	"engine_rul/internal/repository"
	"engine_rul/internal/repository/db"
	"engine_rul/internal/server"
	"engine_rul/internal/service"
	"engine_rul/internal/telemetry"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title        Engine RUL API
// @version      1.0
// @description  Remaining-useful-life inference and prompt-driven telemetry charts.
// @BasePath     /

func main() {
	// load configs/config.yml + RUL_* env
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)
	if cfg.LogLevel != logger.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	m := metrics.New()
	model := loadModel(cfg.ModelPath, log)
	data := loadTelemetry(cfg.TelemetryPath, log, m)

	repos, closeRepos, err := openRepository(cfg, log)
	if err != nil {
		log.Fatalw("failed to open chart store", "backend", cfg.ChartsBackend, "err", err)
	}
	defer closeRepos()

	// wire dependencies
	services := service.NewService(service.Deps{
		Model:   model,
		Data:    data,
		Repos:   repos,
		Metrics: m,
	})
	apiHandler := handlers.NewHandler(services, log,
		handlers.WithMetrics(m),
		handlers.WithCatalogInterval(cfg.WSInterval),
	)

	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	waitForShutdown(srv, log)
}

// loadModel returns nil when the model cannot be read; /predict then answers 503.
func loadModel(path string, log *logger.Logger) regressor.Regressor {
	model, err := regressor.LoadFile(path)
	if err != nil {
		log.Errorw("model_load_failed", "path", path, "err", err)
		return nil
	}
	log.Infow("model_loaded", "path", path)
	return model
}

// loadTelemetry returns an empty dataset on failure; every chart is then unrenderable.
func loadTelemetry(path string, log *logger.Logger, m *metrics.Metrics) telemetry.Dataset {
	data, err := telemetry.LoadFile(path)
	if err != nil {
		log.Errorw("telemetry_load_failed", "path", path, "err", err)
		m.SetTelemetryRows(0)
		return telemetry.Empty()
	}
	t, _ := data.Table()
	log.Infow("telemetry_loaded", "path", path, "rows", t.Len(), "engines", len(t.DistinctEngineIDs()))
	m.SetTelemetryRows(t.Len())
	return data
}

// openRepository builds the chart store for the configured backend.
func openRepository(cfg *config.Config, log *logger.Logger) (*repository.Repository, func(), error) {
	if cfg.ChartsBackend == config.BackendSQLite {
		conn, err := db.InitDB(cfg.ChartsDBPath)
		if err != nil {
			return nil, nil, err
		}
		log.Infow("chart_store_ready", "backend", cfg.ChartsBackend, "path", cfg.ChartsDBPath)
		return repository.NewSQLiteRepository(conn), closeDB(conn, log), nil
	}

	repos, err := repository.NewDirRepository(cfg.ChartsDir)
	if err != nil {
		return nil, nil, err
	}
	log.Infow("chart_store_ready", "backend", cfg.ChartsBackend, "dir", cfg.ChartsDir)
	return repos, func() {}, nil
}

func closeDB(conn *sql.DB, log *logger.Logger) func() {
	return func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_server_starting", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown blocks until SIGINT/SIGTERM and then drains in-flight requests.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
