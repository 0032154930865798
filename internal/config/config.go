package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Chart storage backends.
const (
	BackendDir    = "dir"
	BackendSQLite = "sqlite"
)

// Config is the server configuration read from configs/config.yml and RUL_* env vars.
type Config struct {
	Port     string
	LogLevel string

	ModelPath     string
	TelemetryPath string

	ChartsBackend string
	ChartsDir     string
	ChartsDBPath  string

	WSInterval time.Duration
}

const envPrefix = "RUL"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "5000")
	v.SetDefault("log_level", "info")
	v.SetDefault("model.path", "rul_prediction_model.json")
	v.SetDefault("telemetry.path", "./data/CMaps/train_FD001.txt")
	v.SetDefault("charts.backend", BackendDir)
	v.SetDefault("charts.dir", "chart")
	v.SetDefault("charts.db_path", "charts.db")
	v.SetDefault("ws.interval", "2s")
}

// Load reads the config file named "config" from paths (configs/ when
// empty). A missing file is not an error: defaults and env still apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:          v.GetString("port"),
		LogLevel:      v.GetString("log_level"),
		ModelPath:     v.GetString("model.path"),
		TelemetryPath: v.GetString("telemetry.path"),
		ChartsBackend: strings.ToLower(v.GetString("charts.backend")),
		ChartsDir:     v.GetString("charts.dir"),
		ChartsDBPath:  v.GetString("charts.db_path"),
		WSInterval:    v.GetDuration("ws.interval"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late at startup.
func (c *Config) Validate() error {
	switch c.ChartsBackend {
	case BackendDir:
		if c.ChartsDir == "" {
			return errors.New("charts.dir is required for the dir backend")
		}
	case BackendSQLite:
		if c.ChartsDBPath == "" {
			return errors.New("charts.db_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown charts.backend %q: use %q or %q", c.ChartsBackend, BackendDir, BackendSQLite)
	}
	if c.WSInterval <= 0 {
		return fmt.Errorf("ws.interval must be positive, got %s", c.WSInterval)
	}
	return nil
}
