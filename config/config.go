// Package config loads client configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the complete client configuration.
type Config struct {
	Service   ServiceConfig
	API       APIConfig
	Storage   StorageConfig
	Routes    RoutesConfig
	Logging   LoggingConfig
	Tracing   TracingConfig
	Profiling ProfilingConfig
	Metrics   MetricsConfig
}

// ServiceConfig identifies this client build.
type ServiceConfig struct {
	Name    string
	Version string
	Env     string
}

// APIConfig configures the backend endpoint and the two request timeouts:
// the ordinary one and the long one used for generation-style calls.
type APIConfig struct {
	BaseURL     string
	Timeout     time.Duration
	LongTimeout time.Duration
}

// StorageConfig locates the durable state file.
type StorageConfig struct {
	StateFile string
}

// RoutesConfig names the redirect targets used by the navigation guard.
type RoutesConfig struct {
	Login string
	Home  string
}

// LoggingConfig configures Zerolog.
type LoggingConfig struct {
	Level string
}

// TracingConfig configures the OTLP trace exporter.
type TracingConfig struct {
	Enabled    bool
	Endpoint   string
	SampleRate float64
}

// ProfilingConfig configures Pyroscope continuous profiling.
type ProfilingConfig struct {
	Enabled  bool
	Endpoint string
}

// MetricsConfig configures the optional Prometheus debug listener.
// An empty Addr disables the listener.
type MetricsConfig struct {
	Addr string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Service: ServiceConfig{
			Name:    getEnv("SERVICE_NAME", "travel-planner-client"),
			Version: getEnv("SERVICE_VERSION", "dev"),
			Env:     getEnv("SERVICE_ENV", "development"),
		},
		API: APIConfig{
			BaseURL:     getEnv("API_BASE_URL", "http://localhost:8000"),
			Timeout:     getDurationSeconds("API_TIMEOUT_SECONDS", 120),
			LongTimeout: getDurationSeconds("API_LONG_TIMEOUT_SECONDS", 180),
		},
		Storage: StorageConfig{
			StateFile: getEnv("STATE_FILE", defaultStateFile()),
		},
		Routes: RoutesConfig{
			Login: getEnv("LOGIN_ROUTE", "/login"),
			Home:  getEnv("HOME_ROUTE", "/planner"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Tracing: TracingConfig{
			Enabled:    getBool("TRACING_ENABLED", false),
			Endpoint:   getEnv("TRACING_ENDPOINT", "localhost:4318"),
			SampleRate: getFloat("TRACING_SAMPLE_RATE", 1.0),
		},
		Profiling: ProfilingConfig{
			Enabled:  getBool("PROFILING_ENABLED", false),
			Endpoint: getEnv("PROFILING_ENDPOINT", "http://localhost:4040"),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("METRICS_ADDR", ""),
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT_SECONDS must be positive")
	}
	if c.API.LongTimeout <= 0 {
		return fmt.Errorf("API_LONG_TIMEOUT_SECONDS must be positive")
	}
	if c.Storage.StateFile == "" {
		return fmt.Errorf("STATE_FILE is required")
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("TRACING_SAMPLE_RATE must be between 0 and 1")
	}
	return nil
}

func defaultStateFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "state.json"
	}
	return filepath.Join(home, ".config", "travel-planner", "state.json")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getDurationSeconds(key string, defSeconds int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(defSeconds) * time.Second
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return time.Duration(defSeconds) * time.Second
	}
	return time.Duration(n) * time.Second
}
