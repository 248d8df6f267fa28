package middleware

import (
	"fmt"

	pyroscope "github.com/grafana/pyroscope-go"

	"github.com/arx-shy/AI-Travel-Planner-Pro/config"
)

var profiler *pyroscope.Profiler

// InitProfiling starts Pyroscope continuous profiling for the client
// process. Call StopProfiling on exit.
func InitProfiling(cfg *config.Config) error {
	p, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: cfg.Service.Name,
		ServerAddress:   cfg.Profiling.Endpoint,
		Tags: map[string]string{
			"version": cfg.Service.Version,
			"env":     cfg.Service.Env,
		},
	})
	if err != nil {
		return fmt.Errorf("start pyroscope: %w", err)
	}
	profiler = p
	return nil
}

// StopProfiling flushes and stops the profiler, if one is running.
func StopProfiling() {
	if profiler != nil {
		_ = profiler.Stop()
		profiler = nil
	}
}
