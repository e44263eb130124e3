// Package infrastructure provides core service initialization for application startup.
// It assembles the shared dependencies every module relies on.
package infrastructure

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JaimeStill/expense-manager/internal/config"
	"github.com/JaimeStill/expense-manager/pkg/lifecycle"
	"github.com/JaimeStill/expense-manager/pkg/logging"
	"github.com/JaimeStill/expense-manager/pkg/middleware"
)

// Infrastructure holds the core systems required by all modules: lifecycle
// coordination, logging, and metrics. Metrics is nil when disabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Registry  *prometheus.Registry
	Metrics   *middleware.Metrics
}

// New creates an Infrastructure from the finalized application configuration.
func New(cfg *config.Config) *Infrastructure {
	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging),
	}

	if cfg.Metrics.IsEnabled() {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		infra.Registry = reg
		infra.Metrics = middleware.NewMetrics(reg)
	}

	return infra
}
