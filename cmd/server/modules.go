package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/expense-manager/internal/config"
	"github.com/JaimeStill/expense-manager/internal/infrastructure"
	"github.com/JaimeStill/expense-manager/pkg/middleware"
	"github.com/JaimeStill/expense-manager/pkg/module"
	"github.com/JaimeStill/expense-manager/web/app"
)

type Modules struct {
	App *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	appModule, err := app.NewModule(cfg.App.Title)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.TrimSlash())
	appModule.Use(middleware.Logger(infra.Logger.With("module", "app")))
	appModule.Use(middleware.CORS(&cfg.CORS))

	return &Modules{
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	if infra.Registry != nil {
		router.HandleNative("GET "+cfg.Metrics.Path, promhttp.HandlerFor(infra.Registry, promhttp.HandlerOpts{
			ErrorLog: slogErrorLog{infra.Logger},
		}).ServeHTTP)
	}

	return router
}

// withMetrics wraps the whole router so every request is counted,
// including health probes and unmatched paths.
func withMetrics(infra *infrastructure.Infrastructure, h http.Handler) http.Handler {
	if infra.Metrics == nil {
		return h
	}
	return infra.Metrics.Middleware()(h)
}

// slogErrorLog adapts slog to the promhttp error logger.
type slogErrorLog struct {
	logger *slog.Logger
}

func (l slogErrorLog) Println(v ...any) {
	l.logger.Error("metrics exposition error", "error", fmt.Sprint(v...))
}
