package middleware_test

import (
	"slices"
	"testing"

	"github.com/JaimeStill/expense-manager/pkg/middleware"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "TEST_CORS_ENABLED",
	Origins:          "TEST_CORS_ORIGINS",
	AllowedMethods:   "TEST_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "TEST_CORS_ALLOWED_HEADERS",
	AllowCredentials: "TEST_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "TEST_CORS_MAX_AGE",
}

func TestCORSConfig_Finalize_Defaults(t *testing.T) {
	cfg := &middleware.CORSConfig{}

	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if len(cfg.AllowedMethods) == 0 {
		t.Error("AllowedMethods should have defaults")
	}
	if len(cfg.AllowedHeaders) == 0 {
		t.Error("AllowedHeaders should have defaults")
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", cfg.MaxAge)
	}
}

func TestCORSConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "true")
	t.Setenv("TEST_CORS_ORIGINS", " http://a.example , ,http://b.example")
	t.Setenv("TEST_CORS_ALLOWED_METHODS", "GET")
	t.Setenv("TEST_CORS_ALLOWED_HEADERS", "X-Request-ID")
	t.Setenv("TEST_CORS_ALLOW_CREDENTIALS", "true")
	t.Setenv("TEST_CORS_MAX_AGE", "60")

	cfg := &middleware.CORSConfig{}
	if err := cfg.Finalize(corsEnv); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !cfg.Enabled {
		t.Error("Enabled = false, want true")
	}
	if !slices.Equal(cfg.Origins, []string{"http://a.example", "http://b.example"}) {
		t.Errorf("Origins = %v", cfg.Origins)
	}
	if !slices.Equal(cfg.AllowedMethods, []string{"GET"}) {
		t.Errorf("AllowedMethods = %v", cfg.AllowedMethods)
	}
	if !slices.Equal(cfg.AllowedHeaders, []string{"X-Request-ID"}) {
		t.Errorf("AllowedHeaders = %v", cfg.AllowedHeaders)
	}
	if !cfg.AllowCredentials {
		t.Error("AllowCredentials = false, want true")
	}
	if cfg.MaxAge != 60 {
		t.Errorf("MaxAge = %d, want 60", cfg.MaxAge)
	}
}

func TestCORSConfig_Merge(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Origins: []string{"http://base.example"},
		MaxAge:  3600,
	}

	cfg.Merge(&middleware.CORSConfig{
		Enabled: true,
		Origins: []string{"http://overlay.example"},
	})

	if !cfg.Enabled {
		t.Error("Enabled should come from overlay")
	}
	if !slices.Equal(cfg.Origins, []string{"http://overlay.example"}) {
		t.Errorf("Origins = %v", cfg.Origins)
	}
	if cfg.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600 preserved", cfg.MaxAge)
	}
}
