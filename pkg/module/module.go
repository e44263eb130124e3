// Package module groups a handler with its own middleware under a single
// path prefix and mounts modules onto a shared router.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/expense-manager/pkg/middleware"
)

// Module is an isolated HTTP handler mounted at a single-level prefix such
// as "/api", or at the root "/".
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
	wrapped    http.Handler
}

// New creates a module. It panics if prefix is not "/" or a single-level
// path with a leading slash.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
		wrapped:    handler,
	}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// IsRoot reports whether the module is mounted at "/".
func (m *Module) IsRoot() bool {
	return m.prefix == "/"
}

// Use appends middleware applied to every request served by the module.
// Middleware must be registered before the module starts serving.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
	m.wrapped = m.middleware.Apply(m.handler)
}

// Handler returns the module handler wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	return m.wrapped
}

// Serve strips the module prefix from the request path and dispatches to Handler.
// Root modules receive the path unchanged.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	if m.IsRoot() {
		m.Handler().ServeHTTP(w, r)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""

	m.Handler().ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	if prefix == "/" {
		return nil
	}
	if prefix == "" || !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module: prefix %q must start with /", prefix)
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module: prefix %q must be a single path segment", prefix)
	}
	return nil
}
