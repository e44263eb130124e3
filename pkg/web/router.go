package web

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// Router dispatches "METHOD /path" patterns with exact path matching.
// Unmatched paths go to the fallback handler; a matched path with an
// unregistered method answers 405.
type Router struct {
	mux *mux.Router
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{mux: mux.NewRouter()}
}

// Handle registers handler for pattern. The pattern is either "/path" or
// "METHOD /path". GET routes also answer HEAD.
func (r *Router) Handle(pattern string, handler http.Handler) {
	method, path := splitPattern(pattern)
	route := r.mux.Handle(path, handler)

	switch method {
	case "":
	case http.MethodGet:
		route.Methods(http.MethodGet, http.MethodHead)
	default:
		route.Methods(method)
	}
}

// HandleFunc registers a handler function for pattern.
func (r *Router) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	r.Handle(pattern, http.HandlerFunc(handler))
}

// SetFallback sets the handler for requests that match no registered path.
func (r *Router) SetFallback(handler http.HandlerFunc) {
	r.mux.NotFoundHandler = handler
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func splitPattern(pattern string) (method, path string) {
	if i := strings.IndexByte(pattern, ' '); i >= 0 {
		return pattern[:i], strings.TrimSpace(pattern[i+1:])
	}
	return "", pattern
}
