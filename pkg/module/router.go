package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to native handlers first, then to the module
// whose prefix owns the first path segment, then to the root module.
type Router struct {
	native      *http.ServeMux
	nativePaths map[string]struct{}
	modules     map[string]*Module
	root        *Module
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		native:      http.NewServeMux(),
		nativePaths: make(map[string]struct{}),
		modules:     make(map[string]*Module),
	}
}

// HandleNative registers a handler directly, bypassing module middleware.
// Used for infrastructure endpoints such as health probes.
// A request for a native path with an unregistered method answers 405.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
	r.nativePaths[patternPath(pattern)] = struct{}{}
}

// Mount attaches a module. Mounting a second module at the same prefix
// replaces the first.
func (r *Router) Mount(m *Module) {
	if m.IsRoot() {
		r.root = m
		return
	}
	r.modules[m.Prefix()] = m
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if _, pattern := r.native.Handler(req); pattern != "" {
		r.native.ServeHTTP(w, req)
		return
	}

	if _, ok := r.nativePaths[req.URL.Path]; ok {
		r.native.ServeHTTP(w, req)
		return
	}

	if m, ok := r.modules[firstSegment(req.URL.Path)]; ok {
		m.Serve(w, req)
		return
	}

	if r.root != nil {
		r.root.Serve(w, req)
		return
	}

	http.NotFound(w, req)
}

func firstSegment(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return "/" + path
}

func patternPath(pattern string) string {
	if i := strings.LastIndexByte(pattern, ' '); i >= 0 {
		return pattern[i+1:]
	}
	return pattern
}
