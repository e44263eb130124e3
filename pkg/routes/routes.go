// Package routes provides declarative route tables and their registration
// onto a pattern-based router.
package routes

import (
	"fmt"
	"net/http"
)

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Registrar accepts "METHOD /path" patterns, or a bare "/path" for routes
// that answer any method.
type Registrar interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
}

// Register adds every route in groups to r. It panics when two routes
// resolve to the same method and path.
func Register(r Registrar, groups ...Group) {
	seen := make(map[string]struct{})
	for _, group := range groups {
		register(r, "", group, seen)
	}
}

func register(r Registrar, parentPrefix string, group Group, seen map[string]struct{}) {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		path := prefix + route.Pattern
		if path == "" {
			path = "/"
		}

		pattern := path
		if route.Method != "" {
			pattern = route.Method + " " + path
		}
		if _, ok := seen[pattern]; ok {
			panic(fmt.Sprintf("routes: duplicate route %q", pattern))
		}
		seen[pattern] = struct{}{}

		r.HandleFunc(pattern, route.Handler)
	}
	for _, child := range group.Children {
		register(r, prefix, child, seen)
	}
}
