package web

import (
	"io"
	"net/http"
)

// ViewFunc selects the view to render for a request.
type ViewFunc func(r *http.Request) string

// TextFunc produces a plain text body for a request.
type TextFunc func(r *http.Request) string

// ViewHandler renders the view named by fn with status 200.
func ViewHandler(renderer Renderer, fn ViewFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := renderer.Render(w, http.StatusOK, fn(r), nil); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// TextHandler writes the body produced by fn as UTF-8 plain text.
func TextHandler(fn TextFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, fn(r))
	}
}
