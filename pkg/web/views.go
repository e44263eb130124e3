// Package web provides infrastructure for serving server-rendered views and
// plain text responses. Templates are parsed once at startup and views are
// addressed by name, so handlers only decide which view to show.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ViewDef binds a view name to its template file and page title.
type ViewDef struct {
	Name     string
	Template string
	Title    string
}

// ViewData contains the data passed to templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type ViewData struct {
	Title    string
	AppTitle string
	BasePath string
	Data     any
}

// Renderer resolves a view name to rendered output.
type Renderer interface {
	Render(w http.ResponseWriter, status int, view string, data any) error
}

// TemplateSet holds pre-parsed view templates, each cloned from a shared
// set of layouts. It is read-only after construction and safe for
// concurrent use.
type TemplateSet struct {
	layout   string
	appTitle string
	basePath string
	views    map[string]*template.Template
	defs     map[string]ViewDef
}

// TemplateConfig describes where layouts and views live and how views are wrapped.
type TemplateConfig struct {
	LayoutFS   fs.FS
	ViewFS     fs.FS
	LayoutGlob string
	ViewDir    string
	Layout     string
	AppTitle   string
	BasePath   string
}

// NewTemplateSet parses the layouts once and clones them for each view.
// Any missing or malformed template fails construction.
func NewTemplateSet(cfg TemplateConfig, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(cfg.LayoutFS, cfg.LayoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	if layouts.Lookup(cfg.Layout) == nil {
		return nil, fmt.Errorf("layout not found: %s", cfg.Layout)
	}

	viewSub, err := fs.Sub(cfg.ViewFS, cfg.ViewDir)
	if err != nil {
		return nil, err
	}

	ts := &TemplateSet{
		layout:   cfg.Layout,
		appTitle: cfg.AppTitle,
		basePath: cfg.BasePath,
		views:    make(map[string]*template.Template, len(views)),
		defs:     make(map[string]ViewDef, len(views)),
	}

	for _, v := range views {
		if _, ok := ts.defs[v.Name]; ok {
			return nil, fmt.Errorf("duplicate view: %s", v.Name)
		}

		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Name, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}

		ts.views[v.Name] = t
		ts.defs[v.Name] = v
	}

	return ts, nil
}

// Has reports whether a view with the given name was registered.
func (ts *TemplateSet) Has(view string) bool {
	_, ok := ts.views[view]
	return ok
}

// Render executes the layout for the named view and writes it with the given
// status. Output is buffered so a failed execution writes nothing.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, view string, data any) error {
	t, ok := ts.views[view]
	if !ok {
		return fmt.Errorf("view not found: %s", view)
	}

	vd := ViewData{
		Title:    ts.defs[view].Title,
		AppTitle: ts.appTitle,
		BasePath: ts.basePath,
		Data:     data,
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, ts.layout, vd); err != nil {
		return fmt.Errorf("render %s: %w", view, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// ErrorHandler returns a handler that renders the named view with status.
// It falls back to a plain status text response if rendering fails.
func (ts *TemplateSet) ErrorHandler(view string, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Render(w, status, view, nil); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}
