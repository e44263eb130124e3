// Package app provides the web application module with embedded templates.
package app

import (
	"embed"
	"net/http"

	"github.com/JaimeStill/expense-manager/internal/hello"
	"github.com/JaimeStill/expense-manager/pkg/module"
	"github.com/JaimeStill/expense-manager/pkg/routes"
	"github.com/JaimeStill/expense-manager/pkg/web"
)

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const notFoundView = "404"

var views = []web.ViewDef{
	{Name: hello.IndexView, Template: "index.html", Title: "Home"},
	{Name: notFoundView, Template: "404.html", Title: "Not Found"},
}

// NewModule creates the root app module. Templates are parsed here so a bad
// template fails startup rather than the first request.
func NewModule(title string) (*module.Module, error) {
	ts, err := web.NewTemplateSet(web.TemplateConfig{
		LayoutFS:   layoutFS,
		ViewFS:     viewFS,
		LayoutGlob: "server/layouts/*.html",
		ViewDir:    "server/views",
		Layout:     "app.html",
		AppTitle:   title,
		BasePath:   "/",
	}, views)
	if err != nil {
		return nil, err
	}

	return module.New("/", buildRouter(ts)), nil
}

func buildRouter(ts *web.TemplateSet) http.Handler {
	r := web.NewRouter()
	r.SetFallback(ts.ErrorHandler(notFoundView, http.StatusNotFound))

	routes.Register(r, hello.New().Routes(ts))

	return r
}
