// Package hello implements the front controller of the expense manager web
// interface: the root index view and the plain text greeting.
package hello

import (
	"net/http"

	"github.com/JaimeStill/expense-manager/pkg/routes"
	"github.com/JaimeStill/expense-manager/pkg/web"
)

const (
	// IndexView names the view rendered at the site root.
	IndexView = "index"

	// Greeting is the exact body served at /hello.
	Greeting = "Hello Tùng nho"
)

// Controller maps the two front routes to their responses. It holds no
// state, so one value may serve any number of concurrent requests.
type Controller struct{}

// New creates a controller.
func New() *Controller {
	return &Controller{}
}

// Index selects the index view.
func (c *Controller) Index(r *http.Request) string {
	return IndexView
}

// Hello returns the greeting text.
func (c *Controller) Hello(r *http.Request) string {
	return Greeting
}

// Routes returns the controller route table. Views are resolved by renderer.
// Neither route is bound to a method: any request to the exact path is served.
func (c *Controller) Routes(renderer web.Renderer) routes.Group {
	return routes.Group{
		Description: "Front controller",
		Routes: []routes.Route{
			{Pattern: "/", Handler: web.ViewHandler(renderer, c.Index)},
			{Pattern: "/hello", Handler: web.TextHandler(c.Hello)},
		},
	}
}
