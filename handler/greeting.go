package handler

import (
	"net/http"

	"github.com/gangwayhq/gangway/app"
)

const DefaultGreeting = "Welcome!"

var _ app.Handler = &Greeting{}

// Greeting is the minimal application: status 200, an html content type and
// a greeting body for every path and method. Unknown paths deliberately get
// the same page; routing is an application concern layered on top.
type Greeting struct {
	body string
}

func NewGreeting(body string) *Greeting {
	b := body
	if b == "" {
		b = DefaultGreeting
	}
	return &Greeting{body: b}
}

func (g *Greeting) Handle(_ *app.Environment) *app.Response {
	return app.HTML(http.StatusOK, g.body)
}

func (g *Greeting) String() string {
	return "greeting"
}
