package handler

import (
	"github.com/gangwayhq/gangway/app"
	"github.com/gangwayhq/gangway/errors"
)

var _ app.Handler = &Router{}

// Router dispatches on exact path match only. Pattern or prefix matching is
// left to richer applications; unmatched paths go to the fallback handler or
// result in a 404 page.
type Router struct {
	routes   map[string]app.Handler
	fallback app.Handler
}

func NewRouter(fallback app.Handler) *Router {
	return &Router{
		routes:   make(map[string]app.Handler),
		fallback: fallback,
	}
}

// Route binds a handler to an exact path and returns the router for chaining.
func (r *Router) Route(path string, h app.Handler) *Router {
	r.routes[path] = h
	return r
}

func (r *Router) Handle(env *app.Environment) *app.Response {
	if h, ok := r.routes[env.Path()]; ok {
		return h.Handle(env)
	}
	if r.fallback != nil {
		return r.fallback.Handle(env)
	}
	return notFound()
}

func (r *Router) String() string {
	return "router"
}

func notFound() *app.Response {
	err := errors.RouteNotFound
	return app.Text(err.HTTPStatus(), err.Error())
}
