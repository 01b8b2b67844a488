package app

import (
	"fmt"
	"net/http"

	"github.com/gangwayhq/gangway/errors"
)

// Handler is the application adapter contract: one operation mapping an
// Environment to a Response. Implementations must return some well-formed
// Response for every Environment, including unknown paths and methods, and
// must not retain the Environment beyond the call.
type Handler interface {
	Handle(env *Environment) *Response
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(env *Environment) *Response

func (f HandlerFunc) Handle(env *Environment) *Response {
	return f(env)
}

var _ Handler = &recoverHandler{}

type recoverHandler struct {
	next Handler
}

// Recover wraps a handler with the adapter fault boundary: a panic while
// computing a response, a nil response and a status outside the HTTP range
// all collapse into a plain 500 response. The caller is guaranteed a
// well-formed triple.
func Recover(next Handler) Handler {
	return &recoverHandler{next: next}
}

func (r *recoverHandler) Handle(env *Environment) (res *Response) {
	defer func() {
		if rc := recover(); rc != nil {
			res = faultResponse(fmt.Errorf("%v", rc))
		}
	}()

	res = r.next.Handle(env)
	if res == nil {
		return faultResponse(fmt.Errorf("handler returned no response"))
	}
	if !res.ValidStatus() {
		return faultResponse(fmt.Errorf("handler returned status %d", res.Status))
	}
	return res
}

func (r *recoverHandler) String() string {
	if s, ok := r.next.(fmt.Stringer); ok {
		return s.String()
	}
	return ""
}

func faultResponse(inner error) *Response {
	err := errors.Server.With(inner)
	res := Text(http.StatusInternalServerError, err.Error())
	return res
}
