package handler_test

import (
	"net/http"
	"testing"

	"github.com/gangwayhq/gangway/app"
	"github.com/gangwayhq/gangway/handler"
	"github.com/gangwayhq/gangway/internal/test"
)

func TestGreeting_Handle(t *testing.T) {
	helper := test.New(t)

	g := handler.NewGreeting("")

	for _, path := range []string{"/", "/blog", "/deep/path"} {
		env, err := app.NewEnvironment(http.MethodGet, path, "", nil, nil)
		helper.Must(err)

		res := g.Handle(env)
		if res.Status != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, res.Status)
		}
		if string(res.BodyBytes()) != handler.DefaultGreeting {
			t.Errorf("%s: expected the default greeting, got %q", path, string(res.BodyBytes()))
		}
		if ct := res.Header.Get("Content-Type"); ct != "text/html" {
			t.Errorf("%s: expected text/html, got %q", path, ct)
		}
	}
}

func TestGreeting_ConfiguredBody(t *testing.T) {
	helper := test.New(t)

	g := handler.NewGreeting("Moin!")

	env, err := app.NewEnvironment(http.MethodPost, "/", "", nil, nil)
	helper.Must(err)

	res := g.Handle(env)
	if string(res.BodyBytes()) != "Moin!" {
		t.Errorf("expected the configured greeting, got %q", string(res.BodyBytes()))
	}
}
