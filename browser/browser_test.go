package browser_test

import (
	"net/http"
	"testing"

	"github.com/gangwayhq/gangway/app"
	"github.com/gangwayhq/gangway/browser"
	"github.com/gangwayhq/gangway/handler"
	"github.com/gangwayhq/gangway/internal/test"
)

func TestBrowser_UsageBeforeVisit(t *testing.T) {
	b := browser.New(handler.NewGreeting(""))

	if _, err := b.StatusCode(); err != browser.ErrNoPageLoaded {
		t.Errorf("StatusCode: expected ErrNoPageLoaded, got %v", err)
	}
	if _, err := b.CurrentPageContains("Welcome!"); err != browser.ErrNoPageLoaded {
		t.Errorf("CurrentPageContains: expected ErrNoPageLoaded, got %v", err)
	}
	if _, err := b.ResponseHeaders(); err != browser.ErrNoPageLoaded {
		t.Errorf("ResponseHeaders: expected ErrNoPageLoaded, got %v", err)
	}
}

func TestBrowser_VisitRoot(t *testing.T) {
	helper := test.New(t)

	b := browser.New(handler.NewGreeting(""))
	helper.Must(b.Visit("/"))

	ok, err := b.CurrentPageContains("Welcome!")
	helper.Must(err)
	if !ok {
		t.Error("expected the greeting on the current page")
	}

	status, err := b.StatusCode()
	helper.Must(err)
	if status != http.StatusOK {
		t.Errorf("expected status 200, got %d", status)
	}
}

func TestBrowser_VisitUnknownPath(t *testing.T) {
	helper := test.New(t)

	// the starting application greets on every path
	b := browser.New(handler.NewGreeting(""))
	helper.Must(b.Visit("/blog"))

	status, err := b.StatusCode()
	helper.Must(err)
	if status != http.StatusOK {
		t.Errorf("expected status 200, got %d", status)
	}

	ok, err := b.CurrentPageContains(handler.DefaultGreeting)
	helper.Must(err)
	if !ok {
		t.Error("expected the default greeting body")
	}
}

func TestBrowser_ResponseHeaders(t *testing.T) {
	helper := test.New(t)

	b := browser.New(handler.NewGreeting(""))
	helper.Must(b.Visit("/"))

	header, err := b.ResponseHeaders()
	helper.Must(err)

	// "Welcome!" counts eight bytes
	if cl := header.Get("Content-Length"); cl != "8" {
		t.Errorf("expected content-length 8, got %q", cl)
	}
	if ct := header.Get("Content-Type"); ct != "text/html" {
		t.Errorf("expected an html content type, got %q", ct)
	}
}

func TestBrowser_ContentLengthOverride(t *testing.T) {
	helper := test.New(t)

	b := browser.New(app.HandlerFunc(func(_ *app.Environment) *app.Response {
		res := app.HTML(http.StatusOK, "abc")
		res.Header.Set("Content-Length", "999")
		return res
	}))
	helper.Must(b.Visit("/"))

	header, err := b.ResponseHeaders()
	helper.Must(err)
	if cl := header.Get("Content-Length"); cl != "3" {
		t.Errorf("expected the derived content-length 3, got %q", cl)
	}
}

func TestBrowser_AdapterFault(t *testing.T) {
	helper := test.New(t)

	b := browser.New(app.HandlerFunc(func(env *app.Environment) *app.Response {
		if env.Path() == "/error" {
			panic("boom")
		}
		return app.HTML(http.StatusOK, "fine")
	}))
	helper.Must(b.Visit("/error"))

	status, err := b.StatusCode()
	helper.Must(err)
	if status < 500 || status > 599 {
		t.Errorf("expected a 5xx status, got %d", status)
	}
}

func TestBrowser_RepeatedVisits(t *testing.T) {
	helper := test.New(t)

	b := browser.New(app.HandlerFunc(func(env *app.Environment) *app.Response {
		return app.HTML(http.StatusOK, "page "+env.Path())
	}))

	helper.Must(b.Visit("/one"))
	helper.Must(b.Visit("/two"))

	ok, err := b.CurrentPageContains("page /two")
	helper.Must(err)
	if !ok {
		t.Error("a visit must replace the current page")
	}

	ok, err = b.CurrentPageContains("page /one")
	helper.Must(err)
	if ok {
		t.Error("the previous page must be gone")
	}
}

func TestBrowser_IndependentInstances(t *testing.T) {
	helper := test.New(t)

	a := browser.New(handler.NewGreeting("from a"))
	b := browser.New(handler.NewGreeting("from b"))

	helper.Must(a.Visit("/"))

	if _, err := b.StatusCode(); err != browser.ErrNoPageLoaded {
		t.Errorf("instances must not share state, got %v", err)
	}
}
