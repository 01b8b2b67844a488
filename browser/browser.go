// Package browser drives an application adapter in-process the way a real
// browser would drive it over the wire. No sockets are involved: each visit
// constructs an Environment, invokes the adapter and keeps the response as
// the current page for browser-like assertions.
package browser

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gangwayhq/gangway/app"
)

// ErrNoPageLoaded marks a harness usage error: an assertion was requested
// before any Visit. This is a programming error in the test sequence, not an
// HTTP-layer failure.
var ErrNoPageLoaded = fmt.Errorf("browser: no page loaded, Visit first")

// Browser holds exactly one current page. Instances are independent and must
// not be shared across concurrent test sequences.
type Browser struct {
	handler app.Handler
	page    *app.Response
}

// New creates a harness for the given adapter. The adapter gets wrapped with
// the same fault boundary as in the dispatch server, so a panicking
// application is observed as a 5xx page rather than a crashed test.
func New(application app.Handler) *Browser {
	return &Browser{handler: app.Recover(application)}
}

// Visit performs a GET request for the given path with empty query and body
// and replaces the current page with the result.
func (b *Browser) Visit(path string) error {
	env, err := app.NewEnvironment(http.MethodGet, path, "", nil, nil)
	if err != nil {
		return err
	}
	b.page = b.handler.Handle(env)
	return nil
}

// CurrentPageContains reports whether the current page body contains the
// given text.
func (b *Browser) CurrentPageContains(text string) (bool, error) {
	if b.page == nil {
		return false, ErrNoPageLoaded
	}
	return strings.Contains(string(b.page.BodyBytes()), text), nil
}

// StatusCode returns the status of the current page.
func (b *Browser) StatusCode() (int, error) {
	if b.page == nil {
		return 0, ErrNoPageLoaded
	}
	return b.page.Status, nil
}

// ResponseHeaders returns the current page headers with a derived
// content-length reflecting the actual body size, mirroring the dispatch
// server's normalization.
func (b *Browser) ResponseHeaders() (http.Header, error) {
	if b.page == nil {
		return nil, ErrNoPageLoaded
	}
	header := b.page.Header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	header.Set("Content-Length", strconv.Itoa(b.page.ContentLength()))
	return header, nil
}
