package app

import (
	"bytes"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/gangwayhq/gangway/errors"
)

var allowedMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// Environment represents one inbound request as seen by an application
// handler. It is immutable after construction; the dispatch server and the
// browser harness are the only producers. The body is a one-shot stream and
// must be read at most once.
type Environment struct {
	method string
	path   string
	query  string
	header http.Header
	body   io.Reader
}

// NewEnvironment validates and normalizes the request metadata. The method
// must be one of the allowed HTTP methods, the path is cleaned to an
// absolute form. The given header is copied, a nil body reads as empty.
func NewEnvironment(method, rawPath, query string, header http.Header, body io.Reader) (*Environment, error) {
	m := strings.ToUpper(method)
	if !validMethod(m) {
		return nil, errors.ClientRequest.Messagef("unsupported method %q", method)
	}

	p := rawPath
	if p == "" {
		p = "/"
	}
	if !strings.HasPrefix(p, "/") {
		return nil, errors.ClientRequest.Messagef("non-absolute path %q", rawPath)
	}
	p = path.Clean(p)

	h := header.Clone()
	if h == nil {
		h = make(http.Header)
	}

	b := body
	if b == nil {
		b = bytes.NewReader(nil)
	}

	return &Environment{
		method: m,
		path:   p,
		query:  query,
		header: h,
		body:   b,
	}, nil
}

func validMethod(m string) bool {
	for _, allowed := range allowedMethods {
		if m == allowed {
			return true
		}
	}
	return false
}

func (e *Environment) Method() string {
	return e.method
}

func (e *Environment) Path() string {
	return e.path
}

// Query returns the raw query string; parsing key/value pairs is an
// application concern.
func (e *Environment) Query() string {
	return e.query
}

// Header returns a copy of the request header set.
func (e *Environment) Header() http.Header {
	return e.header.Clone()
}

// HeaderValue returns the first value for the case-insensitive key.
func (e *Environment) HeaderValue(key string) string {
	return e.header.Get(key)
}

// Body returns the request body stream. It is single-pass: bytes consumed
// here are gone, there is no rewind.
func (e *Environment) Body() io.Reader {
	return e.body
}
