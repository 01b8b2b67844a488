package app

import (
	"net/http"
)

// Response is the triple a handler returns: status code, header set and the
// body as an ordered sequence of byte chunks. Concatenating the chunks
// yields the full response entity. A Response is consumed exactly once by
// the dispatch server or the browser harness.
type Response struct {
	Status int
	Header http.Header
	Body   [][]byte
}

func NewResponse(status int) *Response {
	return &Response{
		Status: status,
		Header: make(http.Header),
	}
}

// HTML creates a response with a text/html content type and a single body chunk.
func HTML(status int, body string) *Response {
	res := NewResponse(status)
	res.Header.Set("Content-Type", "text/html")
	res.Body = [][]byte{[]byte(body)}
	return res
}

// Text creates a response with a text/plain content type and a single body chunk.
func Text(status int, body string) *Response {
	res := NewResponse(status)
	res.Header.Set("Content-Type", "text/plain")
	res.Body = [][]byte{[]byte(body)}
	return res
}

// WriteString appends a body chunk.
func (r *Response) WriteString(s string) {
	r.Body = append(r.Body, []byte(s))
}

// ContentLength returns the byte length of the concatenated body.
func (r *Response) ContentLength() int {
	var n int
	for _, chunk := range r.Body {
		n += len(chunk)
	}
	return n
}

// BodyBytes concatenates all body chunks.
func (r *Response) BodyBytes() []byte {
	if len(r.Body) == 1 {
		return r.Body[0]
	}
	var b []byte
	for _, chunk := range r.Body {
		b = append(b, chunk...)
	}
	return b
}

// ValidStatus reports whether the status code lies within the HTTP range.
func (r *Response) ValidStatus() bool {
	return r.Status >= 100 && r.Status <= 599
}
