package logging

import (
	"net/http"
)

// RecorderInfo exposes response facts for the access log.
type RecorderInfo interface {
	StatusCode() int
	WrittenBytes() int
}

var (
	_ http.ResponseWriter = &StatusRecorder{}
	_ RecorderInfo        = &StatusRecorder{}
)

// StatusRecorder wraps a ResponseWriter and records the written status code
// and body size.
type StatusRecorder struct {
	rw           http.ResponseWriter
	status       int
	bytesWritten int
}

func NewStatusRecorder(rw http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{rw: rw}
}

// Header wraps the Header method of the ResponseWriter.
func (sr *StatusRecorder) Header() http.Header {
	return sr.rw.Header()
}

// Write wraps the Write method of the ResponseWriter.
func (sr *StatusRecorder) Write(p []byte) (int, error) {
	if sr.status == 0 {
		sr.WriteHeader(http.StatusOK)
	}
	n, err := sr.rw.Write(p)
	sr.bytesWritten += n
	return n, err
}

// WriteHeader wraps the WriteHeader method of the ResponseWriter.
func (sr *StatusRecorder) WriteHeader(statusCode int) {
	if sr.status != 0 {
		return
	}
	sr.status = statusCode
	sr.rw.Header().Set("Server", "gangway")
	sr.rw.WriteHeader(statusCode)
}

func (sr *StatusRecorder) StatusCode() int {
	return sr.status
}

func (sr *StatusRecorder) WrittenBytes() int {
	return sr.bytesWritten
}

// Flush implements the http.Flusher interface.
func (sr *StatusRecorder) Flush() {
	if rw, ok := sr.rw.(http.Flusher); ok {
		rw.Flush()
	}
}
