package errors

import "fmt"

// Error wraps an application or transport failure with the HTTP status it
// maps to, a short client-facing synopsis and a detailed log message.
type Error struct {
	httpStatus int
	inner      error // details
	label      string
	message    string // log message
	synopsis   string // client message
}

type GoError interface {
	error
	HTTPStatus() int
	LogError() string
}

var _ GoError = &Error{}

func New() *Error {
	return Server
}

// Status returns a copy with the given http status code.
func (e *Error) Status(s int) *Error {
	err := *e
	err.httpStatus = s
	return &err
}

// Label returns a copy with the given prefix for client and log messages.
func (e *Error) Label(lbl string) *Error {
	err := *e
	err.label = lbl
	return &err
}

// Message returns a copy with the given log message.
func (e *Error) Message(msg string) *Error {
	err := *e
	err.message = msg
	return &err
}

// Messagef is the fmt variant of Message.
func (e *Error) Messagef(format string, args ...interface{}) *Error {
	return e.Message(fmt.Sprintf(format, args...))
}

// With returns a copy wrapping the given inner error.
func (e *Error) With(inner error) *Error {
	err := *e
	err.inner = inner
	return &err
}

func (e *Error) Unwrap() error {
	return e.inner
}

// Error implements the error interface with the client-facing message.
func (e *Error) Error() string {
	var msg string
	if e.label != "" {
		msg += e.label + ": "
	}
	if e.synopsis != "" {
		msg += e.synopsis
	}
	return msg
}

// LogError returns the detailed message, meant for log entries only.
func (e *Error) LogError() string {
	msg := e.Error()
	if e.message != "" {
		msg += ": " + e.message
	}
	if e.inner != nil {
		msg += ": " + e.inner.Error()
	}
	return msg
}

func (e *Error) HTTPStatus() int {
	return e.httpStatus
}
