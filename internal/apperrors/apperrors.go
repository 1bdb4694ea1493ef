// Package apperrors provides chained sentinel errors that carry an HTTP status code.
//
// A child error created with New, Msg, Err or MsgErr unwraps to its parent, so
// errors.Is matches every ancestor in the chain:
//
//	ErrFog      = apperrors.New("error in processing fog")
//	ErrNotFound = ErrFog.New("fog not found").SetStatusCode(http.StatusNotFound)
//	...
//	return ErrNotFound.Msg("fog " + id + " not found")
package apperrors

import (
	"strings"
)

type Error interface {
	error
	Unwrap() []error
	// New derives a child error with the given message.
	New(msg string) Error
	// Msg derives a child error with a more specific message.
	Msg(msg string) Error
	// Err derives a child error that also wraps the given errors.
	Err(err ...error) Error
	// MsgErr combines Msg and Err.
	MsgErr(msg string, err ...error) Error
	SetStatusCode(code int) Error
	StatusCode() int
	// SetExpandError makes ErrorAll include the wrapped errors.
	SetExpandError(expand bool) Error
	ErrorAll() string
}

type appError struct {
	msg        string
	parent     *appError
	wrapped    []error
	statusCode int
	expand     bool
}

var _ Error = (*appError)(nil)

func New(msg string) Error {
	return &appError{msg: msg}
}

func (e *appError) Error() string {
	return e.msg
}

func (e *appError) Unwrap() []error {
	var errs []error
	if e.parent != nil {
		errs = append(errs, e.parent)
	}
	return append(errs, e.wrapped...)
}

func (e *appError) child(msg string) *appError {
	return &appError{
		msg:    msg,
		parent: e,
		expand: e.expand,
	}
}

func (e *appError) New(msg string) Error {
	return e.child(msg)
}

func (e *appError) Msg(msg string) Error {
	return e.child(msg)
}

func (e *appError) Err(err ...error) Error {
	c := e.child(e.msg)
	for _, w := range err {
		if w != nil {
			c.wrapped = append(c.wrapped, w)
		}
	}
	return c
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	c := e.Err(err...).(*appError)
	c.msg = msg
	return c
}

func (e *appError) SetStatusCode(code int) Error {
	c := *e
	c.statusCode = code
	return &c
}

// StatusCode returns the closest status code set in the chain, or 0.
func (e *appError) StatusCode() int {
	for p := e; p != nil; p = p.parent {
		if p.statusCode != 0 {
			return p.statusCode
		}
	}
	return 0
}

func (e *appError) SetExpandError(expand bool) Error {
	c := *e
	c.expand = expand
	return &c
}

func (e *appError) ErrorAll() string {
	var sb strings.Builder
	sb.WriteString(e.msg)
	if e.expand {
		for _, w := range e.wrapped {
			sb.WriteString(": ")
			sb.WriteString(w.Error())
		}
	}
	return sb.String()
}
