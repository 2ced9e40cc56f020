package omdb

import (
	"errors"
	"fmt"
)

// Kind classifies failures surfaced by the client.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidRequest
	KindTransport
	KindMalformedResponse
	KindDecoding
)

func (k Kind) String() string {
	switch k {
	case KindInvalidRequest:
		return "invalid request"
	case KindTransport:
		return "transport error"
	case KindMalformedResponse:
		return "malformed response"
	case KindDecoding:
		return "decoding error"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is matching against an *Error of the same kind.
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrTransport         = errors.New("transport error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrDecoding          = errors.New("decoding error")
)

// Error is returned by every Client operation.
type Error struct {
	Kind Kind
	Op   string // "search" or "details"
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("omdb %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("omdb %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidRequest:
		return e.Kind == KindInvalidRequest
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrMalformedResponse:
		return e.Kind == KindMalformedResponse
	case ErrDecoding:
		return e.Kind == KindDecoding
	}
	return false
}

// KindOf returns the Kind of err, or KindUnknown when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(op string, kind Kind, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
