package logflare

import (
	"errors"
	"net/http"
)

// Kind classifies an Error.
type Kind int

const (
	// KindConfig is returned by New for an invalid Config.
	KindConfig Kind = iota + 1
	// KindSerialization means the batch could not be encoded as JSON.
	KindSerialization
	// KindRequest means the request URL could not be built.
	KindRequest
	// KindTransport means no response was obtained (network failure,
	// cancellation, body read failure).
	KindTransport
	// KindResponse means a response was received but was unsuccessful or
	// could not be interpreted.
	KindResponse
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindSerialization:
		return "serialization"
	case KindRequest:
		return "request"
	case KindTransport:
		return "transport"
	case KindResponse:
		return "response"
	default:
		return "unknown"
	}
}

// Sentinels for use with errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrConfig        = errors.New("logflare: configuration error")
	ErrSerialization = errors.New("logflare: serialization error")
	ErrRequest       = errors.New("logflare: request error")
	ErrTransport     = errors.New("logflare: transport error")
	ErrResponse      = errors.New("logflare: response error")
)

// ResponseInfo describes the HTTP response attached to a KindResponse error.
type ResponseInfo struct {
	StatusCode int
	Status     string
	Header     http.Header
}

// Error is the error type returned by New, SendEvent and SendEvents.
type Error struct {
	Kind    Kind
	Message string

	// Err is the underlying cause, if any.
	Err error

	// Response is set when an HTTP response was received.
	Response *ResponseInfo

	// Body is the response body decoded as JSON, or nil if it was absent or
	// not valid JSON.
	Body any
}

func (e *Error) Error() string {
	return "logflare: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

func (k Kind) sentinel() error {
	switch k {
	case KindConfig:
		return ErrConfig
	case KindSerialization:
		return ErrSerialization
	case KindRequest:
		return ErrRequest
	case KindTransport:
		return ErrTransport
	case KindResponse:
		return ErrResponse
	default:
		return nil
	}
}

func newResponseInfo(resp *http.Response) *ResponseInfo {
	if resp == nil {
		return nil
	}
	return &ResponseInfo{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header.Clone(),
	}
}
