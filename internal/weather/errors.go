package weather

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork          = errors.New("network error")
	ErrParse            = errors.New("parse error")
	ErrProvider         = errors.New("provider error")
	ErrPermissionDenied = errors.New("location permission denied")
	ErrInvalidQuery     = errors.New("invalid location query")
)

// FetchError carries the failure kind of a single fetch together with the
// query that produced it. errors.Is matches it against the Kind sentinel.
type FetchError struct {
	Kind  error
	Query string
	Code  int
	Err   error
}

func (e *FetchError) Error() string {
	msg := e.Kind.Error()
	if e.Query != "" {
		msg = fmt.Sprintf("%s for %q", msg, e.Query)
	}
	if e.Code != 0 {
		msg = fmt.Sprintf("%s (code %d)", msg, e.Code)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewNetworkError(query string, err error) *FetchError {
	return &FetchError{Kind: ErrNetwork, Query: query, Err: err}
}

func NewParseError(query string, err error) *FetchError {
	return &FetchError{Kind: ErrParse, Query: query, Err: err}
}

func NewProviderError(query string, code int, message string) *FetchError {
	return &FetchError{Kind: ErrProvider, Query: query, Code: code, Err: errors.New(message)}
}

// KindOf names the taxonomy bucket of err, or "unknown".
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrProvider):
		return "provider"
	case errors.Is(err, ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, ErrInvalidQuery):
		return "invalid_query"
	default:
		return "unknown"
	}
}
