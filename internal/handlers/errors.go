package handlers

import (
	"errors"
	"net/http"

	"cadastral-lookup-api/internal/models"
	"cadastral-lookup-api/internal/nspd"
	"cadastral-lookup-api/internal/services"
)

// ErrorKind classifies lookup failures
type ErrorKind string

const (
	KindMethodNotAllowed  ErrorKind = "MethodNotAllowed"
	KindMissingParameter  ErrorKind = "MissingParameter"
	KindNotFound          ErrorKind = "NotFound"
	KindUpstreamHTTPError ErrorKind = "UpstreamHTTPError"
	KindUnexpectedFailure ErrorKind = "UnexpectedFailure"
)

// Error messages returned to clients
const (
	msgMethodNotAllowed = "Method not allowed"
	msgNotFound         = "Parcel not found"
)

// LookupError carries the kind and HTTP status of a failed lookup
type LookupError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *LookupError) Error() string {
	return e.Err.Error()
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// classifyError maps a service error onto a LookupError. Upstream HTTP errors
// keep the provider's status code.
func classifyError(err error) *LookupError {
	var lookupErr *LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr
	}

	var httpErr *nspd.HTTPError
	switch {
	case errors.Is(err, models.ErrMissingCadastralNumber):
		return &LookupError{Kind: KindMissingParameter, StatusCode: http.StatusBadRequest, Err: err}
	case errors.Is(err, services.ErrParcelNotFound):
		return &LookupError{Kind: KindNotFound, StatusCode: http.StatusNotFound, Err: err}
	case errors.As(err, &httpErr):
		return &LookupError{Kind: KindUpstreamHTTPError, StatusCode: httpErr.StatusCode, Err: err}
	default:
		return &LookupError{Kind: KindUnexpectedFailure, StatusCode: http.StatusInternalServerError, Err: err}
	}
}

// clientMessage returns the error text placed in the response body
func (e *LookupError) clientMessage() string {
	switch e.Kind {
	case KindMethodNotAllowed:
		return msgMethodNotAllowed
	case KindMissingParameter:
		return models.ErrMissingCadastralNumber.Error()
	case KindNotFound:
		return msgNotFound
	default:
		return e.Err.Error()
	}
}
