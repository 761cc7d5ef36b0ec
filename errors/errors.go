package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	STAGE_BEFORE_REQUEST = "before-request"
	STAGE_REQUEST        = "request"
	STAGE_AFTER_REQUEST  = "after-request"

	TYPE_UNKNOWN         = "unknown"
	TYPE_NOT_IMPLEMENTED = "not-implemented"
	TYPE_JSON_PARSE      = "json"
	TYPE_REQUEST_PREP    = "request-prep"
	TYPE_IO              = "io"
	TYPE_HTTP_STATUS     = "not-ok-http-status"
	TYPE_INVALID_DATA    = "invalid-data"
	TYPE_EXHAUSTED       = "retries-exhausted"

	// Steam EResult codes surfaced by the Web API.
	// See: https://partner.steamgames.com/doc/api/steam_api#EResult
	EResultNone           = 0
	EResultOK             = 1
	EResultFail           = 2
	EResultInvalidState   = 3
	EResultAccessDenied   = 15
	EResultServiceUnavail = 20
	EResultLimitExceeded  = 25
	EResultRevoked        = 26
	EResultExpired        = 27
	EResultNoMatch        = 42
)

type ApiError struct {
	Stage          string
	Type           string
	SourceErr      error
	Body           []byte
	HttpStatusCode int

	EResult int
}

var _ error = &ApiError{}

func (e *ApiError) Error() string {
	var err string
	if e.SourceErr != nil {
		err = e.SourceErr.Error()
	} else {
		err = string(e.Body)
	}
	return fmt.Sprintf(
		"http request to Steam failed during '%s' stage with error type '%s', httpStatus: '%d'; original err: %v",
		e.Stage, e.Type, e.HttpStatusCode, err,
	)
}

// Is method is required by errors.Is() to properly distinguish between
// different types -vs- same pointer to the same type.
// Without it, errors.Is(err, &ApiError{}) returns false:
// ok := errors.Is(errors.Join(&ApiError{}), &ApiError{})
// ^ would be false
func (e *ApiError) Is(other error) bool {
	var err *ApiError
	return errors.As(other, &err) && err != nil
}

// Transient reports whether this error represents a temporary condition
// that a bounded retry can reasonably recover from: transport-level
// failures, 429s, and 5xx responses. Everything else (bad requests,
// auth failures, parse errors) is permanent and must not be retried.
func (e *ApiError) Transient() bool {
	switch e.Type {
	case TYPE_IO:
		return true
	case TYPE_HTTP_STATUS:
		return e.HttpStatusCode == http.StatusTooManyRequests ||
			e.HttpStatusCode >= http.StatusInternalServerError
	}
	return false
}

// IsTransient reports whether err carries a transient ApiError
// anywhere in its chain.
func IsTransient(err error) bool {
	var apiErr *ApiError
	if errors.As(err, &apiErr) && apiErr != nil {
		return apiErr.Transient()
	}
	return false
}
