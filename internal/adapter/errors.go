package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkFailureMessage is what the user sees when a request got no answer.
const NetworkFailureMessage = "ERROR_NETWORK"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNetwork marks a request that was sent but never answered:
	// connection refused, reset, DNS failure or timeout.
	ErrNetwork = errors.New(NetworkFailureMessage)
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// ServerError is returned when the API answered with a non-2xx status.
// Message is the server-provided explanation.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is match a ServerError against the status sentinels, e.g.
// errors.Is(err, ErrNotFound) for a 404.
func (e *ServerError) Is(target error) bool {
	sentinel, ok := statusSentinels[e.StatusCode]
	return ok && sentinel == target
}

// RequestSetupError is returned when a request could not be constructed or
// dispatched at all, for example because the URL does not parse.
type RequestSetupError struct {
	Op  string
	Err error
}

func (e *RequestSetupError) Error() string {
	return e.Err.Error()
}

func (e *RequestSetupError) Unwrap() error {
	return e.Err
}

// FailureMessage converts an adapter error into the text shown to the user:
// the server message for [*ServerError], [NetworkFailureMessage] for network
// failures and the stringified fault for anything else.
func FailureMessage(err error) string {
	if err == nil {
		return ""
	}

	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}

	if errors.Is(err, ErrNetwork) {
		return NetworkFailureMessage
	}

	var setupErr *RequestSetupError
	if errors.As(err, &setupErr) {
		return setupErr.Err.Error()
	}

	return err.Error()
}
