package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &ServerError{StatusCode: http.StatusNotFound, Message: "gone"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, &ServerError{StatusCode: http.StatusTeapot}, ErrBadRequest)
}

func TestMapTransportError(t *testing.T) {
	refused := &url.Error{Op: "Get", URL: "http://localhost:1/organization", Err: errors.New("connection refused")}
	parse := &url.Error{Op: "parse", URL: "http://bad host", Err: errors.New("invalid character")}

	assert.ErrorIs(t, mapTransportError("list", refused), ErrNetwork)

	var setupErr *RequestSetupError
	assert.ErrorAs(t, mapTransportError("list", parse), &setupErr)
	assert.ErrorAs(t, mapTransportError("list", errors.New("json: unsupported type")), &setupErr)
}

func TestFailureMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "server", err: &ServerError{StatusCode: 400, Message: "BAD"}, want: "BAD"},
		{name: "network", err: fmt.Errorf("list: %w: %w", ErrNetwork, errors.New("dial tcp")), want: "ERROR_NETWORK"},
		{name: "setup", err: &RequestSetupError{Op: "list", Err: errors.New("bad url")}, want: "bad url"},
		{name: "other", err: errors.New("decode organizations: EOF"), want: "decode organizations: EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FailureMessage(tt.err))
		})
	}
}
