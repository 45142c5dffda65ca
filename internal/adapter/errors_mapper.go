package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// mapHTTPError returns nil for 2xx answers and a *ServerError otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &ServerError{
		StatusCode: resp.StatusCode(),
		Message:    serverMessage(resp),
	}
}

// serverMessage prefers the "message" field of a JSON body, then a plain
// text body, then the status text.
func serverMessage(resp *resty.Response) string {
	body := resp.Body()
	if gjson.ValidBytes(body) {
		if msg := gjson.GetBytes(body, "message"); msg.Type == gjson.String && msg.Str != "" {
			return msg.Str
		}
		return http.StatusText(resp.StatusCode())
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return http.StatusText(resp.StatusCode())
}

// mapTransportError classifies an error returned by resty before any answer
// was read. http.Client reports dispatch failures as *url.Error; a "parse"
// operation means the request never left the process.
func mapTransportError(op string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Op != "parse" {
		return fmt.Errorf("%s: %w: %w", op, ErrNetwork, err)
	}

	return &RequestSetupError{Op: op, Err: err}
}
