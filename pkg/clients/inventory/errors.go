package inventory

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// errorBody represents the error payload served by the inventory API.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// APIError is a non-2xx response from the inventory server. For business
// failures (4xx) Message carries the server-supplied text verbatim; server
// faults (5xx) are reduced to a generic message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("inventory api: status %d: %s", e.StatusCode, e.Message)
}

// AuthFailure reports whether the error was an authentication rejection.
func (e *APIError) AuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized
}

func checkResponse(resp *resty.Response, err error, op string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%s: %w", op, apiErrorFrom(resp))
	}
	return nil
}

func apiErrorFrom(resp *resty.Response) *APIError {
	status := resp.StatusCode()

	message := ""
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		message = body.Error
		if message == "" {
			message = body.Message
		}
	}

	switch {
	case status >= http.StatusInternalServerError:
		message = "server error"
	case status == http.StatusUnauthorized && message == "":
		message = "authentication failed"
	case message == "":
		message = "request failed"
	}

	return &APIError{StatusCode: status, Message: message}
}
