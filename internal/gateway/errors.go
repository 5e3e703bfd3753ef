package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the backend: it carries the HTTP
// status and the server-provided message. Transport failures (DNS,
// refused connection, timeout) are plain wrapped errors with no status.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

func newAPIError(status int, body []byte) *APIError {
	msg := parseErrorMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &APIError{Status: status, Message: msg}
}

// AsAPIError unwraps err into an APIError when the remote actually
// responded; false means the failure never reached the backend.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
