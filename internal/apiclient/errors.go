package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError is returned for any non-success HTTP response. Message holds
// the server-provided body text when there was one.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a RequestError for a resource that does
// not exist or is owned by another user.
func IsNotFound(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}
