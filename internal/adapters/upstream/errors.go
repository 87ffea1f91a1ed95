package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds for upstream failures. Callers classify with errors.Is/As,
// never by message text.
var (
	ErrUnreachable = errors.New("upstream unreachable")
	ErrTimeout     = errors.New("upstream timeout")
	ErrDecode      = errors.New("upstream payload not decodable")
)

// StatusError reports a non-2xx upstream response. Body holds a bounded
// excerpt of the response for development-mode diagnostics.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// IsNotFound reports whether err is an upstream 404, the distinguished
// profile-not-found condition.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == http.StatusNotFound
}

// Status extracts the upstream status code from err, or 0 when err is not a
// StatusError.
func Status(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}
