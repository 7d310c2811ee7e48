package faceit

import "fmt"

// APIError is any non-2xx answer from the API, body text included so the
// caller can surface whatever FACEIT said.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("faceit api status %d: %s", e.Status, e.Body)
}
