package api

import "fmt"

// StatusError reports a non-2xx response from the client service.
type StatusError struct {
	Method string
	Path   string
	Code   int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.Code)
}
