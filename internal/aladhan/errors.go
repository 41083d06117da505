package aladhan

import "fmt"

// TransportError means the HTTP call itself did not complete successfully:
// either the request failed outright (Err set) or the server answered with a
// non-success status (StatusCode set).
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("timings request failed: %v", e.Err)
	}
	return fmt.Sprintf("timings API returned HTTP %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ApplicationError means the HTTP call succeeded but the API envelope carried
// a non-OK application code.
type ApplicationError struct {
	Code   int
	Status string
}

func (e *ApplicationError) Error() string {
	return fmt.Sprintf("timings API error: code=%d status=%s", e.Code, e.Status)
}
