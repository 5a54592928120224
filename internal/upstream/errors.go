package upstream

import "fmt"

// StatusError is a non-2xx upstream response. It preserves the HTTP status so
// callers (and degraded-state rendering) can distinguish upstream outage from
// client-side mistakes.
type StatusError struct {
	API    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.API, e.Status)
}

// IsServerError reports whether the upstream failed rather than rejected the
// request.
func (e *StatusError) IsServerError() bool {
	return e.Status >= 500
}
