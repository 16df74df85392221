package orchestrator

import (
	"errors"
	"fmt"

	"github.com/ytkit/ytkit/internal/innertube"
)

var errMissingPlayability = errors.New("player response missing playabilityStatus")

// TransportError is returned when the attempt ceiling is exhausted on
// network or timeout failures.
type TransportError struct {
	Endpoint innertube.Endpoint
	Attempts int
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("innertube %s: transport failed after %d attempt(s): %v", e.Endpoint, e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError indicates a non-2xx Innertube response that is not
// retried.
type HTTPStatusError struct {
	Endpoint   innertube.Endpoint
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("innertube %s: http status %d", e.Endpoint, e.StatusCode)
}

// SchemaError indicates the response body did not match the endpoint's
// expected shape. That is upstream format drift, not a transient
// failure: it is never retried and is surfaced distinctly so callers
// can tell "library out of date" from "content unavailable".
type SchemaError struct {
	Endpoint innertube.Endpoint
	Err      error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("innertube %s: unexpected response shape: %v", e.Endpoint, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
