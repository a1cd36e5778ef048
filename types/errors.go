package types

import (
	"fmt"
	"time"
)

// TransportError is a network failure or a non-2xx response from the
// analysis service. Message carries the structured error body when the
// service supplied one, otherwise a generic status-code message.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	return fmt.Sprintf("service returned %d: %s", e.StatusCode, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError means the service responded but the body was not the
// structured payload we expected.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidArgumentError is raised before any network call is attempted,
// for a missing file, filename or job id.
type InvalidArgumentError struct {
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Reason
}

// RemoteJobFailure means the job reached the failed status and the service
// supplied an error message for it.
type RemoteJobFailure struct {
	JobID   string
	Message string
}

func (e *RemoteJobFailure) Error() string {
	return fmt.Sprintf("analysis job %s failed: %s", e.JobID, e.Message)
}

// TimeoutExceeded means the job never reached a terminal status within the
// client-side deadline. It backs the synthesized timed-out pseudo-state.
type TimeoutExceeded struct {
	JobID string
	Limit time.Duration
}

func (e *TimeoutExceeded) Error() string {
	return fmt.Sprintf("analysis job %s did not finish within %s", e.JobID, e.Limit)
}
