package scheduling

import "fmt"

// Conflict reasons surfaced to the client so it can re-fetch availability.
const (
	ReasonOverlap         = "overlap"
	ReasonBufferViolation = "buffer_violation"
	ReasonDailyCapReached = "daily_cap_reached"
)

// ValidationError reports malformed input. It is raised synchronously, before
// any I/O, and is never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError means a slot the caller believed available could not be
// reserved. The correct client response is to re-fetch available slots, not
// to retry the same reservation.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slot conflict: %s", e.Reason)
}

// TimeoutError means the reservation's exclusion scope could not be acquired
// in bounded time. Safe to retry once after a short delay.
type TimeoutError struct {
	Scope string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out acquiring reservation scope %q", e.Scope)
}

// StorageError wraps a failure of the underlying persistence. The core does
// not retry; the caller decides backoff policy.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
