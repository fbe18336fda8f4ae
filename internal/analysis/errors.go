package analysis

import (
	"context"
	"errors"
	"fmt"
)

// Domain-specific errors for the analysis package.
var (
	ErrCanceled        = errors.New("analysis canceled")
	ErrSessionNotFound = errors.New("analysis session not found")
	ErrEmptyContactID  = errors.New("contact id is empty")
)

// ServiceError reports a failed call to the text-understanding service.
// StatusCode is 0 when the request never produced a response.
type ServiceError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("analysis service unavailable: %v", e.Err)
	}
	return fmt.Sprintf("analysis service error %d: %s", e.StatusCode, e.Body)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ValidationError reports a service response that does not match the expected shape.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid analysis response: %s", e.Reason)
	}
	return fmt.Sprintf("invalid analysis response: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// FailureReason labels err for metrics and logs.
func FailureReason(err error) string {
	var svcErr *ServiceError
	var valErr *ValidationError
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &valErr):
		return "validation"
	case errors.As(err, &svcErr):
		if svcErr.StatusCode == 0 {
			return "unavailable"
		}
		return "service"
	case errors.Is(err, ErrCanceled):
		return "canceled"
	default:
		return "unknown"
	}
}
