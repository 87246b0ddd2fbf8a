package errors

import (
	"context"
	stderrs "errors"
	"net"
)

// Retryable reports whether err is worth another attempt against the same upstream.
// Attempt timeouts and transport errors are retryable, caller cancellation is not
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) {
		return false
	}
	if stderrs.Is(err, context.DeadlineExceeded) {
		return true
	}
	switch CodeOf(err) {
	case ErrorCodeUnavailable, ErrorCodeTooManyRequests:
		return true
	case ErrorCodeUnauthorized, ErrorCodeNotFound, ErrorCodeInvalidArgument, ErrorCodeValidation:
		return false
	}
	var ne net.Error
	if stderrs.As(err, &ne) && ne.Timeout() {
		return true
	}
	return false
}

// Fatal reports whether err means the upstream cannot serve us at all (credentials, config)
func Fatal(err error) bool { return IsCode(err, ErrorCodeUnauthorized) }
