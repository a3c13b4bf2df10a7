package errors

import (
	"context"
	"errors"
)

// MsgCatalogRetry is what a search surface shows when the catalog could not be reached.
const MsgCatalogRetry = "Failed to load items. Please try again."

// CatalogUnavailable marks a transient catalog failure. Callers are expected to offer a retry.
func CatalogUnavailable(cause error) *Error {
	return &Error{
		Code:    CodeUnavailable,
		Message: "catalog unavailable",
		Cause:   cause,
		Meta:    map[string]any{metaRetryable: true},
	}
}

// IndexOutOfRange is raised when an inventory index falls outside [0, capacity).
func IndexOutOfRange(index, capacity int) *Error {
	return OutOfRangef("inventory index %d out of range [0, %d)", index, capacity).
		WithMeta("index", index).
		WithMeta("capacity", capacity)
}

// FromContext converts a context error into a Canceled or DeadlineExceeded error.
// Any other error is wrapped as-is.
func FromContext(err error, message string) *Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled):
		return WrapWithCode(err, CodeCanceled, message)
	case errors.Is(err, context.DeadlineExceeded):
		return WrapWithCode(err, CodeDeadlineExceeded, message)
	default:
		return Wrap(err, message)
	}
}
