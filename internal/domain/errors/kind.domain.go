// internal/domain/errors/kind.domain.go
package errors

import "errors"

// Kind is the stable, machine-checkable classification of a failure.
// Every error returned by the engine maps to exactly one Kind; callers
// decide recovery from the Kind, humans read the wrapped message.
type Kind string

const (
	KindValidation         Kind = "ValidationError"
	KindForbidden          Kind = "Forbidden"
	KindNotFound           Kind = "NotFound"
	KindInvariantViolation Kind = "InvariantViolation"
	KindConflict           Kind = "Conflict"
	KindInternal           Kind = "Internal"
)

// KindOf flattens any error produced by the engine to its Kind.
// Unknown errors are Internal; the engine never exposes storage or
// stack detail through this path.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrEmailAlreadyExists):
		return KindValidation
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrLeadNotFound),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrProductNotFound):
		return KindNotFound
	case errors.Is(err, ErrLastActiveAdmin):
		return KindInvariantViolation
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}
