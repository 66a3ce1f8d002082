// internal/domain/errors/errors.domain.go
package errors

import (
	"errors"
	"fmt"
)

// Standard Sentinel Errors
// These allow any outer layer to map internal logic to its own status
// codes without string matching. Commands wrap them with context via %w.

var (
	// Not found
	ErrAccountNotFound = errors.New("account not found")
	ErrLeadNotFound    = errors.New("lead not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")

	// Validation
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Authorization
	ErrForbidden = errors.New("forbidden")

	// Invariant violations. Always rejected, never partially applied.
	ErrLastActiveAdmin = errors.New("cannot remove or deactivate the last active admin")

	// Concurrency
	ErrConflict = errors.New("concurrent mutation lost a race, retry with a fresh read")
)

// Validation wraps ErrInvalidInput with a human-readable reason so that
// errors.Is(err, ErrInvalidInput) still holds on the result.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Forbidden wraps ErrForbidden with a reason.
func Forbidden(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}
