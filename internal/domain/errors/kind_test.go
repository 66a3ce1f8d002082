// internal/domain/errors/kind_test.go
package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		kind Kind
	}{
		{nil, Kind("")},
		{ErrInvalidInput, KindValidation},
		{ErrEmailAlreadyExists, KindValidation},
		{ErrForbidden, KindForbidden},
		{ErrAccountNotFound, KindNotFound},
		{ErrLeadNotFound, KindNotFound},
		{ErrOrderNotFound, KindNotFound},
		{ErrProductNotFound, KindNotFound},
		{ErrLastActiveAdmin, KindInvariantViolation},
		{ErrConflict, KindConflict},
		{stderrors.New("disk on fire"), KindInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, KindOf(tc.err), "%v", tc.err)
	}
}

func TestKindOfWrapped(t *testing.T) {
	err := fmt.Errorf("update account: %w", ErrLastActiveAdmin)
	assert.Equal(t, KindInvariantViolation, KindOf(err))

	err = Validation("quantity cannot be less than 1")
	assert.Equal(t, KindValidation, KindOf(err))
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = Forbidden("agents cannot view the account list")
	assert.Equal(t, KindForbidden, KindOf(err))
	assert.ErrorIs(t, err, ErrForbidden)
}
