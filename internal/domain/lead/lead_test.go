// internal/domain/lead/lead_test.go
package lead

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
)

func TestNewLead(t *testing.T) {
	creator := uuid.New()
	now := time.Now().UTC()

	l, err := New(NewParams{
		Name:    "Ramesh Kumar",
		Phone:   "9812345678",
		Service: "Diabetes Care",
		Source:  "facebook",
	}, creator, now)
	require.NoError(t, err)
	assert.Equal(t, StatusRing, l.Status, "every new lead starts in Ring")
	assert.Equal(t, creator, l.CreatedBy)
	assert.Nil(t, l.AssignedTo)
}

func TestNewLeadValidation(t *testing.T) {
	creator := uuid.New()
	now := time.Now().UTC()
	base := NewParams{Name: "Valid Lead", Phone: "9812345678", Service: "Cardio"}

	bad := base
	bad.Phone = "12345"
	_, err := New(bad, creator, now)
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)

	bad = base
	bad.Name = "x"
	_, err = New(bad, creator, now)
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)

	bad = base
	bad.Address = strings.Repeat("a", 251)
	_, err = New(bad, creator, now)
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)

	bad = base
	bad.Remarks = strings.Repeat("r", 501)
	_, err = New(bad, creator, now)
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusRing, StatusFollowUp, StatusSaleDone, StatusNotInterested, StatusSwitchOff, StatusIncoming} {
		assert.True(t, ValidStatus(s), string(s))
	}
	assert.False(t, ValidStatus(Status("Converted")))
	assert.False(t, ValidStatus(Status("ring")), "status literals are case sensitive")
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("0123456789"))
	assert.NoError(t, ValidatePhone(" 9812345678 "))
	assert.Error(t, ValidatePhone("981234567"))
	assert.Error(t, ValidatePhone("98123456789"))
	assert.Error(t, ValidatePhone("98123-4567"))
}
