// internal/domain/account/account.domain.go
package account

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// LoginOutcome records whether the last authentication attempt succeeded.
type LoginOutcome string

const (
	LoginSuccess LoginOutcome = "success"
	LoginFailed  LoginOutcome = "failed"
)

// LastLogin is metadata stamped by the external identity provider.
// The engine records it verbatim and never interprets it.
type LastLogin struct {
	IP        string
	UserAgent string
	At        time.Time
	Outcome   LoginOutcome
}

// Account is a person with credentials and exactly one role.
//
// Invariant: an agent references exactly one teamhead supervisor;
// accounts of any other role carry no supervisor reference.
type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	Role         role.Role
	PasswordHash string // never serialized outward
	Status       Status
	TeamHeadID   *uuid.UUID // supervisor, agents only
	LastLogin    *LastLogin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a *Account) IsActive() bool {
	return a.Status == StatusActive
}

var (
	namePattern  = regexp.MustCompile(`^[A-Za-z0-9 ]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

	pwUpper   = regexp.MustCompile(`[A-Z]`)
	pwLower   = regexp.MustCompile(`[a-z]`)
	pwDigit   = regexp.MustCompile(`[0-9]`)
	pwSpecial = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// NewParams carries the validated input for a new account.
// Password is the plaintext; hashing happens behind the crypto port.
type NewParams struct {
	Name       string
	Email      string
	Phone      string
	Role       role.Role
	Status     Status
	TeamHeadID *uuid.UUID
}

// New validates params and builds an Account without a password hash.
// The supervisor invariant is enforced here: agents must name one,
// every other role has it forced to nil.
func New(p NewParams, now time.Time) (*Account, error) {
	name := strings.TrimSpace(p.Name)
	if len(name) < 2 || len(name) > 50 || !namePattern.MatchString(name) {
		return nil, domainErr.Validation("name must be 2-50 letters, digits or spaces")
	}
	email := NormalizeEmail(p.Email)
	if !emailPattern.MatchString(email) {
		return nil, domainErr.Validation("invalid email address")
	}
	phone := strings.TrimSpace(p.Phone)
	if phone != "" && !phonePattern.MatchString(phone) {
		return nil, domainErr.Validation("phone must be exactly 10 digits")
	}
	if !role.IsValid(p.Role) {
		return nil, domainErr.Validation("invalid role %q", p.Role)
	}
	status := p.Status
	if status == "" {
		status = StatusActive
	}
	if status != StatusActive && status != StatusInactive {
		return nil, domainErr.Validation("invalid status %q", status)
	}

	teamHeadID := NormalizeSupervisor(p.Role, p.TeamHeadID)
	if p.Role == role.RoleAgent && teamHeadID == nil {
		return nil, domainErr.Validation("agent requires a teamhead supervisor")
	}

	return &Account{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Role:       p.Role,
		Status:     status,
		TeamHeadID: teamHeadID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// NormalizeSupervisor applies the consistency side effect: a supervisor
// reference is meaningful only for agents, any other role loses it.
func NormalizeSupervisor(r role.Role, teamHeadID *uuid.UUID) *uuid.UUID {
	if r != role.RoleAgent {
		return nil
	}
	return teamHeadID
}

// NormalizeEmail lowercases and trims; email is compared normalized
// everywhere.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateName checks the self/admin-update name rules.
func ValidateName(name string) error {
	n := strings.TrimSpace(name)
	if len(n) < 2 || len(n) > 50 || !namePattern.MatchString(n) {
		return domainErr.Validation("name must be 2-50 letters, digits or spaces")
	}
	return nil
}

// ValidatePhone checks the optional 10-digit phone rule.
func ValidatePhone(phone string) error {
	p := strings.TrimSpace(phone)
	if p != "" && !phonePattern.MatchString(p) {
		return domainErr.Validation("phone must be exactly 10 digits")
	}
	return nil
}

// ValidatePassword enforces the strong password rule: 8-32 chars with
// at least one uppercase, lowercase, digit and special character.
func ValidatePassword(pw string) error {
	if len(pw) < 8 || len(pw) > 32 {
		return domainErr.Validation("password must be 8-32 characters")
	}
	if !pwUpper.MatchString(pw) || !pwLower.MatchString(pw) ||
		!pwDigit.MatchString(pw) || !pwSpecial.MatchString(pw) {
		return domainErr.Validation("password needs upper, lower, digit and special characters")
	}
	return nil
}
