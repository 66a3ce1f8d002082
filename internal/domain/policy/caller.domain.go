// internal/domain/policy/caller.domain.go
package policy

import (
	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

// Caller is the authenticated identity every command receives from the
// external identity provider. The engine trusts it completely and never
// re-checks credentials.
type Caller struct {
	ID     uuid.UUID
	Role   role.Role
	Status account.Status
}

// Authorize is the structural gate run before any scope narrowing:
// the caller must be active and its role must carry the capability.
func Authorize(c Caller, e role.Entity, op role.Operation) error {
	if c.Status != account.StatusActive {
		return domainErr.Forbidden("account is inactive")
	}
	if !role.Can(c.Role, e, op) {
		return domainErr.Forbidden("role %s may not %s %s records", c.Role, op, e)
	}
	return nil
}
