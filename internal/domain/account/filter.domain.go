// internal/domain/account/filter.domain.go
package account

import (
	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

// Filter is the predicate the record store applies when listing or
// counting accounts. Zero values mean "no constraint".
type Filter struct {
	Roles        []role.Role // match any of these roles
	ExcludeRoles []role.Role // never return these roles
	Status       *Status
	TeamHeadID   *uuid.UUID // accounts supervised by this teamhead
}

// Matches applies the filter in-process. The memory store uses it
// directly; the postgres store compiles the same predicate to SQL.
func (f Filter) Matches(a *Account) bool {
	if len(f.Roles) > 0 && !containsRole(f.Roles, a.Role) {
		return false
	}
	if containsRole(f.ExcludeRoles, a.Role) {
		return false
	}
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	if f.TeamHeadID != nil {
		if a.TeamHeadID == nil || *a.TeamHeadID != *f.TeamHeadID {
			return false
		}
	}
	return true
}

func containsRole(rs []role.Role, r role.Role) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}
