// internal/domain/policy/admin_guard.go
package policy

import (
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

// Admin-Safety Guard: the system must always retain at least one active
// administrator. The pure simulation lives here; commands feed it the
// active-admin count re-read inside the same transaction as the mutation,
// so two concurrent deactivations cannot both observe a safe count.

// RemovesActiveAdmin reports whether applying the prospective change to
// target takes one active admin out of circulation. Deactivation,
// deletion and demotion to a non-admin role all count.
func RemovesActiveAdmin(target *account.Account, newStatus *account.Status, newRole *role.Role, deleted bool) bool {
	if target.Role != role.RoleAdmin || target.Status != account.StatusActive {
		return false
	}
	if deleted {
		return true
	}
	if newStatus != nil && *newStatus == account.StatusInactive {
		return true
	}
	if newRole != nil && *newRole != role.RoleAdmin {
		return true
	}
	return false
}

// AdminSafetyViolated simulates the change: with activeAdmins counted
// BEFORE the mutation, removing one must still leave at least one.
func AdminSafetyViolated(activeAdmins int64) bool {
	return activeAdmins-1 <= 0
}
