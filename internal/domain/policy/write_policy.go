// internal/domain/policy/write_policy.go
package policy

import (
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

// AccountField names a mutable account attribute for write-scope checks.
type AccountField string

const (
	FieldName     AccountField = "name"
	FieldEmail    AccountField = "email"
	FieldPhone    AccountField = "phone"
	FieldPassword AccountField = "password"
	FieldRole     AccountField = "role"
	FieldStatus   AccountField = "status"
	FieldTeamHead AccountField = "teamhead"
)

// selfUpdateAllowList is the per-role set of fields an account may change
// on ITSELF. It is an explicit allow-list built once, so the permitted
// field set is statically auditable. Role, email, status and supervisor
// are absent everywhere: those move only through admin commands.
var selfUpdateAllowList = map[role.Role]map[AccountField]bool{
	role.RoleAdmin:    {FieldName: true, FieldPhone: true, FieldPassword: true},
	role.RoleSubAdmin: {FieldName: true, FieldPhone: true, FieldPassword: true},
	role.RoleTeamHead: {FieldName: true, FieldPhone: true, FieldPassword: true},
	role.RoleAgent:    {FieldName: true, FieldPhone: true, FieldPassword: true},
}

// CanSelfUpdate reports whether role r may change field f on its own record.
func CanSelfUpdate(r role.Role, f AccountField) bool {
	return selfUpdateAllowList[r][f]
}

// ResolveAccountWriteScope decides whether the caller may mutate the
// given fields of the target account.
//   - admin: any field on any account, except email (immutable for all)
//   - everyone else: own record only, allow-listed fields only
func ResolveAccountWriteScope(c Caller, target *account.Account, fields []AccountField) error {
	for _, f := range fields {
		if f == FieldEmail {
			return domainErr.Forbidden("email is immutable")
		}
	}
	if c.Role == role.RoleAdmin {
		return nil
	}
	if c.ID != target.ID {
		return domainErr.Forbidden("only admin may mutate another account")
	}
	for _, f := range fields {
		if !CanSelfUpdate(c.Role, f) {
			return domainErr.Forbidden("field %q is not self-updatable", f)
		}
	}
	return nil
}
