// internal/domain/role/role.domain.go
package role

// Role is one of the four operating roles of the CRM.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleSubAdmin Role = "subadmin"
	RoleTeamHead Role = "teamhead"
	RoleAgent    Role = "agent"
)

// rank maps each role to its authority level. Higher outranks lower.
// This table is the single source of truth for the hierarchy; it is
// built once and never mutated at runtime.
var rank = map[Role]int{
	RoleAdmin:    4,
	RoleSubAdmin: 3,
	RoleTeamHead: 2,
	RoleAgent:    1,
}

// All returns every valid role in descending authority order.
func All() []Role {
	return []Role{RoleAdmin, RoleSubAdmin, RoleTeamHead, RoleAgent}
}

// IsValid reports whether r is one of the four defined roles.
func IsValid(r Role) bool {
	_, ok := rank[r]
	return ok
}

// Outranks reports whether a holds strictly more authority than b.
// Unknown roles never outrank anything.
func Outranks(a, b Role) bool {
	ra, ok := rank[a]
	if !ok {
		return false
	}
	rb, ok := rank[b]
	if !ok {
		return false
	}
	return ra > rb
}
