// internal/domain/policy/scope_policy.go
package policy

import (
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/lead"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

// The scope resolver narrows "may this caller act on entity X" to a
// concrete store filter or a denial. Denials are always explicit; no
// branch silently widens access.

// ResolveAccountListScope computes the account visibility filter.
//   - admin: everything
//   - subadmin: everything except admin accounts
//   - teamhead: only direct agents
//   - agent: denied outright
func ResolveAccountListScope(c Caller) (account.Filter, error) {
	switch c.Role {
	case role.RoleAdmin:
		return account.Filter{}, nil
	case role.RoleSubAdmin:
		return account.Filter{ExcludeRoles: []role.Role{role.RoleAdmin}}, nil
	case role.RoleTeamHead:
		id := c.ID
		return account.Filter{TeamHeadID: &id}, nil
	default:
		return account.Filter{}, domainErr.Forbidden("agents cannot view the account list")
	}
}

// ResolveLeadListScope narrows a caller-supplied lead filter.
func ResolveLeadListScope(c Caller, f lead.Filter) (lead.Filter, error) {
	switch c.Role {
	case role.RoleAdmin:
		return f, nil
	case role.RoleSubAdmin:
		f.ExcludeAdminOwned = true
		return f, nil
	case role.RoleTeamHead:
		id := c.ID
		f.TeamHeadID = &id
		return f, nil
	case role.RoleAgent:
		id := c.ID
		f.OwnedBy = &id
		return f, nil
	default:
		return lead.Filter{}, domainErr.Forbidden("unknown role %q", c.Role)
	}
}

// ResolveOrderListScope narrows a caller-supplied order filter.
func ResolveOrderListScope(c Caller, f order.Filter) (order.Filter, error) {
	switch c.Role {
	case role.RoleAdmin:
		return f, nil
	case role.RoleSubAdmin:
		f.ExcludeAdminOwned = true
		return f, nil
	case role.RoleTeamHead:
		id := c.ID
		f.TeamHeadID = &id
		return f, nil
	case role.RoleAgent:
		id := c.ID
		f.AgentID = &id
		return f, nil
	default:
		return order.Filter{}, domainErr.Forbidden("unknown role %q", c.Role)
	}
}

// ResolveProductListScope passes the catalog filter through; products
// are visible to every operating role.
func ResolveProductListScope(c Caller, f product.Filter) (product.Filter, error) {
	return f, nil
}

// CanReadLead checks single-record visibility using the same rules as
// the list scope. own resolves supervision defensively: a dangling
// reference simply fails to match.
func CanReadLead(c Caller, l *lead.Lead, own lead.Ownership) bool {
	f, err := ResolveLeadListScope(c, lead.Filter{})
	if err != nil {
		return false
	}
	return f.Matches(l, own)
}

// CanReadOrder checks single-record visibility for orders.
func CanReadOrder(c Caller, o *order.Order, own order.Ownership) bool {
	f, err := ResolveOrderListScope(c, order.Filter{})
	if err != nil {
		return false
	}
	return f.Matches(o, own)
}
