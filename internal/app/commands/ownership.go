// internal/app/commands/ownership.go
package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

// ownership resolves account questions for lead/order scope filters.
// It satisfies both lead.Ownership and order.Ownership.
//
// Lookups are defensive: a dangling reference (account deleted while
// still referenced) answers false and never errors. That is the accepted
// eventual-consistency gap for back-references.
type ownership struct {
	ctx      context.Context
	accounts repository.AccountStore
}

func newOwnership(ctx context.Context, accounts repository.AccountStore) *ownership {
	return &ownership{ctx: ctx, accounts: accounts}
}

func (o *ownership) IsAdmin(id uuid.UUID) bool {
	a, err := o.accounts.GetAccountByID(o.ctx, id)
	if err != nil {
		return false
	}
	return a.Role == role.RoleAdmin
}

func (o *ownership) SupervisedBy(id, teamHeadID uuid.UUID) bool {
	a, err := o.accounts.GetAccountByID(o.ctx, id)
	if err != nil {
		return false
	}
	return a.TeamHeadID != nil && *a.TeamHeadID == teamHeadID
}
