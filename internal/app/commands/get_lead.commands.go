// internal/app/commands/get_lead.commands.go
package commands

import (
	"context"

	"github.com/google/uuid"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/lead"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type GetLeadCmd struct {
	leads    repository.LeadStore
	accounts repository.AccountStore
}

func NewGetLeadCmd(leads repository.LeadStore, accounts repository.AccountStore) *GetLeadCmd {
	return &GetLeadCmd{leads: leads, accounts: accounts}
}

type GetLeadParams struct {
	Caller policy.Caller
	LeadID uuid.UUID
}

func (cmd *GetLeadCmd) Handle(ctx context.Context, p GetLeadParams) (*lead.Lead, error) {
	if err := policy.Authorize(p.Caller, role.EntityLead, role.OpGet); err != nil {
		return nil, err
	}
	l, err := cmd.leads.GetLeadByID(ctx, p.LeadID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadLead(p.Caller, l, newOwnership(ctx, cmd.accounts)) {
		return nil, domainErr.Forbidden("lead is outside the caller's scope")
	}
	return l, nil
}
