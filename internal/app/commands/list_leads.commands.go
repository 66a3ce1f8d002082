// internal/app/commands/list_leads.commands.go
package commands

import (
	"context"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/lead"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type ListLeadsCmd struct {
	leads repository.LeadStore
}

func NewListLeadsCmd(leads repository.LeadStore) *ListLeadsCmd {
	return &ListLeadsCmd{leads: leads}
}

type ListLeadsParams struct {
	Caller policy.Caller
	Filter lead.Filter
}

// Handle lists leads after narrowing the caller's filter to its scope:
// teamheads see their team's leads, agents only their own.
func (cmd *ListLeadsCmd) Handle(ctx context.Context, p ListLeadsParams) ([]*lead.Lead, error) {
	if err := policy.Authorize(p.Caller, role.EntityLead, role.OpList); err != nil {
		return nil, err
	}
	f, err := policy.ResolveLeadListScope(p.Caller, p.Filter)
	if err != nil {
		return nil, err
	}
	return cmd.leads.ListLeads(ctx, f)
}
