// internal/app/commands/create_lead.commands.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/lead"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type CreateLeadCmd struct {
	leads    repository.LeadStore
	accounts repository.AccountStore
	recorder *Recorder
}

func NewCreateLeadCmd(leads repository.LeadStore, accounts repository.AccountStore, recorder *Recorder) *CreateLeadCmd {
	return &CreateLeadCmd{leads: leads, accounts: accounts, recorder: recorder}
}

type CreateLeadParams struct {
	Caller policy.Caller
	lead.NewParams
}

// Handle creates a lead in the initial Ring status, stamped with the
// caller as creator. Any operating role may create leads.
func (cmd *CreateLeadCmd) Handle(ctx context.Context, p CreateLeadParams) (*lead.Lead, error) {
	if err := policy.Authorize(p.Caller, role.EntityLead, role.OpCreate); err != nil {
		return nil, err
	}

	l, err := lead.New(p.NewParams, p.Caller.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if l.AssignedTo != nil {
		if _, err := cmd.accounts.GetAccountByID(ctx, *l.AssignedTo); err != nil {
			if errors.Is(err, domainErr.ErrAccountNotFound) {
				return nil, domainErr.Validation("assigned account does not exist")
			}
			return nil, err
		}
	}

	if err := cmd.leads.CreateLead(ctx, l); err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}

	actor := p.Caller.ID
	if err := cmd.recorder.Record(ctx, audit.New(&actor, audit.ActionLeadCreated, &l.ID, map[string]any{
		"status":  l.Status,
		"service": l.Service,
	})); err != nil {
		return nil, err
	}
	return l, nil
}
