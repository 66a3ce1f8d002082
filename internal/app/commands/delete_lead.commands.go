// internal/app/commands/delete_lead.commands.go
package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type DeleteLeadCmd struct {
	leads    repository.LeadStore
	recorder *Recorder
}

func NewDeleteLeadCmd(leads repository.LeadStore, recorder *Recorder) *DeleteLeadCmd {
	return &DeleteLeadCmd{leads: leads, recorder: recorder}
}

type DeleteLeadParams struct {
	Caller policy.Caller
	LeadID uuid.UUID
}

// Handle removes a lead. Admin only.
func (cmd *DeleteLeadCmd) Handle(ctx context.Context, p DeleteLeadParams) error {
	if err := policy.Authorize(p.Caller, role.EntityLead, role.OpDelete); err != nil {
		return err
	}
	l, err := cmd.leads.GetLeadByID(ctx, p.LeadID)
	if err != nil {
		return err
	}
	if err := cmd.leads.DeleteLead(ctx, l.ID); err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}

	actor := p.Caller.ID
	return cmd.recorder.Record(ctx, audit.New(&actor, audit.ActionLeadDeleted, &l.ID, map[string]any{
		"status": l.Status,
	}))
}
