// internal/app/commands/lead_commands_test.go
package commands

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/lead"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

func TestCreateLead(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	headAcc, _ := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agent := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)

	cmd := NewCreateLeadCmd(env.store, env.store, env.recorder)

	l, err := cmd.Handle(ctx, CreateLeadParams{
		Caller: agent,
		NewParams: lead.NewParams{
			Name:    "Prospect One",
			Phone:   "9812345678",
			Service: "Ortho Care",
			Source:  "website",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, lead.StatusRing, l.Status)
	assert.Equal(t, agent.ID, l.CreatedBy)
	assert.Equal(t, audit.ActionLeadCreated, env.lastEvent(t).Action)

	ghost := uuid.New()
	_, err = cmd.Handle(ctx, CreateLeadParams{
		Caller: agent,
		NewParams: lead.NewParams{
			Name:       "Prospect Two",
			Phone:      "9812345678",
			Service:    "Ortho Care",
			AssignedTo: &ghost,
		},
	})
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput, "assignee must exist")
}

func TestLeadVisibilityScope(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	headAcc, head := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agentA := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)
	otherHead, _ := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agentB := env.seedAccount(t, role.RoleAgent, account.StatusActive, &otherHead.ID)

	create := NewCreateLeadCmd(env.store, env.store, env.recorder)
	mine, err := create.Handle(ctx, CreateLeadParams{Caller: agentA, NewParams: lead.NewParams{
		Name: "Lead A", Phone: "9812345678", Service: "Cardio",
	}})
	require.NoError(t, err)
	_, err = create.Handle(ctx, CreateLeadParams{Caller: agentB, NewParams: lead.NewParams{
		Name: "Lead B", Phone: "9812345679", Service: "Cardio",
	}})
	require.NoError(t, err)

	list := NewListLeadsCmd(env.store)
	visible, err := list.Handle(ctx, ListLeadsParams{Caller: agentA})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, mine.ID, visible[0].ID)

	teamView, err := list.Handle(ctx, ListLeadsParams{Caller: head})
	require.NoError(t, err)
	require.Len(t, teamView, 1, "teamhead sees only its team's leads")
	assert.Equal(t, mine.ID, teamView[0].ID)

	get := NewGetLeadCmd(env.store, env.store)
	_, err = get.Handle(ctx, GetLeadParams{Caller: agentB, LeadID: mine.ID})
	assert.ErrorIs(t, err, domainErr.ErrForbidden)
}

func TestUpdateLeadStatusAnyToAny(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	headAcc, _ := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agent := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)

	create := NewCreateLeadCmd(env.store, env.store, env.recorder)
	l, err := create.Handle(ctx, CreateLeadParams{Caller: agent, NewParams: lead.NewParams{
		Name: "Flipper", Phone: "9812345678", Service: "Neuro",
	}})
	require.NoError(t, err)

	upd := NewUpdateLeadCmd(env.store, env.store, env.recorder, env.store)

	// Backward move is allowed; the transition is only audited.
	done := lead.StatusSaleDone
	_, err = upd.Handle(ctx, UpdateLeadParams{Caller: agent, LeadID: l.ID, Status: &done})
	require.NoError(t, err)
	ring := lead.StatusRing
	updated, err := upd.Handle(ctx, UpdateLeadParams{Caller: agent, LeadID: l.ID, Status: &ring})
	require.NoError(t, err)
	assert.Equal(t, lead.StatusRing, updated.Status)

	ev := env.lastEvent(t)
	assert.Equal(t, audit.ActionLeadUpdated, ev.Action)
	assert.Equal(t, lead.StatusSaleDone, ev.Metadata["from"])
	assert.Equal(t, lead.StatusRing, ev.Metadata["to"])

	bad := lead.Status("Closed Won")
	_, err = upd.Handle(ctx, UpdateLeadParams{Caller: agent, LeadID: l.ID, Status: &bad})
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)
}

func TestDeleteLeadAdminOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, admin := env.seedAccount(t, role.RoleAdmin, account.StatusActive, nil)
	headAcc, _ := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agent := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)

	create := NewCreateLeadCmd(env.store, env.store, env.recorder)
	l, err := create.Handle(ctx, CreateLeadParams{Caller: agent, NewParams: lead.NewParams{
		Name: "Short Lived", Phone: "9812345678", Service: "Derma",
	}})
	require.NoError(t, err)

	del := NewDeleteLeadCmd(env.store, env.recorder)
	err = del.Handle(ctx, DeleteLeadParams{Caller: agent, LeadID: l.ID})
	assert.ErrorIs(t, err, domainErr.ErrForbidden)

	require.NoError(t, del.Handle(ctx, DeleteLeadParams{Caller: admin, LeadID: l.ID}))
	_, err = env.store.GetLeadByID(ctx, l.ID)
	assert.ErrorIs(t, err, domainErr.ErrLeadNotFound)
}
