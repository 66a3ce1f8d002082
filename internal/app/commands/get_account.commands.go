// internal/app/commands/get_account.commands.go
package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type GetAccountCmd struct {
	accounts repository.AccountStore
}

func NewGetAccountCmd(accounts repository.AccountStore) *GetAccountCmd {
	return &GetAccountCmd{accounts: accounts}
}

type GetAccountParams struct {
	Caller    policy.Caller
	AccountID uuid.UUID
}

// Handle fetches a single account under the same visibility rules as
// the list scope, with the addition that every caller may read itself.
func (cmd *GetAccountCmd) Handle(ctx context.Context, p GetAccountParams) (*account.Account, error) {
	if err := policy.Authorize(p.Caller, role.EntityAccount, role.OpGet); err != nil {
		return nil, err
	}

	target, err := cmd.accounts.GetAccountByID(ctx, p.AccountID)
	if err != nil {
		return nil, err
	}
	if target.ID == p.Caller.ID {
		return target, nil
	}

	switch p.Caller.Role {
	case role.RoleAdmin:
		return target, nil
	case role.RoleSubAdmin:
		if target.Role == role.RoleAdmin {
			return nil, domainErr.Forbidden("subadmin cannot view admin accounts")
		}
		return target, nil
	case role.RoleTeamHead:
		if target.TeamHeadID != nil && *target.TeamHeadID == p.Caller.ID {
			return target, nil
		}
		return nil, domainErr.Forbidden("teamhead can only view its own agents")
	default:
		return nil, domainErr.Forbidden("agents can only view their own account")
	}
}
