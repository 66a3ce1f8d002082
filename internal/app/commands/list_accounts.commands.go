// internal/app/commands/list_accounts.commands.go
package commands

import (
	"context"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type ListAccountsCmd struct {
	accounts repository.AccountStore
}

func NewListAccountsCmd(accounts repository.AccountStore) *ListAccountsCmd {
	return &ListAccountsCmd{accounts: accounts}
}

type ListAccountsParams struct {
	Caller policy.Caller
	Status *account.Status
}

// Handle lists the accounts visible to the caller. Agents are denied
// structurally: their capability table carries no account list operation.
func (cmd *ListAccountsCmd) Handle(ctx context.Context, p ListAccountsParams) ([]*account.Account, error) {
	if err := policy.Authorize(p.Caller, role.EntityAccount, role.OpList); err != nil {
		return nil, err
	}
	f, err := policy.ResolveAccountListScope(p.Caller)
	if err != nil {
		return nil, err
	}
	f.Status = p.Status
	return cmd.accounts.ListAccounts(ctx, f)
}
