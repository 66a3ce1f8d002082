// internal/app/commands/delete_account.commands.go
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type DeleteAccountCmd struct {
	accounts  repository.AccountStore
	recorder  *Recorder
	txManager repository.TransactionManager
}

func NewDeleteAccountCmd(accounts repository.AccountStore, recorder *Recorder, tx repository.TransactionManager) *DeleteAccountCmd {
	return &DeleteAccountCmd{accounts: accounts, recorder: recorder, txManager: tx}
}

type DeleteAccountParams struct {
	Caller   policy.Caller
	TargetID uuid.UUID
}

// Handle destroys an account. Leads and orders referencing it are left
// untouched; their back-references go dangling and are resolved
// defensively at read time. Deleting the last active admin is rejected,
// even for an admin deleting itself.
func (cmd *DeleteAccountCmd) Handle(ctx context.Context, p DeleteAccountParams) error {
	if err := policy.Authorize(p.Caller, role.EntityAccount, role.OpDelete); err != nil {
		return err
	}

	err := cmd.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		target, err := cmd.accounts.GetAccountByID(txCtx, p.TargetID)
		if err != nil {
			return err
		}

		if policy.RemovesActiveAdmin(target, nil, nil, true) {
			active := account.StatusActive
			admins, err := cmd.accounts.CountAccounts(txCtx, account.Filter{
				Roles:  []role.Role{role.RoleAdmin},
				Status: &active,
			})
			if err != nil {
				return fmt.Errorf("count active admins: %w", err)
			}
			if policy.AdminSafetyViolated(admins) {
				return domainErr.ErrLastActiveAdmin
			}
		}

		if err := cmd.accounts.DeleteAccount(txCtx, target.ID); err != nil {
			return fmt.Errorf("delete account: %w", err)
		}

		actor := p.Caller.ID
		return cmd.recorder.Record(txCtx, audit.New(&actor, audit.ActionAccountDeleted, &target.ID, map[string]any{
			"role":  target.Role,
			"email": target.Email,
		}))
	})
	if err != nil && errors.Is(err, domainErr.ErrLastActiveAdmin) {
		actor := p.Caller.ID
		cmd.recorder.RecordBestEffort(ctx, audit.New(&actor, audit.ActionAdminSafetyBlocked, &p.TargetID, map[string]any{
			"operation": "delete",
		}))
	}
	return err
}
