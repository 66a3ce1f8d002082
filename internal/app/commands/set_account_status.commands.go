// internal/app/commands/set_account_status.commands.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type SetAccountStatusCmd struct {
	accounts  repository.AccountStore
	recorder  *Recorder
	txManager repository.TransactionManager
}

func NewSetAccountStatusCmd(accounts repository.AccountStore, recorder *Recorder, tx repository.TransactionManager) *SetAccountStatusCmd {
	return &SetAccountStatusCmd{accounts: accounts, recorder: recorder, txManager: tx}
}

type SetAccountStatusParams struct {
	Caller   policy.Caller
	TargetID uuid.UUID
	Status   account.Status
}

// Handle activates or deactivates an account. Deactivating an admin is
// guarded: the active-admin count is re-read inside the transaction and
// the change is rejected when it would leave zero, even when the caller
// is that admin acting on itself.
func (cmd *SetAccountStatusCmd) Handle(ctx context.Context, p SetAccountStatusParams) (*account.Account, error) {
	if err := policy.Authorize(p.Caller, role.EntityAccount, role.OpUpdateStatus); err != nil {
		return nil, err
	}
	if p.Status != account.StatusActive && p.Status != account.StatusInactive {
		return nil, domainErr.Validation("invalid status %q", p.Status)
	}

	var updated *account.Account
	err := cmd.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		target, err := cmd.accounts.GetAccountByID(txCtx, p.TargetID)
		if err != nil {
			return err
		}
		if target.Status == p.Status {
			updated = target
			return nil // idempotent
		}

		if policy.RemovesActiveAdmin(target, &p.Status, nil, false) {
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

		from := target.Status
		target.Status = p.Status
		target.UpdatedAt = time.Now().UTC()
		if err := cmd.accounts.UpdateAccount(txCtx, target); err != nil {
			return fmt.Errorf("update account status: %w", err)
		}
		updated = target

		actor := p.Caller.ID
		return cmd.recorder.Record(txCtx, audit.New(&actor, audit.ActionAccountStatusChanged, &target.ID, map[string]any{
			"from": from,
			"to":   p.Status,
		}))
	})
	if err != nil {
		if errors.Is(err, domainErr.ErrLastActiveAdmin) {
			actor := p.Caller.ID
			cmd.recorder.RecordBestEffort(ctx, audit.New(&actor, audit.ActionAdminSafetyBlocked, &p.TargetID, map[string]any{
				"operation": "deactivate",
			}))
		}
		return nil, err
	}
	return updated, nil
}
