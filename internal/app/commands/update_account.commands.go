// internal/app/commands/update_account.commands.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type UpdateAccountCmd struct {
	accounts  repository.AccountStore
	recorder  *Recorder
	txManager repository.TransactionManager
}

func NewUpdateAccountCmd(accounts repository.AccountStore, recorder *Recorder, tx repository.TransactionManager) *UpdateAccountCmd {
	return &UpdateAccountCmd{accounts: accounts, recorder: recorder, txManager: tx}
}

// UpdateAccountParams carries a partial update. Nil means untouched;
// empty strings are stripped rather than written (defensive cleanup).
// Email is never updatable, so it has no field here.
type UpdateAccountParams struct {
	Caller     policy.Caller
	TargetID   uuid.UUID
	Name       *string
	Phone      *string
	Role       *role.Role
	Status     *account.Status
	TeamHeadID *uuid.UUID
}

// Handle applies an administrative update to any account. The whole
// read-guard-write sequence is one atomic unit: the admin-safety count
// is re-verified inside the same transaction as the mutation.
func (cmd *UpdateAccountCmd) Handle(ctx context.Context, p UpdateAccountParams) (*account.Account, error) {
	if err := policy.Authorize(p.Caller, role.EntityAccount, role.OpUpdate); err != nil {
		return nil, err
	}
	stripEmpty(&p.Name)
	stripEmpty(&p.Phone)

	if p.Name != nil {
		if err := account.ValidateName(*p.Name); err != nil {
			return nil, err
		}
	}
	if p.Phone != nil {
		if err := account.ValidatePhone(*p.Phone); err != nil {
			return nil, err
		}
	}
	if p.Role != nil && !role.IsValid(*p.Role) {
		return nil, domainErr.Validation("invalid role %q", *p.Role)
	}
	if p.Status != nil && *p.Status != account.StatusActive && *p.Status != account.StatusInactive {
		return nil, domainErr.Validation("invalid status %q", *p.Status)
	}
	if len(touchedFields(p)) == 0 {
		return nil, domainErr.Validation("no fields to update")
	}

	var updated *account.Account
	err := cmd.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		target, err := cmd.accounts.GetAccountByID(txCtx, p.TargetID)
		if err != nil {
			return err
		}
		if err := policy.ResolveAccountWriteScope(p.Caller, target, touchedFields(p)); err != nil {
			return err
		}

		// Admin-safety: simulate the change before applying it.
		if policy.RemovesActiveAdmin(target, p.Status, p.Role, false) {
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

		prevStatus := target.Status
		if p.Name != nil {
			target.Name = strings.TrimSpace(*p.Name)
		}
		if p.Phone != nil {
			target.Phone = strings.TrimSpace(*p.Phone)
		}
		if p.Role != nil {
			target.Role = *p.Role
		}
		if p.Status != nil {
			target.Status = *p.Status
		}
		if p.TeamHeadID != nil {
			target.TeamHeadID = p.TeamHeadID
		}
		// Giving a non-agent role drops the supervisor reference.
		target.TeamHeadID = account.NormalizeSupervisor(target.Role, target.TeamHeadID)
		if target.Role == role.RoleAgent && target.TeamHeadID == nil {
			return domainErr.Validation("agent requires a teamhead supervisor")
		}
		target.UpdatedAt = time.Now().UTC()

		if err := cmd.accounts.UpdateAccount(txCtx, target); err != nil {
			return fmt.Errorf("update account: %w", err)
		}
		updated = target

		actor := p.Caller.ID
		action := audit.ActionAccountUpdated
		meta := map[string]any{"fields": fieldNames(touchedFields(p))}
		if p.Status != nil && *p.Status != prevStatus {
			action = audit.ActionAccountStatusChanged
			meta["from"] = prevStatus
			meta["to"] = *p.Status
		}
		return cmd.recorder.Record(txCtx, audit.New(&actor, action, &target.ID, meta))
	})
	if err != nil {
		if errors.Is(err, domainErr.ErrLastActiveAdmin) {
			actor := p.Caller.ID
			cmd.recorder.RecordBestEffort(ctx, audit.New(&actor, audit.ActionAdminSafetyBlocked, &p.TargetID, map[string]any{
				"operation": "update",
			}))
		}
		return nil, err
	}
	return updated, nil
}

func touchedFields(p UpdateAccountParams) []policy.AccountField {
	var fields []policy.AccountField
	if p.Name != nil {
		fields = append(fields, policy.FieldName)
	}
	if p.Phone != nil {
		fields = append(fields, policy.FieldPhone)
	}
	if p.Role != nil {
		fields = append(fields, policy.FieldRole)
	}
	if p.Status != nil {
		fields = append(fields, policy.FieldStatus)
	}
	if p.TeamHeadID != nil {
		fields = append(fields, policy.FieldTeamHead)
	}
	return fields
}

func fieldNames(fields []policy.AccountField) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, string(f))
	}
	return names
}

// stripEmpty drops pointer params whose value is blank, so an empty
// string in a payload never overwrites stored data.
func stripEmpty(s **string) {
	if *s != nil && strings.TrimSpace(**s) == "" {
		*s = nil
	}
}
