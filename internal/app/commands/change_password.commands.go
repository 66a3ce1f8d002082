// internal/app/commands/change_password.commands.go
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/crypto"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type ChangePasswordCmd struct {
	accounts repository.AccountStore
	hasher   crypto.PasswordHasher
	recorder *Recorder
}

func NewChangePasswordCmd(accounts repository.AccountStore, hasher crypto.PasswordHasher, recorder *Recorder) *ChangePasswordCmd {
	return &ChangePasswordCmd{accounts: accounts, hasher: hasher, recorder: recorder}
}

type ChangePasswordParams struct {
	Caller      policy.Caller
	TargetID    uuid.UUID
	NewPassword string
}

// Handle sets a new password. Admin may reset anyone; everyone else
// only themselves, through the self-update allow-list.
func (cmd *ChangePasswordCmd) Handle(ctx context.Context, p ChangePasswordParams) error {
	if err := policy.Authorize(p.Caller, role.EntityAccount, role.OpChangePassword); err != nil {
		return err
	}
	if err := account.ValidatePassword(p.NewPassword); err != nil {
		return err
	}

	target, err := cmd.accounts.GetAccountByID(ctx, p.TargetID)
	if err != nil {
		return err
	}
	if err := policy.ResolveAccountWriteScope(p.Caller, target, []policy.AccountField{policy.FieldPassword}); err != nil {
		return err
	}

	hash, err := cmd.hasher.HashPassword(ctx, p.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	target.PasswordHash = hash
	target.UpdatedAt = time.Now().UTC()

	if err := cmd.accounts.UpdateAccount(ctx, target); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	actor := p.Caller.ID
	return cmd.recorder.Record(ctx, audit.New(&actor, audit.ActionAccountPasswordChanged, &target.ID, map[string]any{
		"self": p.Caller.ID == p.TargetID,
	}))
}
