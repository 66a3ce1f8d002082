// internal/app/commands/self_update_account.commands.go
package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type SelfUpdateAccountCmd struct {
	accounts repository.AccountStore
	recorder *Recorder
}

func NewSelfUpdateAccountCmd(accounts repository.AccountStore, recorder *Recorder) *SelfUpdateAccountCmd {
	return &SelfUpdateAccountCmd{accounts: accounts, recorder: recorder}
}

type SelfUpdateAccountParams struct {
	Caller policy.Caller
	Name   *string
	Phone  *string
}

// Handle updates the caller's own profile. Only the allow-listed
// self-service fields exist on the params; anything else has no way in.
func (cmd *SelfUpdateAccountCmd) Handle(ctx context.Context, p SelfUpdateAccountParams) (*account.Account, error) {
	if err := policy.Authorize(p.Caller, role.EntityAccount, role.OpUpdate); err != nil {
		return nil, err
	}
	stripEmpty(&p.Name)
	stripEmpty(&p.Phone)
	if p.Name == nil && p.Phone == nil {
		return nil, domainErr.Validation("nothing to update: allowed fields are name, phone")
	}

	target, err := cmd.accounts.GetAccountByID(ctx, p.Caller.ID)
	if err != nil {
		return nil, err
	}

	var fields []policy.AccountField
	if p.Name != nil {
		fields = append(fields, policy.FieldName)
	}
	if p.Phone != nil {
		fields = append(fields, policy.FieldPhone)
	}
	if err := policy.ResolveAccountWriteScope(p.Caller, target, fields); err != nil {
		return nil, err
	}

	if p.Name != nil {
		if err := account.ValidateName(*p.Name); err != nil {
			return nil, err
		}
		target.Name = strings.TrimSpace(*p.Name)
	}
	if p.Phone != nil {
		if err := account.ValidatePhone(*p.Phone); err != nil {
			return nil, err
		}
		target.Phone = strings.TrimSpace(*p.Phone)
	}
	target.UpdatedAt = time.Now().UTC()

	if err := cmd.accounts.UpdateAccount(ctx, target); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	actor := p.Caller.ID
	if err := cmd.recorder.Record(ctx, audit.New(&actor, audit.ActionAccountUpdated, &target.ID, map[string]any{
		"fields": fieldNames(fields),
		"self":   true,
	})); err != nil {
		return nil, err
	}
	return target, nil
}
