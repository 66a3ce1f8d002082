// internal/app/commands/record_login.commands.go
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type RecordLoginCmd struct {
	accounts repository.AccountStore
	recorder *Recorder
}

func NewRecordLoginCmd(accounts repository.AccountStore, recorder *Recorder) *RecordLoginCmd {
	return &RecordLoginCmd{accounts: accounts, recorder: recorder}
}

type RecordLoginParams struct {
	AccountID uuid.UUID
	IP        string
	UserAgent string
	Outcome   account.LoginOutcome
}

// Handle stamps last-login metadata supplied by the external identity
// provider. There is no caller: authentication itself lives outside the
// engine and this is its write-back hook.
func (cmd *RecordLoginCmd) Handle(ctx context.Context, p RecordLoginParams) error {
	target, err := cmd.accounts.GetAccountByID(ctx, p.AccountID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	outcome := p.Outcome
	if outcome == "" {
		outcome = account.LoginSuccess
	}
	target.LastLogin = &account.LastLogin{
		IP:        p.IP,
		UserAgent: p.UserAgent,
		At:        now,
		Outcome:   outcome,
	}
	target.UpdatedAt = now

	if err := cmd.accounts.UpdateAccount(ctx, target); err != nil {
		return fmt.Errorf("record login: %w", err)
	}

	return cmd.recorder.Record(ctx, audit.New(nil, audit.ActionAccountLoginRecorded, &target.ID, map[string]any{
		"outcome": outcome,
		"ip":      p.IP,
	}))
}
