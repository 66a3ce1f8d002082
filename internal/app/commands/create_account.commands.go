// internal/app/commands/create_account.commands.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/crypto"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type CreateAccountCmd struct {
	accounts repository.AccountStore
	hasher   crypto.PasswordHasher
	recorder *Recorder
}

func NewCreateAccountCmd(accounts repository.AccountStore, hasher crypto.PasswordHasher, recorder *Recorder) *CreateAccountCmd {
	return &CreateAccountCmd{accounts: accounts, hasher: hasher, recorder: recorder}
}

type CreateAccountParams struct {
	Caller     policy.Caller
	Name       string
	Email      string
	Phone      string
	Password   string
	Role       role.Role
	Status     account.Status
	TeamHeadID *uuid.UUID
}

func (cmd *CreateAccountCmd) Handle(ctx context.Context, p CreateAccountParams) (*account.Account, error) {
	if err := policy.Authorize(p.Caller, role.EntityAccount, role.OpCreate); err != nil {
		return nil, err
	}
	if err := account.ValidatePassword(p.Password); err != nil {
		return nil, err
	}

	acc, err := account.New(account.NewParams{
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		Role:       p.Role,
		Status:     p.Status,
		TeamHeadID: p.TeamHeadID,
	}, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	// Email uniqueness and supervisor existence are independent reads;
	// fetch both in parallel.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		existing, err := cmd.accounts.GetAccountByEmail(gctx, acc.Email)
		if err != nil && !errors.Is(err, domainErr.ErrAccountNotFound) {
			return err
		}
		if existing != nil {
			return domainErr.ErrEmailAlreadyExists
		}
		return nil
	})
	if acc.TeamHeadID != nil {
		g.Go(func() error {
			head, err := cmd.accounts.GetAccountByID(gctx, *acc.TeamHeadID)
			if err != nil {
				if errors.Is(err, domainErr.ErrAccountNotFound) {
					return domainErr.Validation("supervisor account does not exist")
				}
				return err
			}
			if head.Role != role.RoleTeamHead {
				return domainErr.Validation("supervisor must be a teamhead")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hash, err := cmd.hasher.HashPassword(ctx, p.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	acc.PasswordHash = hash

	if err := cmd.accounts.CreateAccount(ctx, acc); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	actor := p.Caller.ID
	if err := cmd.recorder.Record(ctx, audit.New(&actor, audit.ActionAccountCreated, &acc.ID, map[string]any{
		"role":   acc.Role,
		"status": acc.Status,
	})); err != nil {
		return nil, err
	}
	return acc, nil
}
