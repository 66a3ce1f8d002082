// internal/ports/repository/account_store.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
)

// AccountStore is the record store contract for accounts.
//
// Key rules:
//   - context.Context always first
//   - implementations return domain errors, never sql.ErrNoRows
//   - Count must observe at least read-committed isolation so the
//     admin-safety count-then-act sequence is sound inside a transaction
type AccountStore interface {
	CreateAccount(ctx context.Context, a *account.Account) error
	GetAccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*account.Account, error)
	ListAccounts(ctx context.Context, f account.Filter) ([]*account.Account, error)
	CountAccounts(ctx context.Context, f account.Filter) (int64, error)
	UpdateAccount(ctx context.Context, a *account.Account) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error
}
