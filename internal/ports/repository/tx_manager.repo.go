// internal/ports/repository/tx_manager.repo.go
package repository

import "context"

// TransactionManager abstracts the storage transaction. Commands that
// must be atomic (admin-safety count-then-act, total recomputation plus
// persist) run their whole read-check-write sequence through RunInTx.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
