// internal/infra/memory/store.go
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/lead"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

// Store is the in-memory implementation of every record store port.
// Reads hand out copies, so a caller mutating a fetched record changes
// nothing until it calls the matching Update.
//
// Used by tests and local development; postgres is the production path.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	accounts map[uuid.UUID]*account.Account
	leads    map[uuid.UUID]*lead.Lead
	orders   map[uuid.UUID]*order.Order
	products map[uuid.UUID]*product.Product
	events   []*audit.Event
}

func NewStore() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]*account.Account),
		leads:    make(map[uuid.UUID]*lead.Lead),
		orders:   make(map[uuid.UUID]*order.Order),
		products: make(map[uuid.UUID]*product.Product),
	}
}

// RunInTx serializes the whole sequence against other transactions and
// restores the pre-transaction state when fn fails, matching the
// rollback behavior of the postgres TxManager. Snapshotting the maps
// shallowly is safe because stores replace entries with fresh clones
// instead of mutating them in place.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	accounts := maps.Clone(s.accounts)
	leads := maps.Clone(s.leads)
	orders := maps.Clone(s.orders)
	products := maps.Clone(s.products)
	events := s.events
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.accounts = accounts
		s.leads = leads
		s.orders = orders
		s.products = products
		s.events = events
		s.mu.Unlock()
		return err
	}
	return nil
}

func ctxErr(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// ownership resolves account questions for filters while the store
// lock is already held; it must not take the lock itself.
type ownership struct {
	accounts map[uuid.UUID]*account.Account
}

func (o ownership) IsAdmin(id uuid.UUID) bool {
	a, ok := o.accounts[id]
	return ok && a.Role == role.RoleAdmin
}

func (o ownership) SupervisedBy(id, teamHeadID uuid.UUID) bool {
	a, ok := o.accounts[id]
	return ok && a.TeamHeadID != nil && *a.TeamHeadID == teamHeadID
}

// paginate maps 1-based page/limit onto a slice of length n.
// Limit zero means everything.
func paginate(page, limit, n int) (int, int) {
	if limit <= 0 {
		return 0, n
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start > n {
		return n, n
	}
	end := start + limit
	if end > n {
		end = n
	}
	return start, end
}
