// internal/infra/memory/account_store.memory.go
package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
)

func cloneAccount(a *account.Account) *account.Account {
	c := *a
	if a.TeamHeadID != nil {
		id := *a.TeamHeadID
		c.TeamHeadID = &id
	}
	if a.LastLogin != nil {
		ll := *a.LastLogin
		c.LastLogin = &ll
	}
	return &c
}

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.accounts {
		if existing.Email == a.Email {
			return domainErr.ErrEmailAlreadyExists
		}
	}
	s.accounts[a.ID] = cloneAccount(a)
	return nil
}

func (s *Store) GetAccountByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, domainErr.ErrAccountNotFound
	}
	return cloneAccount(a), nil
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*account.Account, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.Email == email {
			return cloneAccount(a), nil
		}
	}
	return nil, domainErr.ErrAccountNotFound
}

func (s *Store) ListAccounts(ctx context.Context, f account.Filter) ([]*account.Account, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*account.Account
	for _, a := range s.accounts {
		if f.Matches(a) {
			result = append(result, cloneAccount(a))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (s *Store) CountAccounts(ctx context.Context, f account.Filter) (int64, error) {
	if err := ctxErr(ctx); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, a := range s.accounts {
		if f.Matches(a) {
			n++
		}
	}
	return n, nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *account.Account) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.ID]; !ok {
		return domainErr.ErrAccountNotFound
	}
	for _, existing := range s.accounts {
		if existing.ID != a.ID && existing.Email == a.Email {
			return domainErr.ErrEmailAlreadyExists
		}
	}
	s.accounts[a.ID] = cloneAccount(a)
	return nil
}

func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return domainErr.ErrAccountNotFound
	}
	delete(s.accounts, id)
	return nil
}
