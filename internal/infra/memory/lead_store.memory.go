// internal/infra/memory/lead_store.memory.go
package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/lead"
)

func cloneLead(l *lead.Lead) *lead.Lead {
	c := *l
	if l.AssignedTo != nil {
		id := *l.AssignedTo
		c.AssignedTo = &id
	}
	return &c
}

func (s *Store) CreateLead(ctx context.Context, l *lead.Lead) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads[l.ID] = cloneLead(l)
	return nil
}

func (s *Store) GetLeadByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.leads[id]
	if !ok {
		return nil, domainErr.ErrLeadNotFound
	}
	return cloneLead(l), nil
}

func (s *Store) ListLeads(ctx context.Context, f lead.Filter) ([]*lead.Lead, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	own := ownership{accounts: s.accounts}
	var result []*lead.Lead
	for _, l := range s.leads {
		if f.Matches(l, own) {
			result = append(result, cloneLead(l))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	start, end := paginate(f.Page, f.Limit, len(result))
	return result[start:end], nil
}

func (s *Store) UpdateLead(ctx context.Context, l *lead.Lead) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leads[l.ID]; !ok {
		return domainErr.ErrLeadNotFound
	}
	s.leads[l.ID] = cloneLead(l)
	return nil
}

func (s *Store) DeleteLead(ctx context.Context, id uuid.UUID) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leads[id]; !ok {
		return domainErr.ErrLeadNotFound
	}
	delete(s.leads, id)
	return nil
}
