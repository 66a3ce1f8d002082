// internal/infra/memory/audit_store.memory.go
package memory

import (
	"context"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
)

func (s *Store) Append(ctx context.Context, event *audit.Event) error {
	if err := ctxErr(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// Events returns a snapshot of the append-only event log, oldest first.
func (s *Store) Events() []*audit.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*audit.Event(nil), s.events...)
}
