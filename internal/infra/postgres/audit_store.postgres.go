// internal/infra/postgres/audit_store.postgres.go
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
)

type AuditStore struct {
	db *sql.DB
}

func NewAuditStore(db *sql.DB) *AuditStore {
	return &AuditStore{db: db}
}

func (s *AuditStore) Append(ctx context.Context, event *audit.Event) error {
	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return err
	}
	_, err = conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO audit_events (id, actor_id, action, target_id, metadata, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		event.ID, event.ActorID, event.Action, event.TargetID, metadata, event.CreatedAt)
	return err
}
