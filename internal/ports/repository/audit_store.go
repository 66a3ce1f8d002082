// internal/ports/repository/audit_store.go
package repository

import (
	"context"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
)

type AuditStore interface {
	// Append is write-only; audit events are never updated or deleted
	// by the application.
	Append(ctx context.Context, event *audit.Event) error
}
