// internal/ports/repository/lead_store.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/lead"
)

type LeadStore interface {
	CreateLead(ctx context.Context, l *lead.Lead) error
	GetLeadByID(ctx context.Context, id uuid.UUID) (*lead.Lead, error)
	ListLeads(ctx context.Context, f lead.Filter) ([]*lead.Lead, error)
	UpdateLead(ctx context.Context, l *lead.Lead) error
	DeleteLead(ctx context.Context, id uuid.UUID) error
}
