// internal/domain/audit/audit_event.domain.go
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable record of a state-changing command.
// It answers: who did what, to which record, when, with what context.
//
// Events are write-only and append-only. Every successful state-changing
// command emits exactly one, and rejected admin-safety attempts emit one
// too so tightening the rules later has data to stand on.
type Event struct {
	ID        uuid.UUID
	ActorID   *uuid.UUID // nil for system/bootstrap actions
	Action    string
	TargetID  *uuid.UUID
	Metadata  map[string]any
	CreatedAt time.Time
}

// Action names. Kept flat and stable; external sinks key off them.
const (
	ActionAccountCreated         = "ACCOUNT_CREATED"
	ActionAccountUpdated         = "ACCOUNT_UPDATED"
	ActionAccountStatusChanged   = "ACCOUNT_STATUS_CHANGED"
	ActionAccountPasswordChanged = "ACCOUNT_PASSWORD_CHANGED"
	ActionAccountDeleted         = "ACCOUNT_DELETED"
	ActionAccountLoginRecorded   = "ACCOUNT_LOGIN_RECORDED"

	ActionLeadCreated = "LEAD_CREATED"
	ActionLeadUpdated = "LEAD_UPDATED"
	ActionLeadDeleted = "LEAD_DELETED"

	ActionOrderCreated        = "ORDER_CREATED"
	ActionOrderFieldsUpdated  = "ORDER_FIELDS_UPDATED"
	ActionOrderStatusChanged  = "ORDER_STATUS_CHANGED"
	ActionOrderPaymentUpdated = "ORDER_PAYMENT_UPDATED"
	ActionOrderCourierUpdated = "ORDER_COURIER_UPDATED"
	ActionOrderDeleted        = "ORDER_DELETED"

	ActionProductCreated = "PRODUCT_CREATED"
	ActionProductUpdated = "PRODUCT_UPDATED"
	ActionProductDeleted = "PRODUCT_DELETED"

	ActionAdminSafetyBlocked = "ADMIN_SAFETY_VIOLATION_ATTEMPTED"
)

// New builds an event stamped now.
func New(actor *uuid.UUID, action string, target *uuid.UUID, metadata map[string]any) *Event {
	return &Event{
		ID:        uuid.New(),
		ActorID:   actor,
		Action:    action,
		TargetID:  target,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
}
