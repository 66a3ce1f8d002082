// internal/domain/order/filter.domain.go
package order

import (
	"time"

	"github.com/google/uuid"
)

// Ownership answers account questions the order filter cannot answer
// alone. Dangling agent references answer false, never an error.
type Ownership interface {
	IsAdmin(id uuid.UUID) bool
	SupervisedBy(id, teamHeadID uuid.UUID) bool
}

// Filter is the list/count predicate for orders. Scope resolution fills
// AgentID / TeamHeadID / ExcludeAdminOwned; callers fill the rest.
type Filter struct {
	AgentID   *uuid.UUID
	ProductID *uuid.UUID
	// TeamHeadID matches orders whose agent is the teamhead itself or
	// one of its direct agents.
	TeamHeadID *uuid.UUID
	// ExcludeAdminOwned hides orders whose agent is an admin (subadmin view).
	ExcludeAdminOwned bool

	OrderStatus   *Status
	PaymentStatus *PaymentStatus
	CreatedFrom   *time.Time
	CreatedTo     *time.Time

	Page  int
	Limit int
}

// Matches applies the filter in-process against the ownership oracle.
func (f Filter) Matches(o *Order, own Ownership) bool {
	if f.AgentID != nil && o.AgentID != *f.AgentID {
		return false
	}
	if f.ProductID != nil && o.ProductID != *f.ProductID {
		return false
	}
	if f.TeamHeadID != nil {
		if o.AgentID != *f.TeamHeadID && !own.SupervisedBy(o.AgentID, *f.TeamHeadID) {
			return false
		}
	}
	if f.ExcludeAdminOwned && own.IsAdmin(o.AgentID) {
		return false
	}
	if f.OrderStatus != nil && o.OrderStatus != *f.OrderStatus {
		return false
	}
	if f.PaymentStatus != nil && o.PaymentStatus != *f.PaymentStatus {
		return false
	}
	if f.CreatedFrom != nil && o.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && o.CreatedAt.After(*f.CreatedTo) {
		return false
	}
	return true
}
