// internal/domain/lead/filter.domain.go
package lead

import (
	"time"

	"github.com/google/uuid"
)

// Filter is the list/count predicate for leads. Scope resolution fills
// the ownership fields; callers fill the rest.
//
// TeamHeadID and ExcludeAdminOwned need the account table to resolve, so
// Matches takes an ownership oracle instead of joining itself.
type Filter struct {
	AssignedTo *uuid.UUID
	CreatedBy  *uuid.UUID
	// OwnedBy matches leads assigned to OR created by the account.
	OwnedBy *uuid.UUID
	// TeamHeadID matches leads whose owning account is the teamhead
	// itself or one of its direct agents.
	TeamHeadID *uuid.UUID
	// ExcludeAdminOwned hides leads owned by admin accounts (subadmin view).
	ExcludeAdminOwned bool

	Status      *Status
	CreatedFrom *time.Time
	CreatedTo   *time.Time

	Page  int
	Limit int
}

// Ownership answers account questions a lead filter cannot answer alone.
// An unresolved (deleted) reference answers false, never an error.
type Ownership interface {
	IsAdmin(id uuid.UUID) bool
	SupervisedBy(id, teamHeadID uuid.UUID) bool
}

// Matches applies the filter in-process against the ownership oracle.
func (f Filter) Matches(l *Lead, own Ownership) bool {
	if f.AssignedTo != nil && (l.AssignedTo == nil || *l.AssignedTo != *f.AssignedTo) {
		return false
	}
	if f.CreatedBy != nil && l.CreatedBy != *f.CreatedBy {
		return false
	}
	if f.OwnedBy != nil {
		assigned := l.AssignedTo != nil && *l.AssignedTo == *f.OwnedBy
		if !assigned && l.CreatedBy != *f.OwnedBy {
			return false
		}
	}
	if f.TeamHeadID != nil {
		owner := l.CreatedBy
		if l.AssignedTo != nil {
			owner = *l.AssignedTo
		}
		if owner != *f.TeamHeadID && !own.SupervisedBy(owner, *f.TeamHeadID) {
			return false
		}
	}
	if f.ExcludeAdminOwned {
		if own.IsAdmin(l.CreatedBy) {
			return false
		}
		if l.AssignedTo != nil && own.IsAdmin(*l.AssignedTo) {
			return false
		}
	}
	if f.Status != nil && l.Status != *f.Status {
		return false
	}
	if f.CreatedFrom != nil && l.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && l.CreatedAt.After(*f.CreatedTo) {
		return false
	}
	return true
}
