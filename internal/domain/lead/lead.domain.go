// internal/domain/lead/lead.domain.go
package lead

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
)

// Status is the sales-contact stage of a lead.
//
// Every status is reachable from every other by direct update; operators
// use this to correct mistakes. Each transition is audited so the graph
// can be tightened later without losing history.
type Status string

const (
	StatusRing          Status = "Ring"
	StatusFollowUp      Status = "Follow Up"
	StatusSaleDone      Status = "Sale Done"
	StatusNotInterested Status = "Not Interested"
	StatusSwitchOff     Status = "Switch Off"
	StatusIncoming      Status = "Incoming"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusRing, StatusFollowUp, StatusSaleDone, StatusNotInterested, StatusSwitchOff, StatusIncoming:
		return true
	}
	return false
}

// Lead is a sales prospect. AssignedTo and CreatedBy are back-references
// by identity only; they are resolved defensively at read time and never
// block deleting the referenced account.
type Lead struct {
	ID         uuid.UUID
	Name       string
	Phone      string
	Service    string
	Address    string
	Source     string
	Status     Status
	Remarks    string
	AssignedTo *uuid.UUID
	CreatedBy  uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidatePhone checks the 10-digit lead phone rule.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return domainErr.Validation("lead phone must be exactly 10 digits")
	}
	return nil
}

type NewParams struct {
	Name       string
	Phone      string
	Service    string
	Address    string
	Source     string
	Remarks    string
	AssignedTo *uuid.UUID
}

// New validates params and builds a lead in the initial Ring status.
func New(p NewParams, createdBy uuid.UUID, now time.Time) (*Lead, error) {
	name := strings.TrimSpace(p.Name)
	if len(name) < 2 || len(name) > 100 {
		return nil, domainErr.Validation("lead name must be 2-100 characters")
	}
	if !phonePattern.MatchString(strings.TrimSpace(p.Phone)) {
		return nil, domainErr.Validation("lead phone must be exactly 10 digits")
	}
	service := strings.TrimSpace(p.Service)
	if len(service) < 2 || len(service) > 100 {
		return nil, domainErr.Validation("service must be 2-100 characters")
	}
	if len(p.Address) > 250 {
		return nil, domainErr.Validation("address must be at most 250 characters")
	}
	if len(p.Remarks) > 500 {
		return nil, domainErr.Validation("remarks must be at most 500 characters")
	}

	return &Lead{
		ID:         uuid.New(),
		Name:       name,
		Phone:      strings.TrimSpace(p.Phone),
		Service:    service,
		Address:    strings.TrimSpace(p.Address),
		Source:     strings.TrimSpace(p.Source),
		Status:     StatusRing,
		Remarks:    strings.TrimSpace(p.Remarks),
		AssignedTo: p.AssignedTo,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
