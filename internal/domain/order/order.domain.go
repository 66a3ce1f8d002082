// internal/domain/order/order.domain.go
package order

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
)

// Status is the fulfillment stage of an order.
//
// The happy path is linear (Pending through Delivered) with RTO, Returned
// and Cancelled branches, but the engine does not enforce forward-only
// progression: any status is reachable from any other, and every change
// lands in the tracking log.
type Status string

const (
	StatusPending        Status = "Pending"
	StatusConfirmed      Status = "Confirmed"
	StatusPacked         Status = "Packed"
	StatusShipped        Status = "Shipped"
	StatusInTransit      Status = "In Transit"
	StatusOutForDelivery Status = "Out For Delivery"
	StatusDelivered      Status = "Delivered"
	StatusRTOInitiated   Status = "RTO Initiated"
	StatusRTOReceived    Status = "RTO Received"
	StatusReturned       Status = "Returned"
	StatusCancelled      Status = "Cancelled"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPacked, StatusShipped,
		StatusInTransit, StatusOutForDelivery, StatusDelivered,
		StatusRTOInitiated, StatusRTOReceived, StatusReturned, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is independent of the fulfillment status.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentFailed   PaymentStatus = "Failed"
	PaymentRefunded PaymentStatus = "Refunded"
)

func ValidPaymentStatus(s PaymentStatus) bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type PaymentMode string

const (
	ModeCashOnDelivery PaymentMode = "cash-on-delivery"
	ModePartialPayment PaymentMode = "partial-payment"
	ModeFullPayment    PaymentMode = "full-payment"
)

func ValidPaymentMode(m PaymentMode) bool {
	switch m {
	case ModeCashOnDelivery, ModePartialPayment, ModeFullPayment:
		return true
	}
	return false
}

// TrackingEntry is one element of the append-only tracking log.
type TrackingEntry struct {
	Status  Status
	Message string
	At      time.Time
}

// Order is a sale transaction with a price snapshot taken at creation.
//
// Ledger invariants, enforced after every mutation touching a factor:
//   - TotalAmount = Quantity x PriceAtOrderTime, exactly
//   - PaymentMode != partial-payment => Deposited = Remaining = 0
type Order struct {
	ID               uuid.UUID
	CustomerName     string
	Address          string
	Pincode          string
	Phone            string
	ProductID        uuid.UUID
	Quantity         int
	PriceAtOrderTime decimal.Decimal
	TotalAmount      decimal.Decimal
	AgentID          uuid.UUID
	AWB              string
	CourierPartner   string
	OrderStatus      Status
	PaymentStatus    PaymentStatus
	PaymentMode      PaymentMode
	DepositedAmount  decimal.Decimal
	RemainingAmount  decimal.Decimal
	TransactionID    string
	Remarks          string
	TrackingLogs     []TrackingEntry
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

var (
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
	phonePattern   = regexp.MustCompile(`^[6-9]\d{9}$`)
)

// ValidatePincode checks the 6-digit delivery pincode rule.
func ValidatePincode(pin string) error {
	if !pincodePattern.MatchString(strings.TrimSpace(pin)) {
		return domainErr.Validation("pincode must be exactly 6 digits")
	}
	return nil
}

// ValidatePhone checks the customer phone rule (10 digits, 6-9 first).
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return domainErr.Validation("phone must be 10 digits starting with 6-9")
	}
	return nil
}

type NewParams struct {
	CustomerName     string
	Address          string
	Pincode          string
	Phone            string
	ProductID        uuid.UUID
	Quantity         int // defaults to 1 when zero
	PriceAtOrderTime decimal.Decimal
	AgentID          uuid.UUID
	PaymentMode      PaymentMode
	// Both amounts must be supplied for partial-payment; forced to zero
	// for every other mode.
	DepositedAmount *decimal.Decimal
	RemainingAmount *decimal.Decimal
	AWB             string
	Remarks         string
}

// New validates params, snapshots the price, derives the total and
// normalizes the partial-payment amounts.
func New(p NewParams, now time.Time) (*Order, error) {
	name := strings.TrimSpace(p.CustomerName)
	if name == "" {
		return nil, domainErr.Validation("customer name is required")
	}
	address := strings.TrimSpace(p.Address)
	if address == "" {
		return nil, domainErr.Validation("address is required")
	}
	if !pincodePattern.MatchString(strings.TrimSpace(p.Pincode)) {
		return nil, domainErr.Validation("pincode must be exactly 6 digits")
	}
	if !phonePattern.MatchString(strings.TrimSpace(p.Phone)) {
		return nil, domainErr.Validation("phone must be 10 digits starting with 6-9")
	}
	if p.ProductID == uuid.Nil {
		return nil, domainErr.Validation("product reference is required")
	}
	if p.AgentID == uuid.Nil {
		return nil, domainErr.Validation("agent reference is required")
	}
	qty := p.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 1 {
		return nil, domainErr.Validation("quantity cannot be less than 1")
	}
	if p.PriceAtOrderTime.IsNegative() {
		return nil, domainErr.Validation("price cannot be negative")
	}
	if !ValidPaymentMode(p.PaymentMode) {
		return nil, domainErr.Validation("invalid payment mode %q", p.PaymentMode)
	}

	o := &Order{
		ID:               uuid.New(),
		CustomerName:     name,
		Address:          address,
		Pincode:          strings.TrimSpace(p.Pincode),
		Phone:            strings.TrimSpace(p.Phone),
		ProductID:        p.ProductID,
		Quantity:         qty,
		PriceAtOrderTime: p.PriceAtOrderTime,
		AgentID:          p.AgentID,
		AWB:              strings.TrimSpace(p.AWB),
		OrderStatus:      StatusPending,
		PaymentStatus:    PaymentPending,
		PaymentMode:      p.PaymentMode,
		Remarks:          strings.TrimSpace(p.Remarks),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if p.PaymentMode == ModePartialPayment {
		if p.DepositedAmount == nil || p.RemainingAmount == nil {
			return nil, domainErr.Validation("deposited and remaining amounts are required for partial payment")
		}
		if p.DepositedAmount.IsNegative() || p.RemainingAmount.IsNegative() {
			return nil, domainErr.Validation("payment amounts cannot be negative")
		}
		o.DepositedAmount = *p.DepositedAmount
		o.RemainingAmount = *p.RemainingAmount
	}

	o.RecomputeTotal()
	o.ApplyPaymentMode()
	return o, nil
}

// RecomputeTotal re-derives TotalAmount from the factors currently in
// effect. Must be called after any mutation touching quantity or price.
func (o *Order) RecomputeTotal() {
	o.TotalAmount = o.PriceAtOrderTime.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// ApplyPaymentMode enforces the payment-mode consistency invariant.
// Non-partial modes zero both ledger amounts. For partial payment the
// amounts are recorded as supplied; deposited + remaining is NOT
// reconciled against the total (observed behavior, kept on purpose).
func (o *Order) ApplyPaymentMode() {
	if o.PaymentMode != ModePartialPayment {
		o.DepositedAmount = decimal.Zero
		o.RemainingAmount = decimal.Zero
	}
}

// AppendTracking adds an entry to the append-only tracking log and moves
// the order to the new status.
func (o *Order) AppendTracking(s Status, message string, at time.Time) {
	if message == "" {
		message = "Status updated"
	}
	o.OrderStatus = s
	o.TrackingLogs = append(o.TrackingLogs, TrackingEntry{Status: s, Message: message, At: at})
	o.UpdatedAt = at
}
