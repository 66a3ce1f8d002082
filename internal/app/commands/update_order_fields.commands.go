// internal/app/commands/update_order_fields.commands.go
package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type UpdateOrderFieldsCmd struct {
	orders    repository.OrderStore
	recorder  *Recorder
	txManager repository.TransactionManager
}

func NewUpdateOrderFieldsCmd(orders repository.OrderStore, recorder *Recorder, tx repository.TransactionManager) *UpdateOrderFieldsCmd {
	return &UpdateOrderFieldsCmd{orders: orders, recorder: recorder, txManager: tx}
}

// UpdateOrderFieldsParams is a partial update; nil fields stay
// untouched.
type UpdateOrderFieldsParams struct {
	Caller       policy.Caller
	OrderID      uuid.UUID
	CustomerName *string
	Address      *string
	Pincode      *string
	Phone        *string
	Quantity     *int
	// PriceAtOrderTime corrects the snapshot taken at creation; the
	// total is re-derived from it like any other factor change.
	PriceAtOrderTime *decimal.Decimal
	PaymentMode      *order.PaymentMode
	// Required together when switching to, or already in, partial payment.
	DepositedAmount *decimal.Decimal
	RemainingAmount *decimal.Decimal
	Remarks         *string
}

// Handle edits order fields. Admin and subadmin only. The total is
// re-derived whenever quantity or the price snapshot moves, so the
// ledger identity holds no matter which fields the caller sent.
func (cmd *UpdateOrderFieldsCmd) Handle(ctx context.Context, p UpdateOrderFieldsParams) (*order.Order, error) {
	if err := policy.Authorize(p.Caller, role.EntityOrder, role.OpUpdate); err != nil {
		return nil, err
	}
	if p.PaymentMode != nil && !order.ValidPaymentMode(*p.PaymentMode) {
		return nil, domainErr.Validation("invalid payment mode %q", *p.PaymentMode)
	}
	if p.Quantity != nil && *p.Quantity < 1 {
		return nil, domainErr.Validation("quantity cannot be less than 1")
	}
	if p.PriceAtOrderTime != nil && p.PriceAtOrderTime.IsNegative() {
		return nil, domainErr.Validation("price cannot be negative")
	}

	var updated *order.Order
	err := cmd.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		o, err := cmd.orders.GetOrderByID(txCtx, p.OrderID)
		if err != nil {
			return err
		}

		touched := []string{}
		if p.CustomerName != nil {
			name := strings.TrimSpace(*p.CustomerName)
			if name == "" {
				return domainErr.Validation("customer name is required")
			}
			o.CustomerName = name
			touched = append(touched, "customer_name")
		}
		if p.Address != nil {
			address := strings.TrimSpace(*p.Address)
			if address == "" {
				return domainErr.Validation("address is required")
			}
			o.Address = address
			touched = append(touched, "address")
		}
		if p.Pincode != nil {
			if err := order.ValidatePincode(*p.Pincode); err != nil {
				return err
			}
			o.Pincode = strings.TrimSpace(*p.Pincode)
			touched = append(touched, "pincode")
		}
		if p.Phone != nil {
			if err := order.ValidatePhone(*p.Phone); err != nil {
				return err
			}
			o.Phone = strings.TrimSpace(*p.Phone)
			touched = append(touched, "phone")
		}
		if p.Quantity != nil {
			o.Quantity = *p.Quantity
			touched = append(touched, "quantity")
		}
		if p.PriceAtOrderTime != nil {
			o.PriceAtOrderTime = *p.PriceAtOrderTime
			touched = append(touched, "price_at_order_time")
		}
		if p.PaymentMode != nil {
			o.PaymentMode = *p.PaymentMode
			touched = append(touched, "payment_mode")
		}
		if o.PaymentMode == order.ModePartialPayment && p.PaymentMode != nil {
			if p.DepositedAmount == nil || p.RemainingAmount == nil {
				return domainErr.Validation("deposited and remaining amounts are required for partial payment")
			}
		}
		if p.DepositedAmount != nil {
			if p.DepositedAmount.IsNegative() {
				return domainErr.Validation("payment amounts cannot be negative")
			}
			o.DepositedAmount = *p.DepositedAmount
			touched = append(touched, "deposited_amount")
		}
		if p.RemainingAmount != nil {
			if p.RemainingAmount.IsNegative() {
				return domainErr.Validation("payment amounts cannot be negative")
			}
			o.RemainingAmount = *p.RemainingAmount
			touched = append(touched, "remaining_amount")
		}
		if p.Remarks != nil {
			o.Remarks = strings.TrimSpace(*p.Remarks)
			touched = append(touched, "remarks")
		}
		if len(touched) == 0 {
			return domainErr.Validation("no fields to update")
		}

		o.RecomputeTotal()
		o.ApplyPaymentMode()
		o.UpdatedAt = time.Now().UTC()

		if err := cmd.orders.UpdateOrder(txCtx, o); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		updated = o

		actor := p.Caller.ID
		return cmd.recorder.Record(txCtx, audit.New(&actor, audit.ActionOrderFieldsUpdated, &o.ID, map[string]any{
			"fields":       touched,
			"total_amount": o.TotalAmount.String(),
		}))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
