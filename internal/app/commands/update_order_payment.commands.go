// internal/app/commands/update_order_payment.commands.go
package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type UpdateOrderPaymentCmd struct {
	orders    repository.OrderStore
	recorder  *Recorder
	txManager repository.TransactionManager
}

func NewUpdateOrderPaymentCmd(orders repository.OrderStore, recorder *Recorder, tx repository.TransactionManager) *UpdateOrderPaymentCmd {
	return &UpdateOrderPaymentCmd{orders: orders, recorder: recorder, txManager: tx}
}

type UpdateOrderPaymentParams struct {
	Caller        policy.Caller
	OrderID       uuid.UUID
	PaymentStatus order.PaymentStatus
	TransactionID *string
}

// Handle records a payment outcome. Admin and subadmin only; the
// fulfillment status is untouched.
func (cmd *UpdateOrderPaymentCmd) Handle(ctx context.Context, p UpdateOrderPaymentParams) (*order.Order, error) {
	if err := policy.Authorize(p.Caller, role.EntityOrder, role.OpUpdatePayment); err != nil {
		return nil, err
	}
	if !order.ValidPaymentStatus(p.PaymentStatus) {
		return nil, domainErr.Validation("invalid payment status %q", p.PaymentStatus)
	}

	var updated *order.Order
	err := cmd.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		o, err := cmd.orders.GetOrderByID(txCtx, p.OrderID)
		if err != nil {
			return err
		}

		from := o.PaymentStatus
		o.PaymentStatus = p.PaymentStatus
		if p.TransactionID != nil {
			o.TransactionID = strings.TrimSpace(*p.TransactionID)
		}
		o.UpdatedAt = time.Now().UTC()

		if err := cmd.orders.UpdateOrder(txCtx, o); err != nil {
			return fmt.Errorf("update order payment: %w", err)
		}
		updated = o

		actor := p.Caller.ID
		return cmd.recorder.Record(txCtx, audit.New(&actor, audit.ActionOrderPaymentUpdated, &o.ID, map[string]any{
			"from": from,
			"to":   p.PaymentStatus,
		}))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
