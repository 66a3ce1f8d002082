// internal/app/commands/update_order_status.commands.go
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type UpdateOrderStatusCmd struct {
	orders    repository.OrderStore
	accounts  repository.AccountStore
	recorder  *Recorder
	txManager repository.TransactionManager
}

func NewUpdateOrderStatusCmd(orders repository.OrderStore, accounts repository.AccountStore, recorder *Recorder, tx repository.TransactionManager) *UpdateOrderStatusCmd {
	return &UpdateOrderStatusCmd{orders: orders, accounts: accounts, recorder: recorder, txManager: tx}
}

type UpdateOrderStatusParams struct {
	Caller  policy.Caller
	OrderID uuid.UUID
	Status  order.Status
	// Message lands in the tracking log; empty gets a generic note.
	Message string
}

// Handle moves an order to a new fulfillment status and appends the
// matching tracking-log entry in the same atomic unit. Every operating
// role may do this, within its visibility scope.
func (cmd *UpdateOrderStatusCmd) Handle(ctx context.Context, p UpdateOrderStatusParams) (*order.Order, error) {
	if err := policy.Authorize(p.Caller, role.EntityOrder, role.OpUpdateStatus); err != nil {
		return nil, err
	}
	if !order.ValidStatus(p.Status) {
		return nil, domainErr.Validation("invalid order status %q", p.Status)
	}

	var updated *order.Order
	err := cmd.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		o, err := cmd.orders.GetOrderByID(txCtx, p.OrderID)
		if err != nil {
			return err
		}
		if !policy.CanReadOrder(p.Caller, o, newOwnership(txCtx, cmd.accounts)) {
			return domainErr.Forbidden("order is outside the caller's scope")
		}

		from := o.OrderStatus
		o.AppendTracking(p.Status, p.Message, time.Now().UTC())

		if err := cmd.orders.UpdateOrder(txCtx, o); err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		updated = o

		actor := p.Caller.ID
		return cmd.recorder.Record(txCtx, audit.New(&actor, audit.ActionOrderStatusChanged, &o.ID, map[string]any{
			"from": from,
			"to":   p.Status,
		}))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
