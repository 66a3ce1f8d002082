// internal/app/commands/delete_order.commands.go
package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type DeleteOrderCmd struct {
	orders   repository.OrderStore
	recorder *Recorder
}

func NewDeleteOrderCmd(orders repository.OrderStore, recorder *Recorder) *DeleteOrderCmd {
	return &DeleteOrderCmd{orders: orders, recorder: recorder}
}

type DeleteOrderParams struct {
	Caller  policy.Caller
	OrderID uuid.UUID
}

// Handle removes an order and its tracking log. Admin only.
func (cmd *DeleteOrderCmd) Handle(ctx context.Context, p DeleteOrderParams) error {
	if err := policy.Authorize(p.Caller, role.EntityOrder, role.OpDelete); err != nil {
		return err
	}
	o, err := cmd.orders.GetOrderByID(ctx, p.OrderID)
	if err != nil {
		return err
	}
	if err := cmd.orders.DeleteOrder(ctx, o.ID); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	actor := p.Caller.ID
	return cmd.recorder.Record(ctx, audit.New(&actor, audit.ActionOrderDeleted, &o.ID, map[string]any{
		"order_status":   o.OrderStatus,
		"payment_status": o.PaymentStatus,
	}))
}
