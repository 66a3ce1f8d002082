// internal/app/commands/update_order_courier.commands.go
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

type UpdateOrderCourierCmd struct {
	orders    repository.OrderStore
	recorder  *Recorder
	txManager repository.TransactionManager
}

func NewUpdateOrderCourierCmd(orders repository.OrderStore, recorder *Recorder, tx repository.TransactionManager) *UpdateOrderCourierCmd {
	return &UpdateOrderCourierCmd{orders: orders, recorder: recorder, txManager: tx}
}

type UpdateOrderCourierParams struct {
	Caller         policy.Caller
	OrderID        uuid.UUID
	AWB            string
	CourierPartner string
}

// Handle assigns the shipment identity. AWB and courier partner travel
// together; setting one without the other is rejected.
func (cmd *UpdateOrderCourierCmd) Handle(ctx context.Context, p UpdateOrderCourierParams) (*order.Order, error) {
	if err := policy.Authorize(p.Caller, role.EntityOrder, role.OpUpdateCourier); err != nil {
		return nil, err
	}
	awb := strings.TrimSpace(p.AWB)
	partner := strings.TrimSpace(p.CourierPartner)
	if awb == "" || partner == "" {
		return nil, domainErr.Validation("awb and courier partner are both required")
	}

	var updated *order.Order
	err := cmd.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		o, err := cmd.orders.GetOrderByID(txCtx, p.OrderID)
		if err != nil {
			return err
		}

		o.AWB = awb
		o.CourierPartner = partner
		o.UpdatedAt = time.Now().UTC()

		if err := cmd.orders.UpdateOrder(txCtx, o); err != nil {
			return fmt.Errorf("update order courier: %w", err)
		}
		updated = o

		actor := p.Caller.ID
		return cmd.recorder.Record(txCtx, audit.New(&actor, audit.ActionOrderCourierUpdated, &o.ID, map[string]any{
			"awb":             awb,
			"courier_partner": partner,
		}))
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
