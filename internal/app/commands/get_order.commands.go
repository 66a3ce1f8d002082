// internal/app/commands/get_order.commands.go
package commands

import (
	"context"

	"github.com/google/uuid"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type GetOrderCmd struct {
	orders   repository.OrderStore
	accounts repository.AccountStore
}

func NewGetOrderCmd(orders repository.OrderStore, accounts repository.AccountStore) *GetOrderCmd {
	return &GetOrderCmd{orders: orders, accounts: accounts}
}

type GetOrderParams struct {
	Caller  policy.Caller
	OrderID uuid.UUID
}

func (cmd *GetOrderCmd) Handle(ctx context.Context, p GetOrderParams) (*order.Order, error) {
	if err := policy.Authorize(p.Caller, role.EntityOrder, role.OpGet); err != nil {
		return nil, err
	}
	o, err := cmd.orders.GetOrderByID(ctx, p.OrderID)
	if err != nil {
		return nil, err
	}
	if !policy.CanReadOrder(p.Caller, o, newOwnership(ctx, cmd.accounts)) {
		return nil, domainErr.Forbidden("order is outside the caller's scope")
	}
	return o, nil
}
