// internal/app/commands/list_orders.commands.go
package commands

import (
	"context"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type ListOrdersCmd struct {
	orders repository.OrderStore
}

func NewListOrdersCmd(orders repository.OrderStore) *ListOrdersCmd {
	return &ListOrdersCmd{orders: orders}
}

type ListOrdersParams struct {
	Caller policy.Caller
	Filter order.Filter
}

// Handle lists orders after narrowing the filter to the caller's scope.
// The second return value is the total match count for pagination.
func (cmd *ListOrdersCmd) Handle(ctx context.Context, p ListOrdersParams) ([]*order.Order, int64, error) {
	if err := policy.Authorize(p.Caller, role.EntityOrder, role.OpList); err != nil {
		return nil, 0, err
	}
	f, err := policy.ResolveOrderListScope(p.Caller, p.Filter)
	if err != nil {
		return nil, 0, err
	}
	return cmd.orders.ListOrders(ctx, f)
}
