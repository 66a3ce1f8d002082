// internal/app/engine/intent.go
package engine

import (
	"context"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/app/commands"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

// Intent is a dynamically-dispatched operation request, for callers
// that route by entity and operation name (an HTTP layer, a message
// consumer) instead of calling the typed methods. Payload must be the
// params struct of the matching command.
type Intent struct {
	Entity  role.Entity
	Op      role.Operation
	Payload any
}

// Execute dispatches an intent to its command. An unknown entity/op
// pair or a payload of the wrong type is a validation error; the
// authorization decision stays inside the command.
func (e *Engine) Execute(ctx context.Context, in Intent) (any, error) {
	switch in.Entity {
	case role.EntityAccount:
		return e.executeAccount(ctx, in)
	case role.EntityLead:
		return e.executeLead(ctx, in)
	case role.EntityOrder:
		return e.executeOrder(ctx, in)
	case role.EntityProduct:
		return e.executeProduct(ctx, in)
	}
	return nil, domainErr.Validation("unknown entity %q", in.Entity)
}

func (e *Engine) executeAccount(ctx context.Context, in Intent) (any, error) {
	switch in.Op {
	case role.OpCreate:
		p, ok := in.Payload.(commands.CreateAccountParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.CreateAccount(ctx, p)
	case role.OpList:
		p, ok := in.Payload.(commands.ListAccountsParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.ListAccounts(ctx, p)
	case role.OpGet:
		p, ok := in.Payload.(commands.GetAccountParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.GetAccount(ctx, p)
	case role.OpUpdate:
		p, ok := in.Payload.(commands.UpdateAccountParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.UpdateAccount(ctx, p)
	case role.OpUpdateStatus:
		p, ok := in.Payload.(commands.SetAccountStatusParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.SetAccountStatus(ctx, p)
	case role.OpChangePassword:
		p, ok := in.Payload.(commands.ChangePasswordParams)
		if !ok {
			return nil, badPayload(in)
		}
		return nil, e.ChangePassword(ctx, p)
	case role.OpDelete:
		p, ok := in.Payload.(commands.DeleteAccountParams)
		if !ok {
			return nil, badPayload(in)
		}
		return nil, e.DeleteAccount(ctx, p)
	}
	return nil, badOp(in)
}

func (e *Engine) executeLead(ctx context.Context, in Intent) (any, error) {
	switch in.Op {
	case role.OpCreate:
		p, ok := in.Payload.(commands.CreateLeadParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.CreateLead(ctx, p)
	case role.OpList:
		p, ok := in.Payload.(commands.ListLeadsParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.ListLeads(ctx, p)
	case role.OpGet:
		p, ok := in.Payload.(commands.GetLeadParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.GetLead(ctx, p)
	case role.OpUpdate:
		p, ok := in.Payload.(commands.UpdateLeadParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.UpdateLead(ctx, p)
	case role.OpDelete:
		p, ok := in.Payload.(commands.DeleteLeadParams)
		if !ok {
			return nil, badPayload(in)
		}
		return nil, e.DeleteLead(ctx, p)
	}
	return nil, badOp(in)
}

// orderPage is the dynamic-dispatch result for order lists, carrying
// the total alongside the page.
type orderPage struct {
	Orders any
	Total  int64
}

func (e *Engine) executeOrder(ctx context.Context, in Intent) (any, error) {
	switch in.Op {
	case role.OpCreate:
		p, ok := in.Payload.(commands.CreateOrderParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.CreateOrder(ctx, p)
	case role.OpList:
		p, ok := in.Payload.(commands.ListOrdersParams)
		if !ok {
			return nil, badPayload(in)
		}
		page, total, err := e.ListOrders(ctx, p)
		if err != nil {
			return nil, err
		}
		return orderPage{Orders: page, Total: total}, nil
	case role.OpGet:
		p, ok := in.Payload.(commands.GetOrderParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.GetOrder(ctx, p)
	case role.OpUpdate:
		p, ok := in.Payload.(commands.UpdateOrderFieldsParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.UpdateOrderFields(ctx, p)
	case role.OpUpdateStatus:
		p, ok := in.Payload.(commands.UpdateOrderStatusParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.UpdateOrderStatus(ctx, p)
	case role.OpUpdatePayment:
		p, ok := in.Payload.(commands.UpdateOrderPaymentParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.UpdateOrderPayment(ctx, p)
	case role.OpUpdateCourier:
		p, ok := in.Payload.(commands.UpdateOrderCourierParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.UpdateOrderCourier(ctx, p)
	case role.OpDelete:
		p, ok := in.Payload.(commands.DeleteOrderParams)
		if !ok {
			return nil, badPayload(in)
		}
		return nil, e.DeleteOrder(ctx, p)
	}
	return nil, badOp(in)
}

func (e *Engine) executeProduct(ctx context.Context, in Intent) (any, error) {
	switch in.Op {
	case role.OpCreate:
		p, ok := in.Payload.(commands.CreateProductParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.CreateProduct(ctx, p)
	case role.OpList:
		p, ok := in.Payload.(commands.ListProductsParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.ListProducts(ctx, p)
	case role.OpGet:
		p, ok := in.Payload.(commands.GetProductParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.GetProduct(ctx, p)
	case role.OpUpdate:
		p, ok := in.Payload.(commands.UpdateProductParams)
		if !ok {
			return nil, badPayload(in)
		}
		return e.UpdateProduct(ctx, p)
	case role.OpDelete:
		p, ok := in.Payload.(commands.DeleteProductParams)
		if !ok {
			return nil, badPayload(in)
		}
		return nil, e.DeleteProduct(ctx, p)
	}
	return nil, badOp(in)
}

func badOp(in Intent) error {
	return domainErr.Validation("operation %q is not defined for %s", in.Op, in.Entity)
}

func badPayload(in Intent) error {
	return domainErr.Validation("payload does not match %s.%s", in.Entity, in.Op)
}
