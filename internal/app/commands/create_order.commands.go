// internal/app/commands/create_order.commands.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

type CreateOrderCmd struct {
	orders   repository.OrderStore
	products repository.ProductStore
	accounts repository.AccountStore
	recorder *Recorder
}

func NewCreateOrderCmd(orders repository.OrderStore, products repository.ProductStore, accounts repository.AccountStore, recorder *Recorder) *CreateOrderCmd {
	return &CreateOrderCmd{orders: orders, products: products, accounts: accounts, recorder: recorder}
}

type CreateOrderParams struct {
	Caller       policy.Caller
	CustomerName string
	Address      string
	Pincode      string
	Phone        string
	ProductID    uuid.UUID
	Quantity     int
	// AgentID is the selling agent. Agents always book for themselves;
	// for other roles an empty value defaults to the caller.
	AgentID         uuid.UUID
	PaymentMode     order.PaymentMode
	DepositedAmount *decimal.Decimal
	RemainingAmount *decimal.Decimal
	AWB             string
	Remarks         string
}

// Handle books an order, snapshotting the product's effective price so
// later catalog changes never move an existing ledger.
func (cmd *CreateOrderCmd) Handle(ctx context.Context, p CreateOrderParams) (*order.Order, error) {
	if err := policy.Authorize(p.Caller, role.EntityOrder, role.OpCreate); err != nil {
		return nil, err
	}

	agentID := p.AgentID
	if p.Caller.Role == role.RoleAgent || agentID == uuid.Nil {
		agentID = p.Caller.ID
	}

	var prod *product.Product
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		prod, err = cmd.products.GetProductByID(gctx, p.ProductID)
		if errors.Is(err, domainErr.ErrProductNotFound) {
			return domainErr.Validation("product does not exist")
		}
		return err
	})
	if agentID != p.Caller.ID {
		g.Go(func() error {
			if _, err := cmd.accounts.GetAccountByID(gctx, agentID); err != nil {
				if errors.Is(err, domainErr.ErrAccountNotFound) {
					return domainErr.Validation("agent account does not exist")
				}
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o, err := order.New(order.NewParams{
		CustomerName:     p.CustomerName,
		Address:          p.Address,
		Pincode:          p.Pincode,
		Phone:            p.Phone,
		ProductID:        prod.ID,
		Quantity:         p.Quantity,
		PriceAtOrderTime: prod.EffectivePrice(),
		AgentID:          agentID,
		PaymentMode:      p.PaymentMode,
		DepositedAmount:  p.DepositedAmount,
		RemainingAmount:  p.RemainingAmount,
		AWB:              p.AWB,
		Remarks:          p.Remarks,
	}, now)
	if err != nil {
		return nil, err
	}
	o.AppendTracking(order.StatusPending, "Order created", now)

	if err := cmd.orders.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	actor := p.Caller.ID
	if err := cmd.recorder.Record(ctx, audit.New(&actor, audit.ActionOrderCreated, &o.ID, map[string]any{
		"product_id":   o.ProductID,
		"agent_id":     o.AgentID,
		"total_amount": o.TotalAmount.String(),
		"payment_mode": o.PaymentMode,
	})); err != nil {
		return nil, err
	}
	return o, nil
}
