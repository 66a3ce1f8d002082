// internal/app/commands/order_commands_test.go
package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
)

func (env *testEnv) seedProduct(t *testing.T, price int64, offer *int64) *product.Product {
	t.Helper()
	params := product.NewParams{
		Name:        "Seed Product " + uuid.NewString()[:8],
		Description: "seeded",
		Price:       decimal.NewFromInt(price),
		Category:    "general",
		Stock:       50,
	}
	if offer != nil {
		d := decimal.NewFromInt(*offer)
		params.OfferPrice = &d
	}
	p, err := product.New(params, uuid.New(), time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, env.store.CreateProduct(context.Background(), p))
	return p
}

func orderParams(productID uuid.UUID) CreateOrderParams {
	return CreateOrderParams{
		CustomerName: "Customer",
		Address:      "14 Station Road",
		Pincode:      "110001",
		Phone:        "9876543210",
		ProductID:    productID,
		Quantity:     3,
		PaymentMode:  order.ModeCashOnDelivery,
	}
}

func TestCreateOrderSnapshotsPrice(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	headAcc, _ := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agent := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)
	offer := int64(120)
	prod := env.seedProduct(t, 150, &offer)

	cmd := NewCreateOrderCmd(env.store, env.store, env.store, env.recorder)

	p := orderParams(prod.ID)
	p.Caller = agent
	o, err := cmd.Handle(ctx, p)
	require.NoError(t, err)

	assert.True(t, o.PriceAtOrderTime.Equal(decimal.NewFromInt(120)), "offer price is the effective price")
	assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(360)), "3 x 120")
	assert.Equal(t, agent.ID, o.AgentID)
	require.Len(t, o.TrackingLogs, 1)
	assert.Equal(t, order.StatusPending, o.TrackingLogs[0].Status)

	// Catalog changes after booking never move the ledger.
	prodNow, err := env.store.GetProductByID(ctx, prod.ID)
	require.NoError(t, err)
	prodNow.Price = decimal.NewFromInt(999)
	prodNow.OfferPrice = nil
	require.NoError(t, env.store.UpdateProduct(ctx, prodNow))

	stored, err := env.store.GetOrderByID(ctx, o.ID)
	require.NoError(t, err)
	assert.True(t, stored.TotalAmount.Equal(decimal.NewFromInt(360)))
}

func TestCreateOrderAgentBooksForItself(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	headAcc, head := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	agentAcc, agent := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)
	prod := env.seedProduct(t, 200, nil)

	cmd := NewCreateOrderCmd(env.store, env.store, env.store, env.recorder)

	// An agent naming another seller is overridden to itself.
	p := orderParams(prod.ID)
	p.Caller = agent
	p.AgentID = headAcc.ID
	o, err := cmd.Handle(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, agentAcc.ID, o.AgentID)

	// A teamhead may book on behalf of its agent.
	p = orderParams(prod.ID)
	p.Caller = head
	p.AgentID = agentAcc.ID
	o, err = cmd.Handle(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, agentAcc.ID, o.AgentID)

	p = orderParams(prod.ID)
	p.Caller = head
	p.AgentID = uuid.New()
	_, err = cmd.Handle(ctx, p)
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput, "seller must exist")

	p = orderParams(uuid.New())
	p.Caller = head
	_, err = cmd.Handle(ctx, p)
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput, "product must exist")
}

func TestUpdateOrderStatusAppendsTracking(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	headAcc, _ := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agent := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)
	prod := env.seedProduct(t, 150, nil)

	create := NewCreateOrderCmd(env.store, env.store, env.store, env.recorder)
	p := orderParams(prod.ID)
	p.Caller = agent
	o, err := create.Handle(ctx, p)
	require.NoError(t, err)

	upd := NewUpdateOrderStatusCmd(env.store, env.store, env.recorder, env.store)
	_, err = upd.Handle(ctx, UpdateOrderStatusParams{
		Caller: agent, OrderID: o.ID, Status: order.StatusConfirmed, Message: "Customer confirmed on call",
	})
	require.NoError(t, err)
	updated, err := upd.Handle(ctx, UpdateOrderStatusParams{
		Caller: agent, OrderID: o.ID, Status: order.StatusShipped,
	})
	require.NoError(t, err)

	require.Len(t, updated.TrackingLogs, 3, "creation plus two moves")
	assert.Equal(t, "Customer confirmed on call", updated.TrackingLogs[1].Message)
	assert.Equal(t, "Status updated", updated.TrackingLogs[2].Message)
	assert.Equal(t, order.StatusShipped, updated.OrderStatus)

	ev := env.lastEvent(t)
	assert.Equal(t, audit.ActionOrderStatusChanged, ev.Action)
	assert.Equal(t, order.StatusConfirmed, ev.Metadata["from"])
	assert.Equal(t, order.StatusShipped, ev.Metadata["to"])

	_, err = upd.Handle(ctx, UpdateOrderStatusParams{
		Caller: agent, OrderID: o.ID, Status: order.Status("Lost"),
	})
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)
}

func TestUpdateOrderFieldsKeepsLedgerIdentity(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, admin := env.seedAccount(t, role.RoleAdmin, account.StatusActive, nil)
	headAcc, _ := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agent := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)
	prod := env.seedProduct(t, 150, nil)

	create := NewCreateOrderCmd(env.store, env.store, env.store, env.recorder)
	p := orderParams(prod.ID)
	p.Caller = agent
	o, err := create.Handle(ctx, p)
	require.NoError(t, err)

	upd := NewUpdateOrderFieldsCmd(env.store, env.recorder, env.store)
	qty := 5
	updated, err := upd.Handle(ctx, UpdateOrderFieldsParams{
		Caller: admin, OrderID: o.ID, Quantity: &qty,
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(750)),
		"total re-derived from the persisted snapshot: 5 x 150")

	// Correcting the price snapshot alone re-derives from stored quantity.
	price := decimal.NewFromInt(200)
	updated, err = upd.Handle(ctx, UpdateOrderFieldsParams{
		Caller: admin, OrderID: o.ID, PriceAtOrderTime: &price,
	})
	require.NoError(t, err)
	assert.True(t, updated.PriceAtOrderTime.Equal(price))
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(1000)), "5 x 200")

	negative := decimal.NewFromInt(-1)
	_, err = upd.Handle(ctx, UpdateOrderFieldsParams{
		Caller: admin, OrderID: o.ID, PriceAtOrderTime: &negative,
	})
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)

	// Switching into partial payment needs both amounts.
	partial := order.ModePartialPayment
	_, err = upd.Handle(ctx, UpdateOrderFieldsParams{
		Caller: admin, OrderID: o.ID, PaymentMode: &partial,
	})
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)

	dep := decimal.NewFromInt(300)
	rem := decimal.NewFromInt(450)
	updated, err = upd.Handle(ctx, UpdateOrderFieldsParams{
		Caller: admin, OrderID: o.ID, PaymentMode: &partial,
		DepositedAmount: &dep, RemainingAmount: &rem,
	})
	require.NoError(t, err)
	assert.True(t, updated.DepositedAmount.Equal(dep))

	// Switching back out zeroes the ledger amounts.
	full := order.ModeFullPayment
	updated, err = upd.Handle(ctx, UpdateOrderFieldsParams{
		Caller: admin, OrderID: o.ID, PaymentMode: &full,
	})
	require.NoError(t, err)
	assert.True(t, updated.DepositedAmount.IsZero())
	assert.True(t, updated.RemainingAmount.IsZero())

	// Teamheads hold no field-edit capability on orders.
	headCaller := agent
	headCaller.Role = role.RoleTeamHead
	_, err = upd.Handle(ctx, UpdateOrderFieldsParams{Caller: headCaller, OrderID: o.ID, Quantity: &qty})
	assert.ErrorIs(t, err, domainErr.ErrForbidden)
}

func TestUpdateOrderPaymentAndCourier(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, sub := env.seedAccount(t, role.RoleSubAdmin, account.StatusActive, nil)
	headAcc, _ := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agent := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)
	prod := env.seedProduct(t, 150, nil)

	create := NewCreateOrderCmd(env.store, env.store, env.store, env.recorder)
	p := orderParams(prod.ID)
	p.Caller = agent
	o, err := create.Handle(ctx, p)
	require.NoError(t, err)

	pay := NewUpdateOrderPaymentCmd(env.store, env.recorder, env.store)
	txID := "TXN-8833"
	updated, err := pay.Handle(ctx, UpdateOrderPaymentParams{
		Caller: sub, OrderID: o.ID, PaymentStatus: order.PaymentPaid, TransactionID: &txID,
	})
	require.NoError(t, err)
	assert.Equal(t, order.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, "TXN-8833", updated.TransactionID)
	assert.Equal(t, order.StatusPending, updated.OrderStatus, "payment never moves fulfillment")

	_, err = pay.Handle(ctx, UpdateOrderPaymentParams{
		Caller: agent, OrderID: o.ID, PaymentStatus: order.PaymentRefunded,
	})
	assert.ErrorIs(t, err, domainErr.ErrForbidden)

	courier := NewUpdateOrderCourierCmd(env.store, env.recorder, env.store)
	_, err = courier.Handle(ctx, UpdateOrderCourierParams{
		Caller: sub, OrderID: o.ID, AWB: "AWB123",
	})
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput, "courier partner missing")

	updated, err = courier.Handle(ctx, UpdateOrderCourierParams{
		Caller: sub, OrderID: o.ID, AWB: "AWB123", CourierPartner: "BlueDart",
	})
	require.NoError(t, err)
	assert.Equal(t, "AWB123", updated.AWB)
	assert.Equal(t, "BlueDart", updated.CourierPartner)
}

func TestListOrdersScopeAndPagination(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, admin := env.seedAccount(t, role.RoleAdmin, account.StatusActive, nil)
	headAcc, head := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agentA := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)
	otherHead, _ := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agentB := env.seedAccount(t, role.RoleAgent, account.StatusActive, &otherHead.ID)
	prod := env.seedProduct(t, 150, nil)

	create := NewCreateOrderCmd(env.store, env.store, env.store, env.recorder)
	for i := 0; i < 3; i++ {
		p := orderParams(prod.ID)
		p.Caller = agentA
		_, err := create.Handle(ctx, p)
		require.NoError(t, err)
	}
	p := orderParams(prod.ID)
	p.Caller = agentB
	_, err := create.Handle(ctx, p)
	require.NoError(t, err)

	list := NewListOrdersCmd(env.store)

	mine, total, err := list.Handle(ctx, ListOrdersParams{Caller: agentA})
	require.NoError(t, err)
	assert.Len(t, mine, 3)
	assert.EqualValues(t, 3, total)

	team, total, err := list.Handle(ctx, ListOrdersParams{Caller: head})
	require.NoError(t, err)
	assert.Len(t, team, 3)
	assert.EqualValues(t, 3, total)

	page, total, err := list.Handle(ctx, ListOrdersParams{
		Caller: admin,
		Filter: order.Filter{Page: 1, Limit: 2},
	})
	require.NoError(t, err)
	assert.Len(t, page, 2, "page is capped at the limit")
	assert.EqualValues(t, 4, total, "total counts every match")
}

func TestDeleteOrderAdminOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	_, admin := env.seedAccount(t, role.RoleAdmin, account.StatusActive, nil)
	headAcc, _ := env.seedAccount(t, role.RoleTeamHead, account.StatusActive, nil)
	_, agent := env.seedAccount(t, role.RoleAgent, account.StatusActive, &headAcc.ID)
	prod := env.seedProduct(t, 150, nil)

	create := NewCreateOrderCmd(env.store, env.store, env.store, env.recorder)
	p := orderParams(prod.ID)
	p.Caller = agent
	o, err := create.Handle(ctx, p)
	require.NoError(t, err)

	del := NewDeleteOrderCmd(env.store, env.recorder)
	err = del.Handle(ctx, DeleteOrderParams{Caller: agent, OrderID: o.ID})
	assert.ErrorIs(t, err, domainErr.ErrForbidden)

	require.NoError(t, del.Handle(ctx, DeleteOrderParams{Caller: admin, OrderID: o.ID}))
	_, err = env.store.GetOrderByID(ctx, o.ID)
	assert.ErrorIs(t, err, domainErr.ErrOrderNotFound)
}
