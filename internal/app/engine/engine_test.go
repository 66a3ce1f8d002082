// internal/app/engine/engine_test.go
package engine

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/app/commands"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/lead"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/order"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/product"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/infra/memory"
)

type plainHasher struct{}

func (plainHasher) HashPassword(_ context.Context, password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) VerifyPassword(_ context.Context, password, encodedHash string) (bool, error) {
	return encodedHash == "hashed:"+password, nil
}

func newTestEngine(t *testing.T) (*Engine, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	eng := New(Stores{
		Accounts:  store,
		Leads:     store,
		Orders:    store,
		Products:  store,
		Audits:    store,
		TxManager: store,
	}, plainHasher{}, nil, nil)
	return eng, store
}

func seedCaller(t *testing.T, store *memory.Store, r role.Role, teamHeadID *uuid.UUID) (*account.Account, policy.Caller) {
	t.Helper()
	a, err := account.New(account.NewParams{
		Name:       "Seed " + string(r),
		Email:      uuid.NewString() + "@test.local",
		Role:       r,
		Status:     account.StatusActive,
		TeamHeadID: teamHeadID,
	}, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, store.CreateAccount(context.Background(), a))
	return a, policy.Caller{ID: a.ID, Role: a.Role, Status: a.Status}
}

func TestExecuteDispatchesByEntityAndOp(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()
	_, admin := seedCaller(t, store, role.RoleAdmin, nil)

	res, err := eng.Execute(ctx, Intent{
		Entity: role.EntityLead,
		Op:     role.OpCreate,
		Payload: commands.CreateLeadParams{
			Caller: admin,
			NewParams: lead.NewParams{
				Name: "Dispatched Lead", Phone: "9812345678", Service: "Cardio",
			},
		},
	})
	require.NoError(t, err)
	l, ok := res.(*lead.Lead)
	require.True(t, ok)
	assert.Equal(t, lead.StatusRing, l.Status)

	// Deletes dispatch to a nil result.
	res, err = eng.Execute(ctx, Intent{
		Entity:  role.EntityLead,
		Op:      role.OpDelete,
		Payload: commands.DeleteLeadParams{Caller: admin, LeadID: l.ID},
	})
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestExecuteOrderListCarriesTotal(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()
	_, admin := seedCaller(t, store, role.RoleAdmin, nil)

	prod, err := eng.CreateProduct(ctx, commands.CreateProductParams{
		Caller: admin,
		NewParams: product.NewParams{
			Name:        "Dispatch Product",
			Description: "test",
			Price:       decimal.NewFromInt(100),
			Category:    "general",
		},
	})
	require.NoError(t, err)
	_, err = eng.CreateOrder(ctx, commands.CreateOrderParams{
		Caller:       admin,
		CustomerName: "Customer",
		Address:      "14 Station Road",
		Pincode:      "110001",
		Phone:        "9876543210",
		ProductID:    prod.ID,
		PaymentMode:  order.ModeCashOnDelivery,
	})
	require.NoError(t, err)

	res, err := eng.Execute(ctx, Intent{
		Entity:  role.EntityOrder,
		Op:      role.OpList,
		Payload: commands.ListOrdersParams{Caller: admin},
	})
	require.NoError(t, err)
	page, ok := res.(orderPage)
	require.True(t, ok)
	assert.EqualValues(t, 1, page.Total)
}

func TestExecuteRejectsBadIntents(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()
	_, admin := seedCaller(t, store, role.RoleAdmin, nil)

	_, err := eng.Execute(ctx, Intent{
		Entity:  role.Entity("invoice"),
		Op:      role.OpCreate,
		Payload: struct{}{},
	})
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)

	// Payment moves exist for orders, not leads.
	_, err = eng.Execute(ctx, Intent{
		Entity:  role.EntityLead,
		Op:      role.OpUpdatePayment,
		Payload: struct{}{},
	})
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)

	_, err = eng.Execute(ctx, Intent{
		Entity:  role.EntityAccount,
		Op:      role.OpCreate,
		Payload: commands.CreateLeadParams{Caller: admin},
	})
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput, "payload type must match the op")
}

func TestExecuteLeavesAuthorizationToCommands(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()
	headAcc, _ := seedCaller(t, store, role.RoleTeamHead, nil)
	_, agent := seedCaller(t, store, role.RoleAgent, &headAcc.ID)

	// Dispatch reaches the command, which rejects the caller's role.
	_, err := eng.Execute(ctx, Intent{
		Entity: role.EntityOrder,
		Op:     role.OpUpdatePayment,
		Payload: commands.UpdateOrderPaymentParams{
			Caller:        agent,
			OrderID:       uuid.New(),
			PaymentStatus: order.PaymentPaid,
		},
	})
	assert.ErrorIs(t, err, domainErr.ErrForbidden)
}
