// internal/domain/order/order_test.go
package order

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErr "github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/errors"
)

func validParams() NewParams {
	return NewParams{
		CustomerName:     "Sunita Devi",
		Address:          "12 MG Road, Pune",
		Pincode:          "411001",
		Phone:            "9876543210",
		ProductID:        uuid.New(),
		Quantity:         3,
		PriceAtOrderTime: decimal.NewFromInt(150),
		AgentID:          uuid.New(),
		PaymentMode:      ModeCashOnDelivery,
	}
}

func TestNewOrderLedgerIdentity(t *testing.T) {
	o, err := New(validParams(), time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(450)), "3 x 150 = 450, got %s", o.TotalAmount)
	assert.Equal(t, StatusPending, o.OrderStatus)
	assert.Equal(t, PaymentPending, o.PaymentStatus)
	assert.True(t, o.DepositedAmount.IsZero(), "cash on delivery zeroes deposits")
	assert.True(t, o.RemainingAmount.IsZero())
}

func TestRecomputeTotalAfterQuantityChange(t *testing.T) {
	o, err := New(validParams(), time.Now().UTC())
	require.NoError(t, err)

	o.Quantity = 5
	o.RecomputeTotal()
	assert.True(t, o.TotalAmount.Equal(decimal.NewFromInt(750)), "5 x 150 = 750, got %s", o.TotalAmount)

	// The price snapshot never moves with the catalog.
	o.Quantity = 1
	o.RecomputeTotal()
	assert.True(t, o.TotalAmount.Equal(o.PriceAtOrderTime))
}

func TestPartialPaymentRequiresBothAmounts(t *testing.T) {
	p := validParams()
	p.PaymentMode = ModePartialPayment
	_, err := New(p, time.Now().UTC())
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)

	dep := decimal.NewFromInt(200)
	p.DepositedAmount = &dep
	_, err = New(p, time.Now().UTC())
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput, "remaining still missing")

	rem := decimal.NewFromInt(250)
	p.RemainingAmount = &rem
	o, err := New(p, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, o.DepositedAmount.Equal(dep))
	assert.True(t, o.RemainingAmount.Equal(rem))
}

func TestApplyPaymentModeZeroesNonPartial(t *testing.T) {
	p := validParams()
	p.PaymentMode = ModePartialPayment
	dep := decimal.NewFromInt(100)
	rem := decimal.NewFromInt(350)
	p.DepositedAmount = &dep
	p.RemainingAmount = &rem

	o, err := New(p, time.Now().UTC())
	require.NoError(t, err)

	o.PaymentMode = ModeFullPayment
	o.ApplyPaymentMode()
	assert.True(t, o.DepositedAmount.IsZero())
	assert.True(t, o.RemainingAmount.IsZero())
}

func TestNewOrderValidation(t *testing.T) {
	now := time.Now().UTC()

	p := validParams()
	p.Pincode = "4110"
	_, err := New(p, now)
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)

	p = validParams()
	p.Phone = "5876543210"
	_, err = New(p, now)
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput, "phone must start 6-9")

	p = validParams()
	p.Quantity = -2
	_, err = New(p, now)
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)

	p = validParams()
	p.Quantity = 0
	o, err := New(p, now)
	require.NoError(t, err)
	assert.Equal(t, 1, o.Quantity, "quantity defaults to 1")
	assert.True(t, o.TotalAmount.Equal(o.PriceAtOrderTime))

	p = validParams()
	p.PaymentMode = PaymentMode("upi")
	_, err = New(p, now)
	assert.ErrorIs(t, err, domainErr.ErrInvalidInput)
}

func TestAppendTracking(t *testing.T) {
	o, err := New(validParams(), time.Now().UTC())
	require.NoError(t, err)

	at := time.Now().UTC()
	o.AppendTracking(StatusConfirmed, "Payment verified", at)
	o.AppendTracking(StatusShipped, "", at.Add(time.Hour))

	require.Len(t, o.TrackingLogs, 2)
	assert.Equal(t, StatusShipped, o.OrderStatus)
	assert.Equal(t, "Payment verified", o.TrackingLogs[0].Message)
	assert.Equal(t, "Status updated", o.TrackingLogs[1].Message, "empty message gets the generic note")
	assert.Equal(t, StatusConfirmed, o.TrackingLogs[0].Status, "earlier entries are never rewritten")
}

func TestValidStatusEnum(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusPacked, StatusShipped,
		StatusInTransit, StatusOutForDelivery, StatusDelivered,
		StatusRTOInitiated, StatusRTOReceived, StatusReturned, StatusCancelled}
	for _, s := range all {
		assert.True(t, ValidStatus(s), string(s))
	}
	assert.False(t, ValidStatus(Status("Dispatched")))
}
