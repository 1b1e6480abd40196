package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusPaid, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipping, false},
		{StatusPending, StatusDelivered, false},
		{StatusPaid, StatusPreparing, true},
		{StatusPaid, StatusRefunded, true},
		{StatusPaid, StatusDelivered, false},
		{StatusPreparing, StatusShipping, true},
		{StatusPreparing, StatusPaid, false},
		{StatusShipping, StatusDelivered, true},
		{StatusShipping, StatusCancelled, true},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusRefunded, true},
		{StatusCancelled, StatusRefunded, true},
		{StatusCancelled, StatusPending, false},
		{StatusRefunded, StatusCancelled, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+" to "+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransition(tc.to))
		})
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, StatusRefunded.Terminal())
	assert.False(t, StatusDelivered.Terminal(), "delivered orders stay refundable")
	assert.False(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusRefunded.Valid())
	assert.False(t, Status("lost").Valid())
	assert.False(t, Status("").Valid())
}

func TestFormatOrderNumber(t *testing.T) {
	day := time.Date(2026, 8, 29, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "ORD-20260829-001", FormatOrderNumber(day, 1))
	assert.Equal(t, "ORD-20260829-042", FormatOrderNumber(day, 42))
	assert.Equal(t, "ORD-20260829-1000", FormatOrderNumber(day, 1000))

	// Midnight rollover starts a new date segment.
	nextDay := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "ORD-20260830-001", FormatOrderNumber(nextDay, 1))

	// Local times collapse onto the UTC day.
	kst := time.FixedZone("KST", 9*60*60)
	lateEvening := time.Date(2026, 8, 30, 3, 0, 0, 0, kst)
	assert.Equal(t, "ORD-20260829-001", FormatOrderNumber(lateEvening, 1))
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, MethodCreditCard.Valid())
	assert.True(t, MethodKakaoPay.Valid())
	assert.False(t, PaymentMethod("cash_on_delivery").Valid())
}

func TestPaymentVerification_Completed(t *testing.T) {
	assert.True(t, PaymentVerification{Status: "paid"}.Completed())
	assert.False(t, PaymentVerification{Status: "ready"}.Completed())
	assert.False(t, PaymentVerification{Status: "failed"}.Completed())
}

func TestOrder_TotalItems(t *testing.T) {
	order := Order{Items: []OrderItem{
		{Size: "M", Quantity: 2},
		{Size: "L", Quantity: 3},
	}}
	assert.Equal(t, 5, order.TotalItems())
	assert.Equal(t, 0, Order{}.TotalItems())
}
