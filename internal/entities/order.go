package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusPreparing Status = "preparing"
	StatusShipping  Status = "shipping"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
	StatusRefunded  Status = "refunded"
)

// transitions is the full table of legal status changes. Anything not
// listed here is rejected, including jumps over intermediate states.
var transitions = map[Status][]Status{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusPreparing, StatusCancelled, StatusRefunded},
	StatusPreparing: {StatusShipping, StatusCancelled, StatusRefunded},
	StatusShipping:  {StatusDelivered, StatusCancelled, StatusRefunded},
	StatusDelivered: {StatusRefunded},
	StatusCancelled: {StatusRefunded},
	StatusRefunded:  {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transition is defined out of s.
// Delivered is not terminal: the refund edge stays open after fulfillment.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	MethodCreditCard     PaymentMethod = "credit_card"
	MethodBankTransfer   PaymentMethod = "bank_transfer"
	MethodVirtualAccount PaymentMethod = "virtual_account"
	MethodMobile         PaymentMethod = "mobile"
	MethodKakaoPay       PaymentMethod = "kakao_pay"
	MethodNaverPay       PaymentMethod = "naver_pay"
	MethodToss           PaymentMethod = "toss"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCreditCard, MethodBankTransfer, MethodVirtualAccount,
		MethodMobile, MethodKakaoPay, MethodNaverPay, MethodToss:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentRefunded  PaymentStatus = "refunded"
)

// Customer is a snapshot taken at order time, not a live profile reference.
type Customer struct {
	Name  string
	Email string
	Phone string
}

type Shipping struct {
	Recipient      string
	Phone          string
	PostalCode     string
	MainAddress    string
	DetailAddress  string
	Message        string
	TrackingNumber string
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
}

type OrderItem struct {
	ProductID uuid.UUID
	Size      string
	Quantity  int
}

type Payment struct {
	ItemsTotal    int
	ShippingFee   int
	FinalAmount   int
	Method        PaymentMethod
	Status        PaymentStatus
	PaidAt        *time.Time
	TransactionID string
}

type Order struct {
	ID          uuid.UUID
	OrderNumber string
	UserID      string
	Status      Status

	Customer Customer
	Shipping Shipping
	Items    []OrderItem
	Payment  Payment

	CreatedAt    time.Time
	UpdatedAt    time.Time
	CancelledAt  *time.Time
	RefundedAt   *time.Time
	RefundAmount int
}

func (o Order) TotalItems() int {
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}

const orderNumberSeqWidth = 3

// FormatOrderNumber builds the human-readable identifier, e.g.
// ORD-20250930-001. The sequence keeps growing past three digits.
func FormatOrderNumber(day time.Time, seq int) string {
	return fmt.Sprintf("ORD-%s-%0*d", day.UTC().Format("20060102"), orderNumberSeqWidth, seq)
}

// PaymentVerification is what the external gateway reports for a payment uid.
type PaymentVerification struct {
	Amount int
	Status string
	PaidAt time.Time
}

// Completed matches the gateway's own terminal success status.
func (v PaymentVerification) Completed() bool {
	return v.Status == "paid"
}
