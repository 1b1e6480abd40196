package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
	"github.com/hyeonwoo-dev/atelier-shop/internal/service"
	mocks "github.com/hyeonwoo-dev/atelier-shop/internal/service/mocks"
	txMocks "github.com/hyeonwoo-dev/atelier-shop/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

type orderMocks struct {
	orders    *mocks.MockOrderRepo
	inventory *mocks.MockInventoryLedger
	sequences *mocks.MockSequenceGenerator
	products  *mocks.MockProductGetter
	carts     *mocks.MockCartClearer
	verifier  *mocks.MockPaymentVerifier
	publisher *mocks.MockEventPublisher
	tx        *txMocks.MockManager
}

func newOrderMocks(t *testing.T) orderMocks {
	m := orderMocks{
		orders:    mocks.NewMockOrderRepo(t),
		inventory: mocks.NewMockInventoryLedger(t),
		sequences: mocks.NewMockSequenceGenerator(t),
		products:  mocks.NewMockProductGetter(t),
		carts:     mocks.NewMockCartClearer(t),
		verifier:  mocks.NewMockPaymentVerifier(t),
		publisher: mocks.NewMockEventPublisher(t),
		tx:        txMocks.NewMockManager(t),
	}

	m.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()
	m.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
	m.products.EXPECT().Invalidate(mock.Anything).Maybe()

	return m
}

// orderLifecycle covers the surface exercised by these tests.
type orderLifecycle interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	TransitionStatus(ctx context.Context, orderID uuid.UUID, target entities.Status) (entities.Order, error)
	Cancel(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	Refund(ctx context.Context, orderID uuid.UUID, amount int) (entities.Order, error)
	OrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
}

func (m orderMocks) newService() orderLifecycle {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewOrderService(logger, m.tx, m.orders, m.inventory, m.sequences, m.products, m.carts, m.verifier, m.publisher)
}

var (
	productA = uuid.New()
	productB = uuid.New()
)

func sellableProduct(id uuid.UUID, size string, stock int) entities.Product {
	return entities.Product{
		ID:       id,
		Name:     "wool coat",
		IsActive: true,
		Sizes:    []entities.SizeStock{{Size: size, Stock: stock}},
	}
}

func validInput() service.CreateOrderInput {
	return service.CreateOrderInput{
		UserID: "user-1",
		Customer: entities.Customer{
			Name:  "Kim Jiwoo",
			Email: "jiwoo@example.com",
			Phone: "010-1234-5678",
		},
		Shipping: entities.Shipping{
			Recipient:   "Kim Jiwoo",
			Phone:       "010-1234-5678",
			PostalCode:  "04524",
			MainAddress: "100 Sejong-daero, Jung-gu, Seoul",
		},
		Items: []entities.OrderItem{
			{ProductID: productA, Size: "M", Quantity: 2},
			{ProductID: productB, Size: "L", Quantity: 1},
		},
		ItemsTotal:  90000,
		ShippingFee: 3000,
		FinalAmount: 93000,
		Method:      entities.MethodCreditCard,
		MerchantUID: "mrc-1001",
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		input        func() service.CreateOrderInput
		mockBehavior func(m orderMocks)
		wantErr      error
		wantStatus   entities.Status
	}{
		{
			name:  "pending order without gateway id",
			input: validInput,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByTransaction(mock.Anything, "mrc-1001").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.products.EXPECT().ProductByID(mock.Anything, productA).
					Return(sellableProduct(productA, "M", 10), nil).Once()
				m.products.EXPECT().ProductByID(mock.Anything, productB).
					Return(sellableProduct(productB, "L", 5), nil).Once()
				m.inventory.EXPECT().Reserve(mock.Anything, productA, "M", 2).Return(nil).Once()
				m.inventory.EXPECT().Reserve(mock.Anything, productB, "L", 1).Return(nil).Once()
				m.sequences.EXPECT().Next(mock.Anything, mock.Anything).Return(1, nil).Once()
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entities.StatusPending,
		},
		{
			name: "verified payment creates paid order",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.PaymentUID = "imp-2002"
				return in
			},
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByTransaction(mock.Anything, "imp-2002").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.verifier.EXPECT().Verify(mock.Anything, "imp-2002").
					Return(entities.PaymentVerification{
						Amount: 93000,
						Status: "paid",
						PaidAt: time.Now().UTC(),
					}, nil).Once()
				m.products.EXPECT().ProductByID(mock.Anything, productA).
					Return(sellableProduct(productA, "M", 10), nil).Once()
				m.products.EXPECT().ProductByID(mock.Anything, productB).
					Return(sellableProduct(productB, "L", 5), nil).Once()
				m.inventory.EXPECT().Reserve(mock.Anything, productA, "M", 2).Return(nil).Once()
				m.inventory.EXPECT().Reserve(mock.Anything, productB, "L", 1).Return(nil).Once()
				m.sequences.EXPECT().Next(mock.Anything, mock.Anything).Return(7, nil).Once()
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entities.StatusPaid,
		},
		{
			name: "payment amount mismatch rejects before touching stock",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.PaymentUID = "imp-2002"
				return in
			},
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByTransaction(mock.Anything, "imp-2002").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.verifier.EXPECT().Verify(mock.Anything, "imp-2002").
					Return(entities.PaymentVerification{Amount: 1000, Status: "paid"}, nil).Once()
			},
			wantErr: entities.ErrPaymentMismatch,
		},
		{
			name:  "insufficient stock rolls back earlier reservations",
			input: validInput,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByTransaction(mock.Anything, "mrc-1001").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.products.EXPECT().ProductByID(mock.Anything, productA).
					Return(sellableProduct(productA, "M", 10), nil).Once()
				m.products.EXPECT().ProductByID(mock.Anything, productB).
					Return(sellableProduct(productB, "L", 0), nil).Once()
				m.inventory.EXPECT().Reserve(mock.Anything, productA, "M", 2).Return(nil).Once()
				m.inventory.EXPECT().Reserve(mock.Anything, productB, "L", 1).
					Return(entities.ErrInsufficientStock).Once()
				m.inventory.EXPECT().Restore(mock.Anything, productA, "M", 2).Return(nil).Once()
			},
			wantErr: entities.ErrInsufficientStock,
		},
		{
			name:  "duplicate transaction returns the existing order",
			input: validInput,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByTransaction(mock.Anything, "mrc-1001").
					Return(entities.Order{
						OrderNumber: "ORD-20260829-001",
						Status:      entities.StatusPending,
					}, nil).Once()
			},
			wantStatus: entities.StatusPending,
		},
		{
			name: "inactive product is not sellable",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.Items = in.Items[:1]
				return in
			},
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByTransaction(mock.Anything, "mrc-1001").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				discontinued := sellableProduct(productA, "M", 10)
				discontinued.IsActive = false
				m.products.EXPECT().ProductByID(mock.Anything, productA).
					Return(discontinued, nil).Once()
			},
			wantErr: entities.ErrProductNotSellable,
		},
		{
			name: "lost insert race collapses onto the winner",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.Items = in.Items[:1]
				return in
			},
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByTransaction(mock.Anything, "mrc-1001").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.products.EXPECT().ProductByID(mock.Anything, productA).
					Return(sellableProduct(productA, "M", 10), nil).Once()
				m.inventory.EXPECT().Reserve(mock.Anything, productA, "M", 2).Return(nil).Once()
				m.sequences.EXPECT().Next(mock.Anything, mock.Anything).Return(3, nil).Once()
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Return(entities.ErrDuplicateTransaction).Once()
				m.inventory.EXPECT().Restore(mock.Anything, productA, "M", 2).Return(nil).Once()
				m.orders.EXPECT().OrderByTransaction(mock.Anything, "mrc-1001").
					Return(entities.Order{
						OrderNumber: "ORD-20260829-002",
						Status:      entities.StatusPending,
					}, nil).Once()
			},
			wantStatus: entities.StatusPending,
		},
		{
			name: "order number conflict retries with a fresh sequence",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.Items = in.Items[:1]
				return in
			},
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByTransaction(mock.Anything, "mrc-1001").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.products.EXPECT().ProductByID(mock.Anything, productA).
					Return(sellableProduct(productA, "M", 10), nil).Once()
				m.inventory.EXPECT().Reserve(mock.Anything, productA, "M", 2).Return(nil).Once()
				m.sequences.EXPECT().Next(mock.Anything, mock.Anything).Return(4, nil).Once()
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).
					Return(entities.ErrOrderNumberConflict).Once()
				m.sequences.EXPECT().Next(mock.Anything, mock.Anything).Return(5, nil).Once()
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantStatus: entities.StatusPending,
		},
		{
			name: "empty items rejected",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.Items = nil
				return in
			},
			mockBehavior: func(m orderMocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name: "final amount must add up",
			input: func() service.CreateOrderInput {
				in := validInput()
				in.FinalAmount = 1
				return in
			},
			mockBehavior: func(m orderMocks) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:  "persist failure rolls back all reservations",
			input: validInput,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByTransaction(mock.Anything, "mrc-1001").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
				m.products.EXPECT().ProductByID(mock.Anything, productA).
					Return(sellableProduct(productA, "M", 10), nil).Once()
				m.products.EXPECT().ProductByID(mock.Anything, productB).
					Return(sellableProduct(productB, "L", 5), nil).Once()
				m.inventory.EXPECT().Reserve(mock.Anything, productA, "M", 2).Return(nil).Once()
				m.inventory.EXPECT().Reserve(mock.Anything, productB, "L", 1).Return(nil).Once()
				m.sequences.EXPECT().Next(mock.Anything, mock.Anything).Return(1, nil).Once()
				m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(dbError).Once()
				m.inventory.EXPECT().Restore(mock.Anything, productA, "M", 2).Return(nil).Once()
				m.inventory.EXPECT().Restore(mock.Anything, productB, "L", 1).Return(nil).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderMocks(t)
			tc.mockBehavior(m)

			svc := m.newService()
			order, err := svc.CreateOrder(context.Background(), tc.input())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, order.Status)
			assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
		})
	}
}

func TestOrderService_CreateOrder_ClearsCart(t *testing.T) {
	m := newOrderMocks(t)

	in := validInput()
	in.Items = in.Items[:1]
	in.ClearCart = true

	m.orders.EXPECT().OrderByTransaction(mock.Anything, "mrc-1001").
		Return(entities.Order{}, entities.ErrOrderNotFound).Once()
	m.products.EXPECT().ProductByID(mock.Anything, productA).
		Return(sellableProduct(productA, "M", 10), nil).Once()
	m.inventory.EXPECT().Reserve(mock.Anything, productA, "M", 2).Return(nil).Once()
	m.sequences.EXPECT().Next(mock.Anything, mock.Anything).Return(1, nil).Once()
	m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()
	m.carts.EXPECT().ClearCart(mock.Anything, "user-1").Return(nil).Once()

	svc := m.newService()
	_, err := svc.CreateOrder(context.Background(), in)
	require.NoError(t, err)
}

// Reservations and restores bypass the product service, so cached stock
// would go stale without an explicit invalidation on every stock move.
func TestOrderService_StockMovesDropCachedProducts(t *testing.T) {
	t.Run("checkout drops every reserved product", func(t *testing.T) {
		m := newOrderMocks(t)
		m.orders.EXPECT().OrderByTransaction(mock.Anything, "mrc-1001").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()
		m.products.EXPECT().ProductByID(mock.Anything, productA).
			Return(sellableProduct(productA, "M", 10), nil).Once()
		m.products.EXPECT().ProductByID(mock.Anything, productB).
			Return(sellableProduct(productB, "L", 5), nil).Once()
		m.inventory.EXPECT().Reserve(mock.Anything, productA, "M", 2).Return(nil).Once()
		m.inventory.EXPECT().Reserve(mock.Anything, productB, "L", 1).Return(nil).Once()
		m.sequences.EXPECT().Next(mock.Anything, mock.Anything).Return(1, nil).Once()
		m.orders.EXPECT().SaveOrder(mock.Anything, mock.Anything).Return(nil).Once()

		svc := m.newService()
		_, err := svc.CreateOrder(context.Background(), validInput())
		require.NoError(t, err)

		m.products.AssertCalled(t, "Invalidate", productA)
		m.products.AssertCalled(t, "Invalidate", productB)
	})

	t.Run("rolled back reservation is dropped again", func(t *testing.T) {
		m := newOrderMocks(t)
		m.orders.EXPECT().OrderByTransaction(mock.Anything, "mrc-1001").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()
		m.products.EXPECT().ProductByID(mock.Anything, productA).
			Return(sellableProduct(productA, "M", 10), nil).Once()
		m.products.EXPECT().ProductByID(mock.Anything, productB).
			Return(sellableProduct(productB, "L", 0), nil).Once()
		m.inventory.EXPECT().Reserve(mock.Anything, productA, "M", 2).Return(nil).Once()
		m.inventory.EXPECT().Reserve(mock.Anything, productB, "L", 1).
			Return(entities.ErrInsufficientStock).Once()
		m.inventory.EXPECT().Restore(mock.Anything, productA, "M", 2).Return(nil).Once()

		svc := m.newService()
		_, err := svc.CreateOrder(context.Background(), validInput())
		assert.ErrorIs(t, err, entities.ErrInsufficientStock)

		m.products.AssertNumberOfCalls(t, "Invalidate", 2)
		m.products.AssertCalled(t, "Invalidate", productA)
	})

	t.Run("cancellation drops restored products", func(t *testing.T) {
		orderID := uuid.New()
		paid := entities.Order{
			ID:     orderID,
			Status: entities.StatusPaid,
			Items:  []entities.OrderItem{{ProductID: productA, Size: "M", Quantity: 2}},
		}
		cancelled := paid
		cancelled.Status = entities.StatusCancelled

		m := newOrderMocks(t)
		m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(paid, nil).Once()
		m.orders.EXPECT().CancelOrder(mock.Anything, orderID, mock.Anything).Return(true, nil).Once()
		m.inventory.EXPECT().Restore(mock.Anything, productA, "M", 2).Return(nil).Once()
		m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(cancelled, nil).Once()

		svc := m.newService()
		_, err := svc.Cancel(context.Background(), orderID)
		require.NoError(t, err)

		m.products.AssertCalled(t, "Invalidate", productA)
	})
}

func TestOrderService_Cancel(t *testing.T) {
	orderID := uuid.New()

	paidOrder := entities.Order{
		ID:          orderID,
		OrderNumber: "ORD-20260829-001",
		Status:      entities.StatusPaid,
		Items: []entities.OrderItem{
			{ProductID: productA, Size: "M", Quantity: 2},
		},
	}
	cancelledOrder := paidOrder
	cancelledOrder.Status = entities.StatusCancelled

	testCases := []struct {
		name         string
		mockBehavior func(m orderMocks)
		wantErr      error
	}{
		{
			name: "cancel restores stock",
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(paidOrder, nil).Once()
				m.orders.EXPECT().CancelOrder(mock.Anything, orderID, mock.Anything).Return(true, nil).Once()
				m.inventory.EXPECT().Restore(mock.Anything, productA, "M", 2).Return(nil).Once()
				m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(cancelledOrder, nil).Once()
			},
		},
		{
			name: "already cancelled does not restore again",
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(cancelledOrder, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name: "delivered orders cannot be cancelled",
			mockBehavior: func(m orderMocks) {
				delivered := paidOrder
				delivered.Status = entities.StatusDelivered
				m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(delivered, nil).Once()
			},
			wantErr: entities.ErrOrderDelivered,
		},
		{
			name: "lost cancellation race does not restore",
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(paidOrder, nil).Once()
				m.orders.EXPECT().CancelOrder(mock.Anything, orderID, mock.Anything).Return(false, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderMocks(t)
			tc.mockBehavior(m)

			svc := m.newService()
			order, err := svc.Cancel(context.Background(), orderID)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusCancelled, order.Status)
		})
	}
}

func TestOrderService_TransitionStatus(t *testing.T) {
	orderID := uuid.New()

	pendingOrder := entities.Order{ID: orderID, Status: entities.StatusPending}
	paidOrder := entities.Order{ID: orderID, Status: entities.StatusPaid}

	testCases := []struct {
		name         string
		target       entities.Status
		mockBehavior func(m orderMocks)
		wantErr      error
		wantStatus   entities.Status
	}{
		{
			name:   "pending to paid stamps payment",
			target: entities.StatusPaid,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(pendingOrder, nil).Once()
				m.orders.EXPECT().
					UpdateStatus(mock.Anything, orderID, entities.StatusPending, entities.StatusPaid).
					Return(true, nil).Once()
				m.orders.EXPECT().MarkPaid(mock.Anything, orderID, mock.Anything).Return(nil).Once()
				m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(paidOrder, nil).Once()
			},
			wantStatus: entities.StatusPaid,
		},
		{
			name:   "pending cannot skip to shipping",
			target: entities.StatusShipping,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(pendingOrder, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:         "unknown status rejected",
			target:       entities.Status("lost"),
			mockBehavior: func(m orderMocks) {},
			wantErr:      entities.ErrInvalidTransition,
		},
		{
			name:   "concurrent transition loses the conditional write",
			target: entities.StatusPaid,
			mockBehavior: func(m orderMocks) {
				m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(pendingOrder, nil).Once()
				m.orders.EXPECT().
					UpdateStatus(mock.Anything, orderID, entities.StatusPending, entities.StatusPaid).
					Return(false, nil).Once()
			},
			wantErr: entities.ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newOrderMocks(t)
			tc.mockBehavior(m)

			svc := m.newService()
			order, err := svc.TransitionStatus(context.Background(), orderID, tc.target)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, order.Status)
		})
	}
}

func TestOrderService_Refund(t *testing.T) {
	orderID := uuid.New()

	paidOrder := entities.Order{
		ID:     orderID,
		Status: entities.StatusPaid,
		Items: []entities.OrderItem{
			{ProductID: productA, Size: "M", Quantity: 2},
		},
		Payment: entities.Payment{ItemsTotal: 90000},
	}
	refundedOrder := paidOrder
	refundedOrder.Status = entities.StatusRefunded

	t.Run("refund defaults to items total and keeps stock", func(t *testing.T) {
		m := newOrderMocks(t)
		m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(paidOrder, nil).Once()
		m.orders.EXPECT().
			RefundOrder(mock.Anything, orderID, entities.StatusPaid, 90000, mock.Anything).
			Return(true, nil).Once()
		m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(refundedOrder, nil).Once()

		svc := m.newService()
		order, err := svc.Refund(context.Background(), orderID, 0)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusRefunded, order.Status)
	})

	t.Run("delivered orders are refundable and keep stock", func(t *testing.T) {
		m := newOrderMocks(t)
		delivered := paidOrder
		delivered.Status = entities.StatusDelivered
		refunded := delivered
		refunded.Status = entities.StatusRefunded
		refunded.RefundAmount = 90000

		m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(delivered, nil).Once()
		m.orders.EXPECT().
			RefundOrder(mock.Anything, orderID, entities.StatusDelivered, 90000, mock.Anything).
			Return(true, nil).Once()
		m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(refunded, nil).Once()

		svc := m.newService()
		order, err := svc.Refund(context.Background(), orderID, 0)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusRefunded, order.Status)
		assert.Equal(t, 90000, order.RefundAmount)
	})

	t.Run("pending orders are not refundable", func(t *testing.T) {
		m := newOrderMocks(t)
		pending := paidOrder
		pending.Status = entities.StatusPending
		m.orders.EXPECT().OrderByID(mock.Anything, orderID).Return(pending, nil).Once()

		svc := m.newService()
		_, err := svc.Refund(context.Background(), orderID, 0)
		assert.ErrorIs(t, err, entities.ErrInvalidTransition)
	})
}

func TestOrderService_OrderByID_Retries(t *testing.T) {
	orderID := uuid.New()
	want := entities.Order{ID: orderID, OrderNumber: "ORD-20260829-001"}

	m := newOrderMocks(t)
	m.orders.EXPECT().OrderByID(mock.Anything, orderID).
		Return(entities.Order{}, errors.New("connection reset")).Once()
	m.orders.EXPECT().OrderByID(mock.Anything, orderID).
		Return(want, nil).Once()

	svc := m.newService()
	got, err := svc.OrderByID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOrderService_OrderByID_NotFoundIsPermanent(t *testing.T) {
	orderID := uuid.New()

	m := newOrderMocks(t)
	m.orders.EXPECT().OrderByID(mock.Anything, orderID).
		Return(entities.Order{}, entities.ErrOrderNotFound).Once()

	svc := m.newService()
	_, err := svc.OrderByID(context.Background(), orderID)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}
