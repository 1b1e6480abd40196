package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
	"github.com/hyeonwoo-dev/atelier-shop/internal/events"
	"github.com/hyeonwoo-dev/atelier-shop/pkg/trm"
	"github.com/hyeonwoo-dev/atelier-shop/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	OrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	OrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	OrderByTransaction(ctx context.Context, transactionID string) (entities.Order, error)
	OrdersByUser(ctx context.Context, userID string, f entities.UserOrdersFilter) ([]entities.Order, error)
	Orders(ctx context.Context, f entities.OrdersFilter) ([]entities.Order, int, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to entities.Status) (bool, error)
	MarkPaid(ctx context.Context, orderID uuid.UUID, at time.Time) error
	MarkShipped(ctx context.Context, orderID uuid.UUID, at time.Time) error
	MarkDelivered(ctx context.Context, orderID uuid.UUID, at time.Time) error
	CancelOrder(ctx context.Context, orderID uuid.UUID, at time.Time) (bool, error)
	RefundOrder(ctx context.Context, orderID uuid.UUID, from entities.Status, amount int, at time.Time) (bool, error)
}

// InventoryLedger is the only path that mutates stock counters. Reserve is
// atomic per (product, size): check and decrement are indivisible.
type InventoryLedger interface {
	Reserve(ctx context.Context, productID uuid.UUID, size string, quantity int) error
	Restore(ctx context.Context, productID uuid.UUID, size string, quantity int) error
}

type SequenceGenerator interface {
	Next(ctx context.Context, day time.Time) (int, error)
}

type ProductGetter interface {
	ProductByID(ctx context.Context, productID uuid.UUID) (entities.Product, error)
	// Invalidate drops any cached snapshot of the product so stock moved by
	// the inventory ledger shows up on the next read.
	Invalidate(productID uuid.UUID)
}

type CartClearer interface {
	ClearCart(ctx context.Context, userID string) error
}

type PaymentVerifier interface {
	Verify(ctx context.Context, paymentUID string) (entities.PaymentVerification, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event events.OrderEvent) error
}

type CreateOrderInput struct {
	UserID   string
	Customer entities.Customer
	Shipping entities.Shipping
	Items    []entities.OrderItem

	ItemsTotal  int
	ShippingFee int
	FinalAmount int
	Method      entities.PaymentMethod

	// PaymentUID is the gateway-issued payment id; when present the payment
	// is verified synchronously before any order is created.
	PaymentUID string
	// MerchantUID is the merchant-issued transaction id used as the
	// idempotency key when no gateway id exists.
	MerchantUID string

	ClearCart bool
}

// transactionID is the idempotency key: the gateway id when present,
// otherwise the merchant id.
func (in CreateOrderInput) transactionID() string {
	if in.PaymentUID != "" {
		return in.PaymentUID
	}
	return in.MerchantUID
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	inventory InventoryLedger
	sequences SequenceGenerator
	products  ProductGetter
	carts     CartClearer
	verifier  PaymentVerifier
	publisher EventPublisher
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	inventory InventoryLedger,
	sequences SequenceGenerator,
	products ProductGetter,
	carts CartClearer,
	verifier PaymentVerifier,
	publisher EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		inventory: inventory,
		sequences: sequences,
		products:  products,
		carts:     carts,
		verifier:  verifier,
		publisher: publisher,
	}
}

// CreateOrder runs the whole checkout: validate, collapse duplicates, verify
// payment, reserve stock per line, allocate an order number, persist the
// aggregate, then clear the cart and publish an event best-effort. Any
// failure before the aggregate is persisted leaves no order and no net
// inventory change.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if err := validateCreateOrder(in); err != nil {
		return entities.Order{}, err
	}

	if txID := in.transactionID(); txID != "" {
		existing, err := s.orders.OrderByTransaction(ctx, txID)
		if err == nil {
			s.logger.InfoContext(ctx, "duplicate transaction collapsed",
				slog.String("transaction_id", txID),
				slog.String("order_number", existing.OrderNumber))
			return existing, nil
		}
		if !errors.Is(err, entities.ErrOrderNotFound) {
			return entities.Order{}, fmt.Errorf("failed idempotency check: %w", err)
		}
	}

	now := time.Now().UTC()
	verified := false
	var paidAt *time.Time

	if in.PaymentUID != "" {
		verification, err := s.verifier.Verify(ctx, in.PaymentUID)
		if err != nil {
			return entities.Order{}, fmt.Errorf("payment verification failed: %w", err)
		}
		if verification.Amount != in.FinalAmount || !verification.Completed() {
			s.logger.WarnContext(ctx, "payment mismatch",
				slog.String("payment_uid", in.PaymentUID),
				slog.Int("declared", in.FinalAmount),
				slog.Int("verified", verification.Amount),
				slog.String("gateway_status", verification.Status))
			return entities.Order{}, entities.ErrPaymentMismatch
		}
		verified = true
		t := verification.PaidAt
		paidAt = &t
	}

	if err := s.reserveItems(ctx, in.Items); err != nil {
		return entities.Order{}, err
	}

	order, err := s.persistOrder(ctx, in, now, verified, paidAt)
	if err != nil {
		s.rollbackReservations(ctx, in.Items, len(in.Items))
		if errors.Is(err, entities.ErrDuplicateTransaction) {
			// Lost the insert race to a concurrent retry carrying the same
			// transaction id. Our reservations are rolled back; the winner's
			// order is the result.
			return s.orders.OrderByTransaction(ctx, in.transactionID())
		}
		return entities.Order{}, err
	}

	if in.ClearCart {
		if err := s.carts.ClearCart(ctx, in.UserID); err != nil {
			s.logger.WarnContext(ctx, "failed to clear cart after checkout",
				slog.String("user_id", in.UserID),
				slog.String("order_number", order.OrderNumber),
				slog.Any("error", err))
		}
	}

	s.publish(ctx, events.NewOrderEvent(events.OrderCreated, order))

	s.logger.InfoContext(ctx, "order created",
		slog.String("order_number", order.OrderNumber),
		slog.String("user_id", order.UserID),
		slog.String("status", string(order.Status)))
	return order, nil
}

func validateCreateOrder(in CreateOrderInput) error {
	if in.UserID == "" {
		return fmt.Errorf("%w: missing user id", entities.ErrInvalidOrder)
	}
	if in.Customer.Name == "" || in.Customer.Email == "" || in.Customer.Phone == "" {
		return fmt.Errorf("%w: incomplete customer", entities.ErrInvalidOrder)
	}
	if in.Shipping.Recipient == "" || in.Shipping.Phone == "" ||
		in.Shipping.PostalCode == "" || in.Shipping.MainAddress == "" {
		return fmt.Errorf("%w: incomplete shipping", entities.ErrInvalidOrder)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: empty items", entities.ErrInvalidOrder)
	}
	for _, it := range in.Items {
		if it.ProductID == uuid.Nil || it.Size == "" || it.Quantity < 1 {
			return fmt.Errorf("%w: malformed line item", entities.ErrInvalidOrder)
		}
	}
	if !in.Method.Valid() {
		return fmt.Errorf("%w: unknown payment method", entities.ErrInvalidOrder)
	}
	if in.ItemsTotal < 0 || in.ShippingFee < 0 {
		return fmt.Errorf("%w: negative amount", entities.ErrInvalidOrder)
	}
	if in.FinalAmount != in.ItemsTotal+in.ShippingFee {
		return fmt.Errorf("%w: final amount must equal items total plus shipping fee", entities.ErrInvalidOrder)
	}
	return nil
}

// reserveItems reserves every line; the first failure rolls back all
// reservations made so far, so no partial order ever holds stock.
func (s *orderService) reserveItems(ctx context.Context, items []entities.OrderItem) error {
	for i, it := range items {
		product, err := s.products.ProductByID(ctx, it.ProductID)
		if err != nil {
			s.rollbackReservations(ctx, items, i)
			return err
		}
		if !product.IsActive {
			s.rollbackReservations(ctx, items, i)
			return fmt.Errorf("%w: %s", entities.ErrProductNotSellable, product.Name)
		}
		if !product.HasSize(it.Size) {
			s.rollbackReservations(ctx, items, i)
			return fmt.Errorf("%w: %s (%s)", entities.ErrSizeNotFound, product.Name, it.Size)
		}
		if err := s.inventory.Reserve(ctx, it.ProductID, it.Size, it.Quantity); err != nil {
			s.rollbackReservations(ctx, items, i)
			return err
		}
		s.products.Invalidate(it.ProductID)
	}
	return nil
}

func (s *orderService) rollbackReservations(ctx context.Context, items []entities.OrderItem, reserved int) {
	for _, it := range items[:reserved] {
		if err := s.inventory.Restore(ctx, it.ProductID, it.Size, it.Quantity); err != nil {
			s.logger.ErrorContext(ctx, "failed to roll back reservation",
				slog.String("product_id", it.ProductID.String()),
				slog.String("size", it.Size),
				slog.Int("quantity", it.Quantity),
				slog.Any("error", err))
			continue
		}
		s.products.Invalidate(it.ProductID)
	}
}

const orderNumberAttempts = 3

// persistOrder allocates a number and writes the aggregate in one
// transaction. An order number collision means another writer won the same
// sequence slot through the unique-constraint safety net; reallocating and
// retrying resolves it.
func (s *orderService) persistOrder(ctx context.Context, in CreateOrderInput, now time.Time, verified bool, paidAt *time.Time) (entities.Order, error) {
	status := entities.StatusPending
	paymentStatus := entities.PaymentPending
	if verified {
		status = entities.StatusPaid
		paymentStatus = entities.PaymentCompleted
	}

	var lastErr error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		seq, err := s.sequences.Next(ctx, now)
		if err != nil {
			return entities.Order{}, fmt.Errorf("failed to allocate order number: %w", err)
		}

		order := entities.Order{
			ID:          uuid.New(),
			OrderNumber: entities.FormatOrderNumber(now, seq),
			UserID:      in.UserID,
			Status:      status,
			Customer:    in.Customer,
			Shipping:    in.Shipping,
			Items:       in.Items,
			Payment: entities.Payment{
				ItemsTotal:    in.ItemsTotal,
				ShippingFee:   in.ShippingFee,
				FinalAmount:   in.FinalAmount,
				Method:        in.Method,
				Status:        paymentStatus,
				PaidAt:        paidAt,
				TransactionID: in.transactionID(),
			},
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.orders.SaveOrder(ctx, order)
		})
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, entities.ErrOrderNumberConflict) {
			return entities.Order{}, err
		}
		lastErr = err
	}
	return entities.Order{}, fmt.Errorf("failed to persist order: %w", lastErr)
}

// TransitionStatus applies one step of the order state machine. Cancellation
// and refund route through their dedicated paths so their side effects
// always fire.
func (s *orderService) TransitionStatus(ctx context.Context, orderID uuid.UUID, target entities.Status) (entities.Order, error) {
	if !target.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidTransition, target)
	}
	if target == entities.StatusCancelled {
		return s.Cancel(ctx, orderID)
	}
	if target == entities.StatusRefunded {
		return s.Refund(ctx, orderID, 0)
	}

	order, err := s.orders.OrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.Status.CanTransition(target) {
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, target)
	}

	now := time.Now().UTC()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		ok, err := s.orders.UpdateStatus(ctx, orderID, order.Status, target)
		if err != nil {
			return err
		}
		if !ok {
			// The order moved under us, typically into a terminal state.
			return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, target)
		}

		switch target {
		case entities.StatusPaid:
			return s.orders.MarkPaid(ctx, orderID, now)
		case entities.StatusShipping:
			return s.orders.MarkShipped(ctx, orderID, now)
		case entities.StatusDelivered:
			return s.orders.MarkDelivered(ctx, orderID, now)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	updated, err := s.orders.OrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	s.publish(ctx, events.NewOrderEvent(events.OrderStatusChanged, updated))
	return updated, nil
}

// Cancel transitions the order to cancelled and restores stock for every
// line exactly once. The conditional status write is the restock guard: only
// the call that flips the row restores.
func (s *orderService) Cancel(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	order, err := s.orders.OrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Status == entities.StatusDelivered {
		return entities.Order{}, entities.ErrOrderDelivered
	}
	if order.Status.Terminal() {
		return entities.Order{}, fmt.Errorf("%w: order is already %s", entities.ErrInvalidTransition, order.Status)
	}

	now := time.Now().UTC()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		ok, err := s.orders.CancelOrder(ctx, orderID, now)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: order is no longer cancellable", entities.ErrInvalidTransition)
		}
		for _, it := range order.Items {
			if err := s.inventory.Restore(ctx, it.ProductID, it.Size, it.Quantity); err != nil {
				return fmt.Errorf("failed to restore stock: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	for _, it := range order.Items {
		s.products.Invalidate(it.ProductID)
	}

	cancelled, err := s.orders.OrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	s.publish(ctx, events.NewOrderEvent(events.OrderCancelled, cancelled))

	s.logger.InfoContext(ctx, "order cancelled",
		slog.String("order_number", cancelled.OrderNumber))
	return cancelled, nil
}

// Refund marks an order refunded. It does not restore inventory; restocking
// is tied to cancellation only.
func (s *orderService) Refund(ctx context.Context, orderID uuid.UUID, amount int) (entities.Order, error) {
	order, err := s.orders.OrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.Status.CanTransition(entities.StatusRefunded) {
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", entities.ErrInvalidTransition, order.Status, entities.StatusRefunded)
	}
	if amount <= 0 {
		amount = order.Payment.ItemsTotal
	}

	ok, err := s.orders.RefundOrder(ctx, orderID, order.Status, amount, time.Now().UTC())
	if err != nil {
		return entities.Order{}, err
	}
	if !ok {
		return entities.Order{}, fmt.Errorf("%w: order is no longer refundable", entities.ErrInvalidTransition)
	}

	refunded, err := s.orders.OrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	s.publish(ctx, events.NewOrderEvent(events.OrderRefunded, refunded))
	return refunded, nil
}

func (s *orderService) OrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.OrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(readRetryConfig, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) OrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.OrderByNumber(ctx, orderNumber)
		return err
	}
	if err := utils.Retry(readRetryConfig, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) UserOrders(ctx context.Context, userID string, f entities.UserOrdersFilter) ([]entities.Order, error) {
	return s.orders.OrdersByUser(ctx, userID, f)
}

func (s *orderService) Orders(ctx context.Context, f entities.OrdersFilter) ([]entities.Order, int, error) {
	return s.orders.Orders(ctx, f)
}

func (s *orderService) publish(ctx context.Context, event events.OrderEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish order event",
			slog.String("type", event.Type),
			slog.String("order_number", event.OrderNumber),
			slog.Any("error", err))
	}
}

var readRetryConfig = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}
