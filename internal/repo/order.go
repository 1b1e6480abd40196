package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"golang.org/x/sync/errgroup"
)

var orderColumns = []string{
	"id", "order_number", "user_id", "status",
	"customer_name", "customer_email", "customer_phone",
	"created_at", "updated_at", "cancelled_at", "refunded_at", "refund_amount",
}

type OrderRepo struct {
	store
}

func NewOrderRepo(db *sqlx.DB) *OrderRepo {
	return &OrderRepo{store: newStore(db)}
}

// SaveOrder inserts the whole aggregate. Callers wrap it in trm.Do so the
// four inserts land or fail together.
func (r *OrderRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNumber, o.UserID, string(o.Status),
			o.Customer.Name, o.Customer.Email, o.Customer.Phone,
			o.CreatedAt, o.UpdatedAt, nullTime(o.CancelledAt), nullTime(o.RefundedAt), o.RefundAmount,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, "orders_order_number_key") {
			return entities.ErrOrderNumberConflict
		}
		return fmt.Errorf("failed to save order: %w", err)
	}

	query, args = r.qb.Insert("order_shipping").
		Columns("order_id", "recipient", "phone", "postal_code", "main_address",
			"detail_address", "message", "tracking_number", "shipped_at", "delivered_at").
		Values(
			o.ID, o.Shipping.Recipient, o.Shipping.Phone, o.Shipping.PostalCode, o.Shipping.MainAddress,
			nullString(o.Shipping.DetailAddress), nullString(o.Shipping.Message),
			nullString(o.Shipping.TrackingNumber), nullTime(o.Shipping.ShippedAt), nullTime(o.Shipping.DeliveredAt),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save shipping: %w", err)
	}

	query, args = r.qb.Insert("order_payments").
		Columns("order_id", "items_total", "shipping_fee", "final_amount",
			"method", "status", "paid_at", "transaction_id").
		Values(
			o.ID, o.Payment.ItemsTotal, o.Payment.ShippingFee, o.Payment.FinalAmount,
			string(o.Payment.Method), string(o.Payment.Status),
			nullTime(o.Payment.PaidAt), nullString(o.Payment.TransactionID),
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, "order_payments_transaction_id_key") {
			return entities.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to save payment: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("order_id", "line_no", "product_id", "size", "quantity")
	for i, it := range o.Items {
		q = q.Values(o.ID, i+1, it.ProductID, it.Size, it.Quantity)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *OrderRepo) OrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	return r.orderBy(ctx, sq.Eq{"id": orderID})
}

func (r *OrderRepo) OrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	return r.orderBy(ctx, sq.Eq{"order_number": orderNumber})
}

// OrderByTransaction is the idempotency lookup: the order, if any, already
// created for an external payment transaction id.
func (r *OrderRepo) OrderByTransaction(ctx context.Context, transactionID string) (entities.Order, error) {
	query, args := r.qb.Select("order_id").
		From("order_payments").
		Where(sq.Eq{"transaction_id": transactionID}).
		MustSql()

	var orderID uuid.UUID
	err := r.getContext(ctx, &orderID, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to look up transaction: %w", err)
	}

	return r.OrderByID(ctx, orderID)
}

func (r *OrderRepo) orderBy(ctx context.Context, pred sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(pred).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select("order_id", "recipient", "phone", "postal_code", "main_address",
		"detail_address", "message", "tracking_number", "shipped_at", "delivered_at").
		From("order_shipping").
		Where(sq.Eq{"order_id": order.ID}).
		MustSql()

	var shipping Shipping
	if err := r.getContext(ctx, &shipping, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get shipping: %w", err)
	}

	query, args = r.qb.Select("order_id", "items_total", "shipping_fee", "final_amount",
		"method", "status", "paid_at", "transaction_id").
		From("order_payments").
		Where(sq.Eq{"order_id": order.ID}).
		MustSql()

	var payment Payment
	if err := r.getContext(ctx, &payment, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get payment: %w", err)
	}

	query, args = r.qb.Select("order_id", "line_no", "product_id", "size", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("line_no").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, shipping, payment, items), nil
}

// OrdersByUser returns a customer's orders, most recent first.
func (r *OrderRepo) OrdersByUser(ctx context.Context, userID string, f entities.UserOrdersFilter) ([]entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if f.Status != "" {
		q = q.Where(sq.Eq{"status": string(f.Status)})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	return r.assemble(ctx, orders)
}

// Orders is the admin listing: optional status filter, search over order
// number, customer name and email, page-based pagination.
func (r *OrderRepo) Orders(ctx context.Context, f entities.OrdersFilter) ([]entities.Order, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	pred := sq.And{}
	if f.Status != "" {
		pred = append(pred, sq.Eq{"status": string(f.Status)})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		pred = append(pred, sq.Or{
			sq.ILike{"order_number": pattern},
			sq.ILike{"customer_name": pattern},
			sq.ILike{"customer_email": pattern},
		})
	}

	countQ := r.qb.Select("count(*)").From("orders")
	listQ := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(f.Limit)).
		Offset(uint64((f.Page - 1) * f.Limit))

	if len(pred) > 0 {
		countQ = countQ.Where(pred)
		listQ = listQ.Where(pred)
	}

	query, args := countQ.MustSql()
	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query, args = listQ.MustSql()
	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select orders: %w", err)
	}

	result, err := r.assemble(ctx, orders)
	if err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// assemble batches the child records for a page of orders. The three child
// fetches are independent, so they run concurrently.
func (r *OrderRepo) assemble(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]uuid.UUID, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	var (
		shippings []Shipping
		payments  []Payment
		items     []OrderItem
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		query, args := r.qb.Select("order_id", "recipient", "phone", "postal_code", "main_address",
			"detail_address", "message", "tracking_number", "shipped_at", "delivered_at").
			From("order_shipping").
			Where(sq.Eq{"order_id": ids}).
			MustSql()
		if err := r.selectContext(gctx, &shippings, query, args...); err != nil {
			return fmt.Errorf("failed to select shipping: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		query, args := r.qb.Select("order_id", "items_total", "shipping_fee", "final_amount",
			"method", "status", "paid_at", "transaction_id").
			From("order_payments").
			Where(sq.Eq{"order_id": ids}).
			MustSql()
		if err := r.selectContext(gctx, &payments, query, args...); err != nil {
			return fmt.Errorf("failed to select payments: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		query, args := r.qb.Select("order_id", "line_no", "product_id", "size", "quantity").
			From("order_items").
			Where(sq.Eq{"order_id": ids}).
			OrderBy("order_id", "line_no").
			MustSql()
		if err := r.selectContext(gctx, &items, query, args...); err != nil {
			return fmt.Errorf("failed to select items: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	shippingMap := make(map[uuid.UUID]Shipping, len(shippings))
	for _, s := range shippings {
		shippingMap[s.OrderID] = s
	}
	paymentMap := make(map[uuid.UUID]Payment, len(payments))
	for _, p := range payments {
		paymentMap[p.OrderID] = p
	}
	itemsMap := make(map[uuid.UUID][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, shippingMap[o.ID], paymentMap[o.ID], itemsMap[o.ID]))
	}
	return result, nil
}

// UpdateStatus writes the target status only when the row still carries the
// expected one, so a transition lost to a concurrent writer affects nothing.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID uuid.UUID, from, to entities.Status) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(to)).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return affected == 1, nil
}

// MarkPaid completes the payment record, keeping the first paid_at stamp.
func (r *OrderRepo) MarkPaid(ctx context.Context, orderID uuid.UUID, at time.Time) error {
	query, args := r.qb.Update("order_payments").
		Set("status", string(entities.PaymentCompleted)).
		Set("paid_at", sq.Expr("COALESCE(paid_at, ?)", at)).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark paid: %w", err)
	}
	return nil
}

// MarkShipped stamps shipped_at once; later transitions keep the first value.
func (r *OrderRepo) MarkShipped(ctx context.Context, orderID uuid.UUID, at time.Time) error {
	query, args := r.qb.Update("order_shipping").
		Set("shipped_at", sq.Expr("COALESCE(shipped_at, ?)", at)).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark shipped: %w", err)
	}
	return nil
}

func (r *OrderRepo) MarkDelivered(ctx context.Context, orderID uuid.UUID, at time.Time) error {
	query, args := r.qb.Update("order_shipping").
		Set("delivered_at", sq.Expr("COALESCE(delivered_at, ?)", at)).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to mark delivered: %w", err)
	}
	return nil
}

// terminalStatuses are the states no cancellation may leave.
var terminalStatuses = []string{
	string(entities.StatusDelivered),
	string(entities.StatusCancelled),
	string(entities.StatusRefunded),
}

// CancelOrder is the single gate against double cancellation: only the call
// that actually flips the row (affected == 1) may restore inventory.
func (r *OrderRepo) CancelOrder(ctx context.Context, orderID uuid.UUID, at time.Time) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusCancelled)).
		Set("cancelled_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": orderID}).
		Where(sq.NotEq{"status": terminalStatuses}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to cancel order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	query, args = r.qb.Update("order_payments").
		Set("status", string(entities.PaymentCancelled)).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("failed to cancel payment: %w", err)
	}
	return true, nil
}

// RefundOrder flips an order to refunded when it still carries the expected
// status. Inventory is untouched; restocking belongs to cancellation.
func (r *OrderRepo) RefundOrder(ctx context.Context, orderID uuid.UUID, from entities.Status, amount int, at time.Time) (bool, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(entities.StatusRefunded)).
		Set("refunded_at", at).
		Set("refund_amount", amount).
		Set("updated_at", at).
		Where(sq.Eq{"id": orderID, "status": string(from)}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to refund order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	query, args = r.qb.Update("order_payments").
		Set("status", string(entities.PaymentRefunded)).
		Where(sq.Eq{"order_id": orderID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("failed to refund payment: %w", err)
	}
	return true, nil
}
