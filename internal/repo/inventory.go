package repo

import (
	"context"
	"fmt"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// InventoryRepo is the only writer of per-size stock counters.
type InventoryRepo struct {
	store
}

func NewInventoryRepo(db *sqlx.DB) *InventoryRepo {
	return &InventoryRepo{store: newStore(db)}
}

// Reserve decrements stock for one (product, size) as a single conditional
// update. The stock >= quantity predicate makes the check and the decrement
// indivisible, so two concurrent orders can never drive stock negative.
func (r *InventoryRepo) Reserve(ctx context.Context, productID uuid.UUID, size string, quantity int) error {
	query, args := r.qb.Update("product_sizes").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Where(sq.Eq{"product_id": productID, "size": size}).
		Where(sq.GtOrEq{"stock": quantity}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrInsufficientStock
	}
	return nil
}

// Restore puts quantity back. Idempotency against double cancellation is
// guarded by the order status transition, not here.
func (r *InventoryRepo) Restore(ctx context.Context, productID uuid.UUID, size string, quantity int) error {
	query, args := r.qb.Update("product_sizes").
		Set("stock", sq.Expr("stock + ?", quantity)).
		Where(sq.Eq{"product_id": productID, "size": size}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrSizeNotFound
	}
	return nil
}
