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
)

type CartRepo struct {
	store
}

func NewCartRepo(db *sqlx.DB) *CartRepo {
	return &CartRepo{store: newStore(db)}
}

func (r *CartRepo) ActiveCart(ctx context.Context, userID string) (entities.Cart, error) {
	query, args := r.qb.Select("id", "user_id", "status", "created_at", "updated_at").
		From("carts").
		Where(sq.Eq{"user_id": userID, "status": string(entities.CartActive)}).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	query, args = r.qb.Select("cart_id", "product_id", "size", "quantity").
		From("cart_items").
		Where(sq.Eq{"cart_id": cart.ID}).
		OrderBy("product_id", "size").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart items: %w", err)
	}

	return CartToEntity(cart, items), nil
}

// EnsureActiveCart returns the customer's active cart, creating an empty one
// when none exists. The partial unique index on (user_id) keeps concurrent
// creations down to a single row.
func (r *CartRepo) EnsureActiveCart(ctx context.Context, userID string) (entities.Cart, error) {
	now := time.Now().UTC()
	const query = `
		INSERT INTO carts (id, user_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id) WHERE status = 'active' DO NOTHING`

	if _, err := r.execContext(ctx, query, uuid.New(), userID, string(entities.CartActive), now); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to ensure cart: %w", err)
	}

	return r.ActiveCart(ctx, userID)
}

// UpsertItem adds a line or, when the (product, size) pair is already in the
// cart, increments its quantity.
func (r *CartRepo) UpsertItem(ctx context.Context, cartID uuid.UUID, item entities.CartItem) error {
	const query = `
		INSERT INTO cart_items (cart_id, product_id, size, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (cart_id, product_id, size)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`

	if _, err := r.execContext(ctx, query, cartID, item.ProductID, item.Size, item.Quantity); err != nil {
		return fmt.Errorf("failed to upsert cart item: %w", err)
	}
	return r.touch(ctx, cartID)
}

func (r *CartRepo) SetItemQuantity(ctx context.Context, cartID uuid.UUID, productID uuid.UUID, size string, quantity int) error {
	query, args := r.qb.Update("cart_items").
		Set("quantity", quantity).
		Where(sq.Eq{"cart_id": cartID, "product_id": productID, "size": size}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrCartItemNotFound
	}
	return r.touch(ctx, cartID)
}

func (r *CartRepo) RemoveItem(ctx context.Context, cartID uuid.UUID, productID uuid.UUID, size string) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID, "product_id": productID, "size": size}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrCartItemNotFound
	}
	return r.touch(ctx, cartID)
}

// ClearCart empties the active cart's items; the cart row itself stays
// active so the next browse starts from an empty cart, not a missing one.
func (r *CartRepo) ClearCart(ctx context.Context, userID string) error {
	const query = `
		DELETE FROM cart_items WHERE cart_id =
			(SELECT id FROM carts WHERE user_id = $1 AND status = $2)`

	if _, err := r.execContext(ctx, query, userID, string(entities.CartActive)); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	updateQ, args := r.qb.Update("carts").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"user_id": userID, "status": string(entities.CartActive)}).
		MustSql()

	if _, err := r.execContext(ctx, updateQ, args...); err != nil {
		return fmt.Errorf("failed to touch cart: %w", err)
	}
	return nil
}

func (r *CartRepo) touch(ctx context.Context, cartID uuid.UUID) error {
	query, args := r.qb.Update("carts").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to touch cart: %w", err)
	}
	return nil
}
