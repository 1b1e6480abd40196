package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"

	"github.com/google/uuid"
)

type CartRepo interface {
	ActiveCart(ctx context.Context, userID string) (entities.Cart, error)
	EnsureActiveCart(ctx context.Context, userID string) (entities.Cart, error)
	UpsertItem(ctx context.Context, cartID uuid.UUID, item entities.CartItem) error
	SetItemQuantity(ctx context.Context, cartID uuid.UUID, productID uuid.UUID, size string, quantity int) error
	RemoveItem(ctx context.Context, cartID uuid.UUID, productID uuid.UUID, size string) error
	ClearCart(ctx context.Context, userID string) error
}

type cartService struct {
	logger   *slog.Logger
	carts    CartRepo
	products ProductGetter
}

func NewCartService(logger *slog.Logger, carts CartRepo, products ProductGetter) *cartService {
	return &cartService{
		logger:   logger.With(slog.String("service", "cart")),
		carts:    carts,
		products: products,
	}
}

// Cart returns the customer's active cart joined with product snapshots.
// A customer without a cart gets an empty view, not an error.
func (s *cartService) Cart(ctx context.Context, userID string) (entities.CartView, error) {
	cart, err := s.carts.ActiveCart(ctx, userID)
	if errors.Is(err, entities.ErrCartNotFound) {
		return entities.CartView{UserID: userID, Lines: []entities.CartLine{}}, nil
	}
	if err != nil {
		return entities.CartView{}, err
	}

	view := entities.CartView{
		UserID:    userID,
		Lines:     make([]entities.CartLine, 0, len(cart.Items)),
		UpdatedAt: cart.UpdatedAt,
	}

	for _, it := range cart.Items {
		line := entities.CartLine{CartItem: it}

		product, err := s.products.ProductByID(ctx, it.ProductID)
		switch {
		case errors.Is(err, entities.ErrProductNotFound):
			// Product removed since it was added; keep the line visible so
			// the customer can drop it themselves.
		case err != nil:
			return entities.CartView{}, err
		default:
			line.ProductName = product.Name
			line.UnitPrice = product.Price
			line.Sellable = product.IsActive
		}

		view.Lines = append(view.Lines, line)
		view.TotalItems += it.Quantity
		view.ItemsTotal += line.LineTotal()
	}

	return view, nil
}

// AddItem validates the selection against the catalog, then adds it to the
// active cart, creating the cart on first use. An existing (product, size)
// pair has its quantity incremented instead of gaining a duplicate line.
func (s *cartService) AddItem(ctx context.Context, userID string, item entities.CartItem) (entities.Cart, error) {
	if item.ProductID == uuid.Nil || item.Size == "" || item.Quantity < 1 {
		return entities.Cart{}, fmt.Errorf("%w: malformed cart item", entities.ErrInvalidOrder)
	}

	product, err := s.products.ProductByID(ctx, item.ProductID)
	if err != nil {
		return entities.Cart{}, err
	}
	if !product.IsActive {
		return entities.Cart{}, fmt.Errorf("%w: %s", entities.ErrProductNotSellable, product.Name)
	}
	if !product.HasSize(item.Size) {
		return entities.Cart{}, fmt.Errorf("%w: %s (%s)", entities.ErrSizeNotFound, product.Name, item.Size)
	}

	cart, err := s.carts.EnsureActiveCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	if err := s.carts.UpsertItem(ctx, cart.ID, item); err != nil {
		return entities.Cart{}, err
	}

	return s.carts.ActiveCart(ctx, userID)
}

// UpdateQuantity sets an exact quantity; zero or less removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, userID string, productID uuid.UUID, size string, quantity int) (entities.Cart, error) {
	cart, err := s.carts.ActiveCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}

	if quantity <= 0 {
		err = s.carts.RemoveItem(ctx, cart.ID, productID, size)
	} else {
		err = s.carts.SetItemQuantity(ctx, cart.ID, productID, size, quantity)
	}
	if err != nil {
		return entities.Cart{}, err
	}

	return s.carts.ActiveCart(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID string, productID uuid.UUID, size string) (entities.Cart, error) {
	cart, err := s.carts.ActiveCart(ctx, userID)
	if err != nil {
		return entities.Cart{}, err
	}
	if err := s.carts.RemoveItem(ctx, cart.ID, productID, size); err != nil {
		return entities.Cart{}, err
	}
	return s.carts.ActiveCart(ctx, userID)
}

func (s *cartService) Clear(ctx context.Context, userID string) error {
	return s.carts.ClearCart(ctx, userID)
}

// Count is the badge number: total quantity across the active cart.
func (s *cartService) Count(ctx context.Context, userID string) (int, error) {
	cart, err := s.carts.ActiveCart(ctx, userID)
	if errors.Is(err, entities.ErrCartNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return cart.TotalItems(), nil
}
