package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
	"github.com/hyeonwoo-dev/atelier-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CartService interface {
	Cart(ctx context.Context, userID string) (entities.CartView, error)
	AddItem(ctx context.Context, userID string, item entities.CartItem) (entities.Cart, error)
	UpdateQuantity(ctx context.Context, userID string, productID uuid.UUID, size string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, userID string, productID uuid.UUID, size string) (entities.Cart, error)
	Clear(ctx context.Context, userID string) error
	Count(ctx context.Context, userID string) (int, error)
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CartService
}

func NewCartHandler(logger *slog.Logger, svc CartService) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "carts")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Route("/carts/{user_id}", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Get("/count", h.GetCount)
		r.Post("/", h.AddItem)
		r.Put("/", h.UpdateItem)
		r.Delete("/", h.RemoveItem)
		r.Delete("/clear", h.ClearCart)
	})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	view, err := h.svc.Cart(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get cart", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, CartViewToJSON(view), http.StatusOK)
}

func (h *CartHandler) GetCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	count, err := h.svc.Count(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to count cart items", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, map[string]int{"count": count}, http.StatusOK)
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}
	if item.Quantity < 1 {
		utils.WriteError(w, "quantity must be at least 1", http.StatusBadRequest)
		return
	}

	cart, err := h.svc.AddItem(ctx, userID, item)
	if h.writeCartError(ctx, w, err, userID) {
		return
	}

	utils.WriteJSON(w, map[string]int{"total_items": cart.TotalItems()}, http.StatusCreated)
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	item, ok := h.decodeItem(w, r)
	if !ok {
		return
	}

	cart, err := h.svc.UpdateQuantity(ctx, userID, item.ProductID, item.Size, item.Quantity)
	if h.writeCartError(ctx, w, err, userID) {
		return
	}

	utils.WriteJSON(w, map[string]int{"total_items": cart.TotalItems()}, http.StatusOK)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	productID, err := uuid.Parse(r.URL.Query().Get("product_id"))
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}
	size := r.URL.Query().Get("size")
	if size == "" {
		utils.WriteError(w, "size is required", http.StatusBadRequest)
		return
	}

	cart, err := h.svc.RemoveItem(ctx, userID, productID, size)
	if h.writeCartError(ctx, w, err, userID) {
		return
	}

	utils.WriteJSON(w, map[string]int{"total_items": cart.TotalItems()}, http.StatusOK)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	if err := h.svc.Clear(ctx, userID); err != nil {
		h.logger.ErrorContext(ctx, "failed to clear cart", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) decodeItem(w http.ResponseWriter, r *http.Request) (entities.CartItem, bool) {
	var req CartItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return entities.CartItem{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return entities.CartItem{}, false
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return entities.CartItem{}, false
	}

	return entities.CartItem{
		ProductID: productID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	}, true
}

func (h *CartHandler) writeCartError(ctx context.Context, w http.ResponseWriter, err error, userID string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrSizeNotFound):
		utils.WriteError(w, "size not available", http.StatusBadRequest)
	case errors.Is(err, entities.ErrProductNotSellable):
		utils.WriteError(w, "product is not on sale", http.StatusConflict)
	case errors.Is(err, entities.ErrCartNotFound), errors.Is(err, entities.ErrCartItemNotFound):
		utils.WriteError(w, "cart item not found", http.StatusNotFound)
	default:
		h.logger.ErrorContext(ctx, "cart operation failed", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
	return true
}
