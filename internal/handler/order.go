package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
	"github.com/hyeonwoo-dev/atelier-shop/internal/service"
	"github.com/hyeonwoo-dev/atelier-shop/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	TransitionStatus(ctx context.Context, orderID uuid.UUID, target entities.Status) (entities.Order, error)
	Cancel(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	Refund(ctx context.Context, orderID uuid.UUID, amount int) (entities.Order, error)
	OrderByID(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	OrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	UserOrders(ctx context.Context, userID string, f entities.UserOrdersFilter) ([]entities.Order, error)
	Orders(ctx context.Context, f entities.OrdersFilter) ([]entities.Order, int, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewOrderHandler(logger *slog.Logger, svc OrderService) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "orders")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/number/{order_number}", h.GetOrderByNumber)
		r.Get("/user/{user_id}", h.ListUserOrders)
		r.Route("/{order_id}", func(r chi.Router) {
			r.Get("/", h.GetOrderByID)
			r.Put("/status", h.UpdateStatus)
			r.Put("/cancel", h.CancelOrder)
			r.Put("/refund", h.RefundOrder)
		})
	})
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		checkoutsTotal.WithLabelValues(checkoutInvalid).Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		checkoutsTotal.WithLabelValues(checkoutInvalid).Inc()
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, req.ToInput())
	checkoutDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		checkoutsTotal.WithLabelValues(checkoutCreated).Inc()
		utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
	case errors.Is(err, entities.ErrInvalidOrder):
		checkoutsTotal.WithLabelValues(checkoutInvalid).Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrProductNotFound), errors.Is(err, entities.ErrSizeNotFound):
		checkoutsTotal.WithLabelValues(checkoutInvalid).Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrProductNotSellable):
		checkoutsTotal.WithLabelValues(checkoutInvalid).Inc()
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInsufficientStock):
		checkoutsTotal.WithLabelValues(checkoutInsufficientStock).Inc()
		stockConflictsTotal.Inc()
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrPaymentMismatch):
		checkoutsTotal.WithLabelValues(checkoutPaymentMismatch).Inc()
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		checkoutsTotal.WithLabelValues(checkoutError).Inc()
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err), slog.String("userID", req.UserID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.svc.OrderByID(ctx, orderID)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("orderID", orderID.String()))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderNumber := chi.URLParam(r, "order_number")

	if err := h.validate.Var(orderNumber, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.OrderByNumber(ctx, orderNumber)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("orderNumber", orderNumber))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := chi.URLParam(r, "user_id")

	if err := h.validate.Var(userID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	filter := entities.UserOrdersFilter{
		Status: entities.Status(r.URL.Query().Get("status")),
		Limit:  queryInt(r, "limit", 20),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		utils.WriteError(w, "invalid status filter", http.StatusBadRequest)
		return
	}

	orders, err := h.svc.UserOrders(ctx, userID, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list user orders", slog.Any("error", err), slog.String("userID", userID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	list := make([]Order, 0, len(orders))
	for _, o := range orders {
		list = append(list, OrderEntityToJSON(o))
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := entities.OrdersFilter{
		Status: entities.Status(r.URL.Query().Get("status")),
		Search: r.URL.Query().Get("search"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		utils.WriteError(w, "invalid status filter", http.StatusBadRequest)
		return
	}

	orders, total, err := h.svc.Orders(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	list := make([]Order, 0, len(orders))
	for _, o := range orders {
		list = append(list, OrderEntityToJSON(o))
	}

	utils.WriteJSON(w, OrderList{
		Orders: list,
		Pagination: Pagination{
			CurrentPage: filter.Page,
			TotalPages:  totalPages(total, filter.Limit),
			Total:       total,
			Limit:       filter.Limit,
		},
	}, http.StatusOK)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	target := entities.Status(req.Status)
	if !target.Valid() {
		utils.WriteError(w, "unknown status", http.StatusBadRequest)
		return
	}

	order, err := h.svc.TransitionStatus(ctx, orderID, target)
	if h.writeTransitionError(ctx, w, err, orderID) {
		return
	}

	switch target {
	case entities.StatusCancelled:
		cancellationsTotal.Inc()
	case entities.StatusRefunded:
		refundsTotal.Inc()
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	order, err := h.svc.Cancel(ctx, orderID)
	if h.writeTransitionError(ctx, w, err, orderID) {
		return
	}

	cancellationsTotal.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

func (h *OrderHandler) RefundOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orderID, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req RefundRequest
	if err := utils.DecodeBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Amount < 0 {
		utils.WriteError(w, "refund amount must not be negative", http.StatusBadRequest)
		return
	}

	order, err := h.svc.Refund(ctx, orderID, req.Amount)
	if h.writeTransitionError(ctx, w, err, orderID) {
		return
	}

	refundsTotal.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// writeTransitionError maps lifecycle errors to HTTP responses.
// Reports whether a response was written.
func (h *OrderHandler) writeTransitionError(ctx context.Context, w http.ResponseWriter, err error, orderID uuid.UUID) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderDelivered):
		utils.WriteError(w, "delivered orders cannot be cancelled", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "failed to update order", slog.Any("error", err), slog.String("orderID", orderID.String()))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
	return true
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}
