package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
	"github.com/hyeonwoo-dev/atelier-shop/internal/handler"
	mocks "github.com/hyeonwoo-dev/atelier-shop/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderRouter(t *testing.T) (*mocks.MockOrderService, chi.Router) {
	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewOrderHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return svc, r
}

func checkoutBody(t *testing.T) []byte {
	req := handler.CreateOrderRequest{
		UserID: "user-1",
		Customer: handler.Customer{
			Name:  "Kim Jiwoo",
			Email: "jiwoo@example.com",
			Phone: "010-1234-5678",
		},
		Shipping: handler.Shipping{
			Recipient: "Kim Jiwoo",
			Phone:     "010-1234-5678",
			Address: handler.Address{
				PostalCode:  "04524",
				MainAddress: "100 Sejong-daero, Jung-gu, Seoul",
			},
		},
		Items: []handler.OrderItem{
			{ProductID: uuid.NewString(), Size: "M", Quantity: 2},
		},
		Payment: handler.PaymentRequest{
			ItemsTotal:  90000,
			ShippingFee: 3000,
			FinalAmount: 93000,
			Method:      "credit_card",
			ImpUID:      "imp_481728",
			MerchantUID: "mrc-1001",
		},
	}

	body, err := json.Marshal(req)
	require.NoError(t, err)
	return body
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	createdOrder := entities.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-20260829-001",
		UserID:      "user-1",
		Status:      entities.StatusPending,
	}

	testCases := []struct {
		name         string
		body         []byte
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "created",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(createdOrder, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"order_number":"ORD-20260829-001"`,
		},
		{
			name: "payment mismatch",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrPaymentMismatch).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "payment verification mismatch",
		},
		{
			name: "insufficient stock",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrInsufficientStock).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "insufficient stock",
		},
		{
			name: "product not sellable",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrProductNotSellable).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "product is not sellable",
		},
		{
			name: "unknown product",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "product not found",
		},
		{
			name:         "malformed body",
			body:         []byte(`{"user_id":`),
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "invalid request body",
		},
		{
			name: "missing items",
			body: func() []byte {
				var req map[string]any
				require.NoError(t, json.Unmarshal(checkoutBody(t), &req))
				delete(req, "items")
				body, err := json.Marshal(req)
				require.NoError(t, err)
				return body
			}(),
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "Items",
		},
		{
			name: "internal error",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newOrderRouter(t)
			tc.mockBehavior(svc)

			body := tc.body
			if body == nil {
				body = checkoutBody(t)
			}

			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_GetOrderByID(t *testing.T) {
	orderID := uuid.New()
	order := entities.Order{ID: orderID, OrderNumber: "ORD-20260829-017", Status: entities.StatusPaid}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: orderID.String(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					OrderByID(mock.Anything, orderID).
					Return(order, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_number":"ORD-20260829-017"`,
		},
		{
			name:    "not found",
			orderID: orderID.String(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					OrderByID(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "order not found",
		},
		{
			name:         "malformed id",
			orderID:      "not-a-uuid",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "invalid order id",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newOrderRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_GetOrderByNumber(t *testing.T) {
	order := entities.Order{ID: uuid.New(), OrderNumber: "ORD-20260829-042"}

	svc, r := newOrderRouter(t)
	svc.EXPECT().
		OrderByNumber(mock.Anything, "ORD-20260829-042").
		Return(order, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/orders/number/ORD-20260829-042", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"order_number":"ORD-20260829-042"`)
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	orderID := uuid.New()
	paidOrder := entities.Order{ID: orderID, OrderNumber: "ORD-20260829-001", Status: entities.StatusPaid}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "marks order paid",
			body: `{"status":"paid"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					TransitionStatus(mock.Anything, orderID, entities.StatusPaid).
					Return(paidOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"paid"`,
		},
		{
			name:         "unknown status",
			body:         `{"status":"teleported"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "unknown status",
		},
		{
			name: "illegal transition",
			body: `{"status":"shipping"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					TransitionStatus(mock.Anything, orderID, entities.StatusShipping).
					Return(entities.Order{}, entities.ErrInvalidTransition).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "invalid status transition",
		},
		{
			name:         "missing status",
			body:         `{}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "Status",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newOrderRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPut, "/orders/"+orderID.String()+"/status", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	orderID := uuid.New()
	cancelled := entities.Order{ID: orderID, OrderNumber: "ORD-20260829-001", Status: entities.StatusCancelled}

	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "cancelled",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Cancel(mock.Anything, orderID).
					Return(cancelled, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"cancelled"`,
		},
		{
			name: "already delivered",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Cancel(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderDelivered).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "delivered orders cannot be cancelled",
		},
		{
			name: "not found",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					Cancel(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "order not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newOrderRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPut, "/orders/"+orderID.String()+"/cancel", nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_RefundOrder(t *testing.T) {
	orderID := uuid.New()
	refunded := entities.Order{ID: orderID, Status: entities.StatusRefunded, RefundAmount: 93000}

	t.Run("empty body refunds full amount", func(t *testing.T) {
		svc, r := newOrderRouter(t)
		svc.EXPECT().
			Refund(mock.Anything, orderID, 0).
			Return(refunded, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/orders/"+orderID.String()+"/refund", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"refund_amount":93000`)
	})

	t.Run("partial refund", func(t *testing.T) {
		svc, r := newOrderRouter(t)
		partial := refunded
		partial.RefundAmount = 45000
		svc.EXPECT().
			Refund(mock.Anything, orderID, 45000).
			Return(partial, nil).Once()

		req := httptest.NewRequest(http.MethodPut, "/orders/"+orderID.String()+"/refund", bytes.NewBufferString(`{"amount":45000}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"refund_amount":45000`)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, r := newOrderRouter(t)

		req := httptest.NewRequest(http.MethodPut, "/orders/"+orderID.String()+"/refund", bytes.NewBufferString(`{"amount":-100}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "refund amount must not be negative")
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	orders := []entities.Order{
		{ID: uuid.New(), OrderNumber: "ORD-20260829-001"},
		{ID: uuid.New(), OrderNumber: "ORD-20260829-002"},
	}

	t.Run("paginates", func(t *testing.T) {
		svc, r := newOrderRouter(t)
		svc.EXPECT().
			Orders(mock.Anything, entities.OrdersFilter{Status: entities.StatusPending, Page: 2, Limit: 10}).
			Return(orders, 25, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/orders?status=pending&page=2&limit=10", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"total_pages":3`)
		assert.Contains(t, rr.Body.String(), `"total":25`)
	})

	t.Run("rejects bogus status filter", func(t *testing.T) {
		_, r := newOrderRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/orders?status=limbo", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid status filter")
	})
}

func TestOrderHandler_ListUserOrders(t *testing.T) {
	orders := []entities.Order{{ID: uuid.New(), UserID: "user-1", OrderNumber: "ORD-20260829-001"}}

	svc, r := newOrderRouter(t)
	svc.EXPECT().
		UserOrders(mock.Anything, "user-1", entities.UserOrdersFilter{Limit: 20}).
		Return(orders, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/orders/user/user-1", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"user_id":"user-1"`)
}
