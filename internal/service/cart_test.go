package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
	"github.com/hyeonwoo-dev/atelier-shop/internal/service"
	mocks "github.com/hyeonwoo-dev/atelier-shop/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

func newCartService(carts *mocks.MockCartRepo, products *mocks.MockProductGetter) interface {
	Cart(ctx context.Context, userID string) (entities.CartView, error)
	AddItem(ctx context.Context, userID string, item entities.CartItem) (entities.Cart, error)
	UpdateQuantity(ctx context.Context, userID string, productID uuid.UUID, size string, quantity int) (entities.Cart, error)
	Count(ctx context.Context, userID string) (int, error)
} {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewCartService(logger, carts, products)
}

func TestCartService_Cart(t *testing.T) {
	cartID := uuid.New()
	coatID := uuid.New()
	goneID := uuid.New()

	t.Run("joins product snapshots", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductGetter(t)

		carts.EXPECT().ActiveCart(mock.Anything, "user-1").Return(entities.Cart{
			ID:     cartID,
			UserID: "user-1",
			Items: []entities.CartItem{
				{ProductID: coatID, Size: "M", Quantity: 2},
			},
		}, nil).Once()
		products.EXPECT().ProductByID(mock.Anything, coatID).Return(entities.Product{
			ID:       coatID,
			Name:     "wool coat",
			Price:    45000,
			IsActive: true,
		}, nil).Once()

		view, err := newCartService(carts, products).Cart(context.Background(), "user-1")
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.Equal(t, "wool coat", view.Lines[0].ProductName)
		assert.True(t, view.Lines[0].Sellable)
		assert.Equal(t, 2, view.TotalItems)
		assert.Equal(t, 90000, view.ItemsTotal)
	})

	t.Run("no cart yet yields an empty view", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductGetter(t)

		carts.EXPECT().ActiveCart(mock.Anything, "user-1").
			Return(entities.Cart{}, entities.ErrCartNotFound).Once()

		view, err := newCartService(carts, products).Cart(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.Equal(t, 0, view.TotalItems)
	})

	t.Run("removed product keeps the line without a snapshot", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductGetter(t)

		carts.EXPECT().ActiveCart(mock.Anything, "user-1").Return(entities.Cart{
			ID:     cartID,
			UserID: "user-1",
			Items: []entities.CartItem{
				{ProductID: goneID, Size: "S", Quantity: 1},
			},
		}, nil).Once()
		products.EXPECT().ProductByID(mock.Anything, goneID).
			Return(entities.Product{}, entities.ErrProductNotFound).Once()

		view, err := newCartService(carts, products).Cart(context.Background(), "user-1")
		require.NoError(t, err)
		require.Len(t, view.Lines, 1)
		assert.False(t, view.Lines[0].Sellable)
		assert.Equal(t, 0, view.ItemsTotal)
		assert.Equal(t, 1, view.TotalItems)
	})
}

func TestCartService_AddItem(t *testing.T) {
	cartID := uuid.New()
	coatID := uuid.New()

	coat := entities.Product{
		ID:       coatID,
		Name:     "wool coat",
		IsActive: true,
		Sizes:    []entities.SizeStock{{Size: "M", Stock: 5}},
	}

	testCases := []struct {
		name         string
		item         entities.CartItem
		mockBehavior func(carts *mocks.MockCartRepo, products *mocks.MockProductGetter)
		wantErr      error
	}{
		{
			name: "adds to a fresh cart",
			item: entities.CartItem{ProductID: coatID, Size: "M", Quantity: 1},
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductGetter) {
				products.EXPECT().ProductByID(mock.Anything, coatID).Return(coat, nil).Once()
				carts.EXPECT().EnsureActiveCart(mock.Anything, "user-1").
					Return(entities.Cart{ID: cartID, UserID: "user-1"}, nil).Once()
				carts.EXPECT().
					UpsertItem(mock.Anything, cartID, entities.CartItem{ProductID: coatID, Size: "M", Quantity: 1}).
					Return(nil).Once()
				carts.EXPECT().ActiveCart(mock.Anything, "user-1").Return(entities.Cart{
					ID:     cartID,
					UserID: "user-1",
					Items:  []entities.CartItem{{ProductID: coatID, Size: "M", Quantity: 1}},
				}, nil).Once()
			},
		},
		{
			name: "unknown size rejected",
			item: entities.CartItem{ProductID: coatID, Size: "XXL", Quantity: 1},
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductGetter) {
				products.EXPECT().ProductByID(mock.Anything, coatID).Return(coat, nil).Once()
			},
			wantErr: entities.ErrSizeNotFound,
		},
		{
			name: "inactive product rejected",
			item: entities.CartItem{ProductID: coatID, Size: "M", Quantity: 1},
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductGetter) {
				discontinued := coat
				discontinued.IsActive = false
				products.EXPECT().ProductByID(mock.Anything, coatID).Return(discontinued, nil).Once()
			},
			wantErr: entities.ErrProductNotSellable,
		},
		{
			name:         "zero quantity rejected",
			item:         entities.CartItem{ProductID: coatID, Size: "M", Quantity: 0},
			mockBehavior: func(carts *mocks.MockCartRepo, products *mocks.MockProductGetter) {},
			wantErr:      entities.ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			carts := mocks.NewMockCartRepo(t)
			products := mocks.NewMockProductGetter(t)
			tc.mockBehavior(carts, products)

			cart, err := newCartService(carts, products).AddItem(context.Background(), "user-1", tc.item)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, cart.Items, 1)
		})
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	cartID := uuid.New()
	coatID := uuid.New()

	t.Run("zero quantity removes the line", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductGetter(t)

		carts.EXPECT().ActiveCart(mock.Anything, "user-1").
			Return(entities.Cart{ID: cartID, UserID: "user-1"}, nil).Once()
		carts.EXPECT().RemoveItem(mock.Anything, cartID, coatID, "M").Return(nil).Once()
		carts.EXPECT().ActiveCart(mock.Anything, "user-1").
			Return(entities.Cart{ID: cartID, UserID: "user-1"}, nil).Once()

		_, err := newCartService(carts, products).UpdateQuantity(context.Background(), "user-1", coatID, "M", 0)
		require.NoError(t, err)
	})

	t.Run("positive quantity sets it exactly", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductGetter(t)

		carts.EXPECT().ActiveCart(mock.Anything, "user-1").
			Return(entities.Cart{ID: cartID, UserID: "user-1"}, nil).Once()
		carts.EXPECT().SetItemQuantity(mock.Anything, cartID, coatID, "M", 3).Return(nil).Once()
		carts.EXPECT().ActiveCart(mock.Anything, "user-1").
			Return(entities.Cart{ID: cartID, UserID: "user-1"}, nil).Once()

		_, err := newCartService(carts, products).UpdateQuantity(context.Background(), "user-1", coatID, "M", 3)
		require.NoError(t, err)
	})
}

func TestCartService_Count(t *testing.T) {
	t.Run("sums quantities", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductGetter(t)

		carts.EXPECT().ActiveCart(mock.Anything, "user-1").Return(entities.Cart{
			Items: []entities.CartItem{
				{ProductID: uuid.New(), Size: "M", Quantity: 2},
				{ProductID: uuid.New(), Size: "L", Quantity: 3},
			},
		}, nil).Once()

		count, err := newCartService(carts, products).Count(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("missing cart counts zero", func(t *testing.T) {
		carts := mocks.NewMockCartRepo(t)
		products := mocks.NewMockProductGetter(t)

		carts.EXPECT().ActiveCart(mock.Anything, "user-1").
			Return(entities.Cart{}, entities.ErrCartNotFound).Once()

		count, err := newCartService(carts, products).Count(context.Background(), "user-1")
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
