package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/hyeonwoo-dev/atelier-shop/internal/entities"
	"github.com/hyeonwoo-dev/atelier-shop/internal/service"
	mocks "github.com/hyeonwoo-dev/atelier-shop/internal/service/mocks"
	txMocks "github.com/hyeonwoo-dev/atelier-shop/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

type productMocks struct {
	repo  *mocks.MockProductRepo
	cache *mocks.MockCache
	tx    *txMocks.MockManager
}

func newProductMocks(t *testing.T) productMocks {
	m := productMocks{
		repo:  mocks.NewMockProductRepo(t),
		cache: mocks.NewMockCache(t),
		tx:    txMocks.NewMockManager(t),
	}

	m.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	return m
}

type productCatalog interface {
	ProductByID(ctx context.Context, productID uuid.UUID) (entities.Product, error)
	Invalidate(productID uuid.UUID)
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, productID uuid.UUID) error
	UpdateStock(ctx context.Context, productID uuid.UUID, sizes []entities.SizeStock) (entities.Product, error)
}

func (m productMocks) newService() productCatalog {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewProductService(logger, m.tx, m.repo, m.cache)
}

func catalogProduct(id uuid.UUID) entities.Product {
	return entities.Product{
		ID:           id,
		SKU:          "WC-001",
		Name:         "wool coat",
		Price:        45000,
		MainCategory: "women",
		SubCategory:  "outer",
		IsActive:     true,
		Sizes:        []entities.SizeStock{{Size: "M", Stock: 5}},
	}
}

func TestProductService_ProductByID(t *testing.T) {
	t.Parallel()

	productID := uuid.New()

	t.Run("cache hit skips repository", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		cached := catalogProduct(productID)
		data, err := cached.Marshal()
		require.NoError(t, err)
		m.cache.EXPECT().Get(productID.String()).Return(data, true).Once()

		got, err := m.newService().ProductByID(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, cached.SKU, got.SKU)
		assert.Equal(t, cached.Sizes, got.Sizes)
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		product := catalogProduct(productID)
		m.cache.EXPECT().Get(productID.String()).Return(nil, false).Once()
		m.repo.EXPECT().ProductByID(mock.Anything, productID).Return(product, nil).Once()
		m.cache.EXPECT().Set(productID.String(), mock.Anything).Once()

		got, err := m.newService().ProductByID(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, product.Name, got.Name)
	})

	t.Run("invalidate drops the cached snapshot", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		m.cache.EXPECT().Delete(productID.String()).Once()

		m.newService().Invalidate(productID)
	})

	t.Run("corrupt cache entry fails loudly", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		m.cache.EXPECT().Get(productID.String()).Return([]byte("not gob"), true).Once()

		_, err := m.newService().ProductByID(context.Background(), productID)
		assert.Error(t, err)
	})

	t.Run("missing product is not retried", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		m.cache.EXPECT().Get(productID.String()).Return(nil, false).Once()
		m.repo.EXPECT().ProductByID(mock.Anything, productID).
			Return(entities.Product{}, entities.ErrProductNotFound).Once()

		_, err := m.newService().ProductByID(context.Background(), productID)
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
	})

	t.Run("transient repo failure is retried", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		product := catalogProduct(productID)
		m.cache.EXPECT().Get(productID.String()).Return(nil, false).Once()
		m.repo.EXPECT().ProductByID(mock.Anything, productID).
			Return(entities.Product{}, errors.New("connection reset")).Once()
		m.repo.EXPECT().ProductByID(mock.Anything, productID).Return(product, nil).Once()
		m.cache.EXPECT().Set(productID.String(), mock.Anything).Once()

		got, err := m.newService().ProductByID(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, product.SKU, got.SKU)
	})
}

func TestProductService_Create(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		product      entities.Product
		mockBehavior func(m productMocks)
		wantErr      error
	}{
		{
			name:    "creates product in transaction",
			product: catalogProduct(uuid.Nil),
			mockBehavior: func(m productMocks) {
				m.repo.EXPECT().
					CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
						return p.ID != uuid.Nil && p.SKU == "WC-001" && !p.CreatedAt.IsZero()
					})).
					Return(nil).Once()
			},
		},
		{
			name: "rejects missing sku",
			product: entities.Product{
				Name:         "wool coat",
				MainCategory: "women",
				SubCategory:  "outer",
			},
			mockBehavior: func(m productMocks) {},
			wantErr:      entities.ErrInvalidProduct,
		},
		{
			name: "rejects negative price",
			product: func() entities.Product {
				p := catalogProduct(uuid.Nil)
				p.Price = -1
				return p
			}(),
			mockBehavior: func(m productMocks) {},
			wantErr:      entities.ErrInvalidProduct,
		},
		{
			name: "rejects malformed size entry",
			product: func() entities.Product {
				p := catalogProduct(uuid.Nil)
				p.Sizes = []entities.SizeStock{{Size: "", Stock: 3}}
				return p
			}(),
			mockBehavior: func(m productMocks) {},
			wantErr:      entities.ErrInvalidProduct,
		},
		{
			name:    "propagates duplicate sku",
			product: catalogProduct(uuid.Nil),
			mockBehavior: func(m productMocks) {
				m.repo.EXPECT().
					CreateProduct(mock.Anything, mock.Anything).
					Return(entities.ErrDuplicateSKU).Once()
			},
			wantErr: entities.ErrDuplicateSKU,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := newProductMocks(t)
			tc.mockBehavior(m)

			got, err := m.newService().Create(context.Background(), tc.product)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, got.CreatedAt, got.UpdatedAt)
		})
	}
}

func TestProductService_Update(t *testing.T) {
	t.Parallel()

	productID := uuid.New()

	t.Run("replaces row and sizes then drops cache", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		product := catalogProduct(productID)
		m.repo.EXPECT().UpdateProduct(mock.Anything, product).Return(nil).Once()
		m.repo.EXPECT().ReplaceSizes(mock.Anything, productID, product.Sizes).Return(nil).Once()
		m.cache.EXPECT().Delete(productID.String()).Once()
		m.repo.EXPECT().ProductByID(mock.Anything, productID).Return(product, nil).Once()

		got, err := m.newService().Update(context.Background(), product)
		require.NoError(t, err)
		assert.Equal(t, product.SKU, got.SKU)
	})

	t.Run("failed size replace keeps cache intact", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		product := catalogProduct(productID)
		m.repo.EXPECT().UpdateProduct(mock.Anything, product).Return(nil).Once()
		m.repo.EXPECT().ReplaceSizes(mock.Anything, productID, product.Sizes).
			Return(errors.New("deadlock detected")).Once()

		_, err := m.newService().Update(context.Background(), product)
		assert.Error(t, err)
	})
}

func TestProductService_Delete(t *testing.T) {
	t.Parallel()

	productID := uuid.New()

	t.Run("deletes and invalidates cache", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		m.repo.EXPECT().DeleteProduct(mock.Anything, productID).Return(nil).Once()
		m.cache.EXPECT().Delete(productID.String()).Once()

		err := m.newService().Delete(context.Background(), productID)
		assert.NoError(t, err)
	})

	t.Run("missing product leaves cache alone", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		m.repo.EXPECT().DeleteProduct(mock.Anything, productID).
			Return(entities.ErrProductNotFound).Once()

		err := m.newService().Delete(context.Background(), productID)
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
	})
}

func TestProductService_UpdateStock(t *testing.T) {
	t.Parallel()

	productID := uuid.New()

	t.Run("overwrites size grid", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		sizes := []entities.SizeStock{{Size: "M", Stock: 10}, {Size: "L", Stock: 0}}
		product := catalogProduct(productID)
		product.Sizes = sizes

		m.repo.EXPECT().ReplaceSizes(mock.Anything, productID, sizes).Return(nil).Once()
		m.cache.EXPECT().Delete(productID.String()).Once()
		m.repo.EXPECT().ProductByID(mock.Anything, productID).Return(product, nil).Once()

		got, err := m.newService().UpdateStock(context.Background(), productID, sizes)
		require.NoError(t, err)
		assert.Equal(t, sizes, got.Sizes)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		t.Parallel()
		m := newProductMocks(t)

		_, err := m.newService().UpdateStock(context.Background(), productID,
			[]entities.SizeStock{{Size: "M", Stock: -2}})
		assert.ErrorIs(t, err, entities.ErrInvalidProduct)
	})
}
