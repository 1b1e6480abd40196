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

var productColumns = []string{
	"id", "sku", "name", "description", "price",
	"main_category", "sub_category", "brand",
	"is_active", "is_featured", "created_at", "updated_at",
}

type ProductRepo struct {
	store
}

func NewProductRepo(db *sqlx.DB) *ProductRepo {
	return &ProductRepo{store: newStore(db)}
}

func (r *ProductRepo) ProductByID(ctx context.Context, productID uuid.UUID) (entities.Product, error) {
	return r.productBy(ctx, sq.Eq{"id": productID})
}

func (r *ProductRepo) ProductBySKU(ctx context.Context, sku string) (entities.Product, error) {
	return r.productBy(ctx, sq.Eq{"sku": sku})
}

func (r *ProductRepo) productBy(ctx context.Context, pred sq.Eq) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(pred).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	query, args = r.qb.Select("product_id", "size", "stock").
		From("product_sizes").
		Where(sq.Eq{"product_id": product.ID}).
		OrderBy("size").
		MustSql()

	var sizes []ProductSize
	if err := r.selectContext(ctx, &sizes, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to get sizes: %w", err)
	}

	return ProductToEntity(product, sizes), nil
}

func (r *ProductRepo) Products(ctx context.Context, f entities.ProductsFilter) ([]entities.Product, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}

	pred := sq.And{}
	if f.MainCategory != "" {
		pred = append(pred, sq.Eq{"main_category": f.MainCategory})
	}
	if f.SubCategory != "" {
		pred = append(pred, sq.Eq{"sub_category": f.SubCategory})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		pred = append(pred, sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"sku": pattern},
		})
	}
	if f.ActiveOnly {
		pred = append(pred, sq.Eq{"is_active": true})
	}
	if f.FeaturedOnly {
		pred = append(pred, sq.Eq{"is_featured": true})
	}

	countQ := r.qb.Select("count(*)").From("products")
	listQ := r.qb.Select(productColumns...).
		From("products").
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
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query, args = listQ.MustSql()
	var products []Product
	if err := r.selectContext(ctx, &products, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select products: %w", err)
	}

	if len(products) == 0 {
		return []entities.Product{}, total, nil
	}

	ids := make([]uuid.UUID, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	query, args = r.qb.Select("product_id", "size", "stock").
		From("product_sizes").
		Where(sq.Eq{"product_id": ids}).
		OrderBy("product_id", "size").
		MustSql()

	var sizes []ProductSize
	if err := r.selectContext(ctx, &sizes, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select sizes: %w", err)
	}
	sizesMap := make(map[uuid.UUID][]ProductSize, len(ids))
	for _, s := range sizes {
		sizesMap[s.ProductID] = append(sizesMap[s.ProductID], s)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p, sizesMap[p.ID]))
	}
	return result, total, nil
}

func (r *ProductRepo) CreateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Insert("products").
		Columns(productColumns...).
		Values(
			p.ID, p.SKU, p.Name, nullString(p.Description), p.Price,
			p.MainCategory, p.SubCategory, nullString(p.Brand),
			p.IsActive, p.IsFeatured, p.CreatedAt, p.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, "products_sku_key") {
			return entities.ErrDuplicateSKU
		}
		return fmt.Errorf("failed to create product: %w", err)
	}

	return r.insertSizes(ctx, p.ID, p.Sizes)
}

func (r *ProductRepo) UpdateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		Set("sku", p.SKU).
		Set("name", p.Name).
		Set("description", nullString(p.Description)).
		Set("price", p.Price).
		Set("main_category", p.MainCategory).
		Set("sub_category", p.SubCategory).
		Set("brand", nullString(p.Brand)).
		Set("is_active", p.IsActive).
		Set("is_featured", p.IsFeatured).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err, "products_sku_key") {
			return entities.ErrDuplicateSKU
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepo) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	query, args := r.qb.Delete("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}

// ReplaceSizes is the admin stock edit: a full overwrite of the size grid.
// It bypasses reserve/restore deliberately; callers wrap it in trm.Do.
func (r *ProductRepo) ReplaceSizes(ctx context.Context, productID uuid.UUID, sizes []entities.SizeStock) error {
	query, args := r.qb.Delete("product_sizes").
		Where(sq.Eq{"product_id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete sizes: %w", err)
	}

	return r.insertSizes(ctx, productID, sizes)
}

func (r *ProductRepo) insertSizes(ctx context.Context, productID uuid.UUID, sizes []entities.SizeStock) error {
	if len(sizes) == 0 {
		return nil
	}

	q := r.qb.Insert("product_sizes").Columns("product_id", "size", "stock")
	for _, s := range sizes {
		q = q.Values(productID, s.Size, s.Stock)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert sizes: %w", err)
	}
	return nil
}
