package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const earthRadiusKm = 6371

// great-circle distance from (?, ?) in km; LEAST guards acos against rounding above 1
const distanceExpr = `(? * acos(LEAST(1, cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?)) + sin(radians(?)) * sin(radians(latitude)))))`

type productRepo struct {
	postgresRepo
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{postgresRepo: newPostgresRepo(db)}
}

func (r *productRepo) GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	return r.getProduct(ctx, id, false)
}

func (r *productRepo) GetProductForUpdate(ctx context.Context, id uuid.UUID) (entities.Product, error) {
	return r.getProduct(ctx, id, true)
}

func (r *productRepo) getProduct(ctx context.Context, id uuid.UUID, lock bool) (entities.Product, error) {
	q := r.qb.Select(productColumns...).From("products").Where(sq.Eq{"id": id})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

// GetProductsForUpdate locks the rows in ascending id order, so two checkouts
// touching the same products always queue instead of deadlocking.
// Missing ids are simply absent from the result.
func (r *productRepo) GetProductsForUpdate(ctx context.Context, ids []uuid.UUID) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").
		Suffix("FOR UPDATE").
		MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to lock products: %w", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, p := range rows {
		products = append(products, ProductToEntity(p))
	}
	return products, nil
}

func (r *productRepo) ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.Product, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]entities.Product{}, nil
	}

	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	products := make(map[uuid.UUID]entities.Product, len(rows))
	for _, p := range rows {
		products[p.ID] = ProductToEntity(p)
	}
	return products, nil
}

// AdjustQuantity adds delta to the stock counter. The update is guarded so the
// counter never drops below zero; a rejected decrement is ErrInsufficientStock.
func (r *productRepo) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	query, args := r.qb.Update("products").
		Set("quantity", sq.Expr("quantity + ?", delta)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where(sq.Expr("quantity + ? >= 0", delta)).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to adjust quantity: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to adjust quantity: %w", err)
	}
	if n == 1 {
		return nil
	}

	product, err := r.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	return &entities.InsufficientStockError{
		ProductID:   product.ID,
		ProductName: product.Name,
		Requested:   -delta,
		Available:   product.Quantity,
	}
}

func (r *productRepo) CreateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Insert("products").
		Columns(productColumns...).
		Values(
			p.ID, p.FarmerID, p.Name, p.Description, p.Price, p.Quantity,
			p.Category, p.ImageURL, latitude(p.Location), longitude(p.Location), p.CreatedAt, p.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *productRepo) UpdateProduct(ctx context.Context, p entities.Product) error {
	query, args := r.qb.Update("products").
		SetMap(map[string]any{
			"name":        p.Name,
			"description": p.Description,
			"price":       p.Price,
			"quantity":    p.Quantity,
			"category":    p.Category,
			"image_url":   p.ImageURL,
			"latitude":    latitude(p.Location),
			"longitude":   longitude(p.Location),
			"updated_at":  p.UpdatedAt,
		}).
		Where(sq.Eq{"id": p.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return productAffected(res)
}

func (r *productRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	query, args := r.qb.Delete("products").Where(sq.Eq{"id": id}).MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return productAffected(res)
}

func (r *productRepo) ListProducts(ctx context.Context, f entities.ProductFilter) ([]entities.Product, int, error) {
	where := sq.And{}
	if f.Category != "" {
		where = append(where, sq.Eq{"category": f.Category})
	}
	if f.FarmerID != uuid.Nil {
		where = append(where, sq.Eq{"farmer_id": f.FarmerID})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		where = append(where, sq.Or{sq.ILike{"name": pattern}, sq.ILike{"description": pattern}})
	}

	var distance sq.Sqlizer
	if f.Near != nil {
		distance = sq.Expr(distanceExpr, earthRadiusKm, f.Near.Latitude, f.Near.Longitude, f.Near.Latitude)
		where = append(where,
			sq.NotEq{"latitude": nil},
			sq.NotEq{"longitude": nil},
			sq.Expr("? <= ?", distance, f.RadiusKm),
		)
	}

	query, args := r.qb.Select("COUNT(*)").From("products").Where(where).MustSql()
	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}
	if total == 0 {
		return []entities.Product{}, 0, nil
	}

	q := r.qb.Select(productColumns...).
		From("products").
		Where(where).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset()))
	if distance != nil {
		q = q.OrderByClause(sq.Expr("? ASC", distance)).OrderBy("id")
	} else {
		q = q.OrderBy("created_at DESC", "id")
	}
	query, args = q.MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select products: %w", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, p := range rows {
		products = append(products, ProductToEntity(p))
	}
	return products, total, nil
}

func productAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}
