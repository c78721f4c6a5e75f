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

type orderRepo struct {
	postgresRepo
}

func NewOrderRepo(db *sqlx.DB) *orderRepo {
	return &orderRepo{postgresRepo: newPostgresRepo(db)}
}

var orderSortColumns = map[entities.SortField]string{
	entities.SortByCreatedAt: "created_at",
	entities.SortByUpdatedAt: "updated_at",
	entities.SortByTotal:     "total",
	entities.SortByStatus:    "status",
}

func (r *orderRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.BuyerID, o.Total,
			o.ShippingAddress.Street, o.ShippingAddress.City, o.ShippingAddress.Country, o.ShippingAddress.PostalCode,
			string(o.PaymentMethod), string(o.Status), string(o.PaymentStatus), o.TransactionID,
			o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	if err := r.insertItems(ctx, o.ID, o.Items); err != nil {
		return err
	}
	for _, change := range o.StatusHistory {
		if err := r.appendStatus(ctx, o.ID, change); err != nil {
			return err
		}
	}
	for _, change := range o.PaymentHistory {
		if err := r.appendPayment(ctx, o.ID, change); err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepo) insertItems(ctx context.Context, orderID uuid.UUID, items []entities.LineItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(itemColumns...)
	for i, it := range items {
		q = q.Values(orderID, i, it.ProductID, it.FarmerID, it.Name, it.ImageURL, it.Price, it.Quantity)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", err)
	}
	return nil
}

func (r *orderRepo) GetOrder(ctx context.Context, id uuid.UUID) (entities.Order, error) {
	return r.getOrder(ctx, id, false)
}

// GetOrderForUpdate locks the order row until the surrounding transaction ends.
func (r *orderRepo) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (entities.Order, error) {
	return r.getOrder(ctx, id, true)
}

func (r *orderRepo) getOrder(ctx context.Context, id uuid.UUID, lock bool) (entities.Order, error) {
	q := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}
	query, args := q.MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	orders, err := r.assemble(ctx, []Order{order})
	if err != nil {
		return entities.Order{}, err
	}
	return orders[0], nil
}

func (r *orderRepo) ListOrders(ctx context.Context, scope entities.OrderScope, callerID uuid.UUID, f entities.OrderFilter) ([]entities.Order, int, error) {
	where := sq.And{}
	switch scope {
	case entities.ScopeBuyer:
		where = append(where, sq.Eq{"buyer_id": callerID})
	case entities.ScopeFarmer:
		where = append(where, sq.Expr(
			"EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = orders.id AND oi.farmer_id = ?)", callerID,
		))
	}
	if f.Status != "" {
		where = append(where, sq.Eq{"status": string(f.Status)})
	}
	if f.PaymentMethod != "" {
		where = append(where, sq.Eq{"payment_method": string(f.PaymentMethod)})
	}

	query, args := r.qb.Select("COUNT(*)").From("orders").Where(where).MustSql()
	var total int
	if err := r.getContext(ctx, &total, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}
	if total == 0 {
		return []entities.Order{}, 0, nil
	}

	direction := "ASC"
	if f.Descending {
		direction = "DESC"
	}
	column, ok := orderSortColumns[f.SortBy]
	if !ok {
		column = orderSortColumns[entities.SortByCreatedAt]
	}

	query, args = r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy(column+" "+direction, "id "+direction).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset())).
		MustSql()

	var rows []Order
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to select orders: %w", err)
	}

	orders, err := r.assemble(ctx, rows)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// assemble loads items and both histories for a batch of order rows.
func (r *orderRepo) assemble(ctx context.Context, rows []Order) ([]entities.Order, error) {
	if len(rows) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, o := range rows {
		ids[i] = o.ID
	}

	query, args := r.qb.Select(itemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[uuid.UUID][]Item, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	query, args = r.qb.Select(statusColumns...).
		From("order_status_history").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var statuses []StatusChange
	if err := r.selectContext(ctx, &statuses, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select status history: %w", err)
	}
	statusMap := make(map[uuid.UUID][]StatusChange, len(ids))
	for _, s := range statuses {
		statusMap[s.OrderID] = append(statusMap[s.OrderID], s)
	}

	query, args = r.qb.Select(paymentColumns...).
		From("order_payment_history").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("id").
		MustSql()

	var payments []PaymentChange
	if err := r.selectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select payment history: %w", err)
	}
	paymentMap := make(map[uuid.UUID][]PaymentChange, len(ids))
	for _, p := range payments {
		paymentMap[p.OrderID] = append(paymentMap[p.OrderID], p)
	}

	result := make([]entities.Order, 0, len(rows))
	for _, o := range rows {
		result = append(result, OrderToEntity(o, itemsMap[o.ID], statusMap[o.ID], paymentMap[o.ID]))
	}
	return result, nil
}

// UpdateStatus moves the order to change.Status and appends the change to its history.
func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, change entities.StatusChange) error {
	query, args := r.qb.Update("orders").
		Set("status", string(change.Status)).
		Set("updated_at", change.CreatedAt).
		Where(sq.Eq{"id": id}).
		MustSql()

	if err := r.updateOne(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return r.appendStatus(ctx, id, change)
}

// UpdatePaymentStatus keeps the stored transaction id when change carries none.
func (r *orderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, change entities.PaymentChange) error {
	q := r.qb.Update("orders").
		Set("payment_status", string(change.Status)).
		Set("updated_at", change.CreatedAt).
		Where(sq.Eq{"id": id})
	if change.TransactionID != "" {
		q = q.Set("transaction_id", change.TransactionID)
	}
	query, args := q.MustSql()

	if err := r.updateOne(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	return r.appendPayment(ctx, id, change)
}

func (r *orderRepo) appendStatus(ctx context.Context, orderID uuid.UUID, change entities.StatusChange) error {
	query, args := r.qb.Insert("order_status_history").
		Columns(statusColumns...).
		Values(orderID, string(change.Status), change.ActorID, string(change.ActorRole), change.Note, change.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append status history: %w", err)
	}
	return nil
}

func (r *orderRepo) appendPayment(ctx context.Context, orderID uuid.UUID, change entities.PaymentChange) error {
	query, args := r.qb.Insert("order_payment_history").
		Columns(paymentColumns...).
		Values(orderID, string(change.Status), change.ActorID, string(change.ActorRole), change.TransactionID, change.CreatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to append payment history: %w", err)
	}
	return nil
}

func (r *orderRepo) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	query, args := r.qb.Delete("orders").Where(sq.Eq{"id": id}).MustSql()
	if err := r.updateOne(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

func (r *orderRepo) updateOne(ctx context.Context, query string, args ...any) error {
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}
