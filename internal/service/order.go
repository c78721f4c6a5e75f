package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/config"
	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/internal/events"
	"github.com/SergeyBogomolovv/agro-market/pkg/trm"
	"github.com/SergeyBogomolovv/agro-market/pkg/utils"
	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (entities.Order, error)
	GetOrderForUpdate(ctx context.Context, id uuid.UUID) (entities.Order, error)
	ListOrders(ctx context.Context, scope entities.OrderScope, callerID uuid.UUID, f entities.OrderFilter) ([]entities.Order, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, change entities.StatusChange) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, change entities.PaymentChange) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

// CatalogRepo is the part of the catalog the engine touches. Stock changes must
// run on the transaction carried by ctx.
type CatalogRepo interface {
	GetProductsForUpdate(ctx context.Context, ids []uuid.UUID) ([]entities.Product, error)
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.Product, error)
}

type AccountRepo interface {
	AccountsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.Account, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, orderID uuid.UUID, payload any) error
}

type IdempotencyStore interface {
	Claim(ctx context.Context, buyerID uuid.UUID, key string) (uuid.UUID, bool, error)
	Complete(ctx context.Context, buyerID uuid.UUID, key string, orderID uuid.UUID) error
	Release(ctx context.Context, buyerID uuid.UUID, key string) error
}

type OrderDeps struct {
	TxManager   trm.Manager
	Orders      OrderRepo
	Catalog     CatalogRepo
	Accounts    AccountRepo
	Publisher   EventPublisher
	Idempotency IdempotencyStore
}

type orderService struct {
	logger *slog.Logger
	OrderDeps
	retry utils.RetryConfig
	now   func() time.Time
}

func NewOrderService(logger *slog.Logger, deps OrderDeps, cfg config.Checkout) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		OrderDeps: deps,
		retry: utils.RetryConfig{
			MaxAttempts:  cfg.MaxAttempts,
			InitialDelay: cfg.RetryDelay,
			Multiplier:   2,
			ShouldRetry:  isTransient,
		},
		now: time.Now,
	}
}

// CreateOrder reserves stock and stores the order in one transaction. Prices come
// from the catalog at the moment the rows are locked, never from the client.
// A non-empty idempotencyKey makes retries of the same request return the same order.
func (s *orderService) CreateOrder(ctx context.Context, caller entities.Caller, in entities.CreateOrderInput, idempotencyKey string) (entities.OrderView, error) {
	if !caller.Is(entities.RoleBuyer) {
		return entities.OrderView{}, fmt.Errorf("%w: only buyers can place orders", entities.ErrForbidden)
	}
	if err := in.Validate(); err != nil {
		return entities.OrderView{}, err
	}

	idempotent := idempotencyKey != "" && s.Idempotency != nil
	if idempotent {
		existing, claimed, err := s.Idempotency.Claim(ctx, caller.ID, idempotencyKey)
		if err != nil {
			return entities.OrderView{}, err
		}
		if !claimed {
			s.logger.InfoContext(ctx, "replaying order for idempotency key", slog.String("order_id", existing.String()))
			return s.GetOrder(ctx, caller, existing)
		}
	}

	start := time.Now()
	items := in.Merged()

	var order entities.Order
	err := utils.Retry(ctx, s.retry, func() error {
		var err error
		order, err = s.placeOrder(ctx, caller, in, items)
		if isTransient(err) {
			txConflicts.Inc()
			s.logger.WarnContext(ctx, "checkout transaction aborted", slog.Any("error", err))
		}
		return err
	})
	if idempotent {
		s.settleIdempotency(ctx, caller.ID, idempotencyKey, order.ID, err)
	}
	if err != nil {
		if errors.Is(err, entities.ErrInsufficientStock) {
			stockRejections.Inc()
		}
		return entities.OrderView{}, asConflict(err)
	}

	ordersCreated.Inc()
	checkoutDuration.Observe(time.Since(start).Seconds())
	s.logger.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID.String()),
		slog.String("buyer_id", caller.ID.String()),
		slog.String("total", order.Total.StringFixed(2)),
	)

	s.publish(ctx, events.OrderCreated, order.ID, createdPayload(order))

	return s.hydrateCommitted(ctx, order), nil
}

func (s *orderService) placeOrder(ctx context.Context, caller entities.Caller, in entities.CreateOrderInput, items []entities.OrderItemInput) (entities.Order, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	sortIDs(ids)

	var order entities.Order
	err := s.TxManager.Do(ctx, func(ctx context.Context) error {
		locked, err := s.Catalog.GetProductsForUpdate(ctx, ids)
		if err != nil {
			return err
		}
		products := make(map[uuid.UUID]entities.Product, len(locked))
		for _, p := range locked {
			products[p.ID] = p
		}

		now := s.now().UTC()
		order = entities.Order{
			ID:              uuid.New(),
			BuyerID:         caller.ID,
			Items:           make([]entities.LineItem, 0, len(items)),
			ShippingAddress: in.ShippingAddress,
			PaymentMethod:   in.PaymentMethod,
			Status:          entities.StatusProcessing,
			PaymentStatus:   entities.PaymentPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		for _, it := range items {
			p, ok := products[it.ProductID]
			if !ok {
				return fmt.Errorf("%w: %s", entities.ErrProductNotFound, it.ProductID)
			}
			if p.Quantity < it.Quantity {
				return &entities.InsufficientStockError{
					ProductID:   p.ID,
					ProductName: p.Name,
					Requested:   it.Quantity,
					Available:   p.Quantity,
				}
			}
			order.Items = append(order.Items, entities.LineItem{
				ProductID: p.ID,
				FarmerID:  p.FarmerID,
				Name:      p.Name,
				ImageURL:  p.ImageURL,
				Price:     p.Price,
				Quantity:  it.Quantity,
			})
		}

		quantities := make(map[uuid.UUID]int, len(items))
		for _, it := range items {
			quantities[it.ProductID] = it.Quantity
		}
		for _, id := range ids {
			if err := s.Catalog.AdjustQuantity(ctx, id, -quantities[id]); err != nil {
				return err
			}
		}

		order.Total = order.ComputeTotal()
		order.StatusHistory = []entities.StatusChange{{
			Status:    entities.StatusProcessing,
			ActorID:   caller.ID,
			ActorRole: caller.Role,
			Note:      "order placed",
			CreatedAt: now,
		}}
		return s.Orders.CreateOrder(ctx, order)
	})
	return order, err
}

// settleIdempotency retries briefly; a key left pending expires after the
// store's pending TTL.
func (s *orderService) settleIdempotency(ctx context.Context, buyerID uuid.UUID, key string, orderID uuid.UUID, err error) {
	ctx = context.WithoutCancel(ctx)
	cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: s.retry.InitialDelay, Multiplier: 2}
	if err != nil {
		if rerr := utils.Retry(ctx, cfg, func() error { return s.Idempotency.Release(ctx, buyerID, key) }); rerr != nil {
			s.logger.ErrorContext(ctx, "failed to release idempotency key", slog.Any("error", rerr))
		}
		return
	}
	if cerr := utils.Retry(ctx, cfg, func() error { return s.Idempotency.Complete(ctx, buyerID, key, orderID) }); cerr != nil {
		s.logger.ErrorContext(ctx, "failed to complete idempotency key",
			slog.String("order_id", orderID.String()),
			slog.Any("error", cerr),
		)
	}
}

func (s *orderService) GetOrder(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.OrderView, error) {
	order, err := s.Orders.GetOrder(ctx, id)
	if err != nil {
		return entities.OrderView{}, err
	}
	if !order.CanBeViewedBy(caller) {
		return entities.OrderView{}, fmt.Errorf("%w: order %s", entities.ErrForbidden, id)
	}
	return s.hydrateOne(ctx, order)
}

var scopeRoles = map[entities.OrderScope]entities.Role{
	entities.ScopeBuyer:  entities.RoleBuyer,
	entities.ScopeFarmer: entities.RoleFarmer,
	entities.ScopeAll:    entities.RoleAdmin,
}

func (s *orderService) ListOrders(ctx context.Context, caller entities.Caller, scope entities.OrderScope, f entities.OrderFilter) (entities.OrderPage, error) {
	if role, ok := scopeRoles[scope]; !ok || caller.Role != role {
		return entities.OrderPage{}, fmt.Errorf("%w: listing not allowed for role %s", entities.ErrForbidden, caller.Role)
	}

	f = f.Normalize()
	if f.Status != "" && !f.Status.Valid() {
		return entities.OrderPage{}, entities.NewValidationError("status", "unsupported order status")
	}
	if f.PaymentMethod != "" && !f.PaymentMethod.Valid() {
		return entities.OrderPage{}, entities.NewValidationError("paymentMethod", "unsupported payment method")
	}
	if !f.SortBy.Valid() {
		return entities.OrderPage{}, entities.NewValidationError("sortBy", "unsupported sort field")
	}

	orders, total, err := s.Orders.ListOrders(ctx, scope, caller.ID, f)
	if err != nil {
		return entities.OrderPage{}, err
	}
	views, err := s.hydrate(ctx, orders)
	if err != nil {
		return entities.OrderPage{}, err
	}
	return entities.OrderPage{Orders: views, Pagination: entities.NewPagination(f.Page, f.Limit, total)}, nil
}

// UpdateStatus moves the order forward. Cancelling through here goes through
// CancelOrder so stock is restored the same way.
func (s *orderService) UpdateStatus(ctx context.Context, caller entities.Caller, id uuid.UUID, next entities.OrderStatus, notes string) (entities.OrderView, error) {
	if !caller.Is(entities.RoleFarmer, entities.RoleAdmin) {
		return entities.OrderView{}, fmt.Errorf("%w: only farmers and admins can update order status", entities.ErrForbidden)
	}
	if !next.Valid() {
		return entities.OrderView{}, entities.NewValidationError("status", "unsupported order status")
	}
	if next == entities.StatusCancelled {
		return s.CancelOrder(ctx, caller, id, notes)
	}

	var (
		order entities.Order
		from  entities.OrderStatus
	)
	err := s.TxManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.Orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if caller.Role == entities.RoleFarmer && !order.HasFarmer(caller.ID) {
			return fmt.Errorf("%w: order %s has no items from this farmer", entities.ErrForbidden, id)
		}
		if !order.Status.CanTransitionTo(next) {
			return &entities.InvalidTransitionError{From: string(order.Status), To: string(next)}
		}

		change := entities.StatusChange{
			Status:    next,
			ActorID:   caller.ID,
			ActorRole: caller.Role,
			Note:      notes,
			CreatedAt: s.now().UTC(),
		}
		if err := s.Orders.UpdateStatus(ctx, id, change); err != nil {
			return err
		}

		from = order.Status
		order.Status = next
		order.UpdatedAt = change.CreatedAt
		order.StatusHistory = append(order.StatusHistory, change)
		return nil
	})
	if err != nil {
		return entities.OrderView{}, asConflict(err)
	}

	statusTransitions.WithLabelValues(string(from), string(next)).Inc()
	s.logger.InfoContext(ctx, "order status updated",
		slog.String("order_id", id.String()),
		slog.String("from", string(from)),
		slog.String("to", string(next)),
	)
	s.publish(ctx, events.OrderStatusChanged, id, events.StatusChangedPayload{
		From:      string(from),
		To:        string(next),
		ActorID:   caller.ID,
		ActorRole: string(caller.Role),
		Note:      notes,
	})

	return s.hydrateCommitted(ctx, order), nil
}

// CancelOrder cancels and puts every line item back on the shelf in the same
// transaction. Products deleted since the order was placed are skipped.
func (s *orderService) CancelOrder(ctx context.Context, caller entities.Caller, id uuid.UUID, reason string) (entities.OrderView, error) {
	if !caller.Is(entities.RoleBuyer, entities.RoleFarmer, entities.RoleAdmin) {
		return entities.OrderView{}, fmt.Errorf("%w: role %s cannot cancel orders", entities.ErrForbidden, caller.Role)
	}

	var (
		order     entities.Order
		from      entities.OrderStatus
		restocked []events.ItemQty
	)
	err := s.TxManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.Orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !canCancel(order, caller) {
			return fmt.Errorf("%w: order %s", entities.ErrForbidden, id)
		}
		if !order.Status.CanBeCancelledBy(caller.Role) {
			return &entities.InvalidTransitionError{From: string(order.Status), To: string(entities.StatusCancelled)}
		}

		restocked, err = s.restock(ctx, order)
		if err != nil {
			return err
		}

		change := entities.StatusChange{
			Status:    entities.StatusCancelled,
			ActorID:   caller.ID,
			ActorRole: caller.Role,
			Note:      reason,
			CreatedAt: s.now().UTC(),
		}
		if err := s.Orders.UpdateStatus(ctx, id, change); err != nil {
			return err
		}

		from = order.Status
		order.Status = entities.StatusCancelled
		order.UpdatedAt = change.CreatedAt
		order.StatusHistory = append(order.StatusHistory, change)
		return nil
	})
	if err != nil {
		return entities.OrderView{}, asConflict(err)
	}

	cancellations.WithLabelValues(string(caller.Role)).Inc()
	statusTransitions.WithLabelValues(string(from), string(entities.StatusCancelled)).Inc()
	s.logger.InfoContext(ctx, "order cancelled",
		slog.String("order_id", id.String()),
		slog.String("from", string(from)),
		slog.String("by", string(caller.Role)),
	)
	s.publish(ctx, events.OrderCancelled, id, events.OrderCancelledPayload{
		From:      string(from),
		ActorID:   caller.ID,
		ActorRole: string(caller.Role),
		Reason:    reason,
		Restocked: restocked,
	})

	return s.hydrateCommitted(ctx, order), nil
}

func canCancel(order entities.Order, caller entities.Caller) bool {
	switch caller.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleBuyer:
		return order.BuyerID == caller.ID
	case entities.RoleFarmer:
		return order.HasFarmer(caller.ID)
	}
	return false
}

func (s *orderService) restock(ctx context.Context, order entities.Order) ([]events.ItemQty, error) {
	items := slices.Clone(order.Items)
	slices.SortFunc(items, func(a, b entities.LineItem) int {
		return bytes.Compare(a.ProductID[:], b.ProductID[:])
	})

	restocked := make([]events.ItemQty, 0, len(items))
	for _, it := range items {
		err := s.Catalog.AdjustQuantity(ctx, it.ProductID, it.Quantity)
		if errors.Is(err, entities.ErrProductNotFound) {
			s.logger.WarnContext(ctx, "product removed from catalog, stock not restored",
				slog.String("order_id", order.ID.String()),
				slog.String("product_id", it.ProductID.String()),
			)
			continue
		}
		if err != nil {
			return nil, err
		}
		restocked = append(restocked, events.ItemQty{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return restocked, nil
}

// UpdatePaymentStatus records a payment state change. Replaying the current state
// with the same transaction id is a no-op, so redelivered notifications are harmless.
func (s *orderService) UpdatePaymentStatus(ctx context.Context, caller entities.Caller, id uuid.UUID, next entities.PaymentStatus, transactionID string) (entities.OrderView, error) {
	if !caller.Is(entities.RoleAdmin, entities.RolePaymentProcessor) {
		return entities.OrderView{}, fmt.Errorf("%w: only admins and payment processors can update payments", entities.ErrForbidden)
	}
	if !next.Valid() {
		return entities.OrderView{}, entities.NewValidationError("paymentStatus", "unsupported payment status")
	}

	var (
		order   entities.Order
		from    entities.PaymentStatus
		changed bool
	)
	err := s.TxManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.Orders.GetOrderForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if order.PaymentStatus == next && (transactionID == "" || transactionID == order.TransactionID) {
			return nil
		}
		if !order.PaymentStatus.CanTransitionTo(next) {
			return &entities.InvalidTransitionError{From: string(order.PaymentStatus), To: string(next)}
		}

		change := entities.PaymentChange{
			Status:        next,
			ActorID:       caller.ID,
			ActorRole:     caller.Role,
			TransactionID: transactionID,
			CreatedAt:     s.now().UTC(),
		}
		if err := s.Orders.UpdatePaymentStatus(ctx, id, change); err != nil {
			return err
		}

		from = order.PaymentStatus
		changed = true
		order.PaymentStatus = next
		if transactionID != "" {
			order.TransactionID = transactionID
		}
		order.UpdatedAt = change.CreatedAt
		order.PaymentHistory = append(order.PaymentHistory, change)
		return nil
	})
	if err != nil {
		return entities.OrderView{}, asConflict(err)
	}

	if changed {
		paymentUpdates.WithLabelValues(string(next)).Inc()
		s.logger.InfoContext(ctx, "payment status updated",
			slog.String("order_id", id.String()),
			slog.String("from", string(from)),
			slog.String("to", string(next)),
		)
		s.publish(ctx, events.OrderPaymentUpdated, id, events.PaymentUpdatedPayload{
			From:          string(from),
			To:            string(next),
			TransactionID: transactionID,
			ActorID:       caller.ID,
			ActorRole:     string(caller.Role),
		})
	}

	return s.hydrateCommitted(ctx, order), nil
}

// DeleteOrder removes the order and its history. Stock is left as it is.
func (s *orderService) DeleteOrder(ctx context.Context, caller entities.Caller, id uuid.UUID) error {
	if !caller.Is(entities.RoleAdmin) {
		return fmt.Errorf("%w: only admins can delete orders", entities.ErrForbidden)
	}
	if err := s.Orders.DeleteOrder(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "order deleted", slog.String("order_id", id.String()))
	s.publish(ctx, events.OrderDeleted, id, events.OrderDeletedPayload{ActorID: caller.ID})
	return nil
}

// publish runs after commit, a failure here never undoes the order change.
func (s *orderService) publish(ctx context.Context, eventType string, orderID uuid.UUID, payload any) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(context.WithoutCancel(ctx), eventType, orderID, payload); err != nil {
		publishFailures.WithLabelValues(eventType).Inc()
		s.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("event_type", eventType),
			slog.String("order_id", orderID.String()),
			slog.Any("error", err),
		)
	}
}

func createdPayload(o entities.Order) events.OrderCreatedPayload {
	items := make([]events.LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, events.LineItem{
			ProductID: it.ProductID,
			FarmerID:  it.FarmerID,
			Quantity:  it.Quantity,
			Price:     it.Price.StringFixed(2),
		})
	}
	return events.OrderCreatedPayload{
		BuyerID:       o.BuyerID,
		Total:         o.Total.StringFixed(2),
		PaymentMethod: string(o.PaymentMethod),
		Items:         items,
	}
}

func sortIDs(ids []uuid.UUID) {
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
}
