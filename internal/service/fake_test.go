package service_test

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sort"
	"sync"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memStore is an in-memory stand-in for postgres. Transactions run one at a time
// and roll back to a snapshot on error, which is what row locks plus
// read-committed give the engine for the rows it touches.
type memStore struct {
	txMu sync.Mutex

	mu       sync.Mutex
	products map[uuid.UUID]entities.Product
	orders   map[uuid.UUID]entities.Order
	accounts map[uuid.UUID]entities.Account
	sequence []uuid.UUID

	// transient failures returned by Do before running the callback
	conflicts int
	attempts  int

	// returned by the hydration reads
	readErr error
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[uuid.UUID]entities.Product),
		orders:   make(map[uuid.UUID]entities.Order),
		accounts: make(map[uuid.UUID]entities.Account),
	}
}

type snapshot struct {
	products map[uuid.UUID]entities.Product
	orders   map[uuid.UUID]entities.Order
	sequence []uuid.UUID
}

func (s *memStore) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	return nil, nil, errors.New("memStore: BeginTx is not supported, use Do")
}

func (s *memStore) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	s.attempts++
	if s.conflicts > 0 {
		s.conflicts--
		s.mu.Unlock()
		return entities.ErrConflict
	}
	snap := snapshot{
		products: maps.Clone(s.products),
		orders:   make(map[uuid.UUID]entities.Order, len(s.orders)),
		sequence: slices.Clone(s.sequence),
	}
	for id, o := range s.orders {
		snap.orders[id] = cloneOrder(o)
	}
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.products, s.orders, s.sequence = snap.products, snap.orders, snap.sequence
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) addAccount(role entities.Role, name string) entities.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := entities.Account{ID: uuid.New(), Name: name, Email: name + "@agro.test", Role: role}
	s.accounts[a.ID] = a
	return a
}

func (s *memStore) addProduct(p entities.Product) entities.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.products[p.ID] = p
	return p
}

func (s *memStore) quantity(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Quantity
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *memStore) setPrice(id uuid.UUID, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.products[id]
	p.Price = price
	s.products[id] = p
}

// catalog

func (s *memStore) GetProductsForUpdate(_ context.Context, ids []uuid.UUID) ([]entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]entities.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			res = append(res, p)
		}
	}
	return res, nil
}

func (s *memStore) AdjustQuantity(_ context.Context, id uuid.UUID, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return entities.ErrProductNotFound
	}
	if p.Quantity+delta < 0 {
		return &entities.InsufficientStockError{ProductID: id, ProductName: p.Name, Requested: -delta, Available: p.Quantity}
	}
	p.Quantity += delta
	s.products[id] = p
	return nil
}

func (s *memStore) ProductsByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, s.readErr
	}
	res := make(map[uuid.UUID]entities.Product, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			res[id] = p
		}
	}
	return res, nil
}

func (s *memStore) failReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

func (s *memStore) deleteProduct(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
}

// accounts

func (s *memStore) AccountsByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]entities.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make(map[uuid.UUID]entities.Account, len(ids))
	for _, id := range ids {
		if a, ok := s.accounts[id]; ok {
			res[id] = a
		}
	}
	return res, nil
}

// orders

func (s *memStore) CreateOrder(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = cloneOrder(o)
	s.sequence = append(s.sequence, o.ID)
	return nil
}

func (s *memStore) GetOrder(_ context.Context, id uuid.UUID) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return cloneOrder(o), nil
}

func (s *memStore) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (entities.Order, error) {
	return s.GetOrder(ctx, id)
}

func (s *memStore) ListOrders(_ context.Context, scope entities.OrderScope, callerID uuid.UUID, f entities.OrderFilter) ([]entities.Order, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []entities.Order
	for _, id := range s.sequence {
		o := s.orders[id]
		switch {
		case scope == entities.ScopeBuyer && o.BuyerID != callerID:
			continue
		case scope == entities.ScopeFarmer && !o.HasFarmer(callerID):
			continue
		case f.Status != "" && o.Status != f.Status:
			continue
		case f.PaymentMethod != "" && o.PaymentMethod != f.PaymentMethod:
			continue
		}
		matched = append(matched, cloneOrder(o))
	}
	if f.Descending {
		slices.Reverse(matched)
	}
	if f.SortBy == entities.SortByTotal {
		sort.SliceStable(matched, func(i, j int) bool {
			if f.Descending {
				return matched[i].Total.GreaterThan(matched[j].Total)
			}
			return matched[i].Total.LessThan(matched[j].Total)
		})
	}

	total := len(matched)
	start := min(f.Offset(), total)
	end := min(start+f.Limit, total)
	return matched[start:end], total, nil
}

func (s *memStore) UpdateStatus(_ context.Context, id uuid.UUID, change entities.StatusChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return entities.ErrOrderNotFound
	}
	o.Status = change.Status
	o.UpdatedAt = change.CreatedAt
	o.StatusHistory = append(slices.Clone(o.StatusHistory), change)
	s.orders[id] = o
	return nil
}

func (s *memStore) UpdatePaymentStatus(_ context.Context, id uuid.UUID, change entities.PaymentChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return entities.ErrOrderNotFound
	}
	o.PaymentStatus = change.Status
	if change.TransactionID != "" {
		o.TransactionID = change.TransactionID
	}
	o.UpdatedAt = change.CreatedAt
	o.PaymentHistory = append(slices.Clone(o.PaymentHistory), change)
	s.orders[id] = o
	return nil
}

func (s *memStore) DeleteOrder(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return entities.ErrOrderNotFound
	}
	delete(s.orders, id)
	s.sequence = slices.DeleteFunc(s.sequence, func(x uuid.UUID) bool { return x == id })
	return nil
}

func cloneOrder(o entities.Order) entities.Order {
	o.Items = slices.Clone(o.Items)
	o.StatusHistory = slices.Clone(o.StatusHistory)
	o.PaymentHistory = slices.Clone(o.PaymentHistory)
	return o
}
