package repo_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/internal/repo"
	"github.com/SergeyBogomolovv/agro-market/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountCreator interface {
	CreateAccount(ctx context.Context, a entities.Account) error
}

func newAccount(t *testing.T, accounts accountCreator, role entities.Role) entities.Account {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()
	a := entities.Account{
		ID:        id,
		Name:      string(role) + " " + id.String()[:8],
		Email:     id.String() + "@agro.test",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, accounts.CreateAccount(context.Background(), a))
	return a
}

func newProduct(farmerID uuid.UUID, name string, price string, qty int) entities.Product {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entities.Product{
		ID:        uuid.New(),
		FarmerID:  farmerID,
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
		Category:  "vegetables",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPostgresRepos(t *testing.T) {
	db := startPostgres(t)
	tm := trm.NewManager(db, trm.Options{Timeout: 5 * time.Second, LockTimeout: time.Second})
	accounts := repo.NewAccountRepo(db)
	products := repo.NewProductRepo(db)
	orders := repo.NewOrderRepo(db)
	ctx := context.Background()

	t.Run("accounts", func(t *testing.T) {
		buyer := newAccount(t, accounts, entities.RoleBuyer)

		got, err := accounts.GetAccount(ctx, buyer.ID)
		require.NoError(t, err)
		assert.Equal(t, buyer.Email, got.Email)
		assert.Equal(t, entities.RoleBuyer, got.Role)

		_, err = accounts.GetAccount(ctx, uuid.New())
		assert.ErrorIs(t, err, entities.ErrAccountNotFound)

		byID, err := accounts.AccountsByIDs(ctx, []uuid.UUID{buyer.ID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, byID, 1)
	})

	t.Run("product crud", func(t *testing.T) {
		farmer := newAccount(t, accounts, entities.RoleFarmer)
		p := newProduct(farmer.ID, "Cassava", "4.50", 12)
		p.Location = &entities.GeoPoint{Latitude: 5.6037, Longitude: -0.1870}
		require.NoError(t, products.CreateProduct(ctx, p))

		got, err := products.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.True(t, p.Price.Equal(got.Price))
		require.NotNil(t, got.Location)
		assert.InDelta(t, 5.6037, got.Location.Latitude, 1e-9)

		got.Name = "Sweet cassava"
		got.Location = nil
		require.NoError(t, products.UpdateProduct(ctx, got))
		got, err = products.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sweet cassava", got.Name)
		assert.Nil(t, got.Location)

		require.NoError(t, products.DeleteProduct(ctx, p.ID))
		_, err = products.GetProduct(ctx, p.ID)
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
		assert.ErrorIs(t, products.DeleteProduct(ctx, p.ID), entities.ErrProductNotFound)
	})

	t.Run("list products", func(t *testing.T) {
		farmer := newAccount(t, accounts, entities.RoleFarmer)
		accra := newProduct(farmer.ID, "Accra tomatoes", "3.00", 5)
		accra.Location = &entities.GeoPoint{Latitude: 5.6037, Longitude: -0.1870}
		kumasi := newProduct(farmer.ID, "Kumasi plantain", "2.00", 5)
		kumasi.Location = &entities.GeoPoint{Latitude: 6.6885, Longitude: -1.6244}
		kumasi.Category = "fruits"
		kumasi.CreatedAt = accra.CreatedAt.Add(time.Second)
		for _, p := range []entities.Product{accra, kumasi} {
			require.NoError(t, products.CreateProduct(ctx, p))
		}

		testCases := []struct {
			name   string
			filter entities.ProductFilter
			want   []uuid.UUID
		}{
			{
				name:   "by farmer",
				filter: entities.ProductFilter{FarmerID: farmer.ID},
				want:   []uuid.UUID{kumasi.ID, accra.ID},
			},
			{
				name:   "by category",
				filter: entities.ProductFilter{FarmerID: farmer.ID, Category: "fruits"},
				want:   []uuid.UUID{kumasi.ID},
			},
			{
				name:   "search is case insensitive",
				filter: entities.ProductFilter{FarmerID: farmer.ID, Search: "TOMATO"},
				want:   []uuid.UUID{accra.ID},
			},
			{
				name: "near accra",
				filter: entities.ProductFilter{
					FarmerID: farmer.ID,
					Near:     &entities.GeoPoint{Latitude: 5.55, Longitude: -0.2},
					RadiusKm: 20,
				},
				want: []uuid.UUID{accra.ID},
			},
			{
				name: "wide radius orders by distance",
				filter: entities.ProductFilter{
					FarmerID: farmer.ID,
					Near:     &entities.GeoPoint{Latitude: 6.7, Longitude: -1.6},
					RadiusKm: 500,
				},
				want: []uuid.UUID{kumasi.ID, accra.ID},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				got, total, err := products.ListProducts(ctx, tc.filter.Normalize())
				require.NoError(t, err)
				assert.Equal(t, len(tc.want), total)

				ids := make([]uuid.UUID, 0, len(got))
				for _, p := range got {
					ids = append(ids, p.ID)
				}
				assert.Equal(t, tc.want, ids)
			})
		}
	})

	t.Run("adjust quantity never goes negative", func(t *testing.T) {
		farmer := newAccount(t, accounts, entities.RoleFarmer)
		p := newProduct(farmer.ID, "Yam", "7.25", 3)
		require.NoError(t, products.CreateProduct(ctx, p))

		require.NoError(t, products.AdjustQuantity(ctx, p.ID, -2))

		err := products.AdjustQuantity(ctx, p.ID, -2)
		var stockErr *entities.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 2, stockErr.Requested)
		assert.Equal(t, 1, stockErr.Available)

		require.NoError(t, products.AdjustQuantity(ctx, p.ID, 4))
		got, err := products.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, got.Quantity)

		assert.ErrorIs(t, products.AdjustQuantity(ctx, uuid.New(), -1), entities.ErrProductNotFound)
	})

	t.Run("quantity check constraint is insufficient stock", func(t *testing.T) {
		farmer := newAccount(t, accounts, entities.RoleFarmer)
		p := newProduct(farmer.ID, "Okra", "1.00", 1)
		require.NoError(t, products.CreateProduct(ctx, p))

		p.Quantity = -1
		assert.ErrorIs(t, products.UpdateProduct(ctx, p), entities.ErrInsufficientStock)
	})

	t.Run("order lifecycle", func(t *testing.T) {
		farmer := newAccount(t, accounts, entities.RoleFarmer)
		otherFarmer := newAccount(t, accounts, entities.RoleFarmer)
		buyer := newAccount(t, accounts, entities.RoleBuyer)
		admin := newAccount(t, accounts, entities.RoleAdmin)

		now := time.Now().UTC().Truncate(time.Microsecond)
		order := entities.Order{
			ID:      uuid.New(),
			BuyerID: buyer.ID,
			Items: []entities.LineItem{
				{ProductID: uuid.New(), FarmerID: farmer.ID, Name: "Maize", Price: decimal.RequireFromString("10.00"), Quantity: 2},
				{ProductID: uuid.New(), FarmerID: otherFarmer.ID, Name: "Beans", Price: decimal.RequireFromString("2.35"), Quantity: 3},
			},
			ShippingAddress: entities.ShippingAddress{Street: "1 Rd", City: "Accra", Country: "Ghana"},
			PaymentMethod:   entities.PaymentCash,
			Status:          entities.StatusProcessing,
			PaymentStatus:   entities.PaymentPending,
			CreatedAt:       now,
			UpdatedAt:       now,
			StatusHistory: []entities.StatusChange{
				{Status: entities.StatusProcessing, ActorID: buyer.ID, ActorRole: entities.RoleBuyer, CreatedAt: now},
			},
		}
		order.Total = order.ComputeTotal()

		err := tm.Do(ctx, func(ctx context.Context) error {
			return orders.CreateOrder(ctx, order)
		})
		require.NoError(t, err)

		got, err := orders.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("27.05").Equal(got.Total))
		require.Len(t, got.Items, 2)
		assert.Equal(t, "Maize", got.Items[0].Name)
		assert.Len(t, got.StatusHistory, 1)

		err = tm.Do(ctx, func(ctx context.Context) error {
			if _, err := orders.GetOrderForUpdate(ctx, order.ID); err != nil {
				return err
			}
			return orders.UpdateStatus(ctx, order.ID, entities.StatusChange{
				Status: entities.StatusShipped, ActorID: farmer.ID, ActorRole: entities.RoleFarmer,
				Note: "left the farm", CreatedAt: now.Add(time.Minute),
			})
		})
		require.NoError(t, err)

		err = orders.UpdatePaymentStatus(ctx, order.ID, entities.PaymentChange{
			Status: entities.PaymentPaid, ActorID: admin.ID, ActorRole: entities.RoleAdmin,
			TransactionID: "tx-1", CreatedAt: now.Add(2 * time.Minute),
		})
		require.NoError(t, err)

		got, err = orders.GetOrder(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.StatusShipped, got.Status)
		assert.Equal(t, entities.PaymentPaid, got.PaymentStatus)
		assert.Equal(t, "tx-1", got.TransactionID)
		require.Len(t, got.StatusHistory, 2)
		assert.Equal(t, "left the farm", got.StatusHistory[1].Note)
		require.Len(t, got.PaymentHistory, 1)

		t.Run("scopes", func(t *testing.T) {
			filter := entities.OrderFilter{}.Normalize()

			mine, total, err := orders.ListOrders(ctx, entities.ScopeBuyer, buyer.ID, filter)
			require.NoError(t, err)
			assert.Equal(t, 1, total)
			assert.Equal(t, order.ID, mine[0].ID)

			received, total, err := orders.ListOrders(ctx, entities.ScopeFarmer, otherFarmer.ID, filter)
			require.NoError(t, err)
			assert.Equal(t, 1, total)
			assert.Len(t, received[0].Items, 2)

			_, total, err = orders.ListOrders(ctx, entities.ScopeBuyer, farmer.ID, filter)
			require.NoError(t, err)
			assert.Zero(t, total)

			filter.Status = entities.StatusDelivered
			_, total, err = orders.ListOrders(ctx, entities.ScopeFarmer, farmer.ID, filter)
			require.NoError(t, err)
			assert.Zero(t, total)
		})

		require.NoError(t, orders.DeleteOrder(ctx, order.ID))
		_, err = orders.GetOrder(ctx, order.ID)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
		assert.ErrorIs(t, orders.DeleteOrder(ctx, order.ID), entities.ErrOrderNotFound)
	})

	t.Run("row locks serialize concurrent checkouts", func(t *testing.T) {
		farmer := newAccount(t, accounts, entities.RoleFarmer)
		p := newProduct(farmer.ID, "Last pineapple", "5.00", 1)
		require.NoError(t, products.CreateProduct(ctx, p))

		checkout := func(ctx context.Context) error {
			locked, err := products.GetProductsForUpdate(ctx, []uuid.UUID{p.ID})
			if err != nil {
				return err
			}
			if locked[0].Quantity < 1 {
				return entities.ErrInsufficientStock
			}
			return products.AdjustQuantity(ctx, p.ID, -1)
		}

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i := range errs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = tm.Do(ctx, checkout)
			}()
		}
		wg.Wait()

		failures := 0
		for _, err := range errs {
			if err != nil {
				assert.True(t, errors.Is(err, entities.ErrInsufficientStock), "unexpected error: %v", err)
				failures++
			}
		}
		assert.Equal(t, 1, failures)

		got, err := products.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Zero(t, got.Quantity)
	})
}
