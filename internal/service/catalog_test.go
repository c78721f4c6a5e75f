package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/internal/service"
	mocks "github.com/SergeyBogomolovv/agro-market/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/agro-market/pkg/trm/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func passThroughTx(t *testing.T) *txMocks.MockManager {
	txManager := txMocks.NewMockManager(t)
	txManager.EXPECT().Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	return txManager
}

func TestCatalogService_CreateProduct(t *testing.T) {
	farmer := entities.Caller{ID: uuid.New(), Role: entities.RoleFarmer}
	dbErr := errors.New("db error")

	valid := entities.ProductInput{
		Name:     "Cassava",
		Price:    decimal.RequireFromString("2.50"),
		Quantity: 40,
		Category: "tubers",
		Location: &entities.GeoPoint{Latitude: 5.6, Longitude: -0.19},
	}

	testCases := []struct {
		name         string
		caller       entities.Caller
		input        entities.ProductInput
		mockBehavior func(repo *mocks.MockProductRepo)
		wantErr      error
	}{
		{
			name:   "OK",
			caller: farmer,
			input:  valid,
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
					return p.FarmerID == farmer.ID && p.Name == "Cassava" && p.Quantity == 40 && p.ID != uuid.Nil
				})).Return(nil)
			},
		},
		{
			name:         "buyer cannot list products",
			caller:       entities.Caller{ID: uuid.New(), Role: entities.RoleBuyer},
			input:        valid,
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:   "invalid location",
			caller: farmer,
			input: func() entities.ProductInput {
				in := valid
				in.Location = &entities.GeoPoint{Latitude: 91, Longitude: 0}
				return in
			}(),
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:   "negative quantity",
			caller: farmer,
			input: func() entities.ProductInput {
				in := valid
				in.Quantity = -1
				return in
			}(),
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:   "repo fails",
			caller: farmer,
			input:  valid,
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			tc.mockBehavior(repo)
			svc := service.NewCatalogService(discardLogger(), passThroughTx(t), repo)

			got, err := svc.CreateProduct(context.Background(), tc.caller, tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, farmer.ID, got.FarmerID)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	owner := entities.Caller{ID: uuid.New(), Role: entities.RoleFarmer}
	productID := uuid.New()
	stored := entities.Product{
		ID:       productID,
		FarmerID: owner.ID,
		Name:     "Cassava",
		Price:    decimal.RequireFromString("2.50"),
		Quantity: 40,
		Category: "tubers",
	}
	newQty := 12
	newPrice := decimal.RequireFromString("3.00")
	empty := ""

	testCases := []struct {
		name         string
		caller       entities.Caller
		patch        entities.ProductPatch
		mockBehavior func(repo *mocks.MockProductRepo)
		wantErr      error
	}{
		{
			name:   "owner edits stock and price",
			caller: owner,
			patch:  entities.ProductPatch{Quantity: &newQty, Price: &newPrice},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().GetProductForUpdate(mock.Anything, productID).Return(stored, nil)
				repo.EXPECT().UpdateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
					return p.Quantity == 12 && p.Price.Equal(newPrice) && p.Name == "Cassava"
				})).Return(nil)
			},
		},
		{
			name:   "admin edits any product",
			caller: entities.Caller{ID: uuid.New(), Role: entities.RoleAdmin},
			patch:  entities.ProductPatch{Quantity: &newQty},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().GetProductForUpdate(mock.Anything, productID).Return(stored, nil)
				repo.EXPECT().UpdateProduct(mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:   "another farmer",
			caller: entities.Caller{ID: uuid.New(), Role: entities.RoleFarmer},
			patch:  entities.ProductPatch{Quantity: &newQty},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().GetProductForUpdate(mock.Anything, productID).Return(stored, nil)
			},
			wantErr: entities.ErrForbidden,
		},
		{
			name:         "buyer",
			caller:       entities.Caller{ID: uuid.New(), Role: entities.RoleBuyer},
			patch:        entities.ProductPatch{Quantity: &newQty},
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrForbidden,
		},
		{
			name:         "empty name",
			caller:       owner,
			patch:        entities.ProductPatch{Name: &empty},
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrValidation,
		},
		{
			name:   "missing product",
			caller: owner,
			patch:  entities.ProductPatch{Quantity: &newQty},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().GetProductForUpdate(mock.Anything, productID).Return(entities.Product{}, entities.ErrProductNotFound)
			},
			wantErr: entities.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			tc.mockBehavior(repo)
			svc := service.NewCatalogService(discardLogger(), passThroughTx(t), repo)

			got, err := svc.UpdateProduct(context.Background(), tc.caller, productID, tc.patch)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 12, got.Quantity)
		})
	}
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	owner := entities.Caller{ID: uuid.New(), Role: entities.RoleFarmer}
	productID := uuid.New()
	stored := entities.Product{ID: productID, FarmerID: owner.ID}

	t.Run("owner", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		repo.EXPECT().GetProductForUpdate(mock.Anything, productID).Return(stored, nil)
		repo.EXPECT().DeleteProduct(mock.Anything, productID).Return(nil)

		svc := service.NewCatalogService(discardLogger(), passThroughTx(t), repo)
		assert.NoError(t, svc.DeleteProduct(context.Background(), owner, productID))
	})

	t.Run("another farmer", func(t *testing.T) {
		repo := mocks.NewMockProductRepo(t)
		repo.EXPECT().GetProductForUpdate(mock.Anything, productID).Return(stored, nil)

		svc := service.NewCatalogService(discardLogger(), passThroughTx(t), repo)
		err := svc.DeleteProduct(context.Background(), entities.Caller{ID: uuid.New(), Role: entities.RoleFarmer}, productID)
		assert.ErrorIs(t, err, entities.ErrForbidden)
	})
}

func TestCatalogService_ListProducts(t *testing.T) {
	farmerID := uuid.New()

	testCases := []struct {
		name         string
		filter       entities.ProductFilter
		mockBehavior func(repo *mocks.MockProductRepo)
		wantErr      error
		wantPage     entities.Pagination
	}{
		{
			name:   "defaults",
			filter: entities.ProductFilter{FarmerID: farmerID},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().ListProducts(mock.Anything, entities.ProductFilter{FarmerID: farmerID, Page: 1, Limit: 10}).
					Return([]entities.Product{{ID: uuid.New()}}, 1, nil)
			},
			wantPage: entities.Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1},
		},
		{
			name:   "near gets default radius",
			filter: entities.ProductFilter{Near: &entities.GeoPoint{Latitude: 5.6, Longitude: -0.2}, Limit: 500},
			mockBehavior: func(repo *mocks.MockProductRepo) {
				repo.EXPECT().ListProducts(mock.Anything, mock.MatchedBy(func(f entities.ProductFilter) bool {
					return f.RadiusKm == entities.DefaultSearchRadiusKm && f.Limit == entities.MaxPageLimit
				})).Return(nil, 0, nil)
			},
			wantPage: entities.Pagination{Page: 1, Limit: 100},
		},
		{
			name:         "near out of range",
			filter:       entities.ProductFilter{Near: &entities.GeoPoint{Latitude: 0, Longitude: 200}},
			mockBehavior: func(repo *mocks.MockProductRepo) {},
			wantErr:      entities.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProductRepo(t)
			tc.mockBehavior(repo)
			svc := service.NewCatalogService(discardLogger(), passThroughTx(t), repo)

			page, err := svc.ListProducts(context.Background(), tc.filter)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, page.Pagination)
		})
	}
}
