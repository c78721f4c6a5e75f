package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/internal/handler"
	mocks "github.com/SergeyBogomolovv/agro-market/internal/handler/mocks"
	mwMocks "github.com/SergeyBogomolovv/agro-market/internal/middleware/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	buyer     = entities.Caller{ID: uuid.New(), Role: entities.RoleBuyer}
	farmer    = entities.Caller{ID: uuid.New(), Role: entities.RoleFarmer}
	admin     = entities.Caller{ID: uuid.New(), Role: entities.RoleAdmin}
	processor = entities.Caller{ID: uuid.New(), Role: entities.RolePaymentProcessor}
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

type testServer struct {
	router  chi.Router
	orders  *mocks.MockOrderService
	catalog *mocks.MockCatalogService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	resolver := mwMocks.NewMockCallerResolver(t)
	for token, caller := range map[string]entities.Caller{
		"buyer":     buyer,
		"farmer":    farmer,
		"admin":     admin,
		"processor": processor,
	} {
		resolver.EXPECT().ResolveCaller(mock.Anything, token).Return(caller, nil).Maybe()
	}
	resolver.EXPECT().ResolveCaller(mock.Anything, "expired").Return(entities.Caller{}, entities.ErrUnauthorized).Maybe()

	s := &testServer{
		router:  chi.NewRouter(),
		orders:  mocks.NewMockOrderService(t),
		catalog: mocks.NewMockCatalogService(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler.NewHTTPHandler(logger, s.orders, s.catalog, resolver).Init(s.router)
	return s
}

func (s *testServer) do(t *testing.T, method, path, token, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return rr, env
}

func sampleOrder() entities.OrderView {
	productID := uuid.New()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return entities.OrderView{
		Order: entities.Order{
			ID:      uuid.New(),
			BuyerID: buyer.ID,
			Items: []entities.LineItem{{
				ProductID: productID,
				FarmerID:  farmer.ID,
				Name:      "Tomatoes",
				Price:     decimal.RequireFromString("10"),
				Quantity:  2,
			}},
			Total:           decimal.RequireFromString("20"),
			ShippingAddress: entities.ShippingAddress{Street: "1 Rd", City: "Accra", Country: "Ghana"},
			PaymentMethod:   entities.PaymentCash,
			Status:          entities.StatusProcessing,
			PaymentStatus:   entities.PaymentPending,
			CreatedAt:       now,
			UpdatedAt:       now,
			StatusHistory: []entities.StatusChange{{
				Status: entities.StatusProcessing, ActorID: buyer.ID, ActorRole: entities.RoleBuyer, CreatedAt: now,
			}},
		},
		Buyer: &entities.AccountSummary{ID: buyer.ID, Name: "ama", Email: "ama@agro.test"},
		Products: map[uuid.UUID]entities.ProductSummary{
			productID: {ID: productID, Name: "Tomatoes", Price: decimal.RequireFromString("12.5"), Quantity: 3},
		},
	}
}

const createBody = `{
	"products": [{"product": "5f1c7e0e-3c1b-4a57-9f0e-2a4d7f3e9b11", "quantity": 2}],
	"shippingAddress": {"street": "1 Rd", "city": "Accra", "country": "Ghana"},
	"paymentMethod": "cash"
}`

func TestHTTPHandler_CreateOrder(t *testing.T) {
	productID := uuid.MustParse("5f1c7e0e-3c1b-4a57-9f0e-2a4d7f3e9b11")

	testCases := []struct {
		name         string
		token        string
		body         string
		headers      []string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantError    string
		wantField    string
	}{
		{
			name:    "success",
			token:   "buyer",
			body:    createBody,
			headers: []string{"Idempotency-Key", "checkout-1"},
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, buyer, entities.CreateOrderInput{
					Items:           []entities.OrderItemInput{{ProductID: productID, Quantity: 2}},
					ShippingAddress: entities.ShippingAddress{Street: "1 Rd", City: "Accra", Country: "Ghana"},
					PaymentMethod:   entities.PaymentCash,
				}, "checkout-1").Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "missing products",
			token:        "buyer",
			body:         `{"shippingAddress": {"street": "1 Rd", "city": "Accra", "country": "Ghana"}, "paymentMethod": "cash"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantError:    "validation failed",
			wantField:    "products",
		},
		{
			name:         "malformed product id",
			token:        "buyer",
			body:         `{"products": [{"product": "p1", "quantity": 1}], "shippingAddress": {"street": "1 Rd", "city": "Accra", "country": "Ghana"}, "paymentMethod": "cash"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantField:    "products[0].product",
		},
		{
			name:         "unsupported payment method",
			token:        "buyer",
			body:         strings.Replace(createBody, `"cash"`, `"barter"`, 1),
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantField:    "paymentMethod",
		},
		{
			name:         "quantity above column range",
			token:        "buyer",
			body:         strings.Replace(createBody, `"quantity": 2`, `"quantity": 2147483648`, 1),
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantField:    "products[0].quantity",
		},
		{
			name:         "client supplied price is rejected",
			token:        "buyer",
			body:         `{"products": [{"product": "5f1c7e0e-3c1b-4a57-9f0e-2a4d7f3e9b11", "quantity": 1, "price": 0.01}], "shippingAddress": {"street": "1 Rd", "city": "Accra", "country": "Ghana"}, "paymentMethod": "cash"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantError:    "invalid request body",
		},
		{
			name:         "no token",
			body:         createBody,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "expired token",
			token:        "expired",
			body:         createBody,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "farmer cannot order",
			token:        "farmer",
			body:         createBody,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:  "insufficient stock",
			token: "buyer",
			body:  createBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, buyer, mock.Anything, "").
					Return(entities.OrderView{}, &entities.InsufficientStockError{ProductID: productID, ProductName: "Tomatoes", Requested: 2, Available: 1}).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "insufficient stock for Tomatoes: requested 2, available 1",
		},
		{
			name:  "stock check constraint",
			token: "buyer",
			body:  createBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, buyer, mock.Anything, "").
					Return(entities.OrderView{}, fmt.Errorf("%w: %w", entities.ErrInsufficientStock, errors.New(`pq: new row violates check constraint "products_quantity_check"`))).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "insufficient stock",
		},
		{
			name:  "unknown product",
			token: "buyer",
			body:  createBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, buyer, mock.Anything, "").
					Return(entities.OrderView{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantError:  "product not found",
		},
		{
			name:  "conflict",
			token: "buyer",
			body:  createBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, buyer, mock.Anything, "").
					Return(entities.OrderView{}, entities.ErrConflict).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:  "internal error",
			token: "buyer",
			body:  createBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CreateOrder(mock.Anything, buyer, mock.Anything, "").
					Return(entities.OrderView{}, errors.New("pq: connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			tc.mockBehavior(s.orders)

			rr, env := s.do(t, http.MethodPost, "/orders", tc.token, tc.body, tc.headers...)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Equal(t, tc.wantStatus < 300, env.Success)
			if tc.wantError != "" {
				assert.Equal(t, tc.wantError, env.Error)
			}
			if tc.wantField != "" {
				require.NotEmpty(t, env.Details)
				assert.Equal(t, tc.wantField, env.Details[0].Field)
			}
			if tc.wantStatus == http.StatusConflict {
				assert.Equal(t, "1", rr.Header().Get("Retry-After"))
			}
		})
	}
}

func TestHTTPHandler_OrderResponse(t *testing.T) {
	s := newTestServer(t)
	order := sampleOrder()
	s.orders.EXPECT().GetOrder(mock.Anything, buyer, order.ID).Return(order, nil).Once()

	rr, env := s.do(t, http.MethodGet, "/orders/"+order.ID.String(), "buyer", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got handler.Order
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "20.00", got.TotalAmount)
	require.Len(t, got.Products, 1)
	assert.Equal(t, "10.00", got.Products[0].Price)
	require.NotNil(t, got.Products[0].Current)
	assert.Equal(t, "12.50", got.Products[0].Current.Price)
	assert.Equal(t, "processing", got.Status)
	assert.Equal(t, "pending", got.PaymentStatus)
	require.NotNil(t, got.Buyer)
	assert.Equal(t, "ama", got.Buyer.Name)
	assert.Len(t, got.StatusHistory, 1)
	assert.Empty(t, got.PaymentHistory)
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	orderID := uuid.New()

	testCases := []struct {
		name         string
		path         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name:         "malformed id",
			path:         "/orders/not-a-uuid",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "not found",
			path: "/orders/" + orderID.String(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, buyer, orderID).Return(entities.OrderView{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "someone else's order",
			path: "/orders/" + orderID.String(),
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetOrder(mock.Anything, buyer, orderID).Return(entities.OrderView{}, entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			tc.mockBehavior(s.orders)

			rr, env := s.do(t, http.MethodGet, tc.path, "buyer", "")
			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.False(t, env.Success)
		})
	}
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	page := entities.OrderPage{
		Orders:     []entities.OrderView{sampleOrder()},
		Pagination: entities.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2},
	}

	testCases := []struct {
		name         string
		path         string
		token        string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name:  "my orders with filters",
			path:  "/orders/my-orders?status=shipped&page=2&limit=5",
			token: "buyer",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything, buyer, entities.ScopeBuyer, entities.OrderFilter{
					Status:     entities.StatusShipped,
					Page:       2,
					Limit:      5,
					Descending: true,
				}).Return(page, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "received orders sorted by total",
			path:  "/orders/received?sortBy=total&sortOrder=asc",
			token: "farmer",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything, farmer, entities.ScopeFarmer, entities.OrderFilter{
					SortBy: entities.SortByTotal,
				}).Return(page, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "all orders for admin",
			path:  "/orders?paymentMethod=paypal",
			token: "admin",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().ListOrders(mock.Anything, admin, entities.ScopeAll, mock.Anything).Return(page, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "buyer cannot list all orders",
			path:         "/orders",
			token:        "buyer",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "bad page",
			path:         "/orders/my-orders?page=two",
			token:        "buyer",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "limit above max",
			path:         "/orders/my-orders?limit=1000",
			token:        "buyer",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "unknown status",
			path:         "/orders/received?status=lost",
			token:        "farmer",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			tc.mockBehavior(s.orders)

			rr, env := s.do(t, http.MethodGet, tc.path, tc.token, "")
			require.Equal(t, tc.wantStatus, rr.Code, rr.Body.String())
			if tc.wantStatus != http.StatusOK {
				return
			}

			var got handler.OrderPage
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Len(t, got.Orders, 1)
			assert.Equal(t, handler.Pagination{Page: 2, Limit: 5, Total: 6, Pages: 2}, got.Pagination)
		})
	}
}

func TestHTTPHandler_OrderMutations(t *testing.T) {
	orderID := uuid.New()
	base := "/orders/" + orderID.String()

	testCases := []struct {
		name         string
		method       string
		path         string
		token        string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name:   "farmer ships",
			method: http.MethodPatch,
			path:   base + "/status",
			token:  "farmer",
			body:   `{"status": "shipped", "notes": "on the truck"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateStatus(mock.Anything, farmer, orderID, entities.StatusShipped, "on the truck").Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "invalid transition",
			method: http.MethodPatch,
			path:   base + "/status",
			token:  "admin",
			body:   `{"status": "delivered"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdateStatus(mock.Anything, admin, orderID, entities.StatusDelivered, "").
					Return(entities.OrderView{}, &entities.InvalidTransitionError{From: "processing", To: "delivered"}).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:         "buyer cannot update status",
			method:       http.MethodPatch,
			path:         base + "/status",
			token:        "buyer",
			body:         `{"status": "shipped"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:         "unknown status value",
			method:       http.MethodPatch,
			path:         base + "/status",
			token:        "admin",
			body:         `{"status": "teleported"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "cancel without body",
			method: http.MethodPatch,
			path:   base + "/cancel",
			token:  "buyer",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, buyer, orderID, "").Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "cancel with reason",
			method: http.MethodPatch,
			path:   base + "/cancel",
			token:  "buyer",
			body:   `{"reason": "ordered twice"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().CancelOrder(mock.Anything, buyer, orderID, "ordered twice").Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "processor marks paid",
			method: http.MethodPatch,
			path:   base + "/payment",
			token:  "processor",
			body:   `{"paymentStatus": "paid", "transactionId": "tx-1"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().UpdatePaymentStatus(mock.Anything, processor, orderID, entities.PaymentPaid, "tx-1").Return(sampleOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "buyer cannot touch payments",
			method:       http.MethodPatch,
			path:         base + "/payment",
			token:        "buyer",
			body:         `{"paymentStatus": "paid"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:   "admin deletes",
			method: http.MethodDelete,
			path:   base,
			token:  "admin",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().DeleteOrder(mock.Anything, admin, orderID).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "farmer cannot delete",
			method:       http.MethodDelete,
			path:         base,
			token:        "farmer",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			tc.mockBehavior(s.orders)

			rr, _ := s.do(t, tc.method, tc.path, tc.token, tc.body)
			assert.Equal(t, tc.wantStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestHTTPHandler_Products(t *testing.T) {
	productID := uuid.New()
	product := entities.Product{
		ID:       productID,
		FarmerID: farmer.ID,
		Name:     "Cassava",
		Price:    decimal.RequireFromString("2.5"),
		Quantity: 40,
		Category: "tubers",
		Location: &entities.GeoPoint{Latitude: 5.6, Longitude: -0.19},
	}
	twelve := 12

	testCases := []struct {
		name         string
		method       string
		path         string
		token        string
		body         string
		mockBehavior func(svc *mocks.MockCatalogService)
		wantStatus   int
	}{
		{
			name:   "list near a point without auth",
			method: http.MethodGet,
			path:   "/products?lat=5.6&lng=-0.2&radius=10&category=tubers",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().ListProducts(mock.Anything, entities.ProductFilter{
					Category: "tubers",
					Near:     &entities.GeoPoint{Latitude: 5.6, Longitude: -0.2},
					RadiusKm: 10,
				}).Return(entities.ProductPage{Products: []entities.Product{product}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:         "lat without lng",
			method:       http.MethodGet,
			path:         "/products?lat=5.6",
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "bad farmer id",
			method:       http.MethodGet,
			path:         "/products?farmer=kofi",
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/products/" + productID.String(),
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().GetProduct(mock.Anything, productID).Return(product, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "farmer creates",
			method: http.MethodPost,
			path:   "/products",
			token:  "farmer",
			body:   `{"name": "Cassava", "price": "2.50", "quantity": 40, "category": "tubers", "location": {"lat": 5.6, "lng": -0.19}}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().CreateProduct(mock.Anything, farmer, mock.MatchedBy(func(in entities.ProductInput) bool {
					return in.Name == "Cassava" && in.Quantity == 40 && in.Price.Equal(decimal.RequireFromString("2.5")) && in.Location != nil
				})).Return(product, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:         "missing quantity",
			method:       http.MethodPost,
			path:         "/products",
			token:        "farmer",
			body:         `{"name": "Cassava", "price": 2.5, "category": "tubers"}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "quantity above column range",
			method:       http.MethodPost,
			path:         "/products",
			token:        "farmer",
			body:         `{"name": "Cassava", "price": 2.5, "quantity": 2147483648, "category": "tubers"}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "update quantity above column range",
			method:       http.MethodPut,
			path:         "/products/" + productID.String(),
			token:        "farmer",
			body:         `{"quantity": 2147483648}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "buyer cannot create",
			method:       http.MethodPost,
			path:         "/products",
			token:        "buyer",
			body:         `{"name": "Cassava", "price": 2.5, "quantity": 1, "category": "tubers"}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {},
			wantStatus:   http.StatusForbidden,
		},
		{
			name:   "partial update",
			method: http.MethodPut,
			path:   "/products/" + productID.String(),
			token:  "farmer",
			body:   `{"quantity": 12}`,
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().UpdateProduct(mock.Anything, farmer, productID, entities.ProductPatch{Quantity: &twelve}).Return(product, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "delete someone else's product",
			method: http.MethodDelete,
			path:   "/products/" + productID.String(),
			token:  "farmer",
			mockBehavior: func(svc *mocks.MockCatalogService) {
				svc.EXPECT().DeleteProduct(mock.Anything, farmer, productID).Return(entities.ErrForbidden).Once()
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			tc.mockBehavior(s.catalog)

			rr, _ := s.do(t, tc.method, tc.path, tc.token, tc.body)
			assert.Equal(t, tc.wantStatus, rr.Code, rr.Body.String())
		})
	}
}
