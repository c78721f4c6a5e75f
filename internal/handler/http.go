package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/SergeyBogomolovv/agro-market/internal/middleware"
	"github.com/SergeyBogomolovv/agro-market/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, caller entities.Caller, in entities.CreateOrderInput, idempotencyKey string) (entities.OrderView, error)
	GetOrder(ctx context.Context, caller entities.Caller, id uuid.UUID) (entities.OrderView, error)
	ListOrders(ctx context.Context, caller entities.Caller, scope entities.OrderScope, f entities.OrderFilter) (entities.OrderPage, error)
	UpdateStatus(ctx context.Context, caller entities.Caller, id uuid.UUID, status entities.OrderStatus, notes string) (entities.OrderView, error)
	CancelOrder(ctx context.Context, caller entities.Caller, id uuid.UUID, reason string) (entities.OrderView, error)
	UpdatePaymentStatus(ctx context.Context, caller entities.Caller, id uuid.UUID, status entities.PaymentStatus, transactionID string) (entities.OrderView, error)
	DeleteOrder(ctx context.Context, caller entities.Caller, id uuid.UUID) error
}

type CatalogService interface {
	GetProduct(ctx context.Context, id uuid.UUID) (entities.Product, error)
	ListProducts(ctx context.Context, f entities.ProductFilter) (entities.ProductPage, error)
	CreateProduct(ctx context.Context, caller entities.Caller, in entities.ProductInput) (entities.Product, error)
	UpdateProduct(ctx context.Context, caller entities.Caller, id uuid.UUID, patch entities.ProductPatch) (entities.Product, error)
	DeleteProduct(ctx context.Context, caller entities.Caller, id uuid.UUID) error
}

const idempotencyHeader = "Idempotency-Key"

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	catalog  CatalogService
	authn    func(http.Handler) http.Handler
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, catalog CatalogService, resolver middleware.CallerResolver) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: newValidator(),
		orders:   orders,
		catalog:  catalog,
		authn:    middleware.Authenticate(logger, resolver),
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)

		r.Group(func(r chi.Router) {
			r.Use(h.authn)
			r.With(middleware.RequireRoles(entities.RoleFarmer)).Post("/", h.CreateProduct)
			r.With(middleware.RequireRoles(entities.RoleFarmer, entities.RoleAdmin)).Put("/{id}", h.UpdateProduct)
			r.With(middleware.RequireRoles(entities.RoleFarmer, entities.RoleAdmin)).Delete("/{id}", h.DeleteProduct)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Use(h.authn)

		r.With(middleware.RequireRoles(entities.RoleBuyer)).Post("/", h.CreateOrder)
		r.With(middleware.RequireRoles(entities.RoleAdmin)).Get("/", h.ListAllOrders)
		r.With(middleware.RequireRoles(entities.RoleBuyer)).Get("/my-orders", h.ListMyOrders)
		r.With(middleware.RequireRoles(entities.RoleFarmer)).Get("/received", h.ListReceivedOrders)
		r.Get("/{id}", h.GetOrder)
		r.With(middleware.RequireRoles(entities.RoleFarmer, entities.RoleAdmin)).Patch("/{id}/status", h.UpdateStatus)
		r.With(middleware.RequireRoles(entities.RoleBuyer, entities.RoleFarmer, entities.RoleAdmin)).Patch("/{id}/cancel", h.CancelOrder)
		r.With(middleware.RequireRoles(entities.RoleAdmin, entities.RolePaymentProcessor)).Patch("/{id}/payment", h.UpdatePayment)
		r.With(middleware.RequireRoles(entities.RoleAdmin)).Delete("/{id}", h.DeleteOrder)
	})
}

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeAndValidate writes the 400 itself and reports whether the handler may continue.
// An empty body is accepted when allowEmpty is set.
func (h *HTTPHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	if err := utils.DecodeBody(r, dst); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			utils.WriteErrorDetails(w, "invalid request body", []utils.FieldDetail{{Field: "body", Message: err.Error()}}, http.StatusBadRequest)
			return false
		}
	}
	if err := h.validate.Struct(dst); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

func parseID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", entities.ErrInvalidID, raw)
	}
	return id, nil
}

func callerFrom(r *http.Request) entities.Caller {
	caller, _ := middleware.CallerFromContext(r.Context())
	return caller
}
