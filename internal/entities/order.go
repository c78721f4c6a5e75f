package entities

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShippingAddress struct {
	Street     string
	City       string
	Country    string
	PostalCode string
}

// LineItem is a copy of the product taken when the order was placed.
// It is never updated afterwards, so later catalog edits do not leak into order history.
type LineItem struct {
	ProductID uuid.UUID
	FarmerID  uuid.UUID
	Name      string
	ImageURL  string
	Price     decimal.Decimal
	Quantity  int
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

type StatusChange struct {
	Status    OrderStatus
	ActorID   uuid.UUID
	ActorRole Role
	Note      string
	CreatedAt time.Time
}

type PaymentChange struct {
	Status        PaymentStatus
	ActorID       uuid.UUID
	ActorRole     Role
	TransactionID string
	CreatedAt     time.Time
}

type Order struct {
	ID              uuid.UUID
	BuyerID         uuid.UUID
	Items           []LineItem
	Total           decimal.Decimal
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	TransactionID   string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// append-only, oldest first
	StatusHistory  []StatusChange
	PaymentHistory []PaymentChange
}

// ComputeTotal sums snapshot prices, never live catalog prices.
func (o *Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// HasFarmer reports whether at least one line item was sold by the farmer.
func (o *Order) HasFarmer(farmerID uuid.UUID) bool {
	for _, it := range o.Items {
		if it.FarmerID == farmerID {
			return true
		}
	}
	return false
}

// CanBeViewedBy covers the buyer, any farmer with a line item, and admins.
func (o *Order) CanBeViewedBy(c Caller) bool {
	switch c.Role {
	case RoleAdmin:
		return true
	case RoleBuyer:
		return o.BuyerID == c.ID
	case RoleFarmer:
		return o.HasFarmer(c.ID)
	}
	return false
}

type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// MaxItemQuantity bounds one product's quantity in an order, after duplicates are merged.
// It matches the INT columns the quantities are stored in.
const MaxItemQuantity = math.MaxInt32

type CreateOrderInput struct {
	Items           []OrderItemInput
	ShippingAddress ShippingAddress
	PaymentMethod   PaymentMethod
}

// Merged folds repeated products into one entry, keeping first-seen order.
func (in CreateOrderInput) Merged() []OrderItemInput {
	merged := make([]OrderItemInput, 0, len(in.Items))
	index := make(map[uuid.UUID]int, len(in.Items))
	for _, it := range in.Items {
		if i, ok := index[it.ProductID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

// Validate checks the shape of the request before any storage access.
func (in CreateOrderInput) Validate() error {
	var fields []FieldError
	if len(in.Items) == 0 {
		fields = append(fields, FieldError{Field: "products", Message: "at least one product is required"})
	}
	merged := make(map[uuid.UUID]int, len(in.Items))
	for i, it := range in.Items {
		if it.ProductID == uuid.Nil {
			fields = append(fields, FieldError{Field: indexed("products", i, "product"), Message: "invalid product id"})
		}
		switch {
		case it.Quantity < 1:
			fields = append(fields, FieldError{Field: indexed("products", i, "quantity"), Message: "quantity must be at least 1"})
		case it.Quantity > MaxItemQuantity:
			fields = append(fields, FieldError{Field: indexed("products", i, "quantity"), Message: fmt.Sprintf("quantity must be at most %d", MaxItemQuantity)})
		case merged[it.ProductID] > MaxItemQuantity-it.Quantity:
			fields = append(fields, FieldError{Field: indexed("products", i, "quantity"), Message: fmt.Sprintf("combined quantity for this product must be at most %d", MaxItemQuantity)})
		default:
			merged[it.ProductID] += it.Quantity
		}
	}
	if in.ShippingAddress.Street == "" {
		fields = append(fields, FieldError{Field: "shippingAddress.street", Message: "street is required"})
	}
	if in.ShippingAddress.City == "" {
		fields = append(fields, FieldError{Field: "shippingAddress.city", Message: "city is required"})
	}
	if in.ShippingAddress.Country == "" {
		fields = append(fields, FieldError{Field: "shippingAddress.country", Message: "country is required"})
	}
	if !in.PaymentMethod.Valid() {
		fields = append(fields, FieldError{Field: "paymentMethod", Message: "unsupported payment method"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

type OrderScope int

const (
	ScopeBuyer OrderScope = iota
	ScopeFarmer
	ScopeAll
)

type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByTotal     SortField = "total"
	SortByStatus    SortField = "status"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByCreatedAt, SortByUpdatedAt, SortByTotal, SortByStatus:
		return true
	}
	return false
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type OrderFilter struct {
	Status        OrderStatus
	PaymentMethod PaymentMethod
	Page          int
	Limit         int
	SortBy        SortField
	Descending    bool
}

// Normalize fills defaults for zero values.
func (f OrderFilter) Normalize() OrderFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	if f.SortBy == "" {
		f.SortBy = SortByCreatedAt
		f.Descending = true
	}
	return f
}

func (f OrderFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type Pagination struct {
	Page  int
	Limit int
	Total int
	Pages int
}

func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

type OrderPage struct {
	Orders     []OrderView
	Pagination Pagination
}

// OrderView is the read model: the stored order plus display data loaded at read time.
type OrderView struct {
	Order
	Buyer    *AccountSummary
	Products map[uuid.UUID]ProductSummary
}
