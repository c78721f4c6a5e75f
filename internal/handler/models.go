package handler

import (
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// requests

type OrderItemRequest struct {
	Product  string `json:"product" validate:"required,uuid" example:"5f1c7e0e-3c1b-4a57-9f0e-2a4d7f3e9b11"`
	Quantity int    `json:"quantity" validate:"required,gte=1,lte=2147483647" example:"2"`
}

type AddressRequest struct {
	Street     string `json:"street" validate:"required,max=200" example:"1 Rd"`
	City       string `json:"city" validate:"required,max=100" example:"Accra"`
	Country    string `json:"country" validate:"required,max=100" example:"Ghana"`
	PostalCode string `json:"postalCode,omitempty" validate:"max=20"`
}

type CreateOrderRequest struct {
	Products        []OrderItemRequest `json:"products" validate:"required,min=1,max=100,dive"`
	ShippingAddress AddressRequest     `json:"shippingAddress" validate:"required"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required,oneof=cash credit_card mobile_money paypal" example:"cash"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=processing shipped delivered cancelled" example:"shipped"`
	Notes  string `json:"notes,omitempty" validate:"max=500"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending paid failed refunded" example:"paid"`
	TransactionID string `json:"transactionId,omitempty" validate:"max=128"`
}

type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,max=200" example:"Tomatoes"`
	Description string           `json:"description,omitempty" validate:"max=2000"`
	Price       decimal.Decimal  `json:"price" swaggertype:"string" example:"10.00"`
	Quantity    *int             `json:"quantity" validate:"required,gte=0,lte=2147483647" example:"5"`
	Category    string           `json:"category" validate:"required,max=100" example:"vegetables"`
	Image       string           `json:"image,omitempty" validate:"omitempty,url"`
	Location    *LocationRequest `json:"location,omitempty"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price,omitempty" swaggertype:"string"`
	Quantity    *int             `json:"quantity,omitempty" validate:"omitempty,gte=0,lte=2147483647"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Image       *string          `json:"image,omitempty" validate:"omitempty,url"`
	Location    *LocationRequest `json:"location,omitempty"`
}

// responses

type Account struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ProductSummary struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity"`
}

type LineItem struct {
	Product  uuid.UUID `json:"product"`
	Farmer   uuid.UUID `json:"farmer"`
	Name     string    `json:"name"`
	Image    string    `json:"image,omitempty"`
	Price    string    `json:"price" example:"10.00"`
	Quantity int       `json:"quantity"`

	// live catalog data, absent when the product was removed
	Current *ProductSummary `json:"current,omitempty"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode,omitempty"`
}

type StatusChange struct {
	Status    string    `json:"status"`
	ChangedBy uuid.UUID `json:"changedBy"`
	Role      string    `json:"role"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type PaymentChange struct {
	Status        string    `json:"status"`
	ChangedBy     uuid.UUID `json:"changedBy"`
	Role          string    `json:"role"`
	TransactionID string    `json:"transactionId,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type Order struct {
	ID              uuid.UUID       `json:"id"`
	BuyerID         uuid.UUID       `json:"buyerId"`
	Buyer           *Account        `json:"buyer,omitempty"`
	Products        []LineItem      `json:"products"`
	TotalAmount     string          `json:"totalAmount" example:"20.00"`
	ShippingAddress Address         `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"paymentStatus"`
	TransactionID   string          `json:"transactionId,omitempty"`
	StatusHistory   []StatusChange  `json:"statusHistory"`
	PaymentHistory  []PaymentChange `json:"paymentHistory"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type OrderPage struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Product struct {
	ID          uuid.UUID `json:"id"`
	Farmer      uuid.UUID `json:"farmer"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price" example:"10.00"`
	Quantity    int       `json:"quantity"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Location    *Location `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProductPage struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// request -> entity

// CreateOrderJSONToEntity expects a validated request, so ids parse.
func CreateOrderJSONToEntity(req CreateOrderRequest) entities.CreateOrderInput {
	items := make([]entities.OrderItemInput, 0, len(req.Products))
	for _, it := range req.Products {
		items = append(items, entities.OrderItemInput{
			ProductID: uuid.MustParse(it.Product),
			Quantity:  it.Quantity,
		})
	}
	return entities.CreateOrderInput{
		Items: items,
		ShippingAddress: entities.ShippingAddress{
			Street:     req.ShippingAddress.Street,
			City:       req.ShippingAddress.City,
			Country:    req.ShippingAddress.Country,
			PostalCode: req.ShippingAddress.PostalCode,
		},
		PaymentMethod: entities.PaymentMethod(req.PaymentMethod),
	}
}

func (l *LocationRequest) toEntity() *entities.GeoPoint {
	if l == nil || l.Lat == nil || l.Lng == nil {
		return nil
	}
	return &entities.GeoPoint{Latitude: *l.Lat, Longitude: *l.Lng}
}

func CreateProductJSONToEntity(req CreateProductRequest) entities.ProductInput {
	in := entities.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.Image,
		Location:    req.Location.toEntity(),
	}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}
	return in
}

func UpdateProductJSONToEntity(req UpdateProductRequest) entities.ProductPatch {
	return entities.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Category:    req.Category,
		ImageURL:    req.Image,
		Location:    req.Location.toEntity(),
	}
}

// entity -> response

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func PaginationEntityToJSON(p entities.Pagination) Pagination {
	return Pagination{Page: p.Page, Limit: p.Limit, Total: p.Total, Pages: p.Pages}
}

func OrderEntityToJSON(v entities.OrderView) Order {
	items := make([]LineItem, 0, len(v.Items))
	for _, it := range v.Items {
		item := LineItem{
			Product:  it.ProductID,
			Farmer:   it.FarmerID,
			Name:     it.Name,
			Image:    it.ImageURL,
			Price:    money(it.Price),
			Quantity: it.Quantity,
		}
		if p, ok := v.Products[it.ProductID]; ok {
			item.Current = &ProductSummary{Name: p.Name, Price: money(p.Price), Image: p.ImageURL, Quantity: p.Quantity}
		}
		items = append(items, item)
	}

	statuses := make([]StatusChange, 0, len(v.StatusHistory))
	for _, c := range v.StatusHistory {
		statuses = append(statuses, StatusChange{
			Status:    string(c.Status),
			ChangedBy: c.ActorID,
			Role:      string(c.ActorRole),
			Note:      c.Note,
			Timestamp: c.CreatedAt,
		})
	}

	payments := make([]PaymentChange, 0, len(v.PaymentHistory))
	for _, c := range v.PaymentHistory {
		payments = append(payments, PaymentChange{
			Status:        string(c.Status),
			ChangedBy:     c.ActorID,
			Role:          string(c.ActorRole),
			TransactionID: c.TransactionID,
			Timestamp:     c.CreatedAt,
		})
	}

	order := Order{
		ID:          v.ID,
		BuyerID:     v.BuyerID,
		Products:    items,
		TotalAmount: money(v.Total),
		ShippingAddress: Address{
			Street:     v.ShippingAddress.Street,
			City:       v.ShippingAddress.City,
			Country:    v.ShippingAddress.Country,
			PostalCode: v.ShippingAddress.PostalCode,
		},
		PaymentMethod:  string(v.PaymentMethod),
		Status:         string(v.Status),
		PaymentStatus:  string(v.PaymentStatus),
		TransactionID:  v.TransactionID,
		StatusHistory:  statuses,
		PaymentHistory: payments,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
	if v.Buyer != nil {
		order.Buyer = &Account{ID: v.Buyer.ID, Name: v.Buyer.Name, Email: v.Buyer.Email}
	}
	return order
}

func OrderPageEntityToJSON(p entities.OrderPage) OrderPage {
	orders := make([]Order, 0, len(p.Orders))
	for _, o := range p.Orders {
		orders = append(orders, OrderEntityToJSON(o))
	}
	return OrderPage{Orders: orders, Pagination: PaginationEntityToJSON(p.Pagination)}
}

func ProductEntityToJSON(p entities.Product) Product {
	product := Product{
		ID:          p.ID,
		Farmer:      p.FarmerID,
		Name:        p.Name,
		Description: p.Description,
		Price:       money(p.Price),
		Quantity:    p.Quantity,
		Category:    p.Category,
		Image:       p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Location != nil {
		product.Location = &Location{Lat: p.Location.Latitude, Lng: p.Location.Longitude}
	}
	return product
}

func ProductPageEntityToJSON(p entities.ProductPage) ProductPage {
	products := make([]Product, 0, len(p.Products))
	for _, it := range p.Products {
		products = append(products, ProductEntityToJSON(it))
	}
	return ProductPage{Products: products, Pagination: PaginationEntityToJSON(p.Pagination)}
}
