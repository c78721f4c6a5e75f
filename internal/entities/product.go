package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

func (p GeoPoint) Validate() error {
	if fields := validateLocation(&p); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

type Product struct {
	ID          uuid.UUID
	FarmerID    uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Category    string
	ImageURL    string
	Location    *GeoPoint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Product) Summary() ProductSummary {
	return ProductSummary{ID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL, Quantity: p.Quantity}
}

// ProductSummary is the live product data shown next to an order line.
type ProductSummary struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	ImageURL string
	Quantity int
}

type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Category    string
	ImageURL    string
	Location    *GeoPoint
}

func (in ProductInput) Validate() error {
	var fields []FieldError
	if in.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "product name is required"})
	}
	if in.Price.IsNegative() {
		fields = append(fields, FieldError{Field: "price", Message: "price must be a positive number"})
	}
	fields = append(fields, validateStock(in.Quantity)...)
	if in.Category == "" {
		fields = append(fields, FieldError{Field: "category", Message: "category is required"})
	}
	fields = append(fields, validateLocation(in.Location)...)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ProductPatch carries partial updates; nil fields are left untouched.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
	Category    *string
	ImageURL    *string
	Location    *GeoPoint
}

func (p ProductPatch) Validate() error {
	var fields []FieldError
	if p.Name != nil && *p.Name == "" {
		fields = append(fields, FieldError{Field: "name", Message: "product name cannot be empty"})
	}
	if p.Price != nil && p.Price.IsNegative() {
		fields = append(fields, FieldError{Field: "price", Message: "price must be a positive number"})
	}
	if p.Quantity != nil {
		fields = append(fields, validateStock(*p.Quantity)...)
	}
	if p.Category != nil && *p.Category == "" {
		fields = append(fields, FieldError{Field: "category", Message: "category cannot be empty"})
	}
	fields = append(fields, validateLocation(p.Location)...)
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Quantity != nil {
		product.Quantity = *p.Quantity
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
	if p.ImageURL != nil {
		product.ImageURL = *p.ImageURL
	}
	if p.Location != nil {
		loc := *p.Location
		product.Location = &loc
	}
}

const DefaultSearchRadiusKm = 50

type ProductFilter struct {
	Category string
	FarmerID uuid.UUID
	Search   string
	Near     *GeoPoint
	RadiusKm float64
	Page     int
	Limit    int
}

func (f ProductFilter) Normalize() ProductFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	if f.Near != nil && f.RadiusKm <= 0 {
		f.RadiusKm = DefaultSearchRadiusKm
	}
	return f
}

func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type ProductPage struct {
	Products   []Product
	Pagination Pagination
}

func validateStock(quantity int) []FieldError {
	switch {
	case quantity < 0:
		return []FieldError{{Field: "quantity", Message: "quantity must be a positive integer"}}
	case quantity > MaxItemQuantity:
		return []FieldError{{Field: "quantity", Message: fmt.Sprintf("quantity must be at most %d", MaxItemQuantity)}}
	}
	return nil
}

func validateLocation(loc *GeoPoint) []FieldError {
	if loc == nil {
		return nil
	}
	var fields []FieldError
	if loc.Latitude < -90 || loc.Latitude > 90 {
		fields = append(fields, FieldError{Field: "lat", Message: "invalid latitude value"})
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		fields = append(fields, FieldError{Field: "lng", Message: "invalid longitude value"})
	}
	return fields
}
