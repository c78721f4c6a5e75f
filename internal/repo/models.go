package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	Contact   string    `db:"contact"`
	FarmName  string    `db:"farm_name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Product struct {
	ID          uuid.UUID       `db:"id"`
	FarmerID    uuid.UUID       `db:"farmer_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Quantity    int             `db:"quantity"`
	Category    string          `db:"category"`
	ImageURL    string          `db:"image_url"`
	Latitude    sql.NullFloat64 `db:"latitude"`
	Longitude   sql.NullFloat64 `db:"longitude"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

type Order struct {
	ID            uuid.UUID       `db:"id"`
	BuyerID       uuid.UUID       `db:"buyer_id"`
	Total         decimal.Decimal `db:"total"`
	Street        string          `db:"street"`
	City          string          `db:"city"`
	Country       string          `db:"country"`
	PostalCode    string          `db:"postal_code"`
	PaymentMethod string          `db:"payment_method"`
	Status        string          `db:"status"`
	PaymentStatus string          `db:"payment_status"`
	TransactionID string          `db:"transaction_id"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}

type Item struct {
	OrderID   uuid.UUID       `db:"order_id"`
	Position  int             `db:"position"`
	ProductID uuid.UUID       `db:"product_id"`
	FarmerID  uuid.UUID       `db:"farmer_id"`
	Name      string          `db:"name"`
	ImageURL  string          `db:"image_url"`
	Price     decimal.Decimal `db:"price"`
	Quantity  int             `db:"quantity"`
}

type StatusChange struct {
	OrderID   uuid.UUID `db:"order_id"`
	Status    string    `db:"status"`
	ActorID   uuid.UUID `db:"actor_id"`
	ActorRole string    `db:"actor_role"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

type PaymentChange struct {
	OrderID       uuid.UUID `db:"order_id"`
	PaymentStatus string    `db:"payment_status"`
	ActorID       uuid.UUID `db:"actor_id"`
	ActorRole     string    `db:"actor_role"`
	TransactionID string    `db:"transaction_id"`
	CreatedAt     time.Time `db:"created_at"`
}

var (
	accountColumns = []string{"id", "name", "email", "role", "contact", "farm_name", "created_at", "updated_at"}
	productColumns = []string{
		"id", "farmer_id", "name", "description", "price", "quantity",
		"category", "image_url", "latitude", "longitude", "created_at", "updated_at",
	}
	orderColumns = []string{
		"id", "buyer_id", "total", "street", "city", "country", "postal_code",
		"payment_method", "status", "payment_status", "transaction_id", "created_at", "updated_at",
	}
	itemColumns    = []string{"order_id", "position", "product_id", "farmer_id", "name", "image_url", "price", "quantity"}
	statusColumns  = []string{"order_id", "status", "actor_id", "actor_role", "note", "created_at"}
	paymentColumns = []string{"order_id", "payment_status", "actor_id", "actor_role", "transaction_id", "created_at"}
)

func AccountToEntity(a Account) entities.Account {
	return entities.Account{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      entities.Role(a.Role),
		Contact:   a.Contact,
		FarmName:  a.FarmName,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func ProductToEntity(p Product) entities.Product {
	product := entities.Product{
		ID:          p.ID,
		FarmerID:    p.FarmerID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Latitude.Valid && p.Longitude.Valid {
		product.Location = &entities.GeoPoint{Latitude: p.Latitude.Float64, Longitude: p.Longitude.Float64}
	}
	return product
}

func ItemToEntity(i Item) entities.LineItem {
	return entities.LineItem{
		ProductID: i.ProductID,
		FarmerID:  i.FarmerID,
		Name:      i.Name,
		ImageURL:  i.ImageURL,
		Price:     i.Price,
		Quantity:  i.Quantity,
	}
}

func StatusChangeToEntity(s StatusChange) entities.StatusChange {
	return entities.StatusChange{
		Status:    entities.OrderStatus(s.Status),
		ActorID:   s.ActorID,
		ActorRole: entities.Role(s.ActorRole),
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}

func PaymentChangeToEntity(p PaymentChange) entities.PaymentChange {
	return entities.PaymentChange{
		Status:        entities.PaymentStatus(p.PaymentStatus),
		ActorID:       p.ActorID,
		ActorRole:     entities.Role(p.ActorRole),
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}

func OrderToEntity(o Order, items []Item, statuses []StatusChange, payments []PaymentChange) entities.Order {
	order := entities.Order{
		ID:      o.ID,
		BuyerID: o.BuyerID,
		Total:   o.Total,
		ShippingAddress: entities.ShippingAddress{
			Street:     o.Street,
			City:       o.City,
			Country:    o.Country,
			PostalCode: o.PostalCode,
		},
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		Status:        entities.OrderStatus(o.Status),
		PaymentStatus: entities.PaymentStatus(o.PaymentStatus),
		TransactionID: o.TransactionID,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	order.Items = make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}
	order.StatusHistory = make([]entities.StatusChange, 0, len(statuses))
	for _, s := range statuses {
		order.StatusHistory = append(order.StatusHistory, StatusChangeToEntity(s))
	}
	order.PaymentHistory = make([]entities.PaymentChange, 0, len(payments))
	for _, p := range payments {
		order.PaymentHistory = append(order.PaymentHistory, PaymentChangeToEntity(p))
	}
	return order
}

func latitude(loc *entities.GeoPoint) sql.NullFloat64 {
	if loc == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: loc.Latitude, Valid: true}
}

func longitude(loc *entities.GeoPoint) sql.NullFloat64 {
	if loc == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: loc.Longitude, Valid: true}
}
