package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	OrderCreated        = "order.created"
	OrderStatusChanged  = "order.status_changed"
	OrderCancelled      = "order.cancelled"
	OrderPaymentUpdated = "order.payment_updated"
	OrderDeleted        = "order.deleted"
)

type Envelope struct {
	EventID    uuid.UUID       `json:"event_id"`
	EventType  string          `json:"event_type"`
	OccurredAt time.Time       `json:"occurred_at"`
	Producer   string          `json:"producer"`
	OrderID    uuid.UUID       `json:"order_id"`
	Payload    json.RawMessage `json:"payload"`
}

type ItemQty struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type LineItem struct {
	ProductID uuid.UUID `json:"product_id"`
	FarmerID  uuid.UUID `json:"farmer_id"`
	Quantity  int       `json:"quantity"`
	Price     string    `json:"price"`
}

type OrderCreatedPayload struct {
	BuyerID       uuid.UUID  `json:"buyer_id"`
	Total         string     `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	Items         []LineItem `json:"items"`
}

type StatusChangedPayload struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	ActorID   uuid.UUID `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Note      string    `json:"note,omitempty"`
}

type OrderCancelledPayload struct {
	From      string    `json:"from"`
	ActorID   uuid.UUID `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Reason    string    `json:"reason,omitempty"`
	Restocked []ItemQty `json:"restocked"`
}

type PaymentUpdatedPayload struct {
	From          string    `json:"from"`
	To            string    `json:"to"`
	TransactionID string    `json:"transaction_id,omitempty"`
	ActorID       uuid.UUID `json:"actor_id"`
	ActorRole     string    `json:"actor_role"`
}

type OrderDeletedPayload struct {
	ActorID uuid.UUID `json:"actor_id"`
}
