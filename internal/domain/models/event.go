package models

import (
	"time"

	"github.com/google/uuid"
)

type Event interface {
	UUID() string
}

// OrderPlaced is published after the placement function reports success.
// Delivery is best-effort; losing an event never fails the checkout.
type OrderPlaced struct {
	EventUUID   uuid.UUID `json:"event_uuid"`
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	PaymentID   string    `json:"payment_id"`
	PaymentType string    `json:"payment_type"`
	PlacedAt    time.Time `json:"placed_at"`
}

func (e *OrderPlaced) UUID() string {
	return e.EventUUID.String()
}
