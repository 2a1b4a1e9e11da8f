package message

import (
	"time"

	"github.com/google/uuid"
)

// Message is one entry in an order's conversation thread between the
// customer and the shop.
type Message struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
