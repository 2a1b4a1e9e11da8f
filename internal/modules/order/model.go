package order

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an order. Exactly five values are
// valid; anything else is rejected at the boundary.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusPrinted    Status = "printed"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPending, StatusProcessing, StatusPrinted, StatusCompleted, StatusCancelled:
		return Status(raw), true
	}
	return "", false
}

// Order is a customer's request for printed tarpaulin: dimensions, quantity,
// material, a design source (uploaded file or gallery template, never both),
// and a price snapshot taken at creation time.
type Order struct {
	ID               uuid.UUID  `json:"id"`
	OrderNumber      string     `json:"order_number"`
	CustomerID       uuid.UUID  `json:"customer_id"`
	Width            float64    `json:"width"`  // meters
	Height           float64    `json:"height"` // meters
	Quantity         int        `json:"quantity"`
	MaterialID       uuid.UUID  `json:"material_id"`
	DesignNotes      string     `json:"design_notes,omitempty"`
	FileURL          string     `json:"file_url,omitempty"`
	FileName         string     `json:"file_name,omitempty"`
	TemplateID       *uuid.UUID `json:"template_id,omitempty"`
	TotalPrice       float64    `json:"total_price"`
	IsPaid           bool       `json:"is_paid"`
	PaymentMethod    string     `json:"payment_method,omitempty"`
	PaymentReference string     `json:"payment_reference,omitempty"`
	Status           Status     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// PlaceOrderRequest is the payload for creating a new order.
type PlaceOrderRequest struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Quantity      int     `json:"quantity"`
	MaterialID    string  `json:"material_id"`
	DesignNotes   string  `json:"design_notes,omitempty"`
	FileURL       string  `json:"file_url,omitempty"`
	FileName      string  `json:"file_name,omitempty"`
	TemplateID    string  `json:"template_id,omitempty"`
	PaymentMethod string  `json:"payment_method"`

	// ExpectedTotal is the price the client displayed. When non-zero it must
	// match the server-computed total to the centavo.
	ExpectedTotal float64 `json:"expected_total,omitempty"`
}

// UpdateStatusRequest is the payload for moving an order through its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// MarkPaidRequest is the payload for settling or unsettling an order.
type MarkPaidRequest struct {
	IsPaid           bool   `json:"is_paid"`
	PaymentMethod    string `json:"payment_method,omitempty"`
	PaymentReference string `json:"payment_reference,omitempty"`
}
