package template

import (
	"time"

	"github.com/google/uuid"
)

// Template is a ready-made design a customer can pick instead of uploading
// a file. PriceModifier is a flat per-unit surcharge added on top of the
// material price.
type Template struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category,omitempty"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	PriceModifier float64   `json:"price_modifier"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
