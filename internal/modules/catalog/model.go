package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Material is a printable substrate priced per square meter. Reference data:
// the ordering flow only ever reads it.
type Material struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PricePerSqm float64   `json:"price_per_sqm"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
