package review

import (
	"time"

	"github.com/google/uuid"
)

// MaxPhotos caps how many photo URLs a single review may carry.
const MaxPhotos = 5

// Review is a customer's rating of a completed order. The overall rating is
// mandatory; quality, service, and delivery ratings are optional, as is the
// written text. Each order can be reviewed once.
type Review struct {
	ID             uuid.UUID `json:"id"`
	OrderID        uuid.UUID `json:"order_id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	OverallRating  int       `json:"overall_rating"` // 1-5
	QualityRating  *int      `json:"quality_rating,omitempty"`
	ServiceRating  *int      `json:"service_rating,omitempty"`
	DeliveryRating *int      `json:"delivery_rating,omitempty"`
	ReviewText     string    `json:"review_text,omitempty"`
	Photos         []string  `json:"photos"`
	CreatedAt      time.Time `json:"created_at"`
}

// PostReviewRequest is the payload for reviewing an order. Photos are URLs of
// previously uploaded files.
type PostReviewRequest struct {
	OverallRating  int      `json:"overall_rating"`
	QualityRating  *int     `json:"quality_rating,omitempty"`
	ServiceRating  *int     `json:"service_rating,omitempty"`
	DeliveryRating *int     `json:"delivery_rating,omitempty"`
	ReviewText     string   `json:"review_text,omitempty"`
	Photos         []string `json:"photos,omitempty"`
}
