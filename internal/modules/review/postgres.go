package review

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL review repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, rev *Review) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reviews
		  (id, order_id, customer_id, overall_rating, quality_rating,
		   service_rating, delivery_rating, review_text, photos)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rev.ID, rev.OrderID, rev.CustomerID, rev.OverallRating, rev.QualityRating,
		rev.ServiceRating, rev.DeliveryRating, nullableText(rev.ReviewText), pq.Array(rev.Photos))
	return err
}

func (r *postgresRepo) ListByOrder(ctx context.Context, orderID string) ([]*Review, error) {
	parsedID, err := uuid.Parse(orderID)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, customer_id, overall_rating, quality_rating,
		       service_rating, delivery_rating, review_text, photos, created_at
		FROM reviews WHERE order_id = $1 ORDER BY created_at DESC`, parsedID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []*Review
	for rows.Next() {
		rev := &Review{}
		var quality, service, delivery sql.NullInt64
		var text sql.NullString
		var photos pq.StringArray
		if err := rows.Scan(&rev.ID, &rev.OrderID, &rev.CustomerID, &rev.OverallRating,
			&quality, &service, &delivery, &text, &photos, &rev.CreatedAt); err != nil {
			return nil, err
		}
		rev.QualityRating = intPtr(quality)
		rev.ServiceRating = intPtr(service)
		rev.DeliveryRating = intPtr(delivery)
		rev.ReviewText = text.String
		rev.Photos = photos
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func nullableText(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
