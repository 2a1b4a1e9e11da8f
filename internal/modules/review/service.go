package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/georgemunganga/tarpa-backend/internal/modules/audit"
	"github.com/georgemunganga/tarpa-backend/internal/modules/order"
	"github.com/google/uuid"
)

// Service defines order review business logic.
type Service interface {
	// Post records a customer's review of their own completed order.
	Post(ctx context.Context, orderID string, customerID uuid.UUID, req PostReviewRequest) (*Review, error)

	// ListByOrder returns an order's reviews newest-first.
	ListByOrder(ctx context.Context, orderID string) ([]*Review, error)
}

type service struct {
	repo     Repository
	orders   order.Service
	recorder audit.Recorder
}

// NewService creates a new review service.
func NewService(repo Repository, orders order.Service, recorder audit.Recorder) Service {
	return &service{repo: repo, orders: orders, recorder: recorder}
}

func (s *service) Post(ctx context.Context, orderID string, customerID uuid.UUID, req PostReviewRequest) (*Review, error) {
	o, err := s.orders.GetOrder(ctx, orderID)
	if err != nil || o.CustomerID != customerID {
		// same answer for a foreign order as for a nonexistent one
		return nil, fmt.Errorf("order not found")
	}
	if o.Status != order.StatusCompleted {
		return nil, fmt.Errorf("only completed orders can be reviewed")
	}

	if req.OverallRating < 1 || req.OverallRating > 5 {
		return nil, fmt.Errorf("overall_rating must be between 1 and 5")
	}
	for name, rating := range map[string]*int{
		"quality_rating":  req.QualityRating,
		"service_rating":  req.ServiceRating,
		"delivery_rating": req.DeliveryRating,
	} {
		if rating != nil && (*rating < 1 || *rating > 5) {
			return nil, fmt.Errorf("%s must be between 1 and 5", name)
		}
	}
	if len(req.Photos) > MaxPhotos {
		return nil, fmt.Errorf("a review can carry at most %d photos", MaxPhotos)
	}

	existing, err := s.repo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing reviews: %w", err)
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("order has already been reviewed")
	}

	photos := req.Photos
	if photos == nil {
		photos = []string{}
	}
	rev := &Review{
		ID:             uuid.New(),
		OrderID:        o.ID,
		CustomerID:     customerID,
		OverallRating:  req.OverallRating,
		QualityRating:  req.QualityRating,
		ServiceRating:  req.ServiceRating,
		DeliveryRating: req.DeliveryRating,
		ReviewText:     strings.TrimSpace(req.ReviewText),
		Photos:         photos,
	}
	if err := s.repo.Create(ctx, rev); err != nil {
		return nil, fmt.Errorf("failed to post review: %w", err)
	}
	s.recorder.Record(ctx, audit.ActionCreate, "reviews", rev.ID.String(), nil, rev)
	return rev, nil
}

func (s *service) ListByOrder(ctx context.Context, orderID string) ([]*Review, error) {
	return s.repo.ListByOrder(ctx, orderID)
}
