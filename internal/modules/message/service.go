package message

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service defines order message business logic.
type Service interface {
	// Post adds a message to an order's thread.
	Post(ctx context.Context, orderID, senderID uuid.UUID, content string) (*Message, error)

	// ListByOrder returns an order's thread oldest-first.
	ListByOrder(ctx context.Context, orderID string) ([]*Message, error)
}

type service struct {
	repo Repository
}

// NewService creates a new message service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Post(ctx context.Context, orderID, senderID uuid.UUID, content string) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	m := &Message{
		ID:       uuid.New(),
		OrderID:  orderID,
		SenderID: senderID,
		Content:  content,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to post message: %w", err)
	}
	return m, nil
}

func (s *service) ListByOrder(ctx context.Context, orderID string) ([]*Message, error) {
	return s.repo.ListByOrder(ctx, orderID)
}
