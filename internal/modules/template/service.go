package template

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines template gallery business logic.
type Service interface {
	CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*Template, error)
	GetTemplate(ctx context.Context, id string) (*Template, error)
	ListTemplates(ctx context.Context, category string, activeOnly bool) ([]*Template, error)
}

// CreateTemplateRequest holds the data for adding a gallery template.
type CreateTemplateRequest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	PriceModifier float64 `json:"price_modifier"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*Template, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.PriceModifier < 0 {
		return nil, fmt.Errorf("price_modifier cannot be negative")
	}
	t := &Template{
		ID:            uuid.New(),
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		PriceModifier: req.PriceModifier,
		IsActive:      true,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetTemplate(ctx context.Context, id string) (*Template, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListTemplates(ctx context.Context, category string, activeOnly bool) ([]*Template, error) {
	return s.repo.List(ctx, category, activeOnly)
}
