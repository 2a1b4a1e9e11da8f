package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service defines catalog business logic.
type Service interface {
	CreateMaterial(ctx context.Context, req MaterialRequest) (*Material, error)
	GetMaterial(ctx context.Context, id string) (*Material, error)
	ListMaterials(ctx context.Context, availableOnly bool) ([]*Material, error)
	UpdateMaterial(ctx context.Context, id string, req MaterialRequest) (*Material, error)
}

// MaterialRequest holds the data for creating or updating a material.
type MaterialRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PricePerSqm float64 `json:"price_per_sqm"`
	Available   *bool   `json:"available,omitempty"`
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateMaterial(ctx context.Context, req MaterialRequest) (*Material, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if req.PricePerSqm <= 0 {
		return nil, fmt.Errorf("price_per_sqm must be greater than 0")
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	m := &Material{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		PricePerSqm: req.PricePerSqm,
		Available:   available,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) GetMaterial(ctx context.Context, id string) (*Material, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListMaterials(ctx context.Context, availableOnly bool) ([]*Material, error) {
	return s.repo.List(ctx, availableOnly)
}

func (s *service) UpdateMaterial(ctx context.Context, id string, req MaterialRequest) (*Material, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		m.Name = req.Name
	}
	if req.Description != "" {
		m.Description = req.Description
	}
	if req.PricePerSqm != 0 {
		if req.PricePerSqm < 0 {
			return nil, fmt.Errorf("price_per_sqm must be greater than 0")
		}
		m.PricePerSqm = req.PricePerSqm
	}
	if req.Available != nil {
		m.Available = *req.Available
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
