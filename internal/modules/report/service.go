package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Service defines sales report business logic.
type Service interface {
	// Generate scans orders in the requested range, computes the aggregate
	// snapshot, persists it, and returns it. An empty range yields zeroed
	// totals and empty breakdowns, not an error.
	Generate(ctx context.Context, generatedBy *uuid.UUID, req GenerateRequest) (*SalesReport, error)

	// List returns previously generated reports newest-first.
	List(ctx context.Context) ([]*SalesReport, error)
}

type service struct {
	repo Repository
}

// NewService creates a new report service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Generate(ctx context.Context, generatedBy *uuid.UUID, req GenerateRequest) (*SalesReport, error) {
	reportType, ok := ParseReportType(req.ReportType)
	if !ok {
		return nil, fmt.Errorf("invalid report_type: %s", req.ReportType)
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start_date, expected YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end_date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end_date must not be before start_date")
	}
	// inclusive end of day
	end = end.Add(24*time.Hour - time.Nanosecond)

	rows, err := s.repo.OrdersInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}

	// ── Aggregate in memory ───────────────────────────────────────────────────
	var revenue float64
	customers := map[string]bool{}
	materialCounts := map[string]*PopularMaterial{}
	paymentBreakdown := map[string]int{}

	for _, row := range rows {
		revenue += row.TotalPrice
		customers[row.CustomerID] = true

		pm, ok := materialCounts[row.MaterialID]
		if !ok {
			pm = &PopularMaterial{MaterialID: row.MaterialID, Name: row.MaterialName}
			materialCounts[row.MaterialID] = pm
		}
		pm.Count++

		method := row.PaymentMethod
		if method == "" {
			method = "Not Specified"
		}
		paymentBreakdown[method]++
	}

	popular := make([]PopularMaterial, 0, len(materialCounts))
	for _, pm := range materialCounts {
		popular = append(popular, *pm)
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].Count != popular[j].Count {
			return popular[i].Count > popular[j].Count
		}
		return popular[i].Name < popular[j].Name
	})
	if len(popular) > 5 {
		popular = popular[:5]
	}

	r := &SalesReport{
		ID:                      uuid.New(),
		ReportType:              reportType,
		StartDate:               start,
		EndDate:                 end,
		TotalOrders:             len(rows),
		TotalRevenue:            revenue,
		TotalCustomers:          len(customers),
		PopularMaterials:        popular,
		PaymentMethodsBreakdown: paymentBreakdown,
		GeneratedBy:             generatedBy,
	}
	if err := s.repo.Insert(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to persist report: %w", err)
	}
	return r, nil
}

func (s *service) List(ctx context.Context) ([]*SalesReport, error) {
	return s.repo.List(ctx)
}
