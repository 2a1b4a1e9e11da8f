package report

import (
	"time"

	"github.com/google/uuid"
)

// ReportType labels the report; it does not change how the range is scanned.
type ReportType string

const (
	TypeDaily   ReportType = "daily"
	TypeWeekly  ReportType = "weekly"
	TypeMonthly ReportType = "monthly"
)

// ParseReportType validates a raw report type string.
func ParseReportType(raw string) (ReportType, bool) {
	switch ReportType(raw) {
	case TypeDaily, TypeWeekly, TypeMonthly:
		return ReportType(raw), true
	}
	return "", false
}

// PopularMaterial is one row of the top-materials breakdown.
type PopularMaterial struct {
	MaterialID string `json:"material_id"`
	Name       string `json:"name"`
	Count      int    `json:"count"`
}

// SalesReport is a point-in-time aggregate snapshot over a date range of
// orders. Once generated it is never recomputed in place.
type SalesReport struct {
	ID                      uuid.UUID         `json:"id"`
	ReportType              ReportType        `json:"report_type"`
	StartDate               time.Time         `json:"start_date"`
	EndDate                 time.Time         `json:"end_date"`
	TotalOrders             int               `json:"total_orders"`
	TotalRevenue            float64           `json:"total_revenue"`
	TotalCustomers          int               `json:"total_customers"`
	PopularMaterials        []PopularMaterial `json:"popular_materials"`
	PaymentMethodsBreakdown map[string]int    `json:"payment_methods_breakdown"`
	GeneratedBy             *uuid.UUID        `json:"generated_by,omitempty"`
	CreatedAt               time.Time         `json:"created_at"`
}

// GenerateRequest is the payload for producing a new report.
type GenerateRequest struct {
	ReportType string `json:"report_type"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
}

// OrderRow is the slice of an order the aggregation needs.
type OrderRow struct {
	CustomerID    string
	MaterialID    string
	MaterialName  string
	TotalPrice    float64
	PaymentMethod string
	IsPaid        bool
}
