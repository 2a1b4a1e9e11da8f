package report

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL sales report repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) OrdersInRange(ctx context.Context, start, end time.Time) ([]OrderRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.customer_id, o.material_id, m.name, o.total_price, o.payment_method, o.is_paid
		FROM orders o
		JOIN materials m ON m.id = o.material_id
		WHERE o.created_at >= $1 AND o.created_at <= $2`,
		start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []OrderRow
	for rows.Next() {
		var row OrderRow
		var method sql.NullString
		if err := rows.Scan(&row.CustomerID, &row.MaterialID, &row.MaterialName,
			&row.TotalPrice, &method, &row.IsPaid); err != nil {
			return nil, err
		}
		row.PaymentMethod = method.String
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Insert(ctx context.Context, rep *SalesReport) error {
	popular, err := json.Marshal(rep.PopularMaterials)
	if err != nil {
		return err
	}
	breakdown, err := json.Marshal(rep.PaymentMethodsBreakdown)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sales_reports
		  (id, report_type, start_date, end_date, total_orders, total_revenue,
		   total_customers, popular_materials, payment_methods_breakdown, generated_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		rep.ID, rep.ReportType, rep.StartDate, rep.EndDate, rep.TotalOrders, rep.TotalRevenue,
		rep.TotalCustomers, popular, breakdown, rep.GeneratedBy)
	return err
}

func (r *postgresRepo) List(ctx context.Context) ([]*SalesReport, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, report_type, start_date, end_date, total_orders, total_revenue,
		       total_customers, popular_materials, payment_methods_breakdown, generated_by, created_at
		FROM sales_reports ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*SalesReport
	for rows.Next() {
		rep := &SalesReport{}
		var popular, breakdown []byte
		var generatedBy sql.NullString
		if err := rows.Scan(&rep.ID, &rep.ReportType, &rep.StartDate, &rep.EndDate,
			&rep.TotalOrders, &rep.TotalRevenue, &rep.TotalCustomers,
			&popular, &breakdown, &generatedBy, &rep.CreatedAt); err != nil {
			return nil, err
		}
		if len(popular) > 0 {
			if err := json.Unmarshal(popular, &rep.PopularMaterials); err != nil {
				return nil, err
			}
		}
		if len(breakdown) > 0 {
			if err := json.Unmarshal(breakdown, &rep.PaymentMethodsBreakdown); err != nil {
				return nil, err
			}
		}
		if generatedBy.Valid {
			uid, err := uuid.Parse(generatedBy.String)
			if err == nil {
				rep.GeneratedBy = &uid
			}
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}
