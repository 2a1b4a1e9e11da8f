package order

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const orderColumns = `id, order_number, customer_id, width, height, quantity, material_id,
	design_notes, file_url, file_name, template_id, total_price,
	is_paid, payment_method, payment_reference, status, created_at, updated_at`

func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders
		  (id, order_number, customer_id, width, height, quantity, material_id,
		   design_notes, file_url, file_name, template_id, total_price,
		   is_paid, payment_method, payment_reference, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		o.ID, o.OrderNumber, o.CustomerID, o.Width, o.Height, o.Quantity, o.MaterialID,
		o.DesignNotes, o.FileURL, o.FileName, o.TemplateID, o.TotalPrice,
		o.IsPaid, o.PaymentMethod, o.PaymentReference, o.Status)
	return err
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, parsedID))
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return scanOrder(r.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_number = $1`, orderNumber))
}

func (r *postgresRepo) ListOrders(ctx context.Context, status string) ([]*Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	return r.queryOrders(ctx, query, args...)
}

func (r *postgresRepo) ListOrdersByCustomer(ctx context.Context, customerID string) ([]*Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`,
		customerID)
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	return err
}

func (r *postgresRepo) UpdatePayment(ctx context.Context, id string, isPaid bool, method, reference string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET is_paid = $1, payment_method = $2, payment_reference = $3, updated_at = $4
		WHERE id = $5`,
		isPaid, method, reference, time.Now(), id)
	return err
}

// ── helpers ──────────────────────────────────────────────────────────────────

func scanOrder(row *sql.Row) (*Order, error) {
	o := &Order{}
	var designNotes, fileURL, fileName, paymentMethod, paymentReference sql.NullString
	var templateID sql.NullString
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.CustomerID, &o.Width, &o.Height, &o.Quantity, &o.MaterialID,
		&designNotes, &fileURL, &fileName, &templateID, &o.TotalPrice,
		&o.IsPaid, &paymentMethod, &paymentReference, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	applyNullables(o, designNotes, fileURL, fileName, paymentMethod, paymentReference, templateID)
	return o, nil
}

func (r *postgresRepo) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		var designNotes, fileURL, fileName, paymentMethod, paymentReference sql.NullString
		var templateID sql.NullString
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerID, &o.Width, &o.Height, &o.Quantity, &o.MaterialID,
			&designNotes, &fileURL, &fileName, &templateID, &o.TotalPrice,
			&o.IsPaid, &paymentMethod, &paymentReference, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		applyNullables(o, designNotes, fileURL, fileName, paymentMethod, paymentReference, templateID)
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func applyNullables(o *Order, designNotes, fileURL, fileName, paymentMethod, paymentReference, templateID sql.NullString) {
	o.DesignNotes = designNotes.String
	o.FileURL = fileURL.String
	o.FileName = fileName.String
	o.PaymentMethod = paymentMethod.String
	o.PaymentReference = paymentReference.String
	if templateID.Valid {
		tid, err := uuid.Parse(templateID.String)
		if err == nil {
			o.TemplateID = &tid
		}
	}
}
