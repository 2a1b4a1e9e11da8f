package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/georgemunganga/tarpa-backend/internal/modules/audit"
	"github.com/georgemunganga/tarpa-backend/internal/modules/catalog"
	"github.com/georgemunganga/tarpa-backend/internal/modules/payment"
	"github.com/georgemunganga/tarpa-backend/internal/modules/template"
	"github.com/google/uuid"
)

// Service defines the order lifecycle business logic.
type Service interface {
	// PlaceOrder validates the specification, recomputes the price from the
	// catalog, runs the payment flow, and persists the order as pending.
	PlaceOrder(ctx context.Context, customerID uuid.UUID, req PlaceOrderRequest) (*Order, error)

	// GetOrder retrieves an order by UUID.
	GetOrder(ctx context.Context, id string) (*Order, error)

	// GetOrderByNumber retrieves an order by its human-readable number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// ListOrders returns all orders for the back office, optionally filtered
	// by status.
	ListOrders(ctx context.Context, status string) ([]*Order, error)

	// ListCustomerOrders returns all orders placed by a customer.
	ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error)

	// UpdateStatus moves an order along the guarded lifecycle.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error)

	// MarkPaid updates the payment flag, method, and reference.
	MarkPaid(ctx context.Context, id string, req MarkPaidRequest) (*Order, error)

	// CancelOrder cancels a pending or processing order.
	CancelOrder(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	materials catalog.Service
	templates template.Service
	payments  payment.Service
	recorder  audit.Recorder
}

// NewService creates a new order service.
func NewService(repo Repository, materials catalog.Service, templates template.Service, payments payment.Service, recorder audit.Recorder) Service {
	return &service{repo: repo, materials: materials, templates: templates, payments: payments, recorder: recorder}
}

// validTransitions defines the allowed status state machine. "printed" is an
// optional stage: processing may complete directly.
var validTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusPrinted, StatusCompleted, StatusCancelled},
	StatusPrinted:    {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func (s *service) PlaceOrder(ctx context.Context, customerID uuid.UUID, req PlaceOrderRequest) (*Order, error) {
	if req.MaterialID == "" {
		return nil, fmt.Errorf("material_id is required")
	}
	hasFile := req.FileURL != ""
	hasTemplate := req.TemplateID != ""
	if hasFile && hasTemplate {
		return nil, fmt.Errorf("invalid design source: provide either a file or a template, not both")
	}
	if !hasFile && !hasTemplate {
		return nil, fmt.Errorf("a design file or a template is required")
	}

	material, err := s.materials.GetMaterial(ctx, req.MaterialID)
	if err != nil {
		return nil, fmt.Errorf("material not found")
	}
	if !material.Available {
		return nil, fmt.Errorf("material %s is currently unavailable", material.Name)
	}

	// ── Recompute the price server-side ───────────────────────────────────────
	var total float64
	var templateID *uuid.UUID
	if hasTemplate {
		t, err := s.templates.GetTemplate(ctx, req.TemplateID)
		if err != nil {
			return nil, fmt.Errorf("template not found")
		}
		if !t.IsActive {
			return nil, fmt.Errorf("template %s is currently unavailable", t.Name)
		}
		total, err = QuoteWithTemplate(req.Width, req.Height, req.Quantity, material.PricePerSqm, t.PriceModifier)
		if err != nil {
			return nil, err
		}
		templateID = &t.ID
	} else {
		total, err = Quote(req.Width, req.Height, req.Quantity, material.PricePerSqm)
		if err != nil {
			return nil, err
		}
	}
	total = round2(total)

	// The stored total is a snapshot; if the client showed a different price,
	// fail loudly instead of silently persisting either figure.
	if req.ExpectedTotal != 0 && abs(req.ExpectedTotal-total) > 0.01 {
		return nil, fmt.Errorf("invalid expected_total: server computed %.2f", total)
	}

	method, ok := payment.ParseMethod(strings.ToLower(req.PaymentMethod))
	if !ok {
		return nil, fmt.Errorf("invalid payment_method: %s", req.PaymentMethod)
	}

	o := &Order{
		ID:          uuid.New(),
		OrderNumber: generateOrderNumber(),
		CustomerID:  customerID,
		Width:       req.Width,
		Height:      req.Height,
		Quantity:    req.Quantity,
		MaterialID:  material.ID,
		DesignNotes: req.DesignNotes,
		FileURL:     req.FileURL,
		FileName:    req.FileName,
		TemplateID:  templateID,
		TotalPrice:  total,
		Status:      StatusPending,
	}

	// ── Payment flow ──────────────────────────────────────────────────────────
	// COD leaves the order unpaid; every other method goes through its
	// gateway and the order is created already settled.
	result, err := s.payments.Charge(ctx, method, &payment.ChargeRequest{
		OrderNumber: o.OrderNumber,
		Amount:      total,
		Description: fmt.Sprintf("%dx %s tarpaulin %gx%gm", o.Quantity, material.Name, o.Width, o.Height),
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}
	o.IsPaid = result.Paid
	o.PaymentMethod = string(method)
	o.PaymentReference = result.Reference

	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	s.recorder.Record(ctx, audit.ActionCreate, "orders", o.ID.String(), nil, o)
	return o, nil
}

func (s *service) GetOrder(ctx context.Context, id string) (*Order, error) {
	return s.repo.GetOrderByID(ctx, id)
}

func (s *service) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return s.repo.GetOrderByNumber(ctx, orderNumber)
}

func (s *service) ListOrders(ctx context.Context, status string) ([]*Order, error) {
	if status != "" {
		if _, ok := ParseStatus(status); !ok {
			return nil, fmt.Errorf("invalid status filter: %s", status)
		}
	}
	return s.repo.ListOrders(ctx, status)
}

func (s *service) ListCustomerOrders(ctx context.Context, customerID string) ([]*Order, error) {
	return s.repo.ListOrdersByCustomer(ctx, customerID)
}

func (s *service) UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	newStatus, ok := ParseStatus(strings.ToLower(req.Status))
	if !ok {
		return nil, fmt.Errorf("invalid status: %s", req.Status)
	}

	allowed := false
	for _, next := range validTransitions[o.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, newStatus)
	}

	if err := s.repo.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, audit.ActionUpdate, "orders", o.ID.String(),
		map[string]string{"status": string(o.Status)},
		map[string]string{"status": string(newStatus)})
	o.Status = newStatus
	o.UpdatedAt = time.Now()
	return o, nil
}

func (s *service) MarkPaid(ctx context.Context, id string, req MarkPaidRequest) (*Order, error) {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}

	method := o.PaymentMethod
	if req.PaymentMethod != "" {
		m, ok := payment.ParseMethod(strings.ToLower(req.PaymentMethod))
		if !ok {
			return nil, fmt.Errorf("invalid payment_method: %s", req.PaymentMethod)
		}
		method = string(m)
	}
	if req.IsPaid && method == "" {
		return nil, fmt.Errorf("payment_method is required when marking an order paid")
	}

	if err := s.repo.UpdatePayment(ctx, id, req.IsPaid, method, req.PaymentReference); err != nil {
		return nil, err
	}
	s.recorder.Record(ctx, audit.ActionUpdate, "orders", o.ID.String(),
		map[string]interface{}{"is_paid": o.IsPaid, "payment_method": o.PaymentMethod, "payment_reference": o.PaymentReference},
		map[string]interface{}{"is_paid": req.IsPaid, "payment_method": method, "payment_reference": req.PaymentReference})
	o.IsPaid = req.IsPaid
	o.PaymentMethod = method
	o.PaymentReference = req.PaymentReference
	o.UpdatedAt = time.Now()
	return o, nil
}

func (s *service) CancelOrder(ctx context.Context, id string) error {
	o, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		return fmt.Errorf("order not found: %w", err)
	}
	if o.Status != StatusPending && o.Status != StatusProcessing {
		return fmt.Errorf("only pending or processing orders can be cancelled (current: %s)", o.Status)
	}
	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return err
	}
	s.recorder.Record(ctx, audit.ActionUpdate, "orders", o.ID.String(),
		map[string]string{"status": string(o.Status)},
		map[string]string{"status": string(StatusCancelled)})
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// generateOrderNumber creates a human-readable order number: TP-YYMMDD-XXXX.
// The suffix is probabilistic, not a uniqueness guarantee; the orders table
// carries a unique index on order_number as the backstop.
func generateOrderNumber() string {
	date := time.Now().UTC().Format("060102")
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return fmt.Sprintf("TP-%s-%s", date, suffix)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
