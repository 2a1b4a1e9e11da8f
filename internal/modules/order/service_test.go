package order

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/georgemunganga/tarpa-backend/internal/modules/audit"
	"github.com/georgemunganga/tarpa-backend/internal/modules/catalog"
	"github.com/georgemunganga/tarpa-backend/internal/modules/payment"
	"github.com/georgemunganga/tarpa-backend/internal/modules/template"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── test doubles ──────────────────────────────────────────────────────────────

type memoryRepo struct {
	orders map[string]*Order
}

func newMemoryRepo() *memoryRepo { return &memoryRepo{orders: map[string]*Order{}} }

func (m *memoryRepo) CreateOrder(_ context.Context, o *Order) error {
	m.orders[o.ID.String()] = o
	return nil
}

func (m *memoryRepo) GetOrderByID(_ context.Context, id string) (*Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("order not found")
	}
	return o, nil
}

func (m *memoryRepo) GetOrderByNumber(_ context.Context, orderNumber string) (*Order, error) {
	for _, o := range m.orders {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, fmt.Errorf("order not found")
}

func (m *memoryRepo) ListOrders(_ context.Context, status string) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		if status == "" || string(o.Status) == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListOrdersByCustomer(_ context.Context, customerID string) ([]*Order, error) {
	var out []*Order
	for _, o := range m.orders {
		if o.CustomerID.String() == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memoryRepo) UpdateStatus(_ context.Context, id string, status Status) error {
	o, ok := m.orders[id]
	if !ok {
		return fmt.Errorf("order not found")
	}
	o.Status = status
	return nil
}

func (m *memoryRepo) UpdatePayment(_ context.Context, id string, isPaid bool, method, reference string) error {
	o, ok := m.orders[id]
	if !ok {
		return fmt.Errorf("order not found")
	}
	o.IsPaid = isPaid
	o.PaymentMethod = method
	o.PaymentReference = reference
	return nil
}

type stubMaterials struct {
	material *catalog.Material
}

func (s *stubMaterials) CreateMaterial(context.Context, catalog.MaterialRequest) (*catalog.Material, error) {
	return nil, fmt.Errorf("not supported")
}

func (s *stubMaterials) GetMaterial(_ context.Context, id string) (*catalog.Material, error) {
	if s.material == nil || s.material.ID.String() != id {
		return nil, fmt.Errorf("material not found")
	}
	return s.material, nil
}

func (s *stubMaterials) ListMaterials(context.Context, bool) ([]*catalog.Material, error) {
	return nil, nil
}

func (s *stubMaterials) UpdateMaterial(context.Context, string, catalog.MaterialRequest) (*catalog.Material, error) {
	return nil, fmt.Errorf("not supported")
}

type stubTemplates struct {
	template *template.Template
}

func (s *stubTemplates) CreateTemplate(context.Context, template.CreateTemplateRequest) (*template.Template, error) {
	return nil, fmt.Errorf("not supported")
}

func (s *stubTemplates) GetTemplate(_ context.Context, id string) (*template.Template, error) {
	if s.template == nil || s.template.ID.String() != id {
		return nil, fmt.Errorf("template not found")
	}
	return s.template, nil
}

func (s *stubTemplates) ListTemplates(context.Context, string, bool) ([]*template.Template, error) {
	return nil, nil
}

type recordedEntry struct {
	action    audit.Action
	tableName string
	recordID  string
}

type captureRecorder struct {
	entries []recordedEntry
}

func (c *captureRecorder) Record(_ context.Context, action audit.Action, tableName, recordID string, _, _ interface{}) {
	c.entries = append(c.entries, recordedEntry{action: action, tableName: tableName, recordID: recordID})
}

// ── fixtures ──────────────────────────────────────────────────────────────────

type fixture struct {
	svc       Service
	repo      *memoryRepo
	materials *stubMaterials
	templates *stubTemplates
	recorder  *captureRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newMemoryRepo()
	materials := &stubMaterials{material: &catalog.Material{
		ID:          uuid.New(),
		Name:        "Mesh Vinyl",
		PricePerSqm: 280,
		Available:   true,
	}}
	templates := &stubTemplates{template: &template.Template{
		ID:            uuid.New(),
		Name:          "Birthday Banner",
		PriceModifier: 100,
		IsActive:      true,
	}}
	gateways := payment.GatewayRegistry{
		payment.MethodGCash: payment.NewSimulatedGateway("GC", 0),
		payment.MethodMaya:  payment.NewSimulatedGateway("MY", 0),
		payment.MethodCOD:   payment.NewCODGateway(),
	}
	recorder := &captureRecorder{}
	svc := NewService(repo, materials, templates, payment.NewService(gateways), recorder)
	return &fixture{svc: svc, repo: repo, materials: materials, templates: templates, recorder: recorder}
}

func (f *fixture) placeRequest() PlaceOrderRequest {
	return PlaceOrderRequest{
		Width:         2,
		Height:        1.5,
		Quantity:      3,
		MaterialID:    f.materials.material.ID.String(),
		FileURL:       "/uploads/design.png",
		FileName:      "design.png",
		PaymentMethod: "cod",
	}
}

// ── PlaceOrder ────────────────────────────────────────────────────────────────

func TestPlaceOrderCODStaysUnpaid(t *testing.T) {
	f := newFixture(t)

	o, err := f.svc.PlaceOrder(context.Background(), uuid.New(), f.placeRequest())
	require.NoError(t, err)

	assert.False(t, o.IsPaid)
	assert.Equal(t, "cod", o.PaymentMethod)
	assert.Empty(t, o.PaymentReference)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 2520.0, o.TotalPrice)
	assert.True(t, strings.HasPrefix(o.OrderNumber, "TP-"))
	assert.Len(t, o.OrderNumber, len("TP-YYMMDD-XXXX"))
}

func TestPlaceOrderGatewayMethodSettlesImmediately(t *testing.T) {
	f := newFixture(t)
	req := f.placeRequest()
	req.PaymentMethod = "gcash"

	o, err := f.svc.PlaceOrder(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	assert.True(t, o.IsPaid)
	assert.Equal(t, "gcash", o.PaymentMethod)
	assert.True(t, strings.HasPrefix(o.PaymentReference, "GC-"))
}

func TestPlaceOrderRequiresExactlyOneDesignSource(t *testing.T) {
	f := newFixture(t)

	both := f.placeRequest()
	both.TemplateID = f.templates.template.ID.String()
	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), both)
	assert.Error(t, err)

	neither := f.placeRequest()
	neither.FileURL = ""
	neither.FileName = ""
	_, err = f.svc.PlaceOrder(context.Background(), uuid.New(), neither)
	assert.Error(t, err)
}

func TestPlaceOrderWithTemplateAddsModifier(t *testing.T) {
	f := newFixture(t)
	req := f.placeRequest()
	req.FileURL = ""
	req.FileName = ""
	req.TemplateID = f.templates.template.ID.String()

	o, err := f.svc.PlaceOrder(context.Background(), uuid.New(), req)
	require.NoError(t, err)

	// 2 * 1.5 * 3 * 280 + 100 * 3
	assert.Equal(t, 2820.0, o.TotalPrice)
	require.NotNil(t, o.TemplateID)
	assert.Equal(t, f.templates.template.ID, *o.TemplateID)
}

func TestPlaceOrderRejectsInactiveTemplate(t *testing.T) {
	f := newFixture(t)
	f.templates.template.IsActive = false
	req := f.placeRequest()
	req.FileURL = ""
	req.FileName = ""
	req.TemplateID = f.templates.template.ID.String()

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), req)
	assert.Error(t, err)
}

func TestPlaceOrderRejectsUnavailableMaterial(t *testing.T) {
	f := newFixture(t)
	f.materials.material.Available = false

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), f.placeRequest())
	assert.Error(t, err)
}

func TestPlaceOrderRejectsUnknownMaterial(t *testing.T) {
	f := newFixture(t)
	req := f.placeRequest()
	req.MaterialID = uuid.New().String()

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), req)
	assert.Error(t, err)
}

func TestPlaceOrderCrossChecksExpectedTotal(t *testing.T) {
	f := newFixture(t)

	mismatch := f.placeRequest()
	mismatch.ExpectedTotal = 999
	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), mismatch)
	assert.Error(t, err)

	match := f.placeRequest()
	match.ExpectedTotal = 2520
	_, err = f.svc.PlaceOrder(context.Background(), uuid.New(), match)
	assert.NoError(t, err)
}

func TestPlaceOrderRejectsInvalidPaymentMethod(t *testing.T) {
	f := newFixture(t)
	req := f.placeRequest()
	req.PaymentMethod = "cheque"

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), req)
	assert.Error(t, err)
}

func TestPlaceOrderRejectsOversizedDimensions(t *testing.T) {
	f := newFixture(t)
	req := f.placeRequest()
	req.Width = 12

	_, err := f.svc.PlaceOrder(context.Background(), uuid.New(), req)
	assert.Error(t, err)
}

func TestPlaceOrderRecordsAuditEntry(t *testing.T) {
	f := newFixture(t)

	o, err := f.svc.PlaceOrder(context.Background(), uuid.New(), f.placeRequest())
	require.NoError(t, err)

	require.Len(t, f.recorder.entries, 1)
	assert.Equal(t, audit.ActionCreate, f.recorder.entries[0].action)
	assert.Equal(t, "orders", f.recorder.entries[0].tableName)
	assert.Equal(t, o.ID.String(), f.recorder.entries[0].recordID)
}

// ── Status lifecycle ──────────────────────────────────────────────────────────

func (f *fixture) seedOrder(t *testing.T, status Status) *Order {
	t.Helper()
	o := &Order{
		ID:          uuid.New(),
		OrderNumber: "TP-250101-TEST",
		CustomerID:  uuid.New(),
		Status:      status,
	}
	require.NoError(t, f.repo.CreateOrder(context.Background(), o))
	return o
}

func TestUpdateStatusFollowsGuardedTransitions(t *testing.T) {
	cases := []struct {
		from    Status
		to      string
		allowed bool
	}{
		{StatusPending, "processing", true},
		{StatusPending, "cancelled", true},
		{StatusPending, "printed", false},
		{StatusPending, "completed", false},
		{StatusProcessing, "printed", true},
		{StatusProcessing, "completed", true},
		{StatusProcessing, "cancelled", true},
		{StatusProcessing, "pending", false},
		{StatusPrinted, "completed", true},
		{StatusPrinted, "cancelled", true},
		{StatusPrinted, "processing", false},
		{StatusCompleted, "pending", false},
		{StatusCompleted, "cancelled", false},
		{StatusCancelled, "pending", false},
		{StatusCancelled, "processing", false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s_to_%s", tc.from, tc.to), func(t *testing.T) {
			f := newFixture(t)
			o := f.seedOrder(t, tc.from)

			updated, err := f.svc.UpdateStatus(context.Background(), o.ID.String(), UpdateStatusRequest{Status: tc.to})
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, Status(tc.to), updated.Status)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	f := newFixture(t)
	o := f.seedOrder(t, StatusPending)

	_, err := f.svc.UpdateStatus(context.Background(), o.ID.String(), UpdateStatusRequest{Status: "shipped"})
	assert.Error(t, err)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), uuid.New().String(), UpdateStatusRequest{Status: "processing"})
	assert.Error(t, err)
}

// ── Payment flag ──────────────────────────────────────────────────────────────

func TestMarkPaidRequiresMethod(t *testing.T) {
	f := newFixture(t)
	o := f.seedOrder(t, StatusPending)

	_, err := f.svc.MarkPaid(context.Background(), o.ID.String(), MarkPaidRequest{IsPaid: true})
	assert.Error(t, err)

	updated, err := f.svc.MarkPaid(context.Background(), o.ID.String(), MarkPaidRequest{
		IsPaid:           true,
		PaymentMethod:    "gcash",
		PaymentReference: "GC-250101-0042",
	})
	require.NoError(t, err)
	assert.True(t, updated.IsPaid)
	assert.Equal(t, "gcash", updated.PaymentMethod)
	assert.Equal(t, "GC-250101-0042", updated.PaymentReference)
}

func TestMarkPaidRejectsUnknownMethod(t *testing.T) {
	f := newFixture(t)
	o := f.seedOrder(t, StatusPending)

	_, err := f.svc.MarkPaid(context.Background(), o.ID.String(), MarkPaidRequest{IsPaid: true, PaymentMethod: "barter"})
	assert.Error(t, err)
}

// ── Cancellation ──────────────────────────────────────────────────────────────

func TestCancelOrderOnlyBeforePrinting(t *testing.T) {
	for _, tc := range []struct {
		status  Status
		allowed bool
	}{
		{StatusPending, true},
		{StatusProcessing, true},
		{StatusPrinted, false},
		{StatusCompleted, false},
		{StatusCancelled, false},
	} {
		t.Run(string(tc.status), func(t *testing.T) {
			f := newFixture(t)
			o := f.seedOrder(t, tc.status)

			err := f.svc.CancelOrder(context.Background(), o.ID.String())
			if tc.allowed {
				require.NoError(t, err)
				stored, _ := f.repo.GetOrderByID(context.Background(), o.ID.String())
				assert.Equal(t, StatusCancelled, stored.Status)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestListOrdersRejectsInvalidFilter(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.ListOrders(context.Background(), "archived")
	assert.Error(t, err)

	_, err = f.svc.ListOrders(context.Background(), "")
	assert.NoError(t, err)
}
