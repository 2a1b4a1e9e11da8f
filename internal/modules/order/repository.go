package order

import "context"

// Repository defines data access for orders.
type Repository interface {
	// CreateOrder persists a new order.
	CreateOrder(ctx context.Context, o *Order) error

	// GetOrderByID retrieves an order by UUID.
	GetOrderByID(ctx context.Context, id string) (*Order, error)

	// GetOrderByNumber retrieves an order by its human-readable number.
	GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error)

	// ListOrders returns all orders, optionally filtered by status, newest first.
	ListOrders(ctx context.Context, status string) ([]*Order, error)

	// ListOrdersByCustomer returns all orders placed by a specific customer.
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]*Order, error)

	// UpdateStatus moves an order to a new status and bumps updated_at.
	UpdateStatus(ctx context.Context, id string, status Status) error

	// UpdatePayment sets the paid flag, method, and reference.
	UpdatePayment(ctx context.Context, id string, isPaid bool, method, reference string) error
}
