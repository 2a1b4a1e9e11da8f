package payment

import (
	"context"
	"fmt"
)

// Service defines payment business logic.
type Service interface {
	// Charge routes the request to the gateway registered for the method.
	Charge(ctx context.Context, method Method, req *ChargeRequest) (*ChargeResult, error)

	// ListMethods describes the methods offered at checkout.
	ListMethods(ctx context.Context) []MethodInfo
}

type service struct {
	gateways GatewayRegistry
}

// NewService creates a new payment service over a gateway registry.
func NewService(gateways GatewayRegistry) Service {
	return &service{gateways: gateways}
}

func (s *service) Charge(ctx context.Context, method Method, req *ChargeRequest) (*ChargeResult, error) {
	gateway, ok := s.gateways[method]
	if !ok {
		return nil, fmt.Errorf("unsupported payment method: %s", method)
	}
	if req.Currency == "" {
		req.Currency = "PHP"
	}
	return gateway.Charge(ctx, req)
}

func (s *service) ListMethods(ctx context.Context) []MethodInfo {
	all := []MethodInfo{
		{ID: MethodGCash, Name: "GCash", Type: "digital_wallet"},
		{ID: MethodMaya, Name: "Maya", Type: "digital_wallet"},
		{ID: MethodCard, Name: "Credit / Debit Card", Type: "card"},
		{ID: MethodBankTransfer, Name: "Bank Transfer", Type: "bank_transfer"},
		{ID: MethodCOD, Name: "Cash on Delivery", Type: "cod", SurchargeFlat: 50},
	}
	methods := make([]MethodInfo, 0, len(all))
	for _, info := range all {
		if _, ok := s.gateways[info.ID]; ok {
			methods = append(methods, info)
		}
	}
	return methods
}
