package payment

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Gateway is the method-agnostic interface every payment adapter must
// implement. To integrate a real processor, implement this interface and
// register it in the GatewayRegistry.
type Gateway interface {
	// Charge attempts to collect the given amount and returns the outcome.
	Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error)
}

// GatewayRegistry maps payment methods to their Gateway implementations.
type GatewayRegistry map[Method]Gateway

// ── Simulated Adapter ─────────────────────────────────────────────────────────
// No real processor is integrated: the storefront's checkout waits a fixed
// duration and treats the charge as successful. Keeping that behaviour behind
// the Gateway interface means swapping in a real adapter touches nothing else.

type simulatedGateway struct {
	refPrefix string
	delay     time.Duration
}

// NewSimulatedGateway creates a gateway that waits and then succeeds,
// returning a reference like GC-20230415-1234.
func NewSimulatedGateway(refPrefix string, delay time.Duration) Gateway {
	return &simulatedGateway{refPrefix: refPrefix, delay: delay}
}

func (g *simulatedGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	ref := fmt.Sprintf("%s-%s-%04d", g.refPrefix, time.Now().Format("20060102"), rand.Intn(10000))
	return &ChargeResult{
		Paid:      true,
		Reference: ref,
		Message:   "payment confirmed",
	}, nil
}

// ── Cash on Delivery Adapter ──────────────────────────────────────────────────

type codGateway struct{}

// NewCODGateway creates the collect-on-delivery adapter: nothing is charged
// up front, so the order stays unpaid.
func NewCODGateway() Gateway { return &codGateway{} }

func (g *codGateway) Charge(ctx context.Context, req *ChargeRequest) (*ChargeResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}
	return &ChargeResult{
		Paid:    false,
		Message: "amount will be collected on delivery",
	}, nil
}
