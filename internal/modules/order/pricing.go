package order

import "fmt"

// Server-side bounds for an order specification. The storefront form applies
// the same limits, but the server is the authority.
const (
	MinSideMeters = 0.5
	MaxSideMeters = 10
	MinQuantity   = 1
	MaxQuantity   = 100
)

// Quote computes the price of a print job: width × height × quantity × rate.
// It rejects out-of-range input rather than clamping, so a caller that slips
// past form validation still cannot buy a 200-meter banner.
func Quote(widthM, heightM float64, quantity int, ratePerSqm float64) (float64, error) {
	if widthM < MinSideMeters || widthM > MaxSideMeters {
		return 0, fmt.Errorf("width must be between %.1f and %d meters", MinSideMeters, MaxSideMeters)
	}
	if heightM < MinSideMeters || heightM > MaxSideMeters {
		return 0, fmt.Errorf("height must be between %.1f and %d meters", MinSideMeters, MaxSideMeters)
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return 0, fmt.Errorf("quantity must be between %d and %d", MinQuantity, MaxQuantity)
	}
	if ratePerSqm <= 0 {
		return 0, fmt.Errorf("price_per_sqm must be greater than 0")
	}
	area := widthM * heightM
	return area * float64(quantity) * ratePerSqm, nil
}

// QuoteWithTemplate adds the template's flat per-unit surcharge on top of the
// material price.
func QuoteWithTemplate(widthM, heightM float64, quantity int, ratePerSqm, surchargePerUnit float64) (float64, error) {
	base, err := Quote(widthM, heightM, quantity, ratePerSqm)
	if err != nil {
		return 0, err
	}
	if surchargePerUnit < 0 {
		return 0, fmt.Errorf("template surcharge cannot be negative")
	}
	return base + surchargePerUnit*float64(quantity), nil
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
