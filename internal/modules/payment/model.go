package payment

// Method represents a supported payment method.
type Method string

const (
	MethodGCash        Method = "gcash"
	MethodMaya         Method = "maya"
	MethodCard         Method = "card"
	MethodBankTransfer Method = "bank_transfer"
	MethodCOD          Method = "cod"
)

// ParseMethod validates a raw payment method string.
func ParseMethod(raw string) (Method, bool) {
	switch Method(raw) {
	case MethodGCash, MethodMaya, MethodCard, MethodBankTransfer, MethodCOD:
		return Method(raw), true
	}
	return "", false
}

// MethodInfo describes a payment method for the checkout UI.
type MethodInfo struct {
	ID            Method  `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"` // digital_wallet | bank_transfer | card | cod
	SurchargeFlat float64 `json:"surcharge_flat,omitempty"`
}

// ChargeRequest is the payload handed to a gateway.
type ChargeRequest struct {
	OrderNumber string  `json:"order_number"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description,omitempty"`
}

// ChargeResult is the outcome of a gateway charge. Paid=false means the
// amount is collected later (cash on delivery).
type ChargeResult struct {
	Paid      bool   `json:"paid"`
	Reference string `json:"reference,omitempty"`
	Message   string `json:"message,omitempty"`
}
