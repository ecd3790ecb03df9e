package models

// InitiatedOrder is returned to the client after a gateway order has been
// created and a commitment token issued for it.
type InitiatedOrder struct {
	GatewayOrderID string `json:"id"`
	Amount         int64  `json:"amount"`
	Currency       string `json:"currency"`
	Token          string `json:"token"`
}

// PaymentStatus mirrors the gateway's view of a payment, amount converted
// back to major currency units.
type PaymentStatus struct {
	PaymentID string  `json:"payment_id"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Method    string  `json:"method"`
	CreatedAt int64   `json:"created_at"`
}
