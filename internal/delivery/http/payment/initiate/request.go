package initiate

import (
	"github.com/feastly/payment_service/internal/domain/models"
)

const defaultCurrency = "INR"

type InitiateOrderRequest struct {
	Amount       float64             `json:"amount"`
	Currency     string              `json:"currency"`
	OrderPayload models.OrderPayload `json:"orderPayload"`
}

// currencyOrDefault leaves validation of amount and payload to the service,
// which enforces the precondition ordering.
func (req *InitiateOrderRequest) currencyOrDefault() string {
	if req.Currency == "" {
		return defaultCurrency
	}
	return req.Currency
}
