package debit

import (
	"github.com/go-playground/validator/v10"

	debitService "github.com/feastly/payment_service/internal/services/wallet/debit"
)

var validate = validator.New()

type DebitWalletRequest struct {
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	OrderID         string  `json:"order_id"`
	TransactionType string  `json:"type"`
	Description     string  `json:"description"`
}

func (req *DebitWalletRequest) validate() error {
	return validate.Struct(req)
}

func (req *DebitWalletRequest) toServiceRepresentation() debitService.Request {
	return debitService.Request{
		Amount:          req.Amount,
		OrderID:         req.OrderID,
		TransactionType: req.TransactionType,
		Description:     req.Description,
	}
}
