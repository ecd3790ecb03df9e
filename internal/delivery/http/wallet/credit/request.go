package credit

import (
	"github.com/go-playground/validator/v10"

	creditService "github.com/feastly/payment_service/internal/services/wallet/credit"
)

var validate = validator.New()

type CreditWalletRequest struct {
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	OrderID         string  `json:"order_id"`
	TransactionType string  `json:"type"`
	Description     string  `json:"description"`
	Referral        bool    `json:"referral"`
	ReferralCode    string  `json:"referralCode"`
	Cancel          bool    `json:"cancel"`
	Review          bool    `json:"review"`
}

func (req *CreditWalletRequest) validate() error {
	return validate.Struct(req)
}

func (req *CreditWalletRequest) toServiceRepresentation() creditService.Request {
	return creditService.Request{
		Amount:          req.Amount,
		OrderID:         req.OrderID,
		TransactionType: req.TransactionType,
		Description:     req.Description,
		Referral:        req.Referral,
		ReferralCode:    req.ReferralCode,
		Cancel:          req.Cancel,
		Review:          req.Review,
	}
}
