package finalize

import (
	"errors"

	"github.com/feastly/payment_service/internal/domain/models"
	finalizeService "github.com/feastly/payment_service/internal/services/payment/finalize"
)

var errMissingPayload = errors.New("order payload is required")

type FinalizeOrderRequest struct {
	RazorpayOrderID   string              `json:"razorpay_order_id"`
	RazorpayPaymentID string              `json:"razorpay_payment_id"`
	RazorpaySignature string              `json:"razorpay_signature"`
	OrderPayload      models.OrderPayload `json:"orderPayload"`
	Token             string              `json:"token"`
}

func (req *FinalizeOrderRequest) validate() error {
	if len(req.OrderPayload) == 0 {
		return errMissingPayload
	}

	return nil
}

func (req *FinalizeOrderRequest) toServiceRepresentation() finalizeService.Callback {
	return finalizeService.Callback{
		GatewayOrderID:   req.RazorpayOrderID,
		GatewayPaymentID: req.RazorpayPaymentID,
		GatewaySignature: req.RazorpaySignature,
		Token:            req.Token,
		Payload:          req.OrderPayload,
	}
}
