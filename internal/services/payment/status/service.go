package status

import (
	"context"
	"errors"
	"fmt"

	"github.com/feastly/payment_service/internal/domain/models"
	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
	"github.com/feastly/payment_service/pkg/gateway/razorpay"
	"github.com/feastly/payment_service/pkg/logger"
)

type paymentFetcher interface {
	FetchPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error)
}

type Service struct {
	log     logger.Logger
	gateway paymentFetcher
}

func New(log logger.Logger, gateway paymentFetcher) *Service {
	return &Service{
		log:     log,
		gateway: gateway,
	}
}

func (s *Service) PaymentStatus(ctx context.Context, paymentID string) (*models.PaymentStatus, error) {
	const op = "services.payment.status.PaymentStatus"

	if s.gateway == nil {
		return nil, internalErrors.New(internalErrors.KindUnavailable, "payment gateway is not configured")
	}

	payment, err := s.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, razorpay.ErrPaymentNotFound) {
			return nil, internalErrors.New(internalErrors.KindNotFound, "payment not found on gateway")
		}
		s.log.Error(op, logger.String("fetch payment error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.PaymentStatus{
		PaymentID: payment.ID,
		Status:    payment.Status,
		Amount:    float64(payment.Amount) / 100,
		Currency:  payment.Currency,
		Method:    payment.Method,
		CreatedAt: payment.CreatedAt,
	}, nil
}
