package initiate

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/feastly/payment_service/internal/domain/models"
	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
	"github.com/feastly/payment_service/pkg/gateway/razorpay"
	"github.com/feastly/payment_service/pkg/logger"
)

// MinOrderAmount is the smallest order value, in major currency units, the
// gateway order may be created for.
const MinOrderAmount = 49

type gatewayClient interface {
	CreateOrder(ctx context.Context, orderReq razorpay.OrderRequest) (*razorpay.Order, error)
}

type tokenIssuer interface {
	Issue(hash, gatewayOrderID string) (string, error)
}

type Service struct {
	log logger.Logger

	// nil when gateway keys are absent from the environment; initiation
	// then degrades to service-unavailable instead of crashing.
	gateway gatewayClient
	tokens  tokenIssuer
}

func New(log logger.Logger, gateway gatewayClient, tokens tokenIssuer) *Service {
	return &Service{
		log:     log,
		gateway: gateway,
		tokens:  tokens,
	}
}

// Initiate creates a gateway order for the declared amount and issues a
// commitment token binding the payload digest to the gateway order id.
// Nothing is persisted locally; the token is the only record of the attempt.
func (s *Service) Initiate(
	ctx context.Context,
	callerID string,
	amount float64,
	currency string,
	payload models.OrderPayload,
) (*models.InitiatedOrder, error) {
	const op = "services.payment.initiate.Initiate"

	if s.gateway == nil {
		return nil, internalErrors.New(internalErrors.KindUnavailable, "payment gateway is not configured")
	}

	if len(payload) == 0 {
		return nil, internalErrors.New(internalErrors.KindBadRequest, "order payload is required")
	}

	if callerID == "" || callerID != payload.UserID() {
		return nil, internalErrors.New(internalErrors.KindForbidden, "user is not authorized to initiate this order")
	}

	if amount < MinOrderAmount {
		return nil, internalErrors.Newf(internalErrors.KindBadRequest,
			"amount is required and must be at least %d", MinOrderAmount)
	}

	receipt := "rcpt_" + uuid.NewString()

	order, err := s.gateway.CreateOrder(ctx, razorpay.OrderRequest{
		Amount:   int64(math.Round(amount * 100)),
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		s.log.Error(op, logger.String("create order error", err.Error()))
		return nil, internalErrors.New(internalErrors.KindInternal, "failed to initiate order")
	}

	digest, err := payload.CanonicalDigest()
	if err != nil {
		s.log.Error(op, logger.String("digest error", err.Error()))
		return nil, fmt.Errorf("%s: payload digest: %w", op, err)
	}

	signed, err := s.tokens.Issue(digest, order.ID)
	if err != nil {
		s.log.Error(op, logger.String("issue token error", err.Error()))
		return nil, fmt.Errorf("%s: issue token: %w", op, err)
	}

	return &models.InitiatedOrder{
		GatewayOrderID: order.ID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		Token:          signed,
	}, nil
}
