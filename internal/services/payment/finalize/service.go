package finalize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/feastly/payment_service/internal/domain/models"
	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
	"github.com/feastly/payment_service/internal/lib/token"
	"github.com/feastly/payment_service/pkg/gateway/razorpay"
	"github.com/feastly/payment_service/pkg/logger"
)

type gatewayClient interface {
	FetchPayment(ctx context.Context, paymentID string) (*razorpay.Payment, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type tokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

type orderPlacer interface {
	PlaceOrder(ctx context.Context, params models.OrderPayload) (*models.PlacementResult, error)
}

type finalizedPayments interface {
	Finalized(paymentID string) bool
	MarkFinalized(paymentID string)
}

// Callback carries the gateway callback fields together with the original
// payload and commitment token, exactly as presented by the client.
type Callback struct {
	GatewayOrderID   string
	GatewayPaymentID string
	GatewaySignature string
	Token            string
	Payload          models.OrderPayload
}

type Service struct {
	log logger.Logger

	gateway   gatewayClient
	tokens    tokenVerifier
	orders    orderPlacer
	finalized finalizedPayments

	orderEventsChan chan<- models.Event
}

func New(
	log logger.Logger,
	gateway gatewayClient,
	tokens tokenVerifier,
	orders orderPlacer,
	finalized finalizedPayments,
	orderEventsChan chan<- models.Event,
) *Service {
	return &Service{
		log:             log,
		gateway:         gateway,
		tokens:          tokens,
		orders:          orders,
		finalized:       finalized,
		orderEventsChan: orderEventsChan,
	}
}

// Finalize re-validates everything the client presented and, only after the
// full gate passes, delegates order creation to the placement function. For
// online payments every check is a hard stop; cash-on-delivery skips the
// gateway checks entirely and uses the sentinel payment id.
func (s *Service) Finalize(ctx context.Context, callerID string, cb Callback) (*models.PlacementResult, error) {
	const op = "services.payment.finalize.Finalize"

	paymentID := models.CODPaymentID
	if cb.Payload.PaymentType() == models.PaymentTypeOnline {
		if err := s.verifyOnlinePayment(ctx, callerID, cb); err != nil {
			return nil, err
		}
		paymentID = cb.GatewayPaymentID
	}

	result, err := s.orders.PlaceOrder(ctx, cb.Payload.WithPaymentID(paymentID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if result.Status == models.RPCStatusSuccess {
		if cb.Payload.PaymentType() == models.PaymentTypeOnline {
			s.finalized.MarkFinalized(cb.GatewayPaymentID)
		}
		s.publishOrderPlaced(ctx, result, cb.Payload, paymentID)
	}

	return result, nil
}

func (s *Service) verifyOnlinePayment(ctx context.Context, callerID string, cb Callback) error {
	const op = "services.payment.finalize.verifyOnlinePayment"

	if cb.GatewayOrderID == "" || cb.GatewayPaymentID == "" || cb.GatewaySignature == "" {
		return internalErrors.New(internalErrors.KindBadRequest, "missing required payment parameters")
	}

	if cb.Token == "" {
		return internalErrors.New(internalErrors.KindUnauthorized, "authorization token is missing")
	}

	claims, err := s.tokens.Verify(cb.Token)
	if err != nil {
		return internalErrors.New(internalErrors.KindUnauthorized, "invalid or expired payment token")
	}

	if callerID == "" || callerID != cb.Payload.UserID() {
		return internalErrors.New(internalErrors.KindForbidden, "user is not authorized to finalize this payment")
	}

	if claims.GatewayOrderID != cb.GatewayOrderID {
		return internalErrors.New(internalErrors.KindBadRequest, "token and order id mismatch")
	}

	digest, err := cb.Payload.CanonicalDigest()
	if err != nil {
		return fmt.Errorf("%s: payload digest: %w", op, err)
	}
	if claims.Hash != digest {
		return internalErrors.New(internalErrors.KindBadRequest, "order details have been tampered with")
	}

	if s.gateway == nil {
		return internalErrors.New(internalErrors.KindUnavailable, "payment gateway is not configured")
	}

	if !s.gateway.VerifySignature(cb.GatewayOrderID, cb.GatewayPaymentID, cb.GatewaySignature) {
		return internalErrors.New(internalErrors.KindBadRequest, "invalid payment signature")
	}

	payment, err := s.gateway.FetchPayment(ctx, cb.GatewayPaymentID)
	if err != nil {
		if errors.Is(err, razorpay.ErrPaymentNotFound) {
			return internalErrors.New(internalErrors.KindNotFound, "payment not found on gateway")
		}
		s.log.Error(op, logger.String("fetch payment error", err.Error()))
		return fmt.Errorf("%s: fetch payment: %w", op, err)
	}

	if payment.OrderID != cb.GatewayOrderID {
		return internalErrors.New(internalErrors.KindBadRequest, "payment does not belong to the given order")
	}

	if payment.Status != razorpay.PaymentStatusCaptured {
		return internalErrors.Newf(internalErrors.KindBadRequest,
			"payment is not captured, current status: %s", payment.Status)
	}

	// Best-effort replay guard; the placement function's uniqueness
	// constraints remain the authoritative protection.
	if s.finalized.Finalized(cb.GatewayPaymentID) {
		return internalErrors.New(internalErrors.KindConflict, "payment has already been processed")
	}

	return nil
}

func (s *Service) publishOrderPlaced(ctx context.Context, result *models.PlacementResult, payload models.OrderPayload, paymentID string) {
	const op = "services.payment.finalize.publishOrderPlaced"

	var data struct {
		OrderID string `json:"order_id"`
	}
	if err := json.Unmarshal(result.Data, &data); err != nil {
		s.log.Warn(op, logger.String("decode result error", err.Error()))
		return
	}

	event := &models.OrderPlaced{
		EventUUID:   uuid.New(),
		OrderID:     data.OrderID,
		UserID:      payload.UserID(),
		PaymentID:   paymentID,
		PaymentType: payload.PaymentType(),
		PlacedAt:    time.Now(),
	}

	select {
	case s.orderEventsChan <- event:
		s.log.DebugContext(ctx, op, logger.String("event", event.UUID()))
	default:
		s.log.WarnContext(ctx, op, logger.String("dropped event", event.UUID()))
	}
}
