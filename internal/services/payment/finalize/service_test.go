package finalize

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/feastly/payment_service/internal/domain/models"
	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
	"github.com/feastly/payment_service/internal/lib/token"
	"github.com/feastly/payment_service/pkg/gateway/razorpay"
	"github.com/feastly/payment_service/pkg/logger"
)

type mocks struct {
	gateway   *MockgatewayClient
	tokens    *MocktokenVerifier
	orders    *MockorderPlacer
	finalized *MockfinalizedPayments
}

func newService(t *testing.T, events chan models.Event) (*Service, mocks) {
	t.Helper()

	ctl := gomock.NewController(t)
	t.Cleanup(ctl.Finish)

	m := mocks{
		gateway:   NewMockgatewayClient(ctl),
		tokens:    NewMocktokenVerifier(ctl),
		orders:    NewMockorderPlacer(ctl),
		finalized: NewMockfinalizedPayments(ctl),
	}

	svc := New(
		logger.NewSlogLogger(logger.EnvLocal),
		m.gateway,
		m.tokens,
		m.orders,
		m.finalized,
		events,
	)

	return svc, m
}

func onlinePayload() models.OrderPayload {
	return models.OrderPayload{
		"p_user_id":      "u1",
		"p_payment_type": "online",
		"p_total":        499.0,
	}
}

func validClaims(t *testing.T, payload models.OrderPayload) *token.Claims {
	t.Helper()

	digest, err := payload.CanonicalDigest()
	require.NoError(t, err)

	return &token.Claims{Hash: digest, GatewayOrderID: "order_1"}
}

func validCallback(payload models.OrderPayload) Callback {
	return Callback{
		GatewayOrderID:   "order_1",
		GatewayPaymentID: "pay_1",
		GatewaySignature: "sig",
		Token:            "token",
		Payload:          payload,
	}
}

func TestFinalizeOnlineGates(t *testing.T) {
	ctx := context.Background()

	tCases := []struct {
		name         string
		callerID     string
		mutate       func(cb *Callback)
		mockBehavior func(t *testing.T, m mocks, cb Callback)
		expKind      internalErrors.Kind
		expMessage   string
	}{
		{
			name:       "missing_parameters",
			callerID:   "u1",
			mutate:     func(cb *Callback) { cb.GatewaySignature = "" },
			expKind:    internalErrors.KindBadRequest,
			expMessage: "missing required payment parameters",
		},
		{
			name:       "missing_token",
			callerID:   "u1",
			mutate:     func(cb *Callback) { cb.Token = "" },
			expKind:    internalErrors.KindUnauthorized,
			expMessage: "authorization token is missing",
		},
		{
			name:     "invalid_token",
			callerID: "u1",
			mockBehavior: func(t *testing.T, m mocks, cb Callback) {
				m.tokens.EXPECT().Verify("token").Return(nil, token.ErrInvalidToken)
			},
			expKind:    internalErrors.KindUnauthorized,
			expMessage: "invalid or expired payment token",
		},
		{
			name:     "caller_mismatch",
			callerID: "u2",
			mockBehavior: func(t *testing.T, m mocks, cb Callback) {
				m.tokens.EXPECT().Verify("token").Return(validClaims(t, cb.Payload), nil)
			},
			expKind:    internalErrors.KindForbidden,
			expMessage: "user is not authorized to finalize this payment",
		},
		{
			name:     "token_order_mismatch",
			callerID: "u1",
			mutate:   func(cb *Callback) { cb.GatewayOrderID = "order_other" },
			mockBehavior: func(t *testing.T, m mocks, cb Callback) {
				m.tokens.EXPECT().Verify("token").Return(validClaims(t, cb.Payload), nil)
			},
			expKind:    internalErrors.KindBadRequest,
			expMessage: "token and order id mismatch",
		},
		{
			name:     "tampered_payload",
			callerID: "u1",
			mockBehavior: func(t *testing.T, m mocks, cb Callback) {
				claims := validClaims(t, cb.Payload)
				claims.Hash = "0000000000000000"
				m.tokens.EXPECT().Verify("token").Return(claims, nil)
			},
			expKind:    internalErrors.KindBadRequest,
			expMessage: "order details have been tampered with",
		},
		{
			name:     "invalid_signature",
			callerID: "u1",
			mockBehavior: func(t *testing.T, m mocks, cb Callback) {
				m.tokens.EXPECT().Verify("token").Return(validClaims(t, cb.Payload), nil)
				m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(false)
			},
			expKind:    internalErrors.KindBadRequest,
			expMessage: "invalid payment signature",
		},
		{
			name:     "payment_not_found",
			callerID: "u1",
			mockBehavior: func(t *testing.T, m mocks, cb Callback) {
				m.tokens.EXPECT().Verify("token").Return(validClaims(t, cb.Payload), nil)
				m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
				m.gateway.EXPECT().FetchPayment(ctx, "pay_1").Return(nil, razorpay.ErrPaymentNotFound)
			},
			expKind:    internalErrors.KindNotFound,
			expMessage: "payment not found on gateway",
		},
		{
			name:     "payment_wrong_order",
			callerID: "u1",
			mockBehavior: func(t *testing.T, m mocks, cb Callback) {
				m.tokens.EXPECT().Verify("token").Return(validClaims(t, cb.Payload), nil)
				m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
				m.gateway.EXPECT().FetchPayment(ctx, "pay_1").Return(&razorpay.Payment{
					ID:      "pay_1",
					OrderID: "order_other",
					Status:  razorpay.PaymentStatusCaptured,
				}, nil)
			},
			expKind:    internalErrors.KindBadRequest,
			expMessage: "payment does not belong to the given order",
		},
		{
			name:     "payment_not_captured",
			callerID: "u1",
			mockBehavior: func(t *testing.T, m mocks, cb Callback) {
				m.tokens.EXPECT().Verify("token").Return(validClaims(t, cb.Payload), nil)
				m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
				m.gateway.EXPECT().FetchPayment(ctx, "pay_1").Return(&razorpay.Payment{
					ID:      "pay_1",
					OrderID: "order_1",
					Status:  "authorized",
				}, nil)
			},
			expKind:    internalErrors.KindBadRequest,
			expMessage: "payment is not captured, current status: authorized",
		},
		{
			name:     "already_finalized",
			callerID: "u1",
			mockBehavior: func(t *testing.T, m mocks, cb Callback) {
				m.tokens.EXPECT().Verify("token").Return(validClaims(t, cb.Payload), nil)
				m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
				m.gateway.EXPECT().FetchPayment(ctx, "pay_1").Return(&razorpay.Payment{
					ID:      "pay_1",
					OrderID: "order_1",
					Status:  razorpay.PaymentStatusCaptured,
				}, nil)
				m.finalized.EXPECT().Finalized("pay_1").Return(true)
			},
			expKind:    internalErrors.KindConflict,
			expMessage: "payment has already been processed",
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			svc, m := newService(t, nil)

			cb := validCallback(onlinePayload())
			if tCase.mutate != nil {
				tCase.mutate(&cb)
			}
			if tCase.mockBehavior != nil {
				tCase.mockBehavior(t, m, cb)
			}

			result, err := svc.Finalize(ctx, tCase.callerID, cb)
			require.Nil(t, result)
			require.Error(t, err)
			require.Equal(t, tCase.expKind, internalErrors.KindOf(err))
			require.EqualError(t, err, tCase.expMessage)
		})
	}
}

func TestFinalizeOnlineSuccess(t *testing.T) {
	ctx := context.Background()
	events := make(chan models.Event, 1)

	svc, m := newService(t, events)

	payload := onlinePayload()
	cb := validCallback(payload)

	m.tokens.EXPECT().Verify("token").Return(validClaims(t, payload), nil)
	m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
	m.gateway.EXPECT().FetchPayment(ctx, "pay_1").Return(&razorpay.Payment{
		ID:      "pay_1",
		OrderID: "order_1",
		Status:  razorpay.PaymentStatusCaptured,
	}, nil)
	m.finalized.EXPECT().Finalized("pay_1").Return(false)
	m.orders.EXPECT().
		PlaceOrder(ctx, gomock.Eq(payload.WithPaymentID("pay_1"))).
		Return(&models.PlacementResult{
			Status: models.RPCStatusSuccess,
			Data:   json.RawMessage(`{"status":"success","order_id":"o42"}`),
		}, nil).
		Times(1)
	m.finalized.EXPECT().MarkFinalized("pay_1")

	result, err := svc.Finalize(ctx, "u1", cb)
	require.NoError(t, err)
	require.Equal(t, models.RPCStatusSuccess, result.Status)

	event := <-events
	placed, ok := event.(*models.OrderPlaced)
	require.True(t, ok)
	require.Equal(t, "o42", placed.OrderID)
	require.Equal(t, "pay_1", placed.PaymentID)
	require.Equal(t, "u1", placed.UserID)
}

func TestFinalizeCOD(t *testing.T) {
	ctx := context.Background()

	svc, m := newService(t, nil)

	payload := models.OrderPayload{
		"p_user_id":      "u1",
		"p_payment_type": "cod",
	}

	// no gateway, token or dedupe interaction for cash on delivery
	m.orders.EXPECT().
		PlaceOrder(ctx, gomock.Eq(payload.WithPaymentID(models.CODPaymentID))).
		Return(&models.PlacementResult{
			Status: models.RPCStatusSuccess,
			Data:   json.RawMessage(`{"status":"success","order_id":"o7"}`),
		}, nil).
		Times(1)

	result, err := svc.Finalize(ctx, "u1", Callback{Payload: payload})
	require.NoError(t, err)
	require.Equal(t, models.RPCStatusSuccess, result.Status)
}

func TestFinalizeNonSuccessStatus(t *testing.T) {
	ctx := context.Background()

	svc, m := newService(t, nil)

	payload := onlinePayload()
	cb := validCallback(payload)

	m.tokens.EXPECT().Verify("token").Return(validClaims(t, payload), nil)
	m.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
	m.gateway.EXPECT().FetchPayment(ctx, "pay_1").Return(&razorpay.Payment{
		ID:      "pay_1",
		OrderID: "order_1",
		Status:  razorpay.PaymentStatusCaptured,
	}, nil)
	m.finalized.EXPECT().Finalized("pay_1").Return(false)
	m.orders.EXPECT().
		PlaceOrder(ctx, gomock.Any()).
		Return(&models.PlacementResult{
			Status: models.RPCStatusPriceChange,
			Data:   json.RawMessage(`{"status":"price_change"}`),
		}, nil)

	// price_change is terminal for this attempt: no dedupe mark, no event
	result, err := svc.Finalize(ctx, "u1", cb)
	require.NoError(t, err)
	require.Equal(t, models.RPCStatusPriceChange, result.Status)
}
