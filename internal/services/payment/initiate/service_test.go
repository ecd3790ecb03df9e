package initiate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/feastly/payment_service/internal/domain/models"
	internalErrors "github.com/feastly/payment_service/internal/lib/errors"
	"github.com/feastly/payment_service/internal/lib/token"
	"github.com/feastly/payment_service/pkg/gateway/razorpay"
	"github.com/feastly/payment_service/pkg/logger"
)

type fakeGateway struct {
	lastRequest razorpay.OrderRequest
	order       *razorpay.Order
	err         error
}

func (f *fakeGateway) CreateOrder(_ context.Context, orderReq razorpay.OrderRequest) (*razorpay.Order, error) {
	f.lastRequest = orderReq
	if f.err != nil {
		return nil, f.err
	}
	return f.order, nil
}

func testPayload() models.OrderPayload {
	return models.OrderPayload{
		"p_user_id":      "u1",
		"p_payment_type": "online",
	}
}

func TestInitiatePreconditions(t *testing.T) {
	ctx := context.Background()
	log := logger.NewSlogLogger(logger.EnvLocal)
	tokens := token.NewManager("test-secret", 15*time.Minute)

	tCases := []struct {
		name     string
		gateway  *fakeGateway
		callerID string
		amount   float64
		payload  models.OrderPayload
		expKind  internalErrors.Kind
	}{
		{
			name:     "gateway_not_configured",
			gateway:  nil,
			callerID: "u1",
			amount:   100,
			payload:  testPayload(),
			expKind:  internalErrors.KindUnavailable,
		},
		{
			name:     "missing_payload",
			gateway:  &fakeGateway{},
			callerID: "u1",
			amount:   100,
			payload:  nil,
			expKind:  internalErrors.KindBadRequest,
		},
		{
			name:     "caller_mismatch",
			gateway:  &fakeGateway{},
			callerID: "u2",
			amount:   100,
			payload:  testPayload(),
			expKind:  internalErrors.KindForbidden,
		},
		{
			name:     "amount_below_minimum",
			gateway:  &fakeGateway{},
			callerID: "u1",
			amount:   48.99,
			payload:  testPayload(),
			expKind:  internalErrors.KindBadRequest,
		},
	}

	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			var svc *Service
			if tCase.gateway == nil {
				svc = New(log, nil, tokens)
			} else {
				svc = New(log, tCase.gateway, tokens)
			}

			_, err := svc.Initiate(ctx, tCase.callerID, tCase.amount, "INR", tCase.payload)
			require.Error(t, err)
			require.Equal(t, tCase.expKind, internalErrors.KindOf(err))
		})
	}
}

func TestInitiateIssuesCommitmentToken(t *testing.T) {
	ctx := context.Background()
	tokens := token.NewManager("test-secret", 15*time.Minute)

	gateway := &fakeGateway{
		order: &razorpay.Order{
			ID:       "order_1",
			Amount:   9950,
			Currency: "INR",
		},
	}

	svc := New(logger.NewSlogLogger(logger.EnvLocal), gateway, tokens)

	payload := testPayload()
	initiated, err := svc.Initiate(ctx, "u1", 99.50, "INR", payload)
	require.NoError(t, err)

	require.Equal(t, "order_1", initiated.GatewayOrderID)
	require.Equal(t, int64(9950), initiated.Amount)
	require.Equal(t, "INR", initiated.Currency)

	// amount converted to minor units, receipt opaque but present
	require.Equal(t, int64(9950), gateway.lastRequest.Amount)
	require.NotEmpty(t, gateway.lastRequest.Receipt)

	// the embedded digest must match the exact payload passed in
	claims, err := tokens.Verify(initiated.Token)
	require.NoError(t, err)

	digest, err := payload.CanonicalDigest()
	require.NoError(t, err)
	require.Equal(t, digest, claims.Hash)
	require.Equal(t, "order_1", claims.GatewayOrderID)
}

func TestInitiateGatewayError(t *testing.T) {
	ctx := context.Background()
	tokens := token.NewManager("test-secret", 15*time.Minute)

	gateway := &fakeGateway{err: errors.New("gateway down")}

	svc := New(logger.NewSlogLogger(logger.EnvLocal), gateway, tokens)

	_, err := svc.Initiate(ctx, "u1", 100, "INR", testPayload())
	require.Error(t, err)
	require.Equal(t, internalErrors.KindInternal, internalErrors.KindOf(err))
}
