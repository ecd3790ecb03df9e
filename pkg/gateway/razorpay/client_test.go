package razorpay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feastly/payment_service/pkg/logger"
)

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/orders", r.URL.Path)

		keyID, keySecret, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "key_id", keyID)
		require.Equal(t, "key_secret", keySecret)

		var req OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, int64(49900), req.Amount)
		require.Equal(t, "INR", req.Currency)

		_ = json.NewEncoder(w).Encode(Order{
			ID:       "order_abc",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   "created",
		})
	}))
	defer server.Close()

	client := NewClient(logger.NewSlogLogger(logger.EnvLocal), server.URL, "key_id", "key_secret")

	order, err := client.CreateOrder(context.Background(), OrderRequest{
		Amount:   49900,
		Currency: "INR",
		Receipt:  "rcpt_test",
	})
	require.NoError(t, err)
	require.Equal(t, "order_abc", order.ID)
	require.Equal(t, int64(49900), order.Amount)
}

func TestFetchPayment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/payments/pay_abc":
			_ = json.NewEncoder(w).Encode(Payment{
				ID:      "pay_abc",
				OrderID: "order_abc",
				Status:  PaymentStatusCaptured,
				Amount:  49900,
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(logger.NewSlogLogger(logger.EnvLocal), server.URL, "key_id", "key_secret")

	payment, err := client.FetchPayment(context.Background(), "pay_abc")
	require.NoError(t, err)
	require.Equal(t, "order_abc", payment.OrderID)
	require.Equal(t, PaymentStatusCaptured, payment.Status)

	_, err = client.FetchPayment(context.Background(), "pay_missing")
	require.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR"}}`))
	}))
	defer server.Close()

	client := NewClient(logger.NewSlogLogger(logger.EnvLocal), server.URL, "key_id", "bad_secret")

	_, err := client.CreateOrder(context.Background(), OrderRequest{Amount: 100, Currency: "INR"})
	require.Error(t, err)
}
