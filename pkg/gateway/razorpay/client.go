package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/feastly/payment_service/pkg/logger"
)

const DefaultBaseURL = "https://api.razorpay.com/v1"

var ErrPaymentNotFound = errors.New("payment not found on gateway")

// PaymentStatusCaptured means funds were successfully charged for the
// payment id; only captured payments may be turned into orders.
const PaymentStatusCaptured = "captured"

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Payment struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Method    string `json:"method"`
	CreatedAt int64  `json:"created_at"`
}

type OrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type Client struct {
	log logger.Logger

	httpClient *http.Client
	baseURL    string
	keyID      string
	keySecret  string
}

func NewClient(log logger.Logger, baseURL, keyID, keySecret string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		log:        log,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		keyID:      keyID,
		keySecret:  keySecret,
	}
}

func (c *Client) CreateOrder(ctx context.Context, orderReq OrderRequest) (*Order, error) {
	const op = "gateway.razorpay.CreateOrder"

	body, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("%s: marshal request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	var order Order
	if err = c.do(req, op, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	const op = "gateway.razorpay.FetchPayment"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+paymentID, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)

	var payment Payment
	if err = c.do(req, op, &payment); err != nil {
		return nil, err
	}

	return &payment, nil
}

// VerifySignature checks the HMAC the gateway attached to its success
// callback. Comparison is constant-time.
func (c *Client) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, c.keySecret)
}

func (c *Client) do(req *http.Request, op string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(op, logger.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return ErrPaymentNotFound
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.log.Error(op,
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(data)),
		)
		return fmt.Errorf("%s: gateway responded with status %d", op, resp.StatusCode)
	}

	if err = json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}

	return nil
}
