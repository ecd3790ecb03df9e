package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

const (
	PaymentTypeOnline = "online"
	PaymentTypeCOD    = "cod"

	// CODPaymentID is the sentinel payment id passed to the placement
	// function for cash-on-delivery orders.
	CODPaymentID = "cod"
)

// OrderPayload is the caller-supplied parameter bag forwarded verbatim to the
// order placement function. The backend only reads the user id and payment
// type discriminator; everything else is opaque.
type OrderPayload map[string]any

func (p OrderPayload) UserID() string {
	return p.stringField("p_user_id")
}

func (p OrderPayload) PaymentType() string {
	return p.stringField("p_payment_type")
}

func (p OrderPayload) stringField(key string) string {
	value, ok := p[key].(string)
	if !ok {
		return ""
	}
	return value
}

// CanonicalDigest returns the hex SHA-256 of the stable JSON serialization of
// the payload. encoding/json emits map keys in sorted order, so two payloads
// with equal contents always produce equal digests regardless of the order
// the client sent the fields in.
func (p OrderPayload) CanonicalDigest() (string, error) {
	raw, err := json.Marshal(map[string]any(p))
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(raw)

	return hex.EncodeToString(sum[:]), nil
}

// WithPaymentID copies the payload and sets p_payment_id. The original is
// left untouched so the digest computed over it stays comparable.
func (p OrderPayload) WithPaymentID(paymentID string) OrderPayload {
	params := make(OrderPayload, len(p)+1)
	for key, value := range p {
		params[key] = value
	}
	params["p_payment_id"] = paymentID

	return params
}
