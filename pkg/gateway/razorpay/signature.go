package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature computes the callback HMAC the gateway produces over
// "<order_id>|<payment_id>" with the shared key secret.
func Signature(orderID, paymentID, keySecret string) string {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

func VerifySignature(orderID, paymentID, signature, keySecret string) bool {
	expected := Signature(orderID, paymentID, keySecret)

	return hmac.Equal([]byte(expected), []byte(signature))
}
