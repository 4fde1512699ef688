// Package signature implements the HMAC-SHA256 proofs used by the payment
// gateway: the checkout signature over "orderID|paymentID" and the webhook
// signature over the raw event body. Comparison is constant-time in both
// cases.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Payment computes the hex HMAC-SHA256 of "orderID|paymentID" with the
// gateway key secret.
func Payment(secret, orderID, paymentID string) string {
	return compute(secret, []byte(orderID+"|"+paymentID))
}

// VerifyPayment reports whether the supplied checkout signature matches the
// recomputed one.
func VerifyPayment(secret, orderID, paymentID, supplied string) bool {
	expected := Payment(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(supplied))
}

// Webhook computes the hex HMAC-SHA256 of the exact raw body with the
// webhook secret. The webhook secret is distinct from the key secret.
func Webhook(secret string, body []byte) string {
	return compute(secret, body)
}

// VerifyWebhook reports whether the provider-supplied signature header
// matches the recomputed body signature.
func VerifyWebhook(secret string, body []byte, supplied string) bool {
	expected := Webhook(secret, body)
	return hmac.Equal([]byte(expected), []byte(supplied))
}

func compute(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
