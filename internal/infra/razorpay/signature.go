package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature reports whether sig is the hex HMAC-SHA256 of
// "orderID|paymentID" under secret. This is the only integrity check in
// the purchase flow, so a mismatch must fail closed.
func VerifySignature(orderID, paymentID, sig, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(sig))
}
