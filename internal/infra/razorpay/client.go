package razorpay

import (
	"errors"
	"fmt"
	"math"

	"artisan-backend/config"

	"github.com/google/uuid"
	rzp "github.com/razorpay/razorpay-go"
)

var (
	// ErrNotConfigured means the gateway keys are absent; payment routes
	// fail closed rather than proceed unauthenticated.
	ErrNotConfigured = errors.New("razorpay API keys are not configured")
	ErrInvalidAmount = errors.New("invalid amount provided")
)

// GatewayOrder is the subset of the hosted order the storefront needs to
// open the checkout widget.
type GatewayOrder struct {
	OrderID  string `json:"order_id"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
	KeyID    string `json:"key_id"`
}

func newClient() (*rzp.Client, error) {
	if config.RAZORPAY_KEY_ID == "" || config.RAZORPAY_KEY_SECRET == "" {
		return nil, ErrNotConfigured
	}
	return rzp.NewClient(config.RAZORPAY_KEY_ID, config.RAZORPAY_KEY_SECRET), nil
}

// PaiseAmount converts rupees to the gateway's minor units.
func PaiseAmount(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateOrder creates a hosted order for amount rupees. Currency defaults
// to INR and receipt to a generated identifier.
func CreateOrder(amount float64, currency, receipt string) (GatewayOrder, error) {
	client, err := newClient()
	if err != nil {
		return GatewayOrder{}, err
	}
	if amount <= 0 {
		return GatewayOrder{}, ErrInvalidAmount
	}
	if currency == "" {
		currency = "INR"
	}
	if receipt == "" {
		receipt = "receipt_" + uuid.NewString()
	}

	data := map[string]interface{}{
		"amount":          PaiseAmount(amount),
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	body, err := client.Order.Create(data, nil)
	if err != nil {
		return GatewayOrder{}, fmt.Errorf("create razorpay order: %w", err)
	}

	out := GatewayOrder{
		Currency: currency,
		Amount:   PaiseAmount(amount),
		KeyID:    config.RAZORPAY_KEY_ID,
	}
	if id, ok := body["id"].(string); ok {
		out.OrderID = id
	}
	if amt, ok := body["amount"].(float64); ok {
		out.Amount = int64(amt)
	}
	if cur, ok := body["currency"].(string); ok {
		out.Currency = cur
	}
	return out, nil
}

// FetchPayment returns the gateway's record for a captured payment.
func FetchPayment(paymentID string) (map[string]interface{}, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	payment, err := client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch razorpay payment: %w", err)
	}
	return payment, nil
}
