package razorpay

import (
	"errors"
	"net/http"

	"artisan-backend/config"
	gateway "artisan-backend/internal/infra/razorpay"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
}

// ------------------------------
// POST /api/razorpay/create-order
// ------------------------------
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	order, err := gateway.CreateOrder(req.Amount, req.Currency, req.Receipt)
	if err != nil {
		switch {
		case errors.Is(err, gateway.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Razorpay API keys are not configured properly"})
		case errors.Is(err, gateway.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid amount provided"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Razorpay order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"order_id": order.OrderID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"key_id":   order.KeyID,
	})
}

// ------------------------------
// POST /api/razorpay/verify-payment
// ------------------------------
// A signature mismatch fails closed: nothing downstream marks the order
// paid on this path.
func VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if !gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, config.RAZORPAY_KEY_SECRET) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment signature"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Payment verified successfully",
		"payment_id": req.RazorpayPaymentID,
		"order_id":   req.RazorpayOrderID,
	})
}

// ------------------------------
// GET /api/razorpay/payment/:paymentId
// ------------------------------
func GetPayment(c *gin.Context) {
	payment, err := gateway.FetchPayment(c.Param("paymentId"))
	if err != nil {
		if errors.Is(err, gateway.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Razorpay API keys are not configured properly"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch payment details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
}
