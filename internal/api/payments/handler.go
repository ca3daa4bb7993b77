package payments

import (
	"math"
	"net/http"

	"artisan-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	checkoutsession "github.com/stripe/stripe-go/v75/checkout/session"
)

type CheckoutItem struct {
	Title    string  `json:"title" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Discount float64 `json:"discount"`
	ImageURL string  `json:"imageUrl"`
}

type CreateCheckoutSessionRequest struct {
	Items []CheckoutItem `json:"items" binding:"required,min=1"`
}

// DiscountedUnitAmount applies the painting's percent discount and
// converts to paise.
func DiscountedUnitAmount(price, discount float64) int64 {
	final := price
	if discount > 0 {
		final = price - (price * discount / 100)
	}
	return int64(math.Round(final * 100))
}

// ------------------------------
// POST /api/payments/create-checkout-session
// ------------------------------
func CreateCheckoutSession(c *gin.Context) {
	var req CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stripe.Key = config.STRIPE_SECRET_KEY
	if stripe.Key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stripe key not configured"})
		return
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("inr"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:   stripe.String(item.Title),
					Images: []*string{stripe.String(item.ImageURL)},
				},
				UnitAmount: stripe.Int64(DiscountedUnitAmount(item.Price, item.Discount)),
			},
			Quantity: stripe.Int64(1),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: []*string{stripe.String("card")},
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(config.FRONTEND_URL + "/success"),
		CancelURL:          stripe.String(config.FRONTEND_URL + "/cancel"),
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": s.ID})
}
