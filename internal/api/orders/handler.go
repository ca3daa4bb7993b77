package orders

import (
	"net/http"
	"time"

	"artisan-backend/database"
	"artisan-backend/internal/domain/orders"

	"github.com/gin-gonic/gin"
)

// Money fields deliberately omit "required": a fully discounted order
// prices at ₹0, and the validator reads required zeroes as missing.
type OrderItemInput struct {
	Title    string  `json:"title" binding:"required"`
	Qty      int     `json:"qty" binding:"required,gt=0"`
	ImageURL string  `json:"imageUrl"`
	Price    float64 `json:"price" binding:"gte=0"`
	Painting uint    `json:"painting" binding:"required"`
}

type ShippingAddressInput struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type CreateOrderRequest struct {
	OrderItems      []OrderItemInput     `json:"orderItems"`
	ShippingAddress ShippingAddressInput `json:"shippingAddress" binding:"required"`
	PaymentMethod   string               `json:"paymentMethod" binding:"required"`
	TotalPrice      float64              `json:"totalPrice" binding:"gte=0"`
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// ------------------------------
// POST /api/orders
// ------------------------------
// Line items are persisted as snapshots of the cart; later painting
// edits never touch a placed order. The submitted total is stored as
// given, not recomputed from item prices.
func CreateOrder(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.OrderItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No order items"})
		return
	}

	items := make([]orders.OrderItem, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		items = append(items, orders.OrderItem{
			Title:      it.Title,
			Qty:        it.Qty,
			ImageURL:   it.ImageURL,
			Price:      it.Price,
			PaintingID: it.Painting,
		})
	}

	order := orders.Order{
		UserID: userID,
		Items:  items,
		ShippingAddress: orders.ShippingAddress{
			Address:    req.ShippingAddress.Address,
			City:       req.ShippingAddress.City,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		PaymentMethod:  req.PaymentMethod,
		TotalPrice:     req.TotalPrice,
		DeliveryStatus: orders.StatusOrderPlaced,
	}

	if err := database.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// ------------------------------
// GET /api/orders  (admin)
// ------------------------------
func ListOrders(c *gin.Context) {
	var list []orders.Order
	err := database.DB.
		Preload("User").
		Preload("Items").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /api/orders/myorders
// ------------------------------
func ListMyOrders(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []orders.Order
	err := database.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// ------------------------------
// GET /api/orders/:id
// ------------------------------
// Customers can only read their own orders; admins can read any.
func GetOrder(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var order orders.Order
	err := database.DB.
		Preload("User").
		Preload("Items").
		First(&order, c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if order.UserID != userID && c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// ------------------------------
// PUT /api/orders/:id/pay  (admin)
// ------------------------------
func PayOrder(c *gin.Context) {
	var body struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		UpdateTime   string `json:"update_time"`
		EmailAddress string `json:"email_address"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order orders.Order
	if err := database.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	order.MarkPaid(orders.PaymentResult{
		TransactionID: body.ID,
		Status:        body.Status,
		UpdateTime:    body.UpdateTime,
		EmailAddress:  body.EmailAddress,
	}, time.Now())

	if err := database.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// ------------------------------
// PUT /api/orders/:id/deliver  (admin, legacy one-click deliver)
// ------------------------------
func DeliverOrder(c *gin.Context) {
	var order orders.Order
	if err := database.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	order.MarkDelivered(time.Now())

	if err := database.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// ------------------------------
// PUT /api/orders/:id/tracking  (admin)
// ------------------------------
func UpdateTracking(c *gin.Context) {
	var body struct {
		DeliveryPartner *string `json:"deliveryPartner"`
		TrackingID      *string `json:"trackingId"`
		DeliveryStatus  *string `json:"deliveryStatus"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if body.DeliveryStatus != nil && !orders.ValidDeliveryStatus(*body.DeliveryStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown delivery status"})
		return
	}

	var order orders.Order
	if err := database.DB.Preload("Items").First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	order.ApplyTracking(orders.TrackingUpdate{
		DeliveryPartner: body.DeliveryPartner,
		TrackingID:      body.TrackingID,
		DeliveryStatus:  body.DeliveryStatus,
	}, time.Now())

	if err := database.DB.Save(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
