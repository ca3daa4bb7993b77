package orders

import (
	"time"

	"artisan-backend/internal/domain/users"
)

// Delivery stages in their intended forward order. The tracking update
// is permissive: any stage may be set at any time, Cancelled included.
const (
	StatusOrderPlaced    = "Order Placed"
	StatusProcessing     = "Processing"
	StatusPacked         = "Packed"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
	StatusCancelled      = "Cancelled"
)

var DeliveryStatuses = []string{
	StatusOrderPlaced,
	StatusProcessing,
	StatusPacked,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

func ValidDeliveryStatus(s string) bool {
	for _, v := range DeliveryStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// OrderItem is a snapshot of a cart line at checkout time. Title, image
// and price are copied, so later edits to the painting never reprice a
// past order. PaintingID is kept for display lookups only.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"not null;index" json:"-"`
	Title      string  `gorm:"not null" json:"title"`
	Qty        int     `gorm:"not null" json:"qty"`
	ImageURL   string  `json:"imageUrl"`
	Price      float64 `gorm:"not null" json:"price"`
	PaintingID uint    `gorm:"not null" json:"painting"`
}

type ShippingAddress struct {
	Address    string `gorm:"not null" json:"address"`
	City       string `gorm:"not null" json:"city"`
	PostalCode string `gorm:"not null" json:"postalCode"`
	Country    string `gorm:"not null" json:"country"`
}

// PaymentResult is what the gateway (or an admin marking a cash order)
// told us about settlement. Stored verbatim, populated only on pay.
type PaymentResult struct {
	TransactionID string `gorm:"column:payment_transaction_id" json:"id"`
	Status        string `gorm:"column:payment_status" json:"status"`
	UpdateTime    string `gorm:"column:payment_update_time" json:"update_time"`
	EmailAddress  string `gorm:"column:payment_email_address" json:"email_address"`
}

type Order struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"not null;index" json:"-"`
	User   users.User `json:"user"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"orderItems"`

	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`

	PaymentMethod string        `gorm:"not null" json:"paymentMethod"`
	PaymentResult PaymentResult `gorm:"embedded" json:"paymentResult"`

	TotalPrice float64 `gorm:"not null;default:0" json:"totalPrice"`

	IsPaid bool       `gorm:"not null;default:false" json:"isPaid"`
	PaidAt *time.Time `json:"paidAt"`

	IsDelivered bool       `gorm:"not null;default:false" json:"isDelivered"`
	DeliveredAt *time.Time `json:"deliveredAt"`

	DeliveryPartner string `gorm:"default:''" json:"deliveryPartner"`
	TrackingID      string `gorm:"default:''" json:"trackingId"`
	DeliveryStatus  string `gorm:"type:varchar(32);not null;default:'Order Placed'" json:"deliveryStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
