package coupons

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type Coupon struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Code              string    `gorm:"not null;uniqueIndex:idx_coupons_code" json:"code"`
	DiscountType      string    `gorm:"type:varchar(20);not null" json:"discountType"`
	DiscountValue     float64   `gorm:"not null" json:"discountValue"`
	MinPurchaseAmount float64   `gorm:"not null;default:0" json:"minPurchaseAmount"`
	MaxDiscountAmount *float64  `json:"maxDiscountAmount"`
	UsageLimit        *int      `json:"usageLimit"` // nil = unlimited
	UsedCount         int       `gorm:"not null;default:0" json:"usedCount"`
	ValidFrom         time.Time `gorm:"not null" json:"validFrom"`
	ValidUntil        time.Time `gorm:"not null" json:"validUntil"`
	IsActive          bool      `gorm:"not null;default:true" json:"isActive"`
	Description       string    `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Quote is the outcome of evaluating a coupon against a cart subtotal.
// Amounts are rounded to the nearest rupee.
type Quote struct {
	Code           string  `json:"code"`
	DiscountType   string  `json:"discountType"`
	DiscountValue  float64 `json:"discountValue"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalAmount    float64 `json:"finalAmount"`
}

var (
	ErrNotFound          = errors.New("invalid coupon code")
	ErrExpired           = errors.New("coupon has expired or not yet valid")
	ErrUsageLimitReached = errors.New("coupon usage limit reached")
)

// MinPurchaseError carries the threshold so the message can name it.
type MinPurchaseError struct {
	Required float64
}

func (e MinPurchaseError) Error() string {
	return fmt.Sprintf("Minimum purchase amount of ₹%v required", e.Required)
}

// NormalizeCode makes a code comparable: codes are stored uppercase.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// EvaluateAt checks eligibility and computes the discount for cartTotal
// at the given instant. It never mutates the coupon: applying the
// discount is a separate step (Redeem), so two evaluations with the same
// inputs always agree.
func (cp *Coupon) EvaluateAt(now time.Time, cartTotal float64) (Quote, error) {
	if now.Before(cp.ValidFrom) || now.After(cp.ValidUntil) {
		return Quote{}, ErrExpired
	}
	// nil means unlimited; admin input normalizes a zero limit to nil
	if cp.UsageLimit != nil && cp.UsedCount >= *cp.UsageLimit {
		return Quote{}, ErrUsageLimitReached
	}
	if cartTotal < cp.MinPurchaseAmount {
		return Quote{}, MinPurchaseError{Required: cp.MinPurchaseAmount}
	}

	var discount float64
	if cp.DiscountType == DiscountPercentage {
		discount = cartTotal * cp.DiscountValue / 100
		if cp.MaxDiscountAmount != nil {
			discount = math.Min(discount, *cp.MaxDiscountAmount)
		}
	} else {
		// fixed discounts apply verbatim, even past the cart total
		discount = cp.DiscountValue
	}

	final := math.Max(0, cartTotal-discount)

	return Quote{
		Code:           cp.Code,
		DiscountType:   cp.DiscountType,
		DiscountValue:  cp.DiscountValue,
		DiscountAmount: math.Round(discount),
		FinalAmount:    math.Round(final),
	}, nil
}

// Validate looks up an active coupon by code and evaluates it against
// cartTotal. Read-only; the caller redeems separately after placing the
// order.
func Validate(db *gorm.DB, code string, cartTotal float64) (Quote, error) {
	var cp Coupon
	err := db.Where("code = ? AND is_active = ?", NormalizeCode(code), true).First(&cp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Quote{}, ErrNotFound
		}
		return Quote{}, err
	}
	return cp.EvaluateAt(time.Now(), cartTotal)
}

// Redeem bumps used_count by exactly one. It does not re-check limits:
// validate-then-redeem is two round trips, and concurrent redemptions of
// a limited coupon can overrun the limit. Known limitation.
func Redeem(db *gorm.DB, code string) error {
	res := db.Model(&Coupon{}).
		Where("code = ?", NormalizeCode(code)).
		Update("used_count", gorm.Expr("used_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
