package coupons

import (
	"errors"
	"net/http"

	"artisan-backend/database"
	"artisan-backend/internal/domain/coupons"

	"github.com/gin-gonic/gin"
)

type ValidateCouponRequest struct {
	Code      string  `json:"code" binding:"required"`
	CartTotal float64 `json:"cartTotal" binding:"gte=0"`
}

// ------------------------------
// POST /api/coupons/validate
// ------------------------------
// Response keeps the storefront's envelope: {success, coupon:{...}} on
// success, {success:false, message} on any rejection.
func ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	quote, err := coupons.Validate(database.DB, req.Code, req.CartTotal)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, coupons.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "coupon": quote})
}

// ------------------------------
// POST /api/coupons/use/:code
// ------------------------------
func UseCoupon(c *gin.Context) {
	err := coupons.Redeem(database.DB, c.Param("code"))
	if err != nil {
		if errors.Is(err, coupons.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Coupon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ------------------------------
// Admin CRUD
// ------------------------------

type CouponInput struct {
	Code              string   `json:"code" binding:"required"`
	DiscountType      string   `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue     float64  `json:"discountValue" binding:"required,gt=0"`
	MinPurchaseAmount float64  `json:"minPurchaseAmount" binding:"gte=0"`
	MaxDiscountAmount *float64 `json:"maxDiscountAmount"`
	UsageLimit        *int     `json:"usageLimit"`
	ValidFrom         string   `json:"validFrom" binding:"required"`
	ValidUntil        string   `json:"validUntil" binding:"required"`
	IsActive          *bool    `json:"isActive"`
	Description       string   `json:"description"`
}

// UpdateCouponRequest uses pointers so only supplied fields change.
type UpdateCouponRequest struct {
	Code              *string  `json:"code"`
	DiscountType      *string  `json:"discountType" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue     *float64 `json:"discountValue" binding:"omitempty,gt=0"`
	MinPurchaseAmount *float64 `json:"minPurchaseAmount" binding:"omitempty,gte=0"`
	MaxDiscountAmount *float64 `json:"maxDiscountAmount"`
	UsageLimit        *int     `json:"usageLimit"`
	ValidFrom         *string  `json:"validFrom"`
	ValidUntil        *string  `json:"validUntil"`
	IsActive          *bool    `json:"isActive"`
	Description       *string  `json:"description"`
}

func CreateCoupon(c *gin.Context) {
	var req CouponInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	coupon, err := couponFromInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Create(&coupon).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Coupon code may already exist"})
		return
	}

	c.JSON(http.StatusCreated, coupon)
}

func ListCoupons(c *gin.Context) {
	var list []coupons.Coupon
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load coupons"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func UpdateCoupon(c *gin.Context) {
	var existing coupons.Coupon
	if err := database.DB.First(&existing, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}

	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := applyCouponUpdate(&existing, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Save(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
		return
	}

	c.JSON(http.StatusOK, existing)
}

func DeleteCoupon(c *gin.Context) {
	res := database.DB.Delete(&coupons.Coupon{}, c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}
