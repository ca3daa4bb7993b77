package coupons

import (
	"errors"
	"time"

	"artisan-backend/internal/domain/coupons"
)

func couponFromInput(req CouponInput) (coupons.Coupon, error) {
	validFrom, err := time.Parse(time.RFC3339, req.ValidFrom)
	if err != nil {
		return coupons.Coupon{}, errors.New("invalid validFrom; use RFC3339")
	}
	validUntil, err := time.Parse(time.RFC3339, req.ValidUntil)
	if err != nil {
		return coupons.Coupon{}, errors.New("invalid validUntil; use RFC3339")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return coupons.Coupon{
		Code:              coupons.NormalizeCode(req.Code),
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		MinPurchaseAmount: req.MinPurchaseAmount,
		MaxDiscountAmount: req.MaxDiscountAmount,
		UsageLimit:        normalizeUsageLimit(req.UsageLimit),
		ValidFrom:         validFrom,
		ValidUntil:        validUntil,
		IsActive:          isActive,
		Description:       req.Description,
	}, nil
}

// A usage limit of zero or less means unlimited. Stored as nil so the
// evaluator never reads it as already exhausted.
func normalizeUsageLimit(limit *int) *int {
	if limit != nil && *limit <= 0 {
		return nil
	}
	return limit
}

func applyCouponUpdate(cp *coupons.Coupon, req UpdateCouponRequest) error {
	if req.Code != nil {
		cp.Code = coupons.NormalizeCode(*req.Code)
	}
	if req.DiscountType != nil {
		cp.DiscountType = *req.DiscountType
	}
	if req.DiscountValue != nil {
		cp.DiscountValue = *req.DiscountValue
	}
	if req.MinPurchaseAmount != nil {
		cp.MinPurchaseAmount = *req.MinPurchaseAmount
	}
	if req.MaxDiscountAmount != nil {
		cp.MaxDiscountAmount = req.MaxDiscountAmount
	}
	if req.UsageLimit != nil {
		cp.UsageLimit = normalizeUsageLimit(req.UsageLimit)
	}
	if req.ValidFrom != nil {
		t, err := time.Parse(time.RFC3339, *req.ValidFrom)
		if err != nil {
			return errors.New("invalid validFrom; use RFC3339")
		}
		cp.ValidFrom = t
	}
	if req.ValidUntil != nil {
		t, err := time.Parse(time.RFC3339, *req.ValidUntil)
		if err != nil {
			return errors.New("invalid validUntil; use RFC3339")
		}
		cp.ValidUntil = t
	}
	if req.IsActive != nil {
		cp.IsActive = *req.IsActive
	}
	if req.Description != nil {
		cp.Description = *req.Description
	}
	return nil
}
