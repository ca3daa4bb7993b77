package coupons

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Coupon{}))
	return db
}

func activeWindow(now time.Time) (time.Time, time.Time) {
	return now.Add(-24 * time.Hour), now.Add(24 * time.Hour)
}

func TestEvaluatePercentageWithCap(t *testing.T) {
	now := time.Now()
	from, until := activeWindow(now)
	cp := Coupon{
		Code:              "SAVE20",
		DiscountType:      DiscountPercentage,
		DiscountValue:     20,
		MinPurchaseAmount: 1000,
		MaxDiscountAmount: floatPtr(500),
		ValidFrom:         from,
		ValidUntil:        until,
		IsActive:          true,
	}

	quote, err := cp.EvaluateAt(now, 5000)
	require.NoError(t, err)
	assert.Equal(t, float64(500), quote.DiscountAmount) // 20% of 5000 clamped to cap
	assert.Equal(t, float64(4500), quote.FinalAmount)
	assert.Equal(t, "SAVE20", quote.Code)
}

func TestEvaluateCapNeverExceeded(t *testing.T) {
	now := time.Now()
	from, until := activeWindow(now)
	cp := Coupon{
		Code:              "SAVE20",
		DiscountType:      DiscountPercentage,
		DiscountValue:     20,
		MaxDiscountAmount: floatPtr(500),
		ValidFrom:         from,
		ValidUntil:        until,
		IsActive:          true,
	}

	for _, cartTotal := range []float64{0, 100, 2500, 2501, 10000, 1e6} {
		quote, err := cp.EvaluateAt(now, cartTotal)
		require.NoError(t, err)
		assert.LessOrEqual(t, quote.DiscountAmount, float64(500), "cartTotal=%v", cartTotal)
	}
}

func TestEvaluateMinimumNotMet(t *testing.T) {
	now := time.Now()
	from, until := activeWindow(now)
	cp := Coupon{
		Code:              "SAVE20",
		DiscountType:      DiscountPercentage,
		DiscountValue:     20,
		MinPurchaseAmount: 1000,
		ValidFrom:         from,
		ValidUntil:        until,
		IsActive:          true,
	}

	_, err := cp.EvaluateAt(now, 500)
	var minErr MinPurchaseError
	require.ErrorAs(t, err, &minErr)
	assert.Equal(t, float64(1000), minErr.Required)
	assert.Equal(t, "Minimum purchase amount of ₹1000 required", err.Error())
}

func TestEvaluateFixedExceedsCartTotal(t *testing.T) {
	now := time.Now()
	from, until := activeWindow(now)
	cp := Coupon{
		Code:          "FLAT100",
		DiscountType:  DiscountFixed,
		DiscountValue: 100,
		ValidFrom:     from,
		ValidUntil:    until,
		IsActive:      true,
	}

	quote, err := cp.EvaluateAt(now, 50)
	require.NoError(t, err)
	assert.Equal(t, float64(100), quote.DiscountAmount) // fixed value verbatim
	assert.Equal(t, float64(0), quote.FinalAmount)      // floors at zero
}

func TestEvaluateUsageLimitReached(t *testing.T) {
	now := time.Now()
	from, until := activeWindow(now)
	cp := Coupon{
		Code:          "ONCE",
		DiscountType:  DiscountFixed,
		DiscountValue: 100,
		UsageLimit:    intPtr(1),
		UsedCount:     1,
		ValidFrom:     from,
		ValidUntil:    until,
		IsActive:      true,
	}

	_, err := cp.EvaluateAt(now, 5000)
	assert.ErrorIs(t, err, ErrUsageLimitReached)
}

func TestEvaluateValidityWindow(t *testing.T) {
	now := time.Now()
	cp := Coupon{
		Code:          "SOON",
		DiscountType:  DiscountFixed,
		DiscountValue: 100,
		ValidFrom:     now.Add(time.Hour),
		ValidUntil:    now.Add(48 * time.Hour),
		IsActive:      true,
	}

	_, err := cp.EvaluateAt(now, 5000)
	assert.ErrorIs(t, err, ErrExpired)

	cp.ValidFrom = now.Add(-48 * time.Hour)
	cp.ValidUntil = now.Add(-time.Hour)
	_, err = cp.EvaluateAt(now, 5000)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestEvaluateRoundsToWholeRupees(t *testing.T) {
	now := time.Now()
	from, until := activeWindow(now)
	cp := Coupon{
		Code:          "HALFOFF",
		DiscountType:  DiscountPercentage,
		DiscountValue: 12.5,
		ValidFrom:     from,
		ValidUntil:    until,
		IsActive:      true,
	}

	quote, err := cp.EvaluateAt(now, 333)
	require.NoError(t, err)
	assert.Equal(t, float64(42), quote.DiscountAmount) // 41.625 rounded
	assert.Equal(t, float64(291), quote.FinalAmount)   // 291.375 rounded
}

func TestEvaluateIsIdempotent(t *testing.T) {
	now := time.Now()
	from, until := activeWindow(now)
	cp := Coupon{
		Code:              "SAVE20",
		DiscountType:      DiscountPercentage,
		DiscountValue:     20,
		MaxDiscountAmount: floatPtr(500),
		ValidFrom:         from,
		ValidUntil:        until,
		IsActive:          true,
	}

	first, err := cp.EvaluateAt(now, 4200)
	require.NoError(t, err)
	second, err := cp.EvaluateAt(now, 4200)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateNormalizesCodeAndSkipsInactive(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)

	require.NoError(t, db.Create(&Coupon{
		Code:          "SAVE20",
		DiscountType:  DiscountFixed,
		DiscountValue: 100,
		ValidFrom:     from,
		ValidUntil:    until,
		IsActive:      true,
	}).Error)
	require.NoError(t, db.Create(&Coupon{
		Code:          "DISABLED",
		DiscountType:  DiscountFixed,
		DiscountValue: 100,
		ValidFrom:     from,
		ValidUntil:    until,
		IsActive:      false,
	}).Error)

	quote, err := Validate(db, "  save20 ", 1000)
	require.NoError(t, err)
	assert.Equal(t, float64(100), quote.DiscountAmount)

	_, err = Validate(db, "DISABLED", 1000)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Validate(db, "NOPE", 1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedeemIncrementsByExactlyOne(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)

	require.NoError(t, db.Create(&Coupon{
		Code:          "SAVE20",
		DiscountType:  DiscountFixed,
		DiscountValue: 100,
		UsageLimit:    intPtr(1),
		ValidFrom:     from,
		ValidUntil:    until,
		IsActive:      true,
	}).Error)

	require.NoError(t, Redeem(db, "save20"))

	var cp Coupon
	require.NoError(t, db.Where("code = ?", "SAVE20").First(&cp).Error)
	assert.Equal(t, 1, cp.UsedCount)

	// redeem does not re-validate; it happily overruns the limit
	require.NoError(t, Redeem(db, "SAVE20"))
	require.NoError(t, db.Where("code = ?", "SAVE20").First(&cp).Error)
	assert.Equal(t, 2, cp.UsedCount)

	assert.ErrorIs(t, Redeem(db, "NOPE"), ErrNotFound)
}

func TestRedeemDoesNotAffectValidateUntilLimit(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()
	from, until := activeWindow(now)

	require.NoError(t, db.Create(&Coupon{
		Code:          "TWICE",
		DiscountType:  DiscountFixed,
		DiscountValue: 50,
		UsageLimit:    intPtr(2),
		ValidFrom:     from,
		ValidUntil:    until,
		IsActive:      true,
	}).Error)

	_, err := Validate(db, "TWICE", 1000)
	require.NoError(t, err)

	require.NoError(t, Redeem(db, "TWICE"))
	_, err = Validate(db, "TWICE", 1000)
	require.NoError(t, err)

	require.NoError(t, Redeem(db, "TWICE"))
	_, err = Validate(db, "TWICE", 1000)
	assert.ErrorIs(t, err, ErrUsageLimitReached)
}
