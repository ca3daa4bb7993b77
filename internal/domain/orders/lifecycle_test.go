package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newPlacedOrder() Order {
	return Order{
		UserID:         1,
		PaymentMethod:  "Razorpay",
		TotalPrice:     4500,
		DeliveryStatus: StatusOrderPlaced,
	}
}

func TestApplyTrackingDeliveredSyncsFlag(t *testing.T) {
	o := newPlacedOrder()
	now := time.Now()

	o.ApplyTracking(TrackingUpdate{DeliveryStatus: strPtr(StatusDelivered)}, now)

	assert.True(t, o.IsDelivered)
	require.NotNil(t, o.DeliveredAt)
	assert.Equal(t, now, *o.DeliveredAt)
	assert.Equal(t, StatusDelivered, o.DeliveryStatus)
}

func TestApplyTrackingOtherStatusLeavesFlag(t *testing.T) {
	o := newPlacedOrder()
	now := time.Now()

	o.ApplyTracking(TrackingUpdate{DeliveryStatus: strPtr(StatusShipped)}, now)
	assert.False(t, o.IsDelivered)
	assert.Nil(t, o.DeliveredAt)

	// sync is one-way: leaving Delivered never clears the flag
	o.ApplyTracking(TrackingUpdate{DeliveryStatus: strPtr(StatusDelivered)}, now)
	require.True(t, o.IsDelivered)
	stamped := *o.DeliveredAt

	later := now.Add(time.Hour)
	o.ApplyTracking(TrackingUpdate{DeliveryStatus: strPtr(StatusProcessing)}, later)
	assert.True(t, o.IsDelivered)
	assert.Equal(t, stamped, *o.DeliveredAt)
}

func TestApplyTrackingDoesNotRestamp(t *testing.T) {
	o := newPlacedOrder()
	now := time.Now()

	o.MarkDelivered(now)
	stamped := *o.DeliveredAt

	later := now.Add(time.Hour)
	o.ApplyTracking(TrackingUpdate{DeliveryStatus: strPtr(StatusDelivered)}, later)
	assert.Equal(t, stamped, *o.DeliveredAt)
}

func TestApplyTrackingPartialFields(t *testing.T) {
	o := newPlacedOrder()
	now := time.Now()

	o.ApplyTracking(TrackingUpdate{DeliveryPartner: strPtr("BlueDart")}, now)
	assert.Equal(t, "BlueDart", o.DeliveryPartner)
	assert.Equal(t, "", o.TrackingID)
	assert.Equal(t, StatusOrderPlaced, o.DeliveryStatus)

	o.ApplyTracking(TrackingUpdate{TrackingID: strPtr("BD123456")}, now)
	assert.Equal(t, "BlueDart", o.DeliveryPartner)
	assert.Equal(t, "BD123456", o.TrackingID)
	assert.Equal(t, StatusOrderPlaced, o.DeliveryStatus)
}

func TestApplyTrackingIsPermissive(t *testing.T) {
	o := newPlacedOrder()
	now := time.Now()

	// no forward-only enforcement; Cancelled reachable from anywhere
	o.ApplyTracking(TrackingUpdate{DeliveryStatus: strPtr(StatusOutForDelivery)}, now)
	assert.Equal(t, StatusOutForDelivery, o.DeliveryStatus)

	o.ApplyTracking(TrackingUpdate{DeliveryStatus: strPtr(StatusPacked)}, now)
	assert.Equal(t, StatusPacked, o.DeliveryStatus)

	o.ApplyTracking(TrackingUpdate{DeliveryStatus: strPtr(StatusCancelled)}, now)
	assert.Equal(t, StatusCancelled, o.DeliveryStatus)
}

func TestMarkDeliveredLegacyPath(t *testing.T) {
	o := newPlacedOrder()
	now := time.Now()

	o.MarkDelivered(now)

	assert.True(t, o.IsDelivered)
	require.NotNil(t, o.DeliveredAt)
	// legacy deliver does not touch the status
	assert.Equal(t, StatusOrderPlaced, o.DeliveryStatus)
}

func TestMarkPaidStoresResultVerbatim(t *testing.T) {
	o := newPlacedOrder()
	now := time.Now()

	result := PaymentResult{
		TransactionID: "pay_ABC123",
		Status:        "captured",
		UpdateTime:    "2026-08-30T12:00:00Z",
		EmailAddress:  "buyer@example.com",
	}
	o.MarkPaid(result, now)

	assert.True(t, o.IsPaid)
	require.NotNil(t, o.PaidAt)
	assert.Equal(t, now, *o.PaidAt)
	assert.Equal(t, result, o.PaymentResult)
	assert.False(t, o.IsDelivered)
}

func TestValidDeliveryStatus(t *testing.T) {
	for _, s := range DeliveryStatuses {
		assert.True(t, ValidDeliveryStatus(s), s)
	}
	assert.False(t, ValidDeliveryStatus("Teleported"))
	assert.False(t, ValidDeliveryStatus(""))
	assert.False(t, ValidDeliveryStatus("delivered"))
}
