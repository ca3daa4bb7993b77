package orders

import "time"

// TrackingUpdate carries the admin-supplied shipping fields. Nil means
// "leave as is".
type TrackingUpdate struct {
	DeliveryPartner *string
	TrackingID      *string
	DeliveryStatus  *string
}

// markDelivered is the single place the delivered flag and timestamp get
// stamped; both the legacy deliver operation and the status-driven path
// funnel through it.
func (o *Order) markDelivered(now time.Time) {
	o.IsDelivered = true
	o.DeliveredAt = &now
}

// MarkDelivered flips the delivered flag directly, independent of the
// delivery status. Legacy path kept for the admin dashboard's one-click
// deliver button.
func (o *Order) MarkDelivered(now time.Time) {
	o.markDelivered(now)
}

// MarkPaid records settlement as reported by the caller. The payment
// result is stored as given; verifying it is the caller's trust boundary.
func (o *Order) MarkPaid(result PaymentResult, now time.Time) {
	o.IsPaid = true
	o.PaidAt = &now
	o.PaymentResult = result
}

// ApplyTracking sets whichever shipping fields were supplied. Moving the
// status to Delivered also stamps the delivered flag if it was not set;
// moving it anywhere else never clears the flag (one-way sync).
func (o *Order) ApplyTracking(u TrackingUpdate, now time.Time) {
	if u.DeliveryPartner != nil {
		o.DeliveryPartner = *u.DeliveryPartner
	}
	if u.TrackingID != nil {
		o.TrackingID = *u.TrackingID
	}
	if u.DeliveryStatus != nil {
		o.DeliveryStatus = *u.DeliveryStatus
		if o.DeliveryStatus == StatusDelivered && !o.IsDelivered {
			o.markDelivered(now)
		}
	}
}
