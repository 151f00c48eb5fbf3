package models

import "time"

// Coupon is the model for the 'coupons' table.
//
// The stored status column is what the operator toggled; whether a coupon
// is actually usable also depends on its validity window. Consumers must
// read EffectiveStatus, never the raw column, when deciding usability.
type Coupon struct {
	ID            int64      `json:"id" db:"id"`
	Code          string     `json:"code" db:"code"`
	DiscountType  string     `json:"discount_type" db:"discount_type"`
	DiscountValue float64    `json:"discount_value" db:"discount_value"`
	MinOrderValue float64    `json:"min_order_value" db:"min_order_value"`
	StartDate     *time.Time `json:"start_date" db:"start_date"`
	EndDate       *time.Time `json:"end_date" db:"end_date"`
	Status        string     `json:"status" db:"status"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`

	// Derived, never stored. Populated by EffectiveStatus before responses.
	Effective string `json:"effective_status" db:"-"`
}

// EffectiveStatus derives the status a consumer should act on:
// a coupon past its end_date is "expired" no matter what the stored
// status says; otherwise the stored status stands.
func (c *Coupon) EffectiveStatus(now time.Time) string {
	if c.EndDate != nil && c.EndDate.Before(now) {
		return "expired"
	}
	return c.Status
}
