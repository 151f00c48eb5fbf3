package models

import "time"

// Seller is the admin-dashboard view of a seller: the users row joined
// with its MOQ rule, delivery charge and service-area pincodes. Field
// names follow what the dashboard expects.
type Seller struct {
	ID             int64     `json:"id" db:"id"`
	BusinessName   *string   `json:"businessName" db:"company_name"`
	OwnerName      *string   `json:"ownerName" db:"owner_name"`
	Email          *string   `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Status         string    `json:"status" db:"status"`
	ApprovalStatus string    `json:"approval_status" db:"approval_status"`
	GSTNumber      *string   `json:"gstNumber" db:"gst_number"`
	PAN            *string   `json:"pan" db:"pan"`
	MOQ            *float64  `json:"moq" db:"moq_amount"`
	DeliveryCharge *float64  `json:"deliveryCharge" db:"charge_amount"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`

	// Populated from seller_pincodes, always a list (possibly empty).
	Pincodes []string `json:"pincodes" db:"-"`
}
