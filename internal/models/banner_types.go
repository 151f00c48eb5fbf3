package models

import "time"

// Banner is the model for the 'banners' table.
// SellerID is nil for platform-wide banners owned by the admin.
type Banner struct {
	ID           int64     `json:"id" db:"id"`
	Title        *string   `json:"title" db:"title"`
	ImageURL     string    `json:"image_url" db:"image_url"`
	RedirectURL  *string   `json:"redirect_url" db:"redirect_url"`
	Status       string    `json:"status" db:"status"`
	SellerID     *int64    `json:"seller_id" db:"seller_id"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// BannerOrderItem is one entry of the bulk reorder payload.
type BannerOrderItem struct {
	ID    int64 `json:"id" binding:"required"`
	Order int   `json:"order"`
}
