package models

import "time"

// Product is the model for the 'products' table.
type Product struct {
	ID             int64     `json:"id" db:"id"`
	SellerID       int64     `json:"seller_id" db:"seller_id"`
	CategoryID     int64     `json:"category_id" db:"category_id"`
	Name           string    `json:"name" db:"name"`
	Slug           string    `json:"slug" db:"slug"`
	Description    string    `json:"description" db:"description"`
	MRP            float64   `json:"mrp" db:"mrp"`
	WholesalePrice float64   `json:"wholesale_price" db:"wholesale_price"`
	Stock          int       `json:"stock" db:"stock"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`

	// Populated manually from product_images (not a DB column).
	// Always a list in responses, possibly empty.
	Images []string `json:"images" db:"-"`
}

// ProductImage is the model for the 'product_images' table.
// Only the first file of an upload batch is marked primary.
type ProductImage struct {
	ID        int64  `json:"id" db:"id"`
	ProductID int64  `json:"product_id" db:"product_id"`
	ImageURL  string `json:"image_url" db:"image_url"`
	IsPrimary bool   `json:"is_primary" db:"is_primary"`
}
