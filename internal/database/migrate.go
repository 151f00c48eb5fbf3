package database

import (
	"database/sql"

	"github.com/sirupsen/logrus"
)

// schema holds the full DDL for the platform, one statement per table.
// Statements use IF NOT EXISTS so the migration is safe to re-run.
//
// Note: users.phone intentionally carries no UNIQUE constraint; retailer
// duplicate checks happen in the registration handler, matching the
// behavior the admin dashboard was built against.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255),
		phone VARCHAR(20) NOT NULL,
		email VARCHAR(255),
		password_hash VARCHAR(255),
		role ENUM('retailer','seller','admin') NOT NULL DEFAULT 'retailer',
		approval_status ENUM('pending','approved','rejected') NOT NULL DEFAULT 'pending',
		status ENUM('active','inactive','deleted') NOT NULL DEFAULT 'active',
		company_name VARCHAR(255),
		owner_name VARCHAR(255),
		gst_number VARCHAR(32),
		pan VARCHAR(16),
		address_line1 VARCHAR(255),
		city VARCHAR(128),
		state VARCHAR(128),
		pincode VARCHAR(6),
		latitude DECIMAL(10,7),
		longitude DECIMAL(10,7),
		gst_certificate VARCHAR(512),
		shop_photo VARCHAR(512),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS user_moq_rules (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		moq_amount DECIMAL(12,2) NOT NULL DEFAULT 0,
		free_delivery TINYINT(1) NOT NULL DEFAULT 0,
		KEY idx_moq_user (user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_delivery_charges (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		charge_amount DECIMAL(12,2) NOT NULL DEFAULT 0,
		charge_type VARCHAR(16) NOT NULL DEFAULT 'flat',
		KEY idx_delivery_user (user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS seller_pincodes (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT NOT NULL,
		pincode CHAR(6) NOT NULL,
		KEY idx_pincode_user (user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		seller_id BIGINT NOT NULL,
		category_id BIGINT NOT NULL,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL,
		description TEXT,
		mrp DECIMAL(12,2) NOT NULL DEFAULT 0,
		wholesale_price DECIMAL(12,2) NOT NULL DEFAULT 0,
		stock INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_product_seller (seller_id)
	)`,
	`CREATE TABLE IF NOT EXISTS product_images (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		product_id BIGINT NOT NULL,
		image_url VARCHAR(512) NOT NULL,
		is_primary TINYINT(1) NOT NULL DEFAULT 0,
		KEY idx_image_product (product_id)
	)`,
	`CREATE TABLE IF NOT EXISTS banners (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255),
		image_url VARCHAR(512) NOT NULL,
		redirect_url VARCHAR(512),
		status ENUM('active','inactive') NOT NULL DEFAULT 'active',
		seller_id BIGINT NULL,
		display_order INT NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS coupons (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		code VARCHAR(64) NOT NULL,
		discount_type ENUM('flat','percentage') NOT NULL DEFAULT 'flat',
		discount_value DECIMAL(12,2) NOT NULL DEFAULT 0,
		min_order_value DECIMAL(12,2) NOT NULL DEFAULT 0,
		start_date DATE,
		end_date DATE,
		status ENUM('active','inactive') NOT NULL DEFAULT 'active',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Migrate applies the schema against the given pool.
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	logrus.Info("Migration completed")
	return nil
}
