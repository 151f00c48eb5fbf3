package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/sirupsen/logrus"
	"github.com/stepkart/stepkart-golang/internal/models"
)

// --- Product Catalog ---

// AddProduct is the handler for POST /api/products/add.
// Multipart form: product fields plus 0..N image files under "images".
// The product row and its image rows land in one transaction; the first
// uploaded file becomes the primary image.
//
// The dashboard enforces a minimum of three images; the API deliberately
// does not, so a product with zero images is a valid outcome here.
func (h *Handlers) AddProduct(c *gin.Context) {
	userIDRaw, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	sellerID := userIDRaw.(int64)

	name := c.PostForm("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product name is required"})
		return
	}
	description := c.PostForm("description")

	// Numeric form fields arrive as strings; coerce, defaulting junk to 0.
	mrp := parseFloat(c.PostForm("mrp"))
	wholesalePrice := parseFloat(c.PostForm("wholesale_price"))
	categoryID := parseInt(c.PostForm("category_id"))
	stock := parseInt(c.PostForm("stock"))

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["images"]
	}

	tx, err := h.DB.Begin()
	if err != nil {
		logrus.WithError(err).Error("product tx begin failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add product"})
		return
	}
	defer tx.Rollback()

	productQuery := `
		INSERT INTO products
		(seller_id, category_id, name, slug, description, mrp, wholesale_price, stock)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := tx.Exec(productQuery,
		sellerID,
		categoryID,
		name,
		slug.Make(name),
		description,
		mrp,
		wholesalePrice,
		stock,
	)
	if err != nil {
		logrus.WithError(err).Error("product insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add product"})
		return
	}

	productID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add product"})
		return
	}

	imageQuery := `INSERT INTO product_images (product_id, image_url, is_primary) VALUES (?, ?, ?)`
	for i, f := range files {
		filename, err := h.saveUpload(c, f, "")
		if err != nil {
			logrus.WithError(err).Error("product image save failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file"})
			return
		}
		if _, err := tx.Exec(imageQuery, productID, filename, i == 0); err != nil {
			logrus.WithError(err).Error("product image insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add product"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Error("product commit failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Product added successfully",
		"productId": productID,
	})
}

// GetMyProducts is the handler for GET /api/products/my.
// Returns the acting seller's catalog with image filename lists attached.
func (h *Handlers) GetMyProducts(c *gin.Context) {
	userIDRaw, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	sellerID := userIDRaw.(int64)

	query := `
		SELECT id, seller_id, category_id, name, slug, description, mrp, wholesale_price, stock, created_at
		FROM products
		WHERE seller_id = ?
		ORDER BY created_at DESC`

	rows, err := h.DB.Query(query, sellerID)
	if err != nil {
		logrus.WithError(err).Error("product list query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}
	defer rows.Close()

	products := []*models.Product{}
	ids := []interface{}{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID,
			&p.SellerID,
			&p.CategoryID,
			&p.Name,
			&p.Slug,
			&p.Description,
			&p.MRP,
			&p.WholesalePrice,
			&p.Stock,
			&p.CreatedAt,
		); err != nil {
			logrus.WithError(err).Error("product row scan failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}
		p.Images = []string{}
		products = append(products, &p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		logrus.WithError(err).Error("product rows iteration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}

	// Attach images with one IN query instead of a per-product round trip.
	if len(ids) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
		imgQuery := `SELECT product_id, image_url FROM product_images WHERE product_id IN (` + placeholders + `) ORDER BY is_primary DESC, id ASC`

		imgRows, err := h.DB.Query(imgQuery, ids...)
		if err != nil {
			logrus.WithError(err).Error("product image query failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}
		defer imgRows.Close()

		byID := map[int64]*models.Product{}
		for _, p := range products {
			byID[p.ID] = p
		}
		for imgRows.Next() {
			var productID int64
			var imageURL string
			if err := imgRows.Scan(&productID, &imageURL); err != nil {
				logrus.WithError(err).Error("product image scan failed")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
				return
			}
			if p, ok := byID[productID]; ok {
				p.Images = append(p.Images, imageURL)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// parseFloat coerces a numeric form field, defaulting to 0 on junk.
func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
