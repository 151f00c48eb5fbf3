package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stepkart/stepkart-golang/internal/models"
)

// --- Banner Management ---

// GetBanners is the handler for GET /api/banners.
// Returns every banner, active or not, ordered for display; the
// dashboard and the storefront filter by status themselves.
func (h *Handlers) GetBanners(c *gin.Context) {
	query := `
		SELECT id, title, image_url, redirect_url, status, seller_id, display_order, created_at
		FROM banners
		ORDER BY display_order ASC`

	rows, err := h.DB.Query(query)
	if err != nil {
		logrus.WithError(err).Error("banner list query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch banners"})
		return
	}
	defer rows.Close()

	banners := []models.Banner{}
	for rows.Next() {
		var b models.Banner
		if err := rows.Scan(
			&b.ID,
			&b.Title,
			&b.ImageURL,
			&b.RedirectURL,
			&b.Status,
			&b.SellerID,
			&b.DisplayOrder,
			&b.CreatedAt,
		); err != nil {
			logrus.WithError(err).Error("banner row scan failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch banners"})
			return
		}
		banners = append(banners, b)
	}
	if err := rows.Err(); err != nil {
		logrus.WithError(err).Error("banner rows iteration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch banners"})
		return
	}

	c.JSON(http.StatusOK, banners)
}

// AddBanner is the handler for POST /api/banners (admin or seller).
// The image is mandatory; a seller's banner is tied to their account,
// an admin's banner is platform-wide (seller_id NULL).
func (h *Handlers) AddBanner(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
		return
	}

	title := c.PostForm("title")
	redirectURL := c.PostForm("redirect_url")
	status := c.PostForm("status")

	// ADMIN -> NULL, SELLER -> seller ID
	var sellerID *int64
	if role, _ := c.Get("userRole"); role == "seller" {
		userID := c.MustGet("userID").(int64)
		sellerID = &userID
	}

	filename, err := h.saveUpload(c, file, "banners")
	if err != nil {
		logrus.WithError(err).Error("banner upload save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file"})
		return
	}
	imageURL := "/uploads/banners/" + filename

	// New banners always enter at display_order 0 until manually
	// reordered from the dashboard.
	query := `
		INSERT INTO banners
		(title, image_url, redirect_url, status, seller_id, display_order)
		VALUES (?, ?, ?, ?, ?, 0)`

	result, err := h.DB.Exec(query, title, imageURL, nullable(redirectURL), status, sellerID)
	if err != nil {
		logrus.WithError(err).Error("banner insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add banner"})
		return
	}

	id, _ := result.LastInsertId()
	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"message": "Banner added successfully",
	})
}

// UpdateBanner is the handler for PUT /api/banners/:id.
// Title, redirect and status are always overwritten; the image column is
// touched only when a replacement file was uploaded.
func (h *Handlers) UpdateBanner(c *gin.Context) {
	id := c.Param("id")

	title := c.PostForm("title")
	redirectURL := c.PostForm("redirect_url")
	status := c.PostForm("status")

	query := "UPDATE banners SET title = ?, redirect_url = ?, status = ?"
	args := []interface{}{title, nullable(redirectURL), status}

	if file, err := c.FormFile("image"); err == nil {
		filename, err := h.saveUpload(c, file, "banners")
		if err != nil {
			logrus.WithError(err).Error("banner upload save failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file"})
			return
		}
		query += ", image_url = ?"
		args = append(args, "/uploads/banners/"+filename)
	}

	query += " WHERE id = ?"
	args = append(args, id)

	if _, err := h.DB.Exec(query, args...); err != nil {
		logrus.WithError(err).Error("banner update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update banner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Banner updated successfully"})
}

// DeleteBanner is the handler for DELETE /api/banners/:id (admin).
// Deleting an id that is already gone is a silent no-op success.
func (h *Handlers) DeleteBanner(c *gin.Context) {
	if _, err := h.DB.Exec("DELETE FROM banners WHERE id = ?", c.Param("id")); err != nil {
		logrus.WithError(err).Error("banner delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete banner"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Banner deleted"})
}

type BannerStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateBannerStatus is the handler for PUT /api/banners/:id/status.
// The caller supplies the target status directly; there is no toggle
// logic server-side.
func (h *Handlers) UpdateBannerStatus(c *gin.Context) {
	var input BannerStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if _, err := h.DB.Exec("UPDATE banners SET status = ? WHERE id = ?", input.Status, c.Param("id")); err != nil {
		logrus.WithError(err).Error("banner status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// UpdateBannerOrder is the handler for PUT /api/banners/reorder/save (admin).
// All position updates apply inside one transaction: either the whole new
// ordering lands or none of it does.
func (h *Handlers) UpdateBannerOrder(c *gin.Context) {
	var items []models.BannerOrderItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tx, err := h.DB.Begin()
	if err != nil {
		logrus.WithError(err).Error("banner reorder tx begin failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
		return
	}
	defer tx.Rollback()

	for _, item := range items {
		if _, err := tx.Exec("UPDATE banners SET display_order = ? WHERE id = ?", item.Order, item.ID); err != nil {
			logrus.WithError(err).WithField("banner_id", item.ID).Error("banner reorder update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Error("banner reorder commit failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}
