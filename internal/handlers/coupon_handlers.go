package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stepkart/stepkart-golang/internal/models"
)

// timeNow is stubbed in tests that pin the clock.
var timeNow = time.Now

// --- Coupon Management ---

// CouponInput covers both create and update; update is a full overwrite,
// every mutable field is replaced.
type CouponInput struct {
	Code          string  `json:"code" binding:"required"`
	DiscountType  string  `json:"discount_type" binding:"required,oneof=flat percentage"`
	DiscountValue float64 `json:"discount_value"`
	MinOrderValue float64 `json:"min_order_value"`
	StartDate     *string `json:"start_date"`
	EndDate       *string `json:"end_date"`
	Status        string  `json:"status" binding:"required,oneof=active inactive"`
}

// CreateCoupon is the handler for POST /api/coupons.
// Code uniqueness is intentionally not checked; duplicates are the
// operator's problem, as in the dashboard this API was built for.
func (h *Handlers) CreateCoupon(c *gin.Context) {
	var input CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	query := `
		INSERT INTO coupons
		(code, discount_type, discount_value, min_order_value, start_date, end_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		input.Code,
		input.DiscountType,
		input.DiscountValue,
		input.MinOrderValue,
		input.StartDate,
		input.EndDate,
		input.Status,
	)
	if err != nil {
		logrus.WithError(err).Error("coupon insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create coupon"})
		return
	}

	id, _ := result.LastInsertId()
	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon created successfully",
		"id":      id,
	})
}

// GetCoupons is the handler for GET /api/coupons, newest first.
// Every row carries effective_status so no consumer has to re-derive
// expiry from the dates themselves.
func (h *Handlers) GetCoupons(c *gin.Context) {
	query := `
		SELECT id, code, discount_type, discount_value, min_order_value,
		       start_date, end_date, status, created_at
		FROM coupons
		ORDER BY id DESC`

	rows, err := h.DB.Query(query)
	if err != nil {
		logrus.WithError(err).Error("coupon list query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch coupons"})
		return
	}
	defer rows.Close()

	now := timeNow()
	coupons := []models.Coupon{}
	for rows.Next() {
		var cp models.Coupon
		if err := rows.Scan(
			&cp.ID,
			&cp.Code,
			&cp.DiscountType,
			&cp.DiscountValue,
			&cp.MinOrderValue,
			&cp.StartDate,
			&cp.EndDate,
			&cp.Status,
			&cp.CreatedAt,
		); err != nil {
			logrus.WithError(err).Error("coupon row scan failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch coupons"})
			return
		}
		cp.Effective = cp.EffectiveStatus(now)
		coupons = append(coupons, cp)
	}
	if err := rows.Err(); err != nil {
		logrus.WithError(err).Error("coupon rows iteration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch coupons"})
		return
	}

	c.JSON(http.StatusOK, coupons)
}

// UpdateCoupon is the handler for PUT /api/coupons/:id.
func (h *Handlers) UpdateCoupon(c *gin.Context) {
	var input CouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	query := `
		UPDATE coupons SET
		code = ?, discount_type = ?, discount_value = ?,
		min_order_value = ?, start_date = ?, end_date = ?, status = ?
		WHERE id = ?`

	if _, err := h.DB.Exec(query,
		input.Code,
		input.DiscountType,
		input.DiscountValue,
		input.MinOrderValue,
		input.StartDate,
		input.EndDate,
		input.Status,
		c.Param("id"),
	); err != nil {
		logrus.WithError(err).Error("coupon update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update coupon"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon updated successfully"})
}

// DeleteCoupon is the handler for DELETE /api/coupons/:id.
func (h *Handlers) DeleteCoupon(c *gin.Context) {
	if _, err := h.DB.Exec("DELETE FROM coupons WHERE id = ?", c.Param("id")); err != nil {
		logrus.WithError(err).Error("coupon delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete coupon"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}
