package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stepkart/stepkart-golang/internal/models"
)

// --- Seller Lifecycle ---

type SellerInput struct {
	BusinessName   string   `json:"businessName"`
	OwnerName      string   `json:"ownerName"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Password       string   `json:"password"`
	GSTNumber      string   `json:"gstNumber"`
	PAN            string   `json:"pan"`
	MOQ            float64  `json:"moq"`
	DeliveryCharge float64  `json:"deliveryCharge"`
	Pincodes       []string `json:"pincodes"`
}

var pincodePattern = regexp.MustCompile(`^\d{6}$`)

// validPincodes trims the supplied list and keeps only exact 6-digit
// entries. Invalid and empty values are dropped without an error; the
// dashboard pre-validates, anything else is not worth failing the whole
// seller write for.
func validPincodes(raw []string) []string {
	out := []string{}
	for _, r := range raw {
		pincode := strings.TrimSpace(r)
		if pincode == "" {
			continue
		}
		if !pincodePattern.MatchString(pincode) {
			continue
		}
		out = append(out, pincode)
	}
	return out
}

// CreateSeller is the handler for POST /api/sellers.
// One transaction covers the users row, the MOQ rule, the delivery
// charge and the pincode list: a failed step leaves no partial seller.
func (h *Handlers) CreateSeller(c *gin.Context) {
	var input SellerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if input.BusinessName == "" || input.OwnerName == "" || input.Email == "" ||
		input.Phone == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	tx, err := h.DB.Begin()
	if err != nil {
		logrus.WithError(err).Error("seller tx begin failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	defer tx.Rollback()

	// 1. --- users ---
	userQuery := `
		INSERT INTO users
		(name, company_name, owner_name, email, phone, password_hash,
		 role, approval_status, status, gst_number, pan)
		VALUES (?, ?, ?, ?, ?, ?, 'seller', 'pending', 'inactive', ?, ?)`

	result, err := tx.Exec(userQuery,
		input.OwnerName,
		input.BusinessName,
		input.OwnerName,
		input.Email,
		input.Phone,
		password.Hash,
		nullable(input.GSTNumber),
		nullable(input.PAN),
	)
	if err != nil {
		logrus.WithError(err).Error("seller insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	userID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	// 2. --- MOQ rule ---
	if _, err := tx.Exec(
		`INSERT INTO user_moq_rules (user_id, moq_amount, free_delivery) VALUES (?, ?, 0)`,
		userID, input.MOQ,
	); err != nil {
		logrus.WithError(err).Error("moq insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	// 3. --- Delivery charge ---
	if _, err := tx.Exec(
		`INSERT INTO user_delivery_charges (user_id, charge_amount, charge_type) VALUES (?, ?, 'flat')`,
		userID, input.DeliveryCharge,
	); err != nil {
		logrus.WithError(err).Error("delivery charge insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	// 4. --- Service-area pincodes ---
	for _, pincode := range validPincodes(input.Pincodes) {
		if _, err := tx.Exec(
			`INSERT INTO seller_pincodes (user_id, pincode) VALUES (?, ?)`,
			userID, pincode,
		); err != nil {
			logrus.WithError(err).Error("pincode insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Error("seller commit failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Seller created (Approval Pending)"})
}

// GetSellers is the handler for GET /api/sellers.
// Sellers joined with their MOQ and delivery rules; pincodes come from a
// second relation query and are returned as a real list.
func (h *Handlers) GetSellers(c *gin.Context) {
	query := `
		SELECT
			u.id, u.company_name, u.owner_name, u.email, u.phone,
			u.status, u.approval_status, u.created_at, u.gst_number, u.pan,
			m.moq_amount, d.charge_amount
		FROM users u
		LEFT JOIN user_moq_rules m ON u.id = m.user_id
		LEFT JOIN user_delivery_charges d ON u.id = d.user_id
		WHERE u.role = 'seller'
		ORDER BY u.created_at DESC`

	rows, err := h.DB.Query(query)
	if err != nil {
		logrus.WithError(err).Error("seller list query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	defer rows.Close()

	sellers := []*models.Seller{}
	ids := []interface{}{}
	for rows.Next() {
		var s models.Seller
		if err := rows.Scan(
			&s.ID,
			&s.BusinessName,
			&s.OwnerName,
			&s.Email,
			&s.Phone,
			&s.Status,
			&s.ApprovalStatus,
			&s.CreatedAt,
			&s.GSTNumber,
			&s.PAN,
			&s.MOQ,
			&s.DeliveryCharge,
		); err != nil {
			logrus.WithError(err).Error("seller row scan failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		s.Pincodes = []string{}
		sellers = append(sellers, &s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		logrus.WithError(err).Error("seller rows iteration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if len(ids) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
		pinQuery := `SELECT user_id, pincode FROM seller_pincodes WHERE user_id IN (` + placeholders + `)`

		pinRows, err := h.DB.Query(pinQuery, ids...)
		if err != nil {
			logrus.WithError(err).Error("pincode query failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		defer pinRows.Close()

		byID := map[int64]*models.Seller{}
		for _, s := range sellers {
			byID[s.ID] = s
		}
		for pinRows.Next() {
			var userID int64
			var pincode string
			if err := pinRows.Scan(&userID, &pincode); err != nil {
				logrus.WithError(err).Error("pincode scan failed")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
				return
			}
			if s, ok := byID[userID]; ok {
				s.Pincodes = append(s.Pincodes, pincode)
			}
		}
	}

	c.JSON(http.StatusOK, sellers)
}

type SellerStatusInput struct {
	Status string `json:"status"`
}

// UpdateSellerActiveStatus is the handler for PUT /api/sellers/:id/status.
func (h *Handlers) UpdateSellerActiveStatus(c *gin.Context) {
	var input SellerStatusInput
	_ = c.ShouldBindJSON(&input)

	if input.Status != "active" && input.Status != "inactive" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	if _, err := h.DB.Exec(
		`UPDATE users SET status = ? WHERE id = ? AND role = 'seller'`,
		input.Status, c.Param("id"),
	); err != nil {
		logrus.WithError(err).Error("seller status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Seller status updated"})
}

// UpdateSeller is the handler for PUT /api/sellers/:id.
// Business fields, MOQ and delivery rows are overwritten, and the
// pincode list is replaced wholesale (delete-all then re-insert), all in
// one transaction.
func (h *Handlers) UpdateSeller(c *gin.Context) {
	id := c.Param("id")

	var input SellerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	tx, err := h.DB.Begin()
	if err != nil {
		logrus.WithError(err).Error("seller update tx begin failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	defer tx.Rollback()

	// 1. --- users ---
	if _, err := tx.Exec(
		`UPDATE users
		 SET company_name = ?, owner_name = ?, phone = ?, gst_number = ?, pan = ?
		 WHERE id = ? AND role = 'seller'`,
		input.BusinessName, input.OwnerName, input.Phone,
		nullable(input.GSTNumber), nullable(input.PAN), id,
	); err != nil {
		logrus.WithError(err).Error("seller update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	// 2. --- MOQ / delivery (rows created at seller creation; no upsert) ---
	if _, err := tx.Exec(
		`UPDATE user_moq_rules SET moq_amount = ? WHERE user_id = ?`,
		input.MOQ, id,
	); err != nil {
		logrus.WithError(err).Error("moq update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if _, err := tx.Exec(
		`UPDATE user_delivery_charges SET charge_amount = ? WHERE user_id = ?`,
		input.DeliveryCharge, id,
	); err != nil {
		logrus.WithError(err).Error("delivery charge update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	// 3. --- Replace the pincode set ---
	if _, err := tx.Exec(`DELETE FROM seller_pincodes WHERE user_id = ?`, id); err != nil {
		logrus.WithError(err).Error("pincode delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	for _, pincode := range validPincodes(input.Pincodes) {
		if _, err := tx.Exec(
			`INSERT INTO seller_pincodes (user_id, pincode) VALUES (?, ?)`,
			id, pincode,
		); err != nil {
			logrus.WithError(err).Error("pincode insert failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).Error("seller update commit failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Seller updated successfully"})
}

// DeleteSeller is the handler for DELETE /api/sellers/:id.
// Soft delete only: the row stays, related MOQ/delivery/pincode rows are
// left untouched.
func (h *Handlers) DeleteSeller(c *gin.Context) {
	if _, err := h.DB.Exec(
		`UPDATE users SET status = 'deleted' WHERE id = ? AND role = 'seller'`,
		c.Param("id"),
	); err != nil {
		logrus.WithError(err).Error("seller delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Seller deleted"})
}

// ApproveSeller is the handler for PUT /api/sellers/:id/approve.
// Approval and activation travel together.
func (h *Handlers) ApproveSeller(c *gin.Context) {
	if _, err := h.DB.Exec(
		`UPDATE users
		 SET approval_status = 'approved', status = 'active'
		 WHERE id = ? AND role = 'seller'`,
		c.Param("id"),
	); err != nil {
		logrus.WithError(err).Error("seller approve failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Seller approved"})
}
