package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stepkart/stepkart-golang/internal/auth"
	"github.com/stepkart/stepkart-golang/internal/models"
)

// --- Retailer Registration ---

// RegisterRetailer is the handler for POST /api/auth/register-retailer.
// The request is multipart form-data: profile fields plus the optional
// gstCertificate and shopPhoto documents.
//
// The duplicate-phone check and the insert are two separate statements by
// design of the original API: a concurrent identical registration can
// slip through. Acceptable for a single-operator deployment.
func (h *Handlers) RegisterRetailer(c *gin.Context) {
	phone := c.PostForm("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Phone is required"})
		return
	}

	companyName := c.PostForm("company_name")
	ownerName := c.PostForm("owner_name")

	// 1. --- Check if user already exists ---
	var existingID int64
	err := h.DB.QueryRow("SELECT id FROM users WHERE phone = ?", phone).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}
	if err != sql.ErrNoRows {
		logrus.WithError(err).Error("retailer duplicate check failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		return
	}

	// 2. --- Store uploaded documents (both optional) ---
	var gstCertificate, shopPhoto *string
	if file, err := c.FormFile("gstCertificate"); err == nil {
		name, err := h.saveUpload(c, file, "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file"})
			return
		}
		path := "uploads/" + name
		gstCertificate = &path
	}
	if file, err := c.FormFile("shopPhoto"); err == nil {
		name, err := h.saveUpload(c, file, "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save file"})
			return
		}
		path := "uploads/" + name
		shopPhoto = &path
	}

	// 3. --- Insert user row ---
	query := `
		INSERT INTO users
		(phone, role, approval_status, company_name, owner_name, gst_number,
		 address_line1, city, state, pincode, latitude, longitude,
		 gst_certificate, shop_photo)
		VALUES (?, 'retailer', 'pending', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		phone,
		companyName,
		ownerName,
		nullable(c.PostForm("gst_number")),
		nullable(c.PostForm("address_line1")),
		nullable(c.PostForm("city")),
		nullable(c.PostForm("state")),
		nullable(c.PostForm("pincode")),
		nullableFloat(c.PostForm("latitude")),
		nullableFloat(c.PostForm("longitude")),
		gstCertificate,
		shopPhoto,
	)
	if err != nil {
		logrus.WithError(err).Error("retailer insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		return
	}

	id, _ := result.LastInsertId()

	// 4. --- Respond with the frontend field mapping ---
	c.JSON(http.StatusOK, gin.H{
		"id":                 id,
		"storeName":          companyName,
		"name":               ownerName,
		"phone":              phone,
		"verificationStatus": "pending",
		"message":            "Retailer registered successfully",
	})
}

// GetUserByID is the handler for GET /api/auth/user/:id.
func (h *Handlers) GetUserByID(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	query := "SELECT id, phone, company_name, owner_name, approval_status FROM users WHERE id = ?"
	err := h.DB.QueryRow(query, id).Scan(
		&user.ID,
		&user.Phone,
		&user.CompanyName,
		&user.OwnerName,
		&user.ApprovalStatus,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		logrus.WithError(err).Error("user fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                 user.ID,
		"storeName":          user.CompanyName,
		"name":               user.OwnerName,
		"phone":              user.Phone,
		"verificationStatus": user.ApprovalStatus,
	})
}

// --- Login ---

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /api/auth/login. It verifies the
// credentials against the stored bcrypt hash and issues the JWT that the
// role-gated routes require.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var (
		user         models.User
		passwordHash sql.NullString
	)
	query := "SELECT id, role, status, password_hash FROM users WHERE email = ?"
	err := h.DB.QueryRow(query, input.Email).Scan(&user.ID, &user.Role, &user.Status, &passwordHash)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		logrus.WithError(err).Error("login lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	// Soft-deleted accounts keep their row but must never authenticate.
	if user.Status == "deleted" || !passwordHash.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	password := models.Password{Hash: passwordHash.String}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		logrus.WithError(err).Error("token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":   user.ID,
			"role": user.Role,
		},
	})
}

// nullable maps empty form values to NULL columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// nullableFloat parses coordinate form values, mapping empty or
// malformed input to NULL.
func nullableFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
