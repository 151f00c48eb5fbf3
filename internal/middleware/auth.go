package middleware

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stepkart/stepkart-golang/internal/auth"
)

// AuthMiddleware validates the Bearer token and puts the verified user ID
// on the request context. Every protected route group runs this first.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token format (must be Bearer)"})
			c.Abort()
			return
		}

		userID, err := auth.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// RequireRoles runs AFTER AuthMiddleware. It reads the verified userID
// from the context, loads that user's role from the database, and rejects
// the request unless the role is one of the allowed set. Deleted accounts
// never pass, whatever their role.
func RequireRoles(db *sql.DB, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDRaw, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID not found in context (AuthMiddleware must run first)"})
			c.Abort()
			return
		}
		userID := userIDRaw.(int64)

		var role, status string
		err := db.QueryRow("SELECT role, status FROM users WHERE id = ?", userID).Scan(&role, &status)
		if err != nil {
			if err == sql.ErrNoRows {
				c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			} else {
				logrus.WithError(err).Error("role lookup failed")
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error checking role"})
			}
			c.Abort()
			return
		}

		if status == "deleted" {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Set("userRole", role)
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied"})
		c.Abort()
	}
}
