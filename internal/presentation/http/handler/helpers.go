package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mercibizhub/bizhub-api/internal/domain/enum"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) *uuid.UUID {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserEmail extracts the user email from the Gin context
func GetUserEmail(c *gin.Context) string {
	email, exists := c.Get("user_email")
	if !exists {
		return ""
	}
	return email.(string)
}

// statusParam reads an optional payment status filter from the query
// string. Unknown values are ignored rather than rejected.
func statusParam(c *gin.Context) *enum.PaymentStatus {
	switch strings.ToLower(c.Query("status")) {
	case "paid":
		s := enum.PaymentStatusPaid
		return &s
	case "pending":
		s := enum.PaymentStatusPending
		return &s
	default:
		return nil
	}
}
