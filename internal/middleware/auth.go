package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

const CallerKey = "caller"

// CallerHeader carries the wallet address acting as msg.sender
const CallerHeader = "X-Wallet-Address"

// ValidateCaller is a stubbed authentication middleware that extracts the
// calling wallet from the X-Wallet-Address header. Signatures are not checked.
func ValidateCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(CallerHeader)
		if header == "" {
			c.Next()
			return
		}

		caller, err := models.ParseAddress(header)
		if err != nil || caller.IsZero() {
			c.Next()
			return
		}

		c.Set(CallerKey, caller)
		c.Next()
	}
}

// GetCaller retrieves the calling wallet from the context
func GetCaller(c *gin.Context) (models.Address, bool) {
	caller, exists := c.Get(CallerKey)
	if !exists {
		return models.ZeroAddress, false
	}
	return caller.(models.Address), true
}

// RequireAuth ensures a caller is present
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := GetCaller(c); !exists {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "unauthorized",
				Message: "authentication required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
