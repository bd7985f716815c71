package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/greenloop/reports-service/internal/auth"
	"github.com/greenloop/reports-service/internal/model"
)

const accountKey = "authorized_account"

// Auth runs the authorization gate before any pipeline handler. The specific
// failure kind maps to a distinct status so the client can surface the right
// message and stop further interaction.
func Auth(gate *auth.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))

		account, err := gate.Authorize(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrUnauthenticated):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "sign in required"})
			case errors.Is(err, auth.ErrForbidden):
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			case errors.Is(err, auth.ErrAccountNotFound):
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "account not found"})
			default:
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		c.Set(accountKey, account)
		c.Next()
	}
}

// MustAccount returns the authorized account stored by Auth.
func MustAccount(c *gin.Context) (*model.Account, bool) {
	value, exists := c.Get(accountKey)
	if !exists {
		return nil, false
	}
	account, ok := value.(*model.Account)
	return account, ok
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
