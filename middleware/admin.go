// File: middleware/admin.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"doctorsportal/services/user"
)

// AdminOnlyMiddleware checks the role of the already-verified email. Must run
// after JWTAuthMiddleware.
func AdminOnlyMiddleware(users user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := VerifiedEmail(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing verified identity"})
			return
		}

		isAdmin, err := users.IsAdmin(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify role"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}
		c.Next()
	}
}
