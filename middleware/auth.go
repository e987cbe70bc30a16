// File: middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"doctorsportal/utils"
)

// EmailContextKey is where JWTAuthMiddleware stores the verified email.
const EmailContextKey = "email"

// JWTAuthMiddleware verifies the bearer token and stores the verified email
// in the request context. Downstream handlers trust this identity.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
			return
		}

		c.Set(EmailContextKey, email)
		c.Next()
	}
}

// VerifiedEmail returns the email stored by JWTAuthMiddleware.
func VerifiedEmail(c *gin.Context) string {
	return c.GetString(EmailContextKey)
}
