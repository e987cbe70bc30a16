package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the legacy failure envelope: the portal frontend reads
// success=false plus a message out of every failed call.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Success: false,
					Error:   "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends the legacy failure envelope on the given status code.
func JSONError(c *gin.Context, status int, err error) {
	logger := GetLogger()
	logger.Warn("request failed", zap.Int("status", status), zap.Error(err))
	c.JSON(status, ErrorResponse{Success: false, Error: err.Error()})
}
