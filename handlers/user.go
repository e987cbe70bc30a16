// File: handlers/user.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"doctorsportal/models"
	"doctorsportal/services/user"
	"doctorsportal/utils"
)

// UserHandler serves account records, token issuance, and the admin role.
type UserHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

func NewUserHandler(service user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Service: service, Logger: logger}
}

// CreateUser stores the account record posted after the frontend sign-in.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err)
		return
	}

	id, err := h.Service.Register(c.Request.Context(), u)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": id})
}

// GetUsers lists all account records.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// IssueJWT mints an access token for a known email, 403 otherwise.
func (h *UserHandler) IssueJWT(c *gin.Context) {
	email := c.Query("email")
	token, err := h.Service.IssueToken(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, user.ErrUnknownUser) {
			c.JSON(http.StatusForbidden, gin.H{"accessToken": "forbidden"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// MakeAdmin grants the admin role to a user by id.
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.GrantAdmin(c.Request.Context(), id); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// CheckAdmin reports whether an email holds the admin role.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	isAdmin, err := h.Service.IsAdmin(c.Request.Context(), email)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}
