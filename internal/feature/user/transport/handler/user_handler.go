// Package handler provides the HTTP handlers for the user feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/api"
	"auth_backend/internal/feature/user/usecase"
	jwtmw "auth_backend/internal/platform/jwt"
)

// UserUsecase defines the usecase operations consumed by the handlers.
type UserUsecase interface {
	// GetProfile returns the public profile of the given user.
	GetProfile(ctx context.Context, userID uint) (*usecase.Profile, error)
}

// UserHandler processes HTTP requests for user data.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// GetUserData returns the authenticated user's name and verification
// status.
func (h *UserHandler) GetUserData(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Error("Not Authorized. Login Again"))
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		slog.Warn("get user data failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error("User not found"))
		return
	}

	c.JSON(http.StatusOK, api.UserDataResponse{
		Success: true,
		UserData: api.UserData{
			Name:              profile.Name,
			IsAccountVerified: profile.IsAccountVerified,
		},
	})
}
