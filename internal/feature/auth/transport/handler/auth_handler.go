// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/api"
	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/transport/http/dto"
	jwtmw "auth_backend/internal/platform/jwt"
)

// SessionTTL is the lifetime of a session cookie and of the token it
// carries.
const SessionTTL = 7 * 24 * time.Hour

// AuthUsecase defines the usecase operations consumed by the handlers.
// Following Go convention, the interface is defined by the consumer
// (handler) rather than the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user and returns a session token.
	Register(ctx context.Context, name, email, password string) (string, error)
	// Login authenticates a user and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)
	// SendVerifyOTP issues and emails an account verification code.
	SendVerifyOTP(ctx context.Context, userID uint) error
	// VerifyEmail consumes a verification code and marks the account
	// verified.
	VerifyEmail(ctx context.Context, userID uint, otp string) error
	// SendResetOTP issues and emails a password reset code.
	SendResetOTP(ctx context.Context, email string) error
	// ResetPassword consumes a reset code and replaces the password.
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
}

// AuthHandler processes the HTTP requests for authentication operations.
// Every failure is converted into the uniform response envelope; no error
// propagates past this layer.
type AuthHandler struct {
	auth AuthUsecase

	// production selects the cookie policy: Secure with SameSite=None for
	// a cross-origin frontend in production, SameSite=Strict over plain
	// HTTP otherwise.
	production bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase, production bool) *AuthHandler {
	return &AuthHandler{auth: auth, production: production}
}

// Register handles the user registration endpoint. On success it sets
// the session cookie so the fresh account is immediately logged in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error("Missing Details"))
		return
	}

	token, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		slog.Warn("register failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error(messageFor(err)))
		return
	}

	h.setSessionCookie(c, token)
	slog.Info("user registered", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.OK(""))
}

// Login handles the login endpoint and sets the session cookie on
// success.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error("Email and password are required"))
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error(messageFor(err)))
		return
	}

	h.setSessionCookie(c, token)
	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.OK(""))
}

// Logout clears the session cookie. It succeeds whether or not a cookie
// was present, so repeated calls are idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, api.OK("Logged Out Successfully"))
}

// SendVerifyOTP issues an email verification code for the authenticated
// user.
func (h *AuthHandler) SendVerifyOTP(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Error("Not Authorized. Login Again"))
		return
	}

	if err := h.auth.SendVerifyOTP(c.Request.Context(), userID); err != nil {
		slog.Warn("send verify otp failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error(messageFor(err)))
		return
	}

	slog.Info("verification otp sent", "user_id", userID)
	c.JSON(http.StatusOK, api.OK("Verification OTP sent on Email"))
}

// VerifyAccount consumes the verification code submitted by the
// authenticated user.
func (h *AuthHandler) VerifyAccount(c *gin.Context) {
	userID, ok := jwtmw.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.Error("Not Authorized. Login Again"))
		return
	}

	var req dto.VerifyAccountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verify account validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error("Missing Details"))
		return
	}

	if err := h.auth.VerifyEmail(c.Request.Context(), userID, req.OTP); err != nil {
		slog.Warn("verify account failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error(messageFor(err)))
		return
	}

	slog.Info("account verified", "user_id", userID)
	c.JSON(http.StatusOK, api.OK("Email verified successfully"))
}

// IsAuthenticated reports whether the request carries a valid session.
// The auth middleware has already rejected invalid sessions by the time
// this handler runs.
func (h *AuthHandler) IsAuthenticated(c *gin.Context) {
	c.JSON(http.StatusOK, api.OK(""))
}

// SendResetOTP issues a password reset code for the given email address.
func (h *AuthHandler) SendResetOTP(c *gin.Context) {
	var req dto.SendResetOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("send reset otp validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error("Email is required"))
		return
	}

	if err := h.auth.SendResetOTP(c.Request.Context(), req.Email); err != nil {
		slog.Warn("send reset otp failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error(messageFor(err)))
		return
	}

	slog.Info("reset otp sent", "email", req.Email)
	c.JSON(http.StatusOK, api.OK("OTP sent to your email"))
}

// ResetPassword consumes a reset code together with the new password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("reset password validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error("Email, OTP and new password are required"))
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		slog.Warn("reset password failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusOK, api.Error(messageFor(err)))
		return
	}

	slog.Info("password reset", "email", req.Email)
	c.JSON(http.StatusOK, api.OK("Password has been reset successfully"))
}

// setSessionCookie attaches the session token to the response. In
// production the cookie is Secure with SameSite=None so a separate
// frontend origin can send it; elsewhere SameSite=Strict allows local
// HTTP development.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(jwtmw.SessionCookieName, token, int(SessionTTL.Seconds()), "/", "", h.production, true)
}

// clearSessionCookie expires the session cookie with the same attributes
// it was set with.
func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(jwtmw.SessionCookieName, "", -1, "/", "", h.production, true)
}

// messageFor maps domain errors to the messages surfaced in the response
// envelope. Unexpected errors collapse into a generic message so
// internals never leak to the client.
func messageFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrUserExists):
		return "User already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, domain.ErrInvalidEmail):
		return "Invalid email"
	case errors.Is(err, domain.ErrInvalidPassword):
		return "Invalid password"
	case errors.Is(err, domain.ErrAlreadyVerified):
		return "Account already verified"
	case errors.Is(err, domain.ErrInvalidOTP):
		return "Invalid OTP"
	case errors.Is(err, domain.ErrOTPExpired):
		return "OTP expired"
	default:
		return "Something went wrong. Please try again"
	}
}
