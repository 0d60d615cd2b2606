// Package router wires the HTTP routes for the service.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "auth_backend/internal/feature/auth/transport/handler"
	userhandler "auth_backend/internal/feature/user/transport/handler"
	jwtmw "auth_backend/internal/platform/jwt"
)

// NewRouter builds the gin engine with the auth and user route groups.
// allowedOrigins lists the frontend origins permitted to send the
// session cookie cross-origin.
func NewRouter(authH *authhandler.AuthHandler, userH *userhandler.UserHandler,
	parser jwtmw.Parser, allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	if len(allowedOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
		r.Use(cors.New(cfg))
	}

	// Liveness probe
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API Working")
	})

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/logout", authH.Logout)
		auth.POST("/send-reset-otp", authH.SendResetOTP)
		auth.POST("/reset-password", authH.ResetPassword)

		// Routes below require a valid session cookie.
		session := auth.Group("")
		session.Use(jwtmw.AuthRequired(parser))
		{
			session.POST("/send-verify-otp", authH.SendVerifyOTP)
			session.POST("/verify-account", authH.VerifyAccount)
			session.GET("/is-auth", authH.IsAuthenticated)
		}
	}

	user := r.Group("/api/user")
	user.Use(jwtmw.AuthRequired(parser))
	{
		user.GET("/data", userH.GetUserData)
	}

	return r
}
