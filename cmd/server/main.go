package main

import (
	"log"
	"os"
	"strings"

	"auth_backend/internal/app/router"
	authadapters "auth_backend/internal/feature/auth/adapters"
	authhandler "auth_backend/internal/feature/auth/transport/handler"
	authusecase "auth_backend/internal/feature/auth/usecase"
	userhandler "auth_backend/internal/feature/user/transport/handler"
	userusecase "auth_backend/internal/feature/user/usecase"
	"auth_backend/internal/platform/db"
	jwtmw "auth_backend/internal/platform/jwt"
	"auth_backend/internal/platform/mail"
)

func main() {
	// db
	gormDB := db.OpenDB()

	production := os.Getenv("APP_ENV") == "production"

	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokens := jwtmw.NewManager(secret, authhandler.SessionTTL)

	// SMTP client; disabled (every send fails) when credentials are absent
	smtpHost := os.Getenv("SMTP_HOST")
	if p := os.Getenv("SMTP_PORT"); p != "" && smtpHost != "" {
		smtpHost = smtpHost + ":" + p
	}
	mailer, err := mail.NewClient(
		smtpHost,
		os.Getenv("SMTP_USER"),
		os.Getenv("SMTP_PASS"),
		os.Getenv("SENDER_EMAIL"),
		os.Getenv("SENDER_NAME"),
		os.Getenv("SMTP_SKIP_VERIFY") == "true",
	)
	if err != nil {
		log.Fatalf("failed to set up mail client: %v", err)
	}
	if !mailer.IsEnabled() {
		log.Println("[WARN] SMTP is not configured. Account emails will fail to send.")
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(gormDB)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, mailer)
	userUC := userusecase.NewUserUsecase(userRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC, production)
	userH := userhandler.NewUserHandler(userUC)

	var origins []string
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	} else {
		origins = []string{"http://localhost:5173"}
	}

	r := router.NewRouter(authH, userH, tokens, origins)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
