// Package usecase implements the business logic for the auth feature.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/platform/mail"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns domain.ErrUserExists when a
	// user with the same email already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves the user matching the given email address.
	// It returns domain.ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves the user matching the given ID.
	// It returns domain.ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Save persists mutations to an existing user (OTP state, verified
	// flag, password hash).
	Save(ctx context.Context, user *entity.User) error
}

// TokenGenerator defines the interface for session token generation.
type TokenGenerator interface {
	// GenerateToken creates a signed session token for the given user.
	GenerateToken(userID uint) (string, error)
}

// AuthUsecase implements registration, login and the OTP lifecycle.
type AuthUsecase struct {
	users  UserRepository
	tokens TokenGenerator
	mailer mail.Mailer
}

// NewAuthUsecase creates a new AuthUsecase with its collaborators
// injected.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator, mailer mail.Mailer) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		tokens: tokens,
		mailer: mailer,
	}
}

// validatePassword checks that the password meets the security
// requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new user with a hashed password, sends the welcome
// email and returns a session token for the fresh account.
func (u *AuthUsecase) Register(ctx context.Context, name, email, password string) (string, error) {
	if err := validatePassword(password); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	body := fmt.Sprintf("Welcome to our platform. Your account has been created with the email id: %s", email)
	if err := u.mailer.SendText(email, "Welcome to our platform", body); err != nil {
		return "", fmt.Errorf("failed to send welcome email: %w", err)
	}

	return token, nil
}

// Login authenticates a user and returns a session token on success.
// The distinct ErrInvalidEmail and ErrInvalidPassword results mirror the
// messages the API reports for each failure.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidEmail
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", domain.ErrInvalidPassword
	}

	token, err := u.tokens.GenerateToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
