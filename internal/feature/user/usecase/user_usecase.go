// Package usecase implements the business logic for the user feature.
package usecase

import (
	"context"

	"auth_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the user lookups needed by this feature.
type UserRepository interface {
	// FindByID retrieves the user matching the given ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// Profile is the public projection of a user record.
type Profile struct {
	Name              string
	IsAccountVerified bool
}

// UserUsecase exposes read access to user profile data.
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new UserUsecase.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// GetProfile returns the profile of the given user. Credential and OTP
// state never leave the usecase.
func (u *UserUsecase) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Name:              user.Name,
		IsAccountVerified: user.IsAccountVerified,
	}, nil
}
