// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account in the system.
// It holds the login credentials together with the state of the two
// independent OTP channels (email verification and password reset).
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name supplied at registration.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// IsAccountVerified reports whether the email address has been
	// confirmed through the verification OTP flow. It starts false and
	// becomes true exactly once.
	IsAccountVerified bool `gorm:"not null;default:false"`

	// VerifyOTP is the pending email-verification code, empty when no
	// code is outstanding.
	VerifyOTP string `gorm:"size:6"`

	// VerifyOTPExpireAt is the verification code expiry in Unix
	// milliseconds. Zero means no active code.
	VerifyOTPExpireAt int64 `gorm:"not null;default:0"`

	// ResetOTP is the pending password-reset code. It is a separate
	// channel from VerifyOTP so the two flows cannot consume each
	// other's codes.
	ResetOTP string `gorm:"size:6"`

	// ResetOTPExpireAt is the reset code expiry in Unix milliseconds.
	// Zero means no active code.
	ResetOTPExpireAt int64 `gorm:"not null;default:0"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
