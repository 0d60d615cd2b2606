// Package domain defines domain-level errors for the auth feature.
package domain

import "errors"

// Domain errors for authentication operations.
// These errors represent business logic failures and are translated into
// the uniform response envelope by the transport layer.
var (
	// ErrUserExists indicates that a user with the given email already
	// exists. Returned during registration.
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound indicates that no user was found with the given
	// criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidEmail indicates that no account is registered for the
	// email supplied at login.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidPassword indicates that the password does not match the
	// stored hash.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrAlreadyVerified indicates that the account has already completed
	// email verification, so no further verification OTP may be issued.
	ErrAlreadyVerified = errors.New("account already verified")

	// ErrInvalidOTP indicates that the submitted code is empty, was never
	// issued, or does not match the stored code.
	ErrInvalidOTP = errors.New("invalid otp")

	// ErrOTPExpired indicates that the submitted code matched but its
	// validity window has passed.
	ErrOTPExpired = errors.New("otp expired")
)
