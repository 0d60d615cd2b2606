package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/crypto/bcrypt"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/platform/mail"
)

const (
	// verifyOTPTTL is the validity window of an email verification code.
	// A long window is acceptable for a low-risk confirmation.
	verifyOTPTTL = 24 * time.Hour

	// resetOTPTTL is the validity window of a password reset code. It is
	// deliberately short because the code authorizes a credential change.
	resetOTPTTL = 15 * time.Minute
)

// generateOTP returns a 6-digit numeric code drawn uniformly from
// 100000-999999. The code is not cryptographically hardened; the short
// validity window bounds its exposure.
func generateOTP() string {
	return fmt.Sprintf("%06d", 100000+rand.IntN(900000))
}

// SendVerifyOTP issues a fresh email verification code for the user,
// persists it with its expiry and emails it to the account address.
// It returns domain.ErrAlreadyVerified when the account has already been
// verified.
func (u *AuthUsecase) SendVerifyOTP(ctx context.Context, userID uint) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsAccountVerified {
		return domain.ErrAlreadyVerified
	}

	otp := generateOTP()
	user.VerifyOTP = otp
	user.VerifyOTPExpireAt = time.Now().Add(verifyOTPTTL).UnixMilli()
	if err := u.users.Save(ctx, user); err != nil {
		return err
	}

	body, err := mail.EmailVerifyBody(mail.TemplateData{Email: user.Email, OTP: otp})
	if err != nil {
		return fmt.Errorf("failed to render verification email: %w", err)
	}
	if err := u.mailer.Send(user.Email, "Account Verification OTP", body); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}

// VerifyEmail consumes a pending verification code. On success the
// account is marked verified and the code is cleared so it cannot be
// replayed.
func (u *AuthUsecase) VerifyEmail(ctx context.Context, userID uint, otp string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if user.VerifyOTP == "" || user.VerifyOTP != otp {
		return domain.ErrInvalidOTP
	}
	if time.Now().UnixMilli() >= user.VerifyOTPExpireAt {
		return domain.ErrOTPExpired
	}

	user.IsAccountVerified = true
	user.VerifyOTP = ""
	user.VerifyOTPExpireAt = 0

	return u.users.Save(ctx, user)
}

// SendResetOTP issues a fresh password reset code for the account with
// the given email, persists it with its expiry and emails it.
func (u *AuthUsecase) SendResetOTP(ctx context.Context, email string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp := generateOTP()
	user.ResetOTP = otp
	user.ResetOTPExpireAt = time.Now().Add(resetOTPTTL).UnixMilli()
	if err := u.users.Save(ctx, user); err != nil {
		return err
	}

	body, err := mail.PasswordResetBody(mail.TemplateData{Email: user.Email, OTP: otp})
	if err != nil {
		return fmt.Errorf("failed to render reset email: %w", err)
	}
	if err := u.mailer.Send(user.Email, "Password Reset OTP", body); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

// ResetPassword consumes a pending reset code and replaces the stored
// password hash. The code and its expiry are cleared in the same save so
// the code is single use.
func (u *AuthUsecase) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user.ResetOTP == "" || user.ResetOTP != otp {
		return domain.ErrInvalidOTP
	}
	if time.Now().UnixMilli() >= user.ResetOTPExpireAt {
		return domain.ErrOTPExpired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hashed)
	user.ResetOTP = ""
	user.ResetOTPExpireAt = 0

	return u.users.Save(ctx, user)
}
