package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"auth_backend/internal/feature/auth/domain"
	"auth_backend/internal/feature/auth/domain/entity"
)

// storeUser returns a repository mock backed by a single mutable user,
// the way the real store behaves for one account.
func storeUser(user *entity.User) *mockUserRepository {
	return &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			if user != nil && user.ID == id {
				return user, nil
			}
			return nil, domain.ErrUserNotFound
		},
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if user != nil && user.Email == email {
				return user, nil
			}
			return nil, domain.ErrUserNotFound
		},
		SaveFunc: func(ctx context.Context, u *entity.User) error {
			*user = *u
			return nil
		},
	}
}

func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 1000; i++ {
		otp := generateOTP()
		if len(otp) != 6 {
			t.Fatalf("expected 6 digits, got %q", otp)
		}
		n, err := strconv.Atoi(otp)
		if err != nil {
			t.Fatalf("otp is not numeric: %q", otp)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("otp out of range: %d", n)
		}
	}
}

func TestAuthUsecase_SendVerifyOTP(t *testing.T) {
	t.Run("issues code with 24h expiry and emails it", func(t *testing.T) {
		user := &entity.User{ID: 1, Email: "a@x.com"}
		repo := storeUser(user)
		mailer := &mockMailer{}
		uc := NewAuthUsecase(repo, &mockTokenGenerator{}, mailer)

		before := time.Now()
		err := uc.SendVerifyOTP(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(user.VerifyOTP) != 6 {
			t.Errorf("expected 6-digit code stored, got %q", user.VerifyOTP)
		}
		wantExpiry := before.Add(24 * time.Hour).UnixMilli()
		if user.VerifyOTPExpireAt < wantExpiry || user.VerifyOTPExpireAt > wantExpiry+5000 {
			t.Errorf("expiry not ~24h out: %d", user.VerifyOTPExpireAt)
		}
		if len(mailer.sent) != 1 {
			t.Fatalf("expected 1 email, got %d", len(mailer.sent))
		}
		if !strings.Contains(mailer.sent[0].body, user.VerifyOTP) {
			t.Error("email body does not contain the code")
		}
		if !strings.Contains(mailer.sent[0].body, user.Email) {
			t.Error("email body does not contain the address being verified")
		}
	})

	t.Run("already verified", func(t *testing.T) {
		user := &entity.User{ID: 1, Email: "a@x.com", IsAccountVerified: true}
		uc := NewAuthUsecase(storeUser(user), &mockTokenGenerator{}, &mockMailer{})

		err := uc.SendVerifyOTP(context.Background(), 1)
		if !errors.Is(err, domain.ErrAlreadyVerified) {
			t.Errorf("expected ErrAlreadyVerified, got: %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenGenerator{}, &mockMailer{})

		err := uc.SendVerifyOTP(context.Background(), 42)
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})
}

func TestAuthUsecase_VerifyEmail(t *testing.T) {
	t.Run("round trip succeeds exactly once", func(t *testing.T) {
		user := &entity.User{ID: 1, Email: "a@x.com"}
		uc := NewAuthUsecase(storeUser(user), &mockTokenGenerator{}, &mockMailer{})

		if err := uc.SendVerifyOTP(context.Background(), 1); err != nil {
			t.Fatalf("issue failed: %v", err)
		}
		code := user.VerifyOTP

		if err := uc.VerifyEmail(context.Background(), 1, code); err != nil {
			t.Fatalf("consume failed: %v", err)
		}
		if !user.IsAccountVerified {
			t.Error("account not marked verified")
		}
		if user.VerifyOTP != "" || user.VerifyOTPExpireAt != 0 {
			t.Error("otp state not cleared after consumption")
		}

		// Same code again: cleared, so invalid.
		err := uc.VerifyEmail(context.Background(), 1, code)
		if !errors.Is(err, domain.ErrInvalidOTP) {
			t.Errorf("expected ErrInvalidOTP on replay, got: %v", err)
		}
	})

	t.Run("mismatched code", func(t *testing.T) {
		user := &entity.User{
			ID: 1, Email: "a@x.com",
			VerifyOTP:         "123456",
			VerifyOTPExpireAt: time.Now().Add(time.Hour).UnixMilli(),
		}
		uc := NewAuthUsecase(storeUser(user), &mockTokenGenerator{}, &mockMailer{})

		err := uc.VerifyEmail(context.Background(), 1, "654321")
		if !errors.Is(err, domain.ErrInvalidOTP) {
			t.Errorf("expected ErrInvalidOTP, got: %v", err)
		}
		if user.IsAccountVerified {
			t.Error("account must not be verified on mismatch")
		}
	})

	t.Run("expired code fails even on match", func(t *testing.T) {
		user := &entity.User{
			ID: 1, Email: "a@x.com",
			VerifyOTP:         "123456",
			VerifyOTPExpireAt: time.Now().Add(-time.Minute).UnixMilli(),
		}
		uc := NewAuthUsecase(storeUser(user), &mockTokenGenerator{}, &mockMailer{})

		err := uc.VerifyEmail(context.Background(), 1, "123456")
		if !errors.Is(err, domain.ErrOTPExpired) {
			t.Errorf("expected ErrOTPExpired, got: %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenGenerator{}, &mockMailer{})

		err := uc.VerifyEmail(context.Background(), 42, "123456")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})
}

func TestAuthUsecase_SendResetOTP(t *testing.T) {
	t.Run("issues code with 15m expiry and emails it", func(t *testing.T) {
		user := &entity.User{ID: 1, Email: "a@x.com"}
		mailer := &mockMailer{}
		uc := NewAuthUsecase(storeUser(user), &mockTokenGenerator{}, mailer)

		before := time.Now()
		if err := uc.SendResetOTP(context.Background(), "a@x.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(user.ResetOTP) != 6 {
			t.Errorf("expected 6-digit code stored, got %q", user.ResetOTP)
		}
		wantExpiry := before.Add(15 * time.Minute).UnixMilli()
		if user.ResetOTPExpireAt < wantExpiry || user.ResetOTPExpireAt > wantExpiry+5000 {
			t.Errorf("expiry not ~15m out: %d", user.ResetOTPExpireAt)
		}
		if len(mailer.sent) != 1 || !strings.Contains(mailer.sent[0].body, user.ResetOTP) {
			t.Error("reset email missing or does not contain the code")
		}
	})

	t.Run("unregistered email", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenGenerator{}, &mockMailer{})

		err := uc.SendResetOTP(context.Background(), "nobody@x.com")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})

	t.Run("verify channel untouched by reset issuance", func(t *testing.T) {
		user := &entity.User{
			ID: 1, Email: "a@x.com",
			VerifyOTP:         "111111",
			VerifyOTPExpireAt: time.Now().Add(time.Hour).UnixMilli(),
		}
		uc := NewAuthUsecase(storeUser(user), &mockTokenGenerator{}, &mockMailer{})

		if err := uc.SendResetOTP(context.Background(), "a@x.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.VerifyOTP != "111111" {
			t.Error("reset issuance must not touch the verify channel")
		}
	})
}

func TestAuthUsecase_ResetPassword(t *testing.T) {
	oldHash, _ := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)

	newUser := func() *entity.User {
		return &entity.User{
			ID: 1, Email: "a@x.com", Password: string(oldHash),
			ResetOTP:         "123456",
			ResetOTPExpireAt: time.Now().Add(10 * time.Minute).UnixMilli(),
		}
	}

	t.Run("success replaces hash and clears code", func(t *testing.T) {
		user := newUser()
		uc := NewAuthUsecase(storeUser(user), &mockTokenGenerator{}, &mockMailer{})

		err := uc.ResetPassword(context.Background(), "a@x.com", "123456", "new-password-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Old password no longer authenticates, the new one does.
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("old-password")) == nil {
			t.Error("old password still matches")
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("new-password-1")) != nil {
			t.Error("new password does not match")
		}
		if user.ResetOTP != "" || user.ResetOTPExpireAt != 0 {
			t.Error("reset otp state not cleared")
		}
	})

	t.Run("mismatched code", func(t *testing.T) {
		user := newUser()
		uc := NewAuthUsecase(storeUser(user), &mockTokenGenerator{}, &mockMailer{})

		err := uc.ResetPassword(context.Background(), "a@x.com", "000000", "new-password-1")
		if !errors.Is(err, domain.ErrInvalidOTP) {
			t.Errorf("expected ErrInvalidOTP, got: %v", err)
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("old-password")) != nil {
			t.Error("password must be unchanged on mismatch")
		}
	})

	t.Run("expired code", func(t *testing.T) {
		user := newUser()
		user.ResetOTPExpireAt = time.Now().Add(-time.Second).UnixMilli()
		uc := NewAuthUsecase(storeUser(user), &mockTokenGenerator{}, &mockMailer{})

		err := uc.ResetPassword(context.Background(), "a@x.com", "123456", "new-password-1")
		if !errors.Is(err, domain.ErrOTPExpired) {
			t.Errorf("expected ErrOTPExpired, got: %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockTokenGenerator{}, &mockMailer{})

		err := uc.ResetPassword(context.Background(), "nobody@x.com", "123456", "new-password-1")
		if !errors.Is(err, domain.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got: %v", err)
		}
	})

	t.Run("consumed code cannot be reused", func(t *testing.T) {
		user := newUser()
		uc := NewAuthUsecase(storeUser(user), &mockTokenGenerator{}, &mockMailer{})

		if err := uc.ResetPassword(context.Background(), "a@x.com", "123456", "new-password-1"); err != nil {
			t.Fatalf("first reset failed: %v", err)
		}
		err := uc.ResetPassword(context.Background(), "a@x.com", "123456", "new-password-2")
		if !errors.Is(err, domain.ErrInvalidOTP) {
			t.Errorf("expected ErrInvalidOTP on reuse, got: %v", err)
		}
	})
}
