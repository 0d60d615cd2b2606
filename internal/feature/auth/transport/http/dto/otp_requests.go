package dto

// VerifyAccountReq represents the request body for the
// /api/auth/verify-account endpoint. The user is identified by the
// session cookie, so only the code travels in the body.
type VerifyAccountReq struct {
	OTP string `json:"otp" binding:"required"`
}

// SendResetOTPReq represents the request body for the
// /api/auth/send-reset-otp endpoint.
type SendResetOTPReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordReq represents the request body for the
// /api/auth/reset-password endpoint. The code is validated only here,
// together with the new password, in a single call.
type ResetPasswordReq struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
