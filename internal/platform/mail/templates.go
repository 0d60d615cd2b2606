package mail

import (
	"bytes"
	"html/template"
)

// TemplateData carries the values substituted into the OTP email
// templates. Typed fields rule out accidental double substitution when a
// code or address happens to contain placeholder-looking text.
type TemplateData struct {
	Email string
	OTP   string
}

var (
	emailVerifyTmpl   = template.Must(template.New("email_verify").Parse(emailVerifyText))
	passwordResetTmpl = template.Must(template.New("password_reset").Parse(passwordResetText))
)

// EmailVerifyBody renders the account verification email.
func EmailVerifyBody(data TemplateData) (string, error) {
	return templateString(emailVerifyTmpl, data)
}

// PasswordResetBody renders the password reset email.
func PasswordResetBody(data TemplateData) (string, error) {
	return templateString(passwordResetTmpl, data)
}

func templateString(t *template.Template, data TemplateData) (string, error) {
	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

const emailVerifyText = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Account Verification</title>
    <style>
        .outer-container {
            font-family: Arial, sans-serif;
            background-color: #ecfeff;
            margin: 0;
            padding: 20px;
        }
        .container {
            max-width: 600px;
            margin: 40px auto;
            background: #ffffff;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0px 0px 10px rgba(0, 0, 0, 0.1);
        }
        .otp-code {
            font-size: 24px;
            font-weight: bold;
            color: #ffffff;
            background: #0284c7;
            padding: 12px 24px;
            border-radius: 8px;
            letter-spacing: 3px;
            display: inline-block;
        }
    </style>
</head>
<body>
<div class="outer-container">
    <div class="container">
        <h2>Verify Your Email Address</h2>
        <p>Thank you for creating an account with us! To complete the registration process, please verify your email address:</p>
        <p>{{.Email}}</p>
        <p><b>Use the OTP below to verify your account:</b></p>
        <span class="otp-code">{{.OTP}}</span>
        <p>This OTP will expire in 24 hours.</p>
    </div>
</div>
</body>
</html>
`

const passwordResetText = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Password Reset</title>
    <style>
        .outer-container {
            font-family: Arial, sans-serif;
            background-color: #ecfeff;
            margin: 0;
            padding: 20px;
        }
        .container {
            max-width: 600px;
            margin: 40px auto;
            background: #ffffff;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0px 0px 10px rgba(0, 0, 0, 0.1);
        }
        .otp-code {
            font-size: 24px;
            font-weight: bold;
            color: #ffffff;
            background: #0284c7;
            padding: 12px 24px;
            border-radius: 8px;
            letter-spacing: 3px;
            display: inline-block;
        }
    </style>
</head>
<body>
<div class="outer-container">
    <div class="container">
        <h2>Forgot your password?</h2>
        <p>We have received a request to reset the password for the account:</p>
        <p>{{.Email}}</p>
        <p><b>Use the OTP below to reset your password:</b></p>
        <span class="otp-code">{{.OTP}}</span>
        <p>The password reset OTP will expire in 15 minutes.</p>
    </div>
</div>
</body>
</html>
`
