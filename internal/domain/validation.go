package domain

import (
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength      = 8
	MinPhoneDigits         = 8
	VerificationCodeLength = 6
)

func ValidateEmail(email string) error {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return invalid("email", "email is required")
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return invalid("email", "please enter a valid email address")
	}

	at := strings.LastIndex(trimmed, "@")
	if at <= 0 || !strings.Contains(trimmed[at+1:], ".") {
		return invalid("email", "please enter a valid email address")
	}

	return nil
}

func ValidatePassword(password string) error {
	if password == "" {
		return invalid("password", "password is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return invalid("password", "password must be at least 8 characters")
	}

	return nil
}

// ValidateLogin only checks presence: the identifier may be a bare username.
func ValidateLogin(identifier, secret string) error {
	if strings.TrimSpace(identifier) == "" {
		return invalid("email", "email is required")
	}
	if secret == "" {
		return invalid("password", "password is required")
	}

	return nil
}

type SignupRequest struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

func ValidateSignup(req SignupRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid("name", "name is required")
	}
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	if req.Password != req.ConfirmPassword {
		return invalid("confirm_password", "passwords do not match")
	}

	return ValidatePassword(req.Password)
}

// NormalizePhoneNumber strips formatting and prefixes the dial code unless the
// number is already in international form.
func NormalizePhoneNumber(dialCode, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	international := strings.HasPrefix(trimmed, "+")

	digits := onlyDigits(trimmed)
	if len(digits) < MinPhoneDigits {
		return "", invalid("phone", "please enter a valid phone number")
	}
	if international {
		return "+" + digits, nil
	}

	code := onlyDigits(dialCode)
	if code == "" {
		return "", invalid("phone", "country dial code is required")
	}

	return "+" + code + strings.TrimPrefix(digits, "0"), nil
}

func ValidateVerificationCode(code string) error {
	trimmed := strings.TrimSpace(code)
	if len(trimmed) != VerificationCodeLength || onlyDigits(trimmed) != trimmed {
		return invalid("code", "please enter the 6-digit verification code")
	}

	return nil
}

func onlyDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) && r < utf8.RuneSelf {
			b.WriteRune(r)
		}
	}

	return b.String()
}
