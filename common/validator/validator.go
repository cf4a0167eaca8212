package validator

import (
	"regexp"
	"strings"
)

// Regex patterns
var (
	// Email pattern - RFC 5322 simplified
	EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)

	// Phone pattern: optional leading +, 7-15 digits
	PhonePattern = regexp.MustCompile(`^\+?\d{7,15}$`)

	// Full name pattern: 2-100 chars, Unicode letters, spaces, dots, hyphens, apostrophes
	FullNamePattern = regexp.MustCompile(`^[\p{L} .'-]{2,100}$`)

	upperPattern  = regexp.MustCompile(`[A-Z]`)
	lowerPattern  = regexp.MustCompile(`[a-z]`)
	digitPattern  = regexp.MustCompile(`\d`)
	symbolPattern = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// IsValidEmail validates email format
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return EmailPattern.MatchString(email)
}

// IsValidPhone validates a phone number
func IsValidPhone(phone string) bool {
	if phone == "" {
		return false
	}
	trimmed := strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	return PhonePattern.MatchString(trimmed)
}

// IsValidFullName validates a display name
func IsValidFullName(name string) bool {
	if name == "" {
		return false
	}
	trimmed := strings.TrimSpace(name)
	return FullNamePattern.MatchString(trimmed)
}

// IsValidPassword validates password strength: at least 8 characters with
// an uppercase letter, a lowercase letter, a digit and a symbol.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return upperPattern.MatchString(password) &&
		lowerPattern.MatchString(password) &&
		digitPattern.MatchString(password) &&
		symbolPattern.MatchString(password)
}

// GetEmailError returns a user-friendly error message for email, or ""
func GetEmailError(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "Email is required"
	}
	if !IsValidEmail(trimmed) {
		return "Email is not valid. Example: user@example.com"
	}
	return ""
}

// GetPhoneError returns a user-friendly error message for phone, or ""
func GetPhoneError(phone string) string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return "Phone number is required"
	}
	if !IsValidPhone(trimmed) {
		return "Phone number is not valid"
	}
	return ""
}

// GetFullNameError returns a user-friendly error message for full name, or ""
func GetFullNameError(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Full name is required"
	}
	if len(trimmed) < 2 {
		return "Full name must be at least 2 characters"
	}
	if len(trimmed) > 100 {
		return "Full name must not exceed 100 characters"
	}
	if !IsValidFullName(trimmed) {
		return "Full name may only contain letters, spaces, dots, hyphens and apostrophes"
	}
	return ""
}

// GetPasswordError returns a user-friendly error message for password, or ""
func GetPasswordError(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}
	if !upperPattern.MatchString(password) {
		return "Password must contain at least 1 uppercase letter"
	}
	if !lowerPattern.MatchString(password) {
		return "Password must contain at least 1 lowercase letter"
	}
	if !digitPattern.MatchString(password) {
		return "Password must contain at least 1 digit"
	}
	if !symbolPattern.MatchString(password) {
		return "Password must contain at least 1 special character"
	}
	return ""
}
