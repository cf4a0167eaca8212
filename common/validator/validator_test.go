package validator

import (
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected bool
	}{
		{"Valid email", "user@example.com", true},
		{"Valid with dot", "first.last@example.com", true},
		{"Valid with plus", "user+tag@example.com", true},
		{"Empty", "", false},
		{"Missing at", "userexample.com", false},
		{"Missing domain", "user@", false},
		{"Missing tld", "user@example", false},
		{"Spaces", "user name@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.expected {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.expected)
			}
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{"Strong password", "Abc123!@", true},
		{"Long strong password", "Sup3r-Secret-Passw0rd!", true},
		{"Too short", "short", false},
		{"No uppercase", "alllowercase1!", false},
		{"No lowercase", "ALLUPPER123!", false},
		{"No symbol", "NoSpecial123", false},
		{"No digit", "NoDigits!!ABCdef", false},
		{"Empty", "", false},
		{"Exactly 7 chars", "Abc12!@", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPassword(tt.password); got != tt.expected {
				t.Errorf("IsValidPassword(%q) = %v, want %v", tt.password, got, tt.expected)
			}
		})
	}
}

func TestGetPasswordError(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantMsg  bool
	}{
		{"Strong password", "Abc123!@", false},
		{"Too short", "short", true},
		{"No uppercase", "alllowercase1!", true},
		{"No lowercase", "ALLUPPER123!", true},
		{"No symbol", "NoSpecial123", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := GetPasswordError(tt.password)
			if (msg != "") != tt.wantMsg {
				t.Errorf("GetPasswordError(%q) = %q, want error message: %v", tt.password, msg, tt.wantMsg)
			}
		})
	}
}

func TestGetEmailError(t *testing.T) {
	if msg := GetEmailError(""); msg == "" {
		t.Error("GetEmailError(\"\") expected message, got empty")
	}
	if msg := GetEmailError("not-an-email"); msg == "" {
		t.Error("GetEmailError(invalid) expected message, got empty")
	}
	if msg := GetEmailError("user@example.com"); msg != "" {
		t.Errorf("GetEmailError(valid) = %q, want empty", msg)
	}
}

func TestGetFullNameError(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg bool
	}{
		{"Valid name", "Jamie O'Neil-Smith", false},
		{"Single char", "J", true},
		{"Empty", "", true},
		{"Digits", "Jamie123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := GetFullNameError(tt.input)
			if (msg != "") != tt.wantMsg {
				t.Errorf("GetFullNameError(%q) = %q, want error message: %v", tt.input, msg, tt.wantMsg)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name     string
		phone    string
		expected bool
	}{
		{"Local number", "0831234567", true},
		{"International", "+27831234567", true},
		{"Too short", "12345", false},
		{"Letters", "08312345ab", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPhone(tt.phone); got != tt.expected {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.expected)
			}
		})
	}
}
