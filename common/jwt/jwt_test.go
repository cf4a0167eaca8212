package jwt

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.AccountID != 42 {
		t.Errorf("AccountID = %d, want 42", claims.AccountID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Email = %q, want user@example.com", claims.Email)
	}
}

func TestTokenExpiration(t *testing.T) {
	token, err := GenerateToken(1, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	lifetime := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	if lifetime != 15*24*time.Hour {
		t.Errorf("token lifetime = %v, want %v", lifetime, 15*24*time.Hour)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	token, err := GenerateTokenWithTTL(1, "user@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateTokenWithTTL failed: %v", err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken accepted an expired token")
	}
}

func TestValidateTamperedToken(t *testing.T) {
	token, err := GenerateToken(7, "user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := ValidateToken(tampered); err == nil {
		t.Error("ValidateToken accepted a token with a forged signature")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"Empty", ""},
		{"Not a JWT", "not-a-token"},
		{"Two parts", "abc.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token); err == nil {
				t.Errorf("ValidateToken(%q) accepted an invalid token", tt.token)
			}
		})
	}
}

func TestGetAccountIDFromToken(t *testing.T) {
	token, err := GenerateToken(99, "other@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	id, err := GetAccountIDFromToken(token)
	if err != nil {
		t.Fatalf("GetAccountIDFromToken failed: %v", err)
	}
	if id != 99 {
		t.Errorf("account id = %d, want 99", id)
	}

	if _, err := GetAccountIDFromToken("garbage"); err == nil {
		t.Error("GetAccountIDFromToken accepted an invalid token")
	}
}

func TestGetEmailFromToken(t *testing.T) {
	token, err := GenerateToken(3, "mail@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	email, err := GetEmailFromToken(token)
	if err != nil {
		t.Fatalf("GetEmailFromToken failed: %v", err)
	}
	if email != "mail@example.com" {
		t.Errorf("email = %q, want mail@example.com", email)
	}
}
