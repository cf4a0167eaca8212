package hash

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	digest, err := HashPassword("Passw0rd!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Errorf("HashPassword() = %q, want bcrypt digest", digest)
	}
	if digest == "Passw0rd!" {
		t.Error("HashPassword() returned the plaintext")
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("HashPassword(\"\") expected error, got nil")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("Passw0rd!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("Passw0rd!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical, salt missing")
	}
}

func TestVerifyPassword(t *testing.T) {
	plainPassword := "Passw0rd!"
	digest, err := HashPassword(plainPassword)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		plain    string
		hash     string
		expected bool
	}{
		{"Correct password", plainPassword, digest, true},
		{"Wrong password", "WrongPass1!", digest, false},
		{"Empty plain", "", digest, false},
		{"Empty hash", plainPassword, "", false},
		{"Garbage hash", plainPassword, "not-a-bcrypt-digest", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerifyPassword(tt.plain, tt.hash)
			if got != tt.expected {
				t.Errorf("VerifyPassword() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHashPasswordWithCost(t *testing.T) {
	digest, err := HashPasswordWithCost("Passw0rd!", 4)
	if err != nil {
		t.Fatalf("HashPasswordWithCost() error = %v", err)
	}
	if !VerifyPassword("Passw0rd!", digest) {
		t.Error("digest produced at low cost does not verify")
	}
}
