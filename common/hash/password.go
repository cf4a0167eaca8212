package hash

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for new password hashes.
// Raising it only affects newly stored hashes; verification reads the cost
// embedded in each digest.
const DefaultCost = bcrypt.DefaultCost

// HashPassword hashes a plain password using bcrypt with a random salt.
// Returns an error for empty input or if bcrypt fails.
func HashPassword(plainPassword string) (string, error) {
	return HashPasswordWithCost(plainPassword, DefaultCost)
}

// HashPasswordWithCost hashes a plain password with an explicit bcrypt cost.
func HashPasswordWithCost(plainPassword string, cost int) (string, error) {
	if plainPassword == "" {
		return "", bcrypt.ErrHashTooShort
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plainPassword), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword compares a plain password with a stored bcrypt digest.
// Safe for concurrent use; bcrypt keeps no shared mutable state.
func VerifyPassword(plainPassword, storedHash string) bool {
	if plainPassword == "" || storedHash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plainPassword)) == nil
}
