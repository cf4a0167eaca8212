package jwt

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the signed access-token payload
type Claims struct {
	AccountID int    `json:"id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

var (
	// JWT secret key from environment variable
	secretKey = []byte(getEnv("JWT_SECRET", "dev-only-secret-change-me"))

	// Token expiration time (15 days)
	tokenExpiration = 15 * 24 * time.Hour
)

// GenerateToken generates a signed access token for an account
func GenerateToken(accountID int, email string) (string, error) {
	return GenerateTokenWithTTL(accountID, email, tokenExpiration)
}

// GenerateTokenWithTTL generates a signed access token with an explicit
// validity window
func GenerateTokenWithTTL(accountID int, email string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		AccountID: accountID,
		Email:     email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// ValidateToken validates an access token and returns its claims
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// GetAccountIDFromToken extracts the account id from a token
func GetAccountIDFromToken(tokenString string) (int, error) {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return 0, err
	}
	return claims.AccountID, nil
}

// GetEmailFromToken extracts the email from a token
func GetEmailFromToken(tokenString string) (string, error) {
	claims, err := ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Email, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
