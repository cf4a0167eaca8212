package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"
)

// rawBytes is the entropy of an issued token (256 bits).
const rawBytes = 32

// Issue generates a password-reset token. The raw token is returned to the
// caller exactly once and is never persisted; only its digest is stored.
// expires = now + ttl.
func Issue(now time.Time, ttl time.Duration) (raw string, digest string, expires time.Time, err error) {
	buf := make([]byte, rawBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(buf)
	digest = Digest(raw)
	expires = now.Add(ttl)
	return raw, digest, expires, nil
}

// Digest returns the lowercase hex SHA-256 digest of a raw token, the form
// stored in the reset_token_hash column.
func Digest(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Matches reports whether a presented raw token corresponds to a stored
// digest. Comparison is constant-time. Expiry is the caller's check.
func Matches(raw, storedDigest string) bool {
	if raw == "" || storedDigest == "" {
		return false
	}
	computed := Digest(raw)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedDigest)) == 1
}
