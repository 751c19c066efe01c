package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(b), err
}

func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// matches compares a presented header value with a configured secret. A
// secret stored as a bcrypt hash is verified against the hash.
func matches(presented, secret string) bool {
	if isBcryptHash(secret) {
		return VerifyPassword(presented, secret) == nil
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) == 1
}
