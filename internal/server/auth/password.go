package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the bcrypt work factor for new password digests.
const bcryptCost = 10

// HashPassword derives a salted bcrypt digest from the plaintext password.
// Each call draws a fresh salt, so hashing the same password twice yields
// different digests. Failures (entropy exhaustion, oversized input) are
// returned to the caller and must not be treated as a credential mismatch.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt digest. An empty password or a malformed digest reports false,
// never an error.
func CheckPassword(password, digest string) bool {
	if password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
