package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt work factor applied to every new password
// digest. Cost 10 keeps a single hash in the tens-of-milliseconds range,
// expensive enough to resist offline brute force.
const PasswordHashCost = 10

// HashPassword computes a salted bcrypt digest of the given plaintext
// password. A fresh random salt is generated on every call and embedded in
// the returned digest, so no separate salt storage is needed.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt digest. The comparison is constant-time.
//
// Verification fails closed: a wrong password and a malformed digest both
// return false, so callers never need to special-case a broken stored hash.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
