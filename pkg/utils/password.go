package utils

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes plaintext with bcrypt. The salt is generated per call
// and embedded in the hash, so two hashes of the same password differ.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash verifies plaintext against a stored bcrypt hash.
// A malformed stored hash reports false, never an error.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks composition rules in fixed order and returns the
// first violated rule's message, or "" when the password passes.
func ValidatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long."
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper {
		return "Password must contain at least one uppercase letter."
	}
	if !hasLower {
		return "Password must contain at least one lowercase letter."
	}
	if !hasDigit {
		return "Password must contain at least one digit."
	}
	if !hasSpecial {
		return "Password must contain at least one special character."
	}

	return ""
}
