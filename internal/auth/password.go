// Package auth implements the password strength policy and one-way hashing
// for stored credentials.
package auth

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// Password policy violations, reported one at a time in check order.
var (
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters")
	ErrPasswordNoLower  = errors.New("Password needs a lowercase letter")
	ErrPasswordNoUpper  = errors.New("Password needs an uppercase letter")
	ErrPasswordNoDigit  = errors.New("Password needs a number")
)

// ValidatePassword checks the password strength rules and returns the first
// violated rule only: length, then lowercase, uppercase, digit.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLower {
		return ErrPasswordNoLower
	}
	if !hasUpper {
		return ErrPasswordNoUpper
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}
	return nil
}

// HashPassword returns the bcrypt hash to persist in place of the plaintext.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
