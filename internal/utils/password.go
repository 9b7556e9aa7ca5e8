package utils

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by [CheckPassword] when the candidate does
// not match the stored value.
var ErrPasswordMismatch = errors.New("password mismatch")

// ErrPasswordTooLong is returned by [HashPassword] for passwords bcrypt
// cannot hash.
var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// bcryptPrefix marks stored values produced by [HashPassword].
const bcryptPrefix = "$2"

// HashPassword returns the bcrypt hash of password at the default cost.
//
// Example usage:
//
//	hashed, err := utils.HashPassword("1234")
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hashed), nil
}

// CheckPassword compares a candidate password with a stored value.
//
// Stored values written by [HashPassword] are compared with bcrypt. Anything
// else is a record imported from an older data file and is compared
// byte-for-byte.
func CheckPassword(stored, candidate string) error {
	if IsPasswordHashed(stored) {
		if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)); err != nil {
			return ErrPasswordMismatch
		}
		return nil
	}

	if stored != candidate {
		return ErrPasswordMismatch
	}
	return nil
}

// IsPasswordHashed reports whether stored looks like a bcrypt hash.
func IsPasswordHashed(stored string) bool {
	return strings.HasPrefix(stored, bcryptPrefix) && len(stored) == 60
}
