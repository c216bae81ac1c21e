package services

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

var (
	ErrWeakPassword    = errors.New("weak password")
	ErrPasswordTooLong = errors.New("password too long")
)

const (
	minPasswordRunes = 8
	// bcrypt ignores input past 72 bytes, so a longer password would
	// verify against a silently truncated secret.
	maxPasswordBytes = 72
)

// ValidatePasswordStrength requires at least eight characters mixing upper
// case, lower case and digits, within bcrypt's input limit.
func ValidatePasswordStrength(password string) error {
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	if utf8.RuneCountInString(password) < minPasswordRunes {
		return ErrWeakPassword
	}

	var hasUpper, hasLower, hasDigit bool
	for _, char := range password {
		hasUpper = hasUpper || unicode.IsUpper(char)
		hasLower = hasLower || unicode.IsLower(char)
		hasDigit = hasDigit || unicode.IsDigit(char)
	}
	if !hasUpper || !hasLower || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
