// Package entity defines the request-scoped values the auth feature validates.
package entity

import "unicode/utf16"

// MinPasswordLength applies to login passwords and new passwords alike.
const MinPasswordLength = 6

// Credentials is a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// PasswordChange is a request to replace the current password.
type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// TooShort reports whether password has fewer than MinPasswordLength UTF-16
// code units, so "😀😀😀" is long enough.
func TooShort(password string) bool {
	return len(utf16.Encode([]rune(password))) < MinPasswordLength
}
