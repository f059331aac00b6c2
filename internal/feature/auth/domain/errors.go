// Package domain defines the login and password-change rules of the auth feature.
package domain

import "account_backend/internal/shared/apperror"

// Login failures, in the order they are checked.
var (
	ErrEmailRequired      = apperror.New(apperror.KindMissingField, "Email is required")
	ErrPasswordRequired   = apperror.New(apperror.KindMissingField, "Password is required")
	ErrPasswordTooShort   = apperror.New(apperror.KindInvalidFormat, "Password must be at least 6 characters.")
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthorized, "Invalid credentials.")
)

// Password-change failures, in the order they are checked.
var (
	ErrCurrentPasswordRequired = apperror.New(apperror.KindMissingField, "Current password is required")
	ErrNewPasswordRequired     = apperror.New(apperror.KindMissingField, "New password is required")
	ErrConfirmationRequired    = apperror.New(apperror.KindMissingField, "Password confirmation is required")
	ErrNewPasswordTooShort     = apperror.New(apperror.KindInvalidFormat, "New password must be at least 6 characters")
	ErrPasswordMismatch        = apperror.New(apperror.KindRuleViolation, "New password and confirm password do not match")
	ErrPasswordReused          = apperror.New(apperror.KindRuleViolation, "New password must be different from current password")
	ErrCurrentPasswordWrong    = apperror.New(apperror.KindRuleViolation, "Current password is incorrect")
	ErrPasswordTooWeak         = apperror.New(apperror.KindRuleViolation, "Password must contain at least one uppercase letter, one lowercase letter, and one number")
)
