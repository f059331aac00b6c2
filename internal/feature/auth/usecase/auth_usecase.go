// Package usecase implements the ordered login and password-change checks.
// The first failing rule decides the outcome.
package usecase

import (
	"context"
	"fmt"

	"account_backend/internal/feature/auth/domain"
	"account_backend/internal/feature/auth/domain/entity"
)

// CredentialStore decides the outcome of checks a real system would delegate
// to stored credentials.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CredentialStore interface {
	// Authenticate returns domain.ErrInvalidCredentials when the pair is unknown.
	Authenticate(ctx context.Context, email, password string) error

	// VerifyCurrentPassword returns domain.ErrCurrentPasswordWrong on mismatch.
	VerifyCurrentPassword(ctx context.Context, password string) error

	// CheckStrength returns domain.ErrPasswordTooWeak for passwords it refuses.
	CheckStrength(ctx context.Context, password string) error
}

// TokenIssuer signs a token after a successful login.
type TokenIssuer interface {
	GenerateToken(subject string) (string, error)
}

// authUsecase implements the auth business rules.
type authUsecase struct {
	store  CredentialStore
	issuer TokenIssuer
}

// NewAuthUsecase creates a new authUsecase.
func NewAuthUsecase(store CredentialStore, issuer TokenIssuer) *authUsecase {
	return &authUsecase{
		store:  store,
		issuer: issuer,
	}
}

// ValidateLogin runs the input-shape checks of a login attempt.
func ValidateLogin(c entity.Credentials) error {
	switch {
	case c.Email == "":
		return domain.ErrEmailRequired
	case c.Password == "":
		return domain.ErrPasswordRequired
	case entity.TooShort(c.Password):
		return domain.ErrPasswordTooShort
	}
	return nil
}

// ValidatePasswordChange runs the input-shape checks of a password change,
// up to and including reuse of the current password.
func ValidatePasswordChange(p entity.PasswordChange) error {
	switch {
	case p.CurrentPassword == "":
		return domain.ErrCurrentPasswordRequired
	case p.NewPassword == "":
		return domain.ErrNewPasswordRequired
	case p.ConfirmPassword == "":
		return domain.ErrConfirmationRequired
	case entity.TooShort(p.NewPassword):
		return domain.ErrNewPasswordTooShort
	case p.NewPassword != p.ConfirmPassword:
		return domain.ErrPasswordMismatch
	case p.NewPassword == p.CurrentPassword:
		return domain.ErrPasswordReused
	}
	return nil
}

// Login validates c, checks it against the store and returns a signed token.
func (u *authUsecase) Login(ctx context.Context, c entity.Credentials) (string, error) {
	if err := ValidateLogin(c); err != nil {
		return "", err
	}
	if err := u.store.Authenticate(ctx, c.Email, c.Password); err != nil {
		return "", err
	}

	token, err := u.issuer.GenerateToken(c.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ChangePassword validates p and asks the store to accept it. Nothing is persisted.
func (u *authUsecase) ChangePassword(ctx context.Context, p entity.PasswordChange) error {
	if err := ValidatePasswordChange(p); err != nil {
		return err
	}
	if err := u.store.VerifyCurrentPassword(ctx, p.CurrentPassword); err != nil {
		return err
	}
	return u.store.CheckStrength(ctx, p.NewPassword)
}
