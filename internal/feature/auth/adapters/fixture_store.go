// Package adapters provides the credential store used by the auth feature.
package adapters

import (
	"context"

	"account_backend/internal/feature/auth/domain"
	"account_backend/internal/feature/auth/usecase"
)

// Fixture values standing in for a real credential store.
const (
	FixtureEmail         = "test@example.com"
	FixturePassword      = "password123"
	WrongCurrentPassword = "wrongpassword"
	RejectedWeakPassword = "weakpass"
)

// fixtureStore accepts one fixed login and rejects a couple of sentinel passwords.
type fixtureStore struct{}

// fixtureStoreがCredentialStoreを実装していることをコンパイル時に検証します。
var _ usecase.CredentialStore = (*fixtureStore)(nil)

// NewFixtureStore creates the fixture credential store.
func NewFixtureStore() *fixtureStore {
	return &fixtureStore{}
}

// Authenticate accepts only the fixture login.
func (s *fixtureStore) Authenticate(_ context.Context, email, password string) error {
	if email == FixtureEmail && password == FixturePassword {
		return nil
	}
	return domain.ErrInvalidCredentials
}

// VerifyCurrentPassword treats every password except WrongCurrentPassword as correct.
func (s *fixtureStore) VerifyCurrentPassword(_ context.Context, password string) error {
	if password == WrongCurrentPassword {
		return domain.ErrCurrentPasswordWrong
	}
	return nil
}

// CheckStrength refuses only RejectedWeakPassword.
func (s *fixtureStore) CheckStrength(_ context.Context, password string) error {
	if password == RejectedWeakPassword {
		return domain.ErrPasswordTooWeak
	}
	return nil
}
