// Package di provides dependency injection factories for creating application components.
package di

import (
	authadapters "account_backend/internal/feature/auth/adapters"
	authhandler "account_backend/internal/feature/auth/transport/handler"
	authusecase "account_backend/internal/feature/auth/usecase"
	"account_backend/internal/platform/config"
	jwtmw "account_backend/internal/platform/jwt"
)

// NewTokenVerifier creates the bearer token verifier used by protected routes.
func NewTokenVerifier(cfg *config.Config) *jwtmw.Verifier {
	return jwtmw.NewVerifier(cfg.JWTSecret, cfg.StrictTokens)
}

// NewAuthHandler creates a fully wired AuthHandler backed by the fixture credential store.
func NewAuthHandler(cfg *config.Config) *authhandler.AuthHandler {
	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(authadapters.NewFixtureStore(), generator)
	return authhandler.NewAuthHandler(authUC)
}
