package di

import (
	profilehandler "account_backend/internal/feature/profile/transport/handler"
	profileusecase "account_backend/internal/feature/profile/usecase"
	"account_backend/internal/platform/config"
	"account_backend/internal/platform/validation"
)

// NewProfileHandler creates a ProfileHandler whose "today" comes from now in the configured timezone.
func NewProfileHandler(cfg *config.Config, now validation.Clock) *profilehandler.ProfileHandler {
	v := validation.New(now, cfg.Location())
	return profilehandler.NewProfileHandler(profileusecase.NewProfileUsecase(v))
}
