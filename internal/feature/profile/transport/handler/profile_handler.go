// Package handler provides the HTTP handler for the profile feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/profile/domain"
	"account_backend/internal/feature/profile/domain/entity"
	"account_backend/internal/feature/profile/transport/http/dto"
	"account_backend/internal/platform/http/bind"
	"account_backend/internal/platform/http/middleware"
	"account_backend/internal/platform/http/respond"
	"account_backend/internal/shared/apperror"
)

// ProfileUsecase validates a profile update.
type ProfileUsecase interface {
	Update(ctx context.Context, p entity.Profile) error
}

// ProfileHandler handles profile requests.
type ProfileHandler struct {
	profile ProfileUsecase
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profile ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// Update handles PUT /api/profile.
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileReq
	if err := bind.JSONObject(c, &req); err != nil {
		respond.Error(c, "update_profile", err)
		return
	}

	err := h.profile.Update(c.Request.Context(), entity.Profile{
		Username:  req.Username,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
		Bio:       req.Bio,
	})

	var fieldErrs apperror.FieldErrors
	switch {
	case err == nil:
		middleware.Logger(c).Info().Msg("profile update accepted")
		c.JSON(http.StatusOK, dto.UpdateProfileRes{Success: true})
	case errors.As(err, &fieldErrs):
		middleware.Logger(c).Debug().Err(fieldErrs).Msg("profile update rejected")
		c.JSON(http.StatusBadRequest, dto.ValidationErrorRes{
			Message: domain.ValidationFailed,
			Errors:  fieldErrs,
		})
	default:
		respond.Error(c, "update_profile", err)
	}
}
