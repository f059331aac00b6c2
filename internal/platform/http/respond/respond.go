// Package respond writes error responses in the shape every endpoint shares.
package respond

import (
	"github.com/gin-gonic/gin"

	"account_backend/internal/platform/http/middleware"
	"account_backend/internal/shared/apperror"
)

// ErrorBody is the {"error": "..."} response.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error translates err through the apperror taxonomy and writes it. Internal
// failures are logged with their cause and answered with the generic message.
func Error(c *gin.Context, op string, err error) {
	appErr := apperror.As(err)
	log := middleware.Logger(c)

	if appErr.Kind == apperror.KindInternal {
		log.Error().Err(err).Str("operation", op).Msg("request failed")
		_ = c.Error(err)
	} else {
		log.Debug().
			Str("operation", op).
			Str("kind", appErr.Kind.String()).
			Str("reason", appErr.Message).
			Msg("request rejected")
	}

	c.JSON(appErr.Status(), ErrorBody{Error: appErr.Message})
}
