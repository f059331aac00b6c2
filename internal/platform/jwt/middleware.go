package jwtmw

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"account_backend/internal/platform/http/middleware"
	"account_backend/internal/shared/apperror"
)

const (
	// ContextSubject holds the verified token subject in strict mode.
	ContextSubject = "tokenSubject"

	// RevokedToken is always rejected.
	RevokedToken = "invalid-token"

	bearerPrefix = "Bearer "
)

var (
	// ErrTokenRequired is returned when no Authorization header was sent.
	ErrTokenRequired = apperror.New(apperror.KindUnauthorized, "Authorization token is required")

	// ErrInvalidToken is returned for empty, revoked or (in strict mode) unverifiable tokens.
	ErrInvalidToken = apperror.New(apperror.KindUnauthorized, "Invalid or expired token")
)

// TokenVerifier checks a bearer token and returns its subject, if any.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Verifier rejects empty and revoked tokens. In strict mode it also requires a
// valid, unexpired HS256 JWT signed with secret.
type Verifier struct {
	secret []byte
	strict bool
}

// NewVerifier creates a Verifier.
func NewVerifier(secret string, strict bool) *Verifier {
	return &Verifier{secret: []byte(secret), strict: strict}
}

// Verify implements TokenVerifier.
func (v *Verifier) Verify(tokenStr string) (string, error) {
	if tokenStr == "" || tokenStr == RevokedToken {
		return "", ErrInvalidToken
	}
	if !v.strict {
		return "", nil
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	return claims.Subject, nil
}

// BearerToken extracts the token from an Authorization header value by
// removing the first "Bearer " occurrence. ok is false when the header is absent.
func BearerToken(header string) (token string, ok bool) {
	if header == "" {
		return "", false
	}
	return strings.Replace(header, bearerPrefix, "", 1), true
}

// AuthRequired returns a Gin middleware that rejects requests without an
// acceptable bearer token. It runs before the body is read.
func AuthRequired(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := middleware.Logger(c)

		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			log.Debug().Msg("authorization header missing")
			abort(c, ErrTokenRequired)
			return
		}

		subject, err := verifier.Verify(token)
		if err != nil {
			log.Warn().Err(err).Msg("bearer token rejected")
			abort(c, ErrInvalidToken)
			return
		}

		if subject != "" {
			c.Set(ContextSubject, subject)
		}
		c.Next()
	}
}

func abort(c *gin.Context, err *apperror.Error) {
	c.AbortWithStatusJSON(err.Status(), gin.H{"error": err.Message})
}
