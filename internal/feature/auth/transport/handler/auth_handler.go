// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/feature/auth/transport/http/dto"
	"account_backend/internal/platform/http/bind"
	"account_backend/internal/platform/http/middleware"
	"account_backend/internal/platform/http/respond"
)

const (
	loginSucceeded  = "Login successful!"
	passwordChanged = "Password changed successfully"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login validates the credentials and returns a signed token.
	Login(ctx context.Context, c entity.Credentials) (string, error)
	// ChangePassword validates a password change request.
	ChangePassword(ctx context.Context, p entity.PasswordChange) error
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login は POST /api/login を処理します。
// - ボディが解析できない場合は500
// - 入力チェック違反は400、認証失敗は401
// - 成功時はメッセージとトークン付きで200
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := bind.JSONObject(c, &req); err != nil {
		respond.Error(c, "login", err)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), entity.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respond.Error(c, "login", err)
		return
	}

	middleware.Logger(c).Info().Msg("user login successful")
	c.JSON(http.StatusOK, dto.LoginRes{Message: loginSucceeded, Token: token})
}

// ChangePassword は POST /api/password を処理します。
// トークンの検証は jwtmw.AuthRequired が先に済ませている前提です。
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordReq
	if err := bind.JSONObject(c, &req); err != nil {
		respond.Error(c, "change_password", err)
		return
	}

	err := h.auth.ChangePassword(c.Request.Context(), entity.PasswordChange{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respond.Error(c, "change_password", err)
		return
	}

	middleware.Logger(c).Info().Msg("password change accepted")
	c.JSON(http.StatusOK, dto.MessageRes{Message: passwordChanged})
}
