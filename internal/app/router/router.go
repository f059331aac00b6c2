package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	authhandler "account_backend/internal/feature/auth/transport/handler"
	profilehandler "account_backend/internal/feature/profile/transport/handler"
	"account_backend/internal/platform/config"
	"account_backend/internal/platform/http/handler"
	"account_backend/internal/platform/http/middleware"
	jwtmw "account_backend/internal/platform/jwt"
)

func NewRouter(cfg *config.Config, log zerolog.Logger, authHandler *authhandler.AuthHandler,
	profile *profilehandler.ProfileHandler, verifier jwtmw.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		middleware.RequestID(),
		middleware.ContextLogger(log),
		middleware.AccessLog(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	// 導通確認用
	health := handler.Health(cfg.Version)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	api := r.Group("/api")
	{
		// ログイン（JWT 発行）
		api.POST("/login", authHandler.Login)
		// プロフィール更新（全フィールドのエラーをまとめて返す）
		api.PUT("/profile", profile.Update)
	}

	// 認証必須のルート
	// → Authorization ヘッダーの検証はボディの読み込みより先に行う
	auth := api.Group("")
	auth.Use(jwtmw.AuthRequired(verifier))
	{
		auth.POST("/password", authHandler.ChangePassword)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	return r
}
