// Package router はダッシュボードの全ルートを組み立てます。
package router

import (
	"time"

	"github.com/gin-gonic/gin"

	adminhandler "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/admin/transport/handler"
	authhandler "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/auth/transport/handler"
	charthandler "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/chart/transport/handler"
	producthandler "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/product/transport/handler"
	platformhandler "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/platform/http/handler"
	jwtmw "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/platform/jwt"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/shared/ratelimiter"
	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/web"
)

// Handlers はルーティングに必要なハンドラー一式です。
type Handlers struct {
	Chart   *charthandler.ChartHandler
	Admin   *adminhandler.AdminHandler
	Auth    *authhandler.AuthHandler
	Product *producthandler.ProductHandler
	Views   *web.ViewHandler
}

// AuthConfig は認証ミドルウェアの構築に必要な設定です。
type AuthConfig struct {
	JWTSecret string
	Sessions  jwtmw.SessionVerifier
}

// NewRouter はginエンジンを構築し、全ルートを登録します。
func NewRouter(h Handlers, auth AuthConfig) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", platformhandler.Health)
	// HTMLページ（チャートは公開、管理ページは下の認証グループ）
	r.GET("/", h.Views.Index)
	r.GET("/login", h.Views.Login)
	// チャートデータ
	r.GET("/api/candle", h.Chart.GetCandle)
	// ログインフォーム（総当たり対策のレートリミット付き）
	loginLimiter := ratelimiter.NewRateLimiter(10, time.Minute)
	r.POST("/api/login", loginLimiter.Middleware(), h.Auth.Login)

	// 認証必須の管理ページ
	// 未認証のブラウザはログインページへリダイレクト
	adminPages := r.Group("/admin")
	adminPages.Use(jwtmw.AuthRequired(auth.JWTSecret, auth.Sessions, "/login"))
	{
		adminPages.GET("", h.Views.Admin)
	}

	// 認証必須のAPI
	// XHRには401を返す
	adminAPI := r.Group("/admin/api")
	adminAPI.Use(jwtmw.AuthRequired(auth.JWTSecret, auth.Sessions, ""))
	{
		adminAPI.GET("/trade-params", h.Admin.GetTradeParams)
		adminAPI.POST("/trade-params", h.Admin.UpdateTradeParams)
		adminAPI.GET("/balance", h.Admin.GetBalance)
		adminAPI.GET("/products", h.Product.List)
		adminAPI.POST("/logout", h.Auth.Logout)
	}

	return r
}
