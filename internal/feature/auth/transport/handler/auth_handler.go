// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	jwtmw "github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/platform/jwt"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, userID, password, userAgent, ipAddress string) (string, error)
	// Logout はセッションを失効させます。
	Logout(ctx context.Context, sessionID string) error
}

// CookieConfig はログインクッキーの発行設定です。
type CookieConfig struct {
	MaxAge int
	Secure bool
}

// AuthHandler はログインフォームとログアウトのHTTPリクエストを処理します。
// ブラウザのフォーム送信が前提のため、レスポンスはリダイレクト中心です。
type AuthHandler struct {
	auth   AuthUsecase
	cookie CookieConfig
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie}
}

// Login はログインフォームのPOSTを処理します。
// - userId/passwordをフォームから取得
// - 認証失敗時はログインページへ302（エラー種別は公開しない）
// - 認証成功時はトークンをHttpOnlyクッキーに設定し、/adminへ302
func (h *AuthHandler) Login(c *gin.Context) {
	userID := c.PostForm("userId")
	password := c.PostForm("password")
	if userID == "" || password == "" {
		slog.Warn("login form incomplete", "remote_addr", c.ClientIP())
		c.Redirect(http.StatusFound, "/login?error=1")
		return
	}

	token, err := h.auth.Login(c.Request.Context(), userID, password, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		// ユーザー列挙攻撃を防止するため、実際のエラーを公開しない
		slog.Warn("login failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		c.Redirect(http.StatusFound, "/login?error=1")
		return
	}

	slog.Info("user login successful", "user_id", userID, "remote_addr", c.ClientIP())
	c.SetCookie(jwtmw.CookieName, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/admin")
}

// Logout はセッションを失効させ、クッキーを破棄してログインページへ302します。
// セッションIDは認証ミドルウェアがコンテキストに設定済みです。
func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, ok := c.Get(jwtmw.ContextSessionID); ok {
		if err := h.auth.Logout(c.Request.Context(), sessionID.(string)); err != nil {
			slog.Warn("logout failed", "error", err, "remote_addr", c.ClientIP())
		}
	}

	c.SetCookie(jwtmw.CookieName, "", -1, "/", "", h.cookie.Secure, true)
	c.Redirect(http.StatusFound, "/login")
}
