package jwtmw

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Fukkatsuso/cryptocurrency-trading-bot/internal/feature/auth/domain/entity"
)

const (
	// ContextUserID はginコンテキストに格納する認証済みユーザーIDのキーです。
	ContextUserID = "userID"

	// ContextSessionID はginコンテキストに格納するセッションIDのキーです。
	ContextSessionID = "sessionID"

	// CookieName は認証トークンを保持するクッキー名です。
	CookieName = "token"
)

// SessionVerifier looks up a session referenced from a token.
// Following Go convention: the interface is defined by the consumer (middleware).
type SessionVerifier interface {
	FindByID(ctx context.Context, id string) (*entity.Session, error)
}

// AuthRequired returns a Gin middleware that validates the JWT cookie and
// restricts access to authenticated users with a live session.
//
// If redirectTo is non-empty, unauthenticated requests are redirected there
// (for HTML pages); otherwise a 401 JSON response is returned (for API routes).
func AuthRequired(secret string, sessions SessionVerifier, redirectTo string) gin.HandlerFunc {
	reject := func(c *gin.Context) {
		if redirectTo != "" {
			c.Redirect(http.StatusFound, redirectTo)
			c.Abort()
			return
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}

	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			reject(c)
			return
		}

		// Parse and verify JWT signature (only HMAC allowed)
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			reject(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			reject(c)
			return
		}
		sub, subOK := claims["sub"].(float64) // JWT numbers are decoded as float64
		sid, sidOK := claims["sid"].(string)
		if !subOK || !sidOK {
			reject(c)
			return
		}

		// The token alone is not enough: the referenced session must still be live,
		// so logout takes effect before the JWT expires.
		session, err := sessions.FindByID(c.Request.Context(), sid)
		if err != nil || !session.IsValid() || session.UserID != uint(sub) {
			reject(c)
			return
		}

		c.Set(ContextUserID, uint(sub))
		c.Set(ContextSessionID, sid)
		c.Next()
	}
}
