package auth

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RequireToken は保護対象パスの前段でトークンを検証するミドルウェアを返します。
// 検証に成功した場合、ユーザー名を ContextUserKey でコンテキストに載せます。
// 期限切れのトークンに更新や再発行はなく、再ログインが必要です。
func (m *Manager) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		token, attached := ExtractToken(session)
		if !attached {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Please login to access this resource",
			})
			return
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "UNAUTHORIZED",
				"message": "No access token found",
			})
			return
		}

		identity, err := m.tokens.Verify(token)
		switch {
		case err == nil:
		case errors.Is(err, ErrTokenExpired):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "TOKEN_EXPIRED",
				"message": "Token has expired",
			})
			return
		case errors.Is(err, ErrTokenMalformed), errors.Is(err, ErrTokenSignatureInvalid):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "TOKEN_INVALID",
				"message": "Invalid token",
			})
			return
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "Internal server error during authentication",
			})
			return
		}

		c.Set(ContextUserKey, identity)
		c.Next()
	}
}
