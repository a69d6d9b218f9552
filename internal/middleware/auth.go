package middleware

import (
	"net/http"
	"time"

	"timeline-frontend/internal/token"
	"timeline-frontend/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthGuard 保护认证页面：令牌缺失或已过期时清除令牌并重定向到
// 资料创建页，由用户重新走 OAuth 流程
func AuthGuard(tokens token.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		idToken, err := tokens.Get(token.KeyIDToken)
		if err != nil {
			util.Logger.Warn("访问认证页面但缺少令牌",
				zap.String("path", c.Request.URL.Path))
			c.Redirect(http.StatusFound, "/profile/new")
			c.Abort()
			return
		}

		if util.IsTokenExpired(idToken, time.Now()) {
			util.Logger.Warn("认证令牌已过期，触发重新认证",
				zap.String("path", c.Request.URL.Path))
			tokens.Delete(token.KeyIDToken)
			tokens.Delete(token.KeyAccessToken)
			c.Redirect(http.StatusFound, "/profile/new")
			c.Abort()
			return
		}

		c.Next()
	}
}
