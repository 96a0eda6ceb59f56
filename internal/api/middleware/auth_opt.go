package middleware

import (
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/security"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

// AuthOptionalMiddleware 可选鉴权：Token 有效且未注销时注入用户身份，否则为空串，不拦截请求
func AuthOptionalMiddleware(revoked RevocationCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(consts.UserIDKey, "")
		c.Set(consts.UserNameKey, "")

		token, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := security.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		if revoked != nil {
			signature, err := security.ExtractSignature(token)
			if err != nil {
				c.Next()
				return
			}
			isRevoked, err := revoked(c.Request.Context(), signature)
			if err != nil {
				log.WarnContext(c.Request.Context(), "optional auth: revocation check failed", "err", err)
				c.Next()
				return
			}
			if isRevoked {
				c.Next()
				return
			}
		}

		c.Set(consts.UserIDKey, claims.UserID)
		c.Set(consts.UserNameKey, claims.UserName)
		c.Next()
	}
}
