package middleware

import (
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/response"
	"Boomer/internal/pkg/security"
	"Boomer/internal/service"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// RevocationCheck 判断 Token 签名是否已注销
type RevocationCheck func(ctx context.Context, signature string) (bool, error)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context
func AuthMiddleware(revoked RevocationCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			response.Fail(c, service.Unauthorized, "Token 缺失或格式错误")
			return
		}

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, service.Unauthorized, "Token 缺失或格式错误")
			return
		}

		if revoked != nil {
			isRevoked, err := revoked(c.Request.Context(), signature)
			if err != nil {
				response.Fail(c, service.InternalServerError, "未知错误")
				return
			}
			if isRevoked {
				response.Fail(c, service.Unauthorized, "Token 无效或已过期")
				return
			}
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, service.Unauthorized, "Token 无效或已过期")
			return
		}

		c.Set(consts.UserIDKey, claims.UserID)
		c.Set(consts.UserNameKey, claims.UserName)
		c.Set(consts.TokenKey, tokenString)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return token, token != ""
}
