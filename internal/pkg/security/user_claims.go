package security

import (
	"Boomer/internal/api/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret         = []byte("Boomer")
	jwtIssuer         = "Boomer"
	jwtExpirationTime = time.Hour * 24
)

// UserClaims Token 中携带的用户身份
type UserClaims struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	jwt.RegisteredClaims
}

// InitJWT 使用配置覆盖默认的签名密钥与有效期
func InitJWT(cfg config.JWTConfig) {
	if cfg.Secret != "" {
		jwtSecret = []byte(cfg.Secret)
	}
	if cfg.Issuer != "" {
		jwtIssuer = cfg.Issuer
	}
	if cfg.ExpireHours > 0 {
		jwtExpirationTime = time.Duration(cfg.ExpireHours) * time.Hour
	}
}

// Remaining 返回 Token 剩余有效期
func (c *UserClaims) Remaining() time.Duration {
	if c.ExpiresAt == nil {
		return jwtExpirationTime
	}
	return time.Until(c.ExpiresAt.Time)
}
