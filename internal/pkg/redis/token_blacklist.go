package redis

import (
	"Boomer/internal/pkg/consts"
	"context"
	"time"
)

// BlacklistToken 注销的 Token 签名在剩余有效期内保留
func BlacklistToken(ctx context.Context, signature string, ttl time.Duration) error {
	return SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, 1, ttl)
}

// IsTokenBlacklisted 判断签名是否已注销
func IsTokenBlacklisted(ctx context.Context, signature string) (bool, error) {
	return Exists(ctx, consts.TokenBlacklistKey+signature)
}

// TokenStore 以 Redis 作为 Token 黑名单
type TokenStore struct{}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

func (s *TokenStore) Blacklist(ctx context.Context, signature string, ttl time.Duration) error {
	return BlacklistToken(ctx, signature, ttl)
}
