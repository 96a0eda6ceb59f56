package redis

import (
	"Boomer/internal/api/config"
	"Boomer/internal/pkg/logger"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

const (
	defaultPoolSize = 10
	pingTimeout     = 5 * time.Second
)

var Rdb *redis.Client

// InitRedis 初始化 Redis 客户端，缓存、Token 黑名单、分布式锁与 WS 广播共用该连接池
func InitRedis(cfg config.RedisConfig) error {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: poolSize,

		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	rdb.AddHook(logger.NewRedisLogger())

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	Rdb = rdb
	log.Info("Redis connection established", "addr", cfg.Addr, "pool_size", poolSize)
	return nil
}

// Close 关闭连接池，订阅中的 WS 连接随之退出
func Close() error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Close()
}
