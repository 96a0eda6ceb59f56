package service

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/mongo"
	"context"
	"errors"
	log "log/slog"
	"time"
)

// ReviewNotifier 评价变更后的通知方 (广播、事件、缓存失效)
type ReviewNotifier interface {
	NotifyReviews(ctx context.Context, change *dto.ReviewChange) error
}

// TrendingCache 热门榜单缓存
type TrendingCache interface {
	GetTrending(ctx context.Context) ([]*dto.TrendingMovieDTO, bool, error)
	SetTrending(ctx context.Context, movies []*dto.TrendingMovieDTO, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// MovieSearcher 电影标题全文检索
type MovieSearcher interface {
	IndexMovie(ctx context.Context, movieID, title string, genres []string) error
	DeleteMovie(ctx context.Context, movieID string) error
	SearchMovieIDs(ctx context.Context, title string, size int) ([]string, error)
}

// TokenBlacklist 已注销的 Token 签名
type TokenBlacklist interface {
	Blacklist(ctx context.Context, signature string, ttl time.Duration) error
}

// ObjectStorage 对象存储，返回可公开访问的 URL
type ObjectStorage interface {
	Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}

// retryOnConflict 执行读-改-写，版本冲突时重新读取并重放，超过次数返回 ErrConcurrentUpdate
func retryOnConflict(ctx context.Context, maxRetries int, attempt func() error) error {
	if maxRetries <= 0 {
		maxRetries = consts.DefaultThreadMaxRetries
	}
	for i := 0; i <= maxRetries; i++ {
		err := attempt()
		if !errors.Is(err, mongo.ErrVersionConflict) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.WarnContext(ctx, "thread version conflict, retrying", "attempt", i+1)
	}
	return ErrConcurrentUpdate
}
