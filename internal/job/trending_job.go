package job

import (
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/logger"
	"Boomer/internal/pkg/redis"
	"Boomer/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const trendingLockTTL = 2 * time.Minute

// TrendingJob 定时重算热门榜单并刷新缓存，多实例下由分布式锁保证只有一个执行
type TrendingJob struct {
	trendingSvc service.TrendingService
	tryLock     func(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error)
	unlock      func(ctx context.Context, key string, value interface{})
}

func NewTrendingJob(trendingSvc service.TrendingService) *TrendingJob {
	return &TrendingJob{
		trendingSvc: trendingSvc,
		tryLock:     redis.TryLock,
		unlock:      redis.UnLock,
	}
}

func (s *TrendingJob) Run() {
	traceID := "job-trending-" + uuid.NewString()
	ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), traceID), trendingLockTTL)
	defer cancel()

	ok, err := s.tryLock(ctx, consts.TrendingLock, traceID, trendingLockTTL, 1)
	if err != nil {
		log.ErrorContext(ctx, "trending job lock error", "err", err)
		return
	}
	if !ok {
		log.InfoContext(ctx, "trending job skipped, another instance holds the lock")
		return
	}
	defer s.unlock(context.Background(), consts.TrendingLock, traceID)

	start := time.Now()
	movies, err := s.trendingSvc.RefreshTrending(ctx)
	if err != nil {
		log.ErrorContext(ctx, "trending job refresh error", "err", err)
		return
	}
	log.InfoContext(ctx, "TrendingJob finished", "movie_count", len(movies), "latency", time.Since(start))
}
