package redis

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/consts"
	"context"
	"time"

	"github.com/goccy/go-json"
)

// TrendingCache 热门榜单缓存，评价变更时直接失效
type TrendingCache struct{}

func NewTrendingCache() *TrendingCache {
	return &TrendingCache{}
}

func (c *TrendingCache) GetTrending(ctx context.Context) ([]*dto.TrendingMovieDTO, bool, error) {
	raw, err := GetValue(ctx, consts.TrendingKey)
	if err != nil {
		return nil, false, err
	}
	if raw == "" {
		return nil, false, nil
	}
	var movies []*dto.TrendingMovieDTO
	if err = json.Unmarshal([]byte(raw), &movies); err != nil {
		// 格式损坏的缓存视为未命中
		_ = DeleteKey(ctx, consts.TrendingKey)
		return nil, false, nil
	}
	return movies, true, nil
}

func (c *TrendingCache) SetTrending(ctx context.Context, movies []*dto.TrendingMovieDTO, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(movies)
	if err != nil {
		return err
	}
	return SetWithExpiration(ctx, consts.TrendingKey, data, ttl)
}

func (c *TrendingCache) Invalidate(ctx context.Context) error {
	return DeleteKey(ctx, consts.TrendingKey)
}

// NotifyReviews Kafka 未启用时由缓存自身响应评价变更
func (c *TrendingCache) NotifyReviews(ctx context.Context, _ *dto.ReviewChange) error {
	return c.Invalidate(ctx)
}
