package service

import (
	"Boomer/internal/api/config"
	"Boomer/internal/api/dto"
	"Boomer/internal/model"
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/mongo"
	"Boomer/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"time"
)

type TrendingService interface {
	GetTrending(ctx context.Context) ([]*dto.TrendingMovieDTO, error)
	RefreshTrending(ctx context.Context) ([]*dto.TrendingMovieDTO, error)
	GetTopRated(ctx context.Context) ([]*model.MovieCard, error)
}

type trendingServiceImpl struct {
	movieRepo  repository.MovieRepo
	reviewRepo mongo.ReviewThreadRepo
	cache      TrendingCache
	cfg        config.TrendingConfig
	now        func() time.Time
}

// NewTrendingService cache 为 nil 时每次实时计算
func NewTrendingService(movieRepo repository.MovieRepo, reviewRepo mongo.ReviewThreadRepo, cache TrendingCache, cfg config.TrendingConfig) TrendingService {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = consts.DefaultTrendingWindowDays
	}
	if cfg.Limit <= 0 {
		cfg.Limit = consts.DefaultTrendingLimit
	}
	return &trendingServiceImpl{
		movieRepo:  movieRepo,
		reviewRepo: reviewRepo,
		cache:      cache,
		cfg:        cfg,
		now:        time.Now,
	}
}

// GetTrending 优先读缓存，未命中时计算并回填
func (s *trendingServiceImpl) GetTrending(ctx context.Context) ([]*dto.TrendingMovieDTO, error) {
	if s.cache != nil {
		movies, ok, err := s.cache.GetTrending(ctx)
		if err != nil {
			log.WarnContext(ctx, "trending cache read failed", "err", err)
		} else if ok {
			return movies, nil
		}
	}
	return s.RefreshTrending(ctx)
}

// RefreshTrending 跳过缓存重新计算
func (s *trendingServiceImpl) RefreshTrending(ctx context.Context) ([]*dto.TrendingMovieDTO, error) {
	movies, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		ttl := time.Duration(s.cfg.CacheTTLSeconds) * time.Second
		if err = s.cache.SetTrending(ctx, movies, ttl); err != nil {
			log.WarnContext(ctx, "trending cache write failed", "err", err)
		}
	}
	return movies, nil
}

func (s *trendingServiceImpl) GetTopRated(ctx context.Context) ([]*model.MovieCard, error) {
	return s.movieRepo.GetTopRatedMovies(ctx, consts.TopRatedLimit)
}

func (s *trendingServiceImpl) compute(ctx context.Context) ([]*dto.TrendingMovieDTO, error) {
	since := s.now().AddDate(0, 0, -s.cfg.WindowDays)

	movieIDs, err := s.movieRepo.GetMovieIDsCreatedSince(ctx, since)
	if err != nil {
		return nil, err
	}
	if len(movieIDs) == 0 {
		return []*dto.TrendingMovieDTO{}, nil
	}

	var ranked []*mongo.ReviewWindowStat
	switch s.cfg.Strategy {
	case consts.TrendingStrategyPipeline:
		stats, err := s.reviewRepo.AggregateWindowStats(ctx, movieIDs, since, s.cfg.Limit)
		if err != nil {
			return nil, err
		}
		ranked = mergeWindowStats(movieIDs, stats, s.cfg.Limit)
	default:
		threads, err := s.reviewRepo.GetByMovieIDs(ctx, movieIDs)
		if err != nil {
			return nil, err
		}
		ranked = RankTrending(movieIDs, threads, since, s.cfg.Limit)
	}

	rankedIDs := make([]string, len(ranked))
	for i, st := range ranked {
		rankedIDs[i] = st.MovieID
	}
	cards, err := s.movieRepo.GetMovieCardsByMovieIDs(ctx, rankedIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*model.MovieCard, len(cards))
	for _, c := range cards {
		byID[c.MovieID] = c
	}
	result := make([]*dto.TrendingMovieDTO, 0, len(ranked))
	for _, st := range ranked {
		card, ok := byID[st.MovieID]
		if !ok {
			continue
		}
		result = append(result, &dto.TrendingMovieDTO{
			MovieCard:           *card,
			WindowReviewCount:   st.ReviewCount,
			WindowAverageRating: st.AverageRating,
		})
	}
	return result, nil
}

// RankTrending 统计窗口期内的评价，按 (评价数, 平均分) 降序稳定排序后取前 limit 个。
// 没有评价文档的电影按 0 计入。
func RankTrending(movieIDs []string, threads []*mongo.ReviewThread, since time.Time, limit int) []*mongo.ReviewWindowStat {
	byID := make(map[string]*mongo.ReviewThread, len(threads))
	for _, t := range threads {
		byID[t.MovieID] = t
	}

	seen := make(map[string]struct{}, len(movieIDs))
	stats := make([]*mongo.ReviewWindowStat, 0, len(movieIDs))
	for _, id := range movieIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		st := &mongo.ReviewWindowStat{MovieID: id}
		if t, ok := byID[id]; ok {
			sum := 0
			for _, r := range t.Reviews {
				if r.CreatedAt.Before(since) {
					continue
				}
				st.ReviewCount++
				sum += r.Rating
			}
			if st.ReviewCount > 0 {
				st.AverageRating = float64(sum) / float64(st.ReviewCount)
			}
		}
		stats = append(stats, st)
	}

	sortWindowStats(stats)

	if limit >= 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats
}

// sortWindowStats 按 (评价数, 平均分) 降序稳定排序，入参须已按候选顺序排列
func sortWindowStats(stats []*mongo.ReviewWindowStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].ReviewCount != stats[j].ReviewCount {
			return stats[i].ReviewCount > stats[j].ReviewCount
		}
		return stats[i].AverageRating > stats[j].AverageRating
	})
}

// mergeWindowStats 把聚合结果与没有评价文档的电影合并，按候选顺序打破平局后取前 limit 个，
// 排序结果与进程内计算一致
func mergeWindowStats(movieIDs []string, stats []*mongo.ReviewWindowStat, limit int) []*mongo.ReviewWindowStat {
	byID := make(map[string]*mongo.ReviewWindowStat, len(stats))
	for _, st := range stats {
		byID[st.MovieID] = st
	}

	seen := make(map[string]struct{}, len(movieIDs))
	merged := make([]*mongo.ReviewWindowStat, 0, len(movieIDs))
	for _, id := range movieIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if st, ok := byID[id]; ok {
			merged = append(merged, st)
			continue
		}
		merged = append(merged, &mongo.ReviewWindowStat{MovieID: id})
	}
	sortWindowStats(merged)

	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
