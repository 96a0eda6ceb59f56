package service

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/mongo"
	"Boomer/internal/repository"
	"context"
	log "log/slog"
	"slices"
	"time"
)

type ReviewService interface {
	AddOrUpdateReview(ctx context.Context, userID, userName string, req *dto.ReviewDTO) (*mongo.Review, error)
	UpdateReview(ctx context.Context, userID, userName string, req *dto.ReviewDTO) (*mongo.Review, error)
	DeleteReview(ctx context.Context, movieID, userID string) (*mongo.ReviewThread, error)
	GetReviews(ctx context.Context, movieID string) (*mongo.ReviewThread, error)
}

type reviewServiceImpl struct {
	movieRepo  repository.MovieRepo
	reviewRepo mongo.ReviewThreadRepo
	notifiers  []ReviewNotifier
	maxRetries int
	now        func() time.Time
}

func NewReviewService(movieRepo repository.MovieRepo, reviewRepo mongo.ReviewThreadRepo, maxRetries int, notifiers ...ReviewNotifier) ReviewService {
	return &reviewServiceImpl{
		movieRepo:  movieRepo,
		reviewRepo: reviewRepo,
		notifiers:  notifiers,
		maxRetries: maxRetries,
		now:        time.Now,
	}
}

// AddOrUpdateReview 用户已有评价则部分合并，否则追加
func (s *reviewServiceImpl) AddOrUpdateReview(ctx context.Context, userID, userName string, req *dto.ReviewDTO) (*mongo.Review, error) {
	return s.upsert(ctx, userID, userName, req, false)
}

// UpdateReview 只修改已有评价
func (s *reviewServiceImpl) UpdateReview(ctx context.Context, userID, userName string, req *dto.ReviewDTO) (*mongo.Review, error) {
	return s.upsert(ctx, userID, userName, req, true)
}

func (s *reviewServiceImpl) upsert(ctx context.Context, userID, userName string, req *dto.ReviewDTO, mustExist bool) (*mongo.Review, error) {
	var (
		result        mongo.Review
		action        string
		ratingChanged bool
	)

	thread, err := s.mutate(ctx, req.MovieID, func(thread *mongo.ReviewThread) ([]mongo.Review, error) {
		reviews := slices.Clone(thread.Reviews)
		now := s.now()

		if idx := thread.IndexOfUser(userID); idx >= 0 {
			before := reviews[idx].Rating
			mergeReview(&reviews[idx], req, now)
			result, action = reviews[idx], consts.ReviewActionUpdate
			ratingChanged = reviews[idx].Rating != before
			return reviews, nil
		}
		if mustExist {
			return nil, ErrReviewNotFound
		}

		review := mongo.Review{UserID: userID, UserName: userName, CreatedAt: now}
		mergeReview(&review, req, now)
		result, action = review, consts.ReviewActionCreate
		ratingChanged = true
		return append(reviews, review), nil
	})
	if err != nil {
		return nil, err
	}

	rating, count := ComputeAggregate(thread.Reviews)
	if ratingChanged {
		if err = s.movieRepo.UpdateMovieRating(ctx, req.MovieID, rating, count); err != nil {
			return nil, err
		}
	}

	s.notify(ctx, &dto.ReviewChange{Action: action, MovieID: req.MovieID, Rating: rating, RatingCount: count, Thread: thread})
	return &result, nil
}

// DeleteReview 删除用户的评价，没有匹配项时原样返回
func (s *reviewServiceImpl) DeleteReview(ctx context.Context, movieID, userID string) (*mongo.ReviewThread, error) {
	thread, err := s.mutate(ctx, movieID, func(thread *mongo.ReviewThread) ([]mongo.Review, error) {
		return slices.DeleteFunc(slices.Clone(thread.Reviews), func(r mongo.Review) bool {
			return r.UserID == userID
		}), nil
	})
	if err != nil {
		return nil, err
	}

	rating, count := ComputeAggregate(thread.Reviews)
	if err = s.movieRepo.UpdateMovieRating(ctx, movieID, rating, count); err != nil {
		return nil, err
	}

	s.notify(ctx, &dto.ReviewChange{Action: consts.ReviewActionDelete, MovieID: movieID, Rating: rating, RatingCount: count, Thread: thread})
	return thread, nil
}

func (s *reviewServiceImpl) GetReviews(ctx context.Context, movieID string) (*mongo.ReviewThread, error) {
	thread, err := s.reviewRepo.GetByMovieID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return nil, ErrReviewThreadNotFound
	}
	return thread, nil
}

// mutate 以版本号保护的整体替换
func (s *reviewServiceImpl) mutate(ctx context.Context, movieID string, apply func(thread *mongo.ReviewThread) ([]mongo.Review, error)) (*mongo.ReviewThread, error) {
	var updated *mongo.ReviewThread
	err := retryOnConflict(ctx, s.maxRetries, func() error {
		thread, err := s.reviewRepo.GetByMovieID(ctx, movieID)
		if err != nil {
			return err
		}
		if thread == nil {
			return ErrReviewThreadNotFound
		}

		reviews, err := apply(thread)
		if err != nil {
			return err
		}

		updated, err = s.reviewRepo.ReplaceReviews(ctx, movieID, thread.Version, reviews)
		return err
	})
	return updated, err
}

func (s *reviewServiceImpl) notify(ctx context.Context, change *dto.ReviewChange) {
	for _, n := range s.notifiers {
		if err := n.NotifyReviews(ctx, change); err != nil {
			log.WarnContext(ctx, "review notifier failed", "movie_id", change.MovieID, "action", change.Action, "err", err)
		}
	}
}

// mergeReview 用请求中提供的字段覆盖，未提供的保留
func mergeReview(review *mongo.Review, req *dto.ReviewDTO, now time.Time) {
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if req.ProfileImage != nil {
		review.ProfileImage = *req.ProfileImage
	}
	if req.UserName != nil {
		review.UserName = *req.UserName
	}
	review.UpdatedAt = now
}
