package repository

import (
	"Boomer/internal/model"
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

// 卡片查询只取展示字段
var movieCardColumns = []string{"movie_id", "movie_title", "movie_poster_image", "movie_genre", "type", "rating", "rating_count"}

type MovieRepo interface {
	CreateMovie(ctx context.Context, movie *model.Movie) error
	GetMovieByMovieID(ctx context.Context, movieID string) (*model.Movie, error)
	GetMovies(ctx context.Context) ([]*model.Movie, error)
	GetMoviesByGenres(ctx context.Context, genres []string) ([]*model.Movie, error)
	GetMoviesByType(ctx context.Context, movieType string) ([]*model.Movie, error)
	SearchMoviesByTitle(ctx context.Context, title string) ([]*model.Movie, error)
	GetMoviesByMovieIDs(ctx context.Context, movieIDs []string) ([]*model.Movie, error)
	UpdateMovie(ctx context.Context, movie *model.Movie, columns ...string) error
	UpdateMovieRating(ctx context.Context, movieID string, rating, ratingCount int) error
	UpdateRecommend(ctx context.Context, movieID string, recommend bool) error
	GetRecommendedMovies(ctx context.Context) ([]*model.Movie, error)
	GetMovieIDsCreatedSince(ctx context.Context, since time.Time) ([]string, error)
	GetMovieCardsByMovieIDs(ctx context.Context, movieIDs []string) ([]*model.MovieCard, error)
	GetTopRatedMovies(ctx context.Context, limit int) ([]*model.MovieCard, error)
	DeleteMovie(ctx context.Context, movieID string) (int64, error)
}

type MovieRepoImpl struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) MovieRepo {
	return &MovieRepoImpl{db: db}
}

func (s *MovieRepoImpl) CreateMovie(ctx context.Context, movie *model.Movie) error {
	return s.db.WithContext(ctx).Create(movie).Error
}

func (s *MovieRepoImpl) GetMovieByMovieID(ctx context.Context, movieID string) (*model.Movie, error) {
	movie := &model.Movie{}
	result := s.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		First(movie)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return movie, nil
}

func (s *MovieRepoImpl) GetMovies(ctx context.Context) ([]*model.Movie, error) {
	movies := make([]*model.Movie, 0)
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMoviesByGenres 返回与任一给定类型重叠的电影
func (s *MovieRepoImpl) GetMoviesByGenres(ctx context.Context, genres []string) ([]*model.Movie, error) {
	movies := make([]*model.Movie, 0)
	if len(genres) == 0 {
		return movies, nil
	}
	raw, err := json.Marshal(genres)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).
		Where("JSON_OVERLAPS(movie_genre, CAST(? AS JSON))", string(raw)).
		Order("created_at DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *MovieRepoImpl) GetMoviesByType(ctx context.Context, movieType string) ([]*model.Movie, error) {
	movies := make([]*model.Movie, 0)
	err := s.db.WithContext(ctx).
		Where("type = ?", movieType).
		Order("created_at DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *MovieRepoImpl) SearchMoviesByTitle(ctx context.Context, title string) ([]*model.Movie, error) {
	movies := make([]*model.Movie, 0)
	err := s.db.WithContext(ctx).
		Where("movie_title LIKE ?", "%"+title+"%").
		Order("rating DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

func (s *MovieRepoImpl) GetMoviesByMovieIDs(ctx context.Context, movieIDs []string) ([]*model.Movie, error) {
	movies := make([]*model.Movie, 0)
	if len(movieIDs) == 0 {
		return movies, nil
	}
	err := s.db.WithContext(ctx).
		Where("movie_id IN ?", movieIDs).
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// UpdateMovie 只写入 columns 指定的列
func (s *MovieRepoImpl) UpdateMovie(ctx context.Context, movie *model.Movie, columns ...string) error {
	if len(columns) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(movie).
		Select(columns).
		Updates(movie).Error
}

func (s *MovieRepoImpl) UpdateMovieRating(ctx context.Context, movieID string, rating, ratingCount int) error {
	return s.db.WithContext(ctx).
		Model(&model.Movie{}).
		Where("movie_id = ?", movieID).
		Updates(map[string]any{
			"rating":       rating,
			"rating_count": ratingCount,
		}).Error
}

func (s *MovieRepoImpl) UpdateRecommend(ctx context.Context, movieID string, recommend bool) error {
	return s.db.WithContext(ctx).
		Model(&model.Movie{}).
		Where("movie_id = ?", movieID).
		Update("recommend", recommend).Error
}

func (s *MovieRepoImpl) GetRecommendedMovies(ctx context.Context) ([]*model.Movie, error) {
	movies := make([]*model.Movie, 0)
	err := s.db.WithContext(ctx).
		Where("recommend = ?", true).
		Order("updated_at DESC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovieIDsCreatedSince 窗口期内创建的电影 ID，新的在前
func (s *MovieRepoImpl) GetMovieIDsCreatedSince(ctx context.Context, since time.Time) ([]string, error) {
	ids := make([]string, 0)
	err := s.db.WithContext(ctx).
		Model(&model.Movie{}).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Order("id DESC").
		Pluck("movie_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// GetMovieCardsByMovieIDs 返回顺序不保证与入参一致
func (s *MovieRepoImpl) GetMovieCardsByMovieIDs(ctx context.Context, movieIDs []string) ([]*model.MovieCard, error) {
	cards := make([]*model.MovieCard, 0)
	if len(movieIDs) == 0 {
		return cards, nil
	}
	err := s.db.WithContext(ctx).
		Model(&model.Movie{}).
		Select(movieCardColumns).
		Where("movie_id IN ?", movieIDs).
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *MovieRepoImpl) GetTopRatedMovies(ctx context.Context, limit int) ([]*model.MovieCard, error) {
	cards := make([]*model.MovieCard, 0)
	err := s.db.WithContext(ctx).
		Model(&model.Movie{}).
		Select(movieCardColumns).
		Where("rating_count > 0").
		Order("rating DESC").
		Order("rating_count DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *MovieRepoImpl) DeleteMovie(ctx context.Context, movieID string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Delete(&model.Movie{})
	return result.RowsAffected, result.Error
}
