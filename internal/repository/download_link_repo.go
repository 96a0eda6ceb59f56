package repository

import (
	"Boomer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type DownloadLinkRepo interface {
	CreateLink(ctx context.Context, link *model.DownloadLink) error
	CreateLinks(ctx context.Context, links []*model.DownloadLink) error
	GetLinkByID(ctx context.Context, id uint64) (*model.DownloadLink, error)
	GetLinksByMovieID(ctx context.Context, movieID string) ([]*model.DownloadLink, error)
	RateLink(ctx context.Context, id uint64, delta int, userID string) (int64, error)
	DeleteLinksByMovieID(ctx context.Context, movieID string) error
}

type DownloadLinkRepoImpl struct {
	db *gorm.DB
}

func NewDownloadLinkRepo(db *gorm.DB) DownloadLinkRepo {
	return &DownloadLinkRepoImpl{db: db}
}

func (s *DownloadLinkRepoImpl) CreateLink(ctx context.Context, link *model.DownloadLink) error {
	return s.db.WithContext(ctx).Create(link).Error
}

func (s *DownloadLinkRepoImpl) CreateLinks(ctx context.Context, links []*model.DownloadLink) error {
	if len(links) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).CreateInBatches(links, 100).Error
}

func (s *DownloadLinkRepoImpl) GetLinkByID(ctx context.Context, id uint64) (*model.DownloadLink, error) {
	link := &model.DownloadLink{}
	result := s.db.WithContext(ctx).First(link, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return link, nil
}

func (s *DownloadLinkRepoImpl) GetLinksByMovieID(ctx context.Context, movieID string) ([]*model.DownloadLink, error) {
	links := make([]*model.DownloadLink, 0)
	err := s.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("rating DESC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// RateLink 在库内原子地调整评分并追加投票人，不去重
func (s *DownloadLinkRepoImpl) RateLink(ctx context.Context, id uint64, delta int, userID string) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.DownloadLink{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating":   gorm.Expr("rating + ?", delta),
			"rated_by": gorm.Expr("JSON_ARRAY_APPEND(COALESCE(rated_by, JSON_ARRAY()), '$', ?)", userID),
		})
	return result.RowsAffected, result.Error
}

func (s *DownloadLinkRepoImpl) DeleteLinksByMovieID(ctx context.Context, movieID string) error {
	return s.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Delete(&model.DownloadLink{}).Error
}
