package service

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/model"
	"Boomer/internal/pkg/consts"
	"Boomer/internal/repository"
	"context"
)

type DownloadLinkService interface {
	AddLink(ctx context.Context, userID string, req *dto.AddDownloadLinkDTO) (*model.DownloadLink, error)
	RateLink(ctx context.Context, userID string, req *dto.RateDownloadLinkDTO) (*model.DownloadLink, error)
}

type downloadLinkServiceImpl struct {
	movieRepo repository.MovieRepo
	linkRepo  repository.DownloadLinkRepo
}

func NewDownloadLinkService(movieRepo repository.MovieRepo, linkRepo repository.DownloadLinkRepo) DownloadLinkService {
	return &downloadLinkServiceImpl{
		movieRepo: movieRepo,
		linkRepo:  linkRepo,
	}
}

func (s *downloadLinkServiceImpl) AddLink(ctx context.Context, userID string, req *dto.AddDownloadLinkDTO) (*model.DownloadLink, error) {
	movie, err := s.movieRepo.GetMovieByMovieID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	link := &model.DownloadLink{
		MovieID: req.MovieID,
		UserID:  userID,
		URL:     req.URL,
		Rating:  0,
		RatedBy: []string{},
	}
	if err = s.linkRepo.CreateLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// RateLink 每次调用都会调整评分并记录投票人，同一用户可重复投票
func (s *downloadLinkServiceImpl) RateLink(ctx context.Context, userID string, req *dto.RateDownloadLinkDTO) (*model.DownloadLink, error) {
	delta, err := ParseDirection(req.Rating)
	if err != nil {
		return nil, err
	}

	rows, err := s.linkRepo.RateLink(ctx, req.ID, delta, userID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrLinkNotFound
	}

	link, err := s.linkRepo.GetLinkByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	return link, nil
}

// ParseDirection inc 为 +1，decr 为 -1
func ParseDirection(direction string) (int, error) {
	switch direction {
	case consts.DirectionInc:
		return 1, nil
	case consts.DirectionDecr:
		return -1, nil
	default:
		return 0, ErrRateDirection
	}
}
