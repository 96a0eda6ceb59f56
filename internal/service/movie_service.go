package service

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/model"
	"Boomer/internal/pkg/mongo"
	"Boomer/internal/pkg/util"
	"Boomer/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
	"golang.org/x/sync/errgroup"
)

const searchSize = 50

type MovieService interface {
	UploadMovie(ctx context.Context, posterID string, req *dto.UploadMovieDTO) (*model.Movie, error)
	GetMovies(ctx context.Context) ([]*model.Movie, error)
	GetMovieByID(ctx context.Context, movieID string) (*dto.MovieDetailDTO, error)
	GetMoviesByGenre(ctx context.Context, genres []string) ([]*model.Movie, error)
	GetMoviesByType(ctx context.Context, movieType string) ([]*model.Movie, error)
	SearchMovies(ctx context.Context, title string) ([]*model.Movie, error)
	UpdateMovie(ctx context.Context, req *dto.UpdateMovieDTO) (*model.Movie, error)
	UpdateRecommend(ctx context.Context, movieID string, recommend bool) (*model.Movie, error)
	GetRecommendations(ctx context.Context) ([]*model.Movie, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieServiceImpl struct {
	movieRepo   repository.MovieRepo
	linkRepo    repository.DownloadLinkRepo
	commentRepo mongo.CommentThreadRepo
	reviewRepo  mongo.ReviewThreadRepo
	searcher    MovieSearcher
}

// NewMovieService searcher 为 nil 时搜索走数据库 LIKE
func NewMovieService(movieRepo repository.MovieRepo, linkRepo repository.DownloadLinkRepo, commentRepo mongo.CommentThreadRepo, reviewRepo mongo.ReviewThreadRepo, searcher MovieSearcher) MovieService {
	return &movieServiceImpl{
		movieRepo:   movieRepo,
		linkRepo:    linkRepo,
		commentRepo: commentRepo,
		reviewRepo:  reviewRepo,
		searcher:    searcher,
	}
}

// UploadMovie 创建电影，同时创建空评论区、空评价区与下载链接
func (s *movieServiceImpl) UploadMovie(ctx context.Context, posterID string, req *dto.UploadMovieDTO) (*model.Movie, error) {
	movie := &model.Movie{}
	if err := copier.Copy(movie, req); err != nil {
		return nil, err
	}
	movie.MovieID = util.NewID()
	movie.PosterID = posterID
	movie.Rating, movie.RatingCount = 0, 0
	normalizeMovieSlices(movie)

	if err := s.movieRepo.CreateMovie(ctx, movie); err != nil {
		if isDuplicateError(err) {
			return nil, ErrMovieExist
		}
		return nil, err
	}

	links := make([]*model.DownloadLink, 0, len(req.DownloadLinks))
	for _, url := range req.DownloadLinks {
		links = append(links, &model.DownloadLink{
			MovieID: movie.MovieID,
			UserID:  posterID,
			URL:     url,
			RatedBy: []string{},
		})
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.commentRepo.Create(gCtx, mongo.NewCommentThread(movie.MovieID))
	})
	g.Go(func() error {
		return s.reviewRepo.Create(gCtx, mongo.NewReviewThread(movie.MovieID))
	})
	g.Go(func() error {
		return s.linkRepo.CreateLinks(gCtx, links)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.index(ctx, movie)
	return movie, nil
}

func (s *movieServiceImpl) GetMovies(ctx context.Context) ([]*model.Movie, error) {
	return s.movieRepo.GetMovies(ctx)
}

// GetMovieByID 电影详情与下载链接并行读取
func (s *movieServiceImpl) GetMovieByID(ctx context.Context, movieID string) (*dto.MovieDetailDTO, error) {
	var (
		movie *model.Movie
		links []*model.DownloadLink
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		movie, err = s.movieRepo.GetMovieByMovieID(gCtx, movieID)
		return err
	})
	g.Go(func() (err error) {
		links, err = s.linkRepo.GetLinksByMovieID(gCtx, movieID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	return &dto.MovieDetailDTO{Movie: movie, DownloadLinks: links}, nil
}

// GetMoviesByGenre 没有匹配的电影时返回 ErrMovieGenreNotFound
func (s *movieServiceImpl) GetMoviesByGenre(ctx context.Context, genres []string) ([]*model.Movie, error) {
	movies, err := s.movieRepo.GetMoviesByGenres(ctx, genres)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, ErrMovieGenreNotFound
	}
	return movies, nil
}

func (s *movieServiceImpl) GetMoviesByType(ctx context.Context, movieType string) ([]*model.Movie, error) {
	return s.movieRepo.GetMoviesByType(ctx, movieType)
}

// SearchMovies 优先使用 ES 的相关度排序，ES 不可用时退回 LIKE
func (s *movieServiceImpl) SearchMovies(ctx context.Context, title string) ([]*model.Movie, error) {
	if s.searcher == nil {
		return s.movieRepo.SearchMoviesByTitle(ctx, title)
	}

	ids, err := s.searcher.SearchMovieIDs(ctx, title, searchSize)
	if err != nil {
		log.WarnContext(ctx, "movie search fallback to database", "err", err)
		return s.movieRepo.SearchMoviesByTitle(ctx, title)
	}

	movies, err := s.movieRepo.GetMoviesByMovieIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return orderByIDs(movies, ids), nil
}

// UpdateMovie 只更新请求中提供的字段
func (s *movieServiceImpl) UpdateMovie(ctx context.Context, req *dto.UpdateMovieDTO) (*model.Movie, error) {
	movie, err := s.movieRepo.GetMovieByMovieID(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	columns := applyMovieUpdate(movie, req)
	if len(columns) == 0 {
		return movie, nil
	}
	if err = s.movieRepo.UpdateMovie(ctx, movie, columns...); err != nil {
		return nil, err
	}

	s.index(ctx, movie)
	return movie, nil
}

func (s *movieServiceImpl) UpdateRecommend(ctx context.Context, movieID string, recommend bool) (*model.Movie, error) {
	movie, err := s.movieRepo.GetMovieByMovieID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	if err = s.movieRepo.UpdateRecommend(ctx, movieID, recommend); err != nil {
		return nil, err
	}
	movie.Recommend = recommend
	return movie, nil
}

func (s *movieServiceImpl) GetRecommendations(ctx context.Context) ([]*model.Movie, error) {
	return s.movieRepo.GetRecommendedMovies(ctx)
}

// DeleteMovie 依次删除下载链接、评论区、评价区与电影，任一步失败即中止
func (s *movieServiceImpl) DeleteMovie(ctx context.Context, movieID string) error {
	movie, err := s.movieRepo.GetMovieByMovieID(ctx, movieID)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrMovieNotFound
	}

	if err = s.linkRepo.DeleteLinksByMovieID(ctx, movieID); err != nil {
		return err
	}
	if err = s.commentRepo.DeleteByMovieID(ctx, movieID); err != nil {
		return err
	}
	if err = s.reviewRepo.DeleteByMovieID(ctx, movieID); err != nil {
		return err
	}
	rows, err := s.movieRepo.DeleteMovie(ctx, movieID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMovieNotFound
	}

	if s.searcher != nil {
		if err = s.searcher.DeleteMovie(ctx, movieID); err != nil {
			log.WarnContext(ctx, "failed to remove movie from search index", "movie_id", movieID, "err", err)
		}
	}
	return nil
}

func (s *movieServiceImpl) index(ctx context.Context, movie *model.Movie) {
	if s.searcher == nil {
		return
	}
	if err := s.searcher.IndexMovie(ctx, movie.MovieID, movie.MovieTitle, movie.MovieGenre); err != nil {
		log.WarnContext(ctx, "failed to index movie", "movie_id", movie.MovieID, "err", err)
	}
}

// applyMovieUpdate 合并非空字段并返回需要写入的列
func applyMovieUpdate(movie *model.Movie, req *dto.UpdateMovieDTO) []string {
	columns := make([]string, 0)
	setString := func(col string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			columns = append(columns, col)
		}
	}
	setSlice := func(col string, dst *[]string, src []string) {
		if src != nil {
			*dst = src
			columns = append(columns, col)
		}
	}

	setString("movie_title", &movie.MovieTitle, req.MovieTitle)
	setString("movie_trailer", &movie.MovieTrailer, req.MovieTrailer)
	setString("synopsis", &movie.Synopsis, req.Synopsis)
	setString("type", &movie.Type, req.Type)
	setString("age_rating", &movie.AgeRating, req.AgeRating)
	setString("industry", &movie.Industry, req.Industry)
	setString("language", &movie.Language, req.Language)
	setString("company", &movie.Company, req.Company)
	setSlice("tags", &movie.Tags, req.Tags)
	setSlice("movie_genre", &movie.MovieGenre, req.MovieGenre)
	setSlice("movie_poster_image", &movie.MoviePosterImage, req.MoviePosterImage)
	setSlice("copyright_license", &movie.CopyrightLicense, req.CopyrightLicense)
	if req.Released != nil {
		movie.Released = *req.Released
		columns = append(columns, "released")
	}
	if req.ReleaseDate != nil {
		movie.ReleaseDate = req.ReleaseDate
		columns = append(columns, "release_date")
	}
	return columns
}

func normalizeMovieSlices(movie *model.Movie) {
	for _, p := range []*[]string{&movie.Tags, &movie.MovieGenre, &movie.MoviePosterImage, &movie.CopyrightLicense} {
		if *p == nil {
			*p = []string{}
		}
	}
}

// orderByIDs 按 ids 的顺序重排，缺失的跳过
func orderByIDs(movies []*model.Movie, ids []string) []*model.Movie {
	byID := make(map[string]*model.Movie, len(movies))
	for _, m := range movies {
		byID[m.MovieID] = m
	}
	ordered := make([]*model.Movie, 0, len(movies))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			ordered = append(ordered, m)
		}
	}
	return ordered
}
