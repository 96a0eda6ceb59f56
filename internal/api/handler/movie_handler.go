package handler

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/response"
	"Boomer/internal/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	movieSvc    service.MovieService
	linkSvc     service.DownloadLinkService
	trendingSvc service.TrendingService
}

func NewMovieHandler(movieSvc service.MovieService, linkSvc service.DownloadLinkService, trendingSvc service.TrendingService) *MovieHandler {
	return &MovieHandler{
		movieSvc:    movieSvc,
		linkSvc:     linkSvc,
		trendingSvc: trendingSvc,
	}
}

func (s *MovieHandler) UploadMovie(c *gin.Context) {
	userID, _ := currentUser(c)

	var req dto.UploadMovieDTO
	if !bind(c, &req) {
		return
	}

	movie, err := s.movieSvc.UploadMovie(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movie)
}

func (s *MovieHandler) GetMovies(c *gin.Context) {
	movies, err := s.movieSvc.GetMovies(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movies)
}

func (s *MovieHandler) GetMovieByID(c *gin.Context) {
	movieID, ok := requiredQuery(c, "movie_id")
	if !ok {
		return
	}

	movie, err := s.movieSvc.GetMovieByID(c.Request.Context(), movieID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movie)
}

func (s *MovieHandler) GetMoviesByGenre(c *gin.Context) {
	var req dto.MovieGenreDTO
	if !bind(c, &req) {
		return
	}

	movies, err := s.movieSvc.GetMoviesByGenre(c.Request.Context(), req.MovieGenre)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movies)
}

func (s *MovieHandler) GetMoviesByType(c *gin.Context) {
	movieType, ok := requiredQuery(c, "type")
	if !ok {
		return
	}

	movies, err := s.movieSvc.GetMoviesByType(c.Request.Context(), movieType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movies)
}

// SearchMovies GET 读查询参数，POST 读 JSON
func (s *MovieHandler) SearchMovies(c *gin.Context) {
	var req dto.SearchMovieDTO
	if !bind(c, &req) {
		return
	}

	movies, err := s.movieSvc.SearchMovies(c.Request.Context(), req.MovieTitle)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movies)
}

func (s *MovieHandler) GetTrending(c *gin.Context) {
	movies, err := s.trendingSvc.GetTrending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movies)
}

func (s *MovieHandler) GetTopRated(c *gin.Context) {
	movies, err := s.trendingSvc.GetTopRated(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movies)
}

func (s *MovieHandler) UpdateMovie(c *gin.Context) {
	var req dto.UpdateMovieDTO
	if !bind(c, &req) {
		return
	}

	movie, err := s.movieSvc.UpdateMovie(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movie)
}

func (s *MovieHandler) AddDownloadLink(c *gin.Context) {
	userID, _ := currentUser(c)

	var req dto.AddDownloadLinkDTO
	if !bind(c, &req) {
		return
	}

	link, err := s.linkSvc.AddLink(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, link)
}

func (s *MovieHandler) RateDownloadLink(c *gin.Context) {
	userID, _ := currentUser(c)

	var req dto.RateDownloadLinkDTO
	if !bind(c, &req) {
		return
	}

	link, err := s.linkSvc.RateLink(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, link)
}

func (s *MovieHandler) UpdateRecommend(c *gin.Context) {
	var req dto.UpdateRecommendDTO
	if !bind(c, &req) {
		return
	}

	movie, err := s.movieSvc.UpdateRecommend(c.Request.Context(), req.MovieID, *req.Recommend)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movie)
}

func (s *MovieHandler) GetRecommendations(c *gin.Context) {
	movies, err := s.movieSvc.GetRecommendations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, movies)
}

func (s *MovieHandler) DeleteMovie(c *gin.Context) {
	movieID, ok := requiredQuery(c, "movie_id")
	if !ok {
		return
	}

	if err := s.movieSvc.DeleteMovie(c.Request.Context(), movieID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"movie_id": movieID})
}
