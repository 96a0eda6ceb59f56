package dto

import (
	"Boomer/internal/model"
	"time"
)

type UploadMovieDTO struct {
	MovieTitle       string     `json:"movie_title" validate:"required,max=255"`
	MovieTrailer     string     `json:"movie_trailer" validate:"required"`
	Synopsis         string     `json:"synopsis"`
	Tags             []string   `json:"tags"`
	MovieGenre       []string   `json:"movie_genre"`
	Type             string     `json:"type" validate:"max=32"`
	MoviePosterImage []string   `json:"movie_poster_image" validate:"omitempty,dive,url"`
	Released         bool       `json:"released"`
	ReleaseDate      *time.Time `json:"release_date"`
	CopyrightLicense []string   `json:"copyright_license"`
	AgeRating        string     `json:"age_rating" validate:"omitempty,oneof=r_rated eighteen twelve pg13"`
	Industry         string     `json:"industry"`
	Language         string     `json:"language"`
	Company          string     `json:"company"`
	DownloadLinks    []string   `json:"download_links" validate:"omitempty,dive,url"`
}

// UpdateMovieDTO 部分更新，rating 与 rating_count 由评价聚合维护
type UpdateMovieDTO struct {
	MovieID          string     `json:"movie_id" validate:"required"`
	MovieTitle       *string    `json:"movie_title,omitempty" validate:"omitempty,max=255"`
	MovieTrailer     *string    `json:"movie_trailer,omitempty"`
	Synopsis         *string    `json:"synopsis,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	MovieGenre       []string   `json:"movie_genre,omitempty"`
	Type             *string    `json:"type,omitempty" validate:"omitempty,max=32"`
	MoviePosterImage []string   `json:"movie_poster_image,omitempty" validate:"omitempty,dive,url"`
	Released         *bool      `json:"released,omitempty"`
	ReleaseDate      *time.Time `json:"release_date,omitempty"`
	CopyrightLicense []string   `json:"copyright_license,omitempty"`
	AgeRating        *string    `json:"age_rating,omitempty" validate:"omitempty,oneof=r_rated eighteen twelve pg13"`
	Industry         *string    `json:"industry,omitempty"`
	Language         *string    `json:"language,omitempty"`
	Company          *string    `json:"company,omitempty"`
}

type MovieGenreDTO struct {
	MovieGenre []string `json:"movie_genre" validate:"required,min=1"`
}

type SearchMovieDTO struct {
	MovieTitle string `json:"movie_title" form:"movie_title" validate:"required"`
}

type UpdateRecommendDTO struct {
	MovieID   string `json:"movie_id" validate:"required"`
	Recommend *bool  `json:"recommend" validate:"required"`
}

// MovieDetailDTO 电影详情，附带下载链接
type MovieDetailDTO struct {
	*model.Movie
	DownloadLinks []*model.DownloadLink `json:"download_links"`
}

// TrendingMovieDTO 热门电影卡片与窗口期统计
type TrendingMovieDTO struct {
	model.MovieCard
	WindowReviewCount   int     `json:"window_review_count"`
	WindowAverageRating float64 `json:"window_average_rating"`
}
