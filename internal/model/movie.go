package model

import (
	"time"
)

type Movie struct {
	ID               uint64     `gorm:"primaryKey" json:"-"`
	MovieID          string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_movie_id" json:"movie_id"`
	PosterID         string     `gorm:"type:varchar(80);index:idx_poster_id" json:"poster_id"` // 上传者 user_id
	MovieTitle       string     `gorm:"type:varchar(255);not null;index:idx_title" json:"movie_title"`
	MovieTrailer     string     `gorm:"type:varchar(512)" json:"movie_trailer"`
	Synopsis         string     `gorm:"type:text" json:"synopsis"`
	Tags             []string   `gorm:"type:json;serializer:json" json:"tags"`
	MovieGenre       []string   `gorm:"type:json;serializer:json" json:"movie_genre"`
	Type             string     `gorm:"type:varchar(32);index:idx_type" json:"type"`
	MoviePosterImage []string   `gorm:"type:json;serializer:json" json:"movie_poster_image"`
	Released         bool       `gorm:"type:tinyint(1);not null;default:0" json:"released"`
	ReleaseDate      *time.Time `json:"release_date"`
	CopyrightLicense []string   `gorm:"type:json;serializer:json" json:"copyright_license"`
	AgeRating        string     `gorm:"type:varchar(16)" json:"age_rating"`
	Industry         string     `gorm:"type:varchar(64)" json:"industry"`
	Language         string     `gorm:"type:varchar(64)" json:"language"`
	Company          string     `gorm:"type:varchar(255)" json:"company"`
	Rating           int        `gorm:"not null;default:0;index:idx_rating" json:"rating"`
	RatingCount      int        `gorm:"not null;default:0" json:"rating_count"`
	Recommend        bool       `gorm:"type:tinyint(1);not null;default:0;index:idx_recommend" json:"recommend"`
	CreatedAt        time.Time  `gorm:"index:idx_created_at" json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieCard 热门与排行榜使用的展示字段
type MovieCard struct {
	MovieID          string   `json:"movie_id"`
	MovieTitle       string   `json:"movie_title"`
	MoviePosterImage []string `gorm:"serializer:json" json:"movie_poster_image"`
	MovieGenre       []string `gorm:"serializer:json" json:"movie_genre"`
	Type             string   `json:"type"`
	Rating           int      `json:"rating"`
	RatingCount      int      `json:"rating_count"`
}
