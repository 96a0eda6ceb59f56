package model

import (
	"time"
)

type DownloadLink struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	MovieID   string    `gorm:"type:varchar(64);not null;index:idx_movie_id" json:"movie_id"`
	UserID    string    `gorm:"type:varchar(80);not null" json:"user_id"`
	URL       string    `gorm:"type:varchar(1024);not null" json:"url"`
	Rating    int       `gorm:"not null;default:0" json:"rating"`
	RatedBy   []string  `gorm:"type:json;serializer:json" json:"rated_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DownloadLink) TableName() string {
	return "download_links"
}
