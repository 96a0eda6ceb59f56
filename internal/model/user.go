package model

import (
	"time"
)

type User struct {
	ID         uint64    `gorm:"primaryKey"`
	UserID     string    `gorm:"type:varchar(80);not null;uniqueIndex:idx_user_id"`
	UserName   string    `gorm:"type:varchar(50);not null"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_email"`
	Password   string    `gorm:"type:varchar(255);not null"`
	ProfileImg string    `gorm:"type:varchar(512)"`
	Bio        string    `gorm:"type:varchar(255)"`
	Country    string    `gorm:"type:varchar(64)"`
	Language   string    `gorm:"type:varchar(64)"`
	Interests  []string  `gorm:"type:json;serializer:json"`
	IsActive   bool      `gorm:"type:tinyint(1);not null;default:1"`
	Suspended  bool      `gorm:"type:tinyint(1);not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}
