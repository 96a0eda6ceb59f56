package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReviewThread 一部电影的全部评价，每个用户至多一条
type ReviewThread struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	MovieID   string             `bson:"movie_id" json:"movie_id"`
	Reviews   []Review           `bson:"reviews" json:"reviews"`
	Version   int64              `bson:"version" json:"version"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Review struct {
	UserID       string    `bson:"user_id" json:"user_id"`
	ProfileImage string    `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	UserName     string    `bson:"user_name" json:"user_name"`
	Rating       int       `bson:"rating" json:"rating"`
	Comment      string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// ReviewWindowStat 时间窗口内的评价统计
type ReviewWindowStat struct {
	MovieID       string  `bson:"movie_id" json:"movie_id"`
	ReviewCount   int     `bson:"review_count" json:"review_count"`
	AverageRating float64 `bson:"average_rating" json:"average_rating"`
}

// NewReviewThread 空评价文档
func NewReviewThread(movieID string) *ReviewThread {
	now := time.Now()
	return &ReviewThread{
		MovieID:   movieID,
		Reviews:   []Review{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IndexOfUser 查找用户的评价位置，不存在返回 -1
func (t *ReviewThread) IndexOfUser(userID string) int {
	for i := range t.Reviews {
		if t.Reviews[i].UserID == userID {
			return i
		}
	}
	return -1
}
