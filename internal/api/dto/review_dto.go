package dto

import (
	"Boomer/internal/pkg/mongo"
	"time"
)

// ReviewDTO 未提供的字段在合并时保留原值
type ReviewDTO struct {
	MovieID      string  `json:"movie_id" validate:"required"`
	ProfileImage *string `json:"profile_image,omitempty"`
	UserName     *string `json:"user_name,omitempty" validate:"omitempty,max=50"`
	Rating       *int    `json:"rating,omitempty" validate:"omitempty,min=0,max=10"`
	Comment      *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

type DeleteReviewDTO struct {
	MovieID string `json:"movie_id" form:"movie_id" validate:"required"`
}

// ReviewChange 评价变更后交给通知方的快照
type ReviewChange struct {
	Action      string
	MovieID     string
	Rating      int
	RatingCount int
	Thread      *mongo.ReviewThread
}

// ReviewEvent 写入 Kafka 的评价事件
type ReviewEvent struct {
	Action      string    `json:"action"`
	MovieID     string    `json:"movie_id"`
	ReviewCount int       `json:"review_count"`
	Rating      int       `json:"rating"`
	OccurredAt  time.Time `json:"occurred_at"`
}
