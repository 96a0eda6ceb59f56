package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentThread 一部电影的全部评论，整体读写
type CommentThread struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	MovieID   string             `bson:"movie_id" json:"movie_id"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	Version   int64              `bson:"version" json:"version"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Comment struct {
	CommentID string    `bson:"comment_id" json:"comment_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	UserName  string    `bson:"user_name" json:"user_name"`
	Text      string    `bson:"text" json:"text"`
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	Gif       string    `bson:"gif,omitempty" json:"gif,omitempty"`
	Video     string    `bson:"video,omitempty" json:"video,omitempty"`
	URL       string    `bson:"url,omitempty" json:"url,omitempty"`
	Likes     int       `bson:"likes" json:"likes"`
	Dislikes  int       `bson:"dislikes" json:"dislikes"`
	Replies   []Reply   `bson:"replies" json:"replies"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// Reply 回复没有独立 ID，只追加不删除
type Reply struct {
	UserID   string `bson:"user_id" json:"user_id"`
	UserName string `bson:"user_name" json:"user_name"`
	Comment  string `bson:"comment" json:"comment"`
}

// NewCommentThread 空评论文档
func NewCommentThread(movieID string) *CommentThread {
	now := time.Now()
	return &CommentThread{
		MovieID:   movieID,
		Comments:  []Comment{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
