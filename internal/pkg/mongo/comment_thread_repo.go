package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CommentThreadRepo interface {
	GetByMovieID(ctx context.Context, movieID string) (*CommentThread, error)
	Create(ctx context.Context, thread *CommentThread) error
	ReplaceComments(ctx context.Context, movieID string, expectedVersion int64, comments []Comment) (*CommentThread, error)
	DeleteByMovieID(ctx context.Context, movieID string) error
}

type commentThreadRepoImpl struct {
	col *mongo.Collection
}

func NewCommentThreadRepo(db *mongo.Database) CommentThreadRepo {
	return &commentThreadRepoImpl{
		col: db.Collection(CommentCollection),
	}
}

// GetByMovieID 获取电影的评论文档，不存在返回 nil
func (s *commentThreadRepoImpl) GetByMovieID(ctx context.Context, movieID string) (*CommentThread, error) {
	var thread CommentThread
	err := s.col.FindOne(ctx, bson.M{"movie_id": movieID}).Decode(&thread)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &thread, nil
}

// Create 插入评论文档，已存在时视为成功
func (s *commentThreadRepoImpl) Create(ctx context.Context, thread *CommentThread) error {
	_, err := s.col.InsertOne(ctx, thread)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

// ReplaceComments 整体替换评论数组，版本号不一致时返回 ErrVersionConflict
func (s *commentThreadRepoImpl) ReplaceComments(ctx context.Context, movieID string, expectedVersion int64, comments []Comment) (*CommentThread, error) {
	if comments == nil {
		comments = []Comment{}
	}
	filter := bson.M{"movie_id": movieID, "version": expectedVersion}
	update := bson.M{
		"$set": bson.M{"comments": comments, "updated_at": time.Now()},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var thread CommentThread
	err := s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&thread)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVersionConflict
		}
		return nil, err
	}
	return &thread, nil
}

// DeleteByMovieID 删除电影的评论文档
func (s *commentThreadRepoImpl) DeleteByMovieID(ctx context.Context, movieID string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"movie_id": movieID})
	return err
}
