package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewThreadRepo interface {
	GetByMovieID(ctx context.Context, movieID string) (*ReviewThread, error)
	GetByMovieIDs(ctx context.Context, movieIDs []string) ([]*ReviewThread, error)
	Create(ctx context.Context, thread *ReviewThread) error
	ReplaceReviews(ctx context.Context, movieID string, expectedVersion int64, reviews []Review) (*ReviewThread, error)
	DeleteByMovieID(ctx context.Context, movieID string) error
	AggregateWindowStats(ctx context.Context, movieIDs []string, since time.Time, limit int) ([]*ReviewWindowStat, error)
}

type reviewThreadRepoImpl struct {
	col *mongo.Collection
}

func NewReviewThreadRepo(db *mongo.Database) ReviewThreadRepo {
	return &reviewThreadRepoImpl{
		col: db.Collection(ReviewCollection),
	}
}

// GetByMovieID 获取电影的评价文档，不存在返回 nil
func (s *reviewThreadRepoImpl) GetByMovieID(ctx context.Context, movieID string) (*ReviewThread, error) {
	var thread ReviewThread
	err := s.col.FindOne(ctx, bson.M{"movie_id": movieID}).Decode(&thread)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &thread, nil
}

// GetByMovieIDs 批量获取评价文档，顺序不保证
func (s *reviewThreadRepoImpl) GetByMovieIDs(ctx context.Context, movieIDs []string) ([]*ReviewThread, error) {
	if len(movieIDs) == 0 {
		return []*ReviewThread{}, nil
	}
	cursor, err := s.col.Find(ctx, bson.M{"movie_id": bson.M{"$in": movieIDs}})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	threads := make([]*ReviewThread, 0, len(movieIDs))
	if err = cursor.All(ctx, &threads); err != nil {
		return nil, err
	}
	return threads, nil
}

// Create 插入评价文档，已存在时视为成功
func (s *reviewThreadRepoImpl) Create(ctx context.Context, thread *ReviewThread) error {
	_, err := s.col.InsertOne(ctx, thread)
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return err
}

// ReplaceReviews 整体替换评价数组，版本号不一致时返回 ErrVersionConflict
func (s *reviewThreadRepoImpl) ReplaceReviews(ctx context.Context, movieID string, expectedVersion int64, reviews []Review) (*ReviewThread, error) {
	if reviews == nil {
		reviews = []Review{}
	}
	filter := bson.M{"movie_id": movieID, "version": expectedVersion}
	update := bson.M{
		"$set": bson.M{"reviews": reviews, "updated_at": time.Now()},
		"$inc": bson.M{"version": 1},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var thread ReviewThread
	err := s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&thread)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrVersionConflict
		}
		return nil, err
	}
	return &thread, nil
}

// DeleteByMovieID 删除电影的评价文档
func (s *reviewThreadRepoImpl) DeleteByMovieID(ctx context.Context, movieID string) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"movie_id": movieID})
	return err
}

// AggregateWindowStats 在库内统计窗口期评价数与平均分。
// 按 (数量, 平均分) 降序取前 limit 条，完全相同时按 movieIDs 中的先后顺序
func (s *reviewThreadRepoImpl) AggregateWindowStats(ctx context.Context, movieIDs []string, since time.Time, limit int) ([]*ReviewWindowStat, error) {
	if len(movieIDs) == 0 || limit <= 0 {
		return []*ReviewWindowStat{}, nil
	}

	cursor, err := s.col.Aggregate(ctx, windowStatsPipeline(movieIDs, since, limit))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	stats := make([]*ReviewWindowStat, 0, limit)
	if err = cursor.All(ctx, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func windowStatsPipeline(movieIDs []string, since time.Time, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"movie_id": bson.M{"$in": movieIDs}}}},
		{{Key: "$project", Value: bson.M{
			"movie_id":       1,
			"candidate_rank": bson.M{"$indexOfArray": bson.A{movieIDs, "$movie_id"}},
			"windowed": bson.M{"$filter": bson.M{
				"input": bson.M{"$ifNull": bson.A{"$reviews", bson.A{}}},
				"as":    "r",
				"cond":  bson.M{"$gte": bson.A{"$$r.created_at", since}},
			}},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":            0,
			"movie_id":       1,
			"candidate_rank": 1,
			"review_count":   bson.M{"$size": "$windowed"},
			"average_rating": bson.M{"$ifNull": bson.A{bson.M{"$avg": "$windowed.rating"}, 0}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "review_count", Value: -1},
			{Key: "average_rating", Value: -1},
			{Key: "candidate_rank", Value: 1},
		}}},
		{{Key: "$limit", Value: limit}},
	}
}
