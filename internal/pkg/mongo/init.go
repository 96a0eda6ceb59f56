package mongo

import (
	"Boomer/internal/api/config"
	"Boomer/internal/pkg/logger"
	"context"
	"errors"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CommentCollection = "comments"
	ReviewCollection  = "reviews"
)

// ErrVersionConflict 写入时文档版本已被其他请求推进
var ErrVersionConflict = errors.New("thread version conflict")

// InitMongo 建立连接并返回 Database 引用，同时初始化索引
func InitMongo(cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 建立连接
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URL).
		SetMonitor(logger.NewMongoMonitor()),
	)
	if err != nil {
		return nil, err
	}

	// 检查连通性
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.Database)

	if err = ensureIndexes(ctx, db); err != nil {
		return nil, err
	}

	log.Info("MongoDB initialized successfully", "db", cfg.Database)
	return db, nil
}

// ensureIndexes 每部电影只允许一个评论文档和一个评价文档
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{CommentCollection, ReviewCollection} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "movie_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_movie_id"),
		})
		if err != nil {
			return err
		}
	}
	return nil
}
