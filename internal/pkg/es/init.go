package es

import (
	"Boomer/internal/api/config"
	"Boomer/internal/pkg/logger"
	"context"
	log "log/slog"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

var Client *elasticsearch.TypedClient

var MovieIndex string

const (
	NotFoundCode = 404
	ConflictCode = 409
)

// InitClient 初始化 Elasticsearch 客户端并确保电影索引存在
func InitClient(elasticCfg config.ElasticConfig) error {
	MovieIndex = elasticCfg.Indices.MovieIndex

	cfg := elasticsearch.Config{
		Addresses: []string{elasticCfg.Address},
		Username:  elasticCfg.Username,
		Password:  elasticCfg.Password,
		Transport: &logger.ESTransport{
			Transport: http.DefaultTransport,
		},
	}

	var err error
	Client, err = elasticsearch.NewTypedClient(cfg)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}

	ctx := context.Background()
	info, err := Client.Info().Do(ctx)
	if err != nil {
		log.Error("Cannot Connect to Elasticsearch", "err", err)
		return err
	}
	log.Info("Connected to Elasticsearch", "version", info.Version.Int)

	return ensureMovieIndex(ctx)
}

func ensureMovieIndex(ctx context.Context) error {
	exists, err := Client.Indices.Exists(MovieIndex).Do(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = Client.Indices.Create(MovieIndex).
		Mappings(&types.TypeMapping{
			Properties: map[string]types.Property{
				"movie_id":    types.NewKeywordProperty(),
				"movie_title": types.NewTextProperty(),
				"movie_genre": types.NewKeywordProperty(),
			},
		}).
		Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		// 多实例同时启动时索引可能已被创建
		if ok := asElasticError(err, &e); ok && e.ErrorCause.Type == "resource_already_exists_exception" {
			return nil
		}
		return err
	}
	log.Info("Created Elasticsearch index", "index", MovieIndex)
	return nil
}
