package es

import (
	"context"
	"errors"
	log "log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
)

type MovieRepoImpl struct {
	client *elasticsearch.TypedClient
	index  string
}

func NewMovieRepo(client *elasticsearch.TypedClient, index string) *MovieRepoImpl {
	return &MovieRepoImpl{client: client, index: index}
}

func (s *MovieRepoImpl) IndexMovie(ctx context.Context, movieID, title string, genres []string) error {
	if genres == nil {
		genres = []string{}
	}
	_, err := s.client.Index(s.index).
		Id(movieID).
		Document(&MovieES{MovieID: movieID, MovieTitle: title, MovieGenre: genres}).
		Do(ctx)
	return err
}

func (s *MovieRepoImpl) DeleteMovie(ctx context.Context, movieID string) error {
	_, err := s.client.Delete(s.index, movieID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if asElasticError(err, &e) && e.Status == NotFoundCode {
			log.WarnContext(ctx, "Movie already deleted or not found in ES", "movie_id", movieID)
			return nil
		}
		return err
	}
	return nil
}

// SearchMovieIDs 标题全文匹配加前缀匹配，按相关度返回 movie_id
func (s *MovieRepoImpl) SearchMovieIDs(ctx context.Context, title string, size int) ([]string, error) {
	query := &types.Query{
		Bool: &types.BoolQuery{
			Should: []types.Query{
				{Match: map[string]types.MatchQuery{"movie_title": {Query: title}}},
				{MatchPhrasePrefix: map[string]types.MatchPhrasePrefixQuery{"movie_title": {Query: title}}},
			},
		},
	}

	resp, err := s.client.Search().
		Index(s.index).
		Query(query).
		Size(size).
		Source_(&types.SourceFilter{Includes: []string{"movie_id"}}).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Id_ != nil {
			ids = append(ids, *hit.Id_)
		}
	}
	return ids, nil
}

func asElasticError(err error, target **types.ElasticsearchError) bool {
	return errors.As(err, target)
}
