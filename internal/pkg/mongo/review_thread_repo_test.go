package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// findAndModifyCommand findAndModify 命令中需要校验的部分
type findAndModifyCommand struct {
	Query struct {
		MovieID string `bson:"movie_id"`
		Version int64  `bson:"version"`
	} `bson:"query"`
	Update struct {
		Set bson.Raw `bson:"$set"`
		Inc struct {
			Version int64 `bson:"version"`
		} `bson:"$inc"`
	} `bson:"update"`
	New bool `bson:"new"`
}

func decodeStarted(mt *mtest.T, out interface{}) string {
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.NoError(mt, bson.Unmarshal(evt.Command, out))
	return evt.CommandName
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestReviewThreadRepo_ReplaceReviews(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("version checked update", func(mt *mtest.T) {
		repo := &reviewThreadRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "movie_id", Value: "m1"},
			{Key: "version", Value: int64(4)},
			{Key: "reviews", Value: bson.A{
				bson.D{{Key: "user_id", Value: "u1"}, {Key: "user_name", Value: "alice"}, {Key: "rating", Value: 5}},
			}},
		}}))

		thread, err := repo.ReplaceReviews(ctx, "m1", 3, []Review{{UserID: "u1", UserName: "alice", Rating: 5}})
		require.NoError(mt, err)
		require.NotNil(mt, thread)
		assert.Equal(mt, "m1", thread.MovieID)
		assert.Equal(mt, int64(4), thread.Version)
		require.Len(mt, thread.Reviews, 1)
		assert.Equal(mt, 5, thread.Reviews[0].Rating)

		var cmd findAndModifyCommand
		assert.Equal(mt, "findAndModify", decodeStarted(mt, &cmd))
		assert.Equal(mt, "m1", cmd.Query.MovieID)
		assert.Equal(mt, int64(3), cmd.Query.Version)
		assert.Equal(mt, int64(1), cmd.Update.Inc.Version)
		assert.True(mt, cmd.New)

		var set struct {
			Reviews   []Review  `bson:"reviews"`
			UpdatedAt time.Time `bson:"updated_at"`
		}
		require.NoError(mt, bson.Unmarshal(cmd.Update.Set, &set))
		require.Len(mt, set.Reviews, 1)
		assert.Equal(mt, "u1", set.Reviews[0].UserID)
		assert.False(mt, set.UpdatedAt.IsZero())
		_, err = cmd.Update.Set.LookupErr("version")
		assert.Error(mt, err, "version must only move through $inc")
	})

	mt.Run("nil reviews stored as empty array", func(mt *mtest.T) {
		repo := &reviewThreadRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "movie_id", Value: "m1"},
			{Key: "version", Value: int64(1)},
			{Key: "reviews", Value: bson.A{}},
		}}))

		_, err := repo.ReplaceReviews(ctx, "m1", 0, nil)
		require.NoError(mt, err)

		var cmd findAndModifyCommand
		decodeStarted(mt, &cmd)
		reviews, err := cmd.Update.Set.LookupErr("reviews")
		require.NoError(mt, err)
		assert.Equal(mt, bson.TypeArray, reviews.Type)
	})

	mt.Run("stale version maps to conflict", func(mt *mtest.T) {
		repo := &reviewThreadRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		thread, err := repo.ReplaceReviews(ctx, "m1", 7, []Review{})
		assert.ErrorIs(mt, err, ErrVersionConflict)
		assert.Nil(mt, thread)
	})

	mt.Run("server error passes through", func(mt *mtest.T) {
		repo := &reviewThreadRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 2, Name: "BadValue", Message: "bad update",
		}))

		_, err := repo.ReplaceReviews(ctx, "m1", 1, []Review{})
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, ErrVersionConflict)
	})
}

func TestReviewThreadRepo_AggregateWindowStats(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	since := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)

	mt.Run("decodes batch", func(mt *mtest.T) {
		repo := &reviewThreadRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{
				{Key: "movie_id", Value: "m2"},
				{Key: "candidate_rank", Value: 1},
				{Key: "review_count", Value: 3},
				{Key: "average_rating", Value: 7.5},
			},
			bson.D{
				{Key: "movie_id", Value: "m1"},
				{Key: "candidate_rank", Value: 0},
				{Key: "review_count", Value: 0},
				{Key: "average_rating", Value: nil},
			},
		))

		stats, err := repo.AggregateWindowStats(ctx, []string{"m1", "m2"}, since, 5)
		require.NoError(mt, err)
		require.Len(mt, stats, 2)
		assert.Equal(mt, &ReviewWindowStat{MovieID: "m2", ReviewCount: 3, AverageRating: 7.5}, stats[0])
		assert.Equal(mt, &ReviewWindowStat{MovieID: "m1", ReviewCount: 0, AverageRating: 0}, stats[1])
	})

	mt.Run("pipeline shape", func(mt *mtest.T) {
		repo := &reviewThreadRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		stats, err := repo.AggregateWindowStats(ctx, []string{"m1", "m2", "m3"}, since, 2)
		require.NoError(mt, err)
		assert.Empty(mt, stats)

		var cmd struct {
			Pipeline []bson.Raw `bson:"pipeline"`
		}
		assert.Equal(mt, "aggregate", decodeStarted(mt, &cmd))
		require.Len(mt, cmd.Pipeline, 5)

		stages := make([]string, len(cmd.Pipeline))
		for i, stage := range cmd.Pipeline {
			elems, err := stage.Elements()
			require.NoError(mt, err)
			require.Len(mt, elems, 1)
			stages[i] = elems[0].Key()
		}
		assert.Equal(mt, []string{"$match", "$project", "$project", "$sort", "$limit"}, stages)

		in, err := cmd.Pipeline[0].LookupErr("$match", "movie_id", "$in")
		require.NoError(mt, err)
		ids, err := in.Array().Values()
		require.NoError(mt, err)
		assert.Len(mt, ids, 3)

		_, err = cmd.Pipeline[1].LookupErr("$project", "candidate_rank", "$indexOfArray")
		assert.NoError(mt, err)

		sortElems, err := cmd.Pipeline[3].Lookup("$sort").Document().Elements()
		require.NoError(mt, err)
		keys := make([]string, len(sortElems))
		dirs := make([]int32, len(sortElems))
		for i, e := range sortElems {
			keys[i] = e.Key()
			dirs[i] = e.Value().Int32()
		}
		assert.Equal(mt, []string{"review_count", "average_rating", "candidate_rank"}, keys)
		assert.Equal(mt, []int32{-1, -1, 1}, dirs)

		assert.Equal(mt, int32(2), cmd.Pipeline[4].Lookup("$limit").Int32())
	})

	mt.Run("no candidates skips the query", func(mt *mtest.T) {
		repo := &reviewThreadRepoImpl{col: mt.Coll}

		stats, err := repo.AggregateWindowStats(ctx, nil, since, 5)
		require.NoError(mt, err)
		assert.Empty(mt, stats)

		stats, err = repo.AggregateWindowStats(ctx, []string{"m1"}, since, 0)
		require.NoError(mt, err)
		assert.Empty(mt, stats)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}

func TestReviewThreadRepo_Lookup(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("missing thread", func(mt *mtest.T) {
		repo := &reviewThreadRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		thread, err := repo.GetByMovieID(ctx, "ghost")
		assert.NoError(mt, err)
		assert.Nil(mt, thread)
	})

	mt.Run("batch lookup", func(mt *mtest.T) {
		repo := &reviewThreadRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "movie_id", Value: "m1"}, {Key: "version", Value: int64(2)}},
			bson.D{{Key: "movie_id", Value: "m2"}, {Key: "version", Value: int64(0)}},
		))

		threads, err := repo.GetByMovieIDs(ctx, []string{"m1", "m2"})
		require.NoError(mt, err)
		require.Len(mt, threads, 2)
		assert.Equal(mt, "m1", threads[0].MovieID)
		assert.Equal(mt, int64(2), threads[0].Version)
	})

	mt.Run("duplicate create is success", func(mt *mtest.T) {
		repo := &reviewThreadRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		assert.NoError(mt, repo.Create(ctx, NewReviewThread("m1")))
	})

	mt.Run("other write error surfaces", func(mt *mtest.T) {
		repo := &reviewThreadRepoImpl{col: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 121, Message: "Document failed validation",
		}))

		assert.Error(mt, repo.Create(ctx, NewReviewThread("m1")))
	})
}
