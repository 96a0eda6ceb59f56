package service

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/mongo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment_CreatesThread(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, 3)

	thread, err := svc.AddComment(ctx, "u1", "alice", &dto.AddCommentDTO{MovieID: "m1", Text: "loved it"})
	require.NoError(t, err)
	require.Len(t, thread.Comments, 1)

	got, err := svc.GetComments(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)

	c := got.Comments[0]
	assert.NotEmpty(t, c.CommentID)
	assert.Equal(t, "u1", c.UserID)
	assert.Equal(t, "alice", c.UserName)
	assert.Equal(t, "loved it", c.Text)
	assert.Zero(t, c.Likes)
	assert.Zero(t, c.Dislikes)
	assert.NotNil(t, c.Replies)
	assert.Empty(t, c.Replies)
}

func TestAddComment_BodyNameOverridesClaims(t *testing.T) {
	svc := NewCommentService(newFakeCommentRepo("m1"), 3)
	thread, err := svc.AddComment(context.Background(), "u1", "alice", &dto.AddCommentDTO{MovieID: "m1", UserName: "Al", Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Al", thread.Comments[0].UserName)
}

func TestGetComments_MissingThread(t *testing.T) {
	svc := NewCommentService(newFakeCommentRepo(), 3)
	thread, err := svc.GetComments(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, "m1", thread.MovieID)
	assert.Empty(t, thread.Comments)
}

func TestReactComment(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(newFakeCommentRepo("m1"), 3)
	thread, err := svc.AddComment(ctx, "u1", "alice", &dto.AddCommentDTO{MovieID: "m1", Text: "hi"})
	require.NoError(t, err)
	id := thread.Comments[0].CommentID

	_, err = svc.ReactComment(ctx, "m1", id, ReactionLike, true)
	require.NoError(t, err)
	thread, err = svc.ReactComment(ctx, "m1", id, ReactionLike, true)
	require.NoError(t, err)
	assert.Equal(t, 2, thread.Comments[0].Likes)

	thread, err = svc.ReactComment(ctx, "m1", id, ReactionDislike, false)
	require.NoError(t, err)
	assert.Equal(t, -1, thread.Comments[0].Dislikes)
	assert.Equal(t, 2, thread.Comments[0].Likes)

	_, err = svc.ReactComment(ctx, "m1", "missing", ReactionLike, true)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	_, err = svc.ReactComment(ctx, "m2", id, ReactionLike, true)
	assert.ErrorIs(t, err, ErrCommentThreadNotFound)
}

func TestReplyComment(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(newFakeCommentRepo("m1"), 3)
	thread, err := svc.AddComment(ctx, "u1", "alice", &dto.AddCommentDTO{MovieID: "m1", Text: "hi"})
	require.NoError(t, err)
	id := thread.Comments[0].CommentID

	thread, err = svc.ReplyComment(ctx, "u2", "bob", &dto.ReplyCommentDTO{MovieID: "m1", CommentID: id, Text: "agreed"})
	require.NoError(t, err)
	require.Len(t, thread.Comments[0].Replies, 1)
	assert.Equal(t, "bob", thread.Comments[0].Replies[0].UserName)
	assert.Equal(t, "agreed", thread.Comments[0].Replies[0].Comment)

	_, err = svc.ReplyComment(ctx, "u2", "bob", &dto.ReplyCommentDTO{MovieID: "m1", CommentID: "missing", Text: "x"})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()
	svc := NewCommentService(newFakeCommentRepo("m1"), 3)
	first, err := svc.AddComment(ctx, "u1", "alice", &dto.AddCommentDTO{MovieID: "m1", Text: "one"})
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, "u1", "alice", &dto.AddCommentDTO{MovieID: "m1", Text: "two"})
	require.NoError(t, err)

	thread, err := svc.DeleteComment(ctx, "m1", "missing")
	require.NoError(t, err)
	assert.Len(t, thread.Comments, 2)

	thread, err = svc.DeleteComment(ctx, "m1", first.Comments[0].CommentID)
	require.NoError(t, err)
	require.Len(t, thread.Comments, 1)
	assert.Equal(t, "two", thread.Comments[0].Text)

	_, err = svc.DeleteComment(ctx, "m2", "x")
	assert.ErrorIs(t, err, ErrCommentThreadNotFound)
}

func TestDeleteComment_ThreadWithoutComments(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCommentRepo("empty")
	repo.threads["bare"] = &mongo.CommentThread{MovieID: "bare"}
	svc := NewCommentService(repo, 3)

	_, err := svc.DeleteComment(ctx, "bare", "x")
	assert.ErrorIs(t, err, ErrCommentThreadNotFound)
	assert.Nil(t, repo.threads["bare"].Comments)

	thread, err := svc.DeleteComment(ctx, "empty", "x")
	require.NoError(t, err)
	assert.NotNil(t, thread.Comments)
	assert.Empty(t, thread.Comments)
}

func TestCommentVersionConflict(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCommentRepo("m1")
	svc := NewCommentService(repo, 2)

	repo.conflicts = 2
	thread, err := svc.AddComment(ctx, "u1", "alice", &dto.AddCommentDTO{MovieID: "m1", Text: "hi"})
	require.NoError(t, err)
	assert.Len(t, thread.Comments, 1)

	repo.conflicts = 3
	_, err = svc.AddComment(ctx, "u1", "alice", &dto.AddCommentDTO{MovieID: "m1", Text: "again"})
	assert.ErrorIs(t, err, ErrConcurrentUpdate)

	got, err := svc.GetComments(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, got.Comments, 1)
}
