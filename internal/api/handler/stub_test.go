package handler

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/mongo"
	"Boomer/internal/service"
	"context"
)

type stubCommentService struct {
	thread   *mongo.CommentThread
	err      error
	reaction struct {
		movieID   string
		commentID string
		kind      service.ReactionKind
		positive  bool
	}
}

func (s *stubCommentService) AddComment(_ context.Context, _, _ string, req *dto.AddCommentDTO) (*mongo.CommentThread, error) {
	return s.thread, s.err
}

func (s *stubCommentService) GetComments(_ context.Context, movieID string) (*mongo.CommentThread, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.thread == nil {
		return mongo.NewCommentThread(movieID), nil
	}
	return s.thread, nil
}

func (s *stubCommentService) DeleteComment(_ context.Context, _, _ string) (*mongo.CommentThread, error) {
	return s.thread, s.err
}

func (s *stubCommentService) ReplyComment(_ context.Context, _, _ string, _ *dto.ReplyCommentDTO) (*mongo.CommentThread, error) {
	return s.thread, s.err
}

func (s *stubCommentService) ReactComment(_ context.Context, movieID, commentID string, kind service.ReactionKind, positive bool) (*mongo.CommentThread, error) {
	s.reaction.movieID = movieID
	s.reaction.commentID = commentID
	s.reaction.kind = kind
	s.reaction.positive = positive
	return s.thread, s.err
}

type reviewCall struct {
	method   string
	userID   string
	userName string
	movieID  string
}

type stubReviewService struct {
	calls  []reviewCall
	thread *mongo.ReviewThread
	err    error
}

func (s *stubReviewService) AddOrUpdateReview(_ context.Context, userID, userName string, req *dto.ReviewDTO) (*mongo.Review, error) {
	s.calls = append(s.calls, reviewCall{method: "add", userID: userID, userName: userName, movieID: req.MovieID})
	if s.err != nil {
		return nil, s.err
	}
	return &mongo.Review{UserID: userID, UserName: userName}, nil
}

func (s *stubReviewService) UpdateReview(_ context.Context, userID, userName string, req *dto.ReviewDTO) (*mongo.Review, error) {
	s.calls = append(s.calls, reviewCall{method: "update", userID: userID, userName: userName, movieID: req.MovieID})
	if s.err != nil {
		return nil, s.err
	}
	return &mongo.Review{UserID: userID, UserName: userName}, nil
}

func (s *stubReviewService) DeleteReview(_ context.Context, movieID, userID string) (*mongo.ReviewThread, error) {
	s.calls = append(s.calls, reviewCall{method: "delete", userID: userID, movieID: movieID})
	return s.thread, s.err
}

func (s *stubReviewService) GetReviews(_ context.Context, movieID string) (*mongo.ReviewThread, error) {
	s.calls = append(s.calls, reviewCall{method: "get", movieID: movieID})
	if s.err != nil {
		return nil, s.err
	}
	if s.thread == nil {
		return mongo.NewReviewThread(movieID), nil
	}
	return s.thread, nil
}
