package service

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/mongo"
	"Boomer/internal/pkg/util"
	"context"
	"slices"
	"time"
)

type ReactionKind int

const (
	ReactionLike ReactionKind = iota
	ReactionDislike
)

type CommentService interface {
	AddComment(ctx context.Context, userID, userName string, req *dto.AddCommentDTO) (*mongo.CommentThread, error)
	GetComments(ctx context.Context, movieID string) (*mongo.CommentThread, error)
	DeleteComment(ctx context.Context, movieID, commentID string) (*mongo.CommentThread, error)
	ReplyComment(ctx context.Context, userID, userName string, req *dto.ReplyCommentDTO) (*mongo.CommentThread, error)
	ReactComment(ctx context.Context, movieID, commentID string, kind ReactionKind, positive bool) (*mongo.CommentThread, error)
}

type commentServiceImpl struct {
	commentRepo mongo.CommentThreadRepo
	maxRetries  int
	now         func() time.Time
}

func NewCommentService(commentRepo mongo.CommentThreadRepo, maxRetries int) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		maxRetries:  maxRetries,
		now:         time.Now,
	}
}

// AddComment 评论区不存在时先创建，再追加评论
func (s *commentServiceImpl) AddComment(ctx context.Context, userID, userName string, req *dto.AddCommentDTO) (*mongo.CommentThread, error) {
	if req.UserName != "" {
		userName = req.UserName
	}
	commentID := util.NewID()

	return s.mutate(ctx, req.MovieID, true, func(comments []mongo.Comment) ([]mongo.Comment, error) {
		return append(comments, mongo.Comment{
			CommentID: commentID,
			UserID:    userID,
			UserName:  userName,
			Text:      req.Text,
			Image:     req.Image,
			Gif:       req.Gif,
			Video:     req.Video,
			URL:       req.URL,
			Likes:     0,
			Dislikes:  0,
			Replies:   []mongo.Reply{},
			CreatedAt: s.now(),
		}), nil
	})
}

// GetComments 评论区不存在时返回空评论区
func (s *commentServiceImpl) GetComments(ctx context.Context, movieID string) (*mongo.CommentThread, error) {
	thread, err := s.commentRepo.GetByMovieID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if thread == nil {
		return mongo.NewCommentThread(movieID), nil
	}
	return thread, nil
}

// DeleteComment 过滤掉目标评论，没有匹配项时原样返回；文档缺少 comments 字段视为评论区不存在
func (s *commentServiceImpl) DeleteComment(ctx context.Context, movieID, commentID string) (*mongo.CommentThread, error) {
	return s.mutate(ctx, movieID, false, func(comments []mongo.Comment) ([]mongo.Comment, error) {
		if comments == nil {
			return nil, ErrCommentThreadNotFound
		}
		return slices.DeleteFunc(comments, func(c mongo.Comment) bool {
			return c.CommentID == commentID
		}), nil
	})
}

func (s *commentServiceImpl) ReplyComment(ctx context.Context, userID, userName string, req *dto.ReplyCommentDTO) (*mongo.CommentThread, error) {
	if req.UserName != "" {
		userName = req.UserName
	}
	reply := mongo.Reply{UserID: userID, UserName: userName, Comment: req.Text}

	return s.mutate(ctx, req.MovieID, false, func(comments []mongo.Comment) ([]mongo.Comment, error) {
		idx := indexOfComment(comments, req.CommentID)
		if idx < 0 {
			return nil, ErrCommentNotFound
		}
		comments[idx].Replies = append(slices.Clone(comments[idx].Replies), reply)
		return comments, nil
	})
}

// ReactComment positive 为 true 时计数 +1，否则 -1
func (s *commentServiceImpl) ReactComment(ctx context.Context, movieID, commentID string, kind ReactionKind, positive bool) (*mongo.CommentThread, error) {
	delta := -1
	if positive {
		delta = 1
	}

	return s.mutate(ctx, movieID, false, func(comments []mongo.Comment) ([]mongo.Comment, error) {
		idx := indexOfComment(comments, commentID)
		if idx < 0 {
			return nil, ErrCommentNotFound
		}
		switch kind {
		case ReactionLike:
			comments[idx].Likes += delta
		case ReactionDislike:
			comments[idx].Dislikes += delta
		default:
			return nil, ErrParamInvalid
		}
		return comments, nil
	})
}

// mutate 读取评论区、应用修改并以版本号整体写回
func (s *commentServiceImpl) mutate(ctx context.Context, movieID string, createIfMissing bool, apply func(comments []mongo.Comment) ([]mongo.Comment, error)) (*mongo.CommentThread, error) {
	var updated *mongo.CommentThread
	err := retryOnConflict(ctx, s.maxRetries, func() error {
		thread, err := s.commentRepo.GetByMovieID(ctx, movieID)
		if err != nil {
			return err
		}
		if thread == nil {
			if !createIfMissing {
				return ErrCommentThreadNotFound
			}
			if err = s.commentRepo.Create(ctx, mongo.NewCommentThread(movieID)); err != nil {
				return err
			}
			if thread, err = s.commentRepo.GetByMovieID(ctx, movieID); err != nil {
				return err
			}
			if thread == nil {
				return ErrCommentThreadNotFound
			}
		}

		comments, err := apply(slices.Clone(thread.Comments))
		if err != nil {
			return err
		}

		updated, err = s.commentRepo.ReplaceComments(ctx, movieID, thread.Version, comments)
		return err
	})
	return updated, err
}

func indexOfComment(comments []mongo.Comment, commentID string) int {
	return slices.IndexFunc(comments, func(c mongo.Comment) bool {
		return c.CommentID == commentID
	})
}
