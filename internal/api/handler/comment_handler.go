package handler

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/response"
	"Boomer/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc}
}

func (s *CommentHandler) AddComment(c *gin.Context) {
	userID, userName := currentUser(c)

	var req dto.AddCommentDTO
	if !bind(c, &req) {
		return
	}

	thread, err := s.commentSvc.AddComment(c.Request.Context(), userID, userName, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, thread)
}

func (s *CommentHandler) GetComments(c *gin.Context) {
	movieID, ok := requiredQuery(c, "movie_id")
	if !ok {
		return
	}

	thread, err := s.commentSvc.GetComments(c.Request.Context(), movieID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, thread)
}

func (s *CommentHandler) LikeComment(c *gin.Context) {
	var req dto.LikeCommentDTO
	if !bind(c, &req) {
		return
	}

	thread, err := s.commentSvc.ReactComment(c.Request.Context(), req.MovieID, req.CommentID, service.ReactionLike, *req.Likes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, thread)
}

func (s *CommentHandler) DislikeComment(c *gin.Context) {
	var req dto.DislikeCommentDTO
	if !bind(c, &req) {
		return
	}

	thread, err := s.commentSvc.ReactComment(c.Request.Context(), req.MovieID, req.CommentID, service.ReactionDislike, *req.Dislikes)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, thread)
}

func (s *CommentHandler) ReplyComment(c *gin.Context) {
	userID, userName := currentUser(c)

	var req dto.ReplyCommentDTO
	if !bind(c, &req) {
		return
	}

	thread, err := s.commentSvc.ReplyComment(c.Request.Context(), userID, userName, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, thread)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	var req dto.CommentTargetDTO
	if !bind(c, &req) {
		return
	}

	thread, err := s.commentSvc.DeleteComment(c.Request.Context(), req.MovieID, req.CommentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, thread)
}
