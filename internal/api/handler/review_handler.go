package handler

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/response"
	"Boomer/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

func (s *ReviewHandler) AddReview(c *gin.Context) {
	userID, userName := currentUser(c)

	var req dto.ReviewDTO
	if !bind(c, &req) {
		return
	}

	review, err := s.reviewSvc.AddOrUpdateReview(c.Request.Context(), userID, userName, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, review)
}

func (s *ReviewHandler) UpdateReview(c *gin.Context) {
	userID, userName := currentUser(c)

	var req dto.ReviewDTO
	if !bind(c, &req) {
		return
	}

	review, err := s.reviewSvc.UpdateReview(c.Request.Context(), userID, userName, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, review)
}

func (s *ReviewHandler) GetReviews(c *gin.Context) {
	movieID, ok := requiredQuery(c, "movie_id")
	if !ok {
		return
	}

	thread, err := s.reviewSvc.GetReviews(c.Request.Context(), movieID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, thread)
}

func (s *ReviewHandler) DeleteReview(c *gin.Context) {
	userID, _ := currentUser(c)

	var req dto.DeleteReviewDTO
	if !bind(c, &req) {
		return
	}

	thread, err := s.reviewSvc.DeleteReview(c.Request.Context(), req.MovieID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, thread)
}
