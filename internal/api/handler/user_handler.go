package handler

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/response"
	"Boomer/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupDTO
	if !bind(c, &req) {
		return
	}

	auth, err := s.userSvc.Signup(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, auth)
}

func (s *UserHandler) Login(c *gin.Context) {
	var req dto.LoginDTO
	if !bind(c, &req) {
		return
	}

	auth, err := s.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, auth)
}

func (s *UserHandler) Logout(c *gin.Context) {
	err := s.userSvc.Logout(c.Request.Context(), c.GetString(consts.TokenKey))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetUserInfo(c *gin.Context) {
	userID, _ := currentUser(c)
	user, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) GetUserByID(c *gin.Context) {
	userID, ok := requiredQuery(c, "user_id")
	if !ok {
		return
	}

	user, err := s.userSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) UpdateUser(c *gin.Context) {
	userID, _ := currentUser(c)

	var req dto.UpdateUserDTO
	if !bind(c, &req) {
		return
	}

	user, err := s.userSvc.UpdateUser(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}
