package service

import (
	"Boomer/internal/api/dto"
	"Boomer/internal/model"
	"Boomer/internal/pkg/consts"
	"Boomer/internal/pkg/security"
	"Boomer/internal/pkg/util"
	"Boomer/internal/repository"
	"context"
	"errors"
	"strings"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Signup(ctx context.Context, req *dto.SignupDTO) (*dto.AuthDTO, error)
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, userID string) (*dto.UserDTO, error)
	GetUserByID(ctx context.Context, userID string) (*dto.UserDTO, error)
	UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserDTO) (*dto.UserDTO, error)
}

type userServiceImpl struct {
	userRepo  repository.UserRepo
	blacklist TokenBlacklist
}

func NewUserService(userRepo repository.UserRepo, blacklist TokenBlacklist) UserService {
	return &userServiceImpl{
		userRepo:  userRepo,
		blacklist: blacklist,
	}
}

// Signup 注册，user_id 为用户名加 8 位随机后缀
func (s *userServiceImpl) Signup(ctx context.Context, req *dto.SignupDTO) (*dto.AuthDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	exist, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrUserExist
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:     req.UserName + "_" + util.RandomHex(8),
		UserName:   req.UserName,
		Email:      email,
		Password:   hashed,
		ProfileImg: consts.DefaultProfileImage,
		Interests:  []string{},
		IsActive:   true,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if isDuplicateError(err) {
			return nil, ErrUserExist
		}
		return nil, err
	}

	return s.issue(user)
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.AuthDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err = security.CheckPasswordHash(req.Password, user.Password); err != nil {
		if errors.Is(err, security.ErrInvalidCredentials) {
			return nil, ErrPasswordIncorrect
		}
		return nil, err
	}
	if user.Suspended {
		return nil, ErrUserSuspended
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return s.issue(user)
}

// Logout 将 Token 签名加入黑名单直至其过期
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := security.ValidateToken(token)
	if err != nil {
		return ErrTokenInvalid
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrTokenInvalid
	}
	ttl := claims.Remaining()
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.Blacklist(ctx, signature, ttl)
}

func (s *userServiceImpl) GetUserInfo(ctx context.Context, userID string) (*dto.UserDTO, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserDTO(user)
}

// GetUserByID 公开资料，不返回邮箱
func (s *userServiceImpl) GetUserByID(ctx context.Context, userID string) (*dto.UserDTO, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	res, err := toUserDTO(user)
	if err != nil {
		return nil, err
	}
	res.Email = ""
	return res, nil
}

// UpdateUser 密码、邮箱与状态位不可在此修改
func (s *userServiceImpl) UpdateUser(ctx context.Context, userID string, req *dto.UpdateUserDTO) (*dto.UserDTO, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	columns := make([]string, 0, 6)
	set := func(col string, dst *string, src *string) {
		if src != nil {
			*dst = *src
			columns = append(columns, col)
		}
	}
	set("user_name", &user.UserName, req.UserName)
	set("profile_img", &user.ProfileImg, req.ProfileImg)
	set("bio", &user.Bio, req.Bio)
	set("country", &user.Country, req.Country)
	set("language", &user.Language, req.Language)
	if req.Interests != nil {
		user.Interests = req.Interests
		columns = append(columns, "interests")
	}

	if err = s.userRepo.UpdateUser(ctx, user, columns...); err != nil {
		return nil, err
	}
	return toUserDTO(user)
}

func (s *userServiceImpl) getUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userRepo.GetUserByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userServiceImpl) issue(user *model.User) (*dto.AuthDTO, error) {
	token, err := security.GenerateToken(user.UserID, user.UserName)
	if err != nil {
		return nil, err
	}
	res, err := toUserDTO(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthDTO{User: res, Token: token}, nil
}

func toUserDTO(user *model.User) (*dto.UserDTO, error) {
	res := &dto.UserDTO{}
	if err := copier.Copy(res, user); err != nil {
		return nil, err
	}
	if res.Interests == nil {
		res.Interests = []string{}
	}
	return res, nil
}
