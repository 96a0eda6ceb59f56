package repository

import (
	"Boomer/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUserID(ctx context.Context, userID string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User, columns ...string) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *UserRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.first(ctx, "email = ?", email)
}

func (s *UserRepoImpl) GetUserByUserID(ctx context.Context, userID string) (*model.User, error) {
	return s.first(ctx, "user_id = ?", userID)
}

func (s *UserRepoImpl) UpdateUser(ctx context.Context, user *model.User, columns ...string) error {
	if len(columns) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(user).
		Select(columns).
		Updates(user).Error
}

func (s *UserRepoImpl) first(ctx context.Context, query string, args ...any) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Where(query, args...).
		First(user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}
