package dto

import "time"

type SignupDTO struct {
	UserName string `json:"user_name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=64"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserDTO 只允许修改资料字段
type UpdateUserDTO struct {
	UserName   *string  `json:"user_name,omitempty" validate:"omitempty,min=2,max=50"`
	ProfileImg *string  `json:"profile_img,omitempty" validate:"omitempty,max=512"`
	Bio        *string  `json:"bio,omitempty" validate:"omitempty,max=255"`
	Country    *string  `json:"country,omitempty" validate:"omitempty,max=64"`
	Language   *string  `json:"language,omitempty" validate:"omitempty,max=64"`
	Interests  []string `json:"interests,omitempty"`
}

// UserDTO 返回给调用方的用户信息，不含密码
type UserDTO struct {
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	Email      string    `json:"email"`
	ProfileImg string    `json:"profile_img"`
	Bio        string    `json:"bio"`
	Country    string    `json:"country"`
	Language   string    `json:"language"`
	Interests  []string  `json:"interests"`
	IsActive   bool      `json:"isActive"`
	Suspended  bool      `json:"suspended"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthDTO struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"token"`
}
