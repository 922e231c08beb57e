package dto

import (
	"time"

	"societyhub_backend/internals/features/users/user/model"
)

type UserDTO struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FlatID    *string   `json:"flat_id,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	IsActive *bool   `json:"is_active"`
}

func ToUserDTO(u model.UserModel) UserDTO {
	var flatID *string
	if u.UserFlatID != nil {
		s := u.UserFlatID.String()
		flatID = &s
	}
	return UserDTO{
		UserID:    u.UserID.String(),
		UserName:  u.UserName,
		FullName:  u.UserFullName,
		Email:     u.UserEmail,
		Role:      u.UserRole,
		FlatID:    flatID,
		IsActive:  u.UserIsActive,
		CreatedAt: u.UserCreatedAt,
	}
}
