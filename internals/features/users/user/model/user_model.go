package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID        uuid.UUID  `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserName      string     `gorm:"column:user_name;size:50;not null;uniqueIndex:uq_users_name" json:"user_name"`
	UserFullName  string     `gorm:"column:user_full_name;size:100;not null" json:"user_full_name"`
	UserEmail     string     `gorm:"column:user_email;size:100" json:"user_email"`
	UserPassword  string     `gorm:"column:user_password;size:100;not null" json:"-"`
	UserRole      string     `gorm:"column:user_role;size:10;not null;default:'resident';index" json:"user_role"`
	UserFlatID    *uuid.UUID `gorm:"column:user_flat_id;type:uuid;index" json:"user_flat_id,omitempty"`
	UserIsActive  bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time  `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
