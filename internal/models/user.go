package models

import (
	"github.com/golang-jwt/jwt/v4"
)

type User struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Username    string `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Email       string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Name        string `json:"name" gorm:"size:120;not null"`
	Description string `json:"description,omitempty" gorm:"size:255"`
	Password    string `json:"-" gorm:"size:128;not null"` // bcrypt hash, never serialized
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,min=1,max=80"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description,omitempty" validate:"omitempty,max=255"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserSummary is the per-user entry returned by the user directory
type UserSummary struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FollowersCount int64  `json:"followers_count"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}
