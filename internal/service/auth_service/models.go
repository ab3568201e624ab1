package auth_service

import (
	"time"

	"github.com/prepgrid/prepgrid/internal/database"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
)

var (
	msgUniqueKey = map[string]string{
		"uq_users_user_name": "user with that username already exist",
	}

	errMsgs = map[string]map[string]string{
		prep_errors.CodeUniqueConstraint: msgUniqueKey,
	}
)

type AuthService struct {
	DB *database.Queries
}

type UserRegistration struct {
	UserName string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=7,max=72"`
}

type UserLoginRequest struct {
	UserName string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID        int32     `json:"id"`
	UserName  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func userToResponse(user database.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		UserName:  user.UserName,
		CreatedAt: user.CreatedAt,
	}
}
