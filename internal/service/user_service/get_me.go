package user_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service"
	"github.com/prepgrid/prepgrid/internal/service/auth_service"
)

// GetMe resolves the session claims into the current user's profile.
func (u *UserService) GetMe(ctx context.Context) (auth_service.UserResponse, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return auth_service.UserResponse{}, err
	}

	dbUser, err := u.DB.GetUserById(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth_service.UserResponse{}, fmt.Errorf(
				"%w, session user no longer exist",
				prep_errors.ErrUnAuthorized,
			)
		}
		log.Errorf("failed to get user by id, %v", err)
		return auth_service.UserResponse{}, errors.Join(prep_errors.ErrInternal, err)
	}

	return auth_service.UserResponse{
		ID:        dbUser.ID,
		UserName:  dbUser.UserName,
		CreatedAt: dbUser.CreatedAt,
	}, nil
}
