package auth_service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service"
)

const sessionDuration = 24 * time.Hour

func (a *AuthService) Login(
	ctx context.Context,
	request UserLoginRequest,
) (userResponse UserResponse, token string, expiry time.Time, err error) {
	// validate
	if err = service.ValidateInput(request); err != nil {
		return
	}

	// fetch user from db
	dbUser, dbErr := a.DB.GetUserByUserName(ctx, request.UserName)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			err = fmt.Errorf(
				"%w, no user exist with that username",
				prep_errors.ErrInvalidUserCredentials,
			)
			return
		}
		log.Errorf("failed to get user by username, %v", dbErr)
		err = errors.Join(prep_errors.ErrInternal, dbErr)
		return
	}

	// verify password
	if err = comparePasswordHash(dbUser.PasswordHash, request.Password); err != nil {
		return
	}

	// mint a session token
	token, expiry, err = mintSessionToken(dbUser.ID, dbUser.UserName)
	if err != nil {
		return
	}

	userResponse = userToResponse(dbUser)
	return
}

func mintSessionToken(userID int32, userName string) (string, time.Time, error) {
	secret := os.Getenv(service.KeySecretKey)
	if secret == "" {
		err := fmt.Errorf(
			"%w, %s not found in environment",
			prep_errors.ErrInternal,
			service.KeySecretKey,
		)
		log.Error(err)
		return "", time.Time{}, err
	}

	expiry := time.Now().Add(sessionDuration)
	claims := service.UserCredentialClaims{
		UserID:   userID,
		UserName: userName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		log.Errorf("unable to sign session token, %v", err)
		return "", time.Time{}, errors.Join(prep_errors.ErrInternal, err)
	}
	return token, expiry, nil
}
