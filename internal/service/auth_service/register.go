package auth_service

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/prepgrid/prepgrid/internal/database"
	"github.com/prepgrid/prepgrid/internal/prep_errors"
	"github.com/prepgrid/prepgrid/internal/service"
)

func (a *AuthService) Register(
	ctx context.Context,
	registration UserRegistration,
) (userResponse UserResponse, err error) {
	// validate
	if err = service.ValidateInput(registration); err != nil {
		return
	}

	// hash the password
	passwordHash, err := generatePasswordHash(registration.Password)
	if err != nil {
		return
	}

	// create the user in the database and handle db specific errors
	dbUser, err := a.DB.CreateUser(
		ctx,
		database.CreateUserParams{
			UserName:     registration.UserName,
			PasswordHash: passwordHash,
		},
	)
	if err != nil {
		err = prep_errors.HandleDBErrors(
			err,
			errMsgs,
			"failed to insert user into db",
		)
		return
	}

	log.WithFields(log.Fields{
		"user_name": dbUser.UserName,
		"user_id":   dbUser.ID,
	}).Info("created user")

	userResponse = userToResponse(dbUser)
	return
}
