package api

import (
	"github.com/prepgrid/prepgrid/internal/service/auth_service"
	"github.com/prepgrid/prepgrid/internal/service/challenge_service"
	"github.com/prepgrid/prepgrid/internal/service/key_service"
	"github.com/prepgrid/prepgrid/internal/service/user_service"
)

type Api struct {
	AuthServiceConfig      *auth_service.AuthService
	UserServiceConfig      *user_service.UserService
	KeyServiceConfig       *key_service.KeyService
	ChallengeServiceConfig *challenge_service.ChallengeService
}
