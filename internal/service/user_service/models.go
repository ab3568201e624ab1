package user_service

import "github.com/prepgrid/prepgrid/internal/database"

type UserService struct {
	DB *database.Queries
}
