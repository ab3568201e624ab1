package database

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           int32
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}

type LlmApiKey struct {
	ID        uuid.UUID
	UserID    int32
	Provider  string
	ApiKey    string
	Model     *string
	CreatedAt time.Time
}
