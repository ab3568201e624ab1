package database

import (
	"context"
)

const createUser = `
INSERT INTO users (user_name, password_hash)
VALUES ($1, $2)
RETURNING id, user_name, password_hash, created_at`

type CreateUserParams struct {
	UserName     string
	PasswordHash string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser, arg.UserName, arg.PasswordHash)
	var i User
	err := row.Scan(
		&i.ID,
		&i.UserName,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}

const getUserByUserName = `
SELECT id, user_name, password_hash, created_at
FROM users
WHERE user_name = $1`

func (q *Queries) GetUserByUserName(ctx context.Context, userName string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByUserName, userName)
	var i User
	err := row.Scan(
		&i.ID,
		&i.UserName,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}

const getUserById = `
SELECT id, user_name, password_hash, created_at
FROM users
WHERE id = $1`

func (q *Queries) GetUserById(ctx context.Context, id int32) (User, error) {
	row := q.db.QueryRow(ctx, getUserById, id)
	var i User
	err := row.Scan(
		&i.ID,
		&i.UserName,
		&i.PasswordHash,
		&i.CreatedAt,
	)
	return i, err
}
