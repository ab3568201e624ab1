package database

import (
	"context"

	"github.com/google/uuid"
)

const createApiKey = `
INSERT INTO llm_api_keys (id, user_id, provider, api_key, model)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, provider, api_key, model, created_at`

type CreateApiKeyParams struct {
	ID       uuid.UUID
	UserID   int32
	Provider string
	ApiKey   string
	Model    *string
}

func (q *Queries) CreateApiKey(ctx context.Context, arg CreateApiKeyParams) (LlmApiKey, error) {
	row := q.db.QueryRow(
		ctx,
		createApiKey,
		arg.ID,
		arg.UserID,
		arg.Provider,
		arg.ApiKey,
		arg.Model,
	)
	var i LlmApiKey
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Provider,
		&i.ApiKey,
		&i.Model,
		&i.CreatedAt,
	)
	return i, err
}

const getApiKeysByUserId = `
SELECT id, user_id, provider, api_key, model, created_at
FROM llm_api_keys
WHERE user_id = $1
ORDER BY created_at`

func (q *Queries) GetApiKeysByUserId(ctx context.Context, userID int32) ([]LlmApiKey, error) {
	rows, err := q.db.Query(ctx, getApiKeysByUserId, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LlmApiKey
	for rows.Next() {
		var i LlmApiKey
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Provider,
			&i.ApiKey,
			&i.Model,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getApiKeyById = `
SELECT id, user_id, provider, api_key, model, created_at
FROM llm_api_keys
WHERE id = $1`

func (q *Queries) GetApiKeyById(ctx context.Context, id uuid.UUID) (LlmApiKey, error) {
	row := q.db.QueryRow(ctx, getApiKeyById, id)
	var i LlmApiKey
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Provider,
		&i.ApiKey,
		&i.Model,
		&i.CreatedAt,
	)
	return i, err
}

const getApiKeyByUserAndProvider = `
SELECT id, user_id, provider, api_key, model, created_at
FROM llm_api_keys
WHERE user_id = $1 AND provider = $2
ORDER BY created_at DESC
LIMIT 1`

type GetApiKeyByUserAndProviderParams struct {
	UserID   int32
	Provider string
}

func (q *Queries) GetApiKeyByUserAndProvider(
	ctx context.Context,
	arg GetApiKeyByUserAndProviderParams,
) (LlmApiKey, error) {
	row := q.db.QueryRow(ctx, getApiKeyByUserAndProvider, arg.UserID, arg.Provider)
	var i LlmApiKey
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Provider,
		&i.ApiKey,
		&i.Model,
		&i.CreatedAt,
	)
	return i, err
}

const updateApiKey = `
UPDATE llm_api_keys
SET api_key = $3, model = $4
WHERE id = $1 AND user_id = $2
RETURNING id, user_id, provider, api_key, model, created_at`

type UpdateApiKeyParams struct {
	ID     uuid.UUID
	UserID int32
	ApiKey string
	Model  *string
}

func (q *Queries) UpdateApiKey(ctx context.Context, arg UpdateApiKeyParams) (LlmApiKey, error) {
	row := q.db.QueryRow(
		ctx,
		updateApiKey,
		arg.ID,
		arg.UserID,
		arg.ApiKey,
		arg.Model,
	)
	var i LlmApiKey
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Provider,
		&i.ApiKey,
		&i.Model,
		&i.CreatedAt,
	)
	return i, err
}

const deleteApiKey = `
DELETE FROM llm_api_keys
WHERE id = $1 AND user_id = $2`

type DeleteApiKeyParams struct {
	ID     uuid.UUID
	UserID int32
}

func (q *Queries) DeleteApiKey(ctx context.Context, arg DeleteApiKeyParams) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteApiKey, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
