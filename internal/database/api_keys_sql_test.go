package database

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func keyRows(id uuid.UUID, userID int32, provider string, model *string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "provider", "api_key", "model", "created_at"}).
		AddRow(id, userID, provider, "sk-secret", model, time.Now())
}

func TestCreateApiKey(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	q := New(mock)

	id := uuid.New()
	model := "gpt-4o"
	mock.ExpectQuery(regexp.QuoteMeta(createApiKey)).
		WithArgs(id, int32(1), "openai", "sk-secret", &model).
		WillReturnRows(keyRows(id, 1, "openai", &model))

	key, err := q.CreateApiKey(context.Background(), CreateApiKeyParams{
		ID:       id,
		UserID:   1,
		Provider: "openai",
		ApiKey:   "sk-secret",
		Model:    &model,
	})
	require.NoError(t, err)
	require.Equal(t, id, key.ID)
	require.Equal(t, "openai", key.Provider)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetApiKeyByUserAndProvider(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	q := New(mock)
	ctx := context.Background()

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(getApiKeyByUserAndProvider)).
		WithArgs(int32(1), "gemini").
		WillReturnRows(keyRows(id, 1, "gemini", nil))
	key, err := q.GetApiKeyByUserAndProvider(ctx, GetApiKeyByUserAndProviderParams{
		UserID:   1,
		Provider: "gemini",
	})
	require.NoError(t, err)
	require.Equal(t, id, key.ID)
	require.Nil(t, key.Model)

	mock.ExpectQuery(regexp.QuoteMeta(getApiKeyByUserAndProvider)).
		WithArgs(int32(1), "anthropic").
		WillReturnError(pgx.ErrNoRows)
	_, err = q.GetApiKeyByUserAndProvider(ctx, GetApiKeyByUserAndProviderParams{
		UserID:   1,
		Provider: "anthropic",
	})
	require.ErrorIs(t, err, pgx.ErrNoRows)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteApiKey(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	q := New(mock)
	ctx := context.Background()

	id := uuid.New()

	// owned key deleted
	mock.ExpectExec(regexp.QuoteMeta(deleteApiKey)).
		WithArgs(id, int32(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	rows, err := q.DeleteApiKey(ctx, DeleteApiKeyParams{ID: id, UserID: 1})
	require.NoError(t, err)
	require.EqualValues(t, 1, rows)

	// someone else's key id deletes nothing
	mock.ExpectExec(regexp.QuoteMeta(deleteApiKey)).
		WithArgs(id, int32(2)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	rows, err = q.DeleteApiKey(ctx, DeleteApiKeyParams{ID: id, UserID: 2})
	require.NoError(t, err)
	require.EqualValues(t, 0, rows)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApiKey(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	q := New(mock)

	id := uuid.New()
	model := "claude-3-5-sonnet-20241022"
	mock.ExpectQuery(regexp.QuoteMeta(updateApiKey)).
		WithArgs(id, int32(1), "sk-rotated", &model).
		WillReturnRows(keyRows(id, 1, "anthropic", &model))

	key, err := q.UpdateApiKey(context.Background(), UpdateApiKeyParams{
		ID:     id,
		UserID: 1,
		ApiKey: "sk-rotated",
		Model:  &model,
	})
	require.NoError(t, err)
	require.Equal(t, "anthropic", key.Provider)

	require.NoError(t, mock.ExpectationsWereMet())
}
