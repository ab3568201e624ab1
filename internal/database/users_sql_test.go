package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	return mock
}

func userRows(id int32, userName string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_name", "password_hash", "created_at"}).
		AddRow(id, userName, "hash", time.Now())
}

func TestCreateUser(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	q := New(mock)
	ctx := context.Background()

	// OK
	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs("alice", "hash").
		WillReturnRows(userRows(1, "alice"))
	user, err := q.CreateUser(ctx, CreateUserParams{UserName: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	require.Equal(t, int32(1), user.ID)
	require.Equal(t, "alice", user.UserName)

	// duplicate username surfaces the raw pg error for the service layer
	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs("alice", "hash").
		WillReturnError(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_users_user_name",
		})
	_, err = q.CreateUser(ctx, CreateUserParams{UserName: "alice", PasswordHash: "hash"})
	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr))
	require.Equal(t, "23505", pgErr.Code)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUserName(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	q := New(mock)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(getUserByUserName)).
		WithArgs("alice").
		WillReturnRows(userRows(1, "alice"))
	user, err := q.GetUserByUserName(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", user.UserName)

	mock.ExpectQuery(regexp.QuoteMeta(getUserByUserName)).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)
	_, err = q.GetUserByUserName(ctx, "nobody")
	require.ErrorIs(t, err, pgx.ErrNoRows)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserById(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	q := New(mock)

	mock.ExpectQuery(regexp.QuoteMeta(getUserById)).
		WithArgs(int32(7)).
		WillReturnRows(userRows(7, "bob"))
	user, err := q.GetUserById(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int32(7), user.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}
