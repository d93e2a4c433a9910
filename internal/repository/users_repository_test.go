package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/internal/repository"
	"github.com/limbo/habitmon/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersRepoCreate(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	user := entity.User{Name: "ash", PasswordHash: "hash"}
	query := regexp.QuoteMeta(`INSERT INTO users (name, password_hash) VALUES ($1, $2);`)
	testCases := []struct {
		Desc    string
		Prepare func()
		Error   error
	}{
		{
			Desc: "created",
			Prepare: func() {
				conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			Desc: "name taken",
			Prepare: func() {
				conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			Error: errorvalues.ErrUserExists,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.Prepare()
			err := repo.Create(context.Background(), &user)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(user.Name, user.PasswordHash).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Create(context.Background(), &user))
	})
	t.Run("nil user", func(t *testing.T) {
		assert.Error(t, repo.Create(context.Background(), nil))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUsersRepoLookups(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	ctx := context.Background()
	user := entity.User{ID: uuid.New(), Name: "ash", PasswordHash: "hash"}
	byName := regexp.QuoteMeta(`SELECT id, name, password_hash FROM users WHERE name = $1;`)
	byID := regexp.QuoteMeta(`SELECT id, name, password_hash FROM users WHERE id = $1;`)
	columns := []string{"id", "name", "password_hash"}

	t.Run("by name", func(t *testing.T) {
		conn.ExpectQuery(byName).WithArgs(user.Name).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(user.ID, user.Name, user.PasswordHash))
		found, err := repo.FindByName(ctx, user.Name)
		require.NoError(t, err)
		assert.Equal(t, user, *found)

		conn.ExpectQuery(byName).WithArgs("gary").WillReturnError(pgx.ErrNoRows)
		_, err = repo.FindByName(ctx, "gary")
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)

		conn.ExpectQuery(byName).WithArgs(user.Name).WillReturnError(errors.New("db error"))
		_, err = repo.FindByName(ctx, user.Name)
		assert.Error(t, err)
	})
	t.Run("by id", func(t *testing.T) {
		conn.ExpectQuery(byID).WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(user.ID, user.Name, user.PasswordHash))
		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user, *found)

		missing := uuid.New()
		conn.ExpectQuery(byID).WithArgs(missing).WillReturnError(pgx.ErrNoRows)
		_, err = repo.FindByID(ctx, missing)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestUsersRepoUpdateDelete(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	ctx := context.Background()
	user := entity.User{ID: uuid.New(), Name: "ash", PasswordHash: "hash"}
	update := regexp.QuoteMeta(`UPDATE users SET name = $1, password_hash = $2 WHERE id = $3;`)
	del := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)

	t.Run("update", func(t *testing.T) {
		conn.ExpectExec(update).WithArgs(user.Name, user.PasswordHash, user.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &user))
		conn.ExpectExec(update).WithArgs(user.Name, user.PasswordHash, user.ID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &user), errorvalues.ErrUserNotFound)
	})
	t.Run("delete", func(t *testing.T) {
		conn.ExpectExec(del).WithArgs(user.ID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, user.ID))
		conn.ExpectExec(del).WithArgs(user.ID).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, user.ID), errorvalues.ErrUserNotFound)
		conn.ExpectExec(del).WithArgs(user.ID).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Delete(ctx, user.ID))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
