package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/bytedance/sonic"
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

func sampleProfile() *entity.UserProfile {
	p := entity.NewProfile("ash")
	p.Habits = append(p.Habits, entity.Habit{ID: uuid.New(), Text: "run", TotalCompletions: 3})
	p.Inventory.PokeBalls = 4
	p.XP = 130
	p.AddSpecies(25, true)
	p.PartnerStreaks["misty"] = 2
	return p
}

func TestProfilesRepoCreate(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepo(conn)
	query := regexp.QuoteMeta(`INSERT INTO profiles (username, doc) VALUES ($1, $2);`)
	profile := sampleProfile()
	testCases := []struct {
		Desc  string
		DBErr error
		Error error
	}{
		{Desc: "created"},
		{Desc: "duplicate", DBErr: &pgconn.PgError{Code: "23505"}, Error: errorvalues.ErrProfileExists},
		{Desc: "unknown user", DBErr: &pgconn.PgError{Code: "23503"}, Error: errorvalues.ErrUserNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			exp := conn.ExpectExec(query).WithArgs(profile.Username, pgxmock.AnyArg())
			if tc.DBErr != nil {
				exp.WillReturnError(tc.DBErr)
			} else {
				exp.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}
			err := repo.Create(context.Background(), profile)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestProfilesRepoFindByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepo(conn)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT doc FROM profiles WHERE username = $1;`)
	profile := sampleProfile()
	doc, err := sonic.Marshal(profile)
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs("ash").WillReturnRows(pgxmock.NewRows([]string{"doc"}).AddRow(doc))
		found, err := repo.FindByName(ctx, "ash")
		require.NoError(t, err)
		assert.Equal(t, profile, found)
	})
	t.Run("legacy document is normalized", func(t *testing.T) {
		legacy := []byte(`{"username":"ash","xp":-5,"inventory":{"poke_balls":2},"caught_species":[7,1,7]}`)
		conn.ExpectQuery(query).WithArgs("ash").WillReturnRows(pgxmock.NewRows([]string{"doc"}).AddRow(legacy))
		found, err := repo.FindByName(ctx, "ash")
		require.NoError(t, err)
		assert.Equal(t, 0, found.XP)
		assert.Equal(t, 2, found.Inventory.PokeBalls)
		assert.Equal(t, []int{1, 7}, found.CaughtSpecies)
		assert.NotNil(t, found.PartnerStreaks)
	})
	t.Run("broken json", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs("ash").WillReturnRows(pgxmock.NewRows([]string{"doc"}).AddRow([]byte(`{"username":`)))
		_, err := repo.FindByName(ctx, "ash")
		assert.ErrorIs(t, err, errorvalues.ErrMalformedProfile)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs("gary").WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByName(ctx, "gary")
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestProfilesRepoSaveExists(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepo(conn)
	ctx := context.Background()
	save := regexp.QuoteMeta(`INSERT INTO profiles (username, doc) VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now();`)
	exists := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM profiles WHERE username = $1);`)
	profile := sampleProfile()

	t.Run("upsert", func(t *testing.T) {
		conn.ExpectExec(save).WithArgs("ash", pgxmock.AnyArg()).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Save(ctx, profile))
	})
	t.Run("upsert error", func(t *testing.T) {
		conn.ExpectExec(save).WithArgs("ash", pgxmock.AnyArg()).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Save(ctx, profile))
	})
	t.Run("exists", func(t *testing.T) {
		conn.ExpectQuery(exists).WithArgs("ash").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		ok, err := repo.Exists(ctx, "ash")
		require.NoError(t, err)
		assert.True(t, ok)

		conn.ExpectQuery(exists).WithArgs("gary").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		ok, err = repo.Exists(ctx, "gary")
		require.NoError(t, err)
		assert.False(t, ok)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}
