package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/habitmon/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ProfilesRepositoryI interface {
	// Stores new profile document
	Create(ctx context.Context, profile *entity.UserProfile) error
	// Loads profile by username. Document passes through entity.Normalize
	FindByName(ctx context.Context, username string) (*entity.UserProfile, error)
	// Inserts or replaces profile document
	Save(ctx context.Context, profile *entity.UserProfile) error
	// Inspects if profile with username exists
	Exists(ctx context.Context, username string) (bool, error)
}

type SharedHabitsRepositoryI interface {
	// Creates shared habit. Fails if open one already exists for the pair
	Create(ctx context.Context, sh *entity.SharedHabit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SharedHabit, error)
	// Lists shared habits where username is creator or invitee, newest first
	FindByParticipant(ctx context.Context, username string) ([]*entity.SharedHabit, error)
	// Lists pending or active shared habits between two users in any direction
	FindOpenBetween(ctx context.Context, first, second string) ([]*entity.SharedHabit, error)
	// Updates mutable fields if sh.Version matches stored version. On success sh.Version is incremented
	Update(ctx context.Context, sh *entity.SharedHabit) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	// Appended as sslmode parameter when set
	SSLMode string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
