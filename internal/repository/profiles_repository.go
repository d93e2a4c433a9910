package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/pkg/entity"
)

// ProfilesRepository keeps whole profile as a single JSONB document per user
type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepo(conn PgConnection) *ProfilesRepository {
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	doc, err := sonic.ConfigDefault.MarshalToString(profile)
	if err != nil {
		return errors.New("marshalling profile error: " + err.Error())
	}
	_, err = pr.conn.Exec(ctx, `INSERT INTO profiles (username, doc) VALUES ($1, $2);`, profile.Username, doc)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrProfileExists
			// FK violation, no such user
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating profile error: " + err.Error())
	}
	return nil
}

func (pr *ProfilesRepository) FindByName(ctx context.Context, username string) (*entity.UserProfile, error) {
	var doc []byte
	row := pr.conn.QueryRow(ctx, `SELECT doc FROM profiles WHERE username = $1;`, username)
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("searching profile error: " + err.Error())
	}
	raw := make(map[string]any)
	if err := sonic.ConfigDefault.Unmarshal(doc, &raw); err != nil {
		return nil, errors.Join(errorvalues.ErrMalformedProfile, err)
	}
	return entity.Normalize(raw)
}

func (pr *ProfilesRepository) Save(ctx context.Context, profile *entity.UserProfile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	doc, err := sonic.ConfigDefault.MarshalToString(profile)
	if err != nil {
		return errors.New("marshalling profile error: " + err.Error())
	}
	_, err = pr.conn.Exec(ctx,
		`INSERT INTO profiles (username, doc) VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now();`,
		profile.Username,
		doc,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving profile error: " + err.Error())
	}
	return nil
}

func (pr *ProfilesRepository) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	row := pr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM profiles WHERE username = $1);`, username)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("checking profile existence error: " + err.Error())
	}
	return exists, nil
}
