package repository

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/pkg/entity"
)

const sharedHabitColumns = `id, creator, invitee, text, status, creator_completed_today, invitee_completed_today,
	last_reward_date, last_reset_date, version, created_at, updated_at, accepted_at`

type SharedHabitsRepository struct {
	conn PgConnection
}

func NewSharedHabitsRepo(conn PgConnection) *SharedHabitsRepository {
	return &SharedHabitsRepository{
		conn: conn,
	}
}

func (shr *SharedHabitsRepository) Create(ctx context.Context, sh *entity.SharedHabit) error {
	if sh == nil {
		return errors.New("shared habit is nil")
	}
	_, err := shr.conn.Exec(ctx,
		`INSERT INTO shared_habits (`+sharedHabitColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`,
		sh.ID,
		sh.Creator,
		sh.Invitee,
		sh.Text,
		string(sh.Status),
		sh.CreatorCompletedToday,
		sh.InviteeCompletedToday,
		dateToTime(sh.LastRewardDate),
		dateToTime(sh.LastResetDate),
		sh.Version,
		sh.CreatedAt,
		sh.UpdatedAt,
		sh.AcceptedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation on open pair index
			case "23505":
				return errorvalues.ErrSharedHabitExists
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating shared habit error: " + err.Error())
	}
	return nil
}

func (shr *SharedHabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SharedHabit, error) {
	row := shr.conn.QueryRow(ctx, `SELECT `+sharedHabitColumns+` FROM shared_habits WHERE id = $1;`, id)
	sh, err := scanSharedHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSharedHabitNotFound
		}
		return nil, errors.New("getting shared habit error: " + err.Error())
	}
	return sh, nil
}

func (shr *SharedHabitsRepository) FindByParticipant(ctx context.Context, username string) ([]*entity.SharedHabit, error) {
	rows, err := shr.conn.Query(ctx,
		`SELECT `+sharedHabitColumns+` FROM shared_habits
		WHERE creator = $1 OR invitee = $1 ORDER BY created_at DESC;`,
		username,
	)
	if err != nil {
		return nil, errors.New("querying shared habits error: " + err.Error())
	}
	return collectSharedHabits(rows)
}

func (shr *SharedHabitsRepository) FindOpenBetween(ctx context.Context, first, second string) ([]*entity.SharedHabit, error) {
	rows, err := shr.conn.Query(ctx,
		`SELECT `+sharedHabitColumns+` FROM shared_habits
		WHERE ((creator = $1 AND invitee = $2) OR (creator = $2 AND invitee = $1))
		AND status IN ($3, $4);`,
		first,
		second,
		string(entity.StatusPendingApproval),
		string(entity.StatusActive),
	)
	if err != nil {
		return nil, errors.New("querying open shared habits error: " + err.Error())
	}
	return collectSharedHabits(rows)
}

func (shr *SharedHabitsRepository) Update(ctx context.Context, sh *entity.SharedHabit) error {
	ct, err := shr.conn.Exec(ctx,
		`UPDATE shared_habits SET status = $1, creator_completed_today = $2, invitee_completed_today = $3,
		last_reward_date = $4, last_reset_date = $5, updated_at = $6, accepted_at = $7, version = version + 1
		WHERE id = $8 AND version = $9;`,
		string(sh.Status),
		sh.CreatorCompletedToday,
		sh.InviteeCompletedToday,
		dateToTime(sh.LastRewardDate),
		dateToTime(sh.LastResetDate),
		sh.UpdatedAt,
		sh.AcceptedAt,
		sh.ID,
		sh.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrSharedHabitExists
		}
		return errors.New("updating shared habit error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		var exists bool
		row := shr.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM shared_habits WHERE id = $1);`, sh.ID)
		if err = row.Scan(&exists); err != nil {
			return errors.New("checking shared habit existence error: " + err.Error())
		}
		if !exists {
			return errorvalues.ErrSharedHabitNotFound
		}
		return errorvalues.ErrStaleSharedHabit
	}
	sh.Version++
	return nil
}

func collectSharedHabits(rows pgx.Rows) ([]*entity.SharedHabit, error) {
	defer rows.Close()
	out := make([]*entity.SharedHabit, 0)
	for rows.Next() {
		sh, err := scanSharedHabit(rows)
		if err != nil {
			return nil, errors.New("scanning shared habit error: " + err.Error())
		}
		out = append(out, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("reading shared habits error: " + err.Error())
	}
	return out, nil
}

func scanSharedHabit(row pgx.Row) (*entity.SharedHabit, error) {
	var (
		sh                    entity.SharedHabit
		status                string
		lastReward, lastReset *time.Time
	)
	err := row.Scan(
		&sh.ID,
		&sh.Creator,
		&sh.Invitee,
		&sh.Text,
		&status,
		&sh.CreatorCompletedToday,
		&sh.InviteeCompletedToday,
		&lastReward,
		&lastReset,
		&sh.Version,
		&sh.CreatedAt,
		&sh.UpdatedAt,
		&sh.AcceptedAt,
	)
	if err != nil {
		return nil, err
	}
	sh.Status = entity.SharedHabitStatus(status)
	sh.LastRewardDate = timeToDate(lastReward)
	sh.LastResetDate = timeToDate(lastReset)
	return &sh, nil
}

// DATE columns travel as time.Time at UTC midnight
func dateToTime(d *civil.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.In(time.UTC)
	return &t
}

func timeToDate(t *time.Time) *civil.Date {
	if t == nil {
		return nil
	}
	d := civil.DateOf(*t)
	return &d
}
