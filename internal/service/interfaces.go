package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/habitmon/internal/rewards"
	"github.com/limbo/habitmon/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type AddHabitRequest struct {
	Text string `validate:"required,max=200"`
}

type AddProgressionHabitRequest struct {
	ParentID uuid.UUID `validate:"required"`
	Text     string    `validate:"required,max=200"`
}

type SetAvatarRequest struct {
	Avatar string `validate:"required,max=64"`
}

type InviteRequest struct {
	Invitee string `validate:"required,alphanum_underscore,min=3,max=100"`
	Text    string `validate:"required,max=200"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database along with empty profile. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID. Missing profile is created
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

// ProfileServiceI operates on user's profile. Every call first rolls profile over to today
type ProfileServiceI interface {
	Get(ctx context.Context, username string, today civil.Date) (*entity.UserProfile, error)
	Level(ctx context.Context, username string, today civil.Date) (rewards.LevelInfo, error)
	AddHabit(ctx context.Context, username string, today civil.Date, req *AddHabitRequest) (*entity.Habit, error)
	AddProgressionHabit(ctx context.Context, username string, today civil.Date, req *AddProgressionHabitRequest) (*entity.ProgressionHabit, error)
	// Removes habit with all of its progression habits
	RemoveHabit(ctx context.Context, username string, today civil.Date, habitID uuid.UUID) error
	CompleteHabit(ctx context.Context, username string, today civil.Date, habitID uuid.UUID) (*rewards.CompletionResult, error)
	// Nil habitID clears the boost
	SetBoostedHabit(ctx context.Context, username string, today civil.Date, habitID *uuid.UUID) error
	SetAvatar(ctx context.Context, username string, today civil.Date, req *SetAvatarRequest) error
	Capture(ctx context.Context, username string, today civil.Date, tier string) (rewards.Item, error)
	ClaimStreakRewards(ctx context.Context, username string, today civil.Date) (rewards.StreakReward, error)
	GrantSharedReward(ctx context.Context, username, partner string, today civil.Date) error
	// Pushes cached profile to database
	Sync(ctx context.Context, username string) error
	// Replaces cached profile with the one stored in database
	Pull(ctx context.Context, username string) (*entity.UserProfile, error)
	// Creates empty profile if user has none
	Ensure(ctx context.Context, username string) error
}

type SharedHabitsServiceI interface {
	Invite(ctx context.Context, creator string, req *InviteRequest) (*entity.SharedHabit, error)
	Respond(ctx context.Context, actor string, id uuid.UUID, accept bool) (*entity.SharedHabit, error)
	Cancel(ctx context.Context, actor string, id uuid.UUID) (*entity.SharedHabit, error)
	Archive(ctx context.Context, actor string, id uuid.UUID) (*entity.SharedHabit, error)
	// Marks actor's part done. rewarded is true when this completion granted the joint reward
	Complete(ctx context.Context, actor string, id uuid.UUID, today civil.Date) (sh *entity.SharedHabit, rewarded bool, err error)
	// Lists user's shared habits, resetting daily state of the ones not refreshed today
	List(ctx context.Context, username string, today civil.Date) ([]*entity.SharedHabit, error)
}

// ProfileCacheI is the working copy storage of profiles
type ProfileCacheI interface {
	Get(ctx context.Context, username string) (*entity.UserProfile, error)
	Put(ctx context.Context, profile *entity.UserProfile) error
	Known(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, username string) error
}

// ProfileEnsurer is implemented by ProfileService
type ProfileEnsurer interface {
	Ensure(ctx context.Context, username string) error
}

// SharedRewarder is implemented by ProfileService
type SharedRewarder interface {
	GrantSharedReward(ctx context.Context, username, partner string, today civil.Date) error
}
