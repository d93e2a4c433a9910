package service

import (
	"context"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/internal/metrics"
	"github.com/limbo/habitmon/internal/repository"
	"github.com/limbo/habitmon/internal/sharedhabit"
	"github.com/limbo/habitmon/pkg/entity"
)

type SharedHabitsService struct {
	repo     repository.SharedHabitsRepositoryI
	users    repository.UsersRepositoryI
	rewarder SharedRewarder
}

func NewSharedHabitsService(sharedRepo repository.SharedHabitsRepositoryI, usersRepo repository.UsersRepositoryI, rewarder SharedRewarder) *SharedHabitsService {
	if sharedRepo == nil || usersRepo == nil || rewarder == nil {
		log.Fatal("on shared habits service provided nil dependencies")
	}
	return &SharedHabitsService{
		repo:     sharedRepo,
		users:    usersRepo,
		rewarder: rewarder,
	}
}

func (shs *SharedHabitsService) Invite(ctx context.Context, creator string, req *InviteRequest) (*entity.SharedHabit, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	sh, err := sharedhabit.New(creator, req.Invitee, req.Text, time.Now())
	if err != nil {
		return nil, err
	}
	if _, err = shs.users.FindByName(ctx, sh.Invitee); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	open, err := shs.repo.FindOpenBetween(ctx, sh.Creator, sh.Invitee)
	if err != nil {
		return nil, errors.New("shared habits repository error: " + err.Error())
	}
	if len(open) > 0 {
		return nil, errorvalues.ErrSharedHabitExists
	}
	if err = shs.repo.Create(ctx, sh); err != nil {
		if errors.Is(err, errorvalues.ErrSharedHabitExists) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("shared habits repository error: " + err.Error())
	}
	return sh, nil
}

func (shs *SharedHabitsService) Respond(ctx context.Context, actor string, id uuid.UUID, accept bool) (*entity.SharedHabit, error) {
	return shs.transition(ctx, id, func(sh *entity.SharedHabit) error {
		return sharedhabit.Respond(sh, actor, accept, time.Now())
	})
}

func (shs *SharedHabitsService) Cancel(ctx context.Context, actor string, id uuid.UUID) (*entity.SharedHabit, error) {
	return shs.transition(ctx, id, func(sh *entity.SharedHabit) error {
		return sharedhabit.Cancel(sh, actor, time.Now())
	})
}

func (shs *SharedHabitsService) Archive(ctx context.Context, actor string, id uuid.UUID) (*entity.SharedHabit, error) {
	return shs.transition(ctx, id, func(sh *entity.SharedHabit) error {
		return sharedhabit.Archive(sh, actor, time.Now())
	})
}

// Complete stores the completion before granting rewards: version check lets only one
// of two simultaneous completions through, so the joint reward is paid once.
func (shs *SharedHabitsService) Complete(ctx context.Context, actor string, id uuid.UUID, today civil.Date) (*entity.SharedHabit, bool, error) {
	rewardDue := false
	sh, err := shs.transition(ctx, id, func(sh *entity.SharedHabit) error {
		var err error
		rewardDue, err = sharedhabit.Complete(sh, actor, today, time.Now())
		return err
	})
	if err != nil || !rewardDue {
		return sh, false, err
	}
	// both participants are granted even when one grant fails
	var errs []error
	for _, participant := range []string{sh.Creator, sh.Invitee} {
		partner, _ := sh.Partner(participant)
		if err = shs.rewarder.GrantSharedReward(ctx, participant, partner, today); err != nil {
			errs = append(errs, errors.New("granting shared reward to "+participant+" error: "+err.Error()))
		}
	}
	metrics.SharedRewards.Inc()
	return sh, true, errors.Join(errs...)
}

func (shs *SharedHabitsService) List(ctx context.Context, username string, today civil.Date) ([]*entity.SharedHabit, error) {
	list, err := shs.repo.FindByParticipant(ctx, username)
	if err != nil {
		return nil, errors.New("shared habits repository error: " + err.Error())
	}
	for i, sh := range list {
		if sh.Status != entity.StatusActive || !sharedhabit.Refresh(sh, today) {
			continue
		}
		err = shs.repo.Update(ctx, sh)
		if err == nil {
			continue
		}
		if !errors.Is(err, errorvalues.ErrStaleSharedHabit) {
			return nil, errors.New("shared habits repository error: " + err.Error())
		}
		// Someone touched it concurrently, their version is already fresh
		fresh, err := shs.repo.GetByID(ctx, sh.ID)
		if err != nil {
			return nil, errors.New("shared habits repository error: " + err.Error())
		}
		list[i] = fresh
	}
	return list, nil
}

func (shs *SharedHabitsService) transition(ctx context.Context, id uuid.UUID, apply func(sh *entity.SharedHabit) error) (*entity.SharedHabit, error) {
	sh, err := shs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSharedHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("shared habits repository error: " + err.Error())
	}
	if err = apply(sh); err != nil {
		return nil, err
	}
	if err = shs.repo.Update(ctx, sh); err != nil {
		if errors.Is(err, errorvalues.ErrStaleSharedHabit) ||
			errors.Is(err, errorvalues.ErrSharedHabitNotFound) ||
			errors.Is(err, errorvalues.ErrSharedHabitExists) {
			return nil, err
		}
		return nil, errors.New("shared habits repository error: " + err.Error())
	}
	return sh, nil
}
