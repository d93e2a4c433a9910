package service

import (
	"context"
	"errors"
	"log"
	"slices"
	"strconv"
	"strings"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/internal/metrics"
	"github.com/limbo/habitmon/internal/repository"
	"github.com/limbo/habitmon/internal/rewards"
	"github.com/limbo/habitmon/pkg/entity"
)

type ProfileServiceOpts struct {
	Config   rewards.Config
	Selector *rewards.Selector
	// Push every mutation to database right after caching it
	AutoSync bool
}

// ProfileService treats cached profile as the working copy. Database is written on Sync
// or after each mutation when AutoSync is on.
type ProfileService struct {
	repo     repository.ProfilesRepositoryI
	cache    ProfileCacheI
	cfg      rewards.Config
	selector *rewards.Selector
	autoSync bool

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewProfileService(profilesRepo repository.ProfilesRepositoryI, cache ProfileCacheI, opts ProfileServiceOpts) *ProfileService {
	if profilesRepo == nil || cache == nil || opts.Selector == nil {
		log.Fatal("on profile service provided nil dependencies")
	}
	return &ProfileService{
		repo:     profilesRepo,
		cache:    cache,
		cfg:      opts.Config,
		selector: opts.Selector,
		autoSync: opts.AutoSync,
		locks:    make(map[string]*sync.Mutex),
	}
}

func (ps *ProfileService) Get(ctx context.Context, username string, today civil.Date) (*entity.UserProfile, error) {
	return ps.mutate(ctx, username, today, func(p *entity.UserProfile, _ civil.Date) error {
		return nil
	})
}

func (ps *ProfileService) Level(ctx context.Context, username string, today civil.Date) (rewards.LevelInfo, error) {
	p, err := ps.Get(ctx, username, today)
	if err != nil {
		return rewards.LevelInfo{}, err
	}
	return rewards.LevelInfoFor(p.XP, ps.cfg.Thresholds), nil
}

func (ps *ProfileService) AddHabit(ctx context.Context, username string, today civil.Date, req *AddHabitRequest) (*entity.Habit, error) {
	req.Text = strings.TrimSpace(req.Text)
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	habit := entity.Habit{ID: uuid.New(), Text: req.Text}
	_, err := ps.mutate(ctx, username, today, func(p *entity.UserProfile, _ civil.Date) error {
		p.Habits = append(p.Habits, habit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (ps *ProfileService) AddProgressionHabit(ctx context.Context, username string, today civil.Date, req *AddProgressionHabitRequest) (*entity.ProgressionHabit, error) {
	req.Text = strings.TrimSpace(req.Text)
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	habit := entity.ProgressionHabit{ID: uuid.New(), ParentID: req.ParentID, Text: req.Text}
	_, err := ps.mutate(ctx, username, today, func(p *entity.UserProfile, _ civil.Date) error {
		if p.Habit(req.ParentID) == nil {
			return errorvalues.ErrHabitNotFound
		}
		p.ProgressionHabits = append(p.ProgressionHabits, habit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &habit, nil
}

func (ps *ProfileService) RemoveHabit(ctx context.Context, username string, today civil.Date, habitID uuid.UUID) error {
	_, err := ps.mutate(ctx, username, today, func(p *entity.UserProfile, _ civil.Date) error {
		if p.Habit(habitID) != nil {
			p.Habits = slices.DeleteFunc(p.Habits, func(h entity.Habit) bool { return h.ID == habitID })
			p.ProgressionHabits = slices.DeleteFunc(p.ProgressionHabits, func(ph entity.ProgressionHabit) bool {
				return ph.ParentID == habitID
			})
			if p.BoostedHabitID != nil && *p.BoostedHabitID == habitID {
				p.BoostedHabitID = nil
			}
			return nil
		}
		if p.ProgressionHabit(habitID) != nil {
			p.ProgressionHabits = slices.DeleteFunc(p.ProgressionHabits, func(ph entity.ProgressionHabit) bool {
				return ph.ID == habitID
			})
			return nil
		}
		return errorvalues.ErrHabitNotFound
	})
	return err
}

func (ps *ProfileService) CompleteHabit(ctx context.Context, username string, today civil.Date, habitID uuid.UUID) (*rewards.CompletionResult, error) {
	var res *rewards.CompletionResult
	_, err := ps.mutate(ctx, username, today, func(p *entity.UserProfile, day civil.Date) error {
		var err error
		res, err = rewards.RecordCompletion(p, habitID, day, ps.cfg)
		return err
	})
	if res != nil {
		kind := "regular"
		if res.Progression {
			kind = "progression"
		}
		metrics.HabitCompletions.WithLabelValues(kind).Inc()
		if res.LeveledUp() {
			metrics.LevelUps.Inc()
		}
	}
	return res, err
}

func (ps *ProfileService) SetBoostedHabit(ctx context.Context, username string, today civil.Date, habitID *uuid.UUID) error {
	_, err := ps.mutate(ctx, username, today, func(p *entity.UserProfile, _ civil.Date) error {
		if habitID == nil {
			p.BoostedHabitID = nil
			return nil
		}
		if p.Habit(*habitID) == nil {
			return errorvalues.ErrHabitNotFound
		}
		id := *habitID
		p.BoostedHabitID = &id
		return nil
	})
	return err
}

func (ps *ProfileService) SetAvatar(ctx context.Context, username string, today civil.Date, req *SetAvatarRequest) error {
	if err := validateRequest(req); err != nil {
		return err
	}
	_, err := ps.mutate(ctx, username, today, func(p *entity.UserProfile, _ civil.Date) error {
		p.Avatar = req.Avatar
		return nil
	})
	return err
}

func (ps *ProfileService) Capture(ctx context.Context, username string, today civil.Date, tier string) (rewards.Item, error) {
	ballTier, err := rewards.ParseBallTier(tier)
	if err != nil {
		return rewards.Item{}, err
	}
	var item rewards.Item
	captured := false
	_, err = ps.mutate(ctx, username, today, func(p *entity.UserProfile, _ civil.Date) error {
		var err error
		item, err = rewards.Capture(p, ballTier, rewards.DefaultPool(ballTier), ps.selector, ps.cfg)
		captured = err == nil
		return err
	})
	if captured {
		metrics.Captures.WithLabelValues(ballTier.String(), strconv.FormatBool(item.Shiny)).Inc()
	}
	return item, err
}

func (ps *ProfileService) ClaimStreakRewards(ctx context.Context, username string, today civil.Date) (rewards.StreakReward, error) {
	var reward rewards.StreakReward
	_, err := ps.mutate(ctx, username, today, func(p *entity.UserProfile, _ civil.Date) error {
		reward = rewards.ClaimStreakRewards(p, ps.cfg)
		return nil
	})
	return reward, err
}

func (ps *ProfileService) GrantSharedReward(ctx context.Context, username, partner string, today civil.Date) error {
	_, err := ps.mutate(ctx, username, today, func(p *entity.UserProfile, _ civil.Date) error {
		rewards.ApplySharedReward(p, partner, ps.cfg)
		return nil
	})
	return err
}

func (ps *ProfileService) Sync(ctx context.Context, username string) error {
	lock := ps.lockFor(username)
	lock.Lock()
	defer lock.Unlock()
	p, err := ps.cache.Get(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCacheMiss) {
			// Nothing changed since the last pull
			return nil
		}
		return errors.New("cache error: " + err.Error())
	}
	return ps.push(ctx, p)
}

// SyncAll pushes every cached profile. Failed pushes don't stop the loop, their errors are joined
func (ps *ProfileService) SyncAll(ctx context.Context) (int, error) {
	names, err := ps.cache.Known(ctx)
	if err != nil {
		return 0, errors.New("cache error: " + err.Error())
	}
	synced := 0
	var errs []error
	for _, name := range names {
		if err = ps.Sync(ctx, name); err != nil {
			errs = append(errs, errors.New(name+": "+err.Error()))
			continue
		}
		synced++
	}
	return synced, errors.Join(errs...)
}

func (ps *ProfileService) Pull(ctx context.Context, username string) (*entity.UserProfile, error) {
	lock := ps.lockFor(username)
	lock.Lock()
	defer lock.Unlock()
	p, err := ps.repo.FindByName(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	if err = ps.cache.Put(ctx, p); err != nil {
		return nil, errors.New("cache error: " + err.Error())
	}
	return p, nil
}

func (ps *ProfileService) Ensure(ctx context.Context, username string) error {
	exists, err := ps.repo.Exists(ctx, username)
	if err != nil {
		return errors.New("profiles repository error: " + err.Error())
	}
	if exists {
		return nil
	}
	err = ps.repo.Create(ctx, entity.NewProfile(username))
	// Lost the race with a concurrent login
	if err != nil && !errors.Is(err, errorvalues.ErrProfileExists) {
		return errors.New("profiles repository error: " + err.Error())
	}
	return nil
}

// mutate runs op over the rolled over profile under user's lock and stores the result.
// op gets the effective day, which never precedes profile's last reset. Failed op still keeps the rollover.
func (ps *ProfileService) mutate(ctx context.Context, username string, today civil.Date, op func(p *entity.UserProfile, day civil.Date) error) (*entity.UserProfile, error) {
	lock := ps.lockFor(username)
	lock.Lock()
	defer lock.Unlock()

	p, err := ps.load(ctx, username)
	if err != nil {
		return nil, err
	}
	day := rewards.EffectiveDay(p.LastResetDate, today)
	rolled := rewards.Rollover(p, day, ps.cfg)
	opErr := op(p, day)
	if opErr != nil && !rolled {
		return nil, opErr
	}
	if err = ps.cache.Put(ctx, p); err != nil {
		return nil, errors.New("cache error: " + err.Error())
	}
	var pushErr error
	if ps.autoSync {
		pushErr = ps.push(ctx, p)
	}
	if opErr != nil {
		return nil, opErr
	}
	return p, pushErr
}

func (ps *ProfileService) load(ctx context.Context, username string) (*entity.UserProfile, error) {
	p, err := ps.cache.Get(ctx, username)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, errorvalues.ErrCacheMiss) && !errors.Is(err, errorvalues.ErrMalformedProfile) {
		return nil, errors.New("cache error: " + err.Error())
	}
	p, err = ps.repo.FindByName(ctx, username)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	return p, nil
}

func (ps *ProfileService) push(ctx context.Context, p *entity.UserProfile) error {
	if err := ps.repo.Save(ctx, p); err != nil {
		metrics.SyncFailures.Inc()
		return errors.New("profile kept in cache, database push failed: " + err.Error())
	}
	return nil
}

func (ps *ProfileService) lockFor(username string) *sync.Mutex {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	lock, ok := ps.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		ps.locks[username] = lock
	}
	return lock
}
