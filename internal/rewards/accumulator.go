package rewards

import (
	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/pkg/entity"
)

const (
	fiveStreakThreshold = 5
	tenStreakThreshold  = 10
)

type CompletionResult struct {
	HabitID          uuid.UUID `json:"habit_id"`
	Progression      bool      `json:"progression"`
	Boosted          bool      `json:"boosted"`
	XPGained         int       `json:"xp_gained"`
	PokeBallsGained  int       `json:"poke_balls_gained"`
	GreatBallsGained int       `json:"great_balls_gained"`
	UltraBallsGained int       `json:"ultra_balls_gained"`
	DailyCompletions int       `json:"daily_completions"`
	LevelBefore      int       `json:"level_before"`
	LevelAfter       int       `json:"level_after"`
}

func (r *CompletionResult) LeveledUp() bool {
	return r.LevelAfter > r.LevelBefore
}

// RecordCompletion marks habit (or progression habit) done for today and grants rewards.
// Profile is expected to be rolled over to today already.
func RecordCompletion(p *entity.UserProfile, habitID uuid.UUID, today civil.Date, cfg Config) (*CompletionResult, error) {
	res := &CompletionResult{HabitID: habitID}
	if h := p.Habit(habitID); h != nil {
		if h.CompletedToday {
			return nil, errorvalues.ErrAlreadyCompleted
		}
		h.CompletedToday = true
		h.TotalCompletions++
	} else if ph := p.ProgressionHabit(habitID); ph != nil {
		if ph.CompletedToday {
			return nil, errorvalues.ErrAlreadyCompleted
		}
		ph.CompletedToday = true
		ph.TotalCompletions++
		res.Progression = true
	} else {
		return nil, errorvalues.ErrHabitNotFound
	}

	res.LevelBefore = LevelInfoFor(p.XP, cfg.Thresholds).Level
	p.DailyCompletions++
	res.DailyCompletions = p.DailyCompletions

	res.PokeBallsGained, res.XPGained = 1, cfg.BaseXP
	if p.BoostedHabitID != nil && *p.BoostedHabitID == habitID && res.LevelBefore >= cfg.BoostMinLevel {
		res.Boosted = true
		res.PokeBallsGained *= 2
		res.XPGained *= 2
	}
	if p.DailyCompletions%5 == 0 {
		res.GreatBallsGained = 1
	}
	if p.DailyCompletions%10 == 0 {
		res.UltraBallsGained = 1
	}
	p.Inventory.PokeBalls += res.PokeBallsGained
	p.Inventory.GreatBalls += res.GreatBallsGained
	p.Inventory.UltraBalls += res.UltraBallsGained
	p.XP += res.XPGained
	res.LevelAfter = LevelInfoFor(p.XP, cfg.Thresholds).Level

	advanceStreak(&p.DailyStreak, today)
	advanceThresholdStreak(&p.FiveStreak, p.DailyCompletions, fiveStreakThreshold, today)
	advanceThresholdStreak(&p.TenStreak, p.DailyCompletions, tenStreakThreshold, today)
	return res, nil
}

func advanceStreak(s *entity.Streak, today civil.Date) {
	switch {
	case s.LastUpdate == nil:
		s.Current = 1
	case *s.LastUpdate == today:
		if s.Current == 0 {
			s.Current = 1
		}
	case today.DaysSince(*s.LastUpdate) == 1:
		s.Current++
	default:
		s.Current = 1
		s.RewardedDay = 0
	}
	s.LastUpdate = &today
}

// advanceThresholdStreak advances N-per-day streak once per day, when daily count reaches threshold
func advanceThresholdStreak(s *entity.Streak, dailyCompletions, threshold int, today civil.Date) {
	if dailyCompletions < threshold {
		return
	}
	if s.LastUpdate != nil && *s.LastUpdate == today {
		return
	}
	advanceStreak(s, today)
}
