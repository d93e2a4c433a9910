package rewards

import (
	"cloud.google.com/go/civil"
	"github.com/limbo/habitmon/pkg/entity"
)

// EffectiveDay is the day operations apply to: today, or the last reset day when today is behind it.
// Days never go backwards, so a client whose local date lags can't reopen a finished day.
func EffectiveDay(lastReset *civil.Date, today civil.Date) civil.Date {
	if lastReset != nil && today.Before(*lastReset) {
		return *lastReset
	}
	return today
}

// Rollover moves profile to today: archives yesterday's counter into history, clears daily flags
// and breaks streaks not updated yesterday. It's a no-op when profile was already reset today
// or later. Reports whether profile was changed.
func Rollover(p *entity.UserProfile, today civil.Date, cfg Config) bool {
	if p.LastResetDate != nil && !today.After(*p.LastResetDate) {
		return false
	}
	if p.LastResetDate != nil {
		p.History = append([]entity.HistoryEntry{{Date: *p.LastResetDate, Count: p.DailyCompletions}}, p.History...)
		if limit := historyCap(cfg); len(p.History) > limit {
			p.History = p.History[:limit]
		}
	}
	for i := range p.Habits {
		p.Habits[i].CompletedToday = false
	}
	for i := range p.ProgressionHabits {
		p.ProgressionHabits[i].CompletedToday = false
	}
	p.DailyCompletions = 0
	p.LastResetDate = &today

	for _, s := range p.Streaks() {
		if s.LastUpdate == nil || *s.LastUpdate == today {
			continue
		}
		// Gap of two days or more, or date in the future
		if today.DaysSince(*s.LastUpdate) != 1 {
			s.Current = 0
			s.RewardedDay = 0
		}
	}
	return true
}

func historyCap(cfg Config) int {
	if cfg.HistoryCap <= 0 || cfg.HistoryCap > entity.HistoryLimit {
		return entity.HistoryLimit
	}
	return cfg.HistoryCap
}
