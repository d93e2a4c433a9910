package rewards_test

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/limbo/habitmon/internal/rewards"
	"github.com/limbo/habitmon/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func day(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dayPtr(s string) *civil.Date {
	d := day(s)
	return &d
}

var (
	habitA       = uuid.MustParse("0b7c2b9e-4f0c-4d8e-9a57-2b1f9b3e1a01")
	habitB       = uuid.MustParse("0b7c2b9e-4f0c-4d8e-9a57-2b1f9b3e1a02")
	progressionA = uuid.MustParse("0b7c2b9e-4f0c-4d8e-9a57-2b1f9b3e1a03")
)

// testProfile builds profile last reset on lastReset with two habits and a progression habit
func testProfile(lastReset string) *entity.UserProfile {
	p := entity.NewProfile("ash")
	p.Habits = []entity.Habit{
		{ID: habitA, Text: "run"},
		{ID: habitB, Text: "read"},
	}
	p.ProgressionHabits = []entity.ProgressionHabit{
		{ID: progressionA, ParentID: habitA, Text: "run 10k"},
	}
	p.LastResetDate = dayPtr(lastReset)
	return p
}

func TestRollover(t *testing.T) {
	cfg := rewards.DefaultConfig()
	t.Run("same day is no-op", func(t *testing.T) {
		p := testProfile("2024-03-10")
		p.Habits[0].CompletedToday = true
		p.DailyCompletions = 3
		changed := rewards.Rollover(p, day("2024-03-10"), cfg)
		assert.False(t, changed)
		assert.Equal(t, testProfileWithProgress(), p)
	})
	t.Run("new day resets daily state", func(t *testing.T) {
		p := testProfile("2024-03-10")
		p.Habits[0].CompletedToday = true
		p.Habits[0].TotalCompletions = 4
		p.ProgressionHabits[0].CompletedToday = true
		p.DailyCompletions = 3
		changed := rewards.Rollover(p, day("2024-03-11"), cfg)
		assert.True(t, changed)
		assert.False(t, p.Habits[0].CompletedToday)
		assert.False(t, p.ProgressionHabits[0].CompletedToday)
		assert.Equal(t, 4, p.Habits[0].TotalCompletions)
		assert.Equal(t, 0, p.DailyCompletions)
		assert.Equal(t, day("2024-03-11"), *p.LastResetDate)
		assert.Equal(t, []entity.HistoryEntry{{Date: day("2024-03-10"), Count: 3}}, p.History)
	})
	t.Run("idempotent", func(t *testing.T) {
		once := testProfile("2024-03-01")
		once.DailyCompletions = 2
		once.DailyStreak = entity.Streak{Current: 3, LastUpdate: dayPtr("2024-03-01"), RewardedDay: 2}
		rewards.Rollover(once, day("2024-03-05"), cfg)

		twice := testProfile("2024-03-01")
		twice.DailyCompletions = 2
		twice.DailyStreak = entity.Streak{Current: 3, LastUpdate: dayPtr("2024-03-01"), RewardedDay: 2}
		rewards.Rollover(twice, day("2024-03-05"), cfg)
		changed := rewards.Rollover(twice, day("2024-03-05"), cfg)

		assert.False(t, changed)
		assert.Equal(t, once, twice)
	})
	t.Run("history is most recent first and capped", func(t *testing.T) {
		cfg := rewards.DefaultConfig()
		cfg.HistoryCap = 3
		p := testProfile("2024-03-01")
		for i, d := range []string{"2024-03-02", "2024-03-03", "2024-03-04", "2024-03-05"} {
			p.DailyCompletions = i + 1
			rewards.Rollover(p, day(d), cfg)
		}
		assert.Equal(t, []entity.HistoryEntry{
			{Date: day("2024-03-04"), Count: 4},
			{Date: day("2024-03-03"), Count: 3},
			{Date: day("2024-03-02"), Count: 2},
		}, p.History)
	})
	t.Run("earlier day is no-op", func(t *testing.T) {
		p := testProfileWithProgress()
		changed := rewards.Rollover(p, day("2024-03-05"), cfg)
		assert.False(t, changed)
		assert.Equal(t, testProfileWithProgress(), p)
	})
	t.Run("fresh profile gets no history entry", func(t *testing.T) {
		p := entity.NewProfile("misty")
		changed := rewards.Rollover(p, day("2024-03-05"), cfg)
		assert.True(t, changed)
		assert.Empty(t, p.History)
		assert.Equal(t, day("2024-03-05"), *p.LastResetDate)
	})
}

func TestEffectiveDay(t *testing.T) {
	testCases := []struct {
		Desc      string
		LastReset *civil.Date
		Today     string
		Expected  string
	}{
		{Desc: "never reset", LastReset: nil, Today: "2024-03-05", Expected: "2024-03-05"},
		{Desc: "same day", LastReset: dayPtr("2024-03-10"), Today: "2024-03-10", Expected: "2024-03-10"},
		{Desc: "later day", LastReset: dayPtr("2024-03-10"), Today: "2024-03-11", Expected: "2024-03-11"},
		{Desc: "earlier day clamped", LastReset: dayPtr("2024-03-10"), Today: "2024-03-05", Expected: "2024-03-10"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, day(tc.Expected), rewards.EffectiveDay(tc.LastReset, day(tc.Today)))
		})
	}
}

func TestRolloverStreaks(t *testing.T) {
	cfg := rewards.DefaultConfig()
	testCases := []struct {
		Desc       string
		LastUpdate *civil.Date
		Today      string
		Expected   entity.Streak
	}{
		{
			Desc:       "updated yesterday stays",
			LastUpdate: dayPtr("2024-03-09"),
			Today:      "2024-03-10",
			Expected:   entity.Streak{Current: 4, LastUpdate: dayPtr("2024-03-09"), RewardedDay: 2},
		},
		{
			Desc:       "two days gap breaks",
			LastUpdate: dayPtr("2024-03-08"),
			Today:      "2024-03-10",
			Expected:   entity.Streak{Current: 0, LastUpdate: dayPtr("2024-03-08"), RewardedDay: 0},
		},
		{
			Desc:       "future date breaks",
			LastUpdate: dayPtr("2024-03-12"),
			Today:      "2024-03-10",
			Expected:   entity.Streak{Current: 0, LastUpdate: dayPtr("2024-03-12"), RewardedDay: 0},
		},
		{
			Desc:       "updated today untouched",
			LastUpdate: dayPtr("2024-03-10"),
			Today:      "2024-03-10",
			Expected:   entity.Streak{Current: 4, LastUpdate: dayPtr("2024-03-10"), RewardedDay: 2},
		},
		{
			Desc:       "never updated untouched",
			LastUpdate: nil,
			Today:      "2024-03-10",
			Expected:   entity.Streak{Current: 4, RewardedDay: 2},
		},
		{
			Desc:       "month boundary counts as yesterday",
			LastUpdate: dayPtr("2024-02-29"),
			Today:      "2024-03-01",
			Expected:   entity.Streak{Current: 4, LastUpdate: dayPtr("2024-02-29"), RewardedDay: 2},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			// last reset differs from today so rollover fires
			p := testProfile("2024-01-01")
			for _, s := range p.Streaks() {
				*s = entity.Streak{Current: 4, LastUpdate: tc.LastUpdate, RewardedDay: 2}
			}
			rewards.Rollover(p, day(tc.Today), cfg)
			assert.Equal(t, tc.Expected, p.DailyStreak)
			assert.Equal(t, tc.Expected, p.FiveStreak)
			assert.Equal(t, tc.Expected, p.TenStreak)
		})
	}
}

func testProfileWithProgress() *entity.UserProfile {
	p := testProfile("2024-03-10")
	p.Habits[0].CompletedToday = true
	p.DailyCompletions = 3
	return p
}
