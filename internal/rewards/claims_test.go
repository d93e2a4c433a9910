package rewards_test

import (
	"testing"

	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/internal/rewards"
	"github.com/limbo/habitmon/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimStreakRewards(t *testing.T) {
	cfg := rewards.DefaultConfig()
	cfg.StreakDayCoins = 5
	cfg.StreakMilestone = 7
	p := testProfile(today)
	p.DailyStreak = entity.Streak{Current: 8, LastUpdate: dayPtr(today), RewardedDay: 5}
	p.FiveStreak = entity.Streak{Current: 2, LastUpdate: dayPtr(today)}

	r := rewards.ClaimStreakRewards(p, cfg)
	// days 6,7,8 of daily streak and 1,2 of five streak; day 7 is a milestone
	assert.Equal(t, rewards.StreakReward{Coins: 25, MasterBalls: 1}, r)
	assert.Equal(t, 25, p.Inventory.Coins)
	assert.Equal(t, 1, p.Inventory.MasterBalls)
	for _, s := range p.Streaks() {
		assert.Equal(t, s.Current, s.RewardedDay)
	}

	t.Run("second claim pays nothing", func(t *testing.T) {
		r := rewards.ClaimStreakRewards(p, cfg)
		assert.Equal(t, rewards.StreakReward{}, r)
		assert.Equal(t, 25, p.Inventory.Coins)
	})
}

func TestCapture(t *testing.T) {
	cfg := noOverlays()
	sel := seededSelector(cfg)
	t.Run("spends one ball and records species", func(t *testing.T) {
		p := testProfile(today)
		p.Inventory.GreatBalls = 2
		item, err := rewards.Capture(p, rewards.GreatBall, []rewards.PoolEntry{{ItemID: 133, Weight: 1}}, sel, cfg)
		require.NoError(t, err)
		assert.Equal(t, 133, item.ID)
		assert.Equal(t, 1, p.Inventory.GreatBalls)
		assert.Equal(t, []int{133}, p.CaughtSpecies)
		assert.Empty(t, p.ShinySpecies)
	})
	t.Run("not enough balls", func(t *testing.T) {
		p := testProfile(today)
		_, err := rewards.Capture(p, rewards.UltraBall, rewards.DefaultPool(rewards.UltraBall), sel, cfg)
		assert.ErrorIs(t, err, errorvalues.ErrNotEnoughBalls)
		assert.Empty(t, p.CaughtSpecies)
	})
	t.Run("unknown tier", func(t *testing.T) {
		p := testProfile(today)
		_, err := rewards.Capture(p, rewards.BallTier(0), nil, sel, cfg)
		assert.ErrorIs(t, err, errorvalues.ErrUnknownBallTier)
	})
	t.Run("empty pool falls back", func(t *testing.T) {
		p := testProfile(today)
		p.Inventory.PokeBalls = 1
		item, err := rewards.Capture(p, rewards.PokeBall, nil, sel, cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg.FallbackItem, item)
		assert.Equal(t, 0, p.Inventory.PokeBalls)
		assert.True(t, p.HasSpecies(cfg.FallbackItem.ID))
	})
	t.Run("shiny recorded", func(t *testing.T) {
		cfg := noOverlays()
		cfg.ShinyChance = 1
		p := testProfile(today)
		p.Inventory.MasterBalls = 1
		_, err := rewards.Capture(p, rewards.MasterBall, []rewards.PoolEntry{{ItemID: 150, Weight: 1}}, seededSelector(cfg), cfg)
		require.NoError(t, err)
		assert.Equal(t, []int{150}, p.CaughtSpecies)
		assert.Equal(t, []int{150}, p.ShinySpecies)
	})
}

func TestApplySharedReward(t *testing.T) {
	cfg := rewards.DefaultConfig()
	p := testProfile(today)
	rewards.ApplySharedReward(p, "brock", cfg)
	rewards.ApplySharedReward(p, "brock", cfg)
	assert.Equal(t, 2*cfg.SharedRewardCoins, p.Inventory.Coins)
	assert.Equal(t, 2*cfg.SharedRewardXP, p.XP)
	assert.Equal(t, map[string]int{"brock": 2}, p.PartnerStreaks)
}
