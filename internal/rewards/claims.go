package rewards

import (
	"errors"

	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/pkg/entity"
)

type StreakReward struct {
	Coins       int `json:"coins"`
	MasterBalls int `json:"master_balls"`
}

// ClaimStreakRewards pays for every streak day above the streak's watermark
// and moves the watermark up to the current streak value.
func ClaimStreakRewards(p *entity.UserProfile, cfg Config) StreakReward {
	var r StreakReward
	for _, s := range p.Streaks() {
		for day := s.RewardedDay + 1; day <= s.Current; day++ {
			r.Coins += cfg.StreakDayCoins
			if cfg.StreakMilestone > 0 && day%cfg.StreakMilestone == 0 {
				r.MasterBalls++
			}
		}
		s.RewardedDay = s.Current
	}
	p.Inventory.Coins += r.Coins
	p.Inventory.MasterBalls += r.MasterBalls
	return r
}

// Capture spends one ball of the tier and adds drawn species to the collection.
// Empty pool yields cfg.FallbackItem.
func Capture(p *entity.UserProfile, tier BallTier, pool []PoolEntry, sel *Selector, cfg Config) (Item, error) {
	counter, err := balls(&p.Inventory, tier)
	if err != nil {
		return Item{}, err
	}
	if *counter < 1 {
		return Item{}, errorvalues.ErrNotEnoughBalls
	}
	item, err := sel.Draw(pool)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrEmptyPool) {
			return Item{}, err
		}
		item = cfg.FallbackItem
	}
	*counter--
	p.AddSpecies(item.ID, item.Shiny)
	return item, nil
}

// ApplySharedReward grants joint completion reward of a shared habit to one participant
func ApplySharedReward(p *entity.UserProfile, partner string, cfg Config) {
	p.Inventory.Coins += cfg.SharedRewardCoins
	p.XP += cfg.SharedRewardXP
	if p.PartnerStreaks == nil {
		p.PartnerStreaks = map[string]int{}
	}
	p.PartnerStreaks[partner]++
}
