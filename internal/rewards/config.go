// Package rewards holds progression rules: day rollover, completion rewards and streaks,
// levels and weighted capture draws. All functions operate on a single profile passed
// explicitly and never touch storage.
package rewards

import (
	"strings"

	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/pkg/entity"
)

type BallTier int

const (
	PokeBall BallTier = iota + 1
	GreatBall
	UltraBall
	MasterBall
)

var ballTierNames = map[BallTier]string{
	PokeBall:   "poke",
	GreatBall:  "great",
	UltraBall:  "ultra",
	MasterBall: "master",
}

func (t BallTier) String() string {
	if name, ok := ballTierNames[t]; ok {
		return name
	}
	return "unknown"
}

func ParseBallTier(s string) (BallTier, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "_ball")
	for tier, name := range ballTierNames {
		if name == s {
			return tier, nil
		}
	}
	return 0, errorvalues.ErrUnknownBallTier
}

// balls returns pointer to the inventory counter of the tier
func balls(inv *entity.Inventory, tier BallTier) (*int, error) {
	switch tier {
	case PokeBall:
		return &inv.PokeBalls, nil
	case GreatBall:
		return &inv.GreatBalls, nil
	case UltraBall:
		return &inv.UltraBalls, nil
	case MasterBall:
		return &inv.MasterBalls, nil
	}
	return nil, errorvalues.ErrUnknownBallTier
}

type Config struct {
	// XP granted per completion
	BaseXP int
	// Minimal level at which boosted habit doubles rewards
	BoostMinLevel int
	HistoryCap    int
	Thresholds    []int

	ShinyChance   float64
	AltFormChance float64
	AltForm       AltForm
	// Used when a draw pool is empty
	FallbackItem Item

	StreakDayCoins  int
	StreakMilestone int

	SharedRewardCoins int
	SharedRewardXP    int
}

func DefaultConfig() Config {
	return Config{
		BaseXP:          10,
		BoostMinLevel:   5,
		HistoryCap:      30,
		Thresholds:      DefaultThresholds,
		ShinyChance:     1.0 / 512,
		AltFormChance:   1.0 / 8192,
		AltForm:         AltForm{ItemID: 25, Name: "pikachu-cosplay", Sprite: spriteURL("25-cosplay")},
		FallbackItem:    Item{ID: 132, Name: "#132", Sprite: spriteURL("132")},
		StreakDayCoins:  5,
		StreakMilestone: 7,

		SharedRewardCoins: 20,
		SharedRewardXP:    25,
	}
}
