package rewards

import (
	"fmt"
	"math/rand/v2"
	"sync"

	errorvalues "github.com/limbo/habitmon/internal/error_values"
)

const spriteBase = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/"

func spriteURL(name string) string {
	return spriteBase + name + ".png"
}

func shinySpriteURL(name string) string {
	return spriteBase + "shiny/" + name + ".png"
}

// PoolEntry is a drawable item. Name and Sprite override defaults when set
type PoolEntry struct {
	ItemID int
	Weight float64
	Name   string
	Sprite string
}

// AltForm is the rare alternate form of one specific item
type AltForm struct {
	ItemID int
	Name   string
	Sprite string
}

type Item struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Sprite  string `json:"sprite"`
	Shiny   bool   `json:"shiny"`
	AltForm bool   `json:"alt_form"`
}

// Selector draws items proportionally to their weights. Safe for concurrent use.
type Selector struct {
	mu            sync.Mutex
	rng           *rand.Rand
	shinyChance   float64
	altFormChance float64
	altForm       AltForm
}

// NewSelector creates selector with overlay chances from cfg. If rng is nil, randomly seeded one is used
func NewSelector(rng *rand.Rand, cfg Config) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{
		rng:           rng,
		shinyChance:   cfg.ShinyChance,
		altFormChance: cfg.AltFormChance,
		altForm:       cfg.AltForm,
	}
}

// Pick chooses entry i with probability weight_i / sum(weights).
// Non-positive weights never win unless total weight isn't positive, then choice is uniform.
func (s *Selector) Pick(pool []PoolEntry) (PoolEntry, error) {
	if len(pool) == 0 {
		return PoolEntry{}, errorvalues.ErrEmptyPool
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pick(pool), nil
}

func (s *Selector) pick(pool []PoolEntry) PoolEntry {
	var total float64
	for _, e := range pool {
		if e.Weight > 0 {
			total += e.Weight
		}
	}
	if total <= 0 {
		return pool[s.rng.IntN(len(pool))]
	}
	r := s.rng.Float64() * total
	last := -1
	for i, e := range pool {
		if e.Weight <= 0 {
			continue
		}
		last = i
		r -= e.Weight
		if r < 0 {
			return e
		}
	}
	// Float rounding can leave r at ~0 after the last positive entry
	return pool[last]
}

// Draw picks entry by weight and applies shiny and alternate form overlays
func (s *Selector) Draw(pool []PoolEntry) (Item, error) {
	if len(pool) == 0 {
		return Item{}, errorvalues.ErrEmptyPool
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.pick(pool)
	item := Item{
		ID:     e.ItemID,
		Name:   e.Name,
		Sprite: e.Sprite,
	}
	if item.Name == "" {
		item.Name = fmt.Sprintf("#%03d", e.ItemID)
	}
	if s.rng.Float64() < s.shinyChance {
		item.Shiny = true
	}
	if e.ItemID == s.altForm.ItemID && s.rng.Float64() < s.altFormChance {
		item.AltForm = true
		item.Name = s.altForm.Name
		item.Sprite = s.altForm.Sprite
	}
	if item.Sprite == "" {
		if item.Shiny {
			item.Sprite = shinySpriteURL(fmt.Sprint(e.ItemID))
		} else {
			item.Sprite = spriteURL(fmt.Sprint(e.ItemID))
		}
	}
	return item, nil
}

type rarity int

const (
	common rarity = iota
	rare
	legendary
)

// weights by rarity, indexed by BallTier
var rarityWeights = map[rarity][5]float64{
	common:    {0, 10, 8, 5, 1},
	rare:      {0, 2, 4, 6, 5},
	legendary: {0, 0.1, 0.5, 2, 10},
}

var speciesRarity = map[int]rarity{
	1: rare, 4: rare, 7: rare, 131: rare, 137: rare, 138: rare, 140: rare,
	142: rare, 143: rare, 147: rare, 148: rare, 149: rare,
	144: legendary, 145: legendary, 146: legendary, 150: legendary, 151: legendary,
}

const speciesCount = 151

// DefaultPool returns draw pool for a ball tier. Better balls shift weight to rarer species
func DefaultPool(tier BallTier) []PoolEntry {
	if tier < PokeBall || tier > MasterBall {
		return nil
	}
	pool := make([]PoolEntry, 0, speciesCount)
	for id := 1; id <= speciesCount; id++ {
		pool = append(pool, PoolEntry{
			ItemID: id,
			Weight: rarityWeights[speciesRarity[id]][tier],
		})
	}
	return pool
}
