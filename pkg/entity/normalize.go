package entity

import (
	"errors"
	"slices"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
)

// Normalize builds typed profile from untyped document (as stored or sent by older clients).
// Unknown keys are ignored, missing ones defaulted. Result of Normalize is a fixed point:
// normalizing it again yields equal value.
func Normalize(raw map[string]any) (*UserProfile, error) {
	if raw == nil {
		return nil, errors.Join(errorvalues.ErrMalformedProfile, errors.New("document is nil"))
	}
	var p UserProfile
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.TextUnmarshallerHookFunc(),
		Result:     &p,
		TagName:    "json",
	})
	if err != nil {
		return nil, errors.New("creating decoder error: " + err.Error())
	}
	if err = dec.Decode(raw); err != nil {
		return nil, errors.Join(errorvalues.ErrMalformedProfile, err)
	}
	if strings.TrimSpace(p.Username) == "" {
		return nil, errors.Join(errorvalues.ErrMalformedProfile, errors.New("username is empty"))
	}
	if err = p.applyDefaults(); err != nil {
		return nil, errors.Join(errorvalues.ErrMalformedProfile, err)
	}
	return &p, nil
}

// ToMap is the inverse of Normalize
func ToMap(p *UserProfile) (map[string]any, error) {
	data, err := sonic.ConfigDefault.Marshal(p)
	if err != nil {
		return nil, errors.New("marshalling profile error: " + err.Error())
	}
	raw := make(map[string]any)
	if err = sonic.ConfigDefault.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("unmarshalling profile error: " + err.Error())
	}
	return raw, nil
}

func (p *UserProfile) applyDefaults() error {
	if p.Habits == nil {
		p.Habits = []Habit{}
	}
	habitIDs := make(map[uuid.UUID]struct{}, len(p.Habits))
	for i := range p.Habits {
		h := &p.Habits[i]
		if h.ID == uuid.Nil || strings.TrimSpace(h.Text) == "" {
			return errors.New("habit without id or text")
		}
		if _, dup := habitIDs[h.ID]; dup {
			return errors.New("duplicated habit id " + h.ID.String())
		}
		habitIDs[h.ID] = struct{}{}
		h.TotalCompletions = max(h.TotalCompletions, 0)
	}

	if p.ProgressionHabits == nil {
		p.ProgressionHabits = []ProgressionHabit{}
	}
	progressions := p.ProgressionHabits[:0]
	for _, ph := range p.ProgressionHabits {
		if ph.ID == uuid.Nil || strings.TrimSpace(ph.Text) == "" {
			return errors.New("progression habit without id or text")
		}
		// Orphans are left from removed parents
		if _, ok := habitIDs[ph.ParentID]; !ok {
			continue
		}
		ph.TotalCompletions = max(ph.TotalCompletions, 0)
		progressions = append(progressions, ph)
	}
	p.ProgressionHabits = progressions

	inv := &p.Inventory
	inv.PokeBalls = max(inv.PokeBalls, 0)
	inv.GreatBalls = max(inv.GreatBalls, 0)
	inv.UltraBalls = max(inv.UltraBalls, 0)
	inv.MasterBalls = max(inv.MasterBalls, 0)
	inv.Coins = max(inv.Coins, 0)
	p.XP = max(p.XP, 0)
	p.DailyCompletions = max(p.DailyCompletions, 0)

	for _, s := range p.Streaks() {
		s.Current = max(s.Current, 0)
		s.RewardedDay = min(max(s.RewardedDay, 0), s.Current)
	}

	if p.History == nil {
		p.History = []HistoryEntry{}
	}
	if len(p.History) > HistoryLimit {
		p.History = p.History[:HistoryLimit]
	}
	for i := range p.History {
		p.History[i].Count = max(p.History[i].Count, 0)
	}

	p.CaughtSpecies = normalizeSet(p.CaughtSpecies)
	p.ShinySpecies = normalizeSet(p.ShinySpecies)
	// Shiny variant can't be owned without the species itself
	for _, id := range p.ShinySpecies {
		p.CaughtSpecies = insertSorted(p.CaughtSpecies, id)
	}

	if p.BoostedHabitID != nil {
		if _, ok := habitIDs[*p.BoostedHabitID]; !ok {
			p.BoostedHabitID = nil
		}
	}

	if p.PartnerStreaks == nil {
		p.PartnerStreaks = map[string]int{}
	}
	delete(p.PartnerStreaks, "")
	for partner, count := range p.PartnerStreaks {
		p.PartnerStreaks[partner] = max(count, 0)
	}
	return nil
}

func normalizeSet(set []int) []int {
	out := make([]int, 0, len(set))
	for _, id := range set {
		if id > 0 {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
