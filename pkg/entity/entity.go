package entity

import (
	"slices"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// HistoryLimit is the maximum number of days kept in UserProfile.History
const HistoryLimit = 60

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Habit struct {
	ID               uuid.UUID `json:"id"`
	Text             string    `json:"text"`
	CompletedToday   bool      `json:"completed_today"`
	TotalCompletions int       `json:"total_completions"`
}

// ProgressionHabit is a harder variant of a habit, linked to its parent by ParentID
type ProgressionHabit struct {
	ID               uuid.UUID `json:"id"`
	ParentID         uuid.UUID `json:"parent_id"`
	Text             string    `json:"text"`
	CompletedToday   bool      `json:"completed_today"`
	TotalCompletions int       `json:"total_completions"`
}

type Inventory struct {
	PokeBalls   int `json:"poke_balls"`
	GreatBalls  int `json:"great_balls"`
	UltraBalls  int `json:"ultra_balls"`
	MasterBalls int `json:"master_balls"`
	Coins       int `json:"coins"`
}

// Streak counts consecutive days. RewardedDay is the last streak day whose reward was claimed
// and never exceeds Current.
type Streak struct {
	Current     int         `json:"current"`
	LastUpdate  *civil.Date `json:"last_update"`
	RewardedDay int         `json:"rewarded_day"`
}

type HistoryEntry struct {
	Date  civil.Date `json:"date"`
	Count int        `json:"count"`
}

type UserProfile struct {
	Username          string             `json:"username"`
	Habits            []Habit            `json:"habits"`
	ProgressionHabits []ProgressionHabit `json:"progression_habits"`
	Inventory         Inventory          `json:"inventory"`
	XP                int                `json:"xp"`
	DailyCompletions  int                `json:"daily_completions"`
	LastResetDate     *civil.Date        `json:"last_reset_date"`
	DailyStreak       Streak             `json:"daily_streak"`
	FiveStreak        Streak             `json:"five_streak"`
	TenStreak         Streak             `json:"ten_streak"`
	// Most recent day first
	History        []HistoryEntry `json:"history"`
	CaughtSpecies  []int          `json:"caught_species"`
	ShinySpecies   []int          `json:"shiny_species"`
	Avatar         string         `json:"avatar"`
	BoostedHabitID *uuid.UUID     `json:"boosted_habit_id"`
	PartnerStreaks map[string]int `json:"partner_streaks"`
}

// NewProfile returns zero-valued profile for a user logging in for the first time
func NewProfile(username string) *UserProfile {
	return &UserProfile{
		Username:          username,
		Habits:            []Habit{},
		ProgressionHabits: []ProgressionHabit{},
		History:           []HistoryEntry{},
		CaughtSpecies:     []int{},
		ShinySpecies:      []int{},
		PartnerStreaks:    map[string]int{},
	}
}

func (p *UserProfile) Habit(id uuid.UUID) *Habit {
	for i := range p.Habits {
		if p.Habits[i].ID == id {
			return &p.Habits[i]
		}
	}
	return nil
}

func (p *UserProfile) ProgressionHabit(id uuid.UUID) *ProgressionHabit {
	for i := range p.ProgressionHabits {
		if p.ProgressionHabits[i].ID == id {
			return &p.ProgressionHabits[i]
		}
	}
	return nil
}

// Streaks returns pointers to daily, five-per-day and ten-per-day streaks in that order
func (p *UserProfile) Streaks() []*Streak {
	return []*Streak{&p.DailyStreak, &p.FiveStreak, &p.TenStreak}
}

// AddSpecies marks species as caught, keeping the set sorted
func (p *UserProfile) AddSpecies(id int, shiny bool) {
	p.CaughtSpecies = insertSorted(p.CaughtSpecies, id)
	if shiny {
		p.ShinySpecies = insertSorted(p.ShinySpecies, id)
	}
}

func (p *UserProfile) HasSpecies(id int) bool {
	_, found := slices.BinarySearch(p.CaughtSpecies, id)
	return found
}

func insertSorted(set []int, id int) []int {
	i, found := slices.BinarySearch(set, id)
	if found {
		return set
	}
	return slices.Insert(set, i, id)
}

type SharedHabitStatus string

const (
	StatusPendingApproval SharedHabitStatus = "pending_invitee_approval"
	StatusActive          SharedHabitStatus = "active"
	StatusDeclined        SharedHabitStatus = "declined_invitee"
	StatusCancelled       SharedHabitStatus = "cancelled_creator"
	StatusArchived        SharedHabitStatus = "archived"
)

// IsOpen reports whether status is non-terminal
func (s SharedHabitStatus) IsOpen() bool {
	return s == StatusPendingApproval || s == StatusActive
}

type SharedHabit struct {
	ID                    uuid.UUID         `json:"id"`
	Creator               string            `json:"creator"`
	Invitee               string            `json:"invitee"`
	Text                  string            `json:"text"`
	Status                SharedHabitStatus `json:"status"`
	CreatorCompletedToday bool              `json:"creator_completed_today"`
	InviteeCompletedToday bool              `json:"invitee_completed_today"`
	LastRewardDate        *civil.Date       `json:"last_reward_date,omitempty"`
	LastResetDate         *civil.Date       `json:"last_reset_date,omitempty"`
	Version               int               `json:"version"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
	AcceptedAt            *time.Time        `json:"accepted_at,omitempty"`
}

// Partner returns the other participant's name
func (sh *SharedHabit) Partner(username string) (string, bool) {
	switch username {
	case sh.Creator:
		return sh.Invitee, true
	case sh.Invitee:
		return sh.Creator, true
	}
	return "", false
}
