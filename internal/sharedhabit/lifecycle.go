// Package sharedhabit implements status transitions of a habit shared by two users:
//
//	pending_invitee_approval -> active -> archived
//	pending_invitee_approval -> declined_invitee (invitee)
//	pending_invitee_approval -> cancelled_creator (creator)
//
// Every function mutates the passed record only when the transition is allowed.
package sharedhabit

import (
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/pkg/entity"
)

// New creates pending shared habit. Invitee existence and duplicates are checked by caller
func New(creator, invitee, text string, now time.Time) (*entity.SharedHabit, error) {
	creator, invitee, text = strings.TrimSpace(creator), strings.TrimSpace(invitee), strings.TrimSpace(text)
	if creator == "" || invitee == "" {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("participants are required"))
	}
	if text == "" {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("habit text is required"))
	}
	if creator == invitee {
		return nil, errorvalues.ErrSelfInvite
	}
	return &entity.SharedHabit{
		ID:        uuid.New(),
		Creator:   creator,
		Invitee:   invitee,
		Text:      text,
		Status:    entity.StatusPendingApproval,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Respond accepts or declines invitation. Only invitee of a pending habit may respond
func Respond(sh *entity.SharedHabit, actor string, accept bool, now time.Time) error {
	if err := checkParticipant(sh, actor); err != nil {
		return err
	}
	if sh.Status != entity.StatusPendingApproval {
		return errorvalues.ErrInvalidTransition
	}
	if actor != sh.Invitee {
		return errorvalues.ErrWrongActor
	}
	if accept {
		sh.Status = entity.StatusActive
		sh.AcceptedAt = &now
	} else {
		sh.Status = entity.StatusDeclined
	}
	sh.UpdatedAt = now
	return nil
}

// Cancel withdraws pending invitation. Only creator may cancel
func Cancel(sh *entity.SharedHabit, actor string, now time.Time) error {
	if err := checkParticipant(sh, actor); err != nil {
		return err
	}
	if sh.Status != entity.StatusPendingApproval {
		return errorvalues.ErrInvalidTransition
	}
	if actor != sh.Creator {
		return errorvalues.ErrWrongActor
	}
	sh.Status = entity.StatusCancelled
	sh.UpdatedAt = now
	return nil
}

// Archive ends active shared habit. Either participant may archive
func Archive(sh *entity.SharedHabit, actor string, now time.Time) error {
	if err := checkParticipant(sh, actor); err != nil {
		return err
	}
	if sh.Status != entity.StatusActive {
		return errorvalues.ErrInvalidTransition
	}
	sh.Status = entity.StatusArchived
	sh.UpdatedAt = now
	return nil
}

// Refresh clears daily completion state when the record was last reset before today.
// Dates behind the last reset leave it untouched. Reports whether the record changed.
func Refresh(sh *entity.SharedHabit, today civil.Date) bool {
	if sh.LastResetDate != nil && !today.After(*sh.LastResetDate) {
		return false
	}
	sh.CreatorCompletedToday = false
	sh.InviteeCompletedToday = false
	sh.LastRewardDate = nil
	sh.LastResetDate = &today
	return true
}

// Complete marks actor's part done for today. rewardDue is true exactly once per day,
// on the completion that makes both participants done. A partner whose local date lags
// behind the record's day completes that day. Rejected calls leave sh unchanged.
func Complete(sh *entity.SharedHabit, actor string, today civil.Date, now time.Time) (rewardDue bool, err error) {
	if err = checkParticipant(sh, actor); err != nil {
		return false, err
	}
	if sh.Status != entity.StatusActive {
		return false, errorvalues.ErrInvalidTransition
	}
	if sh.LastResetDate != nil && today.Before(*sh.LastResetDate) {
		today = *sh.LastResetDate
	}
	stale := sh.LastResetDate == nil || *sh.LastResetDate != today
	done := &sh.CreatorCompletedToday
	if actor == sh.Invitee {
		done = &sh.InviteeCompletedToday
	}
	if *done && !stale {
		return false, errorvalues.ErrAlreadyCompleted
	}
	Refresh(sh, today)
	*done = true
	sh.UpdatedAt = now
	if sh.CreatorCompletedToday && sh.InviteeCompletedToday &&
		(sh.LastRewardDate == nil || *sh.LastRewardDate != today) {
		sh.LastRewardDate = &today
		return true, nil
	}
	return false, nil
}

func checkParticipant(sh *entity.SharedHabit, actor string) error {
	if _, ok := sh.Partner(actor); !ok {
		return errorvalues.ErrNotParticipant
	}
	return nil
}
