package sharedhabit_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/internal/sharedhabit"
	"github.com/limbo/habitmon/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now       = time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC)
	today     = civil.DateOf(now)
	yesterday = today.AddDays(-1)
)

func pending(t *testing.T) *entity.SharedHabit {
	sh, err := sharedhabit.New("ash", "misty", "swim 1km", now)
	require.NoError(t, err)
	return sh
}

func active(t *testing.T) *entity.SharedHabit {
	sh := pending(t)
	require.NoError(t, sharedhabit.Respond(sh, "misty", true, now))
	return sh
}

func TestNew(t *testing.T) {
	t.Run("pending created", func(t *testing.T) {
		sh := pending(t)
		assert.Equal(t, entity.StatusPendingApproval, sh.Status)
		assert.Equal(t, "ash", sh.Creator)
		assert.Equal(t, "misty", sh.Invitee)
		assert.NotZero(t, sh.ID)
		assert.Equal(t, now, sh.CreatedAt)
	})
	t.Run("self invite", func(t *testing.T) {
		_, err := sharedhabit.New("ash", " ash ", "swim", now)
		assert.ErrorIs(t, err, errorvalues.ErrSelfInvite)
	})
	t.Run("empty text", func(t *testing.T) {
		_, err := sharedhabit.New("ash", "misty", "   ", now)
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestRespond(t *testing.T) {
	testCases := []struct {
		Desc     string
		Actor    string
		Accept   bool
		Prepare  func(sh *entity.SharedHabit)
		Error    error
		Expected entity.SharedHabitStatus
	}{
		{Desc: "accepted", Actor: "misty", Accept: true, Expected: entity.StatusActive},
		{Desc: "declined", Actor: "misty", Accept: false, Expected: entity.StatusDeclined},
		{Desc: "creator can't respond", Actor: "ash", Accept: true, Error: errorvalues.ErrWrongActor, Expected: entity.StatusPendingApproval},
		{Desc: "stranger", Actor: "brock", Accept: true, Error: errorvalues.ErrNotParticipant, Expected: entity.StatusPendingApproval},
		{
			Desc:     "not pending",
			Actor:    "misty",
			Accept:   true,
			Prepare:  func(sh *entity.SharedHabit) { sh.Status = entity.StatusCancelled },
			Error:    errorvalues.ErrInvalidTransition,
			Expected: entity.StatusCancelled,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			sh := pending(t)
			if tc.Prepare != nil {
				tc.Prepare(sh)
			}
			err := sharedhabit.Respond(sh, tc.Actor, tc.Accept, now.Add(time.Minute))
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Nil(t, sh.AcceptedAt)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.Expected, sh.Status)
		})
	}
	t.Run("acceptance time recorded", func(t *testing.T) {
		sh := pending(t)
		require.NoError(t, sharedhabit.Respond(sh, "misty", true, now.Add(time.Hour)))
		require.NotNil(t, sh.AcceptedAt)
		assert.Equal(t, now.Add(time.Hour), *sh.AcceptedAt)
	})
}

func TestCancelAndArchive(t *testing.T) {
	t.Run("creator cancels", func(t *testing.T) {
		sh := pending(t)
		assert.NoError(t, sharedhabit.Cancel(sh, "ash", now))
		assert.Equal(t, entity.StatusCancelled, sh.Status)
		assert.False(t, sh.Status.IsOpen())
	})
	t.Run("invitee can't cancel", func(t *testing.T) {
		sh := pending(t)
		assert.ErrorIs(t, sharedhabit.Cancel(sh, "misty", now), errorvalues.ErrWrongActor)
	})
	t.Run("active can't be cancelled", func(t *testing.T) {
		sh := active(t)
		assert.ErrorIs(t, sharedhabit.Cancel(sh, "ash", now), errorvalues.ErrInvalidTransition)
	})
	t.Run("either participant archives", func(t *testing.T) {
		sh := active(t)
		assert.NoError(t, sharedhabit.Archive(sh, "misty", now))
		assert.Equal(t, entity.StatusArchived, sh.Status)
		assert.ErrorIs(t, sharedhabit.Archive(sh, "ash", now), errorvalues.ErrInvalidTransition)
	})
	t.Run("pending can't be archived", func(t *testing.T) {
		assert.ErrorIs(t, sharedhabit.Archive(pending(t), "ash", now), errorvalues.ErrInvalidTransition)
	})
}

func TestComplete(t *testing.T) {
	t.Run("creator alone gets no reward", func(t *testing.T) {
		sh := active(t)
		rewardDue, err := sharedhabit.Complete(sh, "ash", today, now)
		require.NoError(t, err)
		assert.False(t, rewardDue)
		assert.Equal(t, entity.StatusActive, sh.Status)
		assert.True(t, sh.CreatorCompletedToday)
		assert.False(t, sh.InviteeCompletedToday)
		assert.Nil(t, sh.LastRewardDate)
	})
	t.Run("second participant triggers reward once", func(t *testing.T) {
		sh := active(t)
		_, err := sharedhabit.Complete(sh, "ash", today, now)
		require.NoError(t, err)
		rewardDue, err := sharedhabit.Complete(sh, "misty", today, now)
		require.NoError(t, err)
		assert.True(t, rewardDue)
		require.NotNil(t, sh.LastRewardDate)
		assert.Equal(t, today, *sh.LastRewardDate)

		_, err = sharedhabit.Complete(sh, "misty", today, now)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyCompleted)
		_, err = sharedhabit.Complete(sh, "ash", today, now)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyCompleted)
	})
	t.Run("stale day is reset first", func(t *testing.T) {
		sh := active(t)
		sh.CreatorCompletedToday = true
		sh.InviteeCompletedToday = true
		sh.LastRewardDate = &yesterday
		sh.LastResetDate = &yesterday
		rewardDue, err := sharedhabit.Complete(sh, "misty", today, now)
		require.NoError(t, err)
		assert.False(t, rewardDue)
		assert.False(t, sh.CreatorCompletedToday)
		assert.True(t, sh.InviteeCompletedToday)
		assert.Nil(t, sh.LastRewardDate)
		assert.Equal(t, today, *sh.LastResetDate)
	})
	t.Run("lagging date counts for current day", func(t *testing.T) {
		sh := active(t)
		_, err := sharedhabit.Complete(sh, "ash", today, now)
		require.NoError(t, err)
		rewardDue, err := sharedhabit.Complete(sh, "misty", yesterday, now)
		require.NoError(t, err)
		assert.True(t, rewardDue)
		assert.Equal(t, today, *sh.LastResetDate)
		assert.Equal(t, today, *sh.LastRewardDate)

		_, err = sharedhabit.Complete(sh, "ash", today.AddDays(-5), now)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyCompleted)
		assert.Equal(t, today, *sh.LastResetDate)
	})
	t.Run("rejected completion leaves record unchanged", func(t *testing.T) {
		sh := active(t)
		_, err := sharedhabit.Complete(sh, "ash", today, now)
		require.NoError(t, err)
		before := *sh
		_, err = sharedhabit.Complete(sh, "ash", today, now.Add(time.Hour))
		require.ErrorIs(t, err, errorvalues.ErrAlreadyCompleted)
		assert.Equal(t, before, *sh)
	})
	t.Run("not active", func(t *testing.T) {
		_, err := sharedhabit.Complete(pending(t), "ash", today, now)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidTransition)
	})
	t.Run("stranger", func(t *testing.T) {
		_, err := sharedhabit.Complete(active(t), "brock", today, now)
		assert.ErrorIs(t, err, errorvalues.ErrNotParticipant)
	})
}

func TestRefresh(t *testing.T) {
	sh := active(t)
	assert.True(t, sharedhabit.Refresh(sh, today))
	sh.CreatorCompletedToday = true
	assert.False(t, sharedhabit.Refresh(sh, today))
	assert.True(t, sh.CreatorCompletedToday)
	assert.True(t, sharedhabit.Refresh(sh, today.AddDays(1)))
	assert.False(t, sh.CreatorCompletedToday)

	sh.InviteeCompletedToday = true
	assert.False(t, sharedhabit.Refresh(sh, today), "earlier day")
	assert.True(t, sh.InviteeCompletedToday)
	assert.Equal(t, today.AddDays(1), *sh.LastResetDate)
}
