package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/limbo/habitmon/internal/cache"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/pkg/entity"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cachedProfile() *entity.UserProfile {
	p := entity.NewProfile("ash")
	id := uuid.New()
	p.Habits = append(p.Habits, entity.Habit{ID: id, Text: "run"})
	p.BoostedHabitID = &id
	p.Inventory.GreatBalls = 2
	p.XP = 260
	p.AddSpecies(1, false)
	p.PartnerStreaks["misty"] = 4
	return p
}

func TestProfileCacheRoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewProfileCache(client)
	ctx := context.Background()
	profile := cachedProfile()
	val, err := sonic.ConfigStd.MarshalToString(profile)
	require.NoError(t, err)

	mock.ExpectHSet(cache.ProfilesKey, "ash", val).SetVal(1)
	require.NoError(t, c.Put(ctx, profile))

	mock.ExpectHGet(cache.ProfilesKey, "ash").SetVal(val)
	got, err := c.Get(ctx, "ash")
	require.NoError(t, err)
	assert.Equal(t, profile, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileCacheGet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewProfileCache(client)
	ctx := context.Background()

	t.Run("miss", func(t *testing.T) {
		mock.ExpectHGet(cache.ProfilesKey, "gary").SetErr(redis.Nil)
		_, err := c.Get(ctx, "gary")
		assert.ErrorIs(t, err, errorvalues.ErrCacheMiss)
	})
	t.Run("redis error", func(t *testing.T) {
		mock.ExpectHGet(cache.ProfilesKey, "ash").SetErr(errors.New("connection refused"))
		_, err := c.Get(ctx, "ash")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrCacheMiss)
	})
	t.Run("garbage", func(t *testing.T) {
		mock.ExpectHGet(cache.ProfilesKey, "ash").SetVal(`[1, 2`)
		_, err := c.Get(ctx, "ash")
		assert.ErrorIs(t, err, errorvalues.ErrMalformedProfile)
	})
	t.Run("legacy entry", func(t *testing.T) {
		mock.ExpectHGet(cache.ProfilesKey, "ash").SetVal(`{"username":"ash","shiny_species":[4]}`)
		got, err := c.Get(ctx, "ash")
		require.NoError(t, err)
		assert.Equal(t, []int{4}, got.CaughtSpecies)
		assert.Equal(t, []int{4}, got.ShinySpecies)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileCacheKnownDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewProfileCache(client)
	ctx := context.Background()

	mock.ExpectHKeys(cache.ProfilesKey).SetVal([]string{"misty", "ash"})
	names, err := c.Known(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ash", "misty"}, names)

	mock.ExpectHDel(cache.ProfilesKey, "ash").SetVal(1)
	assert.NoError(t, c.Delete(ctx, "ash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
