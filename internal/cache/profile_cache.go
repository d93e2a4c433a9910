// Package cache keeps working copies of user profiles in Redis between explicit syncs with Postgres.
package cache

import (
	"context"
	"errors"
	"slices"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/habitmon/internal/error_values"
	"github.com/limbo/habitmon/pkg/entity"
	"github.com/redis/go-redis/v9"
)

// ProfilesKey is the hash holding every known profile, field is the username
const ProfilesKey = "habitmon:profiles"

type ProfileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// Get returns cached profile. Document is normalized, so entries written by older versions are readable
func (c *ProfileCache) Get(ctx context.Context, username string) (*entity.UserProfile, error) {
	val, err := c.client.HGet(ctx, ProfilesKey, username).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errorvalues.ErrCacheMiss
		}
		return nil, errors.New("reading cached profile error: " + err.Error())
	}
	raw := make(map[string]any)
	if err = sonic.ConfigStd.UnmarshalFromString(val, &raw); err != nil {
		return nil, errors.Join(errorvalues.ErrMalformedProfile, err)
	}
	return entity.Normalize(raw)
}

func (c *ProfileCache) Put(ctx context.Context, profile *entity.UserProfile) error {
	val, err := sonic.ConfigStd.MarshalToString(profile)
	if err != nil {
		return errors.New("marshalling profile error: " + err.Error())
	}
	if err = c.client.HSet(ctx, ProfilesKey, profile.Username, val).Err(); err != nil {
		return errors.New("caching profile error: " + err.Error())
	}
	return nil
}

// Known lists usernames with cached profiles in sorted order
func (c *ProfileCache) Known(ctx context.Context) ([]string, error) {
	names, err := c.client.HKeys(ctx, ProfilesKey).Result()
	if err != nil {
		return nil, errors.New("listing cached profiles error: " + err.Error())
	}
	slices.Sort(names)
	return names, nil
}

func (c *ProfileCache) Delete(ctx context.Context, username string) error {
	if err := c.client.HDel(ctx, ProfilesKey, username).Err(); err != nil {
		return errors.New("deleting cached profile error: " + err.Error())
	}
	return nil
}
