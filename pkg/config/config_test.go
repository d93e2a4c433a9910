package config_test

import (
	"testing"
	"time"

	"github.com/limbo/habitmon/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	config.EnvPath = "./testdata/missing.env"
	cfg := config.New()

	t.Setenv("HABITMON_TEST_STRING", "value")
	t.Setenv("HABITMON_TEST_INT", "42")
	t.Setenv("HABITMON_TEST_BROKEN_INT", "forty")
	t.Setenv("HABITMON_TEST_BOOL", "true")
	t.Setenv("HABITMON_TEST_DURATION", "90s")

	assert.Equal(t, "value", cfg.GetString("HABITMON_TEST_STRING"))
	assert.Equal(t, "value", cfg.GetStringOr("HABITMON_TEST_STRING", "default"))
	assert.Equal(t, "default", cfg.GetStringOr("HABITMON_TEST_UNSET", "default"))
	assert.Equal(t, 42, cfg.GetInt("HABITMON_TEST_INT", 7))
	assert.Equal(t, 7, cfg.GetInt("HABITMON_TEST_BROKEN_INT", 7))
	assert.True(t, cfg.GetBool("HABITMON_TEST_BOOL", false))
	assert.True(t, cfg.GetBool("HABITMON_TEST_UNSET", true))
	assert.Equal(t, 90*time.Second, cfg.GetDuration("HABITMON_TEST_DURATION", time.Minute))
	assert.Equal(t, time.Minute, cfg.GetDuration("HABITMON_TEST_UNSET", time.Minute))
}
