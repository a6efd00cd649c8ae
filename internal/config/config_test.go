package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("FT_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("FT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FT_TEST_MISSING", "fallback"))

	t.Setenv("FT_TEST_EMPTY", "")
	assert.Equal(t, "fallback", GetEnv("FT_TEST_EMPTY", "fallback"))
}

func TestGetIntEnv(t *testing.T) {
	t.Setenv("FT_TEST_INT", "42")
	assert.Equal(t, 42, GetIntEnv("FT_TEST_INT", 7))

	t.Setenv("FT_TEST_INT", "not a number")
	assert.Equal(t, 7, GetIntEnv("FT_TEST_INT", 7))
}

func TestGetDurationEnv(t *testing.T) {
	t.Setenv("FT_TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, GetDurationEnv("FT_TEST_DUR", time.Minute))
	assert.Equal(t, time.Minute, GetDurationEnv("FT_TEST_DUR_MISSING", time.Minute))
}
