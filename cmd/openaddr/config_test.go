package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OA_ENV", "production")
	t.Setenv("OA_CAPACITY", "100")
	t.Setenv("OA_WORDS", "12")
	t.Setenv("OA_PRETTY", "false")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.IsEnvProduction())
	assert.Equal(t, uint(100), cfg.Capacity)
	assert.Equal(t, 12, cfg.Words)
	assert.False(t, cfg.Pretty)
}

func TestLoadFromEnvRejectsNegativeWords(t *testing.T) {
	t.Setenv("OA_WORDS", "-1")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OA_WORDS")
}

func TestRun(t *testing.T) {
	require.NoError(t, run(&Config{Capacity: 16, Words: 40}))
}
