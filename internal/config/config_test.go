package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvRequiresAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")

	cfg, err := FromEnv()

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Nil(t, cfg)
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "secret")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.TMDB.APIKey)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Equal(t, "es-ES", cfg.TMDB.Language)
	assert.Equal(t, 250*time.Millisecond, cfg.TMDB.MinInterval)
	assert.Equal(t, 6*time.Hour, cfg.TMDB.CacheTTL)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 5.0, cfg.Quality.MinRating)
	assert.Equal(t, 10, cfg.Quality.MinVotes)
	assert.Equal(t, 20, cfg.Quality.MinOverviewLen)
	assert.Equal(t, 0.7, cfg.Quality.ScriptRatio)
	assert.Empty(t, cfg.Redis.Host)
	assert.Empty(t, cfg.Postgres.Host)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "secret")
	t.Setenv("TMDB_MIN_INTERVAL", "100ms")
	t.Setenv("QUALITY_MIN_VOTES", "25")
	t.Setenv("QUALITY_SCRIPT_RATIO", "0.5")
	t.Setenv("REDIS_HOST", "redis.internal")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 100*time.Millisecond, cfg.TMDB.MinInterval)
	assert.Equal(t, 25, cfg.Quality.MinVotes)
	assert.Equal(t, 0.5, cfg.Quality.ScriptRatio)
	assert.Equal(t, "redis.internal", cfg.Redis.Host)
}

func TestFromEnvIgnoresMalformedValues(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "secret")
	t.Setenv("TMDB_MIN_INTERVAL", "soon")
	t.Setenv("QUALITY_MIN_VOTES", "many")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.TMDB.MinInterval)
	assert.Equal(t, 10, cfg.Quality.MinVotes)
}
