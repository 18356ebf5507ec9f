package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	content := `{
		"database_url": "postgres://localhost/yatra",
		"redis_url": "redis://localhost:6379",
		"port": 9090,
		"trip_duration_days": 5,
		"verbose": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/yatra", cfg.DatabaseURL)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5, cfg.TripDurationDays)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 8080, TripDurationDays: 3, PeopleCount: 2}
	assert.NoError(t, cfg.Validate())

	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{TripDurationDays: -1}).Validate())
	assert.Error(t, (&Config{PeopleCount: -2}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://primary"}
	defaults := Config{
		DatabaseURL: "postgres://fallback",
		RedisURL:    "redis://fallback",
		Port:        8080,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "postgres://primary", merged.DatabaseURL)
	assert.Equal(t, "redis://fallback", merged.RedisURL)
	assert.Equal(t, 8080, merged.Port)
}
