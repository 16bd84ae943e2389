package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName))
		require.NoError(t, err)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Empty(t, cfg.Workspace)
	})

	t.Run("parses a full config", func(t *testing.T) {
		path := writeConfig(t, `
version: "1.0"
workspace: team-a
redis:
  addr: redis.internal:6380
  db: 2
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "team-a", cfg.Workspace)
		assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
	})

	t.Run("rejects unsupported version", func(t *testing.T) {
		path := writeConfig(t, `version: "2.0"`)
		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported version")
	})

	t.Run("rejects negative db", func(t *testing.T) {
		path := writeConfig(t, "version: \"1.0\"\nredis:\n  db: -1\n")
		_, err := Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redis.db")
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "version: [broken")
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("env var overrides redis addr", func(t *testing.T) {
		t.Setenv("SEYTIC_REDIS_ADDR", "envhost:7000")
		path := writeConfig(t, "version: \"1.0\"\nredis:\n  addr: filehost:6379\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "envhost:7000", cfg.Redis.Addr)
	})
}
