package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
mongo:
  uri: "mongodb://127.0.0.1:27017"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "volunteer_hub", cfg.Mongo.Database)
	assert.Equal(t, DeleteOrphan, cfg.Campaign.DeletePolicy)
	assert.Equal(t, 30*time.Minute, cfg.AccessTTL())
	assert.Equal(t, 24*time.Hour, cfg.RefreshTTL())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
mongo:
  uri: "mongodb://127.0.0.1:27017"
redis:
  addr: "127.0.0.1:6379"
`)
	t.Setenv("REDIS_ADDR", "redis.internal:6380")
	t.Setenv("JWT_ACCESS_SECRET", "from-env")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, "from-env", cfg.JWT.AccessSecret)
}

func TestLoadRejectsBadDeletePolicy(t *testing.T) {
	path := writeConfig(t, `
mongo:
  uri: "mongodb://127.0.0.1:27017"
campaign:
  delete_policy: "nuke"
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoadRequiresMongoURI(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":9090"
`)

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
