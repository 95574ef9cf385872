package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_SLICE", "http://a.test, ,http://b.test")

	assert.Equal(t, "value", GetEnv("TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnv("TEST_MISSING", "default"))
	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("TEST_BAD_INT", 1))
	assert.Equal(t, int64(42), GetEnvAsInt64("TEST_INT", 1))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.False(t, GetEnvAsBool("TEST_MISSING", false))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetEnvAsSlice("TEST_SLICE", nil))
	assert.Equal(t, []string{"*"}, GetEnvAsSlice("TEST_MISSING", []string{"*"}))
}

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.APIPrefix)
	assert.Equal(t, "transactions", cfg.Mongo.Collection)
	assert.Equal(t, 10, cfg.Mongo.QueryTimeout)
	assert.Equal(t, 3, cfg.Mongo.ConnectRetries)
	assert.Equal(t, 10, cfg.Pagination.DefaultPerPage)
	assert.Equal(t, 100, cfg.Pagination.MaxPerPage)
	assert.Equal(t, 10, cfg.Query.Concurrency)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestInitConfig_LoadsEnvFileLocally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "salesdash.env")
	require.NoError(t, os.WriteFile(path, []byte("MONGO_DATABASE=roxiler\nAPI_PREFIX=/api/\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv does not override variables that are already set, so clear them for the test
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("API_PREFIX", "")
	os.Unsetenv("MONGO_DATABASE")
	os.Unsetenv("API_PREFIX")

	cfg := InitConfig(path)

	assert.Equal(t, "roxiler", cfg.Mongo.Database)
	assert.Equal(t, "/api", cfg.Server.APIPrefix)
}
