package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies that a builder with only defaults produces
// a valid config carrying every documented default value.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultDatabaseDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultRedisHost, cfg.Storage.Redis.Host)
	assert.Equal(t, DefaultCacheTTL, cfg.Storage.Redis.CacheTTL)
	assert.Equal(t, DefaultRateLimitMax, cfg.Security.RateLimitMax)
	assert.Equal(t, DefaultRateLimitWindow, cfg.Security.RateLimitWindow)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.Security.MaxBodyBytes)
	assert.Equal(t, DefaultSecretKey, cfg.App.SecretKey)
}

// TestBuild_EmptyBuilderFailsValidation verifies that building with no
// sources at all fails validation (no DSN, no address).
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
}

// TestBuild_EarlierSourceWins verifies the merge priority: a field set by an
// earlier source is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://first/db"}},
	})
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://second/db"}},
	})
	b = b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "postgres://first/db", cfg.Storage.DB.DSN)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_FillsRemainingFields verifies that values from a JSON file
// fill fields the earlier sources left empty.
func TestWithJSON_FillsRemainingFields(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{
			"http_address":    "localhost:9999",
			"request_timeout": "45s",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "postgres://json/db"},
			"redis": map[string]any{
				"host":      "redis.json",
				"port":      6390,
				"cache_ttl": "120s",
			},
		},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
	assert.Equal(t, "redis.json", cfg.Storage.Redis.Host)
	assert.Equal(t, 6390, cfg.Storage.Redis.Port)
	assert.Equal(t, 120*time.Second, cfg.Storage.Redis.CacheTTL)
}

// TestWithJSON_MissingFile verifies that a dangling JSON path surfaces as a
// build error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	_, err := b.withJSON().withDefaults().build()
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_MissingDSN(t *testing.T) {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

func TestValidate_MissingAddress(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

func TestValidate_BadRateLimit(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.RateLimitWindow = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidSecurityConfigs)
}
