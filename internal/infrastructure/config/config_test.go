package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "recipe-scaler", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Parser.Workers)
	assert.Equal(t, 0.02, cfg.Scaling.SnapTolerance)
	assert.InDelta(t, 0.308, cfg.Scaling.PinchFloors["volume"], 1e-12)
	assert.Equal(t, 6.0, cfg.Scaling.UpgradeCeilings["teaspoon"])
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, time.Second, cfg.DedupWindow)
	assert.False(t, cfg.OpenRouter.Enabled)
	assert.Equal(t, int64(1<<20), cfg.MaxBodySize)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_PARSER_WORKERS", "2")
	t.Setenv("CACHE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Parser.Workers)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENROUTER_MODEL=test/model\n"), 0o600))
	// godotenv 不覆寫既有變數，測試結束後清除
	t.Cleanup(func() { os.Unsetenv("OPENROUTER_MODEL") })

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "test/model", cfg.OpenRouter.Model)
}

func TestLoadConfigReadsYAMLThresholds(t *testing.T) {
	dir := t.TempDir()
	yaml := "scaling:\n  pinch_floors:\n    volume: 1\n  upgrade_ceilings:\n    teaspoon: 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Scaling.PinchFloors["volume"])
	assert.Equal(t, 3.0, cfg.Scaling.UpgradeCeilings["teaspoon"])
	assert.Equal(t, 8.0, cfg.Scaling.UpgradeCeilings["tablespoon"])
}

func TestLoadConfigRejectsNonPositiveCeiling(t *testing.T) {
	dir := t.TempDir()
	yaml := "scaling:\n  upgrade_ceilings:\n    cup: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	_, err := LoadConfigFrom(dir)
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"port", map[string]string{"APP_SERVER_PORT": "0"}},
		{"workers", map[string]string{"APP_PARSER_WORKERS": "0"}},
		{"tolerance", map[string]string{"APP_SCALING_SNAP_TOLERANCE": "0.6"}},
		{"driver", map[string]string{"CACHE_DRIVER": "memcached"}},
		{"openrouter key", map[string]string{"APP_OPENROUTER_ENABLED": "true"}},
		{"body size", map[string]string{"APP_MAX_BODY_SIZE": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfigFrom(t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", MaskAPIKey("short"))
	assert.Equal(t, "sk-o...cdef", MaskAPIKey("sk-or-v1-1234567890abcdef"))
}
