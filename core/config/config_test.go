package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Server.BodyLimitMB)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "relics.db", cfg.Database.Name)
	assert.Equal(t, "fallback", cfg.Relic.Classify.FuzzyMode)
	assert.Equal(t, "exports", cfg.Relic.ExportDir)
	assert.Equal(t, "icons/characters", cfg.Icons.Prefix)
	assert.Equal(t, 0, cfg.Icons.Size)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "relics", cfg.Storage.Bucket)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("RELIC_CLASSIFY_FUZZY_MODE", "off")
	t.Setenv("ICONS_SIZE", "64")
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "off", cfg.Relic.Classify.FuzzyMode)
	assert.Equal(t, 64, cfg.Icons.Size)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RELIC_EXPORT_DIR=/tmp/relic-out\n"), 0o644))
	t.Setenv("RELIC_EXPORT_DIR", "")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/relic-out", cfg.Relic.ExportDir)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"FuzzyMode", "RELIC_CLASSIFY_FUZZY_MODE", "sometimes"},
		{"Driver", "DATABASE_DRIVER", "postgres"},
		{"IconSize", "ICONS_SIZE", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig(t.TempDir())
			assert.Error(t, err)
		})
	}
}

func TestBindValues_RegistersNestedKeys(t *testing.T) {
	v := viper.New()
	bindValues(v, Config{}, "")

	assert.True(t, v.IsSet("relic.classify.fuzzy_mode"))
	assert.True(t, v.IsSet("icons.prefix"))
	assert.Equal(t, "fallback", v.GetString("relic.classify.fuzzy_mode"))
}
