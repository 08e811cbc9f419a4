package config

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.AppURL)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, 60, cfg.StickySweepSeconds)
	assert.Equal(t, 4, cfg.AssistantConcurrency)
	assert.False(t, cfg.RedisEnabled)
	assert.False(t, cfg.GoogleEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("ASSISTANT_CONCURRENCY", "2")

	cfg, err := load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.AppURL)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.True(t, cfg.RedisEnabled)
	assert.Equal(t, 2, cfg.AssistantConcurrency)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"short secret", map[string]string{"JWT_SECRET": "short"}},
		{"bad int", map[string]string{"JWT_SECRET": "0123456789abcdef", "RATE_LIMIT_PER_MINUTE": "many"}},
		{"zero sweep", map[string]string{"JWT_SECRET": "0123456789abcdef", "STICKY_SWEEP_INTERVAL_SECONDS": "0"}},
		{"bad driver", map[string]string{"JWT_SECRET": "0123456789abcdef", "DATABASE_DRIVER": "mysql"}},
		{"bad bool", map[string]string{"JWT_SECRET": "0123456789abcdef", "REDIS_ENABLED": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := load()
			assert.Error(t, err)
		})
	}
}

func TestSetupLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := SetupLogger("debug", "json", &buf)

	logger.Debug().Str("component", "test").Msg("hello")

	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	assert.Contains(t, buf.String(), `"component":"test"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestMigrateInMemory(t *testing.T) {
	db, err := OpenDatabase("sqlite", "file::memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable("tasks"))
	assert.True(t, db.Migrator().HasTable("sticky_notes"))
	assert.True(t, db.Migrator().HasTable("assistant_messages"))
}
