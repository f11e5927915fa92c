package config

import (
	"image/color"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every PARTICLES_ env var that Load() reads.
var allConfigKeys = []string{
	"PARTICLES_WINDOW_WIDTH",
	"PARTICLES_WINDOW_HEIGHT",
	"PARTICLES_COUNT",
	"PARTICLES_SEED",
	"PARTICLES_BACKGROUND",
	"PARTICLES_COLOR",
	"PARTICLES_TPS",
	"PARTICLES_TITLE",
	"PARTICLES_SOUND",
	"PARTICLES_LOG_LEVEL",
}

// isolateConfigEnv unsets all PARTICLES_ env vars so tests don't inherit
// values from the host environment. t.Cleanup restores original values.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.WindowWidth)
	assert.Equal(t, 640, cfg.WindowHeight)
	assert.Equal(t, 100, cfg.ParticleCount)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255}, cfg.Background)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, cfg.ParticleColor)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, Title, cfg.Title)
	assert.False(t, cfg.Sound)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PARTICLES_WINDOW_WIDTH", "800")
	t.Setenv("PARTICLES_WINDOW_HEIGHT", "600")
	t.Setenv("PARTICLES_COUNT", "250")
	t.Setenv("PARTICLES_SEED", "42")
	t.Setenv("PARTICLES_BACKGROUND", "#000")
	t.Setenv("PARTICLES_COLOR", "#ff8800")
	t.Setenv("PARTICLES_TPS", "30")
	t.Setenv("PARTICLES_TITLE", "backdrop")
	t.Setenv("PARTICLES_SOUND", "true")
	t.Setenv("PARTICLES_LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, 600, cfg.WindowHeight)
	assert.Equal(t, 250, cfg.ParticleCount)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, color.RGBA{A: 255}, cfg.Background)
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 255}, cfg.ParticleColor)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, "backdrop", cfg.Title)
	assert.True(t, cfg.Sound)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_ZeroCountAllowed(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PARTICLES_COUNT", "0")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.ParticleCount)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"PARTICLES_WINDOW_WIDTH", "wide"},
		{"PARTICLES_WINDOW_HEIGHT", "0"},
		{"PARTICLES_COUNT", "-1"},
		{"PARTICLES_SEED", "abc"},
		{"PARTICLES_BACKGROUND", "#12"},
		{"PARTICLES_COLOR", "#gggggg"},
		{"PARTICLES_TPS", "-60"},
		{"PARTICLES_SOUND", "loud"},
		{"PARTICLES_LOG_LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor(" #1A1a1a ")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 255}, c)

	c, err = ParseHexColor("fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c)

	_, err = ParseHexColor("")
	assert.Error(t, err)
}
