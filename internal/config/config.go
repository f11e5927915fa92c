// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Particle field
	ParticleCount = 100
	Background    = "#1a1a1a"
	ParticleColor = "#ffffff"

	TPS   = 60
	Title = "Particle Backdrop - F5: reseed, Esc: quit"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	WindowWidth   int
	WindowHeight  int
	ParticleCount int
	Seed          int64
	Background    color.RGBA
	ParticleColor color.RGBA
	TPS           int
	Title         string
	Sound         bool
	LogLevel      slog.Level
}

// Load reads configuration from environment variables and returns a validated Config.
// All variables are optional: PARTICLES_WINDOW_WIDTH (1024), PARTICLES_WINDOW_HEIGHT (640),
// PARTICLES_COUNT (100), PARTICLES_SEED (0, time based), PARTICLES_BACKGROUND (#1a1a1a),
// PARTICLES_COLOR (#ffffff), PARTICLES_TPS (60), PARTICLES_TITLE, PARTICLES_SOUND (false)
// and PARTICLES_LOG_LEVEL (info).
func Load() (*Config, error) {
	cfg := &Config{
		WindowWidth:   WindowWidth,
		WindowHeight:  WindowHeight,
		ParticleCount: ParticleCount,
		TPS:           TPS,
		Title:         Title,
		LogLevel:      slog.LevelInfo,
	}

	var err error
	if cfg.WindowWidth, err = positiveInt("PARTICLES_WINDOW_WIDTH", cfg.WindowWidth); err != nil {
		return nil, err
	}
	if cfg.WindowHeight, err = positiveInt("PARTICLES_WINDOW_HEIGHT", cfg.WindowHeight); err != nil {
		return nil, err
	}
	if cfg.TPS, err = positiveInt("PARTICLES_TPS", cfg.TPS); err != nil {
		return nil, err
	}

	if v, ok := os.LookupEnv("PARTICLES_COUNT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("PARTICLES_COUNT has invalid value %q: must be a non-negative integer", v)
		}
		cfg.ParticleCount = n
	}

	if v, ok := os.LookupEnv("PARTICLES_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("PARTICLES_SEED has invalid value %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	bg := Background
	if v, ok := os.LookupEnv("PARTICLES_BACKGROUND"); ok {
		bg = v
	}
	if cfg.Background, err = ParseHexColor(bg); err != nil {
		return nil, fmt.Errorf("PARTICLES_BACKGROUND: %w", err)
	}

	fg := ParticleColor
	if v, ok := os.LookupEnv("PARTICLES_COLOR"); ok {
		fg = v
	}
	if cfg.ParticleColor, err = ParseHexColor(fg); err != nil {
		return nil, fmt.Errorf("PARTICLES_COLOR: %w", err)
	}

	if v, ok := os.LookupEnv("PARTICLES_TITLE"); ok && v != "" {
		cfg.Title = v
	}

	if v, ok := os.LookupEnv("PARTICLES_SOUND"); ok {
		sound, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("PARTICLES_SOUND has invalid value %q: %w", v, err)
		}
		cfg.Sound = sound
	}

	if v, ok := os.LookupEnv("PARTICLES_LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("PARTICLES_LOG_LEVEL has invalid value %q: %w", v, err)
		}
	}

	return cfg, nil
}

func positiveInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s has invalid value %q: must be a positive integer", key, v)
	}
	return n, nil
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
